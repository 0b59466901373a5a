package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-03-10T12:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("10.03.2025")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRentalDays(t *testing.T) {
	pickup := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ret  time.Time
		want int
	}{
		{"one day", pickup.Add(24 * time.Hour), 1},
		{"three days", pickup.AddDate(0, 0, 3), 3},
		{"partial day rounds up", pickup.Add(25 * time.Hour), 2},
		{"a few hours", pickup.Add(3 * time.Hour), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(pickup, tt.ret))
		})
	}
}

func TestStartOfDay(t *testing.T) {
	at := time.Date(2025, 3, 10, 23, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), StartOfDay(at))
}

func TestValidatePeriod(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	today, err := ParseDate("2025-03-10")
	require.NoError(t, err)

	tests := []struct {
		name    string
		pickup  time.Time
		ret     time.Time
		wantErr string
	}{
		{"pickup today", today, today.AddDate(0, 0, 1), ""},
		{"pickup in the future", today.AddDate(0, 0, 5), today.AddDate(0, 0, 7), ""},
		{"same instant", today, today, "return date must be after pickup date"},
		{"return before pickup", today.AddDate(0, 0, 2), today.AddDate(0, 0, 1), "return date must be after pickup date"},
		{"pickup yesterday", today.AddDate(0, 0, -1), today.AddDate(0, 0, 2), "pickup date cannot be in the past"},
		{"pickup five days ago", today.AddDate(0, 0, -5), today, "pickup date cannot be in the past"},
		{"missing pickup", time.Time{}, today, "pickup and return dates are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePeriod(tt.pickup, tt.ret, now)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, BookingStatusPending.Valid())
	assert.True(t, BookingStatusConfirmed.Valid())
	assert.True(t, BookingStatusCancelled.Valid())
	assert.False(t, BookingStatus("completed").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestCar_OwnedBy(t *testing.T) {
	owner := "u1"
	car := &Car{OwnerID: &owner}

	assert.True(t, car.OwnedBy("u1"))
	assert.False(t, car.OwnedBy("u2"))
	assert.False(t, (&Car{}).OwnedBy("u1"))
}
