package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testBooking() (*domain.Booking, *domain.Car) {
	b := &domain.Booking{
		PickupDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Status:     domain.BookingStatusConfirmed,
		Price:      300,
	}
	return b, &domain.Car{Brand: "BMW", Model: "X5"}
}

func TestBookingCreatedText(t *testing.T) {
	b, car := testBooking()

	text := bookingCreatedText(b, car)

	assert.Contains(t, text, "BMW X5")
	assert.Contains(t, text, "01.06.2025 - 04.06.2025")
	assert.Contains(t, text, "300.00")
}

func TestStatusChangedText(t *testing.T) {
	b, car := testBooking()

	text := statusChangedText(b, car)

	assert.Contains(t, text, "Booking confirmed")
	assert.Contains(t, text, "BMW X5")
}

func TestPendingReminderText(t *testing.T) {
	b, car := testBooking()
	b.Status = domain.BookingStatusPending

	text := pendingReminderText(b, car)

	assert.Contains(t, text, "Booking still pending")
	assert.Contains(t, text, "BMW X5")
	assert.Contains(t, text, "Pickup: 01.06.2025")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	b, car := testBooking()

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), &domain.User{TelegramChatID: &chatID}, b, car)
		n.NotifyStatusChanged(context.Background(), &domain.User{}, b, car)
		n.NotifyPendingReminder(context.Background(), &domain.User{TelegramChatID: &chatID}, b, car)
	})
}
