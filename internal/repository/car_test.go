package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "owner_id", "brand", "model", "year", "category", "seating_capacity",
		"fuel_type", "transmission", "price_per_day", "location", "description",
		"image", "is_available", "created_at", "updated_at",
	})
}

func TestCarRepository_SearchAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &CarRepository{db: db, strategy: singleAttempt()}
	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		`b.status = ANY($4) AND b.pickup_date <= $3 AND b.return_date >= $2`,
	)).
		WithArgs("Berlin", testPickup, testReturn, activeStatusArray{}).
		WillReturnRows(carRows().AddRow(
			testCarID, testOwnerID, "BMW", "X5", 2022, "SUV", 5,
			"Petrol", "Automatic", 120.0, "Berlin", "", "https://ik.example/cars/x5.webp",
			true, created, created,
		))

	cars, err := repo.SearchAvailable(context.Background(), "Berlin", testPickup, testReturn)

	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, testCarID, cars[0].ID)
	require.NotNil(t, cars[0].OwnerID)
	assert.Equal(t, testOwnerID, *cars[0].OwnerID)
	assert.True(t, cars[0].IsAvailable)
}

func TestCarRepository_SearchAvailable_OnlyListedCars(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &CarRepository{db: db, strategy: singleAttempt()}

	mock.ExpectQuery(`WHERE c\.location = \$1 AND c\.is_available AND NOT EXISTS`).
		WillReturnRows(carRows())

	cars, err := repo.SearchAvailable(context.Background(), "Nowhere", testPickup, testReturn)

	require.NoError(t, err)
	assert.Empty(t, cars)
}

func TestCarRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &CarRepository{db: db, strategy: singleAttempt()}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cars c WHERE c.id = $1`)).
		WithArgs(testCarID).
		WillReturnRows(carRows())

	_, err := repo.GetByID(context.Background(), testCarID)

	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestCarRepository_Create_UnknownOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &CarRepository{db: db, strategy: singleAttempt()}
	owner := testOwnerID

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cars")).
		WillReturnError(&pq.Error{Code: pgForeignKeyViolation})

	err := repo.Create(context.Background(), &domain.Car{ID: testCarID, OwnerID: &owner})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
