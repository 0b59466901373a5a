package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `b.id, b.car_id, b.user_id, b.owner_id, b.pickup_date, b.return_date,
		b.status, b.price, b.created_at, b.updated_at`

const userJoinColumns = `u.id, u.name, u.email, u.role, u.image, u.created_at, u.updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create inserts the booking while holding a row lock on the car, so concurrent
// requests for the same car are serialized through the overlap check.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		ownerID   sql.NullString
		available bool
	)
	carQuery := `SELECT owner_id, is_available FROM cars WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, carQuery, b.CarID).Scan(&ownerID, &available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCarNotFound
		}
		return fmt.Errorf("lock car: %w", err)
	}
	if !ownerID.Valid || !available {
		return domain.ErrCarNotAvailable
	}

	var overlap bool
	overlapQuery := `SELECT EXISTS (
					   SELECT 1 FROM bookings
					   WHERE car_id = $1 AND status = ANY($2)
					     AND pickup_date <= $4 AND return_date >= $3)`
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.CarID,
		pq.Array(domain.ActiveStatuses), b.PickupDate, b.ReturnDate,
	).Scan(&overlap); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if overlap {
		return domain.ErrCarNotAvailable
	}

	query := `INSERT INTO bookings (id, car_id, user_id, owner_id, pickup_date, return_date,
				status, price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.CarID, b.UserID, ownerID.String,
		b.PickupDate, b.ReturnDate, b.Status, b.Price, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if pgErrCode(err) == pgExclusionViolation {
			return domain.ErrCarNotAvailable
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	b.OwnerID = ownerID.String

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(bookingDest(&b)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) HasOverlap(ctx context.Context, carID string, pickup, returnDate time.Time) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE car_id = $1 AND status = ANY($2)
				  AND pickup_date <= $4 AND return_date >= $3)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, carID, pq.Array(domain.ActiveStatuses), pickup, returnDate)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	var overlap bool
	if err = row.Scan(&overlap); err != nil {
		return false, fmt.Errorf("scan overlap: %w", err)
	}

	return overlap, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, time.Now().UTC())
	if err != nil {
		if pgErrCode(err) == pgExclusionViolation {
			return domain.ErrCarNotAvailable
		}
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// ClaimReminders marks pending bookings picked up no later than until as reminded
// and returns them. Each booking is claimed once; its status is left untouched.
func (r *BookingRepository) ClaimReminders(ctx context.Context, until time.Time) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings b
        SET reminded_at = NOW()
        WHERE b.status = $1
          AND b.reminded_at IS NULL
          AND b.pickup_date <= $2
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusPending, until)
	if err != nil {
		return nil, fmt.Errorf("claim reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(bookingDest(&b)...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// ListByUser returns the renter's bookings with the car populated, newest first.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, ` + carColumns + `
              FROM bookings b
              JOIN cars c ON c.id = b.car_id
              WHERE b.user_id = $1
              ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b := domain.Booking{Car: &domain.Car{}}
		dest := append(bookingDest(&b), carDest(b.Car)...)
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// ListByOwner returns bookings on the owner's cars with car and renter populated, newest first.
func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, ` + carColumns + `, ` + userJoinColumns + `
              FROM bookings b
              JOIN cars c ON c.id = b.car_id
              JOIN users u ON u.id = b.user_id
              WHERE b.owner_id = $1
              ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b := domain.Booking{Car: &domain.Car{}, User: &domain.User{}}
		dest := append(bookingDest(&b), carDest(b.Car)...)
		dest = append(dest,
			&b.User.ID, &b.User.Name, &b.User.Email, &b.User.Role,
			&b.User.Image, &b.User.CreatedAt, &b.User.UpdatedAt,
		)
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan booking by owner: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func bookingDest(b *domain.Booking) []any {
	return []any{
		&b.ID, &b.CarID, &b.UserID, &b.OwnerID, &b.PickupDate, &b.ReturnDate,
		&b.Status, &b.Price, &b.CreatedAt, &b.UpdatedAt,
	}
}

func carDest(c *domain.Car) []any {
	return []any{
		&c.ID, &c.OwnerID, &c.Brand, &c.Model, &c.Year, &c.Category, &c.SeatingCapacity,
		&c.FuelType, &c.Transmission, &c.PricePerDay, &c.Location, &c.Description,
		&c.Image, &c.IsAvailable, &c.CreatedAt, &c.UpdatedAt,
	}
}
