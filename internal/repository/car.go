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

const carColumns = `c.id, c.owner_id, c.brand, c.model, c.year, c.category, c.seating_capacity,
		c.fuel_type, c.transmission, c.price_per_day, c.location, c.description,
		c.image, c.is_available, c.created_at, c.updated_at`

type CarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCarRepo(db *dbpg.DB) *CarRepository {
	return &CarRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CarRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (id, owner_id, brand, model, year, category, seating_capacity,
		  		fuel_type, transmission, price_per_day, location, description, image,
		  		is_available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.OwnerID, c.Brand, c.Model, c.Year, c.Category, c.SeatingCapacity,
		c.FuelType, c.Transmission, c.PricePerDay, c.Location, c.Description, c.Image,
		c.IsAvailable, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert car: %w", err)
	}

	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars c WHERE c.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}

	c, err := scanCar(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("scan car: %w", err)
	}

	return c, nil
}

func (r *CarRepository) ListAvailable(ctx context.Context) ([]*domain.Car, error) {
	query := `SELECT ` + carColumns + `
			  FROM cars c
			  WHERE c.is_available
			  ORDER BY c.created_at DESC`
	return r.list(ctx, query)
}

func (r *CarRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Car, error) {
	query := `SELECT ` + carColumns + `
			  FROM cars c
			  WHERE c.owner_id = $1
			  ORDER BY c.created_at DESC`
	return r.list(ctx, query, ownerID)
}

// SearchAvailable returns listed cars at location with no active booking overlapping [pickup, returnDate].
func (r *CarRepository) SearchAvailable(ctx context.Context, location string, pickup, returnDate time.Time) ([]*domain.Car, error) {
	query := `SELECT ` + carColumns + `
			  FROM cars c
			  WHERE c.location = $1
			    AND c.is_available
			    AND NOT EXISTS (
			        SELECT 1 FROM bookings b
			        WHERE b.car_id = c.id
			          AND b.status = ANY($4)
			          AND b.pickup_date <= $3
			          AND b.return_date >= $2
			    )
			  ORDER BY c.price_per_day`
	return r.list(ctx, query, location, pickup, returnDate, pq.Array(domain.ActiveStatuses))
}

func (r *CarRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	query := `UPDATE cars SET is_available = $2, updated_at = $3 WHERE id = $1`
	return r.update(ctx, query, id, available, time.Now().UTC())
}

// Delist keeps the row for booking history but detaches it from its owner.
func (r *CarRepository) Delist(ctx context.Context, id string) error {
	query := `UPDATE cars SET owner_id = NULL, is_available = FALSE, updated_at = $2 WHERE id = $1`
	return r.update(ctx, query, id, time.Now().UTC())
}

func (r *CarRepository) update(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("update car: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("car rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCarNotFound
	}

	return nil
}

func (r *CarRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Car, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var res []*domain.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func scanCar(s scanner) (*domain.Car, error) {
	var c domain.Car
	if err := s.Scan(carDest(&c)...); err != nil {
		return nil, err
	}
	return &c, nil
}
