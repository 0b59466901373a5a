package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
)

type CarRepo interface {
	Create(ctx context.Context, c *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	ListAvailable(ctx context.Context) ([]*domain.Car, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Car, error)
	SearchAvailable(ctx context.Context, location string, pickup, returnDate time.Time) ([]*domain.Car, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	Delist(ctx context.Context, id string) error
}
