package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	HasOverlap(ctx context.Context, carID string, pickup, returnDate time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ClaimReminders(ctx context.Context, until time.Time) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error)
}
