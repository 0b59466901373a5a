package ports

import (
	"context"

	"github.com/stpnv0/CarRental/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, owner *domain.User, booking *domain.Booking, car *domain.Car)
	NotifyStatusChanged(ctx context.Context, renter *domain.User, booking *domain.Booking, car *domain.Car)
	NotifyPendingReminder(ctx context.Context, owner *domain.User, booking *domain.Booking, car *domain.Car)
}
