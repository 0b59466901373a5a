package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/metrics"
	"github.com/stpnv0/CarRental/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	carRepo     ports.CarRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger

	// runs notifications off the request path
	async func(func())
	now   func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	carRepo ports.CarRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
		async:       func(f func()) { go f() },
		now:         time.Now,
	}
}

// SearchAvailable lists listed cars at a location that are free for the whole period.
func (s *BookingService) SearchAvailable(ctx context.Context, q domain.AvailabilityQuery) ([]*domain.Car, error) {
	q.Location = strings.TrimSpace(q.Location)
	if q.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if err := domain.ValidatePeriod(q.PickupDate, q.ReturnDate, s.now()); err != nil {
		return nil, err
	}

	cars, err := s.carRepo.SearchAvailable(ctx, q.Location, q.PickupDate, q.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("search available: %w", err)
	}
	metrics.ObserveAvailabilitySearch(len(cars))

	return cars, nil
}

// IsAvailable reports whether the car has no active booking overlapping [pickup, returnDate].
func (s *BookingService) IsAvailable(ctx context.Context, carID string, pickup, returnDate time.Time) (bool, error) {
	overlap, err := s.bookingRepo.HasOverlap(ctx, carID, pickup, returnDate)
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}
	return !overlap, nil
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := domain.ValidatePeriod(input.PickupDate, input.ReturnDate, s.now()); err != nil {
		return nil, err
	}

	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}
	if car.OwnerID == nil || !car.IsAvailable {
		metrics.IncBookingRejected("unlisted")
		return nil, domain.ErrCarNotAvailable
	}
	if car.OwnedBy(input.UserID) {
		return nil, fmt.Errorf("%w: you cannot book your own car", domain.ErrValidation)
	}

	available, err := s.IsAvailable(ctx, car.ID, input.PickupDate, input.ReturnDate)
	if err != nil {
		return nil, err
	}
	if !available {
		metrics.IncBookingRejected("overlap")
		return nil, domain.ErrCarNotAvailable
	}

	days := domain.RentalDays(input.PickupDate, input.ReturnDate)
	now := s.now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		CarID:      car.ID,
		UserID:     input.UserID,
		OwnerID:    *car.OwnerID,
		PickupDate: input.PickupDate,
		ReturnDate: input.ReturnDate,
		Status:     domain.BookingStatusPending,
		Price:      float64(days) * car.PricePerDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// the repository repeats the overlap check under a row lock on the car
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrCarNotAvailable) {
			metrics.IncBookingRejected("conflict")
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	metrics.IncBookingCreated()

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("car_id", booking.CarID),
		logger.String("user_id", booking.UserID),
		logger.Int("days", days),
	)

	s.async(func() {
		s.notifyOwner(context.WithoutCancel(ctx), booking, car)
	})

	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) ListByOwner(ctx context.Context, owner *domain.User) ([]*domain.Booking, error) {
	if !owner.IsOwner() {
		return nil, domain.ErrUnauthorized
	}
	return s.bookingRepo.ListByOwner(ctx, owner.ID)
}

// ChangeStatus lets the owner of the booked car set any status.
func (s *BookingService) ChangeStatus(ctx context.Context, ownerID, bookingID string, status domain.BookingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", domain.ErrValidation, status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if booking.OwnerID != ownerID {
		return domain.ErrUnauthorized
	}

	if err = s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	booking.Status = status
	metrics.IncBookingStatus(string(status))

	s.logger.Info("booking status changed",
		logger.String("booking_id", bookingID),
		logger.String("status", string(status)),
	)

	s.async(func() {
		s.notifyRenter(context.WithoutCancel(ctx), booking)
	})

	return nil
}

// RemindPending tells owners about pending bookings that start within the given
// window and still wait for their decision. Booking status is never changed here.
func (s *BookingService) RemindPending(ctx context.Context, within time.Duration) ([]*domain.Booking, error) {
	pending, err := s.bookingRepo.ClaimReminders(ctx, s.now().UTC().Add(within))
	if err != nil {
		return nil, fmt.Errorf("claim reminders: %w", err)
	}

	if len(pending) > 0 {
		s.logger.Info("pending booking reminders claimed",
			logger.Int("count", len(pending)),
		)

		s.async(func() {
			nctx := context.WithoutCancel(ctx)
			for _, b := range pending {
				s.remindOwner(nctx, b)
			}
		})
	}

	return pending, nil
}

func (s *BookingService) notifyOwner(ctx context.Context, b *domain.Booking, car *domain.Car) {
	owner, err := s.userRepo.GetByID(ctx, b.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for notification",
			logger.String("owner_id", b.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyBookingCreated(ctx, owner, b, car)
}

func (s *BookingService) notifyRenter(ctx context.Context, b *domain.Booking) {
	renter, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		s.logger.Error("failed to get user for status notification",
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	car, err := s.carRepo.GetByID(ctx, b.CarID)
	if err != nil {
		s.logger.Error("failed to get car for status notification",
			logger.String("car_id", b.CarID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyStatusChanged(ctx, renter, b, car)
}

func (s *BookingService) remindOwner(ctx context.Context, b *domain.Booking) {
	owner, err := s.userRepo.GetByID(ctx, b.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for reminder",
			logger.String("owner_id", b.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}

	car, err := s.carRepo.GetByID(ctx, b.CarID)
	if err != nil {
		s.logger.Error("failed to get car for reminder",
			logger.String("car_id", b.CarID),
			logger.String("error", err.Error()),
		)
		return
	}

	metrics.IncReminderSent()
	s.notifier.NotifyPendingReminder(ctx, owner, b, car)
}
