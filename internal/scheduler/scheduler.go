package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingReminder interface {
	RemindPending(ctx context.Context, within time.Duration) ([]*domain.Booking, error)
}

// Scheduler periodically reminds owners about pending bookings that start soon.
type Scheduler struct {
	bookingService bookingReminder
	interval       time.Duration
	window         time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingReminder,
	interval time.Duration,
	window time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		window:         window,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("reminder_window", s.window),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.bookingService.RemindPending(ctx, s.window)
	if err != nil {
		s.logger.Error("failed to send pending booking reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range reminded {
		s.logger.Info("owner reminded about pending booking",
			logger.String("booking_id", b.ID),
			logger.String("car_id", b.CarID),
			logger.String("owner_id", b.OwnerID),
		)
	}
}
