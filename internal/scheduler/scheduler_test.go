package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_RemindsWithinWindow(t *testing.T) {
	reminder := mocks.NewMockBookingReminder(t)
	s := New(reminder, time.Hour, 24*time.Hour, newTestLogger(t))

	reminded := []*domain.Booking{
		{ID: "b1", CarID: "c1", OwnerID: "o1", Status: domain.BookingStatusPending},
	}
	reminder.EXPECT().RemindPending(mock.Anything, 24*time.Hour).Return(reminded, nil).Once()

	s.tick(context.Background())
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	reminder := mocks.NewMockBookingReminder(t)
	s := New(reminder, time.Hour, 24*time.Hour, newTestLogger(t))

	reminder.EXPECT().RemindPending(mock.Anything, 24*time.Hour).Return(nil, errors.New("db error")).Once()

	s.tick(context.Background())
}

func TestScheduler_Start_Ticks(t *testing.T) {
	reminder := mocks.NewMockBookingReminder(t)
	s := New(reminder, 20*time.Millisecond, time.Hour, newTestLogger(t))

	reminder.EXPECT().RemindPending(mock.Anything, time.Hour).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reminder.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reminder := mocks.NewMockBookingReminder(t)
	s := New(reminder, time.Hour, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
