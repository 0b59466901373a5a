package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID         string        `json:"id"`
	CarID      string        `json:"car_id"`
	UserID     string        `json:"user_id"`
	OwnerID    string        `json:"owner_id"`
	PickupDate time.Time     `json:"pickup_date"`
	ReturnDate time.Time     `json:"return_date"`
	Status     BookingStatus `json:"status"`
	Price      float64       `json:"price"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	// Populated on list queries only.
	Car  *Car  `json:"car,omitempty"`
	User *User `json:"user,omitempty"`
}

type CreateBookingInput struct {
	CarID      string
	UserID     string
	PickupDate time.Time
	ReturnDate time.Time
}

type AvailabilityQuery struct {
	Location   string
	PickupDate time.Time
	ReturnDate time.Time
}
