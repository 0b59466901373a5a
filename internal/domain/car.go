package domain

import "time"

type Car struct {
	ID              string    `json:"id"`
	OwnerID         *string   `json:"owner_id"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	Year            int       `json:"year"`
	Category        string    `json:"category"`
	SeatingCapacity int       `json:"seating_capacity"`
	FuelType        string    `json:"fuel_type"`
	Transmission    string    `json:"transmission"`
	PricePerDay     float64   `json:"price_per_day"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Image           string    `json:"image"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OwnedBy is false for delisted cars, whose owner reference is cleared.
func (c *Car) OwnedBy(userID string) bool {
	return c.OwnerID != nil && *c.OwnerID == userID
}

type CreateCarInput struct {
	Brand           string
	Model           string
	Year            int
	Category        string
	SeatingCapacity int
	FuelType        string
	Transmission    string
	PricePerDay     float64
	Location        string
	Description     string
}

type Dashboard struct {
	TotalCars         int        `json:"total_cars"`
	TotalBookings     int        `json:"total_bookings"`
	PendingBookings   int        `json:"pending_bookings"`
	CompletedBookings int        `json:"completed_bookings"`
	RecentBookings    []*Booking `json:"recent_bookings"`
	MonthlyRevenue    float64    `json:"monthly_revenue"`
}

// Image is an in-memory upload as received from a multipart form.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}
