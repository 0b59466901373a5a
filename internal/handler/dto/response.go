package dto

import (
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
)

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type UserDataResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type CarsResponse struct {
	Success bool          `json:"success"`
	Cars    []CarResponse `json:"cars"`
}

type AvailableCarsResponse struct {
	Success       bool          `json:"success"`
	AvailableCars []CarResponse `json:"availableCars"`
}

type BookingsResponse struct {
	Success  bool              `json:"success"`
	Bookings []BookingResponse `json:"bookings"`
}

type DashboardResponse struct {
	Success       bool          `json:"success"`
	DashboardData DashboardData `json:"dashboardData"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Image     string `json:"image"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type CarResponse struct {
	ID              string  `json:"_id"`
	Owner           *string `json:"owner"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Image           string  `json:"image"`
	Year            int     `json:"year"`
	Category        string  `json:"category"`
	SeatingCapacity int     `json:"seating_capacity"`
	FuelType        string  `json:"fuel_type"`
	Transmission    string  `json:"transmission"`
	PricePerDay     float64 `json:"pricePerDay"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
	IsAvailable     bool    `json:"isAvaliable"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// BookingResponse renders car and user as nested documents when they were
// loaded and as plain ids otherwise.
type BookingResponse struct {
	ID         string  `json:"_id"`
	Car        any     `json:"car"`
	User       any     `json:"user"`
	Owner      string  `json:"owner"`
	PickupDate string  `json:"pickupDate"`
	ReturnDate string  `json:"returnDate"`
	Status     string  `json:"status"`
	Price      float64 `json:"price"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

type DashboardData struct {
	TotalCars         int               `json:"totalCars"`
	TotalBookings     int               `json:"totalBookings"`
	PendingBookings   int               `json:"pendingBookings"`
	CompletedBookings int               `json:"completedBookings"`
	RecentBookings    []BookingResponse `json:"recentBookings"`
	MonthlyRevenue    float64           `json:"monthlyRevenue"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Image:     u.Image,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

func ToCarResponse(c *domain.Car) CarResponse {
	return CarResponse{
		ID:              c.ID,
		Owner:           c.OwnerID,
		Brand:           c.Brand,
		Model:           c.Model,
		Image:           c.Image,
		Year:            c.Year,
		Category:        c.Category,
		SeatingCapacity: c.SeatingCapacity,
		FuelType:        c.FuelType,
		Transmission:    c.Transmission,
		PricePerDay:     c.PricePerDay,
		Location:        c.Location,
		Description:     c.Description,
		IsAvailable:     c.IsAvailable,
		CreatedAt:       formatTime(c.CreatedAt),
		UpdatedAt:       formatTime(c.UpdatedAt),
	}
}

func ToCarsResponse(cars []*domain.Car) []CarResponse {
	resp := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		resp = append(resp, ToCarResponse(c))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		Car:        b.CarID,
		User:       b.UserID,
		Owner:      b.OwnerID,
		PickupDate: formatTime(b.PickupDate),
		ReturnDate: formatTime(b.ReturnDate),
		Status:     string(b.Status),
		Price:      b.Price,
		CreatedAt:  formatTime(b.CreatedAt),
		UpdatedAt:  formatTime(b.UpdatedAt),
	}
	if b.Car != nil {
		resp.Car = ToCarResponse(b.Car)
	}
	if b.User != nil {
		resp.User = ToUserResponse(b.User)
	}
	return resp
}

func ToBookingsResponse(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToDashboardData(d *domain.Dashboard) DashboardData {
	return DashboardData{
		TotalCars:         d.TotalCars,
		TotalBookings:     d.TotalBookings,
		PendingBookings:   d.PendingBookings,
		CompletedBookings: d.CompletedBookings,
		RecentBookings:    ToBookingsResponse(d.RecentBookings),
		MonthlyRevenue:    d.MonthlyRevenue,
	}
}
