package dto

import "github.com/stpnv0/CarRental/internal/domain"

type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	TelegramChatID *int64 `json:"telegramChatId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CarDataRequest is the JSON document sent in the carData form field of add-car.
type CarDataRequest struct {
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Year            int     `json:"year"`
	Category        string  `json:"category"`
	SeatingCapacity int     `json:"seating_capacity"`
	FuelType        string  `json:"fuel_type"`
	Transmission    string  `json:"transmission"`
	PricePerDay     float64 `json:"pricePerDay"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
}

func (r CarDataRequest) ToInput() domain.CreateCarInput {
	return domain.CreateCarInput{
		Brand:           r.Brand,
		Model:           r.Model,
		Year:            r.Year,
		Category:        r.Category,
		SeatingCapacity: r.SeatingCapacity,
		FuelType:        r.FuelType,
		Transmission:    r.Transmission,
		PricePerDay:     r.PricePerDay,
		Location:        r.Location,
		Description:     r.Description,
	}
}

type CarIDRequest struct {
	CarID string `json:"carId" binding:"required"`
}

type CheckAvailabilityRequest struct {
	Location   string `json:"location"   binding:"required"`
	PickupDate string `json:"pickupDate" binding:"required"`
	ReturnDate string `json:"returnDate" binding:"required"`
}

type CreateBookingRequest struct {
	Car        string `json:"car"        binding:"required"`
	PickupDate string `json:"pickupDate" binding:"required"`
	ReturnDate string `json:"returnDate" binding:"required"`
}

type ChangeStatusRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Status    string `json:"status"    binding:"required"`
}
