package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CheckAvailability(c *ginext.Context) {
	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "location, pickupDate and returnDate are required")
		return
	}

	pickup, ret, err := parsePeriod(req.PickupDate, req.ReturnDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	cars, err := h.bookingService.SearchAvailable(c.Request.Context(), domain.AvailabilityQuery{
		Location:   req.Location,
		PickupDate: pickup,
		ReturnDate: ret,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailableCarsResponse{Success: true, AvailableCars: dto.ToCarsResponse(cars)})
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "car, pickupDate and returnDate are required")
		return
	}
	if _, err := uuid.Parse(req.Car); err != nil {
		h.handleError(c, domain.ErrCarNotFound)
		return
	}

	pickup, ret, err := parsePeriod(req.PickupDate, req.ReturnDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	_, err = h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		CarID:      req.Car,
		UserID:     user.ID,
		PickupDate: pickup,
		ReturnDate: ret,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	ok(c, "Booking Created")
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingsResponse{Success: true, Bookings: dto.ToBookingsResponse(bookings)})
}

func (h *Handler) GetOwnerBookings(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	bookings, err := h.bookingService.ListByOwner(c.Request.Context(), user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingsResponse{Success: true, Bookings: dto.ToBookingsResponse(bookings)})
}

func (h *Handler) ChangeBookingStatus(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "bookingId and status are required")
		return
	}
	if _, err := uuid.Parse(req.BookingID); err != nil {
		h.handleError(c, domain.ErrBookingNotFound)
		return
	}

	err := h.bookingService.ChangeStatus(c.Request.Context(), user.ID, req.BookingID, domain.BookingStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	ok(c, "Status Updated")
}

func parsePeriod(pickupRaw, returnRaw string) (pickup, ret time.Time, err error) {
	if pickup, err = domain.ParseDate(pickupRaw); err != nil {
		return
	}
	ret, err = domain.ParseDate(returnRaw)
	return
}
