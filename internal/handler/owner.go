package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/export"
	"github.com/stpnv0/CarRental/internal/handler/dto"
	"github.com/stpnv0/CarRental/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) ChangeRoleToOwner(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	if err := h.userService.BecomeOwner(c.Request.Context(), user.ID); err != nil {
		h.handleError(c, err)
		return
	}

	ok(c, "Now you can list cars")
}

// AddCar expects a multipart form: carData holds the car as a JSON string,
// image is buffered by the upload middleware.
func (h *Handler) AddCar(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	var req dto.CarDataRequest
	if err := json.Unmarshal([]byte(c.PostForm("carData")), &req); err != nil {
		fail(c, "invalid car data")
		return
	}

	if _, err := h.carService.AddCar(c.Request.Context(), user, req.ToInput(), middleware.UploadedImage(c)); err != nil {
		h.handleError(c, err)
		return
	}

	ok(c, "Car Added")
}

func (h *Handler) GetOwnerCars(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	cars, err := h.carService.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CarsResponse{Success: true, Cars: dto.ToCarsResponse(cars)})
}

func (h *Handler) ToggleCarAvailability(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	var req dto.CarIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "carId is required")
		return
	}
	if _, err := uuid.Parse(req.CarID); err != nil {
		h.handleError(c, domain.ErrCarNotFound)
		return
	}

	if _, err := h.carService.ToggleAvailability(c.Request.Context(), user.ID, req.CarID); err != nil {
		h.handleError(c, err)
		return
	}

	ok(c, "Availability Toggled")
}

func (h *Handler) DeleteCar(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	var req dto.CarIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "carId is required")
		return
	}
	if _, err := uuid.Parse(req.CarID); err != nil {
		h.handleError(c, domain.ErrCarNotFound)
		return
	}

	if err := h.carService.Delist(c.Request.Context(), user.ID, req.CarID); err != nil {
		h.handleError(c, err)
		return
	}

	ok(c, "Car Removed")
}

func (h *Handler) GetDashboardData(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	d, err := h.carService.Dashboard(c.Request.Context(), user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{Success: true, DashboardData: dto.ToDashboardData(d)})
}

func (h *Handler) UpdateUserImage(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	if _, err := h.userService.UpdateImage(c.Request.Context(), user.ID, middleware.UploadedImage(c)); err != nil {
		h.handleError(c, err)
		return
	}

	ok(c, "Image Updated")
}

func (h *Handler) ExportOwnerBookings(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	bookings, err := h.bookingService.ListByOwner(c.Request.Context(), user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err = export.WriteBookingsXLSX(&buf, bookings); err != nil {
		h.handleError(c, fmt.Errorf("export bookings: %w", err))
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
