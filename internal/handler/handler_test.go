package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/handler/dto"
	hmocks "github.com/stpnv0/CarRental/internal/handler/mocks"
	"github.com/stpnv0/CarRental/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type testDeps struct {
	users    *hmocks.MockUserSvc
	cars     *hmocks.MockCarSvc
	bookings *hmocks.MockBookingSvc
}

func setupRouter(t *testing.T, caller *domain.User) (testDeps, http.Handler) {
	t.Helper()
	deps := testDeps{
		users:    hmocks.NewMockUserSvc(t),
		cars:     hmocks.NewMockCarSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
	}

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	h := NewHandler(deps.users, deps.cars, deps.bookings, log)

	authed := func(c *ginext.Context) {
		if caller != nil {
			middleware.SetCurrentUser(c, caller)
		}
		c.Next()
	}

	r := ginext.New("test")
	user := r.Group("/api/user")
	{
		user.POST("/register", h.Register)
		user.POST("/login", h.Login)
		user.GET("/data", authed, h.GetUserData)
		user.GET("/cars", h.GetCars)
	}
	owner := r.Group("/api/owner", authed)
	{
		owner.POST("/change-role", h.ChangeRoleToOwner)
		owner.POST("/add-car", middleware.Upload("image", 1<<20), h.AddCar)
		owner.GET("/cars", h.GetOwnerCars)
		owner.POST("/toggle-car", h.ToggleCarAvailability)
		owner.POST("/delete-car", h.DeleteCar)
		owner.GET("/dashboard", h.GetDashboardData)
		owner.POST("/update-image", middleware.Upload("image", 1<<20), h.UpdateUserImage)
		owner.GET("/bookings/export", h.ExportOwnerBookings)
	}
	bookings := r.Group("/api/bookings")
	{
		bookings.POST("/check-availability", h.CheckAvailability)
		bookings.POST("/create", authed, h.CreateBooking)
		bookings.GET("/user", authed, h.GetUserBookings)
		bookings.GET("/owner", authed, h.GetOwnerBookings)
		bookings.POST("/change-status", authed, h.ChangeBookingStatus)
	}

	return deps, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) dto.MessageResponse {
	t.Helper()
	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

var (
	renter = &domain.User{ID: "u1", Name: "Renter", Email: "renter@example.com", Role: domain.RoleUser}
	owner  = &domain.User{ID: "o1", Name: "Owner", Email: "owner@example.com", Role: domain.RoleOwner}
)

const (
	carID     = "6f1c2a4e-8b3d-4e7a-9c21-5d0f3b8a7e11"
	bookingID = "0b9d7c35-2e4f-4a61-8d1c-7f3e5a9b2c40"
)

// --- User ---

func TestHandler_Register_Success(t *testing.T) {
	deps, r := setupRouter(t, nil)

	deps.users.EXPECT().Register(mock.Anything, domain.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	}).Return("signed", nil)

	w := doJSON(t, r, http.MethodPost, "/api/user/register", dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "signed", resp.Token)
}

func TestHandler_Register_ValidationMessage(t *testing.T) {
	deps, r := setupRouter(t, nil)

	deps.users.EXPECT().Register(mock.Anything, mock.Anything).
		Return("", errors.Join(errors.New("ignored"), wrapValidation("fill all the fields")))

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/user/register", dto.RegisterRequest{}))

	assert.False(t, resp.Success)
	assert.Equal(t, "Fill all the fields", resp.Message)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	deps, r := setupRouter(t, nil)

	deps.users.EXPECT().Login(mock.Anything, domain.LoginInput{Email: "a@b.c", Password: "nope"}).
		Return("", domain.ErrInvalidCredentials)

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/user/login", dto.LoginRequest{Email: "a@b.c", Password: "nope"}))

	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid Credentials", resp.Message)
}

func TestHandler_GetUserData(t *testing.T) {
	_, r := setupRouter(t, renter)

	w := doJSON(t, r, http.MethodGet, "/api/user/data", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	var resp dto.UserDataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "user", resp.User.Role)
}

func TestHandler_GetUserData_NoCaller(t *testing.T) {
	_, r := setupRouter(t, nil)

	resp := decodeMessage(t, doJSON(t, r, http.MethodGet, "/api/user/data", nil))

	assert.False(t, resp.Success)
	assert.Equal(t, "not authorized", resp.Message)
}

func TestHandler_GetCars(t *testing.T) {
	deps, r := setupRouter(t, nil)

	deps.cars.EXPECT().ListAvailable(mock.Anything).Return([]*domain.Car{
		{ID: "c1", Brand: "BMW", PricePerDay: 100, IsAvailable: true},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/user/cars", nil)

	assert.Contains(t, w.Body.String(), `"isAvaliable":true`)
	assert.Contains(t, w.Body.String(), `"pricePerDay":100`)

	var resp dto.CarsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cars, 1)
	assert.Equal(t, "c1", resp.Cars[0].ID)
}

func TestHandler_InternalErrorIsMasked(t *testing.T) {
	deps, r := setupRouter(t, nil)

	deps.cars.EXPECT().ListAvailable(mock.Anything).Return(nil, errors.New("pq: connection refused"))

	resp := decodeMessage(t, doJSON(t, r, http.MethodGet, "/api/user/cars", nil))

	assert.False(t, resp.Success)
	assert.Equal(t, "internal server error", resp.Message)
}

// --- Owner ---

func TestHandler_ChangeRole(t *testing.T) {
	deps, r := setupRouter(t, renter)

	deps.users.EXPECT().BecomeOwner(mock.Anything, "u1").Return(nil)

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/owner/change-role", nil))

	assert.True(t, resp.Success)
	assert.Equal(t, "Now you can list cars", resp.Message)
}

func addCarRequest(t *testing.T, carData string, withImage bool) *http.Request {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.WriteField("carData", carData))
	if withImage {
		fw, err := mw.CreateFormFile("image", "x5.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/owner/add-car", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandler_AddCar_Success(t *testing.T) {
	deps, r := setupRouter(t, owner)

	deps.cars.EXPECT().AddCar(mock.Anything, owner, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *domain.User, input domain.CreateCarInput, img *domain.Image) {
			assert.Equal(t, "BMW", input.Brand)
			assert.Equal(t, 120.0, input.PricePerDay)
			assert.Equal(t, 5, input.SeatingCapacity)
			require.NotNil(t, img)
			assert.Equal(t, "x5.jpg", img.Filename)
		}).
		Return(&domain.Car{ID: "c1"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, addCarRequest(t, `{"brand":"BMW","model":"X5","pricePerDay":120,"seating_capacity":5,"location":"NY"}`, true))

	resp := decodeMessage(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Car Added", resp.Message)
}

func TestHandler_AddCar_NoImage(t *testing.T) {
	deps, r := setupRouter(t, owner)

	deps.cars.EXPECT().AddCar(mock.Anything, owner, mock.Anything, (*domain.Image)(nil)).
		Return(nil, domain.ErrCarImageRequired)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, addCarRequest(t, `{"brand":"BMW"}`, false))

	resp := decodeMessage(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Please upload a car image.", resp.Message)
}

func TestHandler_AddCar_BadCarData(t *testing.T) {
	_, r := setupRouter(t, owner)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, addCarRequest(t, `{not json`, true))

	resp := decodeMessage(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid car data", resp.Message)
}

func TestHandler_ToggleCar(t *testing.T) {
	deps, r := setupRouter(t, owner)

	deps.cars.EXPECT().ToggleAvailability(mock.Anything, "o1", carID).Return(false, nil)

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/owner/toggle-car", dto.CarIDRequest{CarID: carID}))

	assert.True(t, resp.Success)
	assert.Equal(t, "Availability Toggled", resp.Message)
}

func TestHandler_ToggleCar_Unauthorized(t *testing.T) {
	deps, r := setupRouter(t, renter)

	deps.cars.EXPECT().ToggleAvailability(mock.Anything, "u1", carID).Return(false, domain.ErrUnauthorized)

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/owner/toggle-car", dto.CarIDRequest{CarID: carID}))

	assert.False(t, resp.Success)
	assert.Equal(t, "Unauthorized", resp.Message)
}

func TestHandler_DeleteCar_MissingID(t *testing.T) {
	_, r := setupRouter(t, owner)

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/owner/delete-car", map[string]string{}))

	assert.False(t, resp.Success)
}

func TestHandler_DeleteCar(t *testing.T) {
	deps, r := setupRouter(t, owner)

	deps.cars.EXPECT().Delist(mock.Anything, "o1", carID).Return(nil)

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/owner/delete-car", dto.CarIDRequest{CarID: carID}))

	assert.True(t, resp.Success)
	assert.Equal(t, "Car Removed", resp.Message)
}

func TestHandler_Dashboard(t *testing.T) {
	deps, r := setupRouter(t, owner)

	deps.cars.EXPECT().Dashboard(mock.Anything, owner).Return(&domain.Dashboard{
		TotalCars:         2,
		TotalBookings:     3,
		PendingBookings:   1,
		CompletedBookings: 2,
		RecentBookings: []*domain.Booking{
			{ID: "b1", CarID: "c1", Car: &domain.Car{ID: "c1", Brand: "BMW"}, Status: domain.BookingStatusConfirmed},
		},
		MonthlyRevenue: 450,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/owner/dashboard", nil)

	var resp struct {
		Success       bool `json:"success"`
		DashboardData struct {
			TotalCars      int     `json:"totalCars"`
			MonthlyRevenue float64 `json:"monthlyRevenue"`
			RecentBookings []struct {
				Car struct {
					Brand string `json:"brand"`
				} `json:"car"`
			} `json:"recentBookings"`
		} `json:"dashboardData"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.DashboardData.TotalCars)
	assert.Equal(t, 450.0, resp.DashboardData.MonthlyRevenue)
	require.Len(t, resp.DashboardData.RecentBookings, 1)
	assert.Equal(t, "BMW", resp.DashboardData.RecentBookings[0].Car.Brand)
}

func TestHandler_ExportBookings(t *testing.T) {
	deps, r := setupRouter(t, owner)

	deps.bookings.EXPECT().ListByOwner(mock.Anything, owner).Return([]*domain.Booking{
		{
			ID: "b1", Status: domain.BookingStatusConfirmed, Price: 300,
			PickupDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			ReturnDate: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			Car:        &domain.Car{Brand: "BMW", Model: "X5"},
			User:       &domain.User{Name: "Renter"},
		},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/owner/bookings/export", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	// xlsx is a zip container
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestHandler_ExportBookings_NotOwner(t *testing.T) {
	deps, r := setupRouter(t, renter)

	deps.bookings.EXPECT().ListByOwner(mock.Anything, renter).Return(nil, domain.ErrUnauthorized)

	resp := decodeMessage(t, doJSON(t, r, http.MethodGet, "/api/owner/bookings/export", nil))

	assert.False(t, resp.Success)
	assert.Equal(t, "Unauthorized", resp.Message)
}

// --- Bookings ---

func TestHandler_CheckAvailability(t *testing.T) {
	deps, r := setupRouter(t, nil)

	deps.bookings.EXPECT().SearchAvailable(mock.Anything, domain.AvailabilityQuery{
		Location:   "Berlin",
		PickupDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}).Return([]*domain.Car{{ID: "c1", Location: "Berlin"}}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/check-availability", dto.CheckAvailabilityRequest{
		Location: "Berlin", PickupDate: "2025-03-10", ReturnDate: "2025-03-12",
	})

	var resp dto.AvailableCarsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.AvailableCars, 1)
}

func TestHandler_CheckAvailability_BadDate(t *testing.T) {
	_, r := setupRouter(t, nil)

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/bookings/check-availability", dto.CheckAvailabilityRequest{
		Location: "Berlin", PickupDate: "tomorrow", ReturnDate: "2025-03-12",
	}))

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Invalid date")
}

func TestHandler_CreateBooking(t *testing.T) {
	deps, r := setupRouter(t, renter)

	deps.bookings.EXPECT().Create(mock.Anything, domain.CreateBookingInput{
		CarID:      carID,
		UserID:     "u1",
		PickupDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}).Return(&domain.Booking{ID: "b1"}, nil)

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/bookings/create", dto.CreateBookingRequest{
		Car: carID, PickupDate: "2025-03-10", ReturnDate: "2025-03-12",
	}))

	assert.True(t, resp.Success)
	assert.Equal(t, "Booking Created", resp.Message)
}

func TestHandler_CreateBooking_NotAvailable(t *testing.T) {
	deps, r := setupRouter(t, renter)

	deps.bookings.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, errors.Join(errors.New("create booking"), domain.ErrCarNotAvailable))

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/bookings/create", dto.CreateBookingRequest{
		Car: carID, PickupDate: "2025-03-10", ReturnDate: "2025-03-12",
	}))

	assert.False(t, resp.Success)
	assert.Equal(t, "Car is not available", resp.Message)
}

func TestHandler_GetUserBookings_PopulatesCar(t *testing.T) {
	deps, r := setupRouter(t, renter)

	deps.bookings.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.Booking{
		{ID: "b1", CarID: "c1", UserID: "u1", Car: &domain.Car{ID: "c1", Brand: "BMW"}, Status: domain.BookingStatusPending},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/user", nil)

	assert.Contains(t, w.Body.String(), `"brand":"BMW"`)
	assert.Contains(t, w.Body.String(), `"user":"u1"`)
}

func TestHandler_GetOwnerBookings(t *testing.T) {
	deps, r := setupRouter(t, owner)

	deps.bookings.EXPECT().ListByOwner(mock.Anything, owner).Return([]*domain.Booking{
		{ID: "b1", Car: &domain.Car{ID: "c1"}, User: &domain.User{ID: "u1", PasswordHash: "hash"}},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/owner", nil)

	assert.NotContains(t, w.Body.String(), "hash")

	var resp dto.BookingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Bookings, 1)
}

func TestHandler_ChangeStatus(t *testing.T) {
	deps, r := setupRouter(t, owner)

	deps.bookings.EXPECT().ChangeStatus(mock.Anything, "o1", bookingID, domain.BookingStatusConfirmed).Return(nil)

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/bookings/change-status", dto.ChangeStatusRequest{
		BookingID: bookingID, Status: "confirmed",
	}))

	assert.True(t, resp.Success)
	assert.Equal(t, "Status Updated", resp.Message)
}

func TestHandler_ChangeStatus_NotFound(t *testing.T) {
	deps, r := setupRouter(t, owner)

	deps.bookings.EXPECT().ChangeStatus(mock.Anything, "o1", bookingID, domain.BookingStatusCancelled).
		Return(domain.ErrBookingNotFound)

	resp := decodeMessage(t, doJSON(t, r, http.MethodPost, "/api/bookings/change-status", dto.ChangeStatusRequest{
		BookingID: bookingID, Status: "cancelled",
	}))

	assert.False(t, resp.Success)
	assert.Equal(t, "Booking not found", resp.Message)
}

// Malformed ids never reach the services: the mocks fail on any unexpected call.
func TestHandler_MalformedIDs(t *testing.T) {
	tests := []struct {
		name    string
		caller  *domain.User
		path    string
		body    any
		message string
	}{
		{"toggle car", owner, "/api/owner/toggle-car", dto.CarIDRequest{CarID: "c1"}, "Car not found"},
		{"delete car", owner, "/api/owner/delete-car", dto.CarIDRequest{CarID: "not-a-uuid"}, "Car not found"},
		{"create booking", renter, "/api/bookings/create", dto.CreateBookingRequest{
			Car: "64f1a2b3c4d5e6f7a8b9c0d1", PickupDate: "2025-03-10", ReturnDate: "2025-03-12",
		}, "Car not found"},
		{"change status", owner, "/api/bookings/change-status", dto.ChangeStatusRequest{
			BookingID: "b1", Status: "confirmed",
		}, "Booking not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := setupRouter(t, tt.caller)

			w := doJSON(t, r, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			resp := decodeMessage(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestValidationMessage(t *testing.T) {
	assert.Equal(t, "Password must be at least 8 characters",
		validationMessage(fmt.Errorf("register: %w", wrapValidation("password must be at least 8 characters"))))
	assert.Equal(t, "Fill all the fields", validationMessage(wrapValidation("fill all the fields")))
	assert.Equal(t, "", validationMessage(wrapValidation("")))
}

func wrapValidation(detail string) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, detail)
}
