package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/handler/dto"
	"github.com/stpnv0/CarRental/internal/middleware"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (string, error)
	Login(ctx context.Context, input domain.LoginInput) (string, error)
	BecomeOwner(ctx context.Context, userID string) error
	UpdateImage(ctx context.Context, userID string, img *domain.Image) (string, error)
}

type CarSvc interface {
	ListAvailable(ctx context.Context) ([]*domain.Car, error)
	AddCar(ctx context.Context, owner *domain.User, input domain.CreateCarInput, img *domain.Image) (*domain.Car, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Car, error)
	ToggleAvailability(ctx context.Context, ownerID, carID string) (bool, error)
	Delist(ctx context.Context, ownerID, carID string) error
	Dashboard(ctx context.Context, owner *domain.User) (*domain.Dashboard, error)
}

type BookingSvc interface {
	SearchAvailable(ctx context.Context, q domain.AvailabilityQuery) ([]*domain.Car, error)
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, owner *domain.User) ([]*domain.Booking, error)
	ChangeStatus(ctx context.Context, ownerID, bookingID string, status domain.BookingStatus) error
}

type Handler struct {
	userService    UserSvc
	carService     CarSvc
	bookingService BookingSvc
	logger         logger.Logger
}

func NewHandler(userService UserSvc, carService CarSvc, bookingService BookingSvc, logger logger.Logger) *Handler {
	return &Handler{
		userService:    userService,
		carService:     carService,
		bookingService: bookingService,
		logger:         logger,
	}
}

// publicErrors maps domain errors to the messages API clients display.
var publicErrors = []struct {
	err     error
	message string
}{
	{domain.ErrUserNotFound, "User not found"},
	{domain.ErrCarNotFound, "Car not found"},
	{domain.ErrBookingNotFound, "Booking not found"},
	{domain.ErrUserExists, "User already exists"},
	{domain.ErrInvalidCredentials, "Invalid Credentials"},
	{domain.ErrNotAuthorized, "not authorized"},
	{domain.ErrUnauthorized, "Unauthorized"},
	{domain.ErrCarNotAvailable, "Car is not available"},
	{domain.ErrCarImageRequired, "Please upload a car image."},
	{domain.ErrImageRequired, "Please upload an image."},
}

// handleError always answers 200: clients read the outcome from the body.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	if errors.Is(err, domain.ErrValidation) {
		fail(c, validationMessage(err))
		return
	}

	for _, pe := range publicErrors {
		if errors.Is(err, pe.err) {
			fail(c, pe.message)
			return
		}
	}

	h.logger.LogAttrs(c.Request.Context(), logger.ErrorLevel, "request failed",
		logger.String("path", c.Request.URL.Path),
		logger.String("error", err.Error()),
	)
	fail(c, "internal server error")
}

// validationMessage drops wrapping prefixes, keeps the detail after "validation error: "
// and capitalises it for display.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		msg = msg[i+len(prefix):]
	}
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}

func fail(c *ginext.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Success: false, Message: message})
}

func ok(c *ginext.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: message})
}

func (h *Handler) currentUser(c *ginext.Context) (*domain.User, bool) {
	user, found := middleware.CurrentUser(c)
	if !found {
		fail(c, domain.ErrNotAuthorized.Error())
		return nil, false
	}
	return user, true
}
