package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const recentBookingsLimit = 3

type CarService struct {
	repo        ports.CarRepo
	bookingRepo ports.BookingRepo
	images      ports.ImageStore
	logger      logger.Logger
}

func NewCarService(
	repo ports.CarRepo,
	bookingRepo ports.BookingRepo,
	images ports.ImageStore,
	logger logger.Logger,
) *CarService {
	return &CarService{
		repo:        repo,
		bookingRepo: bookingRepo,
		images:      images,
		logger:      logger,
	}
}

func (s *CarService) ListAvailable(ctx context.Context) ([]*domain.Car, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *CarService) AddCar(ctx context.Context, owner *domain.User, input domain.CreateCarInput, img *domain.Image) (*domain.Car, error) {
	if !owner.IsOwner() {
		return nil, domain.ErrUnauthorized
	}
	if err := validateCarInput(&input); err != nil {
		return nil, err
	}
	if img == nil || len(img.Data) == 0 {
		return nil, domain.ErrCarImageRequired
	}

	url, err := s.images.Upload(ctx, img, ports.FolderCars)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	now := time.Now().UTC()
	ownerID := owner.ID
	car := &domain.Car{
		ID:              uuid.New().String(),
		OwnerID:         &ownerID,
		Brand:           input.Brand,
		Model:           input.Model,
		Year:            input.Year,
		Category:        input.Category,
		SeatingCapacity: input.SeatingCapacity,
		FuelType:        input.FuelType,
		Transmission:    input.Transmission,
		PricePerDay:     input.PricePerDay,
		Location:        input.Location,
		Description:     input.Description,
		Image:           url,
		IsAvailable:     true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.repo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	s.logger.Info("car added",
		logger.String("car_id", car.ID),
		logger.String("owner_id", owner.ID),
	)

	return car, nil
}

func (s *CarService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Car, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// ToggleAvailability flips the listing flag and returns the new value.
func (s *CarService) ToggleAvailability(ctx context.Context, ownerID, carID string) (bool, error) {
	car, err := s.ownedCar(ctx, ownerID, carID)
	if err != nil {
		return false, err
	}

	available := !car.IsAvailable
	if err = s.repo.SetAvailability(ctx, carID, available); err != nil {
		return false, fmt.Errorf("toggle availability: %w", err)
	}

	return available, nil
}

func (s *CarService) Delist(ctx context.Context, ownerID, carID string) error {
	if _, err := s.ownedCar(ctx, ownerID, carID); err != nil {
		return err
	}

	if err := s.repo.Delist(ctx, carID); err != nil {
		return fmt.Errorf("delist car: %w", err)
	}

	s.logger.Info("car removed",
		logger.String("car_id", carID),
		logger.String("owner_id", ownerID),
	)

	return nil
}

func (s *CarService) Dashboard(ctx context.Context, owner *domain.User) (*domain.Dashboard, error) {
	if !owner.IsOwner() {
		return nil, domain.ErrUnauthorized
	}

	cars, err := s.repo.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}

	bookings, err := s.bookingRepo.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	d := &domain.Dashboard{
		TotalCars:      len(cars),
		TotalBookings:  len(bookings),
		RecentBookings: bookings[:min(recentBookingsLimit, len(bookings))],
	}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingStatusPending:
			d.PendingBookings++
		case domain.BookingStatusConfirmed:
			d.CompletedBookings++
			d.MonthlyRevenue += b.Price
		}
	}

	return d, nil
}

func (s *CarService) ownedCar(ctx context.Context, ownerID, carID string) (*domain.Car, error) {
	car, err := s.repo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if !car.OwnedBy(ownerID) {
		return nil, domain.ErrUnauthorized
	}
	return car, nil
}

func validateCarInput(input *domain.CreateCarInput) error {
	input.Brand = strings.TrimSpace(input.Brand)
	input.Model = strings.TrimSpace(input.Model)
	input.Location = strings.TrimSpace(input.Location)

	switch {
	case input.Brand == "":
		return fmt.Errorf("%w: brand is required", domain.ErrValidation)
	case input.Model == "":
		return fmt.Errorf("%w: model is required", domain.ErrValidation)
	case input.Location == "":
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	case input.PricePerDay <= 0:
		return fmt.Errorf("%w: price per day must be positive", domain.ErrValidation)
	case input.SeatingCapacity < 0 || input.Year < 0:
		return fmt.Errorf("%w: year and seating capacity must not be negative", domain.ErrValidation)
	}

	return nil
}
