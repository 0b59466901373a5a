package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/metrics"
	"github.com/stpnv0/CarRental/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	bcryptCost        = 10
)

type UserService struct {
	repo   ports.UserRepo
	tokens ports.TokenIssuer
	images ports.ImageStore
}

func NewUserService(repo ports.UserRepo, tokens ports.TokenIssuer, images ports.ImageStore) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		images: images,
	}
}

// Register creates a user with the default role and returns a signed token.
func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (string, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return "", fmt.Errorf("%w: fill all the fields", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return "", fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	_, err := s.repo.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return "", domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return "", fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   string(hash),
		Role:           domain.RoleUser,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	metrics.IncUserRegistered()

	return s.issue(user.ID)
}

func (s *UserService) Login(ctx context.Context, input domain.LoginInput) (string, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.issue(user.ID)
}

// BecomeOwner is idempotent: repeating it on an owner is a no-op success.
func (s *UserService) BecomeOwner(ctx context.Context, userID string) error {
	if err := s.repo.UpdateRole(ctx, userID, domain.RoleOwner); err != nil {
		return fmt.Errorf("change role: %w", err)
	}
	return nil
}

func (s *UserService) UpdateImage(ctx context.Context, userID string, img *domain.Image) (string, error) {
	if img == nil || len(img.Data) == 0 {
		return "", domain.ErrImageRequired
	}

	url, err := s.images.Upload(ctx, img, ports.FolderUsers)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	if err = s.repo.UpdateImage(ctx, userID, url); err != nil {
		return "", fmt.Errorf("update image: %w", err)
	}

	return url, nil
}

func (s *UserService) issue(userID string) (string, error) {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
