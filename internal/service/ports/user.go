package ports

import (
	"context"

	"github.com/stpnv0/CarRental/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdateImage(ctx context.Context, id, image string) error
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}
