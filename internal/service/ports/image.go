package ports

import (
	"context"

	"github.com/stpnv0/CarRental/internal/domain"
)

// Upload folders on the image host.
const (
	FolderCars  = "/cars"
	FolderUsers = "/users"
)

// ImageStore uploads an image to the hosting service and returns its public, optimized URL.
type ImageStore interface {
	Upload(ctx context.Context, img *domain.Image, folder string) (string, error)
}
