package imagestore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/imagekit-developer/imagekit-go"
	"github.com/imagekit-developer/imagekit-go/api/uploader"
	ikurl "github.com/imagekit-developer/imagekit-go/url"
	"github.com/stpnv0/CarRental/internal/domain"
)

// Every stored URL is served resized, auto-compressed and converted to webp.
var defaultTransformation = []map[string]any{
	{"width": 1280},
	{"quality": "auto"},
	{"format": "webp"},
}

type ImageKitStore struct {
	ik *imagekit.ImageKit
}

func NewImageKitStore(privateKey, publicKey, urlEndpoint string) (*ImageKitStore, error) {
	if privateKey == "" || urlEndpoint == "" {
		return nil, errors.New("imagekit private key and url endpoint are required")
	}

	ik := imagekit.NewFromParams(imagekit.NewParams{
		PrivateKey:  privateKey,
		PublicKey:   publicKey,
		UrlEndpoint: urlEndpoint,
	})

	return &ImageKitStore{ik: ik}, nil
}

func (s *ImageKitStore) Upload(ctx context.Context, img *domain.Image, folder string) (string, error) {
	if img == nil || len(img.Data) == 0 {
		return "", domain.ErrImageRequired
	}

	resp, err := s.ik.Uploader.Upload(ctx, base64.StdEncoding.EncodeToString(img.Data), uploader.UploadParam{
		FileName: img.Filename,
		Folder:   folder,
	})
	if err != nil {
		return "", fmt.Errorf("imagekit upload: %w", err)
	}

	url, err := s.ik.Url(ikurl.UrlParam{
		Src:             resp.Data.Url,
		Transformations: defaultTransformation,
	})
	if err != nil {
		return "", fmt.Errorf("imagekit build url: %w", err)
	}

	return url, nil
}
