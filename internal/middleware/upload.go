package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const imageKey = "image"

// Upload buffers a single multipart file from field into memory. A missing
// file is not an error here; handlers decide whether an image is required.
func Upload(field string, maxBytes int64) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header, err := c.FormFile(field)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				c.Next()
				return
			}
			abortUpload(c, fmt.Sprintf("invalid upload: %v", err))
			return
		}

		if header.Size > maxBytes {
			abortUpload(c, fmt.Sprintf("image is too large, limit is %d bytes", maxBytes))
			return
		}

		f, err := header.Open()
		if err != nil {
			abortUpload(c, "failed to read image")
			return
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
		if err != nil {
			abortUpload(c, "failed to read image")
			return
		}
		if int64(len(data)) > maxBytes {
			abortUpload(c, fmt.Sprintf("image is too large, limit is %d bytes", maxBytes))
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(data)
		}

		c.Set(imageKey, &domain.Image{
			Filename:    header.Filename,
			ContentType: contentType,
			Data:        data,
		})
		c.Next()
	}
}

// UploadedImage returns the file buffered by Upload, or nil.
func UploadedImage(c *ginext.Context) *domain.Image {
	v, ok := c.Get(imageKey)
	if !ok {
		return nil
	}
	img, _ := v.(*domain.Image)
	return img
}

func abortUpload(c *ginext.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusOK, ginext.H{"success": false, "message": msg})
}
