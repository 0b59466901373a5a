package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if filename != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("carData", `{}`))
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func setupUploadRouter(limit int64) http.Handler {
	r := ginext.New("test")
	r.POST("/upload", Upload("image", limit), func(c *ginext.Context) {
		img := UploadedImage(c)
		if img == nil {
			c.JSON(http.StatusOK, ginext.H{"success": true, "image": false})
			return
		}
		c.JSON(http.StatusOK, ginext.H{
			"success":  true,
			"image":    true,
			"filename": img.Filename,
			"size":     len(img.Data),
		})
	})
	return r
}

func TestUpload_BuffersFile(t *testing.T) {
	r := setupUploadRouter(1024)
	body, ct := multipartBody(t, "image", "car.png", []byte("\x89PNG\r\n\x1a\nrest"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"image":true`)
	assert.Contains(t, w.Body.String(), `"filename":"car.png"`)
	assert.Contains(t, w.Body.String(), `"size":12`)
}

func TestUpload_NoFilePassesThrough(t *testing.T) {
	r := setupUploadRouter(1024)
	body, ct := multipartBody(t, "image", "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), `"image":false`)
}

func TestUpload_TooLarge(t *testing.T) {
	r := setupUploadRouter(4)
	body, ct := multipartBody(t, "image", "car.png", []byte("0123456789"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "too large")
}
