// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"jewelstudio/internal/models"
)

// allowedImageTypes defines the sniffed MIME types accepted for upload.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// errBadUpload marks request problems the client can fix.
var errBadUpload = errors.New("bad upload")

func badUpload(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadUpload, fmt.Sprintf(format, args...))
}

// uploadMessage strips the errBadUpload prefix for display.
func uploadMessage(err error) string {
	return strings.TrimPrefix(err.Error(), errBadUpload.Error()+": ")
}

// parseMultipart parses a multipart form bounded by maxBytes.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	// Leave some headroom for the non-file fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+64<<10)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return badUpload("upload too large, maximum is %d MB", maxBytes>>20)
		}
		return badUpload("invalid multipart form")
	}
	return nil
}

// formImages reads every file under field as an image.
func formImages(r *http.Request, field string) ([]models.Image, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	images := make([]models.Image, 0, len(headers))
	for _, fh := range headers {
		img, err := readImage(fh)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

// formImage reads the optional single image under field. Returns nil when
// the field is absent.
func formImage(r *http.Request, field string) (*models.Image, error) {
	images, err := formImages(r, field)
	if err != nil || len(images) == 0 {
		return nil, err
	}
	return &images[0], nil
}

// readImage reads an uploaded file and checks its sniffed content type.
// The client-declared type is ignored.
func readImage(fh *multipart.FileHeader) (models.Image, error) {
	f, err := fh.Open()
	if err != nil {
		return models.Image{}, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.Image{}, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	if len(data) == 0 {
		return models.Image{}, badUpload("%s is empty", fh.Filename)
	}

	mimeType := sniffImage(data)
	if mimeType == "" {
		return models.Image{}, badUpload("%s is not a supported image (use JPEG, PNG, WebP or GIF)", fh.Filename)
	}
	return models.Image{Data: data, MimeType: mimeType}, nil
}

// sniffImage returns the detected image MIME type, or "" if not allowed.
func sniffImage(data []byte) string {
	ct := http.DetectContentType(data)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	if !allowedImageTypes[ct] {
		return ""
	}
	return ct
}

// formTypes collects asset types from repeated fields or comma separated
// values. Unknown names are passed through for the orchestrator to reject.
func formTypes(r *http.Request, field string) []models.AssetType {
	var types []models.AssetType
	for _, v := range r.MultipartForm.Value[field] {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToUpper(strings.TrimSpace(part))
			if part != "" {
				types = append(types, models.AssetType(part))
			}
		}
	}
	return types
}

// formDetails decodes the JSON product details field. A missing field
// yields the form defaults.
func formDetails(r *http.Request, field string) (models.ProductDetails, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return models.DefaultProductDetails(), nil
	}
	var d models.ProductDetails
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return d, badUpload("details must be a JSON object")
	}
	return normalizeDetails(d)
}

// decodeDataURL splits a base64 data URL into bytes and MIME type.
func decodeDataURL(s string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, "", badUpload("image content must be a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", badUpload("malformed data URL")
	}
	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, "", badUpload("data URL must be base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", badUpload("data URL payload is not valid base64")
	}
	if len(data) == 0 {
		return nil, "", badUpload("data URL payload is empty")
	}
	if sniffed := sniffImage(data); sniffed != "" {
		mimeType = sniffed
	} else if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", badUpload("data URL does not hold an image")
	}
	return data, mimeType, nil
}
