package pets

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrPhotosDisabled = errors.New("photo storage not configured")
	ErrInvalidImage   = errors.New("invalid base64 image")
)

// PhotoStore guarda la imagen y devuelve la URL pública.
type PhotoStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// UploadPhoto recibe un data URL ("data:image/jpeg;base64,....").
func (s *Service) UploadPhoto(ctx context.Context, petID, dataURL string) (Pet, error) {
	if s.photos == nil {
		return Pet{}, ErrPhotosDisabled
	}

	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	contentType, data, err := decodeDataURL(dataURL)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	key := fmt.Sprintf("pet-photos/%s-%d%s", p.ID, now.UnixNano(), extensionFor(contentType))

	url, err := s.photos.Put(ctx, key, contentType, data)
	if err != nil {
		return Pet{}, errors.Wrap(err, "upload photo")
	}

	p.PhotoURL = url
	p.UpdatedAt = now
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func decodeDataURL(s string) (string, []byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok || !strings.HasPrefix(meta, "data:") || !strings.HasSuffix(meta, ";base64") {
		return "", nil, ErrInvalidImage
	}

	contentType := strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return "", nil, ErrInvalidImage
	}
	return contentType, data, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if _, sub, ok := strings.Cut(contentType, "/"); ok {
		return "." + sub
	}
	return ""
}
