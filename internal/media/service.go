// Package media stores profile images in object storage and points the
// user's url field at the uploaded object.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

const maxImageBytes = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("image exceeds size limit")
)

type Uploader interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	PublicURL(key string) string
}

// ProfileUpdater is the slice of the user repository the service needs.
type ProfileUpdater interface {
	UpdateURL(id uint, url string) error
}

type Service interface {
	UploadAvatar(ctx context.Context, userID uint, contentType string, body io.Reader) (string, error)
}

type service struct {
	storage  Uploader
	profiles ProfileUpdater
}

func NewService(storage Uploader, profiles ProfileUpdater) Service {
	return &service{storage: storage, profiles: profiles}
}

func (s *service) UploadAvatar(ctx context.Context, userID uint, contentType string, body io.Reader) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}
	data, err := io.ReadAll(io.LimitReader(body, maxImageBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxImageBytes {
		return "", ErrTooLarge
	}

	key := fmt.Sprintf("users/%d/profile/%s%s", userID, uuid.NewString(), ext)
	if err := s.storage.Put(ctx, key, contentType, data); err != nil {
		return "", err
	}

	url := s.storage.PublicURL(key)
	if err := s.profiles.UpdateURL(userID, url); err != nil {
		return "", err
	}
	return url, nil
}
