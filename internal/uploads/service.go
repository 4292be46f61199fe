// Package uploads issues presigned URLs for the image upload workflow.
//
// Uploading is a three-step hand-off owned by the client: request a presigned
// PUT URL here, transfer the bytes directly to object storage, then reference
// the returned key in a movie or annotation metadata call. The steps are not
// atomic as a whole; an unused URL or an unreported upload leaves an orphaned
// object, which is tolerated. A failed PUT is retried by repeating the whole
// sequence with a fresh key.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shotdeck/service/internal/storage"
)

// ErrInvalidKey is returned when a view-URL request names a key outside the
// prefixes this service writes. Keeps the signer from blessing arbitrary
// object paths.
var ErrInvalidKey = errors.New("invalid storage key")

// ErrInvalidAssetType is returned for an asset type other than cover or annotation.
var ErrInvalidAssetType = errors.New("invalid asset type")

// PresignResult is the outcome of a presign request. PublicURL is only set
// when a CDN base is configured.
type PresignResult struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl,omitempty"`
}

// Service derives storage keys and delegates URL signing to the gateway.
type Service struct {
	store storage.Storage
}

// NewService creates a new uploads Service.
func NewService(store storage.Storage) *Service {
	return &Service{store: store}
}

// Presign derives a fresh write-once storage key for an image belonging to
// the movie and returns a short-lived upload URL for it.
func (s *Service) Presign(ctx context.Context, movieID, assetType, contentType string) (*PresignResult, error) {
	prefix, err := prefixFor(assetType)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s/%s.%s", prefix, movieID, uuid.NewString(), extensionFor(contentType))

	uploadURL, err := s.store.PresignPut(ctx, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &PresignResult{
		UploadURL: uploadURL,
		Key:       key,
		PublicURL: s.store.PublicURL(key),
	}, nil
}

// ViewURL resolves a stored key into a fresh presigned GET URL. Only keys
// under the prefixes this service derives are signed.
func (s *Service) ViewURL(ctx context.Context, key string) (string, error) {
	if len(key) < 3 {
		return "", ErrInvalidKey
	}
	if !strings.HasPrefix(key, "covers/") && !strings.HasPrefix(key, "annotations/") {
		return "", ErrInvalidKey
	}

	url, err := s.store.PresignGet(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign view url: %w", err)
	}
	return url, nil
}

func prefixFor(assetType string) (string, error) {
	switch assetType {
	case "cover":
		return "covers", nil
	case "annotation":
		return "annotations", nil
	default:
		return "", ErrInvalidAssetType
	}
}

// extensionFor maps a declared image content type to a file extension.
// JPEG and anything unrecognized fall back to jpg.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	case "image/avif":
		return "avif"
	default:
		return "jpg"
	}
}
