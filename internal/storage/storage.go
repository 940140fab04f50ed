// Package storage uploads listing and profile pictures to object storage and
// hands back the public reference that gets persisted.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/rental-marketplace/internal/imaging"
	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
)

// Backend is a bucket.
type Backend interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

type ImageUploader interface {
	UploadImage(ctx context.Context, f *schema.File) (string, error)
}

type ImageStore struct {
	backend   Backend
	publicURL string
	prefix    string
	opts      imaging.Options
	now       func() time.Time
}

func NewImageStore(backend Backend, publicURL, prefix string, opts imaging.Options) *ImageStore {
	return &ImageStore{
		backend:   backend,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		prefix:    strings.Trim(prefix, "/"),
		opts:      opts,
		now:       time.Now,
	}
}

// UploadImage stores f as webp under <prefix>/<yyyy>/<mm>/<uuid>.webp and
// returns its public URL.
func (s *ImageStore) UploadImage(ctx context.Context, f *schema.File) (string, error) {
	body, err := imaging.ToWebP(f.Data, s.opts)
	if err != nil {
		return "", fmt.Errorf("prepare image: %w", err)
	}

	now := s.now()
	key := fmt.Sprintf("%s/%d/%02d/%s.webp", s.prefix, now.Year(), now.Month(), uuid.NewString())

	if err := s.backend.Put(ctx, key, body, imaging.ContentTypeWebP); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

var _ ImageUploader = (*ImageStore)(nil)
