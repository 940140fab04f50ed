package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

type Queries struct {
	repo domain.ProfileRepository
	gate *authz.Gate
}

func NewQueries(repo domain.ProfileRepository, gate *authz.Gate) *Queries {
	return &Queries{repo: repo, gate: gate}
}

func (q *Queries) FetchProfile(ctx context.Context, ident *identity.Identity) (*models.Profile, error) {
	return q.gate.ResolveActingProfile(ctx, ident)
}

// FetchProfileImage is used by the navigation bar, so an anonymous caller or
// one without a profile simply gets no image.
func (q *Queries) FetchProfileImage(ctx context.Context, ident *identity.Identity) (string, error) {
	if ident == nil || ident.ID == "" {
		return "", nil
	}

	p, err := q.repo.FindProfileByClerkID(ctx, ident.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", httperr.Persistence(err)
	}
	return p.ProfileImage, nil
}
