package favorite

import (
	"context"

	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/dto"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
)

type Queries struct {
	repo domain.FavoriteRepository
	gate *authz.Gate
}

func NewQueries(repo domain.FavoriteRepository, gate *authz.Gate) *Queries {
	return &Queries{repo: repo, gate: gate}
}

// FetchFavoriteID returns "" when the property is not one of the caller's
// favorites.
func (q *Queries) FetchFavoriteID(ctx context.Context, ident *identity.Identity, propertyID string) (string, error) {
	me, err := q.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return "", err
	}

	id, err := q.repo.FindFavoriteID(ctx, me.ClerkID, propertyID)
	return id, httperr.Persistence(err)
}

func (q *Queries) FetchFavorites(ctx context.Context, ident *identity.Identity) ([]dto.PropertyCard, error) {
	me, err := q.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return nil, err
	}

	cards, err := q.repo.ListFavorites(ctx, me.ClerkID)
	if err != nil {
		return nil, httperr.Persistence(err)
	}
	return cards, nil
}
