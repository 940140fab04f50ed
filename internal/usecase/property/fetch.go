package property

import (
	"context"

	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/dto"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

type Details struct {
	Property *models.Property     `json:"property"`
	Bookings []domain.BookedRange `json:"bookings"`
}

type Queries struct {
	repo domain.PropertyRepository
	gate *authz.Gate
}

func NewQueries(repo domain.PropertyRepository, gate *authz.Gate) *Queries {
	return &Queries{repo: repo, gate: gate}
}

// --------------------------------------------------
// Public
// --------------------------------------------------

func (q *Queries) FetchProperties(ctx context.Context, search, category string) ([]dto.PropertyCard, error) {
	cards, err := q.repo.ListProperties(ctx, domain.PropertyFilter{Search: search, Category: category})
	return cards, httperr.Persistence(err)
}

func (q *Queries) FetchPropertyDetails(ctx context.Context, id string) (*Details, error) {
	p, err := q.repo.FindPropertyDetails(ctx, id)
	if err != nil {
		return nil, httperr.Persistence(err)
	}

	ranges, err := q.repo.ListBookedRanges(ctx, id)
	if err != nil {
		return nil, httperr.Persistence(err)
	}
	if ranges == nil {
		ranges = []domain.BookedRange{}
	}

	return &Details{Property: p, Bookings: ranges}, nil
}

// --------------------------------------------------
// Owner
// --------------------------------------------------

func (q *Queries) FetchRentals(ctx context.Context, ident *identity.Identity) ([]domain.RentalIncome, error) {
	me, err := q.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return nil, err
	}

	rows, err := q.repo.ListRentalIncome(ctx, me.ClerkID)
	return rows, httperr.Persistence(err)
}

func (q *Queries) FetchRentalDetails(ctx context.Context, ident *identity.Identity, id string) (*models.Property, error) {
	me, err := q.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return nil, err
	}

	p, err := q.repo.FindOwnedProperty(ctx, id, me.ClerkID)
	if err != nil {
		return nil, httperr.Persistence(err)
	}
	return p, nil
}
