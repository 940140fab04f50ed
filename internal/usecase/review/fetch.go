package review

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/dto"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
	"github.com/BruksfildServices01/rental-marketplace/internal/revalidate"
)

const (
	viewReviews = "reviews"
	viewRating  = "rating"
)

type Queries struct {
	reviews    domain.ReviewRepository
	properties domain.PropertyRepository
	gate       *authz.Gate
	views      *revalidate.Cache
}

// NewQueries wires the review reads. views may be nil.
func NewQueries(
	reviews domain.ReviewRepository,
	properties domain.PropertyRepository,
	gate *authz.Gate,
	views *revalidate.Cache,
) *Queries {
	return &Queries{reviews: reviews, properties: properties, gate: gate, views: views}
}

// --------------------------------------------------
// Property page (cached under the property path)
// --------------------------------------------------

func (q *Queries) FetchPropertyReviews(ctx context.Context, propertyID string) ([]dto.PropertyReviewDTO, error) {
	return revalidate.Load(ctx, q.views, propertyPath(propertyID), viewReviews, func() ([]dto.PropertyReviewDTO, error) {
		rows, err := q.reviews.ListPropertyReviews(ctx, propertyID)
		if err != nil {
			return nil, httperr.Persistence(err)
		}

		out := make([]dto.PropertyReviewDTO, 0, len(rows))
		for _, r := range rows {
			item := dto.PropertyReviewDTO{
				ID:        r.ID,
				Rating:    r.Rating,
				Comment:   r.Comment,
				CreatedAt: r.CreatedAt,
			}
			if r.Profile != nil {
				item.Author = dto.ReviewAuthorDTO{
					FirstName:    r.Profile.FirstName,
					ProfileImage: r.Profile.ProfileImage,
				}
			}
			out = append(out, item)
		}
		return out, nil
	})
}

func (q *Queries) FetchPropertyRating(ctx context.Context, propertyID string) (domain.Rating, error) {
	return revalidate.Load(ctx, q.views, propertyPath(propertyID), viewRating, func() (domain.Rating, error) {
		r, err := q.reviews.PropertyRating(ctx, propertyID)
		return r, httperr.Persistence(err)
	})
}

// --------------------------------------------------
// Author
// --------------------------------------------------

func (q *Queries) FetchReviewsByUser(ctx context.Context, ident *identity.Identity) ([]dto.AuthorReviewDTO, error) {
	me, err := q.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return nil, err
	}

	rows, err := q.reviews.ListAuthorReviews(ctx, me.ClerkID)
	if err != nil {
		return nil, httperr.Persistence(err)
	}

	out := make([]dto.AuthorReviewDTO, 0, len(rows))
	for _, r := range rows {
		item := dto.AuthorReviewDTO{
			ID:        r.ID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
		if r.Property != nil {
			item.Property = dto.ReviewedPropertyDTO{
				ID:    r.Property.ID,
				Name:  r.Property.Name,
				Image: r.Property.Image,
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// FindExistingReview returns nil when the caller has not reviewed the
// property yet.
func (q *Queries) FindExistingReview(ctx context.Context, ident *identity.Identity, propertyID string) (*models.Review, error) {
	me, err := q.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return nil, err
	}

	r, err := q.reviews.FindExistingReview(ctx, me.ClerkID, propertyID)
	if err != nil {
		return nil, httperr.Persistence(err)
	}
	return r, nil
}

// CanReview is true for a signed-in profile that neither owns the property
// nor has reviewed it. Anonymous callers and callers without a profile get
// false, not an error.
func (q *Queries) CanReview(ctx context.Context, ident *identity.Identity, propertyID string) (bool, error) {
	me, err := q.gate.ResolveActingProfile(ctx, ident)
	if errors.Is(err, authz.ErrUnauthenticated) || errors.Is(err, authz.ErrProfileRequired) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	p, err := q.properties.FindProperty(ctx, propertyID)
	if err != nil {
		return false, httperr.Persistence(err)
	}
	if p.ProfileID == me.ClerkID {
		return false, nil
	}

	existing, err := q.reviews.FindExistingReview(ctx, me.ClerkID, propertyID)
	if err != nil {
		return false, httperr.Persistence(err)
	}
	return existing == nil, nil
}
