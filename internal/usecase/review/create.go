package review

import (
	"context"

	"github.com/BruksfildServices01/rental-marketplace/internal/audit"
	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
	"github.com/BruksfildServices01/rental-marketplace/internal/outcome"
	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase"
)

const (
	ActionCreate = "review_created"
	ActionDelete = "review_deleted"

	reviewsPath = "/reviews"
)

func propertyPath(id string) string {
	return "/properties/" + id
}

// ======================================================
// CREATE REVIEW
// ======================================================

// CreateReview does not look for an earlier review by the same author:
// CanReview is what keeps the form away from people who already reviewed.
type CreateReview struct {
	repo domain.ReviewRepository
	gate *authz.Gate
	fx   usecase.Effects
}

func NewCreateReview(repo domain.ReviewRepository, gate *authz.Gate, fx usecase.Effects) *CreateReview {
	return &CreateReview{repo: repo, gate: gate, fx: fx}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	ident *identity.Identity,
	payload schema.Payload,
) (outcome.Outcome, error) {

	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	in, err := schema.Validate[schema.ReviewInput](payload)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	r := &models.Review{
		ProfileID:  me.ClerkID,
		PropertyID: in.PropertyID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	if err := uc.repo.CreateReview(ctx, r); err != nil {
		return uc.fx.Fail(ActionCreate, httperr.Persistence(err))
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionCreate,
		Entity:    "review",
		EntityID:  r.ID,
		Metadata:  map[string]any{"property_id": r.PropertyID, "rating": r.Rating},
	}, propertyPath(in.PropertyID))

	return outcome.Result("Review created successfully"), nil
}

// ======================================================
// DELETE REVIEW
// ======================================================

type DeleteReview struct {
	repo domain.ReviewRepository
	gate *authz.Gate
	fx   usecase.Effects
}

func NewDeleteReview(repo domain.ReviewRepository, gate *authz.Gate, fx usecase.Effects) *DeleteReview {
	return &DeleteReview{repo: repo, gate: gate, fx: fx}
}

func (uc *DeleteReview) Execute(
	ctx context.Context,
	ident *identity.Identity,
	reviewID string,
) (outcome.Outcome, error) {

	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(ActionDelete, err)
	}

	// the property page shows the rating, so its path goes stale too
	r, err := uc.repo.FindOwnedReview(ctx, reviewID, me.ClerkID)
	if err != nil {
		return uc.fx.Fail(ActionDelete, httperr.Persistence(err))
	}

	if err := uc.repo.DeleteOwnedReview(ctx, r.ID, me.ClerkID); err != nil {
		return uc.fx.Fail(ActionDelete, httperr.Persistence(err))
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionDelete,
		Entity:    "review",
		EntityID:  r.ID,
	}, reviewsPath, propertyPath(r.PropertyID))

	return outcome.Result("Review deleted successfully"), nil
}
