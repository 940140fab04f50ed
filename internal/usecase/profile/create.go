package profile

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

const ActionCreate = "profile_created"

type CreateProfile struct {
	repo     domain.ProfileRepository
	gate     *authz.Gate
	metadata identity.MetadataStore
	fx       usecase.Effects
}

func NewCreateProfile(
	repo domain.ProfileRepository,
	gate *authz.Gate,
	metadata identity.MetadataStore,
	fx usecase.Effects,
) *CreateProfile {
	return &CreateProfile{
		repo:     repo,
		gate:     gate,
		metadata: metadata,
		fx:       fx,
	}
}

// Execute needs an identity but, unlike every other action, no profile.
func (uc *CreateProfile) Execute(
	ctx context.Context,
	ident *identity.Identity,
	payload schema.Payload,
) (outcome.Outcome, error) {

	user, err := uc.gate.RequireIdentity(ident)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	in, err := schema.Validate[schema.ProfileInput](payload)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	p := &models.Profile{
		ClerkID:      user.ID,
		Email:        user.Email,
		ProfileImage: user.ImageURL,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
	}
	if err := uc.repo.CreateProfile(ctx, p); err != nil {
		return uc.fx.Fail(ActionCreate, httperr.Persistence(err))
	}

	if err := uc.metadata.UpdateUserMetadata(ctx, user.ID, identity.Metadata{HasProfile: true}); err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: user.ID,
		Action:    ActionCreate,
		Entity:    "profile",
		EntityID:  p.ID,
	})

	return outcome.RedirectTo("/"), nil
}
