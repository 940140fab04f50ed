package property

import (
	"context"

	"github.com/BruksfildServices01/rental-marketplace/internal/audit"
	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/events"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
	"github.com/BruksfildServices01/rental-marketplace/internal/outcome"
	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
	"github.com/BruksfildServices01/rental-marketplace/internal/storage"
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase"
)

const ActionCreate = "property_created"

type CreateProperty struct {
	repo   domain.PropertyRepository
	gate   *authz.Gate
	images storage.ImageUploader
	fx     usecase.Effects
}

func NewCreateProperty(
	repo domain.PropertyRepository,
	gate *authz.Gate,
	images storage.ImageUploader,
	fx usecase.Effects,
) *CreateProperty {
	return &CreateProperty{
		repo:   repo,
		gate:   gate,
		images: images,
		fx:     fx,
	}
}

func (uc *CreateProperty) Execute(
	ctx context.Context,
	ident *identity.Identity,
	payload schema.Payload,
) (outcome.Outcome, error) {

	// --------------------------------------------------
	// Caller
	// --------------------------------------------------
	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	// --------------------------------------------------
	// Payload (fields first, then the picture)
	// --------------------------------------------------
	in, err := schema.Validate[schema.PropertyInput](payload)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	img, err := schema.Validate[schema.ImageInput](payload)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	path, err := uc.images.UploadImage(ctx, img.Image)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	// --------------------------------------------------
	// Write
	// --------------------------------------------------
	p := &models.Property{
		Name:        in.Name,
		Tagline:     in.Tagline,
		Category:    in.Category,
		Description: in.Description,
		Country:     in.Country,
		Amenities:   in.Amenities,
		Price:       in.Price,
		Guests:      in.Guests,
		Bedrooms:    in.Bedrooms,
		Beds:        in.Beds,
		Baths:       in.Baths,
		Image:       path,
		ProfileID:   me.ClerkID,
	}
	if err := uc.repo.CreateProperty(ctx, p); err != nil {
		return uc.fx.Fail(ActionCreate, httperr.Persistence(err))
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionCreate,
		Entity:    "property",
		EntityID:  p.ID,
	}, "/")
	uc.fx.Announce(ctx, events.ActionCreate, p.ID)

	return outcome.RedirectTo("/"), nil
}
