package property

import (
	"context"

	"github.com/BruksfildServices01/rental-marketplace/internal/audit"
	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/events"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/outcome"
	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
	"github.com/BruksfildServices01/rental-marketplace/internal/storage"
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase"
)

const (
	ActionUpdate      = "property_updated"
	ActionUpdateImage = "property_image_updated"
)

func editPath(id string) string {
	return "/rentals/" + id + "/edit"
}

func publicPath(id string) string {
	return "/properties/" + id
}

// ======================================================
// UPDATE PROPERTY
// ======================================================

type UpdateProperty struct {
	repo domain.PropertyRepository
	gate *authz.Gate
	fx   usecase.Effects
}

func NewUpdateProperty(repo domain.PropertyRepository, gate *authz.Gate, fx usecase.Effects) *UpdateProperty {
	return &UpdateProperty{repo: repo, gate: gate, fx: fx}
}

func (uc *UpdateProperty) Execute(
	ctx context.Context,
	ident *identity.Identity,
	propertyID string,
	payload schema.Payload,
) (outcome.Outcome, error) {

	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(ActionUpdate, err)
	}

	in, err := schema.Validate[schema.PropertyInput](payload)
	if err != nil {
		return uc.fx.Fail(ActionUpdate, err)
	}

	if err := uc.repo.UpdateOwnedProperty(ctx, propertyID, me.ClerkID, domain.PropertyChanges{
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
	}); err != nil {
		return uc.fx.Fail(ActionUpdate, httperr.Persistence(err))
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionUpdate,
		Entity:    "property",
		EntityID:  propertyID,
	}, editPath(propertyID), publicPath(propertyID))
	uc.fx.Announce(ctx, events.ActionUpdate, propertyID)

	return outcome.Result("Update successful"), nil
}

// ======================================================
// UPDATE PROPERTY IMAGE
// ======================================================

type UpdatePropertyImage struct {
	repo   domain.PropertyRepository
	gate   *authz.Gate
	images storage.ImageUploader
	fx     usecase.Effects
}

func NewUpdatePropertyImage(
	repo domain.PropertyRepository,
	gate *authz.Gate,
	images storage.ImageUploader,
	fx usecase.Effects,
) *UpdatePropertyImage {
	return &UpdatePropertyImage{repo: repo, gate: gate, images: images, fx: fx}
}

func (uc *UpdatePropertyImage) Execute(
	ctx context.Context,
	ident *identity.Identity,
	propertyID string,
	payload schema.Payload,
) (outcome.Outcome, error) {

	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(ActionUpdateImage, err)
	}

	in, err := schema.Validate[schema.ImageInput](payload)
	if err != nil {
		return uc.fx.Fail(ActionUpdateImage, err)
	}

	path, err := uc.images.UploadImage(ctx, in.Image)
	if err != nil {
		return uc.fx.Fail(ActionUpdateImage, err)
	}

	if err := uc.repo.UpdateOwnedPropertyImage(ctx, propertyID, me.ClerkID, path); err != nil {
		return uc.fx.Fail(ActionUpdateImage, httperr.Persistence(err))
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionUpdateImage,
		Entity:    "property",
		EntityID:  propertyID,
		Metadata:  map[string]string{"image": path},
	}, editPath(propertyID), publicPath(propertyID))
	uc.fx.Announce(ctx, events.ActionUpdate, propertyID)

	return outcome.Result("Property image updated successful"), nil
}
