package profile

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/rental-marketplace/internal/audit"
	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/outcome"
	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
	"github.com/BruksfildServices01/rental-marketplace/internal/storage"
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase"
)

const (
	ActionUpdate      = "profile_updated"
	ActionUpdateImage = "profile_image_updated"

	profilePath = "/profile"
)

// pagePaths lists the views that render the profile: its own page and every
// property page carrying one of its reviews.
func pagePaths(ctx context.Context, reviews domain.ReviewRepository, clerkID string) []string {
	paths := []string{profilePath}

	rows, err := reviews.ListAuthorReviews(ctx, clerkID)
	if err != nil {
		slog.Warn("reviewed properties lookup failed", "profile_id", clerkID, "error", err)
		return paths
	}

	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if seen[r.PropertyID] {
			continue
		}
		seen[r.PropertyID] = true
		paths = append(paths, "/properties/"+r.PropertyID)
	}
	return paths
}

// ======================================================
// UPDATE PROFILE
// ======================================================

type UpdateProfile struct {
	repo    domain.ProfileRepository
	reviews domain.ReviewRepository
	gate    *authz.Gate
	fx      usecase.Effects
}

func NewUpdateProfile(
	repo domain.ProfileRepository,
	reviews domain.ReviewRepository,
	gate *authz.Gate,
	fx usecase.Effects,
) *UpdateProfile {
	return &UpdateProfile{repo: repo, reviews: reviews, gate: gate, fx: fx}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	ident *identity.Identity,
	payload schema.Payload,
) (outcome.Outcome, error) {

	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(ActionUpdate, err)
	}

	in, err := schema.Validate[schema.ProfileInput](payload)
	if err != nil {
		return uc.fx.Fail(ActionUpdate, err)
	}

	if err := uc.repo.UpdateProfile(ctx, me.ClerkID, in.FirstName, in.LastName, in.Username); err != nil {
		return uc.fx.Fail(ActionUpdate, httperr.Persistence(err))
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionUpdate,
		Entity:    "profile",
		EntityID:  me.ID,
	}, pagePaths(ctx, uc.reviews, me.ClerkID)...)

	return outcome.Result("Profile updated successfully"), nil
}

// ======================================================
// UPDATE PROFILE IMAGE
// ======================================================

type UpdateProfileImage struct {
	repo    domain.ProfileRepository
	reviews domain.ReviewRepository
	gate    *authz.Gate
	images  storage.ImageUploader
	fx      usecase.Effects
}

func NewUpdateProfileImage(
	repo domain.ProfileRepository,
	reviews domain.ReviewRepository,
	gate *authz.Gate,
	images storage.ImageUploader,
	fx usecase.Effects,
) *UpdateProfileImage {
	return &UpdateProfileImage{repo: repo, reviews: reviews, gate: gate, images: images, fx: fx}
}

func (uc *UpdateProfileImage) Execute(
	ctx context.Context,
	ident *identity.Identity,
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

	if err := uc.repo.UpdateProfileImage(ctx, me.ClerkID, path); err != nil {
		return uc.fx.Fail(ActionUpdateImage, httperr.Persistence(err))
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionUpdateImage,
		Entity:    "profile",
		EntityID:  me.ID,
		Metadata:  map[string]string{"image": path},
	}, pagePaths(ctx, uc.reviews, me.ClerkID)...)

	return outcome.Result("Profile image updated successfully"), nil
}
