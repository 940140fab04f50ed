package favorite

import (
	"context"

	"github.com/BruksfildServices01/rental-marketplace/internal/audit"
	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
	"github.com/BruksfildServices01/rental-marketplace/internal/outcome"
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase"
)

const (
	ActionAdd    = "favorite_added"
	ActionRemove = "favorite_removed"
)

type ToggleInput struct {
	PropertyID string
	// FavoriteID is the id the caller last saw; empty means "not a favorite".
	FavoriteID string
	// Pathname is the page the toggle was pressed on.
	Pathname string
}

// ToggleFavorite flips a favorite based on the state the caller last saw.
// Two concurrent adds can both succeed.
type ToggleFavorite struct {
	repo domain.FavoriteRepository
	gate *authz.Gate
	fx   usecase.Effects
}

func NewToggleFavorite(repo domain.FavoriteRepository, gate *authz.Gate, fx usecase.Effects) *ToggleFavorite {
	return &ToggleFavorite{repo: repo, gate: gate, fx: fx}
}

func (uc *ToggleFavorite) Execute(
	ctx context.Context,
	ident *identity.Identity,
	in ToggleInput,
) (outcome.Outcome, error) {

	action := ActionAdd
	if in.FavoriteID != "" {
		action = ActionRemove
	}

	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(action, err)
	}

	var (
		entityID string
		message  string
	)

	if in.FavoriteID != "" {
		if err := uc.repo.DeleteOwnedFavorite(ctx, in.FavoriteID, me.ClerkID); err != nil {
			return uc.fx.Fail(action, httperr.Persistence(err))
		}
		entityID = in.FavoriteID
		message = "Removed from Favorites"
	} else {
		f := &models.Favorite{ProfileID: me.ClerkID, PropertyID: in.PropertyID}
		if err := uc.repo.CreateFavorite(ctx, f); err != nil {
			return uc.fx.Fail(action, httperr.Persistence(err))
		}
		entityID = f.ID
		message = "Added to Favorites"
	}

	var paths []string
	if in.Pathname != "" {
		paths = append(paths, in.Pathname)
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    action,
		Entity:    "favorite",
		EntityID:  entityID,
		Metadata:  map[string]string{"property_id": in.PropertyID},
	}, paths...)

	return outcome.Result(message), nil
}
