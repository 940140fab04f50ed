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
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase"
)

const ActionDelete = "rental_deleted"

type DeleteRental struct {
	repo domain.PropertyRepository
	gate *authz.Gate
	fx   usecase.Effects
}

func NewDeleteRental(repo domain.PropertyRepository, gate *authz.Gate, fx usecase.Effects) *DeleteRental {
	return &DeleteRental{repo: repo, gate: gate, fx: fx}
}

func (uc *DeleteRental) Execute(
	ctx context.Context,
	ident *identity.Identity,
	propertyID string,
) (outcome.Outcome, error) {

	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(ActionDelete, err)
	}

	if err := uc.repo.DeleteOwnedProperty(ctx, propertyID, me.ClerkID); err != nil {
		return uc.fx.Fail(ActionDelete, httperr.Persistence(err))
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionDelete,
		Entity:    "property",
		EntityID:  propertyID,
	}, "/rentals", publicPath(propertyID))
	uc.fx.Announce(ctx, events.ActionDelete, propertyID)

	return outcome.Result("Rental deleted successfully"), nil
}
