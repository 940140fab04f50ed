// Package authz resolves who is acting. Ownership is not checked here: the
// repositories put the acting profile id into every owner-scoped filter.
package authz

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

var (
	ErrUnauthenticated = httperr.ErrBusiness("unauthenticated")
	ErrProfileRequired = httperr.ErrBusiness("profile_required")
)

type ProfileFinder interface {
	FindProfileByClerkID(ctx context.Context, clerkID string) (*models.Profile, error)
}

type Gate struct {
	profiles ProfileFinder
	metadata identity.MetadataStore
}

func NewGate(profiles ProfileFinder, metadata identity.MetadataStore) *Gate {
	return &Gate{
		profiles: profiles,
		metadata: metadata,
	}
}

func (g *Gate) RequireIdentity(ident *identity.Identity) (*identity.Identity, error) {
	if ident == nil || ident.ID == "" {
		return nil, ErrUnauthenticated
	}
	return ident, nil
}

// ResolveActingProfile returns the caller's profile. A caller known to the
// identity provider but without a profile gets ErrProfileRequired.
func (g *Gate) ResolveActingProfile(ctx context.Context, ident *identity.Identity) (*models.Profile, error) {
	if _, err := g.RequireIdentity(ident); err != nil {
		return nil, err
	}

	if !ident.HasProfile && g.metadata != nil {
		md, err := g.metadata.GetUserMetadata(ctx, ident.ID)
		if err != nil {
			slog.Warn("identity metadata lookup failed", "user_id", ident.ID, "error", err)
		} else if !md.HasProfile {
			return nil, ErrProfileRequired
		}
	}

	profile, err := g.profiles.FindProfileByClerkID(ctx, ident.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileRequired
	}
	if err != nil {
		return nil, httperr.Persistence(err)
	}

	return profile, nil
}
