package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

type mockProfiles struct {
	mock.Mock
}

func (m *mockProfiles) FindProfileByClerkID(ctx context.Context, clerkID string) (*models.Profile, error) {
	args := m.Called(ctx, clerkID)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

func TestResolveActingProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("no identity", func(t *testing.T) {
		g := NewGate(new(mockProfiles), identity.NewMemoryMetadataStore())

		_, err := g.ResolveActingProfile(ctx, nil)
		assert.ErrorIs(t, err, ErrUnauthenticated)

		_, err = g.ResolveActingProfile(ctx, &identity.Identity{})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("metadata says no profile, store is not queried", func(t *testing.T) {
		profiles := new(mockProfiles)
		g := NewGate(profiles, identity.NewMemoryMetadataStore())

		_, err := g.ResolveActingProfile(ctx, &identity.Identity{ID: "u1"})

		assert.ErrorIs(t, err, ErrProfileRequired)
		profiles.AssertNotCalled(t, "FindProfileByClerkID", mock.Anything, mock.Anything)
	})

	t.Run("claim says profile but row is missing", func(t *testing.T) {
		profiles := new(mockProfiles)
		profiles.On("FindProfileByClerkID", ctx, "u1").Return(nil, gorm.ErrRecordNotFound)
		g := NewGate(profiles, identity.NewMemoryMetadataStore())

		_, err := g.ResolveActingProfile(ctx, &identity.Identity{ID: "u1", HasProfile: true})

		assert.ErrorIs(t, err, ErrProfileRequired)
	})

	t.Run("stale claim is rescued by metadata", func(t *testing.T) {
		meta := identity.NewMemoryMetadataStore()
		require.NoError(t, meta.UpdateUserMetadata(ctx, "u1", identity.Metadata{HasProfile: true}))

		want := &models.Profile{ClerkID: "u1", FirstName: "Ana"}
		profiles := new(mockProfiles)
		profiles.On("FindProfileByClerkID", ctx, "u1").Return(want, nil)
		g := NewGate(profiles, meta)

		got, err := g.ResolveActingProfile(ctx, &identity.Identity{ID: "u1"})

		require.NoError(t, err)
		assert.Same(t, want, got)
		profiles.AssertExpectations(t)
	})

	t.Run("store failure is a persistence error", func(t *testing.T) {
		profiles := new(mockProfiles)
		profiles.On("FindProfileByClerkID", ctx, "u1").Return(nil, errors.New("connection refused"))
		g := NewGate(profiles, nil)

		_, err := g.ResolveActingProfile(ctx, &identity.Identity{ID: "u1", HasProfile: true})

		assert.True(t, httperr.IsPersistence(err))
		assert.EqualError(t, err, "connection refused")
	})
}
