// Package usecasetest wires real repositories over an in-memory database for
// action tests.
package usecasetest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	"github.com/BruksfildServices01/rental-marketplace/internal/events"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
	"github.com/BruksfildServices01/rental-marketplace/internal/testutil"
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase"
)

type Views struct {
	mu    sync.Mutex
	paths []string
}

func (v *Views) Revalidate(_ context.Context, paths ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.paths = append(v.paths, paths...)
}

func (v *Views) Paths() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.paths...)
}

type Actions struct {
	mu     sync.Mutex
	counts map[string]int
}

func (a *Actions) RecordAction(action, result string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.counts == nil {
		a.counts = map[string]int{}
	}
	a.counts[action+"/"+result]++
}

func (a *Actions) Count(action, result string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[action+"/"+result]
}

type Env struct {
	DB *gorm.DB

	Profiles   *repository.ProfileGormRepository
	Properties *repository.PropertyGormRepository
	Bookings   *repository.BookingGormRepository
	Reviews    *repository.ReviewGormRepository
	Favorites  *repository.FavoriteGormRepository

	Metadata *identity.MemoryMetadataStore
	Gate     *authz.Gate

	Views   *Views
	Actions *Actions
	Events  *events.RecordingPublisher
	Effects usecase.Effects
}

func New(t *testing.T) *Env {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	profiles := repository.NewProfileGormRepository(db)
	metadata := identity.NewMemoryMetadataStore()

	env := &Env{
		DB:         db,
		Profiles:   profiles,
		Properties: repository.NewPropertyGormRepository(db),
		Bookings:   repository.NewBookingGormRepository(db),
		Reviews:    repository.NewReviewGormRepository(db),
		Favorites:  repository.NewFavoriteGormRepository(db),
		Metadata:   metadata,
		Gate:       authz.NewGate(profiles, metadata),
		Views:      &Views{},
		Actions:    &Actions{},
		Events:     &events.RecordingPublisher{},
	}
	env.Effects = usecase.Effects{
		Views:   env.Views,
		Metrics: env.Actions,
		Events:  env.Events,
	}
	return env
}

// User seeds a profile and returns the identity that acts as it.
func (e *Env) User(t *testing.T, clerkID string) *identity.Identity {
	t.Helper()
	testutil.SeedProfile(t, e.DB, clerkID)
	return &identity.Identity{ID: clerkID, Email: clerkID + "@example.com", HasProfile: true}
}

func (e *Env) Property(t *testing.T, ownerClerkID, name string, price int) *models.Property {
	t.Helper()
	return testutil.SeedProperty(t, e.DB, ownerClerkID, name, price)
}

func (e *Env) Count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.DB.Model(model).Count(&n).Error)
	return n
}
