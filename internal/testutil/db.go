// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/rental-marketplace/internal/db"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

// NewSQLiteDB returns a migrated in-memory database private to the test.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,

		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// every connection to ":memory:" opens a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func SeedProfile(t *testing.T, gdb *gorm.DB, clerkID string) *models.Profile {
	t.Helper()

	p := &models.Profile{
		ClerkID:   clerkID,
		FirstName: "Ana",
		LastName:  "Souza",
		Username:  clerkID + "_user",
		Email:     clerkID + "@example.com",
	}
	require.NoError(t, gdb.Create(p).Error)
	return p
}

func SeedProperty(t *testing.T, gdb *gorm.DB, ownerClerkID, name string, price int) *models.Property {
	t.Helper()

	p := &models.Property{
		Name:        name,
		Tagline:     name + " tagline",
		Category:    "cabin",
		Country:     "BR",
		Description: "a quiet place by the lake with room for the whole family",
		Price:       price,
		Guests:      4,
		Bedrooms:    2,
		Beds:        2,
		Baths:       1,
		Amenities:   `[{"name":"wifi","selected":true}]`,
		Image:       "properties/" + name + ".webp",
		ProfileID:   ownerClerkID,
	}
	require.NoError(t, gdb.Create(p).Error)
	return p
}
