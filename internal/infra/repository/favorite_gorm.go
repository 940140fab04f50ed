package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/dto"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

type FavoriteGormRepository struct {
	db *gorm.DB
}

func NewFavoriteGormRepository(db *gorm.DB) *FavoriteGormRepository {
	return &FavoriteGormRepository{db: db}
}

func (r *FavoriteGormRepository) FindFavoriteID(
	ctx context.Context,
	profileID, propertyID string,
) (string, error) {

	var f models.Favorite
	err := r.db.WithContext(ctx).
		Select("id").
		Where("profile_id = ? AND property_id = ?", profileID, propertyID).
		First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return f.ID, nil
}

func (r *FavoriteGormRepository) CreateFavorite(ctx context.Context, f *models.Favorite) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FavoriteGormRepository) DeleteOwnedFavorite(ctx context.Context, id, profileID string) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&models.Favorite{}))
}

func (r *FavoriteGormRepository) ListFavorites(
	ctx context.Context,
	profileID string,
) ([]dto.PropertyCard, error) {

	var cards []dto.PropertyCard
	if err := r.db.WithContext(ctx).
		Model(&models.Property{}).
		Select("properties.id, properties.name, properties.tagline, properties.country, properties.price, properties.image").
		Joins("JOIN favorites ON favorites.property_id = properties.id").
		Where("favorites.profile_id = ?", profileID).
		Order("favorites.created_at DESC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Compile-time check
var _ domain.FavoriteRepository = (*FavoriteGormRepository)(nil)
