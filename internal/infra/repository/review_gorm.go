package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) CreateReview(ctx context.Context, rv *models.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewGormRepository) ListPropertyReviews(
	ctx context.Context,
	propertyID string,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Profile", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("clerk_id", "first_name", "profile_image")
		}).
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) ListAuthorReviews(
	ctx context.Context,
	profileID string,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Property", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "image")
		}).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) FindExistingReview(
	ctx context.Context,
	profileID, propertyID string,
) (*models.Review, error) {

	var rv models.Review
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND property_id = ?", profileID, propertyID).
		First(&rv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) FindOwnedReview(
	ctx context.Context,
	id, profileID string,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) DeleteOwnedReview(ctx context.Context, id, profileID string) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&models.Review{}))
}

func (r *ReviewGormRepository) PropertyRating(ctx context.Context, propertyID string) (domain.Rating, error) {
	var row struct {
		Avg   *float64
		Count int
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("CAST(AVG(rating) AS FLOAT) AS avg, COUNT(*) AS count").
		Where("property_id = ?", propertyID).
		Scan(&row).Error; err != nil {
		return domain.Rating{}, err
	}

	return domain.NewRating(row.Avg, row.Count), nil
}

// Compile-time check
var _ domain.ReviewRepository = (*ReviewGormRepository)(nil)
