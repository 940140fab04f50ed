package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) CreateProfile(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileGormRepository) FindProfileByClerkID(
	ctx context.Context,
	clerkID string,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).
		Where("clerk_id = ?", clerkID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileGormRepository) UpdateProfile(
	ctx context.Context,
	clerkID string,
	firstName, lastName, username string,
) error {

	return affected(r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("clerk_id = ?", clerkID).
		Updates(map[string]any{
			"first_name": firstName,
			"last_name":  lastName,
			"username":   username,
		}))
}

func (r *ProfileGormRepository) UpdateProfileImage(
	ctx context.Context,
	clerkID string,
	image string,
) error {

	return affected(r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("clerk_id = ?", clerkID).
		Update("profile_image", image))
}

// Compile-time check
var _ domain.ProfileRepository = (*ProfileGormRepository)(nil)
