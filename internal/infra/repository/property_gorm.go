package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/dto"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

type PropertyGormRepository struct {
	db *gorm.DB
}

func NewPropertyGormRepository(db *gorm.DB) *PropertyGormRepository {
	return &PropertyGormRepository{db: db}
}

func (r *PropertyGormRepository) CreateProperty(ctx context.Context, p *models.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyGormRepository) FindProperty(ctx context.Context, id string) (*models.Property, error) {
	var p models.Property
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Public reads
// --------------------------------------------------

func (r *PropertyGormRepository) ListProperties(
	ctx context.Context,
	filter domain.PropertyFilter,
) ([]dto.PropertyCard, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Property{}).
		Select("id", "name", "tagline", "country", "price", "image")

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"(LOWER(name) LIKE ? OR LOWER(tagline) LIKE ? OR LOWER(country) LIKE ?)",
			like, like, like,
		)
	}

	var cards []dto.PropertyCard
	if err := q.Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *PropertyGormRepository) FindPropertyDetails(ctx context.Context, id string) (*models.Property, error) {
	var p models.Property
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyGormRepository) ListBookedRanges(
	ctx context.Context,
	propertyID string,
) ([]domain.BookedRange, error) {

	var ranges []domain.BookedRange
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("check_in", "check_out").
		Where("property_id = ?", propertyID).
		Order("check_in ASC").
		Find(&ranges).Error; err != nil {
		return nil, err
	}
	return ranges, nil
}

// --------------------------------------------------
// Owner scoped
// --------------------------------------------------

func (r *PropertyGormRepository) FindOwnedProperty(
	ctx context.Context,
	id, ownerID string,
) (*models.Property, error) {

	var p models.Property
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, ownerID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyGormRepository) UpdateOwnedProperty(
	ctx context.Context,
	id, ownerID string,
	changes domain.PropertyChanges,
) error {

	return affected(r.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ? AND profile_id = ?", id, ownerID).
		Updates(map[string]any{
			"name":        changes.Name,
			"tagline":     changes.Tagline,
			"category":    changes.Category,
			"description": changes.Description,
			"country":     changes.Country,
			"amenities":   changes.Amenities,
			"price":       changes.Price,
			"guests":      changes.Guests,
			"bedrooms":    changes.Bedrooms,
			"beds":        changes.Beds,
			"baths":       changes.Baths,
		}))
}

func (r *PropertyGormRepository) UpdateOwnedPropertyImage(
	ctx context.Context,
	id, ownerID, image string,
) error {

	return affected(r.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ? AND profile_id = ?", id, ownerID).
		Update("image", image))
}

// DeleteOwnedProperty removes the listing and everything hanging off it in
// one transaction, whether or not the schema carries cascading keys.
func (r *PropertyGormRepository) DeleteOwnedProperty(ctx context.Context, id, ownerID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := affected(tx.
			Where("id = ? AND profile_id = ?", id, ownerID).
			Delete(&models.Property{})); err != nil {
			return err
		}

		for _, child := range []any{&models.Booking{}, &models.Review{}, &models.Favorite{}} {
			if err := tx.Where("property_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListRentalIncome aggregates in one grouped query. The LEFT JOIN keeps
// unbooked properties, whose SUMs come back NULL.
func (r *PropertyGormRepository) ListRentalIncome(
	ctx context.Context,
	ownerID string,
) ([]domain.RentalIncome, error) {

	var rows []domain.RentalIncome
	if err := r.db.WithContext(ctx).
		Table("properties AS p").
		Select(`p.id, p.name, p.price,
			SUM(b.total_nights) AS total_nights_sum,
			SUM(b.order_total) AS order_total_sum`).
		Joins("LEFT JOIN bookings AS b ON b.property_id = p.id").
		Where("p.profile_id = ?", ownerID).
		Group("p.id, p.name, p.price, p.created_at").
		Order("p.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.PropertyRepository = (*PropertyGormRepository)(nil)
