package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) ListGuestBookings(
	ctx context.Context,
	profileID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Property", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "country")
		}).
		Where("profile_id = ?", profileID).
		Order("check_in DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListReservations returns bookings made by anyone on the owner's properties.
func (r *BookingGormRepository) ListReservations(
	ctx context.Context,
	ownerID string,
) ([]models.Booking, error) {

	owned := r.db.Model(&models.Property{}).
		Select("id").
		Where("profile_id = ?", ownerID)

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Property", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "price", "country")
		}).
		Where("property_id IN (?)", owned).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) FindOwnedBooking(
	ctx context.Context,
	id, profileID string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Property").
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) DeleteOwnedBooking(ctx context.Context, id, profileID string) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&models.Booking{}))
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *BookingGormRepository) FindBooking(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdatePaymentStatus(ctx context.Context, b *models.Booking) error {
	return affected(r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", b.ID).
		Update("payment_status", b.PaymentStatus))
}

// Compile-time check
var _ domain.BookingRepository = (*BookingGormRepository)(nil)
