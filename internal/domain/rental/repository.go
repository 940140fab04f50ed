package rental

import (
	"context"

	"github.com/BruksfildServices01/rental-marketplace/internal/dto"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

// Every method taking an ownerID or profileID next to a resource id filters
// on both. A row owned by someone else is reported as gorm.ErrRecordNotFound,
// exactly like a missing one.

type ProfileRepository interface {
	CreateProfile(ctx context.Context, p *models.Profile) error
	FindProfileByClerkID(ctx context.Context, clerkID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, clerkID string, firstName, lastName, username string) error
	UpdateProfileImage(ctx context.Context, clerkID string, image string) error
}

type PropertyRepository interface {
	CreateProperty(ctx context.Context, p *models.Property) error
	FindProperty(ctx context.Context, id string) (*models.Property, error)

	// -------- Public reads --------
	ListProperties(ctx context.Context, filter PropertyFilter) ([]dto.PropertyCard, error)
	FindPropertyDetails(ctx context.Context, id string) (*models.Property, error)
	ListBookedRanges(ctx context.Context, propertyID string) ([]BookedRange, error)

	// -------- Owner scoped --------
	FindOwnedProperty(ctx context.Context, id, ownerID string) (*models.Property, error)
	UpdateOwnedProperty(ctx context.Context, id, ownerID string, changes PropertyChanges) error
	UpdateOwnedPropertyImage(ctx context.Context, id, ownerID, image string) error
	DeleteOwnedProperty(ctx context.Context, id, ownerID string) error
	ListRentalIncome(ctx context.Context, ownerID string) ([]RentalIncome, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	ListGuestBookings(ctx context.Context, profileID string) ([]models.Booking, error)
	ListReservations(ctx context.Context, ownerID string) ([]models.Booking, error)

	FindOwnedBooking(ctx context.Context, id, profileID string) (*models.Booking, error)
	DeleteOwnedBooking(ctx context.Context, id, profileID string) error

	FindBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdatePaymentStatus(ctx context.Context, b *models.Booking) error
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, r *models.Review) error
	ListPropertyReviews(ctx context.Context, propertyID string) ([]models.Review, error)
	ListAuthorReviews(ctx context.Context, profileID string) ([]models.Review, error)

	// FindExistingReview returns nil, nil when the profile has not reviewed
	// the property.
	FindExistingReview(ctx context.Context, profileID, propertyID string) (*models.Review, error)

	FindOwnedReview(ctx context.Context, id, profileID string) (*models.Review, error)
	DeleteOwnedReview(ctx context.Context, id, profileID string) error

	PropertyRating(ctx context.Context, propertyID string) (Rating, error)
}

type FavoriteRepository interface {
	// FindFavoriteID returns "" when the property is not a favorite.
	FindFavoriteID(ctx context.Context, profileID, propertyID string) (string, error)
	CreateFavorite(ctx context.Context, f *models.Favorite) error
	DeleteOwnedFavorite(ctx context.Context, id, profileID string) error
	ListFavorites(ctx context.Context, profileID string) ([]dto.PropertyCard, error)
}
