package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-marketplace/internal/audit"
	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	"github.com/BruksfildServices01/rental-marketplace/internal/checkout"
	"github.com/BruksfildServices01/rental-marketplace/internal/config"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/events"
	"github.com/BruksfildServices01/rental-marketplace/internal/handlers"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	infraRepo "github.com/BruksfildServices01/rental-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/rental-marketplace/internal/metrics"
	"github.com/BruksfildServices01/rental-marketplace/internal/middleware"
	"github.com/BruksfildServices01/rental-marketplace/internal/revalidate"
	"github.com/BruksfildServices01/rental-marketplace/internal/storage"
	"github.com/BruksfildServices01/rental-marketplace/internal/timezone"
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase"
	ucBooking "github.com/BruksfildServices01/rental-marketplace/internal/usecase/booking"
	ucFavorite "github.com/BruksfildServices01/rental-marketplace/internal/usecase/favorite"
	ucProfile "github.com/BruksfildServices01/rental-marketplace/internal/usecase/profile"
	ucProperty "github.com/BruksfildServices01/rental-marketplace/internal/usecase/property"
	ucReview "github.com/BruksfildServices01/rental-marketplace/internal/usecase/review"
)

// Deps are the process-wide clients built in main. Views, Events, Metrics
// and Audit may be nil.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Verifier *identity.Verifier
	Metadata identity.MetadataStore

	ProfileImages  storage.ImageUploader
	PropertyImages storage.ImageUploader

	Views    *revalidate.Cache
	Events   events.Publisher
	Checkout checkout.Provider
	Metrics  *metrics.Metrics
	Audit    *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.Identify(d.Verifier))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	profileRepo := infraRepo.NewProfileGormRepository(d.DB)
	propertyRepo := infraRepo.NewPropertyGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	reviewRepo := infraRepo.NewReviewGormRepository(d.DB)
	favoriteRepo := infraRepo.NewFavoriteGormRepository(d.DB)

	gate := authz.NewGate(profileRepo, d.Metadata)

	fx := usecase.Effects{
		Audit:  d.Audit,
		Events: d.Events,
	}
	// typed nils must not reach the interfaces
	if d.Views != nil {
		fx.Views = d.Views
	}
	if d.Metrics != nil {
		fx.Metrics = d.Metrics
	}

	checkoutProvider := d.Checkout
	if checkoutProvider == nil {
		checkoutProvider = checkout.Disabled{}
	}

	fees := domain.FeeSchedule{ServicePercent: cfg.ServiceFeePercent}
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES
	// ======================================================
	profileHandler := handlers.NewProfileHandler(
		ucProfile.NewCreateProfile(profileRepo, gate, d.Metadata, fx),
		ucProfile.NewUpdateProfile(profileRepo, reviewRepo, gate, fx),
		ucProfile.NewUpdateProfileImage(profileRepo, reviewRepo, gate, d.ProfileImages, fx),
		ucProfile.NewQueries(profileRepo, gate),
	)

	propertyHandler := handlers.NewPropertyHandler(
		ucProperty.NewCreateProperty(propertyRepo, gate, d.PropertyImages, fx),
		ucProperty.NewUpdateProperty(propertyRepo, gate, fx),
		ucProperty.NewUpdatePropertyImage(propertyRepo, gate, d.PropertyImages, fx),
		ucProperty.NewDeleteRental(propertyRepo, gate, fx),
		ucProperty.NewQueries(propertyRepo, gate),
	)

	favoriteHandler := handlers.NewFavoriteHandler(
		ucFavorite.NewToggleFavorite(favoriteRepo, gate, fx),
		ucFavorite.NewQueries(favoriteRepo, gate),
	)

	reviewHandler := handlers.NewReviewHandler(
		ucReview.NewCreateReview(reviewRepo, gate, fx),
		ucReview.NewDeleteReview(reviewRepo, gate, fx),
		ucReview.NewQueries(reviewRepo, propertyRepo, gate, d.Views),
	)

	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewCreateBooking(bookingRepo, propertyRepo, gate, fees, loc, fx),
		ucBooking.NewDeleteBooking(bookingRepo, gate, fx),
		ucBooking.NewCreateCheckout(bookingRepo, gate, checkoutProvider, fx),
		ucBooking.NewConfirmPayment(bookingRepo, checkoutProvider, fx),
		ucBooking.NewQueries(bookingRepo, gate),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/properties", propertyHandler.List)
		api.GET("/properties/:id", propertyHandler.Details)
		api.GET("/properties/:id/reviews", reviewHandler.PropertyReviews)
		api.GET("/properties/:id/rating", reviewHandler.PropertyRating)
		api.GET("/profile/image", profileHandler.Image)

		api.POST("/payments/webhook", bookingHandler.PaymentWebhook)

		// ------------------------------
		// SIGNED IN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.RequireIdentity())
		{
			secured.POST("/profile", profileHandler.Create)
			secured.GET("/profile", profileHandler.Get)
			secured.PATCH("/profile", profileHandler.Update)
			secured.PUT("/profile/image", profileHandler.UpdateImage)

			secured.POST("/rentals", propertyHandler.Create)
			secured.GET("/rentals", propertyHandler.Rentals)
			secured.GET("/rentals/:id", propertyHandler.RentalDetails)
			secured.PATCH("/rentals/:id", propertyHandler.Update)
			secured.PUT("/rentals/:id/image", propertyHandler.UpdateImage)
			secured.DELETE("/rentals/:id", propertyHandler.Delete)

			secured.GET("/favorites", favoriteHandler.List)
			secured.GET("/properties/:id/favorite", favoriteHandler.FavoriteID)
			secured.POST("/properties/:id/favorite/toggle", favoriteHandler.Toggle)

			secured.POST("/reviews", reviewHandler.Create)
			secured.GET("/reviews", reviewHandler.Mine)
			secured.DELETE("/reviews/:id", reviewHandler.Delete)
			secured.GET("/properties/:id/review-eligibility", reviewHandler.Eligibility)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)
			secured.POST("/bookings/:id/checkout", bookingHandler.Checkout)
			secured.GET("/reservations", bookingHandler.Reservations)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
