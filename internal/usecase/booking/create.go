package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-marketplace/internal/audit"
	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
	"github.com/BruksfildServices01/rental-marketplace/internal/outcome"
	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
	"github.com/BruksfildServices01/rental-marketplace/internal/timezone"
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase"
)

const (
	ActionCreate = "booking_created"
	ActionDelete = "booking_deleted"

	bookingsPath = "/bookings"
)

const (
	errPropertyNotFound = outcome.MessageError("Property not found")
	errStayOutOfRange   = outcome.MessageError("Stay is too long to book")
)

type CreateBooking struct {
	bookings   domain.BookingRepository
	properties domain.PropertyRepository
	gate       *authz.Gate
	fees       domain.FeeSchedule
	loc        *time.Location
	fx         usecase.Effects
}

func NewCreateBooking(
	bookings domain.BookingRepository,
	properties domain.PropertyRepository,
	gate *authz.Gate,
	fees domain.FeeSchedule,
	loc *time.Location,
	fx usecase.Effects,
) *CreateBooking {
	return &CreateBooking{
		bookings:   bookings,
		properties: properties,
		gate:       gate,
		fees:       fees,
		loc:        loc,
		fx:         fx,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	ident *identity.Identity,
	payload schema.Payload,
) (outcome.Outcome, error) {

	// --------------------------------------------------
	// Caller + payload
	// --------------------------------------------------
	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	in, err := schema.Validate[schema.BookingInput](payload)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	checkIn, err := timezone.ParseDate(in.CheckIn, uc.loc)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}
	checkOut, err := timezone.ParseDate(in.CheckOut, uc.loc)
	if err != nil {
		return uc.fx.Fail(ActionCreate, err)
	}

	// --------------------------------------------------
	// Price
	// --------------------------------------------------
	p, err := uc.properties.FindProperty(ctx, in.PropertyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uc.fx.Fail(ActionCreate, errPropertyNotFound)
	}
	if err != nil {
		return uc.fx.Fail(ActionCreate, httperr.Persistence(err))
	}

	totals, err := domain.CalculateTotals(checkIn, checkOut, p.Price, uc.fees)
	if err != nil {
		return uc.fx.Fail(ActionCreate, errStayOutOfRange)
	}

	// --------------------------------------------------
	// Write
	// --------------------------------------------------
	b := &models.Booking{
		ProfileID:     me.ClerkID,
		PropertyID:    p.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalNights:   totals.TotalNights,
		OrderTotal:    totals.OrderTotal,
		PaymentStatus: string(domain.InitialPaymentStatus()),
	}
	if err := uc.bookings.CreateBooking(ctx, b); err != nil {
		return uc.fx.Fail(ActionCreate, httperr.Persistence(err))
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionCreate,
		Entity:    "booking",
		EntityID:  b.ID,
		Metadata:  totals,
	}, bookingsPath)

	return outcome.RedirectTo(bookingsPath), nil
}

// ======================================================
// DELETE BOOKING
// ======================================================

type DeleteBooking struct {
	bookings domain.BookingRepository
	gate     *authz.Gate
	fx       usecase.Effects
}

func NewDeleteBooking(bookings domain.BookingRepository, gate *authz.Gate, fx usecase.Effects) *DeleteBooking {
	return &DeleteBooking{bookings: bookings, gate: gate, fx: fx}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	ident *identity.Identity,
	bookingID string,
) (outcome.Outcome, error) {

	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(ActionDelete, err)
	}

	if err := uc.bookings.DeleteOwnedBooking(ctx, bookingID, me.ClerkID); err != nil {
		return uc.fx.Fail(ActionDelete, httperr.Persistence(err))
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionDelete,
		Entity:    "booking",
		EntityID:  bookingID,
	}, bookingsPath)

	return outcome.Result("Booking deleted successfully"), nil
}
