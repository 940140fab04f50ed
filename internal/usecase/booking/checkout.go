package booking

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BruksfildServices01/rental-marketplace/internal/audit"
	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	"github.com/BruksfildServices01/rental-marketplace/internal/checkout"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/outcome"
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase"
)

const (
	ActionCheckout = "booking_checkout"
	ActionPaid     = "booking_paid"
)

const (
	errAlreadyPaid      = outcome.MessageError("Booking is already paid")
	errCheckoutDisabled = outcome.MessageError("Checkout is not configured")
	errCheckoutFailed   = outcome.MessageError("Could not start checkout")
)

// ======================================================
// CREATE CHECKOUT
// ======================================================

type CreateCheckout struct {
	bookings domain.BookingRepository
	gate     *authz.Gate
	provider checkout.Provider
	fx       usecase.Effects
}

func NewCreateCheckout(
	bookings domain.BookingRepository,
	gate *authz.Gate,
	provider checkout.Provider,
	fx usecase.Effects,
) *CreateCheckout {
	return &CreateCheckout{bookings: bookings, gate: gate, provider: provider, fx: fx}
}

// Execute redirects to the provider's hosted payment page.
func (uc *CreateCheckout) Execute(
	ctx context.Context,
	ident *identity.Identity,
	bookingID string,
) (outcome.Outcome, error) {

	me, err := uc.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return uc.fx.Fail(ActionCheckout, err)
	}

	b, err := uc.bookings.FindOwnedBooking(ctx, bookingID, me.ClerkID)
	if err != nil {
		return uc.fx.Fail(ActionCheckout, httperr.Persistence(err))
	}

	if domain.CanMarkPaid(domain.PaymentStatus(b.PaymentStatus)) != nil {
		return uc.fx.Fail(ActionCheckout, errAlreadyPaid)
	}

	title := "Booking " + b.ID
	if b.Property != nil {
		title = b.Property.Name
	}

	url, err := uc.provider.CreateCheckout(ctx, checkout.Order{
		BookingID: b.ID,
		Title:     title,
		Amount:    b.OrderTotal,
	})
	if errors.Is(err, checkout.ErrNotConfigured) {
		return uc.fx.Fail(ActionCheckout, errCheckoutDisabled)
	}
	if err != nil {
		slog.Error("checkout creation failed", "booking_id", b.ID, "error", err)
		return uc.fx.Fail(ActionCheckout, errCheckoutFailed)
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: me.ClerkID,
		Action:    ActionCheckout,
		Entity:    "booking",
		EntityID:  b.ID,
	})

	return outcome.RedirectTo(url), nil
}

// ======================================================
// CONFIRM PAYMENT
// ======================================================

// ConfirmPayment handles provider notifications. It is not tied to an
// identity: the payment is read back from the provider, never trusted from
// the notification body.
type ConfirmPayment struct {
	bookings domain.BookingRepository
	provider checkout.Provider
	fx       usecase.Effects
}

func NewConfirmPayment(bookings domain.BookingRepository, provider checkout.Provider, fx usecase.Effects) *ConfirmPayment {
	return &ConfirmPayment{bookings: bookings, provider: provider, fx: fx}
}

// Execute reports whether the booking moved to paid. Repeated notifications
// for an already paid booking are not an error.
func (uc *ConfirmPayment) Execute(ctx context.Context, paymentID int) (bool, error) {
	pay, err := uc.provider.GetPayment(ctx, paymentID)
	if err != nil {
		return false, err
	}

	if pay.Status != checkout.StatusApproved || pay.BookingID == "" {
		return false, nil
	}

	b, err := uc.bookings.FindBooking(ctx, pay.BookingID)
	if err != nil {
		return false, httperr.Persistence(err)
	}

	if err := domain.MarkPaid(b); err != nil {
		if httperr.IsBusiness(err, "invalid_state") {
			return false, nil
		}
		return false, err
	}

	if err := uc.bookings.UpdatePaymentStatus(ctx, b); err != nil {
		return false, httperr.Persistence(err)
	}

	uc.fx.Succeeded(ctx, audit.Event{
		ProfileID: b.ProfileID,
		Action:    ActionPaid,
		Entity:    "booking",
		EntityID:  b.ID,
		Metadata:  map[string]int{"payment_id": paymentID},
	}, bookingsPath)

	return true, nil
}
