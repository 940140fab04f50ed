package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-marketplace/internal/checkout"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/rental-marketplace/internal/middleware"
	ucBooking "github.com/BruksfildServices01/rental-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *ucBooking.CreateBooking
	remove   *ucBooking.DeleteBooking
	checkout *ucBooking.CreateCheckout
	confirm  *ucBooking.ConfirmPayment
	queries  *ucBooking.Queries
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	remove *ucBooking.DeleteBooking,
	startCheckout *ucBooking.CreateCheckout,
	confirm *ucBooking.ConfirmPayment,
	queries *ucBooking.Queries,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		remove:   remove,
		checkout: startCheckout,
		confirm:  confirm,
		queries:  queries,
	}
}

// ======================================================
// GUEST
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	out, err := h.create.Execute(c.Request.Context(), middleware.IdentityFrom(c), payload)
	writeOutcome(c, out, err)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	out, err := h.remove.Execute(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	writeOutcome(c, out, err)
}

func (h *BookingHandler) Checkout(c *gin.Context) {
	out, err := h.checkout.Execute(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	writeOutcome(c, out, err)
}

func (h *BookingHandler) List(c *gin.Context) {
	rows, err := h.queries.FetchBookings(c.Request.Context(), middleware.IdentityFrom(c))
	if writeQueryError(c, err) {
		return
	}
	httpresp.List(c, rows)
}

// ======================================================
// OWNER
// ======================================================

func (h *BookingHandler) Reservations(c *gin.Context) {
	rows, err := h.queries.FetchReservations(c.Request.Context(), middleware.IdentityFrom(c))
	if writeQueryError(c, err) {
		return
	}
	httpresp.List(c, rows)
}

// ======================================================
// PAYMENT NOTIFICATIONS
// ======================================================

type paymentNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// PaymentWebhook accepts both notification styles: ?type=payment&data.id=N
// and a JSON body with the same fields. Non-payment topics are acknowledged
// and ignored.
func (h *BookingHandler) PaymentWebhook(c *gin.Context) {
	topic := c.Query("type")
	rawID := c.Query("data.id")

	if rawID == "" {
		var n paymentNotification
		if err := c.ShouldBindJSON(&n); err != nil {
			httperr.BadRequest(c, "invalid_notification", "Unreadable notification.")
			return
		}
		topic, rawID = n.Type, n.Data.ID
	}

	if topic != "payment" {
		c.Status(http.StatusNoContent)
		return
	}

	paymentID, err := strconv.Atoi(rawID)
	if err != nil {
		httperr.BadRequest(c, "invalid_payment_id", "Payment id must be numeric.")
		return
	}

	paid, err := h.confirm.Execute(c.Request.Context(), paymentID)
	if errors.Is(err, checkout.ErrNotConfigured) {
		httperr.NotFound(c, "checkout_disabled", "Checkout is not configured")
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}
	if err != nil {
		slog.Error("payment notification failed", "payment_id", paymentID, "error", err)
		httperr.BadGateway(c, "payment_lookup_failed", "Could not confirm payment.")
		return
	}

	httpresp.OK(c, gin.H{"paid": paid})
}
