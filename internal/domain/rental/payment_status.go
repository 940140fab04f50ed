package rental

import "github.com/BruksfildServices01/rental-marketplace/internal/httperr"

// ===============================
// Booking Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func InitialPaymentStatus() PaymentStatus {
	return PaymentPending
}

// CanMarkPaid rejects a second confirmation for the same booking.
func CanMarkPaid(current PaymentStatus) error {
	if current != PaymentPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
