package rental

import "github.com/BruksfildServices01/rental-marketplace/internal/models"

// ===============================
// Domain Actions
// ===============================

func MarkPaid(b *models.Booking) error {
	if err := CanMarkPaid(PaymentStatus(b.PaymentStatus)); err != nil {
		return err
	}

	b.PaymentStatus = string(PaymentPaid)
	return nil
}
