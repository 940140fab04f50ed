// Package checkout creates hosted payment pages for bookings and reads back
// payment notifications.
package checkout

import (
	"context"
	"errors"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/rental-marketplace/internal/config"
)

var ErrNotConfigured = errors.New("checkout not configured")

type Order struct {
	BookingID string
	Title     string
	Amount    int
}

// Payment is the part of a provider payment the marketplace acts on.
type Payment struct {
	BookingID string
	Status    string
}

const StatusApproved = "approved"

type Provider interface {
	CreateCheckout(ctx context.Context, order Order) (string, error)
	GetPayment(ctx context.Context, paymentID int) (*Payment, error)
}

type MercadoPago struct {
	preferences preference.Client
	payments    payment.Client
	backURLs    preference.BackURLsRequest
}

func NewMercadoPago(cfg config.CheckoutConfig) (*MercadoPago, error) {
	mpCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		preferences: preference.NewClient(mpCfg),
		payments:    payment.NewClient(mpCfg),
		backURLs: preference.BackURLsRequest{
			Success: cfg.SuccessURL,
			Failure: cfg.FailureURL,
			Pending: cfg.PendingURL,
		},
	}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, order Order) (string, error) {
	backURLs := m.backURLs

	res, err := m.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{{
			ID:        order.BookingID,
			Title:     order.Title,
			Quantity:  1,
			UnitPrice: float64(order.Amount),
		}},
		ExternalReference: order.BookingID,
		BackURLs:          &backURLs,
		AutoReturn:        "approved",
	})
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}
	return res.InitPoint, nil
}

func (m *MercadoPago) GetPayment(ctx context.Context, paymentID int) (*Payment, error) {
	res, err := m.payments.Get(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment %d: %w", paymentID, err)
	}
	return &Payment{BookingID: res.ExternalReference, Status: res.Status}, nil
}

// Disabled is used when no access token is configured.
type Disabled struct{}

func (Disabled) CreateCheckout(context.Context, Order) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) GetPayment(context.Context, int) (*Payment, error) {
	return nil, ErrNotConfigured
}

var (
	_ Provider = (*MercadoPago)(nil)
	_ Provider = Disabled{}
)
