package booking

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/rental-marketplace/internal/checkout"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
	"github.com/BruksfildServices01/rental-marketplace/internal/outcome"
	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
	"github.com/BruksfildServices01/rental-marketplace/internal/usecase/usecasetest"
)

type fakeProvider struct {
	url     string
	payment *checkout.Payment
	err     error
	orders  []checkout.Order
}

func (f *fakeProvider) CreateCheckout(_ context.Context, o checkout.Order) (string, error) {
	f.orders = append(f.orders, o)
	return f.url, f.err
}

func (f *fakeProvider) GetPayment(context.Context, int) (*checkout.Payment, error) {
	return f.payment, f.err
}

func bookingPayload(propertyID, in, out string) schema.Payload {
	return schema.Fields(map[string]string{"propertyId": propertyID, "checkIn": in, "checkOut": out})
}

func newCreate(env *usecasetest.Env) *CreateBooking {
	return NewCreateBooking(env.Bookings, env.Properties, env.Gate,
		domain.FeeSchedule{ServicePercent: 10}, time.UTC, env.Effects)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	env.User(t, "owner")
	guest := env.User(t, "guest")
	p := env.Property(t, "owner", "Cabin", 100)

	out, err := newCreate(env).Execute(ctx, guest, bookingPayload(p.ID, "2026-01-01", "2026-01-04"))

	require.NoError(t, err)
	assert.Equal(t, outcome.RedirectTo("/bookings"), out)
	assert.Equal(t, []string{"/bookings"}, env.Views.Paths())

	var b models.Booking
	require.NoError(t, env.DB.First(&b).Error)
	assert.Equal(t, "guest", b.ProfileID)
	assert.Equal(t, 3, b.TotalNights)
	assert.Equal(t, 330, b.OrderTotal)
	assert.Equal(t, "pending", b.PaymentStatus)
	assert.True(t, b.CheckIn.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCreateBooking_Rejections(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	guest := env.User(t, "guest")
	p := env.Property(t, "guest", "Cabin", 100)
	uc := newCreate(env)

	cases := []struct {
		name    string
		payload schema.Payload
		want    string
	}{
		{"unknown property", bookingPayload("missing", "2026-01-01", "2026-01-02"), "Property not found"},
		{"bad date", bookingPayload(p.ID, "2026-13-01", "2026-01-02"), "checkIn must be a date (YYYY-MM-DD)."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := uc.Execute(ctx, guest, tc.payload)
			require.NoError(t, err)
			assert.Equal(t, outcome.Result(tc.want), out)
		})
	}

	assert.Zero(t, env.Count(t, &models.Booking{}))
}

func TestCreateBooking_ReversedDatesCostNothing(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	guest := env.User(t, "guest")
	p := env.Property(t, "guest", "Cabin", 100)

	_, err := newCreate(env).Execute(ctx, guest, bookingPayload(p.ID, "2026-01-05", "2026-01-01"))
	require.NoError(t, err)

	var b models.Booking
	require.NoError(t, env.DB.First(&b).Error)
	assert.Zero(t, b.TotalNights)
	assert.Zero(t, b.OrderTotal)
}

func TestCreateBooking_LongStays(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	guest := env.User(t, "guest")
	p := env.Property(t, "guest", "Cabin", 1)

	out, err := newCreate(env).Execute(ctx, guest, bookingPayload(p.ID, "2026-01-01", "2400-01-01"))
	require.NoError(t, err)
	assert.Equal(t, outcome.RedirectTo("/bookings"), out)

	var b models.Booking
	require.NoError(t, env.DB.First(&b).Error)
	assert.Equal(t, 136600, b.TotalNights)
	assert.Equal(t, 150260, b.OrderTotal)

	t.Run("total that does not fit is refused", func(t *testing.T) {
		pricey := env.Property(t, "guest", "Palace", math.MaxInt32)
		uc := NewCreateBooking(env.Bookings, env.Properties, env.Gate,
			domain.FeeSchedule{ServicePercent: math.MaxInt32}, time.UTC, env.Effects)

		out, err := uc.Execute(ctx, guest, bookingPayload(pricey.ID, "0001-01-01", "9999-12-31"))
		require.NoError(t, err)
		assert.Equal(t, outcome.Result("Stay is too long to book"), out)
		assert.Equal(t, int64(1), env.Count(t, &models.Booking{}))
	})
}

func TestDeleteBooking_OnlyOwnBookings(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	guest := env.User(t, "guest")
	other := env.User(t, "other")
	p := env.Property(t, "other", "Cabin", 100)

	_, err := newCreate(env).Execute(ctx, guest, bookingPayload(p.ID, "2026-01-01", "2026-01-02"))
	require.NoError(t, err)
	var b models.Booking
	require.NoError(t, env.DB.First(&b).Error)

	uc := NewDeleteBooking(env.Bookings, env.Gate, env.Effects)

	out, err := uc.Execute(ctx, other, b.ID)
	require.NoError(t, err)
	assert.Equal(t, outcome.Result("record not found"), out)

	out, err = uc.Execute(ctx, guest, b.ID)
	require.NoError(t, err)
	assert.Equal(t, outcome.Result("Booking deleted successfully"), out)
	assert.Zero(t, env.Count(t, &models.Booking{}))
}

func TestFetchBookingsAndReservations(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	owner := env.User(t, "owner")
	guest := env.User(t, "guest")
	p := env.Property(t, "owner", "Cabin", 100)

	uc := newCreate(env)
	_, err := uc.Execute(ctx, guest, bookingPayload(p.ID, "2026-01-01", "2026-01-02"))
	require.NoError(t, err)
	_, err = uc.Execute(ctx, guest, bookingPayload(p.ID, "2026-03-01", "2026-03-03"))
	require.NoError(t, err)

	q := NewQueries(env.Bookings, env.Gate)

	mine, err := q.FetchBookings(ctx, guest)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 2, mine[0].TotalNights, "newest check-in first")
	assert.Equal(t, "Cabin", mine[0].Property.Name)
	assert.Zero(t, mine[0].Property.Price)

	reservations, err := q.FetchReservations(ctx, owner)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, 100, reservations[0].Property.Price)

	none, err := q.FetchReservations(ctx, guest)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateCheckout(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	guest := env.User(t, "guest")
	other := env.User(t, "other")
	p := env.Property(t, "other", "Cabin", 100)

	_, err := newCreate(env).Execute(ctx, guest, bookingPayload(p.ID, "2026-01-01", "2026-01-04"))
	require.NoError(t, err)
	var b models.Booking
	require.NoError(t, env.DB.First(&b).Error)

	provider := &fakeProvider{url: "https://pay.test/init/1"}
	uc := NewCreateCheckout(env.Bookings, env.Gate, provider, env.Effects)

	out, err := uc.Execute(ctx, guest, b.ID)
	require.NoError(t, err)
	assert.Equal(t, outcome.RedirectTo("https://pay.test/init/1"), out)
	assert.Equal(t, []checkout.Order{{BookingID: b.ID, Title: "Cabin", Amount: 330}}, provider.orders)

	t.Run("someone else's booking", func(t *testing.T) {
		out, err := uc.Execute(ctx, other, b.ID)
		require.NoError(t, err)
		assert.Equal(t, outcome.Result("record not found"), out)
	})

	t.Run("provider not configured", func(t *testing.T) {
		out, err := NewCreateCheckout(env.Bookings, env.Gate, checkout.Disabled{}, env.Effects).Execute(ctx, guest, b.ID)
		require.NoError(t, err)
		assert.Equal(t, outcome.Result("Checkout is not configured"), out)
	})

	t.Run("provider failure", func(t *testing.T) {
		failing := &fakeProvider{err: errors.New("timeout")}
		out, err := NewCreateCheckout(env.Bookings, env.Gate, failing, env.Effects).Execute(ctx, guest, b.ID)
		require.NoError(t, err)
		assert.Equal(t, outcome.Result("Could not start checkout"), out)
	})
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	guest := env.User(t, "guest")
	p := env.Property(t, "guest", "Cabin", 100)

	_, err := newCreate(env).Execute(ctx, guest, bookingPayload(p.ID, "2026-01-01", "2026-01-02"))
	require.NoError(t, err)
	var b models.Booking
	require.NoError(t, env.DB.First(&b).Error)

	t.Run("pending payment changes nothing", func(t *testing.T) {
		provider := &fakeProvider{payment: &checkout.Payment{BookingID: b.ID, Status: "in_process"}}
		paid, err := NewConfirmPayment(env.Bookings, provider, env.Effects).Execute(ctx, 7)
		require.NoError(t, err)
		assert.False(t, paid)
	})

	provider := &fakeProvider{payment: &checkout.Payment{BookingID: b.ID, Status: checkout.StatusApproved}}
	uc := NewConfirmPayment(env.Bookings, provider, env.Effects)

	paid, err := uc.Execute(ctx, 7)
	require.NoError(t, err)
	assert.True(t, paid)

	got, err := env.Bookings.FindBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", got.PaymentStatus)

	paid, err = uc.Execute(ctx, 7)
	require.NoError(t, err)
	assert.False(t, paid, "repeated notification")

	out, err := NewCreateCheckout(env.Bookings, env.Gate, provider, env.Effects).Execute(ctx, guest, b.ID)
	require.NoError(t, err)
	assert.Equal(t, outcome.Result("Booking is already paid"), out)
}
