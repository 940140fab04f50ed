package rental

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestCalculateTotals(t *testing.T) {
	fees := FeeSchedule{ServicePercent: 10}

	tests := []struct {
		name     string
		in, out  time.Time
		price    int
		expected Totals
	}{
		{
			name:     "three nights",
			in:       date("2026-03-01"),
			out:      date("2026-03-04"),
			price:    100,
			expected: Totals{TotalNights: 3, Subtotal: 300, Fees: 30, OrderTotal: 330},
		},
		{
			name:     "fee rounds half up",
			in:       date("2026-03-01"),
			out:      date("2026-03-02"),
			price:    45,
			expected: Totals{TotalNights: 1, Subtotal: 45, Fees: 5, OrderTotal: 50},
		},
		{
			name:     "across month end",
			in:       date("2026-01-30"),
			out:      date("2026-02-02"),
			price:    10,
			expected: Totals{TotalNights: 3, Subtotal: 30, Fees: 3, OrderTotal: 33},
		},
		{
			name:     "checkout before checkin",
			in:       date("2026-03-04"),
			out:      date("2026-03-01"),
			price:    100,
			expected: Totals{},
		},
		{
			name:     "same day",
			in:       date("2026-03-04"),
			out:      date("2026-03-04"),
			price:    100,
			expected: Totals{},
		},
		{
			name:     "free listing",
			in:       date("2026-03-01"),
			out:      date("2026-03-08"),
			price:    0,
			expected: Totals{TotalNights: 7},
		},
		{
			name:     "centuries long stay",
			in:       date("2026-01-01"),
			out:      date("2400-01-01"),
			price:    1,
			expected: Totals{TotalNights: 136600, Subtotal: 136600, Fees: 13660, OrderTotal: 150260},
		},
		{
			name:     "widest calendar range",
			in:       date("0001-01-01"),
			out:      date("9999-12-31"),
			price:    math.MaxInt32,
			expected: Totals{
				TotalNights: 3652058,
				Subtotal:    3652058 * math.MaxInt32,
				Fees:        (3652058*math.MaxInt32*10 + 50) / 100,
				OrderTotal:  3652058*math.MaxInt32 + (3652058*math.MaxInt32*10+50)/100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateTotals(tt.in, tt.out, tt.price, fees)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			again, err := CalculateTotals(tt.in, tt.out, tt.price, fees)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestCalculateTotals_OutOfRange(t *testing.T) {
	in, out := date("0001-01-01"), date("9999-12-31")

	_, err := CalculateTotals(in, out, math.MaxInt32, FeeSchedule{ServicePercent: math.MaxInt32})
	assert.ErrorIs(t, err, ErrTotalOutOfRange)

	_, err = CalculateTotals(in, out, math.MaxInt, FeeSchedule{})
	assert.ErrorIs(t, err, ErrTotalOutOfRange)
}

func TestCalculateTotals_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	in := time.Date(2026, 3, 1, 23, 30, 0, 0, loc)
	out := time.Date(2026, 3, 3, 0, 15, 0, 0, loc)

	got, err := CalculateTotals(in, out, 50, FeeSchedule{})
	require.NoError(t, err)

	assert.Equal(t, 2, got.TotalNights)
	assert.Equal(t, 100, got.OrderTotal)
}

func TestNewRating(t *testing.T) {
	assert.Equal(t, Rating{}, NewRating(nil, 0))

	avg := 14.0 / 3.0
	assert.Equal(t, Rating{Rating: 4.7, Count: 3}, NewRating(&avg, 3))

	five := 5.0
	assert.Equal(t, Rating{Rating: 5, Count: 1}, NewRating(&five, 1))
}

func TestMarkPaid(t *testing.T) {
	b := &models.Booking{PaymentStatus: string(InitialPaymentStatus())}

	assert.NoError(t, MarkPaid(b))
	assert.Equal(t, string(PaymentPaid), b.PaymentStatus)

	err := MarkPaid(b)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
