package rental

import (
	"math"
	"time"

	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
)

type FeeSchedule struct {
	ServicePercent int
}

type Totals struct {
	TotalNights int `json:"total_nights"`
	Subtotal    int `json:"subtotal"`
	Fees        int `json:"fees"`
	OrderTotal  int `json:"order_total"`
}

// ErrTotalOutOfRange is returned when a stay cannot be priced in an int.
var ErrTotalOutOfRange = httperr.ErrBusiness("total_out_of_range")

// CalculateTotals prices a stay. Nights are counted on calendar dates, so
// the time of day carried by checkIn/checkOut never changes the result.
func CalculateTotals(checkIn, checkOut time.Time, price int, fees FeeSchedule) (Totals, error) {
	nights := daysBetween(checkIn, checkOut)
	if nights < 0 {
		nights = 0
	}

	subtotal, ok := mul(nights, price)
	if !ok {
		return Totals{}, ErrTotalOutOfRange
	}
	fee, ok := percentOf(subtotal, fees.ServicePercent)
	if !ok || subtotal > math.MaxInt-fee {
		return Totals{}, ErrTotalOutOfRange
	}

	return Totals{
		TotalNights: nights,
		Subtotal:    subtotal,
		Fees:        fee,
		OrderTotal:  subtotal + fee,
	}, nil
}

const secondsPerDay = 24 * 60 * 60

// daysBetween works on unix days; both ends are UTC midnights so the
// divisions are exact for any representable year.
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Unix()/secondsPerDay - a.Unix()/secondsPerDay)
}

// mul multiplies non-negative ints, reporting false on overflow.
func mul(a, b int) (int, bool) {
	if a <= 0 || b <= 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// percentOf rounds half up.
func percentOf(amount, percent int) (int, bool) {
	scaled, ok := mul(amount, percent)
	if !ok || scaled > math.MaxInt-50 {
		return 0, false
	}
	return (scaled + 50) / 100, true
}
