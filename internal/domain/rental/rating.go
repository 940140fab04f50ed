package rental

import "math"

type Rating struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// NewRating rounds the average to one decimal. A property without reviews
// rates {0, 0}.
func NewRating(avg *float64, count int) Rating {
	if count == 0 || avg == nil {
		return Rating{}
	}
	return Rating{
		Rating: math.Round(*avg*10) / 10,
		Count:  count,
	}
}

// RentalIncome sums bookings per owned property. Both sums stay nil when the
// property has never been booked.
type RentalIncome struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Price          int    `json:"price"`
	TotalNightsSum *int   `json:"total_nights_sum"`
	OrderTotalSum  *int   `json:"order_total_sum"`
}
