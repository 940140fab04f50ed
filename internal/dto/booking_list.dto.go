package dto

import "time"

type BookingPropertyDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Price   int    `json:"price,omitempty"`
}

type BookingListDTO struct {
	ID            string             `json:"id"`
	CheckIn       time.Time          `json:"check_in"`
	CheckOut      time.Time          `json:"check_out"`
	TotalNights   int                `json:"total_nights"`
	OrderTotal    int                `json:"order_total"`
	PaymentStatus string             `json:"payment_status"`
	CreatedAt     time.Time          `json:"created_at"`
	Property      BookingPropertyDTO `json:"property"`
}
