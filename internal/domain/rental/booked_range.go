package rental

import "time"

// BookedRange is the only booking data exposed on a public property page.
type BookedRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

type PropertyFilter struct {
	Search   string
	Category string
}

// PropertyChanges is the editable part of a listing. Zero values are written.
type PropertyChanges struct {
	Name        string
	Tagline     string
	Category    string
	Description string
	Country     string
	Amenities   string
	Price       int
	Guests      int
	Bedrooms    int
	Beds        int
	Baths       int
}
