package schema

type ProfileInput struct {
	FirstName string `form:"firstName" validate:"min=2"`
	LastName  string `form:"lastName" validate:"min=2"`
	Username  string `form:"username" validate:"min=2"`
}

type PropertyInput struct {
	Name        string `form:"name" validate:"min=2,max=100"`
	Tagline     string `form:"tagline" validate:"min=2,max=100"`
	Price       int    `form:"price" validate:"min=0"`
	Category    string `form:"category"`
	Description string `form:"description" validate:"words_min=10,words_max=1000"`
	Country     string `form:"country"`
	Guests      int    `form:"guests" validate:"min=0"`
	Bedrooms    int    `form:"bedrooms" validate:"min=0"`
	Beds        int    `form:"beds" validate:"min=0"`
	Baths       int    `form:"baths" validate:"min=0"`
	Amenities   string `form:"amenities"`
}

// ImageInput rules live in validateImage.
type ImageInput struct {
	Image *File `form:"image"`
}

type ReviewInput struct {
	PropertyID string `form:"propertyId"`
	Rating     int    `form:"rating" validate:"min=1,max=5"`
	Comment    string `form:"comment" validate:"min=10,max=1000"`
}

type BookingInput struct {
	PropertyID string `form:"propertyId"`
	CheckIn    string `form:"checkIn" validate:"datetime=2006-01-02"`
	CheckOut   string `form:"checkOut" validate:"datetime=2006-01-02"`
}
