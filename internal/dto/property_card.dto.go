package dto

// PropertyCard is the listing projection used by search results and favorites.
type PropertyCard struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Country string `json:"country"`
	Price   int    `json:"price"`
	Image   string `json:"image"`
}
