package dto

import "time"

type ReviewAuthorDTO struct {
	FirstName    string `json:"first_name"`
	ProfileImage string `json:"profile_image"`
}

// PropertyReviewDTO is a review as shown on the property page.
type PropertyReviewDTO struct {
	ID        string          `json:"id"`
	Rating    int             `json:"rating"`
	Comment   string          `json:"comment"`
	CreatedAt time.Time       `json:"created_at"`
	Author    ReviewAuthorDTO `json:"author"`
}

type ReviewedPropertyDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// AuthorReviewDTO is a review as listed on its author's review page.
type AuthorReviewDTO struct {
	ID        string              `json:"id"`
	Rating    int                 `json:"rating"`
	Comment   string              `json:"comment"`
	CreatedAt time.Time           `json:"created_at"`
	Property  ReviewedPropertyDTO `json:"property"`
}
