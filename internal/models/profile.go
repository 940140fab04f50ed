package models

import (
	"time"

	"gorm.io/gorm"
)

type Profile struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	// ClerkID is the identity provider's user id; every owned row points at it.
	ClerkID string `gorm:"size:191;uniqueIndex;not null" json:"clerk_id"`

	FirstName    string `gorm:"size:100;not null" json:"first_name"`
	LastName     string `gorm:"size:100;not null" json:"last_name"`
	Username     string `gorm:"size:100;not null" json:"username"`
	Email        string `gorm:"size:191;not null" json:"email"`
	ProfileImage string `gorm:"size:512" json:"profile_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(*gorm.DB) error {
	assignID(&p.ID)
	return nil
}
