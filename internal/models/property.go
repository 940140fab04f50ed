package models

import (
	"time"

	"gorm.io/gorm"
)

type Property struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Tagline     string `gorm:"size:100;not null" json:"tagline"`
	Category    string `gorm:"size:50;index" json:"category"`
	Image       string `gorm:"size:512" json:"image"`
	Country     string `gorm:"size:10" json:"country"`
	Description string `gorm:"type:text" json:"description"`

	Price    int `gorm:"not null;default:0" json:"price"`
	Guests   int `gorm:"not null;default:0" json:"guests"`
	Bedrooms int `gorm:"not null;default:0" json:"bedrooms"`
	Beds     int `gorm:"not null;default:0" json:"beds"`
	Baths    int `gorm:"not null;default:0" json:"baths"`

	// Amenities is stored exactly as submitted by the form.
	Amenities string `gorm:"type:text" json:"amenities"`

	ProfileID string   `gorm:"size:191;index;not null" json:"profile_id"`
	Profile   *Profile `gorm:"foreignKey:ProfileID;references:ClerkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Property) BeforeCreate(*gorm.DB) error {
	assignID(&p.ID)
	return nil
}
