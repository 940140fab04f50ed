package models

import (
	"time"

	"gorm.io/gorm"
)

type Favorite struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	ProfileID string   `gorm:"size:191;index;not null" json:"profile_id"`
	Profile   *Profile `gorm:"foreignKey:ProfileID;references:ClerkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile,omitempty"`

	PropertyID string    `gorm:"size:36;index;not null" json:"property_id"`
	Property   *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"property,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Favorite) BeforeCreate(*gorm.DB) error {
	assignID(&f.ID)
	return nil
}
