package models

import (
	"time"

	"gorm.io/gorm"
)

// Review has no unique (profile, property) index: one review per pair is
// only checked before the form is offered.
type Review struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	ProfileID string   `gorm:"size:191;index;not null" json:"profile_id"`
	Profile   *Profile `gorm:"foreignKey:ProfileID;references:ClerkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile,omitempty"`

	PropertyID string    `gorm:"size:36;index;not null" json:"property_id"`
	Property   *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"property,omitempty"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text;not null" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(*gorm.DB) error {
	assignID(&r.ID)
	return nil
}
