package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	ProfileID string   `gorm:"size:191;index;not null" json:"profile_id"`
	Profile   *Profile `gorm:"foreignKey:ProfileID;references:ClerkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile,omitempty"`

	PropertyID string    `gorm:"size:36;index;not null" json:"property_id"`
	Property   *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"property,omitempty"`

	OrderTotal  int       `gorm:"not null" json:"order_total"`
	TotalNights int       `gorm:"not null" json:"total_nights"`
	CheckIn     time.Time `gorm:"not null" json:"check_in"`
	CheckOut    time.Time `gorm:"not null" json:"check_out"`

	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	assignID(&b.ID)
	return nil
}
