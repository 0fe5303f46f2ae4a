package entity

import (
	"gorm.io/gorm"
)

// Customer is the locally stored identity. Login looks a customer up by
// phone number; there is no password credential in this scheme.
type Customer struct {
	gorm.Model
	PhoneNumber   string `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	Role          Role   `gorm:"not null;default:user" json:"role"`
	LoyaltyPoints int    `json:"loyaltyPoints"`

	Sessions []Session `json:"-"`
}
