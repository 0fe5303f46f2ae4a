package entity

import (
	"time"

	"gorm.io/gorm"
)

// Session is the durable session record: written on login, deleted on
// logout, looked up on every authenticated request. Expired or dangling
// rows read as "not logged in", never as an error.
type Session struct {
	gorm.Model
	Token      string    `gorm:"uniqueIndex;not null" json:"-"`
	CustomerID uint      `json:"customerId"`
	Customer   Customer  `json:"-"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
