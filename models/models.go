package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin represents an operations administrator. Login and session flows
// live outside this service; the record only backs the bearer-token guard.
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastSeen  time.Time `json:"last_seen"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}
