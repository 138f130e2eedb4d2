package models

import (
	"time"

	"gorm.io/gorm"
)

// Role ids are fixed at signup and never change afterwards.
const (
	RoleAdmin    uint = 1
	RoleTraveler uint = 2
	RoleVendor   uint = 3
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:255" json:"full_name"`
	Email     string         `gorm:"uniqueIndex;size:150" json:"email"`
	Password  string         `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	RoleID    uint           `gorm:"default:2" json:"role_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
