package models

import (
	"time"

	"gorm.io/gorm"
)

// Business types a vendor profile can be created with. The type is fixed
// at registration and gates which listing endpoints the vendor may use.
const (
	BusinessTypeHotel    = "hotel"
	BusinessTypeRental   = "rental"
	BusinessTypeActivity = "activity"
)

func ValidBusinessType(t string) bool {
	return t == BusinessTypeHotel || t == BusinessTypeRental || t == BusinessTypeActivity
}

type VendorProfile struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"uniqueIndex" json:"user_id"`
	BusinessType string `gorm:"size:50" json:"business_type"`
	// 0 = pending admin approval, 1 = verified. Only verified vendors may
	// mutate their listings.
	Verified     int    `gorm:"default:0" json:"verified"`
	BusinessName string `gorm:"size:255" json:"business_name"`
	Address      string `gorm:"type:text" json:"address"`
	Phone        string `gorm:"size:50" json:"phone"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
