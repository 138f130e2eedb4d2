package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is the generic listing row. Hotels carry an extension row in
// hotels; rentals and activities live entirely here with their
// type-specific data inside the amenities column.
//
// Type is a namespaced string: "hotel", "rental/car", "activity/trek".
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ProviderID  uint    `gorm:"index;column:provider_id" json:"provider_id"`
	Type        string  `gorm:"size:100;index" json:"type"`
	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	IslandID    uint    `gorm:"index" json:"island_id"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	Availability       datatypes.JSON `json:"availability,omitempty"`
	Images             datatypes.JSON `json:"images,omitempty"`
	Amenities          datatypes.JSON `json:"amenities,omitempty"`
	CancellationPolicy datatypes.JSON `gorm:"column:cancellation_policy" json:"cancellation_policy,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Provider VendorProfile `gorm:"foreignKey:ProviderID" json:"-"`
	Island   Island        `gorm:"foreignKey:IslandID" json:"island,omitempty"`
}

// TypeFamily maps a namespaced service type to the vendor business type
// that owns it: "rental/car" -> "rental", "hotel" -> "hotel".
func TypeFamily(serviceType string) string {
	if idx := strings.Index(serviceType, "/"); idx >= 0 {
		return serviceType[:idx]
	}
	return serviceType
}
