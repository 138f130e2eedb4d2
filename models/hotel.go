package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Hotel extends a Service row of type "hotel" one-to-one by service id.
type Hotel struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"uniqueIndex;column:service_id" json:"service_id"`

	StarRating   int    `json:"star_rating"`
	CheckInTime  string `gorm:"size:20" json:"check_in_time"`
	CheckOutTime string `gorm:"size:20" json:"check_out_time"`
	TotalRooms   int    `json:"total_rooms"`

	Facilities datatypes.JSON `json:"facilities,omitempty"`
	MealPlans  datatypes.JSON `gorm:"column:meal_plans" json:"meal_plans,omitempty"`

	PetsAllowed     bool `gorm:"default:false" json:"pets_allowed"`
	ChildrenAllowed bool `gorm:"default:true" json:"children_allowed"`

	StreetAddress string   `gorm:"type:text" json:"street_address"`
	GeoLat        *float64 `json:"geo_lat,omitempty"`
	GeoLng        *float64 `json:"geo_lng,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Service Service `gorm:"foreignKey:ServiceID" json:"service"`
}
