package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomType belongs to a hotel, keyed by the hotel's underlying service id.
type RoomType struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	HotelServiceID uint `gorm:"index;column:hotel_service_id" json:"hotel_service_id"`

	Name              string  `gorm:"size:255" json:"name"`
	BasePrice         float64 `json:"base_price"`
	MaxGuests         int     `json:"max_guests"`
	QuantityAvailable int     `json:"quantity_available"`

	Amenities datatypes.JSON `json:"amenities,omitempty"`
	Images    datatypes.JSON `json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
