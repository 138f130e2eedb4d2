package models

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// Amenities is the structured content of the services.amenities column.
// General applies to every listing; exactly one specifics variant may be
// set, and it must match the listing's type family.
type Amenities struct {
	General  []string           `json:"general"`
	Rental   *RentalSpecifics   `json:"rental,omitempty"`
	Activity *ActivitySpecifics `json:"activity,omitempty"`
}

type RentalSpecifics struct {
	Transmission string `json:"transmission,omitempty"`
	FuelType     string `json:"fuel_type,omitempty"`
	Seats        int    `json:"seats,omitempty"`
	UnitCount    int    `json:"unit_count,omitempty"`
}

type ActivitySpecifics struct {
	DurationHours     float64 `json:"duration_hours,omitempty"`
	GroupSize         int     `json:"group_size,omitempty"`
	Difficulty        string  `json:"difficulty,omitempty"`
	EquipmentProvided bool    `json:"equipment_provided"`
}

// Validate rejects a specifics variant that does not belong to the
// listing's type family. A missing variant is fine.
func (a *Amenities) Validate(serviceType string) error {
	if a == nil {
		return nil
	}
	family := TypeFamily(serviceType)
	if a.Rental != nil && family != BusinessTypeRental {
		return fmt.Errorf("rental amenities are not valid for a %s listing", family)
	}
	if a.Activity != nil && family != BusinessTypeActivity {
		return fmt.Errorf("activity amenities are not valid for a %s listing", family)
	}
	return nil
}

// DecodeAmenities reads a stored amenities column. Malformed or legacy
// values degrade to an empty structure instead of failing the read.
func DecodeAmenities(raw datatypes.JSON) Amenities {
	var a Amenities
	if len(raw) == 0 || json.Unmarshal(raw, &a) != nil {
		return Amenities{General: []string{}}
	}
	if a.General == nil {
		a.General = []string{}
	}
	return a
}
