package services

import (
	"marketplace-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HotelInput is the add/edit-hotel body. Required fields are checked by
// the handler before this layer runs.
type HotelInput struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	IslandID      uint    `json:"island_id"`
	Description   *string `json:"description"`
	StarRating    int     `json:"star_rating"`
	CheckInTime   string  `json:"check_in_time"`
	CheckOutTime  string  `json:"check_out_time"`
	StreetAddress string  `json:"street_address"`
	TotalRooms    *int    `json:"total_rooms"`
	IsActive      *bool   `json:"is_active"`

	PetsAllowed     *bool    `json:"pets_allowed"`
	ChildrenAllowed *bool    `json:"children_allowed"`
	GeoLat          *float64 `json:"geo_lat"`
	GeoLng          *float64 `json:"geo_lng"`

	Facilities         []string               `json:"facilities"`
	MealPlans          []string               `json:"meal_plans"`
	Images             []string               `json:"images"`
	Availability       map[string]interface{} `json:"availability"`
	CancellationPolicy map[string]interface{} `json:"cancellation_policy"`
	Amenities          *models.Amenities      `json:"amenities"`
}

type HotelService struct {
	db *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{db: db}
}

func (s *HotelService) ListByProvider(providerID uint) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.db.Preload("Service").Preload("Service.Island").
		Joins("JOIN services ON services.id = hotels.service_id").
		Where("services.provider_id = ? AND services.deleted_at IS NULL", providerID).
		Order("hotels.id").
		Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) GetByServiceID(serviceID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.db.Preload("Service").Preload("Service.Island").
		Where("service_id = ?", serviceID).First(&hotel).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// Create inserts the Service and Hotel rows inside one transaction.
func (s *HotelService) Create(providerID uint, in HotelInput) (*models.Hotel, error) {
	svcJSON, hotelJSON, err := encodeHotelFields(in)
	if err != nil {
		return nil, err
	}

	svc := models.Service{
		ProviderID:         providerID,
		Type:               models.BusinessTypeHotel,
		Name:               in.Name,
		Price:              in.Price,
		IslandID:           in.IslandID,
		IsActive:           true,
		Availability:       svcJSON.availability,
		Images:             svcJSON.images,
		Amenities:          svcJSON.amenities,
		CancellationPolicy: svcJSON.policy,
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	hotel := models.Hotel{
		StarRating:      in.StarRating,
		CheckInTime:     in.CheckInTime,
		CheckOutTime:    in.CheckOutTime,
		StreetAddress:   in.StreetAddress,
		Facilities:      hotelJSON.facilities,
		MealPlans:       hotelJSON.mealPlans,
		ChildrenAllowed: true,
		GeoLat:          in.GeoLat,
		GeoLng:          in.GeoLng,
	}
	if in.TotalRooms != nil {
		hotel.TotalRooms = *in.TotalRooms
	}
	if in.PetsAllowed != nil {
		hotel.PetsAllowed = *in.PetsAllowed
	}
	if in.ChildrenAllowed != nil {
		hotel.ChildrenAllowed = *in.ChildrenAllowed
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&svc).Error; err != nil {
			return err
		}
		hotel.ServiceID = svc.ID
		return tx.Create(&hotel).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByServiceID(svc.ID)
}

// Update applies the edit body to the Service and Hotel rows in one
// transaction, rejecting bodies that change nothing. Returns the
// refreshed joined row and the image URLs no longer referenced.
func (s *HotelService) Update(current *models.Hotel, in HotelInput) (*models.Hotel, []string, error) {
	svcJSON, hotelJSON, err := encodeHotelFields(in)
	if err != nil {
		return nil, nil, err
	}

	svc := current.Service
	svcUpdates := map[string]interface{}{}
	if in.Name != svc.Name {
		svcUpdates["name"] = in.Name
	}
	if in.Price != svc.Price {
		svcUpdates["price"] = in.Price
	}
	if in.IslandID != svc.IslandID {
		svcUpdates["island_id"] = in.IslandID
	}
	if in.Description != nil && *in.Description != svc.Description {
		svcUpdates["description"] = *in.Description
	}
	if in.IsActive != nil && *in.IsActive != svc.IsActive {
		svcUpdates["is_active"] = *in.IsActive
	}
	applyJSONUpdate(svcUpdates, "availability", svc.Availability, svcJSON.availability)
	applyJSONUpdate(svcUpdates, "images", svc.Images, svcJSON.images)
	applyJSONUpdate(svcUpdates, "amenities", svc.Amenities, svcJSON.amenities)
	applyJSONUpdate(svcUpdates, "cancellation_policy", svc.CancellationPolicy, svcJSON.policy)

	hotelUpdates := map[string]interface{}{}
	if in.StarRating != current.StarRating {
		hotelUpdates["star_rating"] = in.StarRating
	}
	if in.CheckInTime != current.CheckInTime {
		hotelUpdates["check_in_time"] = in.CheckInTime
	}
	if in.CheckOutTime != current.CheckOutTime {
		hotelUpdates["check_out_time"] = in.CheckOutTime
	}
	if in.StreetAddress != current.StreetAddress {
		hotelUpdates["street_address"] = in.StreetAddress
	}
	if in.TotalRooms != nil && *in.TotalRooms != current.TotalRooms {
		hotelUpdates["total_rooms"] = *in.TotalRooms
	}
	if in.PetsAllowed != nil && *in.PetsAllowed != current.PetsAllowed {
		hotelUpdates["pets_allowed"] = *in.PetsAllowed
	}
	if in.ChildrenAllowed != nil && *in.ChildrenAllowed != current.ChildrenAllowed {
		hotelUpdates["children_allowed"] = *in.ChildrenAllowed
	}
	if in.GeoLat != nil && (current.GeoLat == nil || *in.GeoLat != *current.GeoLat) {
		hotelUpdates["geo_lat"] = *in.GeoLat
	}
	if in.GeoLng != nil && (current.GeoLng == nil || *in.GeoLng != *current.GeoLng) {
		hotelUpdates["geo_lng"] = *in.GeoLng
	}
	applyJSONUpdate(hotelUpdates, "facilities", current.Facilities, hotelJSON.facilities)
	applyJSONUpdate(hotelUpdates, "meal_plans", current.MealPlans, hotelJSON.mealPlans)

	if len(svcUpdates) == 0 && len(hotelUpdates) == 0 {
		return nil, nil, ErrNoChanges
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(svcUpdates) > 0 {
			if err := tx.Model(&models.Service{}).Where("id = ?", svc.ID).Updates(svcUpdates).Error; err != nil {
				return err
			}
		}
		if len(hotelUpdates) > 0 {
			if err := tx.Model(&models.Hotel{}).Where("id = ?", current.ID).Updates(hotelUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var removed []string
	if in.Images != nil {
		removed = RemovedURLs(models.DecodeStringList(svc.Images), in.Images)
	}

	refreshed, err := s.GetByServiceID(svc.ID)
	return refreshed, removed, err
}

// Delete removes the hotel, its underlying service and every dependent
// room type in one transaction. Returns the stored image URLs for
// best-effort asset cleanup.
func (s *HotelService) Delete(current *models.Hotel) ([]string, error) {
	images := models.DecodeStringList(current.Service.Images)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_service_id = ?", current.ServiceID).Delete(&models.RoomType{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", current.ServiceID).Delete(&models.Hotel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Service{}, current.ServiceID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

type serviceJSONFields struct {
	availability datatypes.JSON
	images       datatypes.JSON
	amenities    datatypes.JSON
	policy       datatypes.JSON
}

type hotelJSONFields struct {
	facilities datatypes.JSON
	mealPlans  datatypes.JSON
}

func encodeHotelFields(in HotelInput) (serviceJSONFields, hotelJSONFields, error) {
	var sj serviceJSONFields
	var hj hotelJSONFields
	var err error

	if in.Availability != nil {
		if sj.availability, err = models.EncodeJSONField("availability", in.Availability); err != nil {
			return sj, hj, err
		}
	}
	if in.Images != nil {
		if sj.images, err = models.EncodeJSONField("images", in.Images); err != nil {
			return sj, hj, err
		}
	}
	if in.Amenities != nil {
		if sj.amenities, err = models.EncodeJSONField("amenities", in.Amenities); err != nil {
			return sj, hj, err
		}
	}
	if in.CancellationPolicy != nil {
		if sj.policy, err = models.EncodeJSONField("cancellation_policy", in.CancellationPolicy); err != nil {
			return sj, hj, err
		}
	}
	if in.Facilities != nil {
		if hj.facilities, err = models.EncodeJSONField("facilities", in.Facilities); err != nil {
			return sj, hj, err
		}
	}
	if in.MealPlans != nil {
		if hj.mealPlans, err = models.EncodeJSONField("meal_plans", in.MealPlans); err != nil {
			return sj, hj, err
		}
	}
	return sj, hj, nil
}
