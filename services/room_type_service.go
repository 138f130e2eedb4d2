package services

import (
	"marketplace-backend/models"

	"gorm.io/gorm"
)

type RoomTypeInput struct {
	Name              string   `json:"name"`
	BasePrice         float64  `json:"base_price"`
	MaxGuests         int      `json:"max_guests"`
	QuantityAvailable *int     `json:"quantity_available"`
	Amenities         []string `json:"amenities"`
	Images            []string `json:"images"`
}

type RoomTypeService struct {
	db *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{db: db}
}

func (s *RoomTypeService) Create(hotelServiceID uint, in RoomTypeInput) (*models.RoomType, error) {
	amenities, err := models.EncodeJSONField("amenities", orEmpty(in.Amenities))
	if err != nil {
		return nil, err
	}
	images, err := models.EncodeJSONField("images", orEmpty(in.Images))
	if err != nil {
		return nil, err
	}

	rt := models.RoomType{
		HotelServiceID: hotelServiceID,
		Name:           in.Name,
		BasePrice:      in.BasePrice,
		MaxGuests:      in.MaxGuests,
		Amenities:      amenities,
		Images:         images,
	}
	if in.QuantityAvailable != nil {
		rt.QuantityAvailable = *in.QuantityAvailable
	}
	if err := s.db.Create(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (s *RoomTypeService) ListForHotel(hotelServiceID uint) ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.db.Where("hotel_service_id = ?", hotelServiceID).Order("id").Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.db.First(&rt, id).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (s *RoomTypeService) Update(current *models.RoomType, in RoomTypeInput) (*models.RoomType, error) {
	updates := map[string]interface{}{}
	if in.Name != current.Name {
		updates["name"] = in.Name
	}
	if in.BasePrice != current.BasePrice {
		updates["base_price"] = in.BasePrice
	}
	if in.MaxGuests != current.MaxGuests {
		updates["max_guests"] = in.MaxGuests
	}
	if in.QuantityAvailable != nil && *in.QuantityAvailable != current.QuantityAvailable {
		updates["quantity_available"] = *in.QuantityAvailable
	}
	if in.Amenities != nil {
		amenities, err := models.EncodeJSONField("amenities", in.Amenities)
		if err != nil {
			return nil, err
		}
		applyJSONUpdate(updates, "amenities", current.Amenities, amenities)
	}
	if in.Images != nil {
		images, err := models.EncodeJSONField("images", in.Images)
		if err != nil {
			return nil, err
		}
		applyJSONUpdate(updates, "images", current.Images, images)
	}

	if len(updates) == 0 {
		return nil, ErrNoChanges
	}
	if err := s.db.Model(&models.RoomType{}).Where("id = ?", current.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(current.ID)
}

func (s *RoomTypeService) Delete(id uint) error {
	res := s.db.Delete(&models.RoomType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
