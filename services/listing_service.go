package services

import (
	"encoding/json"
	"errors"
	"reflect"

	"marketplace-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrNoChanges is returned by update paths when the incoming body matches
// the stored row field for field. Handlers answer it with 400 rather than
// reporting a write that never happened.
var ErrNoChanges = errors.New("no changes detected")

// ListingInput is the add/edit-service body for non-hotel listings.
type ListingInput struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	IslandID    uint    `json:"island_id"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`

	Availability       map[string]interface{} `json:"availability"`
	Images             []string               `json:"images"`
	CancellationPolicy map[string]interface{} `json:"cancellation_policy"`
	Amenities          *models.Amenities      `json:"amenities"`
}

type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

// ListByProvider returns the vendor's non-hotel listings. Hotel rows are
// managed through the hotel endpoints only.
func (s *ListingService) ListByProvider(providerID uint) ([]models.Service, error) {
	var listings []models.Service
	err := s.db.Preload("Island").
		Where("provider_id = ? AND type <> ?", providerID, models.BusinessTypeHotel).
		Order("id").
		Find(&listings).Error
	return listings, err
}

func (s *ListingService) GetByID(serviceID uint) (*models.Service, error) {
	var svc models.Service
	if err := s.db.Preload("Island").First(&svc, serviceID).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *ListingService) Create(providerID uint, in ListingInput) (*models.Service, error) {
	availability, images, amenities, policy, err := encodeListingFields(in)
	if err != nil {
		return nil, err
	}

	svc := models.Service{
		ProviderID:         providerID,
		Type:               in.Type,
		Name:               in.Name,
		Price:              in.Price,
		IslandID:           in.IslandID,
		IsActive:           true,
		Availability:       availability,
		Images:             images,
		Amenities:          amenities,
		CancellationPolicy: policy,
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := s.db.Create(&svc).Error; err != nil {
		return nil, err
	}
	return s.GetByID(svc.ID)
}

// Update applies the edit-service body to an owned row. It returns the
// refreshed row and the image URLs the update stopped referencing, which
// the caller cleans up best-effort after responding to the write.
func (s *ListingService) Update(current *models.Service, in ListingInput) (*models.Service, []string, error) {
	availability, images, amenities, policy, err := encodeListingFields(in)
	if err != nil {
		return nil, nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != current.Name {
		updates["name"] = in.Name
	}
	if in.Type != current.Type {
		updates["type"] = in.Type
	}
	if in.Price != current.Price {
		updates["price"] = in.Price
	}
	if in.IslandID != current.IslandID {
		updates["island_id"] = in.IslandID
	}
	if in.Description != nil && *in.Description != current.Description {
		updates["description"] = *in.Description
	}
	if in.IsActive != nil && *in.IsActive != current.IsActive {
		updates["is_active"] = *in.IsActive
	}
	applyJSONUpdate(updates, "availability", current.Availability, availability)
	applyJSONUpdate(updates, "images", current.Images, images)
	applyJSONUpdate(updates, "amenities", current.Amenities, amenities)
	applyJSONUpdate(updates, "cancellation_policy", current.CancellationPolicy, policy)

	if len(updates) == 0 {
		return nil, nil, ErrNoChanges
	}

	if err := s.db.Model(&models.Service{}).Where("id = ?", current.ID).Updates(updates).Error; err != nil {
		return nil, nil, err
	}

	var removed []string
	if in.Images != nil {
		removed = RemovedURLs(models.DecodeStringList(current.Images), in.Images)
	}

	refreshed, err := s.GetByID(current.ID)
	return refreshed, removed, err
}

// Delete removes the listing row and reports the image URLs it held so
// the caller can clean the asset store.
func (s *ListingService) Delete(serviceID uint) ([]string, error) {
	var svc models.Service
	if err := s.db.First(&svc, serviceID).Error; err != nil {
		return nil, err
	}
	images := models.DecodeStringList(svc.Images)

	res := s.db.Delete(&models.Service{}, serviceID)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return images, nil
}

func encodeListingFields(in ListingInput) (availability, images, amenities, policy datatypes.JSON, err error) {
	if in.Availability != nil {
		if availability, err = models.EncodeJSONField("availability", in.Availability); err != nil {
			return
		}
	}
	if in.Images != nil {
		if images, err = models.EncodeJSONField("images", in.Images); err != nil {
			return
		}
	}
	if in.Amenities != nil {
		if amenities, err = models.EncodeJSONField("amenities", in.Amenities); err != nil {
			return
		}
	}
	if in.CancellationPolicy != nil {
		if policy, err = models.EncodeJSONField("cancellation_policy", in.CancellationPolicy); err != nil {
			return
		}
	}
	return
}

// applyJSONUpdate records a JSON column change only when the incoming
// value is present and differs semantically from what is stored. MySQL
// reformats json columns on write, so byte comparison would report false
// changes.
func applyJSONUpdate(updates map[string]interface{}, column string, current, incoming datatypes.JSON) {
	if incoming == nil {
		return
	}
	if !jsonEqual(current, incoming) {
		updates[column] = incoming
	}
}

func jsonEqual(a, b datatypes.JSON) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	var av, bv interface{}
	if json.Unmarshal(a, &av) != nil || json.Unmarshal(b, &bv) != nil {
		return string(a) == string(b)
	}
	return reflect.DeepEqual(av, bv)
}
