package services

import (
	"errors"

	"marketplace-backend/models"

	"gorm.io/gorm"
)

// Ownership is the authorization triple every vendor listing endpoint
// branches on. Callers map: not owner -> 404, owner but not verified ->
// 403 (mutations only), wrong vendor type -> 403.
type Ownership struct {
	Owner       bool
	Verified    bool
	CorrectType bool

	Profile *models.VendorProfile
	Service *models.Service
}

type OwnershipService struct {
	db *gorm.DB
}

func NewOwnershipService(db *gorm.DB) *OwnershipService {
	return &OwnershipService{db: db}
}

// ProfileForUser loads the vendor profile for a user id. A missing
// profile is not an error; it just fails every ownership check.
func (s *OwnershipService) ProfileForUser(userID uint) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// ResolveHotel authorizes access to a hotel-scoped service id. Ownership
// only holds when the underlying service row is actually of type "hotel";
// a rental vendor owning the row id by coincidence must still see 404.
func (s *OwnershipService) ResolveHotel(userID, serviceID uint) (Ownership, error) {
	return s.resolve(userID, serviceID, true)
}

// ResolveListing authorizes access to a generic (non-hotel) service id.
// Hotel rows are invisible through this path even for their owner.
func (s *OwnershipService) ResolveListing(userID, serviceID uint) (Ownership, error) {
	return s.resolve(userID, serviceID, false)
}

func (s *OwnershipService) resolve(userID, serviceID uint, wantHotel bool) (Ownership, error) {
	var res Ownership

	profile, err := s.ProfileForUser(userID)
	if err != nil {
		return res, err
	}
	if profile == nil {
		return res, nil
	}
	res.Profile = profile
	res.Verified = profile.Verified == 1
	if wantHotel {
		res.CorrectType = profile.BusinessType == models.BusinessTypeHotel
	} else {
		res.CorrectType = profile.BusinessType != models.BusinessTypeHotel
	}

	var svc models.Service
	err = s.db.First(&svc, serviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, nil
		}
		return res, err
	}
	res.Service = &svc
	res.Owner = svc.ProviderID == profile.ID

	// Type guard: a hotel-scoped check must not match a non-hotel row and
	// vice versa, regardless of ownership.
	if res.Owner {
		isHotelRow := models.TypeFamily(svc.Type) == models.BusinessTypeHotel
		if wantHotel != isHotelRow {
			res.Owner = false
		}
	}
	return res, nil
}
