package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"marketplace-backend/middleware"
	"marketplace-backend/models"
	"marketplace-backend/services"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HotelController struct {
	ownership *services.OwnershipService
	hotels    *services.HotelService
	images    *services.ImageService
}

func NewHotelController(ownership *services.OwnershipService, hotels *services.HotelService, images *services.ImageService) *HotelController {
	return &HotelController{ownership: ownership, hotels: hotels, images: images}
}

func validateHotelInput(in services.HotelInput) []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if in.Price <= 0 {
		missing = append(missing, "price")
	}
	if in.IslandID == 0 {
		missing = append(missing, "island_id")
	}
	if in.StarRating == 0 {
		missing = append(missing, "star_rating")
	}
	if strings.TrimSpace(in.CheckInTime) == "" {
		missing = append(missing, "check_in_time")
	}
	if strings.TrimSpace(in.CheckOutTime) == "" {
		missing = append(missing, "check_out_time")
	}
	if strings.TrimSpace(in.StreetAddress) == "" {
		missing = append(missing, "street_address")
	}
	return missing
}

// Create handles POST /api/vendor/hotels. Creation is a mutation, so it
// requires a verified hotel-type profile.
func (hc *HotelController) Create(c *gin.Context) {
	profile, err := hc.ownership.ProfileForUser(middleware.GetUserID(c))
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if profile == nil {
		utils.JSONError(c, http.StatusForbidden, msgNoProfile)
		return
	}
	if profile.Verified != 1 {
		utils.JSONError(c, http.StatusForbidden, msgNotVerified)
		return
	}
	if profile.BusinessType != models.BusinessTypeHotel {
		utils.JSONError(c, http.StatusForbidden, msgWrongType)
		return
	}

	var in services.HotelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if missing := validateHotelInput(in); len(missing) > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}
	if in.Amenities != nil {
		if err := in.Amenities.Validate(models.BusinessTypeHotel); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	hotel, err := hc.hotels.Create(profile.ID, in)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to create hotel", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// ListMine handles GET /api/vendor/hotels. Reads do not require the
// verified flag.
func (hc *HotelController) ListMine(c *gin.Context) {
	profile, err := hc.ownership.ProfileForUser(middleware.GetUserID(c))
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if profile == nil {
		utils.JSONError(c, http.StatusForbidden, msgNoProfile)
		return
	}
	hotels, err := hc.hotels.ListByProvider(profile.ID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// Get handles GET /api/vendor/hotels/:serviceId. Ownership and hotel type
// are enforced; verification deliberately is not, so pending vendors can
// still see their data.
func (hc *HotelController) Get(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	res, err := hc.ownership.ResolveHotel(middleware.GetUserID(c), serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if !authorizeOwnership(c, res, false, "Hotel not found") {
		return
	}

	hotel, err := hc.hotels.GetByServiceID(serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// Update handles PUT /api/vendor/hotels/:serviceId.
func (hc *HotelController) Update(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	res, err := hc.ownership.ResolveHotel(middleware.GetUserID(c), serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if !authorizeOwnership(c, res, true, "Hotel not found") {
		return
	}

	var in services.HotelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if missing := validateHotelInput(in); len(missing) > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}
	if in.Amenities != nil {
		if err := in.Amenities.Validate(models.BusinessTypeHotel); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	hotel, err := hc.hotels.GetByServiceID(serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	updated, removed, err := hc.hotels.Update(hotel, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoChanges):
			utils.JSONError(c, http.StatusBadRequest, "No changes detected")
		case strings.HasPrefix(err.Error(), "invalid "):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to update hotel", err)
		}
		return
	}

	hc.images.CleanupURLs(removed)
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/vendor/hotels/:serviceId. Room types cascade
// in the same transaction; image blobs are cleaned up best-effort after.
func (hc *HotelController) Delete(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	res, err := hc.ownership.ResolveHotel(middleware.GetUserID(c), serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if !authorizeOwnership(c, res, true, "Hotel not found") {
		return
	}

	hotel, err := hc.hotels.GetByServiceID(serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	images, err := hc.hotels.Delete(hotel)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to delete hotel", err)
		return
	}

	hc.images.CleanupURLs(images)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Hotel %d deleted", serviceID)})
}
