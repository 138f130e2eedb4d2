package controllers

import (
	"errors"
	"net/http"
	"strings"

	"marketplace-backend/middleware"
	"marketplace-backend/models"
	"marketplace-backend/services"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ServiceController manages the generic (rental/activity) listings under
// /api/vendor/my-services. Hotels go through HotelController.
type ServiceController struct {
	ownership *services.OwnershipService
	listings  *services.ListingService
	images    *services.ImageService
}

func NewServiceController(ownership *services.OwnershipService, listings *services.ListingService, images *services.ImageService) *ServiceController {
	return &ServiceController{ownership: ownership, listings: listings, images: images}
}

func validateListingInput(in services.ListingInput) []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Type) == "" {
		missing = append(missing, "type")
	}
	if in.Price <= 0 {
		missing = append(missing, "price")
	}
	if in.IslandID == 0 {
		missing = append(missing, "island_id")
	}
	return missing
}

func (sc *ServiceController) Create(c *gin.Context) {
	profile, err := sc.ownership.ProfileForUser(middleware.GetUserID(c))
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

	var in services.ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if missing := validateListingInput(in); len(missing) > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}
	if models.TypeFamily(in.Type) != profile.BusinessType {
		utils.JSONError(c, http.StatusForbidden, msgWrongType)
		return
	}
	if in.Amenities != nil {
		if err := in.Amenities.Validate(in.Type); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	svc, err := sc.listings.Create(profile.ID, in)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to create service", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, svc)
}

func (sc *ServiceController) ListMine(c *gin.Context) {
	profile, err := sc.ownership.ProfileForUser(middleware.GetUserID(c))
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if profile == nil {
		utils.JSONError(c, http.StatusForbidden, msgNoProfile)
		return
	}
	listings, err := sc.listings.ListByProvider(profile.ID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, listings)
}

func (sc *ServiceController) Get(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	res, err := sc.ownership.ResolveListing(middleware.GetUserID(c), serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if !authorizeOwnership(c, res, false, "Service not found") {
		return
	}

	svc, err := sc.listings.GetByID(serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, svc)
}

func (sc *ServiceController) Update(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	res, err := sc.ownership.ResolveListing(middleware.GetUserID(c), serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if !authorizeOwnership(c, res, true, "Service not found") {
		return
	}

	var in services.ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if missing := validateListingInput(in); len(missing) > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}
	// The namespaced type may change (rental/car -> rental/bike) but never
	// leave the vendor's business type.
	if models.TypeFamily(in.Type) != res.Profile.BusinessType {
		utils.JSONError(c, http.StatusForbidden, msgWrongType)
		return
	}
	if in.Amenities != nil {
		if err := in.Amenities.Validate(in.Type); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	updated, removed, err := sc.listings.Update(res.Service, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoChanges):
			utils.JSONError(c, http.StatusBadRequest, "No changes detected")
		case strings.HasPrefix(err.Error(), "invalid "):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to update service", err)
		}
		return
	}

	sc.images.CleanupURLs(removed)
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (sc *ServiceController) Delete(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	res, err := sc.ownership.ResolveListing(middleware.GetUserID(c), serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if !authorizeOwnership(c, res, true, "Service not found") {
		return
	}

	images, err := sc.listings.Delete(serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to delete service", err)
		return
	}

	sc.images.CleanupURLs(images)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service deleted"})
}
