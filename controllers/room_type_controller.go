package controllers

import (
	"errors"
	"net/http"
	"strings"

	"marketplace-backend/middleware"
	"marketplace-backend/services"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RoomTypeController manages room types under a vendor's hotel. Every
// operation authorizes against the parent hotel's service id.
type RoomTypeController struct {
	ownership *services.OwnershipService
	roomTypes *services.RoomTypeService
}

func NewRoomTypeController(ownership *services.OwnershipService, roomTypes *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{ownership: ownership, roomTypes: roomTypes}
}

func validateRoomTypeInput(in services.RoomTypeInput) []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if in.BasePrice <= 0 {
		missing = append(missing, "base_price")
	}
	if in.MaxGuests <= 0 {
		missing = append(missing, "max_guests")
	}
	return missing
}

// Create handles POST /api/vendor/hotels/:serviceId/room-types.
func (rc *RoomTypeController) Create(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	res, err := rc.ownership.ResolveHotel(middleware.GetUserID(c), serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if !authorizeOwnership(c, res, true, "Hotel not found") {
		return
	}

	var in services.RoomTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if missing := validateRoomTypeInput(in); len(missing) > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	rt, err := rc.roomTypes.Create(serviceID, in)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to create room type", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

// List handles GET /api/vendor/hotels/:serviceId/room-types.
func (rc *RoomTypeController) List(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	res, err := rc.ownership.ResolveHotel(middleware.GetUserID(c), serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if !authorizeOwnership(c, res, false, "Hotel not found") {
		return
	}

	types, err := rc.roomTypes.ListForHotel(serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

// resolveParent authorizes a room-type id through its parent hotel.
// A room type whose parent is not owned by the caller looks like 404.
func (rc *RoomTypeController) resolveParent(c *gin.Context, requireVerified bool) (uint, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return 0, false
	}
	rt, err := rc.roomTypes.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room type not found")
			return 0, false
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return 0, false
	}

	res, err := rc.ownership.ResolveHotel(middleware.GetUserID(c), rt.HotelServiceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return 0, false
	}
	if !authorizeOwnership(c, res, requireVerified, "Room type not found") {
		return 0, false
	}
	return id, true
}

// Update handles PUT /api/vendor/room-types/:id.
func (rc *RoomTypeController) Update(c *gin.Context) {
	id, ok := rc.resolveParent(c, true)
	if !ok {
		return
	}

	var in services.RoomTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if missing := validateRoomTypeInput(in); len(missing) > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	rt, err := rc.roomTypes.GetByID(id)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	updated, err := rc.roomTypes.Update(rt, in)
	if err != nil {
		if errors.Is(err, services.ErrNoChanges) {
			utils.JSONError(c, http.StatusBadRequest, "No changes detected")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to update room type", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/vendor/room-types/:id.
func (rc *RoomTypeController) Delete(c *gin.Context) {
	id, ok := rc.resolveParent(c, true)
	if !ok {
		return
	}
	if err := rc.roomTypes.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room type not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to delete room type", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Room type deleted"})
}
