package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"marketplace-backend/models"
	"marketplace-backend/services"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicController serves the traveler-facing browse endpoints. Only
// active listings are visible; no authentication is required.
type PublicController struct {
	db        *gorm.DB
	roomTypes *services.RoomTypeService
}

func NewPublicController(db *gorm.DB, roomTypes *services.RoomTypeService) *PublicController {
	return &PublicController{db: db, roomTypes: roomTypes}
}

// Islands handles GET /api/islands.
func (pc *PublicController) Islands(c *gin.Context) {
	var islands []models.Island
	if err := pc.db.Order("id").Find(&islands).Error; err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, islands)
}

// BrowseServices handles GET /api/services?island_id=&type=.
func (pc *PublicController) BrowseServices(c *gin.Context) {
	q := pc.db.Preload("Island").Where("is_active = ?", true)

	if raw := c.Query("island_id"); raw != "" {
		islandID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid island_id filter")
			return
		}
		q = q.Where("island_id = ?", islandID)
	}
	if t := c.Query("type"); t != "" {
		// Accept either a full namespaced type or a family prefix.
		q = q.Where("type = ? OR type LIKE ?", t, t+"/%")
	}

	var listings []models.Service
	if err := q.Order("id").Find(&listings).Error; err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, listings)
}

// HotelDetail handles GET /api/hotels/:serviceId: the public hotel page
// data, room types included. Inactive or non-hotel rows are 404.
func (pc *PublicController) HotelDetail(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}

	var hotel models.Hotel
	err := pc.db.Preload("Service").Preload("Service.Island").
		Where("service_id = ?", serviceID).First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if !hotel.Service.IsActive {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found")
		return
	}

	types, err := pc.roomTypes.ListForHotel(serviceID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"hotel":      hotel,
		"room_types": types,
	})
}
