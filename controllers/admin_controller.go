package controllers

import (
	"errors"
	"net/http"

	"marketplace-backend/models"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	db *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

// ListVendors handles GET /api/admin/vendors.
func (ac *AdminController) ListVendors(c *gin.Context) {
	var profiles []models.VendorProfile
	if err := ac.db.Preload("User").Order("id").Find(&profiles).Error; err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profiles)
}

type verifyVendorRequest struct {
	Verified *int `json:"verified" binding:"required"`
}

// VerifyVendor handles PATCH /api/admin/vendors/:id/verify, the
// administrative flip of the verified flag that gates listing writes.
func (ac *AdminController) VerifyVendor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req verifyVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if *req.Verified != 0 && *req.Verified != 1 {
		utils.JSONError(c, http.StatusBadRequest, "verified must be 0 or 1")
		return
	}

	var profile models.VendorProfile
	if err := ac.db.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Vendor profile not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	if err := ac.db.Model(&profile).Update("verified", *req.Verified).Error; err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to update vendor", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}
