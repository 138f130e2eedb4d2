package controllers

import (
	"net/http"
	"strings"

	"marketplace-backend/middleware"
	"marketplace-backend/models"
	"marketplace-backend/services"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VendorController struct {
	db        *gorm.DB
	ownership *services.OwnershipService
	images    *services.ImageService
}

func NewVendorController(db *gorm.DB, ownership *services.OwnershipService, images *services.ImageService) *VendorController {
	return &VendorController{db: db, ownership: ownership, images: images}
}

type registerVendorRequest struct {
	BusinessType string `json:"business_type" binding:"required"`
	BusinessName string `json:"business_name" binding:"required"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
}

// Register handles POST /api/vendors/register. The profile starts
// unverified; an admin flips the flag later.
func (vc *VendorController) Register(c *gin.Context) {
	var req registerVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if !models.ValidBusinessType(req.BusinessType) {
		utils.JSONError(c, http.StatusBadRequest, "business_type must be one of: hotel, rental, activity")
		return
	}

	userID := middleware.GetUserID(c)
	existing, err := vc.ownership.ProfileForUser(userID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if existing != nil {
		utils.JSONError(c, http.StatusConflict, "Vendor profile already exists")
		return
	}

	profile := models.VendorProfile{
		UserID:       userID,
		BusinessType: req.BusinessType,
		BusinessName: strings.TrimSpace(req.BusinessName),
		Address:      req.Address,
		Phone:        req.Phone,
	}
	if err := vc.db.Create(&profile).Error; err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, "Vendor profile already exists")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to create vendor profile", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, profile)
}

// Profile handles GET /api/vendors/profile, returning the profile joined
// with the account's contact fields.
func (vc *VendorController) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	profile, err := vc.ownership.ProfileForUser(userID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if profile == nil {
		utils.JSONError(c, http.StatusNotFound, "Vendor profile not found")
		return
	}

	var user models.User
	if err := vc.db.First(&user, userID).Error; err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"id":            profile.ID,
		"user_id":       profile.UserID,
		"business_type": profile.BusinessType,
		"verified":      profile.Verified,
		"business_name": profile.BusinessName,
		"address":       profile.Address,
		"phone":         profile.Phone,
		"full_name":     user.FullName,
		"email":         user.Email,
	})
}

type uploadRequest struct {
	Image string `json:"image" binding:"required"`
	Kind  string `json:"kind"`
}

// Upload handles POST /api/vendor/uploads: a base64 image in, a public
// asset URL out. Listings then reference the URL in their images column.
func (vc *VendorController) Upload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	url, err := vc.images.SaveBase64(req.Image, req.Kind)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not store image: "+err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"url": url})
}
