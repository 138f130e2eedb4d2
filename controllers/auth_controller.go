package controllers

import (
	"errors"
	"net/http"
	"strings"

	"marketplace-backend/middleware"
	"marketplace-backend/models"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

type signupRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	RoleID   uint   `json:"role_id"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Signup handles POST /api/auth/signup. Role defaults to traveler; admin
// accounts are seeded, never self-registered.
func (ac *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	role := req.RoleID
	if role == 0 {
		role = models.RoleTraveler
	}
	if role != models.RoleTraveler && role != models.RoleVendor {
		utils.JSONError(c, http.StatusBadRequest, "role_id must be traveler (2) or vendor (3)")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to create account", err)
		return
	}

	user := models.User{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hash),
		RoleID:   role,
	}
	if err := ac.db.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, "Email already registered")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to create account", err)
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, authResponse{Token: token, User: user})
}

// Login handles POST /api/auth/login. Credential failures share one
// message so callers cannot tell a bad email from a bad password.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	var user models.User
	err := ac.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, authResponse{Token: token, User: user})
}

// isDuplicateKey recognizes a unique-index violation from the MySQL
// driver, falling back to message sniffing for other drivers (the test
// database uses sqlite).
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
