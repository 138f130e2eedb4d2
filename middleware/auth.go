package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"marketplace-backend/models"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	RoleID uint   `json:"role_id"`
	jwt.RegisteredClaims
}

func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}
	return []byte(secret), nil
}

// GenerateToken creates a signed JWT for a given user.
func GenerateToken(user *models.User) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// AuthRequired validates the bearer token and injects claims into context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Authorization header required (Bearer <token>)")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return jwtSecret()
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("roleID", claims.RoleID)
		c.Next()
	}
}

// RoleRequired enforces that the caller holds one of the allowed role ids.
// Must run after AuthRequired.
func RoleRequired(roles ...uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("roleID")
		if !exists {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		callerRole, ok := roleVal.(uint)
		if ok {
			for _, r := range roles {
				if callerRole == r {
					c.Next()
					return
				}
			}
		}
		utils.JSONError(c, http.StatusForbidden, "Access denied for this role")
		c.Abort()
	}
}

// GetUserID extracts the caller's user id from context.
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	id, _ := val.(uint)
	return id
}

// GetRoleID extracts the caller's role id from context.
func GetRoleID(c *gin.Context) uint {
	val, _ := c.Get("roleID")
	id, _ := val.(uint)
	return id
}
