package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-backend/config"
	"marketplace-backend/controllers"
	"marketplace-backend/middleware"
	"marketplace-backend/models"
	"marketplace-backend/routes"
	"marketplace-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	assets string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	assetDir := t.TempDir()
	images := services.NewImageServiceAt(assetDir, "https://assets.test")
	ownership := services.NewOwnershipService(db)
	listings := services.NewListingService(db)
	hotels := services.NewHotelService(db)
	roomTypes := services.NewRoomTypeService(db)

	router := routes.SetupRouter(
		controllers.NewAuthController(db),
		controllers.NewVendorController(db, ownership, images),
		controllers.NewHotelController(ownership, hotels, images),
		controllers.NewServiceController(ownership, listings, images),
		controllers.NewRoomTypeController(ownership, roomTypes),
		controllers.NewPublicController(db, roomTypes),
		controllers.NewAdminController(db),
	)
	return &testEnv{router: router, db: db, assets: assetDir}
}

func (e *testEnv) createUser(t *testing.T, roleID uint) (models.User, string) {
	t.Helper()
	user := models.User{
		FullName: "User " + uuid.NewString()[:8],
		Email:    uuid.NewString() + "@users.test",
		Password: "x",
		RoleID:   roleID,
	}
	require.NoError(t, e.db.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) createVendor(t *testing.T, businessType string, verified int) (models.VendorProfile, string) {
	t.Helper()
	user, token := e.createUser(t, models.RoleVendor)
	profile := models.VendorProfile{
		UserID:       user.ID,
		BusinessType: businessType,
		Verified:     verified,
		BusinessName: "Biz " + uuid.NewString()[:8],
	}
	require.NoError(t, e.db.Create(&profile).Error)
	return profile, token
}

func (e *testEnv) createIsland(t *testing.T) models.Island {
	t.Helper()
	island := models.Island{Name: "Island " + uuid.NewString()[:8]}
	require.NoError(t, e.db.Create(&island).Error)
	return island
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}

func hotelBody(islandID uint) map[string]interface{} {
	return map[string]interface{}{
		"name":           "Reef View Resort",
		"price":          180,
		"island_id":      islandID,
		"star_rating":    4,
		"check_in_time":  "14:00",
		"check_out_time": "11:00",
		"street_address": "Beach Road 1",
		"total_rooms":    24,
		"facilities":     []string{"pool", "gym"},
		"meal_plans":     []string{"breakfast"},
	}
}

func (e *testEnv) createHotel(t *testing.T, token string, islandID uint) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/vendor/hotels", token, hotelBody(islandID))
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var created struct {
		ServiceID uint `json:"service_id"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ServiceID)
	return created.ServiceID
}
