package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"marketplace-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIslands(t *testing.T) {
	env := newTestEnv(t)
	island := env.createIsland(t)

	w := env.do(t, http.MethodGet, "/api/islands", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var islands []models.Island
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &islands))
	require.Len(t, islands, 1)
	assert.Equal(t, island.Name, islands[0].Name)
}

func TestBrowseServicesFilters(t *testing.T) {
	env := newTestEnv(t)
	_, rentalToken := env.createVendor(t, models.BusinessTypeRental, 1)
	_, activityToken := env.createVendor(t, models.BusinessTypeActivity, 1)
	islandA := env.createIsland(t)
	islandB := env.createIsland(t)

	carID := env.createListing(t, rentalToken, map[string]interface{}{
		"name": "Jeep rental", "type": "rental/car", "price": 70, "island_id": islandA.ID,
	})
	bikeID := env.createListing(t, rentalToken, map[string]interface{}{
		"name": "Scooter rental", "type": "rental/bike", "price": 20, "island_id": islandB.ID,
	})
	kayakID := env.createListing(t, activityToken, map[string]interface{}{
		"name": "Kayak tour", "type": "activity/kayak", "price": 45, "island_id": islandA.ID,
	})
	hiddenID := env.createListing(t, rentalToken, map[string]interface{}{
		"name": "Retired rental", "type": "rental/car", "price": 50, "island_id": islandA.ID,
	})
	require.NoError(t, env.db.Model(&models.Service{}).Where("id = ?", hiddenID).
		Update("is_active", false).Error)

	browse := func(query string) []uint {
		w := env.do(t, http.MethodGet, "/api/services"+query, "", nil)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		var listings []models.Service
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &listings))
		ids := make([]uint, len(listings))
		for i, l := range listings {
			ids[i] = l.ID
		}
		return ids
	}

	assert.ElementsMatch(t, []uint{carID, bikeID, kayakID}, browse(""))
	assert.ElementsMatch(t, []uint{carID, bikeID}, browse("?type=rental"))
	assert.ElementsMatch(t, []uint{carID}, browse("?type=rental/car"))
	assert.ElementsMatch(t, []uint{carID, kayakID}, browse(fmt.Sprintf("?island_id=%d", islandA.ID)))
	assert.ElementsMatch(t, []uint{kayakID}, browse(fmt.Sprintf("?type=activity&island_id=%d", islandA.ID)))

	w := env.do(t, http.MethodGet, "/api/services?island_id=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicHotelDetail(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createVendor(t, models.BusinessTypeHotel, 1)
	island := env.createIsland(t)
	serviceID := env.createHotel(t, token, island.ID)

	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/vendor/hotels/%d/room-types", serviceID), token,
		map[string]interface{}{
			"name": "Deluxe", "base_price": 200, "max_guests": 2, "quantity_available": 6,
		})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/hotels/%d", serviceID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Hotel     models.Hotel      `json:"hotel"`
		RoomTypes []models.RoomType `json:"room_types"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &detail))
	assert.Equal(t, serviceID, detail.Hotel.ServiceID)
	require.Len(t, detail.RoomTypes, 1)
	assert.Equal(t, "Deluxe", detail.RoomTypes[0].Name)

	// Deactivated hotels disappear from the public page.
	require.NoError(t, env.db.Model(&models.Service{}).Where("id = ?", serviceID).
		Update("is_active", false).Error)
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/hotels/%d", serviceID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/hotels/424242", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
