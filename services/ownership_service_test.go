package services

import (
	"testing"

	"marketplace-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedService(t *testing.T, db *gorm.DB, providerID uint, serviceType string) models.Service {
	t.Helper()
	island := seedIsland(t, db)
	svc := models.Service{
		ProviderID: providerID,
		Type:       serviceType,
		Name:       "Listing",
		Price:      100,
		IslandID:   island.ID,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&svc).Error)
	return svc
}

func TestResolveHotelNoProfile(t *testing.T) {
	db := openTestDB(t)
	res, err := NewOwnershipService(db).ResolveHotel(9999, 1)
	require.NoError(t, err)
	assert.False(t, res.Owner)
	assert.False(t, res.Verified)
	assert.False(t, res.CorrectType)
}

func TestResolveHotelOwnerVerified(t *testing.T) {
	db := openTestDB(t)
	profile := seedVendor(t, db, models.BusinessTypeHotel, 1)
	svc := seedService(t, db, profile.ID, models.BusinessTypeHotel)

	res, err := NewOwnershipService(db).ResolveHotel(profile.UserID, svc.ID)
	require.NoError(t, err)
	assert.True(t, res.Owner)
	assert.True(t, res.Verified)
	assert.True(t, res.CorrectType)
	require.NotNil(t, res.Service)
	assert.Equal(t, svc.ID, res.Service.ID)
}

func TestResolveHotelUnverifiedOwner(t *testing.T) {
	db := openTestDB(t)
	profile := seedVendor(t, db, models.BusinessTypeHotel, 0)
	svc := seedService(t, db, profile.ID, models.BusinessTypeHotel)

	res, err := NewOwnershipService(db).ResolveHotel(profile.UserID, svc.ID)
	require.NoError(t, err)
	assert.True(t, res.Owner)
	assert.False(t, res.Verified)
	assert.True(t, res.CorrectType)
}

func TestResolveHotelForeignRow(t *testing.T) {
	db := openTestDB(t)
	owner := seedVendor(t, db, models.BusinessTypeHotel, 1)
	svc := seedService(t, db, owner.ID, models.BusinessTypeHotel)
	intruder := seedVendor(t, db, models.BusinessTypeHotel, 1)

	res, err := NewOwnershipService(db).ResolveHotel(intruder.UserID, svc.ID)
	require.NoError(t, err)
	assert.False(t, res.Owner)
	assert.True(t, res.Verified)
	assert.True(t, res.CorrectType)
}

func TestResolveHotelMissingRow(t *testing.T) {
	db := openTestDB(t)
	profile := seedVendor(t, db, models.BusinessTypeHotel, 1)

	res, err := NewOwnershipService(db).ResolveHotel(profile.UserID, 424242)
	require.NoError(t, err)
	assert.False(t, res.Owner)
	assert.True(t, res.Verified)
	assert.True(t, res.CorrectType)
}

func TestResolveHotelWrongVendorType(t *testing.T) {
	db := openTestDB(t)
	rental := seedVendor(t, db, models.BusinessTypeRental, 1)
	svc := seedService(t, db, rental.ID, "rental/car")

	// A rental vendor's own row does not exist as far as hotel endpoints
	// are concerned.
	res, err := NewOwnershipService(db).ResolveHotel(rental.UserID, svc.ID)
	require.NoError(t, err)
	assert.False(t, res.Owner)
	assert.False(t, res.CorrectType)
}

func TestResolveListingHidesHotelRows(t *testing.T) {
	db := openTestDB(t)
	profile := seedVendor(t, db, models.BusinessTypeHotel, 1)
	svc := seedService(t, db, profile.ID, models.BusinessTypeHotel)

	res, err := NewOwnershipService(db).ResolveListing(profile.UserID, svc.ID)
	require.NoError(t, err)
	assert.False(t, res.Owner)
	assert.False(t, res.CorrectType)
}

func TestResolveListingOwner(t *testing.T) {
	db := openTestDB(t)
	profile := seedVendor(t, db, models.BusinessTypeActivity, 1)
	svc := seedService(t, db, profile.ID, "activity/trek")

	res, err := NewOwnershipService(db).ResolveListing(profile.UserID, svc.ID)
	require.NoError(t, err)
	assert.True(t, res.Owner)
	assert.True(t, res.Verified)
	assert.True(t, res.CorrectType)
}
