package services

import (
	"fmt"
	"testing"

	"marketplace-backend/config"
	"marketplace-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))
	return db
}

func seedVendor(t *testing.T, db *gorm.DB, businessType string, verified int) models.VendorProfile {
	t.Helper()
	user := models.User{
		FullName: "Vendor " + uuid.NewString()[:8],
		Email:    uuid.NewString() + "@vendors.test",
		Password: "x",
		RoleID:   models.RoleVendor,
	}
	require.NoError(t, db.Create(&user).Error)

	profile := models.VendorProfile{
		UserID:       user.ID,
		BusinessType: businessType,
		Verified:     verified,
		BusinessName: "Test Business",
	}
	require.NoError(t, db.Create(&profile).Error)
	return profile
}

func seedIsland(t *testing.T, db *gorm.DB) models.Island {
	t.Helper()
	island := models.Island{Name: "Island " + uuid.NewString()[:8]}
	require.NoError(t, db.Create(&island).Error)
	return island
}
