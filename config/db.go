package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"marketplace-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "marketplace_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase fills in reference data and a default admin account so a
// fresh database is usable immediately.
func SeedDatabase() {
	var islandCount int64
	DB.Model(&models.Island{}).Count(&islandCount)
	if islandCount == 0 {
		islands := []models.Island{
			{Name: "Port Blair"},
			{Name: "Havelock"},
			{Name: "Neil Island"},
			{Name: "Long Island"},
		}
		if err := DB.Create(&islands).Error; err != nil {
			log.Printf("warning: failed to seed islands: %v", err)
		} else {
			log.Println("Islands seeded")
		}
	}

	var adminCount int64
	DB.Model(&models.User{}).Where("role_id = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
			return
		}
		admin := models.User{
			FullName: "Platform Admin",
			Email:    envOrDefault("ADMIN_EMAIL", "admin@marketplace.local"),
			Password: string(hash),
			RoleID:   models.RoleAdmin,
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Printf("warning: failed to create default admin: %v", err)
		} else {
			log.Println("Default admin seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := MigrateModels(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// MigrateModels runs AutoMigrate in parent->child order. Split out so
// tests can migrate an alternative database.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Island{},
		&models.VendorProfile{},
		&models.Service{},
		&models.Hotel{},
		&models.RoomType{},
	)
}
