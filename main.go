package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"marketplace-backend/config"
	"marketplace-backend/controllers"
	"marketplace-backend/routes"
	"marketplace-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set. Cannot issue or verify tokens.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("Database connection established and migrations applied.")

	// Services
	ownershipService := services.NewOwnershipService(db)
	listingService := services.NewListingService(db)
	hotelService := services.NewHotelService(db)
	roomTypeService := services.NewRoomTypeService(db)
	imageService := services.NewImageService()

	// Controllers
	authController := controllers.NewAuthController(db)
	vendorController := controllers.NewVendorController(db, ownershipService, imageService)
	hotelController := controllers.NewHotelController(ownershipService, hotelService, imageService)
	serviceController := controllers.NewServiceController(ownershipService, listingService, imageService)
	roomTypeController := controllers.NewRoomTypeController(ownershipService, roomTypeService)
	publicController := controllers.NewPublicController(db, roomTypeService)
	adminController := controllers.NewAdminController(db)

	router := routes.SetupRouter(
		authController,
		vendorController,
		hotelController,
		serviceController,
		roomTypeController,
		publicController,
		adminController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
