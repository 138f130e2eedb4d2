package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"marketplace-backend/controllers"
	"marketplace-backend/middleware"
	"marketplace-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	auth *controllers.AuthController,
	vendors *controllers.VendorController,
	hotels *controllers.HotelController,
	listings *controllers.ServiceController,
	roomTypes *controllers.RoomTypeController,
	public *controllers.PublicController,
	admin *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", auth.Signup)
			authRoutes.POST("/login", auth.Login)
		}

		// Public browse surface.
		api.GET("/islands", public.Islands)
		api.GET("/services", public.BrowseServices)
		api.GET("/hotels/:serviceId", public.HotelDetail)

		vendorAccount := api.Group("/vendors", middleware.AuthRequired(), middleware.RoleRequired(models.RoleVendor))
		{
			vendorAccount.POST("/register", vendors.Register)
			vendorAccount.GET("/profile", vendors.Profile)
		}

		vendor := api.Group("/vendor", middleware.AuthRequired(), middleware.RoleRequired(models.RoleVendor))
		{
			vendorHotels := vendor.Group("/hotels")
			{
				vendorHotels.POST("", hotels.Create)
				vendorHotels.GET("", hotels.ListMine)
				vendorHotels.GET("/:serviceId", hotels.Get)
				vendorHotels.PUT("/:serviceId", hotels.Update)
				vendorHotels.DELETE("/:serviceId", hotels.Delete)

				vendorHotels.POST("/:serviceId/room-types", roomTypes.Create)
				vendorHotels.GET("/:serviceId/room-types", roomTypes.List)
			}

			myServices := vendor.Group("/my-services")
			{
				myServices.POST("", listings.Create)
				myServices.GET("", listings.ListMine)
				myServices.GET("/:serviceId", listings.Get)
				myServices.PUT("/:serviceId", listings.Update)
				myServices.DELETE("/:serviceId", listings.Delete)
			}

			vendor.PUT("/room-types/:id", roomTypes.Update)
			vendor.DELETE("/room-types/:id", roomTypes.Delete)

			vendor.POST("/uploads", vendors.Upload)
		}

		adminRoutes := api.Group("/admin", middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
		{
			adminRoutes.GET("/vendors", admin.ListVendors)
			adminRoutes.PATCH("/vendors/:id/verify", admin.VerifyVendor)
		}
	}

	return r
}
