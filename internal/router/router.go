// internal/router/router.go
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/config"
	"github.com/aryals/dealer-backend/internal/handlers"
	"github.com/aryals/dealer-backend/internal/middleware"
	"github.com/aryals/dealer-backend/internal/services"
	"github.com/aryals/dealer-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage service: %w", err)
	}

	authService := services.NewAuthService(db, cfg)
	vehicleService := services.NewVehicleService(db)
	brandService := services.NewBrandService(db)
	bannerService := services.NewBannerService(db)
	contactService := services.NewContactService(db)
	testDriveService := services.NewTestDriveService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	brandHandler := handlers.NewBrandHandler(brandService)
	bannerHandler := handlers.NewBannerHandler(bannerService)
	contactHandler := handlers.NewContactHandler(contactService)
	testDriveHandler := handlers.NewTestDriveHandler(testDriveService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Public catalog routes
		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.GetVehicles)
			vehicles.GET("/filters", vehicleHandler.GetFilterOptions)
			vehicles.GET("/stats", vehicleHandler.GetStats)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)
		}

		brands := api.Group("/brands")
		{
			brands.GET("", brandHandler.GetBrands)
			brands.GET("/:id", brandHandler.GetBrand)
		}

		banners := api.Group("/banner-images")
		{
			banners.GET("", bannerHandler.GetBanners)
		}

		// Public lead capture
		api.POST("/contact", contactHandler.CreateMessage)
		api.POST("/test-drive", testDriveHandler.SubmitTestDrive)

		// Admin routes
		admin := api.Group("/admin")
		{
			admin.POST("/login", middleware.LoginRateLimit(), authHandler.Login)

			protected := admin.Group("")
			protected.Use(middleware.AdminRequired())
			{
				protected.GET("/me", authHandler.Me)
				protected.POST("/upload", middleware.UploadRateLimit(), uploadHandler.UploadImage)

				// Vehicle management
				adminVehicles := protected.Group("/vehicles")
				{
					adminVehicles.POST("", vehicleHandler.CreateVehicle)
					adminVehicles.POST("/bulk", vehicleHandler.BulkCreateVehicles)
					adminVehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
					adminVehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
				}

				// Vehicle image management
				adminImages := protected.Group("/vehicle-images")
				{
					adminImages.GET("/:vehicleId", vehicleHandler.GetVehicleImages)
					adminImages.POST("/:vehicleId", vehicleHandler.AddVehicleImages)
					adminImages.DELETE("/:id", vehicleHandler.DeleteVehicleImage)
				}

				// Brand management
				adminBrands := protected.Group("/brands")
				{
					adminBrands.POST("", brandHandler.CreateBrand)
					adminBrands.PUT("/:id", brandHandler.UpdateBrand)
					adminBrands.DELETE("/:id", brandHandler.DeleteBrand)
				}

				// Banner management
				adminBanners := protected.Group("/banner-images")
				{
					adminBanners.POST("", bannerHandler.CreateBanner)
					adminBanners.PUT("/reorder", bannerHandler.ReorderBanners)
					adminBanners.PUT("/:id", bannerHandler.UpdateBanner)
					adminBanners.DELETE("/:id", bannerHandler.DeleteBanner)
				}

				// Contact message management
				adminContact := protected.Group("/contact")
				{
					adminContact.GET("", contactHandler.GetMessages)
					adminContact.GET("/:id", contactHandler.GetMessage)
					adminContact.PUT("/:id", contactHandler.UpdateMessageStatus)
					adminContact.DELETE("/:id", contactHandler.DeleteMessage)
				}

				// Test drive management
				adminTestDrives := protected.Group("/test-drives")
				{
					adminTestDrives.GET("", testDriveHandler.GetTestDrives)
					adminTestDrives.GET("/stats", testDriveHandler.GetTestDriveStats)
					adminTestDrives.GET("/:id", testDriveHandler.GetTestDrive)
					adminTestDrives.PUT("/:id", testDriveHandler.UpdateTestDriveStatus)
					adminTestDrives.DELETE("/:id", testDriveHandler.DeleteTestDrive)
				}
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", cfg.Upload.LocalDir)
	}

	return r, nil
}
