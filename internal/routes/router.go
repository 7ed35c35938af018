package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"opos-parking/internal/config"
	"opos-parking/internal/database"
	"opos-parking/internal/email"
	locationhandler "opos-parking/internal/location/handler"
	locationrepository "opos-parking/internal/location/repository"
	locationservice "opos-parking/internal/location/service"
	"opos-parking/internal/logger"
	"opos-parking/internal/middleware"
	userhandler "opos-parking/internal/user/handler"
	userrepository "opos-parking/internal/user/repository"
	userservice "opos-parking/internal/user/service"
	"opos-parking/pkg/utils"
)

func SetupRoutes(cfg *config.Config, db *database.Database, mailer email.Mailer, verifier userservice.TokenVerifier) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	router.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, fmt.Sprintf("endpoint %s does not exist", c.Request.URL.Path))
	})

	userRepository := userrepository.NewRepository(db)
	userService := userservice.NewService(userRepository, cfg, mailer, verifier)
	userHandler := userhandler.NewHandler(userService, cfg)

	locationRepository := locationrepository.NewLocationRepository(db)
	zoneRepository := locationrepository.NewZoneRepository(db)
	locationService := locationservice.NewService(locationRepository, zoneRepository)
	locationHandler := locationhandler.NewHandler(locationService, cfg)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)
		locationHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg, userRepository))
		{
			userHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterProfileRoutes(protected)

			vendor := protected.Group("")
			vendor.Use(middleware.VendorOrOdogwu())
			{
				locationHandler.RegisterVendorRoutes(vendor)
			}

			admin := protected.Group("")
			admin.Use(middleware.OdogwuOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
