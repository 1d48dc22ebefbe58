package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go.ngs.io/geocorr/internal/adapter/store"
	"go.ngs.io/geocorr/internal/usecase"
)

// SetupRouter creates and configures the Gin router. The station catalog may
// be nil, in which case the station listing is not registered.
func SetupRouter(mappingUC *usecase.MappingUseCase, zonalUC *usecase.ZonalTideUseCase, stations store.StationCatalog) *gin.Engine {
	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))

	// Create handler.
	handler := NewHandler(mappingUC, zonalUC, stations)

	// API v1 routes.
	v1 := router.Group("/v1")

	// Tropospheric mapping.
	v1.GET("/troposphere/mapping", handler.GetMapping)

	// Earth rotation.
	rotation := v1.Group("/earth-rotation")
	rotation.GET("/zonal-tides", handler.GetZonalTides)
	rotation.GET("/zonal-tides/terms", handler.GetZonalTideTerms)

	// Stations.
	if stations != nil {
		v1.GET("/stations", handler.GetStations)
	}

	// Health check.
	router.GET("/health", handler.HealthCheck)

	return router
}
