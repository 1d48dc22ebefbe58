// Package main provides the geodetic corrections HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.ngs.io/geocorr/internal/adapter/store"
	"go.ngs.io/geocorr/internal/adapter/store/climatology"
	"go.ngs.io/geocorr/internal/adapter/store/csv"
	httpHandler "go.ngs.io/geocorr/internal/http"
	"go.ngs.io/geocorr/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("geocorr version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	stationsPath := getEnv("STATIONS_CSV", "")
	climatologyPath := getEnv("CLIMATOLOGY_NC", "")
	climatologyVar := getEnv("CLIMATOLOGY_VAR", climatology.DefaultVarName)

	log.Printf("Starting geodetic corrections server...")
	log.Printf("Port: %s", port)

	// Initialize station catalog (optional).
	var stations store.StationCatalog
	if stationsPath != "" {
		log.Printf("Loading station catalog: %s", stationsPath)
		catalog, err := csv.LoadStationFile(stationsPath)
		if err != nil {
			log.Fatalf("Failed to load station catalog: %v", err)
		}
		log.Printf("Station catalog loaded (%d stations)", len(catalog.Stations()))
		stations = catalog
	} else {
		log.Printf("Station catalog disabled (STATIONS_CSV not set)")
	}

	// Initialize temperature climatology (optional).
	var temperatures store.TemperatureSource
	if climatologyPath != "" {
		log.Printf("Loading temperature climatology")
		log.Printf("  Path: %s", climatologyPath)
		log.Printf("  Variable: %s", climatologyVar)
		clim := climatology.NewStore(climatologyPath, climatologyVar)
		if err := clim.Load(); err != nil {
			log.Fatalf("Failed to load climatology: %v", err)
		}
		log.Printf("Temperature climatology loaded")
		temperatures = clim
	} else {
		log.Printf("Temperature climatology disabled (requests must supply temp or a station temperature)")
	}

	// Initialize use cases.
	mappingUC := usecase.NewMappingUseCase(stations, temperatures)
	zonalUC := usecase.NewZonalTideUseCase(nil)

	// Setup router.
	router := httpHandler.SetupRouter(mappingUC, zonalUC, stations)

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/troposphere/mapping")
	log.Printf("  - GET /v1/earth-rotation/zonal-tides")
	log.Printf("  - GET /v1/earth-rotation/zonal-tides/terms")
	if stations != nil {
		log.Printf("  - GET /v1/stations")
	}

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Geodetic Corrections Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  geocorr [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  STATIONS_CSV            Station catalog CSV (optional)")
	fmt.Println("  CLIMATOLOGY_NC          Surface temperature NetCDF grid (optional)")
	fmt.Println("  CLIMATOLOGY_VAR         Temperature variable name (default: t2m)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  geocorr")
	fmt.Println()
	fmt.Println("  # Start server with a station catalog and ERA5 climatology")
	fmt.Println("  STATIONS_CSV=./data/stations.csv CLIMATOLOGY_NC=./data/era5_t2m_mean.nc geocorr")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                              Health check")
	fmt.Println("  GET /v1/troposphere/mapping              FCUL_A mapping factor")
	fmt.Println("  GET /v1/earth-rotation/zonal-tides       Zonal tide UT1/LOD/omega corrections")
	fmt.Println("  GET /v1/earth-rotation/zonal-tides/terms Zonal tide term table")
	fmt.Println("  GET /v1/stations                         Station catalog (if configured)")
	fmt.Println()
}
