package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/triplink-app/triplink-backend/handlers"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/routes"
	"github.com/triplink-app/triplink-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("TripLink API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Initialize the in-memory store with demo data
	store := repository.InitStore()

	scheduler := services.NewScheduler()
	defer scheduler.Stop()

	hs := handlers.NewHandlerServices(store, scheduler, services.SystemClock())

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, hs)

	// Start the minute-by-minute event reminder scan
	hs.ReminderService.Start(scheduler)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
