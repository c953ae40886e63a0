package main

import (
	"log"
	"net/http"

	"journey_compass/internal/config"
	"journey_compass/internal/logger"
	"journey_compass/internal/middleware"
	"journey_compass/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and migrate
	config.InitDB()
	if err := config.SeedCategories(config.DB); err != nil {
		log.Fatalf("seeding categories failed: %v", err)
	}

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
