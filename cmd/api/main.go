package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/weatherly/weatherly-golang/internal/config"
	"github.com/weatherly/weatherly-golang/internal/database"
	"github.com/weatherly/weatherly-golang/internal/handlers"
	"github.com/weatherly/weatherly-golang/internal/routes"
	"github.com/weatherly/weatherly-golang/internal/weather"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()
	if cfg.Admin.Token == "" {
		log.Fatal("CRITICAL ERROR: ADMIN_TOKEN environment variable is not set.")
	}

	// 1. --- Database Connection ---
	db, err := database.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Schema Migration ---
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// --- Application Setup ---
	// We inject all dependencies (DB, config, weather client) into the Handlers struct.
	app := &handlers.Handlers{
		DB:      db,
		Config:  cfg,
		Weather: weather.NewClient(),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	log.Printf("Starting Weatherly API server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
