package main

import (
	"context"
	"log"
	"os"
	"skinmapping/api/modules"
	"skinmapping/api/routes"
	"skinmapping/pkg/config"
	"skinmapping/pkg/database"
	"skinmapping/pkg/redis"

	"github.com/joho/godotenv"
)

// Serve the published mappings. Redis and Postgres are both optional,
// a backend that can't be reached is skipped.
func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using the environment only")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	deps := &modules.ModuleDependencies{}

	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(context.Background(), cfg.Redis)
		if err != nil {
			log.Printf("Running without Redis: %v", err)
		} else {
			defer client.Close()
			deps.Redis = client
		}
	}

	if cfg.Database.Enabled() {
		db, err := database.NewConnection(cfg.Database)
		if err != nil {
			log.Printf("Running without Postgres: %v", err)
		} else {
			defer database.Close(db)
			deps.DB = db
		}
	}

	if deps.Redis == nil && deps.DB == nil {
		log.Println("No backend available, every mapping request will be a 404")
	}

	// Create a module with all necessary handlers.
	module := modules.NewModule(deps)
	defer module.Close()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.SkinHandler,
	)

	// Start the server.
	if err := router.Run(cfg.Api.Addr); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
