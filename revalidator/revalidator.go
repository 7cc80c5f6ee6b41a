package main

import (
	"context"
	"log"
	"os"
	"skinmapping/fetcher/pipeline"
	"skinmapping/pkg/config"
	"skinmapping/pkg/logger"
	"skinmapping/pkg/reporter"

	"github.com/joho/godotenv"
)

// Load the env and push the mapping files already on disk to Redis, Postgres and the bucket.
// Used to refill a flushed cache without hitting CommunityDragon again.
func main() {
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using the environment only")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	runLog, err := logger.CreateLogger(cfg.Monitoring.LogLevel)
	if err != nil {
		log.Fatalf("Couldn't create the run logger: %v", err)
	}
	defer runLog.Close()

	if _, err := reporter.Init(cfg.Monitoring.SentryDSN, cfg.Monitoring.Environment, "revalidator"); err != nil {
		runLog.Warnf("Error reporting is disabled: %v", err)
	}
	defer reporter.Flush()

	ctx := context.Background()
	p := pipeline.New(ctx, cfg, runLog)
	p.Republish(ctx)
	p.Close(ctx)
}
