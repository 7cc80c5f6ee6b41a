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

// Build the mapping of every configured language once and exit.
// Failed languages are reported in the summary, they never change the exit status.
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

	if _, err := reporter.Init(cfg.Monitoring.SentryDSN, cfg.Monitoring.Environment, "fetcher"); err != nil {
		runLog.Warnf("Error reporting is disabled: %v", err)
	}
	defer reporter.Flush()

	ctx := context.Background()
	p := pipeline.New(ctx, cfg, runLog)
	p.Build(ctx)
	p.Close(ctx)
}
