package main

import (
	"log"
	"os"
	"os/signal"
	"skinmapping/pkg/config"
	"skinmapping/pkg/reporter"
	"skinmapping/scheduler/jobs"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

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

	if _, err := reporter.Init(cfg.Monitoring.SentryDSN, cfg.Monitoring.Environment, "scheduler"); err != nil {
		log.Printf("Error reporting is disabled: %v", err)
	}
	defer reporter.Flush()

	log.Println("Starting scheduler.")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Rebuild every mapping once per day, a slow run is never started twice.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(cfg.Scheduler.RunHour, 0, 0),
			),
		),
		gocron.NewTask(
			jobs.BuildSkinMappings,
			cfg,
		),
		gocron.WithName("skin-mapping-build"),
		gocron.WithTags("skins"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithEventListeners(
			gocron.AfterJobRunsWithError(func(jobID uuid.UUID, jobName string, err error) {
				log.Printf("Job %s finished with errors: %v", jobName, err)
			}),
		),
	)
	if err != nil {
		log.Fatalf("Failed to create the skin mapping job: %v", err)
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		err := s.Shutdown()
		if err != nil {
			log.Printf("Error shutting down scheduler: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal.
	<-sigChan
	log.Println("Shutting down scheduler...")
}
