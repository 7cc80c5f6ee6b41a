package pipeline

import (
	"context"
	"fmt"
	"skinmapping/fetcher/repositories"
	"skinmapping/fetcher/requests"
	"skinmapping/fetcher/runner"
	"skinmapping/fetcher/services/skins"
	"skinmapping/pkg/bucket"
	"skinmapping/pkg/config"
	"skinmapping/pkg/database"
	"skinmapping/pkg/logger"
	"skinmapping/pkg/metrics"
	"skinmapping/pkg/redis"
	"skinmapping/pkg/reporter"
	"time"
)

// Pipeline wires the fetcher, the skin service and the configured sinks for one run.
// A sink that can't be reached is logged and left out, the files are still written.
type Pipeline struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.RunMetrics
	service *skins.SkinService
	bucket  *bucket.Client
	closers []func() error
}

// New creates the pipeline, connecting to every enabled sink.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) *Pipeline {
	p := &Pipeline{
		cfg:     cfg,
		log:     log,
		metrics: metrics.NewRunMetrics(),
	}

	client := requests.NewClient(&requests.ClientDeps{
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
		Logger:    log,
		Metrics:   p.metrics,
	})

	p.service = skins.NewSkinService(&skins.SkinServiceDeps{
		Fetcher:    client,
		BaseURL:    cfg.Fetch.BaseURL,
		OutputDir:  cfg.Output.Dir,
		Logger:     log,
		Metrics:    p.metrics,
		Publishers: p.openSinks(ctx),
	})

	return p
}

// Metrics of the run.
func (p *Pipeline) Metrics() *metrics.RunMetrics {
	return p.metrics
}

// Build fetches every configured locale and writes its mapping.
func (p *Pipeline) Build(ctx context.Context) *runner.Summary {
	return p.run(ctx, p.service)
}

// Republish sends the mapping files of a previous build to the sinks.
func (p *Pipeline) Republish(ctx context.Context) *runner.Summary {
	return p.run(ctx, skins.NewRepublisher(p.service))
}

func (p *Pipeline) run(ctx context.Context, builder runner.LocaleBuilder) *runner.Summary {
	r := runner.NewRunner(&runner.RunnerDeps{
		Builder:   builder,
		Locales:   p.cfg.Output.Locales,
		OutputDir: p.cfg.Output.Dir,
		Logger:    p.log,
		Metrics:   p.metrics,
	})
	return r.Run(ctx)
}

// Close exports the metrics, uploads the run log and closes the sinks.
func (p *Pipeline) Close(ctx context.Context) {
	if path := p.cfg.Monitoring.MetricsFile; path != "" {
		if err := p.metrics.WriteTextfile(path); err != nil {
			p.log.Errorf("Couldn't write the metrics: %v", err)
		}
	}

	if p.bucket != nil && p.cfg.Bucket.LogBucket != "" {
		objectKey := fmt.Sprintf("runs/%s.log", time.Now().UTC().Format("20060102T150405Z"))
		if err := p.log.UploadToS3Bucket(ctx, p.bucket, p.cfg.Bucket.LogBucket, objectKey); err != nil {
			p.log.Errorf("Couldn't upload the run log: %v", err)
		}
	}

	for _, closeSink := range p.closers {
		if err := closeSink(); err != nil {
			p.log.Warnf("Closing sink: %v", err)
		}
	}
	p.closers = nil
}

func (p *Pipeline) openSinks(ctx context.Context) []skins.Publisher {
	var publishers []skins.Publisher

	if p.cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, p.cfg.Redis)
		if err != nil {
			p.sinkUnavailable("redis", err)
		} else {
			publishers = append(publishers, repositories.NewSkinCacheRepository(client))
			p.closers = append(p.closers, client.Close)
		}
	}

	if p.cfg.Database.Enabled() {
		db, err := database.NewConnection(p.cfg.Database)
		if err == nil {
			if err = database.RunMigrations(db); err != nil {
				database.Close(db)
			}
		}

		if err != nil {
			p.sinkUnavailable("postgres", err)
		} else {
			publishers = append(publishers, repositories.NewSkinRepository(db))
			p.closers = append(p.closers, func() error { return database.Close(db) })
		}
	}

	if p.cfg.Bucket.Enabled() {
		p.bucket = bucket.NewClient(p.cfg.Bucket)
		if p.cfg.Bucket.SkinBucket != "" {
			publishers = append(publishers, repositories.NewBucketRepository(p.bucket, p.cfg.Bucket.SkinBucket, skins.OutputFileName))
		}
	}

	return publishers
}

func (p *Pipeline) sinkUnavailable(sink string, err error) {
	p.log.Errorf("The %s sink is disabled for this run: %v", sink, err)
	reporter.CaptureError(err, map[string]string{"sink": sink})
}
