package jobs

import (
	"context"
	"fmt"
	"skinmapping/fetcher/pipeline"
	"skinmapping/pkg/config"
	"skinmapping/pkg/logger"
	"strings"
)

// BuildSkinMappings runs a full build with its own run log.
// Returns an error listing the failed languages, if any.
func BuildSkinMappings(cfg *config.Config) error {
	runLog, err := logger.CreateLogger(cfg.Monitoring.LogLevel)
	if err != nil {
		return fmt.Errorf("couldn't create the run logger: %w", err)
	}
	defer runLog.Close()

	ctx := context.Background()
	p := pipeline.New(ctx, cfg, runLog)
	defer p.Close(ctx)

	summary := p.Build(ctx)
	if len(summary.Failed) > 0 {
		return fmt.Errorf("%d languages failed: %s", len(summary.Failed), strings.Join(summary.Failed, ", "))
	}
	return nil
}
