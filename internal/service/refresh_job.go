package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-eightball/internal/logger"
)

const defaultRefreshInterval = time.Minute

// RefreshJob periodically reloads schedules into the state store. It
// satisfies the workers.Worker contract.
type RefreshJob struct {
	contexts ContextService
	interval time.Duration

	logger *logger.Logger
}

// NewRefreshJob creates a job calling contexts.Refresh every interval. A
// zero or negative interval defaults to one minute.
func NewRefreshJob(contexts ContextService, interval time.Duration, log *logger.Logger) *RefreshJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &RefreshJob{contexts: contexts, interval: interval, logger: log}
}

// Run blocks, refreshing on every tick, until ctx is cancelled. Refresh
// failures are logged and the job keeps going.
func (j *RefreshJob) Run(ctx context.Context) error {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := j.contexts.Refresh(ctx); err != nil && ctx.Err() == nil {
				j.logger.Warn().Err(err).
					Str("func", "RefreshJob.Run").
					Msg("schedule refresh failed")
			}
		}
	}
}

// Interval returns the effective refresh period.
func (j *RefreshJob) Interval() time.Duration {
	return j.interval
}
