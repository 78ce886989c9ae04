package job_cleanup

import (
	"context"
	"time"

	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/jobstore"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

type JobCleanup struct {
	log      logger.Logger
	registry jobstore.Registry
	interval time.Duration
}

func NewJobCleanup(log logger.Logger, registry jobstore.Registry, interval time.Duration) *JobCleanup {
	return &JobCleanup{
		log:      log,
		registry: registry,
		interval: interval,
	}
}

func (j *JobCleanup) TTL() time.Duration {
	return j.interval
}

func (j *JobCleanup) Do(ctx context.Context) error {
	evicted := j.registry.EvictExpired()

	if evicted > 0 {
		j.log.With(
			logger.NewField("evicted_jobs", evicted),
		).Info("job cleanup")
	}

	return nil
}

func (j *JobCleanup) Info() string {
	return "job cleanup"
}
