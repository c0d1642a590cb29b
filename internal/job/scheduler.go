package job

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/dtroode/atlas-server/internal/logger"
)

// Scheduler runs jobs on cron specs.
type Scheduler struct {
	cron   *cron.Cron
	logger *logger.Logger
}

func NewScheduler(logger *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger))),
		logger: logger,
	}
}

// Add registers job under spec, e.g. "@hourly" or "*/5 * * * *".
func (s *Scheduler) Add(spec string, job cron.Job) error {
	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("failed to schedule job %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.logger.Info("starting job scheduler", "jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("job scheduler stop timed out")
	}
}
