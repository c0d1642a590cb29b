// Package job holds background jobs run by the cron scheduler.
package job

import (
	"context"
	"time"

	"github.com/dtroode/atlas-server/internal/logger"
)

type tokenCleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// RefreshTokenCleanupJob purges expired refresh tokens.
type RefreshTokenCleanupJob struct {
	tokens  tokenCleaner
	timeout time.Duration
	logger  *logger.Logger
}

func NewRefreshTokenCleanupJob(tokens tokenCleaner, logger *logger.Logger) *RefreshTokenCleanupJob {
	return &RefreshTokenCleanupJob{tokens: tokens, timeout: time.Minute, logger: logger}
}

// Run implements cron.Job.
func (j *RefreshTokenCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.tokens.CleanupExpired(ctx)
	if err != nil {
		j.logger.Warn("refresh token cleanup job failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.Info("refresh token cleanup job removed tokens", "count", n)
	}
}
