package job

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/atlas-server/internal/testutil"
)

type fakeCleaner struct {
	calls atomic.Int32
	n     int64
	err   error
}

func (f *fakeCleaner) CleanupExpired(ctx context.Context) (int64, error) {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, context.Canceled
	}
	return f.n, f.err
}

func TestRefreshTokenCleanupJob_Run(t *testing.T) {
	tests := []struct {
		name    string
		cleaner *fakeCleaner
	}{
		{name: "removes tokens", cleaner: &fakeCleaner{n: 2}},
		{name: "nothing to remove", cleaner: &fakeCleaner{}},
		{name: "store error is swallowed", cleaner: &fakeCleaner{err: assert.AnError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			j := NewRefreshTokenCleanupJob(tt.cleaner, testutil.MakeNoopLogger())
			j.Run()

			assert.Equal(t, int32(1), tt.cleaner.calls.Load())
		})
	}
}

func TestScheduler_Add(t *testing.T) {
	s := NewScheduler(testutil.MakeNoopLogger())

	require.NoError(t, s.Add("@hourly", NewRefreshTokenCleanupJob(&fakeCleaner{}, testutil.MakeNoopLogger())))
	require.Error(t, s.Add("not a schedule", NewRefreshTokenCleanupJob(&fakeCleaner{}, testutil.MakeNoopLogger())))
}

func TestScheduler_RunsJobs(t *testing.T) {
	cleaner := &fakeCleaner{}
	s := NewScheduler(testutil.MakeNoopLogger())
	require.NoError(t, s.Add("@every 1s", NewRefreshTokenCleanupJob(cleaner, testutil.MakeNoopLogger())))

	s.Start()
	assert.Eventually(t, func() bool { return cleaner.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
