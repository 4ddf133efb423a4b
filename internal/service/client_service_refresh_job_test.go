package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
)

type countingRefresher struct {
	calls atomic.Int64
	err   error
}

func (r *countingRefresher) FetchAll(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func waitForCalls(t *testing.T, r *countingRefresher, want int64) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if r.calls.Load() >= want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("refresher reached %d calls, want at least %d", r.calls.Load(), want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRefreshJob_TicksAllTargets(t *testing.T) {
	first := &countingRefresher{}
	second := &countingRefresher{}
	job := NewRefreshJob(logger.Nop(), first, second)

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	waitForCalls(t, first, 2)
	waitForCalls(t, second, 2)
}

func TestRefreshJob_FailedTargetDoesNotStopOthers(t *testing.T) {
	failing := &countingRefresher{err: context.DeadlineExceeded}
	healthy := &countingRefresher{}
	job := NewRefreshJob(logger.Nop(), failing, healthy)

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	waitForCalls(t, failing, 2)
	waitForCalls(t, healthy, 2)
}

func TestRefreshJob_StopHaltsTicking(t *testing.T) {
	target := &countingRefresher{}
	job := NewRefreshJob(logger.Nop(), target)

	job.Start(context.Background(), 10*time.Millisecond)
	waitForCalls(t, target, 1)
	job.Stop()

	settled := target.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, target.calls.Load(), "no ticks after Stop")
}

func TestRefreshJob_RestartReplacesPreviousRun(t *testing.T) {
	target := &countingRefresher{}
	job := NewRefreshJob(logger.Nop(), target)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	waitForCalls(t, target, 1)
}

func TestRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewRefreshJob(logger.Nop(), &countingRefresher{})
	require.NotPanics(t, job.Stop)
}
