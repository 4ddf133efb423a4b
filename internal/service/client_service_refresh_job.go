package service

import (
	"context"
	"sync"
	"time"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
)

// DefaultRefreshInterval is used when Start is given a non-positive
// interval.
const DefaultRefreshInterval = time.Minute

// Refresher is the slice of a collection store the refresh job needs.
type Refresher interface {
	FetchAll(ctx context.Context) error
}

// refreshJob periodically re-fetches a fixed set of collection stores.
// Each tick refreshes the stores sequentially; a failed fetch is logged
// and the remaining stores still refresh, since every store keeps its
// previous state on failure.
type refreshJob struct {
	targets []Refresher
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob builds the background refresh job over the given
// stores. The job is idle until Start.
func NewRefreshJob(log *logger.Logger, targets ...Refresher) RefreshJob {
	return &refreshJob{
		targets: targets,
		logger:  log,
	}
}

// Start implements [RefreshJob].
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	ctx, cancel := context.WithCancel(ctx)

	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run(ctx, interval)
}

func (j *refreshJob) run(ctx context.Context, interval time.Duration) {
	defer j.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", interval).Msg("background refresh started")

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("background refresh stopped")
			return
		case <-ticker.C:
			for _, target := range j.targets {
				if err := target.FetchAll(ctx); err != nil {
					j.logger.Warn().Err(err).Msg("background refresh tick failed")
				}
			}
		}
	}
}

// Stop implements [RefreshJob].
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	j.wg.Wait()
}
