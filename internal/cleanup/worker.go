// internal/cleanup/worker.go
//
// Background sweeper for idle game sessions.
//   - Runs once at start, then every Interval.
//   - Closes and deletes sessions idle longer than IdleTTL.

package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/akj2003/GamingHub/internal/store"
)

// Worker periodically prunes idle sessions from Store.
type Worker struct {
	Store    store.Store
	Interval time.Duration
	IdleTTL  time.Duration

	now func() time.Time
}

// NewWorker returns a Worker using the wall clock.
func NewWorker(st store.Store, interval, idleTTL time.Duration) *Worker {
	return &Worker{Store: st, Interval: interval, IdleTTL: idleTTL, now: time.Now}
}

// Start runs one sweep immediately, then every Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		w.runCleanup(ctx)

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("cleanup worker stopped")
				return
			case <-ticker.C:
				w.runCleanup(ctx)
			}
		}
	}()
	log.Info().Dur("interval", w.Interval).Dur("idle_ttl", w.IdleTTL).Msg("cleanup worker started")
}

// runCleanup closes and removes sessions idle longer than IdleTTL.
func (w *Worker) runCleanup(ctx context.Context) int {
	n, err := w.Store.Prune(ctx, w.now().Add(-w.IdleTTL))
	if err != nil {
		log.Error().Err(err).Msg("cleanup: prune failed")
		return 0
	}
	if n > 0 {
		log.Info().Int("removed", n).Int("remaining", w.Store.Len()).Msg("cleanup: pruned idle sessions")
	}
	return n
}
