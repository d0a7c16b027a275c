package workers

import (
	"context"
	"log/slog"
	"time"
)

// Prober prunes connections that missed their liveness deadline and
// returns how many were removed.
type Prober interface {
	Probe(now time.Time) int
}

// LivenessWorker runs the periodic liveness probe. It is independent of
// presence and session logic: pruned connections go through the normal
// disconnect path of the prober.
type LivenessWorker struct {
	log      *slog.Logger
	prober   Prober
	interval time.Duration
}

func NewLivenessWorker(log *slog.Logger, prober Prober, interval time.Duration) *LivenessWorker {
	return &LivenessWorker{log: log, prober: prober, interval: interval}
}

func (w *LivenessWorker) Run(ctx context.Context) error {
	w.log.Info("Starting liveness worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if pruned := w.prober.Probe(now); pruned > 0 {
				w.log.Info("Pruned unresponsive connections", "count", pruned)
			}
		}
	}
}
