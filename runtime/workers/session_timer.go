package workers

import (
	"context"
	"sync"
	"time"
)

// SessionTimer is the cancellable tick handle of one running session.
// It fires onTick every interval until Stop is called or the parent
// context ends. Stop is safe to call any number of times.
type SessionTimer struct {
	interval time.Duration
	onTick   func()

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
	done    chan struct{}
}

func NewSessionTimer(interval time.Duration, onTick func()) *SessionTimer {
	return &SessionTimer{interval: interval, onTick: onTick, done: make(chan struct{})}
}

// Start launches the tick loop. A stopped timer cannot be restarted.
func (t *SessionTimer) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	go func() {
		_ = t.Run(runCtx)
	}()
}

func (t *SessionTimer) Run(ctx context.Context) error {
	defer close(t.done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// A Stop racing with a tick must win: the check keeps a
			// cancelled timer from calling back once more.
			if t.isStopped() {
				return nil
			}
			t.onTick()
		}
	}
}

// Stop cancels the timer. It returns true only for the call that actually
// cancelled it. Stop never waits for an in-flight tick, so it may be called
// while holding the lock that the tick callback acquires.
func (t *SessionTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	if t.cancel != nil {
		t.cancel()
	}
	return true
}

// Done is closed once the tick loop has exited.
func (t *SessionTimer) Done() <-chan struct{} {
	return t.done
}

func (t *SessionTimer) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}
