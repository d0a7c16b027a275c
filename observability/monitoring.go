package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// MonitoringStats aggregates coordinator and process metrics for /debug/stats.
type MonitoringStats struct {
	OpenConnections   int64  `json:"open_connections"`
	ConnectionsOpened uint64 `json:"connections_opened"`
	ConnectionsPruned uint64 `json:"connections_pruned"`
	HandshakesRefused uint64 `json:"handshakes_refused"`
	Broadcasts        uint64 `json:"broadcasts"`
	Deliveries        uint64 `json:"deliveries"`
	SessionsStarted   uint64 `json:"sessions_started"`
	OverrunWarnings   uint64 `json:"overrun_warnings"`

	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	Goroutines int     `json:"goroutines"`
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
	UpdatedAt  string  `json:"updated_at"`
}

// MonitoringManager counts coordinator activity. All methods are safe on a
// nil receiver so components can run without monitoring in tests.
type MonitoringManager struct {
	log         *slog.Logger
	interval    time.Duration
	mu          sync.RWMutex
	latestStats MonitoringStats

	openConnections   int64
	connectionsOpened uint64
	connectionsPruned uint64
	handshakesRefused uint64
	broadcasts        uint64
	deliveries        uint64
	sessionsStarted   uint64
	overrunWarnings   uint64
}

func NewMonitoringManager(log *slog.Logger, interval time.Duration) *MonitoringManager {
	return &MonitoringManager{log: log, interval: interval}
}

func (mm *MonitoringManager) ConnectionOpened() {
	if mm == nil {
		return
	}
	atomic.AddInt64(&mm.openConnections, 1)
	atomic.AddUint64(&mm.connectionsOpened, 1)
}

func (mm *MonitoringManager) ConnectionClosed(pruned bool) {
	if mm == nil {
		return
	}
	atomic.AddInt64(&mm.openConnections, -1)
	if pruned {
		atomic.AddUint64(&mm.connectionsPruned, 1)
	}
}

func (mm *MonitoringManager) HandshakeRefused() {
	if mm == nil {
		return
	}
	atomic.AddUint64(&mm.handshakesRefused, 1)
}

func (mm *MonitoringManager) Broadcast(deliveries int) {
	if mm == nil {
		return
	}
	atomic.AddUint64(&mm.broadcasts, 1)
	atomic.AddUint64(&mm.deliveries, uint64(deliveries))
}

func (mm *MonitoringManager) SessionStarted() {
	if mm == nil {
		return
	}
	atomic.AddUint64(&mm.sessionsStarted, 1)
}

func (mm *MonitoringManager) OverrunWarning() {
	if mm == nil {
		return
	}
	atomic.AddUint64(&mm.overrunWarnings, 1)
}

// Run refreshes the process part of the stats on every interval.
func (mm *MonitoringManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(mm.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		mm.log.Warn("Process metrics unavailable", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			mm.log.Debug("Monitoring manager stopped")
			return nil
		case <-ticker.C:
			mm.updateStats(p)
		}
	}
}

func (mm *MonitoringManager) updateStats(p *process.Process) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	var rss uint64
	var cpu float64
	if p != nil {
		if memInfo, err := p.MemoryInfo(); err == nil {
			rss = memInfo.RSS
		}
		if percent, err := p.CPUPercent(); err == nil {
			cpu = percent
		}
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC
	mm.latestStats.Goroutines = runtime.NumGoroutine()
	mm.latestStats.RSSBytes = rss
	mm.latestStats.CPUPercent = cpu
	mm.latestStats.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// GetLatest merges the live counters with the last process sample.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	if mm == nil {
		return MonitoringStats{}
	}
	mm.mu.RLock()
	stats := mm.latestStats
	mm.mu.RUnlock()

	stats.OpenConnections = atomic.LoadInt64(&mm.openConnections)
	stats.ConnectionsOpened = atomic.LoadUint64(&mm.connectionsOpened)
	stats.ConnectionsPruned = atomic.LoadUint64(&mm.connectionsPruned)
	stats.HandshakesRefused = atomic.LoadUint64(&mm.handshakesRefused)
	stats.Broadcasts = atomic.LoadUint64(&mm.broadcasts)
	stats.Deliveries = atomic.LoadUint64(&mm.deliveries)
	stats.SessionsStarted = atomic.LoadUint64(&mm.sessionsStarted)
	stats.OverrunWarnings = atomic.LoadUint64(&mm.overrunWarnings)
	return stats
}
