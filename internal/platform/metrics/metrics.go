// Package metrics keeps lightweight request counters for the /metricsz
// endpoint.
package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	requestsTotal   uint64
	clientErrors    uint64
	serverErrors    uint64
	notFound        uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

// Record counts one finished request. Safe for concurrent use.
func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.requestsTotal, 1)
	switch {
	case status >= 500:
		atomic.AddUint64(&c.serverErrors, 1)
	case status == 404:
		atomic.AddUint64(&c.notFound, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.requestsTotal)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal": total,
		"clientErrors":  atomic.LoadUint64(&c.clientErrors),
		"serverErrors":  atomic.LoadUint64(&c.serverErrors),
		"notFound":      atomic.LoadUint64(&c.notFound),
		"avgDurationMs": avg,
	}
}
