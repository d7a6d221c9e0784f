// Package metrics tracks per-endpoint request counts, latency and error rates.
package metrics

import (
	"math"
	"sort"
	"sync"
	"time"
)

// Snapshot is the reported state of one tracked module.
type Snapshot struct {
	TotalRequests     int64      `json:"total_requests"`
	AvgResponseTimeMS float64    `json:"avg_response_time_ms"`
	ErrorRate         float64    `json:"error_rate"`
	LastRequestTime   *time.Time `json:"last_request_time"`
}

type counters struct {
	requests int64
	errors   int64
	total    time.Duration
	last     time.Time
}

// Tracker records requests per module. It is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	modules map[string]*counters
	start   time.Time
	now     func() time.Time
}

// NewTracker returns a tracker whose uptime starts now.
func NewTracker() *Tracker {
	return newTrackerWithClock(time.Now)
}

func newTrackerWithClock(now func() time.Time) *Tracker {
	return &Tracker{
		modules: make(map[string]*counters),
		start:   now(),
		now:     now,
	}
}

// Record adds one request for module.
func (t *Tracker) Record(module string, duration time.Duration, success bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.modules[module]
	if !ok {
		c = &counters{}
		t.modules[module] = c
	}
	c.requests++
	c.total += duration
	c.last = t.now()
	if !success {
		c.errors++
	}
}

// Snapshot reports module's counters. Unknown modules report zeros.
// The average is rounded to 2 decimals and the error rate to 4.
func (t *Tracker) Snapshot(module string) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.modules[module]
	if !ok || c.requests == 0 {
		return Snapshot{}
	}

	avg := float64(c.total) / float64(time.Millisecond) / float64(c.requests)
	last := c.last
	return Snapshot{
		TotalRequests:     c.requests,
		AvgResponseTimeMS: roundTo(avg, 2),
		ErrorRate:         roundTo(float64(c.errors)/float64(c.requests), 4),
		LastRequestTime:   &last,
	}
}

// Modules lists every module that has recorded a request, sorted.
func (t *Tracker) Modules() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, 0, len(t.modules))
	for name := range t.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Uptime is the time since the tracker was created.
func (t *Tracker) Uptime() time.Duration {
	return t.now().Sub(t.start)
}

func roundTo(f float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(f*scale) / scale
}
