package metrics

import (
	"sync"
	"testing"
	"time"
)

// fakeClock advances by step on every reading.
type fakeClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

func TestSnapshotUnknownModule(t *testing.T) {
	tr := NewTracker()
	s := tr.Snapshot("execute")
	if s.TotalRequests != 0 || s.AvgResponseTimeMS != 0 || s.ErrorRate != 0 || s.LastRequestTime != nil {
		t.Errorf("got %+v", s)
	}
}

func TestRecordAndSnapshot(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), step: time.Second}
	tr := newTrackerWithClock(clock.now)

	tr.Record("execute", 10*time.Millisecond, true)
	tr.Record("execute", 15*time.Millisecond, false)
	tr.Record("execute", 2*time.Millisecond, true)
	tr.Record("health", time.Millisecond, true)

	s := tr.Snapshot("execute")
	if s.TotalRequests != 3 {
		t.Errorf("total = %d", s.TotalRequests)
	}
	if s.AvgResponseTimeMS != 9 {
		t.Errorf("avg = %v, want 9", s.AvgResponseTimeMS)
	}
	if s.ErrorRate != 0.3333 {
		t.Errorf("error rate = %v, want 0.3333", s.ErrorRate)
	}
	want := time.Date(2026, 1, 2, 3, 4, 9, 0, time.UTC)
	if s.LastRequestTime == nil || !s.LastRequestTime.Equal(want) {
		t.Errorf("last = %v, want %v", s.LastRequestTime, want)
	}

	if got := tr.Modules(); len(got) != 2 || got[0] != "execute" || got[1] != "health" {
		t.Errorf("modules = %v", got)
	}
}

func TestAverageRounding(t *testing.T) {
	tr := NewTracker()
	tr.Record("m", 1*time.Millisecond, true)
	tr.Record("m", 1*time.Millisecond, true)
	tr.Record("m", 2*time.Millisecond, true)

	if s := tr.Snapshot("m"); s.AvgResponseTimeMS != 1.33 {
		t.Errorf("avg = %v, want 1.33", s.AvgResponseTimeMS)
	}
}

func TestUptime(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0), step: 3 * time.Second}
	tr := newTrackerWithClock(clock.now)
	if got := tr.Uptime(); got != 3*time.Second {
		t.Errorf("uptime = %v", got)
	}
}

func TestConcurrentRecord(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				tr.Record("execute", time.Millisecond, i%2 == 0)
			}
		}(i)
	}
	wg.Wait()

	s := tr.Snapshot("execute")
	if s.TotalRequests != 1000 || s.ErrorRate != 0.5 {
		t.Errorf("got %+v", s)
	}
}
