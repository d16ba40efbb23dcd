package client

import (
	"sort"
	"sync"
	"time"

	movingaverage "github.com/RobinUS2/golang-moving-average"
)

// Monitor keeps per-operation request statistics: call and failure counters
// and a moving average of latency over the last window calls.
type Monitor struct {
	sync.Mutex
	window int
	ops    map[string]*opStats
}

type opStats struct {
	dur      *movingaverage.MovingAverage
	calls    int
	failures int
	last     time.Duration
}

// OpStats is a point-in-time view of one operation's statistics.
type OpStats struct {
	Op       string
	Calls    int
	Failures int
	AvgMs    float64
	Last     time.Duration
}

func NewMonitor(window int) *Monitor {
	if window < 1 {
		window = 1
	}
	return &Monitor{window: window, ops: make(map[string]*opStats)}
}

// Observe records one completed call of op.
func (m *Monitor) Observe(op string, dur time.Duration, failed bool) {
	m.Lock()
	defer m.Unlock()

	s, ok := m.ops[op]
	if !ok {
		s = &opStats{dur: movingaverage.New(m.window)}
		m.ops[op] = s
	}
	s.calls++
	if failed {
		s.failures++
	}
	s.last = dur
	s.dur.Add(float64(dur/time.Microsecond) / 1000.0)
}

// Stats returns a snapshot sorted by operation name.
func (m *Monitor) Stats() []OpStats {
	m.Lock()
	defer m.Unlock()

	out := make([]OpStats, 0, len(m.ops))
	for op, s := range m.ops {
		out = append(out, OpStats{
			Op:       op,
			Calls:    s.calls,
			Failures: s.failures,
			AvgMs:    s.dur.Avg(),
			Last:     s.last,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Op < out[j].Op })
	return out
}
