package biztrack

import "sync/atomic"

// MetricID identifies one SDK counter.
type MetricID uint8

const (
	MetricLoginSuccess MetricID = iota
	MetricLoginFailure
	MetricRegisterSuccess
	MetricRegisterPending
	MetricRegisterFailure
	MetricLogout
	MetricSessionExpired
	MetricRestoreHit
	MetricRestoreMiss
	MetricStorageError

	metricCount
)

// MetricsSnapshot is a point-in-time copy of the SDK's counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// metrics is a fixed block of atomic counters. Cheap enough to be always
// on; consumers that want an exporter surface can poll Snapshot.
type metrics struct {
	counters [metricCount]atomic.Uint64
}

func newMetrics() *metrics {
	return &metrics{}
}

func (m *metrics) Inc(id MetricID) {
	if m == nil || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

func (m *metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricCount)}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < metricCount; id++ {
		if v := m.counters[id].Load(); v > 0 {
			snap.Counters[id] = v
		}
	}
	return snap
}
