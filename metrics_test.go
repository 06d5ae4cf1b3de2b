package biztrack

import (
	"context"
	"sync"
	"testing"
)

func TestMetricsCountLifecycle(t *testing.T) {
	backend := newTestBackend()
	client := newTestClient(t, backend, nil)
	ctx := context.Background()

	client.Session().Restore(ctx)
	if _, err := client.Session().Login(ctx, "a@b.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := client.Session().Login(ctx, "a@b.com", "wrong"); err == nil {
		t.Fatal("expected login failure")
	}
	client.Session().Logout(ctx)

	snap := client.MetricsSnapshot()
	checks := map[MetricID]uint64{
		MetricRestoreMiss:  1,
		MetricLoginSuccess: 1,
		MetricLoginFailure: 1,
		MetricLogout:       1,
	}
	for id, want := range checks {
		if got := snap.Counters[id]; got != want {
			t.Fatalf("counter %d = %d, want %d", id, got, want)
		}
	}
}

func TestMetricsConcurrentIncrement(t *testing.T) {
	m := newMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Inc(MetricLoginSuccess)
			}
		}()
	}
	wg.Wait()

	if got := m.Snapshot().Counters[MetricLoginSuccess]; got != 8000 {
		t.Fatalf("counter = %d, want 8000", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *metrics
	m.Inc(MetricLogout)

	snap := m.Snapshot()
	if len(snap.Counters) != 0 {
		t.Fatalf("nil metrics snapshot = %+v", snap)
	}
}
