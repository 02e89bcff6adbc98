package tracker

import (
	"sync"
	"testing"
)

func TestTrackerCounts(t *testing.T) {
	tr := New()

	tr.TrackAPISuccess("places")
	tr.TrackAPISuccess("places")
	tr.TrackAPIFailure("places")
	tr.TrackAPIZero("places")
	tr.TrackCacheHit("geocoding")
	tr.TrackCacheMiss("geocoding")

	snap := tr.Snapshot()
	if snap["places"].APISuccess != 2 {
		t.Errorf("places success = %d, want 2", snap["places"].APISuccess)
	}
	if snap["places"].APIFailures != 1 {
		t.Errorf("places failures = %d, want 1", snap["places"].APIFailures)
	}
	if snap["places"].APIZeroResult != 1 {
		t.Errorf("places zero = %d, want 1", snap["places"].APIZeroResult)
	}
	if snap["geocoding"].CacheHits != 1 || snap["geocoding"].CacheMisses != 1 {
		t.Errorf("geocoding cache counters wrong: %+v", snap["geocoding"])
	}
}

func TestTrackerConcurrent(t *testing.T) {
	tr := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.TrackAPISuccess("gemini")
		}()
	}
	wg.Wait()

	if got := tr.Snapshot()["gemini"].APISuccess; got != 50 {
		t.Errorf("concurrent success count = %d, want 50", got)
	}
}
