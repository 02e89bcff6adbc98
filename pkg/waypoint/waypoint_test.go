package waypoint

import (
	"testing"

	"guidepost/pkg/config"
	"guidepost/pkg/geo"
)

func testSynthesizer() *Synthesizer {
	return New(config.WaypointConfig{
		BaseRadius: config.Distance(10),
		MaxRadius:  config.Distance(50),
	})
}

func TestAnchorCases(t *testing.T) {
	s := testSynthesizer()
	anchor := geo.Point{Lat: 35.0116, Lng: 135.7681}

	if got := s.Synthesize(anchor, 0, 5); got != anchor {
		t.Errorf("index 0: got %v, want anchor", got)
	}
	if got := s.Synthesize(anchor, 0, 1); got != anchor {
		t.Errorf("single chapter: got %v, want anchor", got)
	}
	if got := s.Synthesize(anchor, 3, 1); got != anchor {
		t.Errorf("total 1: got %v, want anchor", got)
	}
}

func TestRadiusGrowsWithIndex(t *testing.T) {
	s := testSynthesizer()
	anchor := geo.Point{Lat: 35.0116, Lng: 135.7681}
	total := 5

	prev := 0.0
	for i := 1; i < total; i++ {
		p := s.Synthesize(anchor, i, total)
		d := geo.Distance(anchor, p)
		if d <= prev {
			t.Errorf("index %d: distance %.1fm not greater than previous %.1fm", i, d, prev)
		}
		if d > 50+1 {
			t.Errorf("index %d: distance %.1fm beyond max radius", i, d)
		}
		prev = d
	}

	// Last chapter sits at the max radius.
	last := s.Synthesize(anchor, total-1, total)
	if d := geo.Distance(anchor, last); d < 49 || d > 51 {
		t.Errorf("last chapter at %.1fm, want ~50m", d)
	}
}

func TestDistinctWaypoints(t *testing.T) {
	s := testSynthesizer()
	anchor := geo.Point{Lat: 48.8584, Lng: 2.2945}
	total := 8

	seen := map[geo.Point]bool{}
	for i := 0; i < total; i++ {
		p := s.Synthesize(anchor, i, total)
		if seen[p] {
			t.Errorf("index %d: duplicate waypoint %v", i, p)
		}
		seen[p] = true
	}
}

func TestDeterministic(t *testing.T) {
	s := testSynthesizer()
	anchor := geo.Point{Lat: 37.3891, Lng: -5.9845}

	first := s.Synthesize(anchor, 2, 6)
	for i := 0; i < 10; i++ {
		if got := s.Synthesize(anchor, 2, 6); got != first {
			t.Fatalf("iteration %d: %v != %v", i, got, first)
		}
	}
}

func TestIndexClamping(t *testing.T) {
	s := testSynthesizer()
	anchor := geo.Point{Lat: 0, Lng: 0}

	// Out-of-range index behaves like the last chapter.
	want := s.Synthesize(anchor, 4, 5)
	if got := s.Synthesize(anchor, 9, 5); got != want {
		t.Errorf("clamped index: got %v, want %v", got, want)
	}
}
