// Package waypoint synthesizes chapter coordinates geometrically when no
// better source is available. Stops are spread around the anchor so a guide
// with missing coordinates still renders as a walkable route instead of a
// stack of markers on one point.
package waypoint

import (
	"guidepost/pkg/config"
	"guidepost/pkg/geo"
)

// Synthesizer places waypoints on an outward spiral around an anchor.
type Synthesizer struct {
	baseRadius float64
	maxRadius  float64
}

// New creates a synthesizer from the waypoint configuration.
func New(cfg config.WaypointConfig) *Synthesizer {
	base := float64(cfg.BaseRadius)
	if base <= 0 {
		base = 10
	}
	max := float64(cfg.MaxRadius)
	if max < base {
		max = base
	}
	return &Synthesizer{baseRadius: base, maxRadius: max}
}

// Synthesize returns the coordinate for chapter index out of total chapters.
// Index 0 is the anchor itself. Later chapters move outward from the base
// radius toward the max radius while rotating a full turn around the anchor.
// The function is pure: same inputs, same waypoint.
func (s *Synthesizer) Synthesize(anchor geo.Point, index, total int) geo.Point {
	if index <= 0 || total <= 1 {
		return anchor
	}
	if index >= total {
		index = total - 1
	}

	span := float64(total - 1)
	frac := float64(index) / span

	radius := s.baseRadius + (s.maxRadius-s.baseRadius)*frac
	bearing := 360.0 * float64(index-1) / span

	return geo.DestinationPoint(anchor, radius, bearing)
}
