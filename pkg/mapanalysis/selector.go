// Package mapanalysis locates the best map anchor for a stop by analyzing
// the neighborhood around an initial estimate: gather facilities in
// concentric rings, rank them, and let the AI pick the best match.
package mapanalysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"guidepost/pkg/classifier"
	"guidepost/pkg/config"
	"guidepost/pkg/geo"
	"guidepost/pkg/geocode"
	"guidepost/pkg/model"
	"guidepost/pkg/places"
	"guidepost/pkg/scorer"
)

// Analysis states, in order of progress. The final state is recorded on the
// result for logging and diagnostics.
const (
	StateAnchor = "anchor"
	StateGather = "gather"
	StateRank   = "rank"
	StateSelect = "select"
	StateDone   = "done"
	StateFailed = "failed"
)

// Deterministic fallback confidence when AI selection is unavailable.
const fallbackConfidence = 0.5

// Analysis is the outcome of one neighborhood analysis.
type Analysis struct {
	Anchor       geo.Point
	AnchorSource string // "places", "geocode" or "estimate"
	Selected     model.NearbyFacility
	Confidence   float64
	Reasoning    string
	Candidates   int
	State        string
}

// Selector runs the analysis state machine.
type Selector struct {
	places     *places.Client
	geocoder   *geocode.Client
	classifier *classifier.Classifier
	cfg        config.MapAnalysisConfig
}

// New creates a selector.
func New(cfg config.MapAnalysisConfig, p *places.Client, g *geocode.Client, c *classifier.Classifier) *Selector {
	if len(cfg.Rings) == 0 {
		cfg.Rings = []config.Distance{500, 1000, 2000}
	}
	if cfg.CandidateCap <= 0 {
		cfg.CandidateCap = 25
	}
	return &Selector{places: p, geocoder: g, classifier: c, cfg: cfg}
}

// Analyze runs the full pipeline for a stop. estimate is the caller's best
// guess at the location; it seeds the anchor resolution and is the fallback
// anchor when both providers fail.
func (s *Selector) Analyze(ctx context.Context, name, description string, estimate geo.Point) (*Analysis, error) {
	if !geo.Valid(estimate) {
		return nil, fmt.Errorf("map analysis %q: %w", name, model.ErrInvalidCoordinate)
	}

	a := &Analysis{State: StateAnchor}

	anchor, source := s.resolveAnchor(ctx, name, estimate)
	a.Anchor = anchor
	a.AnchorSource = source

	a.State = StateGather
	facilities := s.gather(ctx, anchor)
	if len(facilities) == 0 {
		a.State = StateFailed
		return a, fmt.Errorf("map analysis %q: no facilities near anchor: %w", name, model.ErrNotFound)
	}

	a.State = StateRank
	ranked := s.rank(name, description, facilities)
	a.Candidates = len(ranked)

	a.State = StateSelect
	s.selectFacility(ctx, name, description, ranked, a)

	a.State = StateDone
	return a, nil
}

// resolveAnchor refines the estimate through places and geocoding, queried
// in parallel. A precise geocode wins; otherwise a places hit wins because
// it carries facility metadata; the raw estimate is the last resort.
func (s *Selector) resolveAnchor(ctx context.Context, name string, estimate geo.Point) (geo.Point, string) {
	var (
		wg         sync.WaitGroup
		placesHit  *places.Place
		geocodeHit *geocode.Result
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		results, err := s.places.TextSearch(ctx, name)
		if err != nil || len(results) == 0 {
			return
		}
		// The hit must be in the estimate's neighborhood, not a namesake
		// elsewhere on the planet.
		if geo.Distance(estimate, results[0].Coord()) < 50000 {
			placesHit = &results[0]
		}
	}()
	go func() {
		defer wg.Done()
		best, err := s.geocoder.Best(ctx, name)
		if err != nil {
			return
		}
		if geo.Distance(estimate, best.Coord) < 50000 {
			geocodeHit = best
		}
	}()
	wg.Wait()

	switch {
	case geocodeHit != nil && geocodeHit.Precision >= geocode.PrecisionRangeInterpolated:
		return geocodeHit.Coord, "geocode"
	case placesHit != nil:
		return placesHit.Coord(), "places"
	case geocodeHit != nil:
		return geocodeHit.Coord, "geocode"
	default:
		return estimate, "estimate"
	}
}

// gather collects facilities in concentric rings around the anchor, one
// nearby search per ring and type filter, deduplicated by place ID. The
// innermost occurrence of a place wins.
func (s *Selector) gather(ctx context.Context, anchor geo.Point) []model.NearbyFacility {
	typeFilters := s.cfg.TypeFilters
	if len(typeFilters) == 0 {
		typeFilters = []string{""}
	}

	seen := map[string]bool{}
	var out []model.NearbyFacility
	for _, ring := range s.cfg.Rings {
		for _, tf := range typeFilters {
			results, err := s.places.NearbySearch(ctx, anchor, float64(ring), tf)
			if err != nil {
				slog.Warn("ring search failed", "radius", float64(ring), "type", tf, "error", err)
				continue
			}
			for _, p := range results {
				if p.PlaceID == "" || seen[p.PlaceID] {
					continue
				}
				seen[p.PlaceID] = true
				out = append(out, model.NearbyFacility{
					Name:      p.Name,
					PlaceID:   p.PlaceID,
					Types:     p.Types,
					Coord:     p.Coord(),
					DistanceM: geo.Distance(anchor, p.Coord()),
					Relevance: facilityWeight(p),
				})
			}
		}
	}
	return out
}

// facilityWeight is the context-free part of the relevance score.
func facilityWeight(p places.Place) float64 {
	pop, _ := scorer.Score(scorer.Facts{
		Rating:      p.Rating,
		ReviewCount: p.UserRatingsTotal,
		PhotoCount:  p.PhotoCount,
		Types:       p.Types,
		Operational: p.BusinessStatus == "OPERATIONAL",
		StatusKnown: p.BusinessStatus != "",
	})
	return pop / 10
}

// Description fragments that identify a specific part of a larger site.
var structureHints = []string{
	"entrance", "gate", "north gate", "south gate", "east gate", "west gate",
	"cable car", "ropeway", "funicular", "station", "pier", "ferry",
	"viewpoint", "observation", "summit", "ticket", "visitor center",
}

// extractHints returns the structure hints present in the description.
func extractHints(description string) []string {
	d := geo.Normalize(description)
	var hints []string
	for _, h := range structureHints {
		if strings.Contains(d, h) {
			hints = append(hints, h)
		}
	}
	return hints
}

// rank orders facilities by relevance to the stop and caps the list. Name
// similarity dominates; description hints pull matching structures up;
// distance breaks ties in favor of closer candidates.
func (s *Selector) rank(name, description string, facilities []model.NearbyFacility) []model.NearbyFacility {
	hints := extractHints(description)

	for i := range facilities {
		f := &facilities[i]
		score := f.Relevance
		score += 3 * geo.Similarity(name, f.Name)
		for _, h := range hints {
			if strings.Contains(geo.Normalize(f.Name), h) {
				score += 1.5
			}
		}
		// Mild proximity preference, at most 0.5 for an adjacent facility.
		maxRing := float64(s.cfg.Rings[len(s.cfg.Rings)-1])
		if maxRing > 0 && f.DistanceM < maxRing {
			score += 0.5 * (1 - f.DistanceM/maxRing)
		}
		f.Relevance = score
	}

	sort.SliceStable(facilities, func(i, j int) bool {
		return facilities[i].Relevance > facilities[j].Relevance
	})
	if len(facilities) > s.cfg.CandidateCap {
		facilities = facilities[:s.cfg.CandidateCap]
	}
	return facilities
}

// selectFacility asks the AI to pick from the ranked candidates. Any failure
// falls back to the top-ranked candidate at the fallback confidence.
func (s *Selector) selectFacility(ctx context.Context, name, description string, ranked []model.NearbyFacility, a *Analysis) {
	sel, err := s.classifier.SelectFacility(ctx, name, description, ranked)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Warn("AI facility selection failed, using top-ranked", "name", name, "error", err)
		}
		a.Selected = ranked[0]
		a.Confidence = fallbackConfidence
		a.Reasoning = "top-ranked candidate (AI selection unavailable)"
		return
	}
	a.Selected = ranked[sel.Index]
	a.Confidence = sel.Confidence
	a.Reasoning = sel.Reasoning
}
