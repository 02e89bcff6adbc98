// Package validate checks a proposed coordinate against what actually sits
// there on the map, and corrects it when a better fix is found nearby.
package validate

import (
	"context"
	"fmt"
	"log/slog"

	"guidepost/pkg/classifier"
	"guidepost/pkg/config"
	"guidepost/pkg/geo"
	"guidepost/pkg/model"
	"guidepost/pkg/places"
)

// A nearby facility must resemble the stop name at least this much to count
// as a correction candidate.
const minNameSimilarity = 0.6

// Result is the outcome of validating one coordinate.
type Result struct {
	Point      geo.Point // proposed or corrected
	Corrected  bool
	IsAccurate bool // within the accept distance of a confident match
	Confidence float64
	Reason     string
}

// Corrector validates coordinates through nearby search plus an AI judgement.
type Corrector struct {
	places     *places.Client
	classifier *classifier.Classifier
	cfg        config.ValidatorConfig
}

// New creates a corrector.
func New(cfg config.ValidatorConfig, p *places.Client, c *classifier.Classifier) *Corrector {
	if float64(cfg.AcceptDistance) <= 0 {
		cfg.AcceptDistance = config.Distance(10)
	}
	if float64(cfg.SearchRadius) <= 0 {
		cfg.SearchRadius = config.Distance(50)
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.8
	}
	return &Corrector{places: p, classifier: c, cfg: cfg}
}

// Validate checks whether proposed is an accurate position for the named
// stop. A coordinate is accurate only when a matching facility sits within
// the accept distance and the match is confident enough; no judgement can
// make a more distant point accurate. A matching facility farther out, but
// inside the search radius, becomes a correction when the AI judges the
// proposed coordinate inaccurate with enough confidence. With no plausible
// match the proposed coordinate is kept but flagged with low confidence.
func (c *Corrector) Validate(ctx context.Context, name, description string, proposed geo.Point) (*Result, error) {
	if !geo.Valid(proposed) {
		return nil, fmt.Errorf("validate %q: %w", name, model.ErrInvalidCoordinate)
	}

	nearby, err := c.places.NearbySearch(ctx, proposed, float64(c.cfg.SearchRadius), "")
	if err != nil {
		// Degraded mode: nothing to compare against, trust the input.
		slog.Warn("coordinate validation skipped", "name", name, "error", err)
		return &Result{
			Point:      proposed,
			IsAccurate: true,
			Confidence: 0.5,
			Reason:     "nearby search unavailable",
		}, nil
	}

	match, similarity := bestMatch(name, nearby)
	if match == nil {
		return c.noMatch(ctx, name, description, proposed, nearby)
	}

	dist := geo.Distance(proposed, match.Coord())
	if dist <= float64(c.cfg.AcceptDistance) {
		return &Result{
			Point:      proposed,
			IsAccurate: similarity >= c.cfg.MinConfidence,
			Confidence: similarity,
			Reason:     fmt.Sprintf("matched %q %.0fm away", match.Name, dist),
		}, nil
	}

	// Candidate correction: ask whether the proposed point is wrong before
	// moving it. The judgement only authorizes the move; it cannot declare a
	// point this far from its facility accurate.
	judgement, err := c.classifier.JudgeCoordinate(ctx, name, description, proposed, nearestName(proposed, nearby))
	if err != nil {
		slog.Warn("coordinate judgement failed", "name", name, "error", err)
		return &Result{
			Point:      proposed,
			IsAccurate: false,
			Confidence: 0.5,
			Reason:     fmt.Sprintf("matched %q %.0fm away, judgement unavailable", match.Name, dist),
		}, nil
	}

	if !judgement.IsAccurate && judgement.Confidence >= c.cfg.MinConfidence {
		return &Result{
			Point:      match.Coord(),
			Corrected:  true,
			IsAccurate: false,
			Confidence: judgement.Confidence * similarity,
			Reason:     fmt.Sprintf("moved %.0fm to %q: %s", dist, match.Name, judgement.Reasoning),
		}, nil
	}

	return &Result{
		Point:      proposed,
		IsAccurate: false,
		Confidence: judgement.Confidence,
		Reason:     fmt.Sprintf("kept %.0fm from %q: %s", dist, match.Name, judgement.Reasoning),
	}, nil
}

// noMatch handles the case where nothing nearby resembles the stop. The
// coordinate is never moved here; there is no better candidate to move to.
func (c *Corrector) noMatch(ctx context.Context, name, description string, proposed geo.Point, nearby []places.Place) (*Result, error) {
	judgement, err := c.classifier.JudgeCoordinate(ctx, name, description, proposed, nearestName(proposed, nearby))
	if err != nil {
		slog.Warn("coordinate judgement failed", "name", name, "error", err)
		return &Result{
			Point:      proposed,
			IsAccurate: true,
			Confidence: 0.5,
			Reason:     "no nearby match, judgement unavailable",
		}, nil
	}

	if judgement.IsAccurate {
		return &Result{
			Point:      proposed,
			IsAccurate: true,
			Confidence: judgement.Confidence,
			Reason:     judgement.Reasoning,
		}, nil
	}

	// Kept without a correction candidate: confidence stays strictly
	// below 0.3.
	confidence := 1 - judgement.Confidence
	if confidence > 0.25 {
		confidence = 0.25
	}
	return &Result{
		Point:      proposed,
		IsAccurate: false,
		Confidence: confidence,
		Reason:     judgement.Reasoning,
	}, nil
}

// bestMatch returns the facility most similar to the stop name, or nil when
// nothing clears the similarity floor.
func bestMatch(name string, nearby []places.Place) (*places.Place, float64) {
	var best *places.Place
	bestSim := minNameSimilarity
	for i := range nearby {
		if sim := geo.Similarity(name, nearby[i].Name); sim >= bestSim {
			best = &nearby[i]
			bestSim = sim
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestSim
}

// nearestName describes what sits closest to the point, for the AI prompt.
func nearestName(p geo.Point, nearby []places.Place) string {
	if len(nearby) == 0 {
		return ""
	}
	best := 0
	bestDist := geo.Distance(p, nearby[0].Coord())
	for i := 1; i < len(nearby); i++ {
		if d := geo.Distance(p, nearby[i].Coord()); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return fmt.Sprintf("%s (%.0fm away)", nearby[best].Name, bestDist)
}
