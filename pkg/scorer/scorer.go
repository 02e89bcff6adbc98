// Package scorer computes a popularity score in [1,10] from place facts.
// Scoring is pure and deterministic; the detail lines explain every
// contribution for logging and debugging.
package scorer

import (
	"fmt"
	"strings"
)

// Facts are the observable signals about a place that feed the score.
type Facts struct {
	Rating       float64 // provider rating, 0..5, 0 when absent
	ReviewCount  int
	PhotoCount   int
	Types        []string
	Operational  bool    // business status reported as operational
	StatusKnown  bool    // whether a business status was reported at all
	Verified     bool    // appears in the curated dataset
	RegionFactor float64 // regional weighting, 0 means unweighted
}

// Category bonuses. More specific categories outrank generic ones.
var categoryBonus = map[string]float64{
	"tourist_attraction": 1.0,
	"museum":             0.8,
	"place_of_worship":   0.7,
	"park":               0.5,
	"point_of_interest":  0.3,
}

// Score maps facts to a popularity score clamped to [1,10], plus
// human-readable lines describing each contribution.
func Score(f Facts) (float64, []string) {
	score := 1.0
	var details []string

	// Rating contributes up to +3, scaled over the 2.5..5.0 band.
	// Below 2.5 a rating says more about data quality than popularity.
	if f.Rating > 2.5 {
		r := (f.Rating - 2.5) / 2.5 * 3.0
		score += r
		details = append(details, fmt.Sprintf("rating %.1f: +%.2f", f.Rating, r))
	}

	// Review volume steps up to +2.
	switch {
	case f.ReviewCount >= 10000:
		score += 2.0
		details = append(details, fmt.Sprintf("%d reviews: +2.00", f.ReviewCount))
	case f.ReviewCount >= 1000:
		score += 1.5
		details = append(details, fmt.Sprintf("%d reviews: +1.50", f.ReviewCount))
	case f.ReviewCount >= 100:
		score += 1.0
		details = append(details, fmt.Sprintf("%d reviews: +1.00", f.ReviewCount))
	case f.ReviewCount >= 10:
		score += 0.5
		details = append(details, fmt.Sprintf("%d reviews: +0.50", f.ReviewCount))
	}

	if f.PhotoCount > 0 {
		score += 1.0
		details = append(details, fmt.Sprintf("%d photos: +1.00", f.PhotoCount))
	}

	if f.StatusKnown {
		if f.Operational {
			score += 0.5
			details = append(details, "operational: +0.50")
		} else {
			score -= 2.0
			details = append(details, "not operational: -2.00")
		}
	}

	if f.Verified {
		score += 0.5
		details = append(details, "verified in dataset: +0.50")
	}

	// Only the best matching category counts.
	best := 0.0
	bestType := ""
	for _, t := range f.Types {
		if b, ok := categoryBonus[strings.ToLower(t)]; ok && b > best {
			best = b
			bestType = t
		}
	}
	if best > 0 {
		score += best
		details = append(details, fmt.Sprintf("category %s: +%.2f", bestType, best))
	}

	if f.RegionFactor > 0 && f.RegionFactor != 1.0 {
		score *= f.RegionFactor
		details = append(details, fmt.Sprintf("region factor: x%.2f", f.RegionFactor))
	}

	clamped := clamp(score, 1, 10)
	if clamped != score {
		details = append(details, fmt.Sprintf("clamped %.2f to %.2f", score, clamped))
	}
	return clamped, details
}

// RegionFactor returns the regional weighting for an ISO 3166-1 country code.
// Unlisted countries are unweighted.
func RegionFactor(countryCode string) float64 {
	if f, ok := regionFactors[strings.ToUpper(countryCode)]; ok {
		return f
	}
	return 1.0
}

// Mild boosts for countries with dense tourist infrastructure, where the raw
// review and photo counts undersell relative standing.
var regionFactors = map[string]float64{
	"JP": 1.1,
	"FR": 1.1,
	"IT": 1.1,
	"ES": 1.05,
	"GB": 1.05,
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
