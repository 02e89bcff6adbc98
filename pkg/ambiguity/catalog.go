// Package ambiguity resolves place names that denote multiple real locations,
// using surrounding text to pick a candidate deterministically.
package ambiguity

import (
	"sort"
	"strings"

	"guidepost/pkg/config"
	"guidepost/pkg/geo"
	"guidepost/pkg/model"
)

// Catalog holds the curated ambiguous-name table.
type Catalog struct {
	weights config.ContextWeights
}

// New creates a catalog using the given context weights.
func New(weights config.ContextWeights) *Catalog {
	return &Catalog{weights: weights}
}

// IsAmbiguous reports whether the name is in the catalog.
func (c *Catalog) IsAmbiguous(name string) bool {
	_, ok := entries[geo.Normalize(name)]
	return ok
}

// Candidates returns the catalog entries for the name, most popular first.
// Returns nil when the name is not ambiguous.
func (c *Catalog) Candidates(name string) []model.LocationCandidate {
	cands, ok := entries[geo.Normalize(name)]
	if !ok {
		return nil
	}
	out := make([]model.LocationCandidate, len(cands))
	for i, cand := range cands {
		out[i] = cloneCandidate(cand)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	return out
}

// Resolve picks the best candidate for the name given surrounding context.
// With no context, or context that matches nothing, the most popular
// candidate wins. Score ties break on popularity, then on catalog order, so
// repeated calls with the same input always return the same candidate.
func (c *Catalog) Resolve(name, context string) (model.LocationCandidate, bool) {
	cands := c.Candidates(name)
	if len(cands) == 0 {
		return model.LocationCandidate{}, false
	}

	ctx := geo.Normalize(context)
	best := 0
	bestScore := c.score(cands[0], ctx)
	for i := 1; i < len(cands); i++ {
		s := c.score(cands[i], ctx)
		if s > bestScore {
			best = i
			bestScore = s
		}
	}
	return cands[best], true
}

// score computes the additive context score for one candidate.
// Popularity contributes only a fractional tie-break term.
func (c *Catalog) score(cand model.LocationCandidate, ctx string) float64 {
	score := c.weights.Popularity * cand.Popularity / 10

	if ctx == "" {
		return score
	}

	if contains(ctx, cand.Region) || contains(ctx, cand.Country) {
		score += c.weights.Region
	}
	for _, alias := range cand.Aliases {
		if contains(ctx, alias) {
			score += c.weights.Alias
			break
		}
	}
	for _, kw := range cand.Keywords {
		if contains(ctx, kw) {
			score += c.weights.Keyword
		}
	}
	return score
}

func contains(ctx, term string) bool {
	term = geo.Normalize(term)
	return term != "" && strings.Contains(ctx, term)
}

func cloneCandidate(c model.LocationCandidate) model.LocationCandidate {
	out := c
	if c.Coord != nil {
		p := *c.Coord
		out.Coord = &p
	}
	out.Aliases = append([]string(nil), c.Aliases...)
	out.Keywords = append([]string(nil), c.Keywords...)
	return out
}
