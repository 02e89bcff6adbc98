// Package gazetteer provides a static, versioned table of well-known places
// with exact and fuzzy name lookup.
package gazetteer

import (
	"sort"
	"strings"

	"guidepost/pkg/geo"
	"guidepost/pkg/model"
)

// Gazetteer indexes the static place table by normalized alias.
// The index is built once at construction and never mutated afterwards.
type Gazetteer struct {
	byAlias        map[string][]*Record
	all            []*Record
	fuzzyThreshold int
}

// New builds the alias index over the built-in dataset.
// fuzzyThreshold is the maximum edit distance accepted for a fuzzy hit.
func New(fuzzyThreshold int) *Gazetteer {
	g := &Gazetteer{
		byAlias:        make(map[string][]*Record),
		fuzzyThreshold: fuzzyThreshold,
	}
	for i := range records {
		r := &records[i]
		g.all = append(g.all, r)
		for _, alias := range r.Aliases {
			key := geo.Normalize(alias)
			g.byAlias[key] = append(g.byAlias[key], r)
		}
	}
	return g
}

// Version returns the revision of the underlying dataset.
func (g *Gazetteer) Version() string { return DataVersion }

// Len returns the number of records in the dataset.
func (g *Gazetteer) Len() int { return len(g.all) }

// Lookup resolves a name to a candidate. Exact alias match wins; otherwise
// the closest fuzzy match within the edit-distance threshold is returned.
// Ties break on popularity. Returns model.ErrNotFound when nothing matches.
func (g *Gazetteer) Lookup(name string) (model.LocationCandidate, error) {
	key := geo.Normalize(name)
	if key == "" {
		return model.LocationCandidate{}, model.ErrNotFound
	}

	if matches, ok := g.byAlias[key]; ok {
		return toCandidate(mostPopular(matches)), nil
	}

	if best := g.fuzzyLookup(key); best != nil {
		return toCandidate(best), nil
	}

	return model.LocationCandidate{}, model.ErrNotFound
}

// fuzzyLookup scans all aliases for the smallest edit distance within the
// threshold. Very short keys are excluded: a distance of 2 on a 3-rune name
// matches almost anything.
func (g *Gazetteer) fuzzyLookup(key string) *Record {
	if len([]rune(key)) < 4 {
		return nil
	}

	bestDist := g.fuzzyThreshold + 1
	var best *Record
	for _, r := range g.all {
		for _, alias := range r.Aliases {
			na := geo.Normalize(alias)
			// Cheap length pre-filter before the full distance computation.
			if abs(len([]rune(na))-len([]rune(key))) > g.fuzzyThreshold {
				continue
			}
			d := geo.EditDistance(key, na)
			if d < bestDist || (d == bestDist && best != nil && r.Popularity > best.Popularity) {
				bestDist = d
				best = r
			}
		}
	}
	if bestDist > g.fuzzyThreshold {
		return nil
	}
	return best
}

// Search returns up to limit candidates whose name or aliases resemble the
// query, most similar first.
func (g *Gazetteer) Search(query string, limit int) []model.LocationCandidate {
	key := geo.Normalize(query)
	if key == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		rec   *Record
		score float64
	}
	var hits []scored
	for _, r := range g.all {
		best := 0.0
		for _, alias := range r.Aliases {
			if s := geo.Similarity(key, alias); s > best {
				best = s
			}
		}
		if best >= 0.5 {
			hits = append(hits, scored{r, best})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].rec.Popularity > hits[j].rec.Popularity
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]model.LocationCandidate, len(hits))
	for i, h := range hits {
		out[i] = toCandidate(h.rec)
	}
	return out
}

// InRegion returns all records of the given country code, optionally filtered
// by a region substring.
func (g *Gazetteer) InRegion(countryCode, region string) []model.LocationCandidate {
	var out []model.LocationCandidate
	nr := geo.Normalize(region)
	for _, r := range g.all {
		if !strings.EqualFold(r.CountryCode, countryCode) {
			continue
		}
		if nr != "" && !strings.Contains(geo.Normalize(r.Region), nr) {
			continue
		}
		out = append(out, toCandidate(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	return out
}

func mostPopular(matches []*Record) *Record {
	best := matches[0]
	for _, r := range matches[1:] {
		if r.Popularity > best.Popularity {
			best = r
		}
	}
	return best
}

// toCandidate copies the record into a candidate. The copy keeps callers from
// mutating the static dataset through slices or the coordinate pointer.
func toCandidate(r *Record) model.LocationCandidate {
	c := model.LocationCandidate{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Region:      r.Region,
		Country:     r.Country,
		CountryCode: r.CountryCode,
		Popularity:  r.Popularity,
	}
	if len(r.Aliases) > 0 {
		c.Aliases = append([]string(nil), r.Aliases...)
	}
	if len(r.Keywords) > 0 {
		c.Keywords = append([]string(nil), r.Keywords...)
	}
	if r.Coord != nil {
		p := *r.Coord
		c.Coord = &p
	}
	return c
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
