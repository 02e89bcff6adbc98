// Package search aggregates external place searches over multiple query
// variants launched concurrently, then merges and re-ranks the results.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"guidepost/pkg/config"
	"guidepost/pkg/geo"
	"guidepost/pkg/model"
	"guidepost/pkg/places"
	"guidepost/pkg/scorer"
	"guidepost/pkg/tracker"
)

// Hit is one merged search result with a query-match confidence in [0,1].
type Hit struct {
	Place      places.Place
	Popularity float64
	Confidence float64
	Variant    string // the query variant that produced this hit
}

// Aggregator fans a query out over several phrasing variants. Variants are
// launched with a stagger so a cache or early hit can make later network
// calls unnecessary on the provider side.
type Aggregator struct {
	places        *places.Client
	tracker       *tracker.Tracker
	maxVariants   int
	stagger       time.Duration
	branchTimeout time.Duration
}

// New creates an aggregator over the given places client.
func New(cfg config.SearchConfig, p *places.Client, t *tracker.Tracker) *Aggregator {
	maxVariants := cfg.MaxVariants
	if maxVariants <= 0 || maxVariants > 8 {
		maxVariants = 8
	}
	stagger := time.Duration(cfg.Stagger)
	if stagger <= 0 {
		stagger = 200 * time.Millisecond
	}
	branchTimeout := time.Duration(cfg.BranchTimeout)
	if branchTimeout <= 0 {
		branchTimeout = 4 * time.Second
	}
	if t == nil {
		t = tracker.New()
	}
	return &Aggregator{
		places:        p,
		tracker:       t,
		maxVariants:   maxVariants,
		stagger:       stagger,
		branchTimeout: branchTimeout,
	}
}

// keywordHints maps name fragments to search keywords that disambiguate the
// kind of place. Both Latin and CJK fragments are covered because guide
// chapter titles arrive in the guide's language.
var keywordHints = []struct {
	fragment string
	keyword  string
}{
	{"temple", "buddhist temple"},
	{"寺", "buddhist temple"},
	{"shrine", "shinto shrine"},
	{"神社", "shinto shrine"},
	{"大社", "shinto shrine"},
	{"mount", "mountain peak"},
	{"mt.", "mountain peak"},
	{"山", "mountain"},
	{"castle", "castle"},
	{"城", "castle"},
	{"cathedral", "cathedral"},
	{"basilica", "basilica"},
	{"museum", "museum"},
	{"market", "market"},
	{"市場", "market"},
	{"park", "park"},
	{"公園", "park"},
	{"garden", "garden"},
	{"bridge", "bridge"},
	{"橋", "bridge"},
	{"tower", "tower"},
	{"塔", "tower"},
	{"palace", "palace"},
	{"station", "train station"},
	{"駅", "train station"},
}

// buildVariants produces the ordered list of query phrasings, capped at
// maxVariants. The bare name always comes first.
func (a *Aggregator) buildVariants(name, regionHint string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	var variants []string
	seen := map[string]bool{}
	add := func(v string) {
		v = strings.TrimSpace(v)
		key := geo.Normalize(v)
		if v == "" || seen[key] || len(variants) >= a.maxVariants {
			return
		}
		seen[key] = true
		variants = append(variants, v)
	}

	add(name)
	if regionHint != "" {
		add(name + " " + regionHint)
		add(regionHint + " " + name)
	}

	lower := geo.Normalize(name)
	for _, h := range keywordHints {
		if strings.Contains(lower, h.fragment) {
			add(name + " " + h.keyword)
			if regionHint != "" {
				add(name + " " + h.keyword + " " + regionHint)
			}
		}
	}
	return variants
}

// Search runs all variants concurrently and merges the results. Duplicate
// places (same PlaceID) keep the highest-confidence occurrence. Hits are
// returned best first; an empty merge returns model.ErrNotFound.
func (a *Aggregator) Search(ctx context.Context, name, regionHint string) ([]Hit, error) {
	if a.places == nil || !a.places.Available() {
		return nil, fmt.Errorf("search %q: %w", name, model.ErrProviderUnavailable)
	}

	variants := a.buildVariants(name, regionHint)
	if len(variants) == 0 {
		return nil, fmt.Errorf("search: empty query")
	}

	type branchResult struct {
		variant string
		results []places.Place
		err     error
	}

	ch := make(chan branchResult, len(variants))
	var wg sync.WaitGroup
	for i, v := range variants {
		wg.Add(1)
		go func(delay time.Duration, variant string) {
			defer wg.Done()
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					ch <- branchResult{variant: variant, err: ctx.Err()}
					return
				}
			}
			bctx, cancel := context.WithTimeout(ctx, a.branchTimeout)
			defer cancel()
			results, err := a.places.TextSearch(bctx, variant)
			ch <- branchResult{variant: variant, results: results, err: err}
		}(time.Duration(i)*a.stagger, v)
	}
	wg.Wait()
	close(ch)

	merged := map[string]Hit{}
	var lastErr error
	for br := range ch {
		if br.err != nil {
			slog.Warn("search variant failed", "variant", br.variant, "error", br.err)
			lastErr = br.err
			continue
		}
		if len(br.results) == 0 {
			a.tracker.TrackAPIZero("places")
			continue
		}
		for _, p := range br.results {
			hit := a.toHit(p, name, br.variant)
			if prev, ok := merged[p.PlaceID]; !ok || hit.Confidence > prev.Confidence {
				merged[p.PlaceID] = hit
			}
		}
	}

	if len(merged) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("search %q: %w", name, lastErr)
		}
		return nil, fmt.Errorf("search %q: %w", name, model.ErrNotFound)
	}

	hits := make([]Hit, 0, len(merged))
	for _, h := range merged {
		hits = append(hits, h)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return rank(hits[i]) > rank(hits[j])
	})
	return hits, nil
}

// toHit scores a raw place against the original query.
func (a *Aggregator) toHit(p places.Place, query, variant string) Hit {
	pop, _ := scorer.Score(scorer.Facts{
		Rating:      p.Rating,
		ReviewCount: p.UserRatingsTotal,
		PhotoCount:  p.PhotoCount,
		Types:       p.Types,
		Operational: p.BusinessStatus == "OPERATIONAL",
		StatusKnown: p.BusinessStatus != "",
	})
	return Hit{
		Place:      p,
		Popularity: pop,
		Confidence: geo.Similarity(query, p.Name),
		Variant:    variant,
	}
}

// rank orders merged hits. Name-match confidence dominates; popularity
// breaks near-ties between equally plausible matches.
func rank(h Hit) float64 {
	return h.Confidence*4 + h.Popularity*0.6
}
