// Package resolver orchestrates location resolution: a fallback chain of
// classification strategies in front of a TTL cache, plus coordinate
// enhancement and quality checks over whole guides.
package resolver

import (
	"context"
	"log/slog"
	"time"

	"guidepost/pkg/ambiguity"
	"guidepost/pkg/cache"
	"guidepost/pkg/classifier"
	"guidepost/pkg/config"
	"guidepost/pkg/gazetteer"
	"guidepost/pkg/geo"
	"guidepost/pkg/mapanalysis"
	"guidepost/pkg/model"
	"guidepost/pkg/places"
	"guidepost/pkg/search"
	"guidepost/pkg/store"
	"guidepost/pkg/validate"
	"guidepost/pkg/waypoint"
)

// Resolver runs the classification chain and the enhancement pipelines.
type Resolver struct {
	strategies  []Strategy
	cache       *cache.Store[model.ClassificationResult]
	cfg         config.ResolverConfig
	places      *places.Client
	corrector   *validate.Corrector
	selector    *mapanalysis.Selector
	synthesizer *waypoint.Synthesizer
}

// Deps are the collaborators a Resolver is assembled from.
type Deps struct {
	Gazetteer   *gazetteer.Gazetteer
	Catalog     *ambiguity.Catalog
	Classifier  *classifier.Classifier
	Aggregator  *search.Aggregator
	Guides      store.GuideIndex
	Places      *places.Client
	Corrector   *validate.Corrector
	Selector    *mapanalysis.Selector
	Synthesizer *waypoint.Synthesizer
}

// New assembles the resolver and its strategy chain. Chain order is fixed:
// curated knowledge first, then increasingly expensive and less reliable
// sources, with a guaranteed default at the end.
func New(cfg config.ResolverConfig, d Deps) *Resolver {
	guides := d.Guides
	if guides == nil {
		guides = store.NullGuideIndex{}
	}

	strategies := []Strategy{
		&ambiguityStrategy{catalog: d.Catalog},
		&gazetteerStrategy{gazetteer: d.Gazetteer},
		&guideAwareAIStrategy{guides: guides, classifier: d.Classifier, boost: cfg.GuideKnownBoost},
		&aiStrategy{classifier: d.Classifier},
		&externalSearchStrategy{aggregator: d.Aggregator},
		&defaultStrategy{},
	}

	return &Resolver{
		strategies:  strategies,
		cache:       cache.New[model.ClassificationResult](time.Duration(cfg.CacheTTL), time.Duration(cfg.LowConfidenceTTL), nil),
		cfg:         cfg,
		places:      d.Places,
		corrector:   d.Corrector,
		selector:    d.Selector,
		synthesizer: d.Synthesizer,
	}
}

// StartSweeper begins periodic cache eviction until ctx is cancelled.
func (r *Resolver) StartSweeper(ctx context.Context) {
	r.cache.StartSweeper(ctx, time.Duration(r.cfg.SweepInterval))
}

// CacheLen returns the number of cached classifications.
func (r *Resolver) CacheLen() int { return r.cache.Len() }

// cacheKey identifies a query for memoization. The region hint participates
// because it can change the outcome; the free-text context does not, it only
// breaks ties inside a single strategy.
func cacheKey(q model.LocationQuery) string {
	return geo.Normalize(q.Text) + "|" + geo.Normalize(q.RegionHint)
}

// Classify resolves a location query through the strategy chain. Results are
// memoized: confident ones under the long TTL, doubtful ones under the short
// TTL so a transient provider failure does not pin a bad answer.
func (r *Resolver) Classify(ctx context.Context, q model.LocationQuery) (*model.ClassificationResult, error) {
	key := cacheKey(q)
	if cached, ok := r.cache.Get(key); ok {
		out := cached
		out.Source = model.SourceCache
		return &out, nil
	}

	var res *model.ClassificationResult
	for _, s := range r.strategies {
		var err error
		res, err = s.Resolve(ctx, q)
		if err == nil {
			slog.Debug("classified", "text", q.Text, "strategy", s.Name(),
				"type", res.Type, "confidence", res.Confidence)
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Debug("strategy passed", "text", q.Text, "strategy", s.Name(), "error", err)
	}

	if res.Confidence >= r.cfg.ConfidentAbove {
		r.cache.Put(key, *res)
	} else {
		r.cache.PutShort(key, *res)
	}
	return res, nil
}
