package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"guidepost/pkg/ambiguity"
	"guidepost/pkg/classifier"
	"guidepost/pkg/gazetteer"
	"guidepost/pkg/geo"
	"guidepost/pkg/model"
	"guidepost/pkg/search"
	"guidepost/pkg/store"
)

// Strategy is one link of the classification chain. A strategy either
// resolves the query or returns an error, in which case the chain moves on
// to the next link.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, query model.LocationQuery) (*model.ClassificationResult, error)
}

// ambiguityStrategy resolves names from the curated ambiguous-name catalog.
type ambiguityStrategy struct {
	catalog *ambiguity.Catalog
}

func (s *ambiguityStrategy) Name() string { return "disambiguation" }

func (s *ambiguityStrategy) Resolve(_ context.Context, q model.LocationQuery) (*model.ClassificationResult, error) {
	cand, ok := s.catalog.Resolve(q.Text, q.Context+" "+q.RegionHint)
	if !ok {
		return nil, fmt.Errorf("%q not in ambiguity catalog: %w", q.Text, model.ErrNotFound)
	}
	res := candidateResult(cand, model.SourceDisambiguation, 0.9)
	res.Reasoning = fmt.Sprintf("ambiguous name resolved to %s, %s", cand.Region, cand.Country)
	return res, nil
}

// gazetteerStrategy resolves names against the static dataset.
type gazetteerStrategy struct {
	gazetteer *gazetteer.Gazetteer
}

func (s *gazetteerStrategy) Name() string { return "gazetteer" }

func (s *gazetteerStrategy) Resolve(_ context.Context, q model.LocationQuery) (*model.ClassificationResult, error) {
	cand, err := s.gazetteer.Lookup(q.Text)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: %w", err)
	}

	// Exact alias hits are near-certain; fuzzy hits carry the doubt of the
	// typo they absorbed.
	confidence := 0.8
	key := geo.Normalize(q.Text)
	for _, alias := range cand.Aliases {
		if geo.Normalize(alias) == key {
			confidence = 0.95
			break
		}
	}

	res := candidateResult(cand, model.SourceStatic, confidence)
	res.Reasoning = fmt.Sprintf("static dataset entry %s", cand.ID)
	return res, nil
}

// guideAwareAIStrategy runs AI classification only for names that already
// have a guide, and boosts the confidence: a name someone authored a guide
// for is very unlikely to be a hallucination.
type guideAwareAIStrategy struct {
	guides     store.GuideIndex
	classifier *classifier.Classifier
	boost      float64
}

func (s *guideAwareAIStrategy) Name() string { return "guide-aware-ai" }

func (s *guideAwareAIStrategy) Resolve(ctx context.Context, q model.LocationQuery) (*model.ClassificationResult, error) {
	known, err := s.guides.ExistsGuide(ctx, geo.Normalize(q.Text))
	if err != nil {
		return nil, fmt.Errorf("guide index: %w", err)
	}
	if !known {
		return nil, fmt.Errorf("no guide for %q: %w", q.Text, model.ErrNotFound)
	}

	res, err := s.classifier.Classify(ctx, q)
	if err != nil {
		return nil, err
	}
	res.Confidence += s.boost
	if res.Confidence > 1 {
		res.Confidence = 1
	}
	return res, nil
}

// aiStrategy is plain AI classification.
type aiStrategy struct {
	classifier *classifier.Classifier
}

func (s *aiStrategy) Name() string { return "ai" }

func (s *aiStrategy) Resolve(ctx context.Context, q model.LocationQuery) (*model.ClassificationResult, error) {
	return s.classifier.Classify(ctx, q)
}

// externalSearchStrategy resolves through the search aggregator when the AI
// path fails. The place type is inferred from the provider's facility types.
type externalSearchStrategy struct {
	aggregator *search.Aggregator
}

func (s *externalSearchStrategy) Name() string { return "external-search" }

func (s *externalSearchStrategy) Resolve(ctx context.Context, q model.LocationQuery) (*model.ClassificationResult, error) {
	hits, err := s.aggregator.Search(ctx, q.Text, q.RegionHint)
	if err != nil {
		return nil, err
	}

	top := hits[0]
	placeType := inferType(top.Place.Types)
	coord := top.Place.Coord()
	return &model.ClassificationResult{
		Type:       placeType,
		Level:      placeType.Level(),
		Region:     q.RegionHint,
		Coord:      &coord,
		Popularity: top.Popularity,
		Confidence: 0.6 * top.Confidence,
		Source:     model.SourceExternalSearch,
		Reasoning:  fmt.Sprintf("external search matched %q via %q", top.Place.Name, top.Variant),
	}, nil
}

// inferType maps provider facility types onto the narration hierarchy.
func inferType(types []string) model.PlaceType {
	for _, t := range types {
		switch t {
		case "country":
			return model.TypeCountry
		case "administrative_area_level_1":
			return model.TypeProvince
		case "locality":
			return model.TypeCity
		case "sublocality", "sublocality_level_1", "neighborhood":
			return model.TypeDistrict
		case "natural_feature", "place_of_worship", "premise":
			return model.TypeLandmark
		}
	}
	return model.TypeAttraction
}

// defaultStrategy terminates the chain. It always succeeds with a guarded
// low-confidence guess so callers get a routable result even when every
// provider is down.
type defaultStrategy struct{}

func (s *defaultStrategy) Name() string { return "default" }

func (s *defaultStrategy) Resolve(_ context.Context, q model.LocationQuery) (*model.ClassificationResult, error) {
	slog.Info("classification fell through to default", "text", q.Text)
	return &model.ClassificationResult{
		Type:       model.TypeLandmark,
		Level:      model.TypeLandmark.Level(),
		Region:     q.RegionHint,
		Popularity: 1,
		Confidence: 0.1,
		Source:     model.SourceFallback,
		Reasoning:  "no resolution source available, assuming a specific site",
	}, nil
}

// candidateResult converts a dataset candidate into a classification result.
func candidateResult(cand model.LocationCandidate, source model.Source, confidence float64) *model.ClassificationResult {
	res := &model.ClassificationResult{
		Type:       cand.Type,
		Level:      cand.Type.Level(),
		Country:    cand.Country,
		Region:     cand.Region,
		Popularity: cand.Popularity,
		Confidence: confidence,
		Source:     source,
	}
	if cand.Coord != nil {
		p := *cand.Coord
		res.Coord = &p
	}
	return res
}
