package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"guidepost/pkg/geo"
	"guidepost/pkg/model"
)

// A text-search hit farther than this from the guide anchor is a namesake
// somewhere else, not the chapter's subject.
const chapterSearchMaxDistance = 2000.0

// EnhanceCoordinates improves a single coordinate. With an original
// coordinate the corrector validates and possibly moves it. Without one the
// location is classified for an estimate and the neighborhood analysis picks
// the best anchor; the raw estimate is kept when the analysis fails.
func (r *Resolver) EnhanceCoordinates(ctx context.Context, name, description string, original *geo.Point) (*model.EnhancementResult, error) {
	if original != nil {
		vr, err := r.corrector.Validate(ctx, name, description, *original)
		if err != nil {
			return nil, fmt.Errorf("enhance %q: %w", name, err)
		}
		return &model.EnhancementResult{
			Original:     original,
			Corrected:    vr.Point,
			ImprovementM: geo.Distance(*original, vr.Point),
			Method:       model.MethodSelfValidation,
		}, nil
	}

	cls, err := r.Classify(ctx, model.LocationQuery{Text: name, Context: description})
	if err != nil {
		return nil, fmt.Errorf("enhance %q: %w", name, err)
	}
	if cls.Coord == nil {
		return nil, fmt.Errorf("enhance %q: no coordinate source: %w", name, model.ErrNotFound)
	}

	analysis, err := r.selector.Analyze(ctx, name, description, *cls.Coord)
	if err != nil {
		slog.Warn("map analysis failed, keeping classification estimate", "name", name, "error", err)
		return &model.EnhancementResult{
			Corrected: *cls.Coord,
			Method:    model.MethodFallback,
		}, nil
	}

	return &model.EnhancementResult{
		Corrected:    analysis.Selected.Coord,
		ImprovementM: geo.Distance(*cls.Coord, analysis.Selected.Coord),
		Method:       model.MethodMapAnalysis,
	}, nil
}

// EnhanceGuideCoordinates fills in and corrects the coordinates of every
// chapter of a guide. The input guide is never mutated; the enhanced copy is
// returned alongside an audit report. Chapter 0 anchors the guide; later
// chapters resolve against that anchor and fall back to synthesized
// waypoints so every chapter ends up with a coordinate.
func (r *Resolver) EnhanceGuideCoordinates(ctx context.Context, locationName string, guide *model.Guide) (*model.Guide, *model.EnhancementReport, error) {
	if guide == nil || len(guide.Chapters) == 0 {
		return nil, nil, fmt.Errorf("enhance guide %q: empty guide", locationName)
	}

	start := time.Now()
	out := guide.Clone()
	report := &model.EnhancementReport{
		ID:           uuid.New().String(),
		LocationName: locationName,
	}
	for _, ch := range guide.Chapters {
		if ch.Coord != nil {
			report.OriginalCount++
		}
	}

	anchor, anchorResult, err := r.resolveAnchor(ctx, locationName, out.Chapters[0])
	if err != nil {
		return nil, nil, fmt.Errorf("enhance guide %q: %w", locationName, err)
	}
	out.Chapters[0].Coord = &anchorResult.Corrected
	report.Results = append(report.Results, *anchorResult)
	if anchorResult.Original == nil || anchorResult.ImprovementM > 0 {
		report.EnhancedCount++
	}

	total := len(out.Chapters)
	for i := 1; i < total; i++ {
		res := r.enhanceChapter(ctx, anchor, &out.Chapters[i], i, total)
		out.Chapters[i].Coord = &res.Corrected
		report.Results = append(report.Results, *res)
		if res.Original == nil || res.ImprovementM > 0 {
			report.EnhancedCount++
		}
	}

	report.Duration = time.Since(start)
	return out, report, nil
}

// resolveAnchor determines the guide's anchor coordinate from chapter 0.
func (r *Resolver) resolveAnchor(ctx context.Context, locationName string, first model.Chapter) (geo.Point, *model.EnhancementResult, error) {
	name := first.Title
	if name == "" {
		name = locationName
	}

	res, err := r.EnhanceCoordinates(ctx, name, first.Description, first.Coord)
	if err != nil {
		// The chapter itself could not be resolved; the named location as a
		// whole may still be.
		if name != locationName {
			res, err = r.EnhanceCoordinates(ctx, locationName, "", nil)
		}
		if err != nil {
			return geo.Point{}, nil, err
		}
	}
	res.ChapterIndex = 0
	return res.Corrected, res, nil
}

// enhanceChapter resolves one non-anchor chapter. Existing coordinates go
// through self-validation; missing ones try a place search near the anchor
// before degrading to a synthesized waypoint.
func (r *Resolver) enhanceChapter(ctx context.Context, anchor geo.Point, ch *model.Chapter, index, total int) *model.EnhancementResult {
	if ch.Coord != nil {
		vr, err := r.corrector.Validate(ctx, ch.Title, ch.Description, *ch.Coord)
		if err == nil {
			return &model.EnhancementResult{
				ChapterIndex: index,
				Original:     ch.Coord,
				Corrected:    vr.Point,
				ImprovementM: geo.Distance(*ch.Coord, vr.Point),
				Method:       model.MethodSelfValidation,
			}
		}
		slog.Warn("chapter validation failed, keeping original", "title", ch.Title, "error", err)
		return &model.EnhancementResult{
			ChapterIndex: index,
			Original:     ch.Coord,
			Corrected:    *ch.Coord,
			Method:       model.MethodSelfValidation,
		}
	}

	if hit := r.searchNearAnchor(ctx, ch.Title, anchor); hit != nil {
		return &model.EnhancementResult{
			ChapterIndex: index,
			Corrected:    *hit,
			Method:       model.MethodAPIEnhancement,
		}
	}

	return &model.EnhancementResult{
		ChapterIndex: index,
		Corrected:    r.synthesizer.Synthesize(anchor, index, total),
		Method:       model.MethodFallback,
	}
}

// searchNearAnchor looks the chapter title up via text search and accepts
// the best hit only when it sits close to the guide anchor.
func (r *Resolver) searchNearAnchor(ctx context.Context, title string, anchor geo.Point) *geo.Point {
	if title == "" || r.places == nil || !r.places.Available() {
		return nil
	}
	results, err := r.places.TextSearch(ctx, title)
	if err != nil || len(results) == 0 {
		return nil
	}
	best := results[0].Coord()
	if geo.Distance(anchor, best) > chapterSearchMaxDistance {
		return nil
	}
	return &best
}
