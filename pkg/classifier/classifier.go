// Package classifier wraps the LLM provider with strictly validated,
// schema-bound prompts for location classification, facility selection
// and coordinate judgement.
package classifier

import (
	"context"
	"fmt"
	"strings"

	"guidepost/pkg/geo"
	"guidepost/pkg/llm"
	"guidepost/pkg/model"
)

// Classifier issues structured prompts against an llm.Provider.
type Classifier struct {
	provider llm.Provider
}

// New creates a classifier on top of the given provider.
func New(provider llm.Provider) *Classifier {
	return &Classifier{provider: provider}
}

// classifyResponse is the exact JSON shape the model must return.
type classifyResponse struct {
	Type       string   `json:"type"`
	Country    string   `json:"country"`
	Region     string   `json:"region"`
	Coordinate *coord   `json:"coordinate"`
	Confidence *float64 `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

type coord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

const classifyPrompt = `You are a geographic classifier. Classify the location named below.

Location: %q
%s
Respond with ONLY a JSON object in exactly this shape:
{
  "type": "country|province|city|district|landmark|attraction",
  "country": "<country name in English>",
  "region": "<province/state/region name in English, empty if not applicable>",
  "coordinate": {"lat": <number>, "lng": <number>},
  "confidence": <number between 0 and 1>,
  "reasoning": "<one short sentence>"
}

Rules:
- "type" must be one of the six listed values, nothing else.
- "coordinate" is the canonical center of the place, WGS84 decimal degrees.
- If you are unsure the place exists, set confidence below 0.3.`

// Classify asks the model to classify a location name. The response is
// validated field by field; any violation is reported as
// model.ErrSchemaViolation so the resolution chain can fall through.
func (c *Classifier) Classify(ctx context.Context, query model.LocationQuery) (*model.ClassificationResult, error) {
	var hints strings.Builder
	if query.Context != "" {
		fmt.Fprintf(&hints, "Surrounding text: %q\n", query.Context)
	}
	if query.RegionHint != "" {
		fmt.Fprintf(&hints, "Region hint: %q\n", query.RegionHint)
	}

	prompt := fmt.Sprintf(classifyPrompt, query.Text, hints.String())

	var resp classifyResponse
	if err := c.provider.GenerateJSON(ctx, "classify", prompt, &resp); err != nil {
		return nil, fmt.Errorf("classify %q: %w", query.Text, err)
	}

	result, err := resp.validate()
	if err != nil {
		return nil, fmt.Errorf("classify %q: %w: %v", query.Text, model.ErrSchemaViolation, err)
	}
	return result, nil
}

// validate enforces the response schema. Every field is checked; a result is
// only built from a fully conforming response.
func (r *classifyResponse) validate() (*model.ClassificationResult, error) {
	placeType := model.PlaceType(strings.ToLower(strings.TrimSpace(r.Type)))
	if !placeType.Known() {
		return nil, fmt.Errorf("unknown type %q", r.Type)
	}
	if strings.TrimSpace(r.Country) == "" {
		return nil, fmt.Errorf("missing country")
	}
	if r.Confidence == nil {
		return nil, fmt.Errorf("missing confidence")
	}
	if *r.Confidence < 0 || *r.Confidence > 1 {
		return nil, fmt.Errorf("confidence %v out of range", *r.Confidence)
	}
	if r.Coordinate == nil {
		return nil, fmt.Errorf("missing coordinate")
	}
	p := geo.Point{Lat: r.Coordinate.Lat, Lng: r.Coordinate.Lng}
	if !geo.Valid(p) {
		return nil, fmt.Errorf("coordinate out of range: %v", p)
	}

	return &model.ClassificationResult{
		Type:       placeType,
		Level:      placeType.Level(),
		Country:    strings.TrimSpace(r.Country),
		Region:     strings.TrimSpace(r.Region),
		Coord:      &p,
		Confidence: *r.Confidence,
		Source:     model.SourceAI,
		Reasoning:  r.Reasoning,
	}, nil
}

// Selection is the model's pick from a list of nearby facilities.
type Selection struct {
	Index      int
	Reasoning  string
	Confidence float64
}

type selectResponse struct {
	Index      *int     `json:"index"`
	Reasoning  string   `json:"reasoning"`
	Confidence *float64 `json:"confidence"`
}

const selectPrompt = `You are choosing the best map anchor for a tour guide stop.

Stop: %q
Description: %q

Numbered candidates (name, types, distance from the current estimate):
%s
Respond with ONLY a JSON object:
{"index": <candidate number>, "confidence": <0..1>, "reasoning": "<one short sentence>"}`

// SelectFacility asks the model to pick the candidate that best matches the
// stop. The returned index refers into the candidates slice.
func (c *Classifier) SelectFacility(ctx context.Context, name, description string, candidates []model.NearbyFacility) (*Selection, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("select facility: no candidates")
	}

	var list strings.Builder
	for i, f := range candidates {
		fmt.Fprintf(&list, "%d. %s (%s, %.0fm)\n", i, f.Name, strings.Join(f.Types, ", "), f.DistanceM)
	}

	prompt := fmt.Sprintf(selectPrompt, name, description, list.String())

	var resp selectResponse
	if err := c.provider.GenerateJSON(ctx, "select", prompt, &resp); err != nil {
		return nil, fmt.Errorf("select facility for %q: %w", name, err)
	}

	if resp.Index == nil || resp.Confidence == nil {
		return nil, fmt.Errorf("select facility for %q: %w: missing index or confidence", name, model.ErrSchemaViolation)
	}
	if *resp.Index < 0 || *resp.Index >= len(candidates) {
		return nil, fmt.Errorf("select facility for %q: %w: index %d out of range", name, model.ErrSchemaViolation, *resp.Index)
	}
	if *resp.Confidence < 0 || *resp.Confidence > 1 {
		return nil, fmt.Errorf("select facility for %q: %w: confidence %v out of range", name, model.ErrSchemaViolation, *resp.Confidence)
	}

	return &Selection{
		Index:      *resp.Index,
		Reasoning:  resp.Reasoning,
		Confidence: *resp.Confidence,
	}, nil
}

// Judgement is the model's verdict on a proposed coordinate.
type Judgement struct {
	IsAccurate bool
	Confidence float64
	Reasoning  string
}

type judgeResponse struct {
	IsAccurate *bool    `json:"is_accurate"`
	Confidence *float64 `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

const judgePrompt = `You are verifying a map coordinate for a tour guide stop.

Stop: %q
Description: %q
Proposed coordinate: lat=%.6f, lng=%.6f
Nearest named place to that coordinate: %s

Is the proposed coordinate an accurate position for the stop?
Respond with ONLY a JSON object:
{"is_accurate": <true|false>, "confidence": <0..1>, "reasoning": "<one short sentence>"}`

// JudgeCoordinate asks the model whether a proposed coordinate is accurate
// for the named stop, given what actually sits at that coordinate.
func (c *Classifier) JudgeCoordinate(ctx context.Context, name, description string, proposed geo.Point, nearest string) (*Judgement, error) {
	if nearest == "" {
		nearest = "(nothing found nearby)"
	}
	prompt := fmt.Sprintf(judgePrompt, name, description, proposed.Lat, proposed.Lng, nearest)

	var resp judgeResponse
	if err := c.provider.GenerateJSON(ctx, "validate", prompt, &resp); err != nil {
		return nil, fmt.Errorf("judge coordinate for %q: %w", name, err)
	}

	if resp.IsAccurate == nil || resp.Confidence == nil {
		return nil, fmt.Errorf("judge coordinate for %q: %w: missing field", name, model.ErrSchemaViolation)
	}
	if *resp.Confidence < 0 || *resp.Confidence > 1 {
		return nil, fmt.Errorf("judge coordinate for %q: %w: confidence %v out of range", name, model.ErrSchemaViolation, *resp.Confidence)
	}

	return &Judgement{
		IsAccurate: *resp.IsAccurate,
		Confidence: *resp.Confidence,
		Reasoning:  resp.Reasoning,
	}, nil
}
