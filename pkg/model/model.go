package model

import (
	"time"

	"guidepost/pkg/geo"
)

// PlaceType classifies a resolved location into the narration hierarchy.
type PlaceType string

// Known place types, broadest to most specific.
const (
	TypeCountry    PlaceType = "country"
	TypeProvince   PlaceType = "province"
	TypeCity       PlaceType = "city"
	TypeDistrict   PlaceType = "district"
	TypeLandmark   PlaceType = "landmark"
	TypeAttraction PlaceType = "attraction"
)

// Level returns the hierarchy level (1-4) for the place type.
// The level is always derived from the type, never set independently.
func (t PlaceType) Level() int {
	switch t {
	case TypeCountry:
		return 1
	case TypeProvince:
		return 2
	case TypeCity:
		return 3
	case TypeDistrict, TypeLandmark, TypeAttraction:
		return 4
	}
	return 4
}

// Known reports whether t is one of the defined place types.
func (t PlaceType) Known() bool {
	switch t {
	case TypeCountry, TypeProvince, TypeCity, TypeDistrict, TypeLandmark, TypeAttraction:
		return true
	}
	return false
}

// PageType selects which UI surface a classification routes to.
type PageType string

const (
	PageRegionExplorer PageType = "region-explorer"
	PageDetail         PageType = "detail"
)

// Page returns the page routing for the place type.
// Levels 1-3 route to the region explorer, level 4 to the detail page.
func (t PlaceType) Page() PageType {
	if t.Level() <= 3 {
		return PageRegionExplorer
	}
	return PageDetail
}

// Source identifies which link of the resolution chain produced a result.
type Source string

const (
	SourceStatic         Source = "static"
	SourceCache          Source = "cache"
	SourceDisambiguation Source = "disambiguation"
	SourceAI             Source = "ai"
	SourceExternalSearch Source = "external-search"
	SourceFallback       Source = "fallback"
)

// LocationQuery is the immutable input to classification.
type LocationQuery struct {
	Text       string `json:"text"`
	Context    string `json:"context,omitempty"`     // surrounding sentence or free text
	RegionHint string `json:"region_hint,omitempty"` // caller-supplied region/country hint
}

// LocationCandidate is one resolved geographic entity. Candidates are never
// mutated in place; corrections produce a new candidate.
type LocationCandidate struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        PlaceType  `json:"type"`
	Region      string     `json:"region"`
	Country     string     `json:"country"`
	CountryCode string     `json:"country_code"` // ISO 3166-1 Alpha-2
	Aliases     []string   `json:"aliases,omitempty"`
	Coord       *geo.Point `json:"coord,omitempty"`
	Popularity  float64    `json:"popularity"` // clamped to [1,10]
	Keywords    []string   `json:"keywords,omitempty"`
}

// ClassificationResult is the outcome of resolving a LocationQuery.
type ClassificationResult struct {
	Type       PlaceType  `json:"type"`
	Level      int        `json:"level"`
	Country    string     `json:"country"`
	Region     string     `json:"region"`
	Coord      *geo.Point `json:"coord,omitempty"`
	Popularity float64    `json:"popularity"`
	Confidence float64    `json:"confidence"` // [0,1]
	Source     Source     `json:"source"`
	Reasoning  string     `json:"reasoning"`
}

// Page returns the page routing for the result.
func (r *ClassificationResult) Page() PageType {
	return r.Type.Page()
}

// NearbyFacility is one facility found around a coordinate.
// Produced per request, never persisted.
type NearbyFacility struct {
	Name      string    `json:"name"`
	PlaceID   string    `json:"place_id"`
	Types     []string  `json:"types,omitempty"`
	Coord     geo.Point `json:"coord"`
	DistanceM float64   `json:"distance_m"` // distance from the search anchor
	Relevance float64   `json:"relevance"`
}

// Method identifies how a waypoint coordinate was obtained.
type Method string

const (
	MethodSelfValidation Method = "self-validation"
	MethodMapAnalysis    Method = "map-analysis"
	MethodAPIEnhancement Method = "api-enhancement"
	MethodFallback       Method = "fallback"
)

// EnhancementResult records the before/after coordinates of one waypoint.
type EnhancementResult struct {
	ChapterIndex int        `json:"chapter_index"`
	Original     *geo.Point `json:"original,omitempty"`
	Corrected    geo.Point  `json:"corrected"`
	ImprovementM float64    `json:"improvement_m"`
	Method       Method     `json:"method"`
}

// Chapter is one narration stop of a guide.
type Chapter struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Coord       *geo.Point `json:"coord,omitempty"`
}

// Guide is the collaborator-facing guide shape whose coordinates we enhance.
type Guide struct {
	Name     string    `json:"name"`
	Language string    `json:"language"`
	Chapters []Chapter `json:"chapters"`
}

// Clone returns a deep copy. Enhancement mutates the copy, never the input.
func (g *Guide) Clone() *Guide {
	out := &Guide{Name: g.Name, Language: g.Language}
	out.Chapters = make([]Chapter, len(g.Chapters))
	copy(out.Chapters, g.Chapters)
	for i, ch := range g.Chapters {
		if ch.Coord != nil {
			c := *ch.Coord
			out.Chapters[i].Coord = &c
		}
	}
	return out
}

// EnhancementReport is the audit trail of one guide enhancement run.
type EnhancementReport struct {
	ID            string              `json:"id"`
	LocationName  string              `json:"location_name"`
	OriginalCount int                 `json:"original_count"` // chapters that already had a coordinate
	EnhancedCount int                 `json:"enhanced_count"`
	Results       []EnhancementResult `json:"results"`
	Duration      time.Duration       `json:"duration"`
}

// QualityReport is the outcome of a coordinate sanity check over a guide.
type QualityReport struct {
	IsValid bool     `json:"is_valid"`
	Issues  []string `json:"issues,omitempty"`
	Score   float64  `json:"score"` // [0,1]
}
