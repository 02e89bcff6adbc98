package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"guidepost/pkg/geo"
	"guidepost/pkg/model"
)

func qualityResolver() *Resolver {
	return newTestResolver(&fakeProvider{}, nil)
}

func chapterAt(title string, p geo.Point) model.Chapter {
	return model.Chapter{Title: title, Coord: &p}
}

func TestQualityValidGuide(t *testing.T) {
	r := qualityResolver()
	base := geo.Point{Lat: 35.0394, Lng: 135.7292}

	guide := &model.Guide{Chapters: []model.Chapter{
		chapterAt("a", base),
		chapterAt("b", geo.Point{Lat: base.Lat + 0.001, Lng: base.Lng}),
		chapterAt("c", geo.Point{Lat: base.Lat, Lng: base.Lng + 0.001}),
	}}

	report := r.ValidateCoordinateQuality(guide)
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Issues)
	assert.InDelta(t, 1.0, report.Score, 1e-9)
}

func TestQualityIncomplete(t *testing.T) {
	r := qualityResolver()
	base := geo.Point{Lat: 35.0, Lng: 135.7}

	// 1 of 3 chapters has a coordinate: far below the completeness floor.
	guide := &model.Guide{Chapters: []model.Chapter{
		chapterAt("a", base),
		{Title: "b"},
		{Title: "c"},
	}}

	report := r.ValidateCoordinateQuality(guide)
	assert.False(t, report.IsValid)
	assert.NotEmpty(t, report.Issues)
	assert.InDelta(t, 1.0/3.0, report.Score, 1e-9)
}

func TestQualityOutOfRange(t *testing.T) {
	r := qualityResolver()

	guide := &model.Guide{Chapters: []model.Chapter{
		chapterAt("a", geo.Point{Lat: 35.0, Lng: 135.7}),
		chapterAt("b", geo.Point{Lat: 95.0, Lng: 135.7}),
	}}

	report := r.ValidateCoordinateQuality(guide)
	assert.False(t, report.IsValid)
	assert.Contains(t, report.Issues[0], "out of range")
	assert.Less(t, report.Score, 1.0)
}

func TestQualityExcessiveSpread(t *testing.T) {
	r := qualityResolver()

	// Chapters on two continents.
	guide := &model.Guide{Chapters: []model.Chapter{
		chapterAt("a", geo.Point{Lat: 35.0, Lng: 135.7}),
		chapterAt("b", geo.Point{Lat: 48.85, Lng: 2.35}),
	}}

	report := r.ValidateCoordinateQuality(guide)
	assert.False(t, report.IsValid)
	assert.NotEmpty(t, report.Issues)
	assert.Less(t, report.Score, 0.1)
}

func TestQualityEmptyGuide(t *testing.T) {
	r := qualityResolver()

	report := r.ValidateCoordinateQuality(&model.Guide{})
	assert.False(t, report.IsValid)
	assert.Equal(t, 0.0, report.Score)

	report = r.ValidateCoordinateQuality(nil)
	assert.False(t, report.IsValid)
}

func TestQualitySingleChapter(t *testing.T) {
	r := qualityResolver()

	guide := &model.Guide{Chapters: []model.Chapter{
		chapterAt("only", geo.Point{Lat: 35.0, Lng: 135.7}),
	}}

	report := r.ValidateCoordinateQuality(guide)
	assert.True(t, report.IsValid)
	assert.InDelta(t, 1.0, report.Score, 1e-9)
}
