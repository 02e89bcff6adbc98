package resolver

import (
	"fmt"

	"guidepost/pkg/geo"
	"guidepost/pkg/model"
)

// Quality thresholds. A guide passes when at least this fraction of chapters
// carries a coordinate and the chapters cluster within this radius of their
// centroid.
const (
	minCompleteness = 0.8
	maxSpreadMeters = 10000.0
)

// ValidateCoordinateQuality runs coordinate sanity checks over a guide:
// range validity, completeness, and geographic spread. The report lists
// every issue found; the score folds the three checks into [0,1].
func (r *Resolver) ValidateCoordinateQuality(guide *model.Guide) *model.QualityReport {
	report := &model.QualityReport{}
	if guide == nil || len(guide.Chapters) == 0 {
		report.Issues = append(report.Issues, "guide has no chapters")
		return report
	}

	total := len(guide.Chapters)
	withCoord := 0
	valid := 0
	var pts []geo.Point
	for i, ch := range guide.Chapters {
		if ch.Coord == nil {
			report.Issues = append(report.Issues, fmt.Sprintf("chapter %d (%s): no coordinate", i, ch.Title))
			continue
		}
		withCoord++
		if !geo.Valid(*ch.Coord) {
			report.Issues = append(report.Issues, fmt.Sprintf("chapter %d (%s): coordinate out of range", i, ch.Title))
			continue
		}
		valid++
		pts = append(pts, *ch.Coord)
	}

	completeness := float64(withCoord) / float64(total)
	if completeness < minCompleteness {
		report.Issues = append(report.Issues, fmt.Sprintf("only %d of %d chapters have coordinates", withCoord, total))
	}

	rangeOK := withCoord == 0 || valid == withCoord

	spreadOK := true
	spreadScore := 1.0
	if len(pts) > 1 {
		spread := avgSpread(pts)
		if spread > maxSpreadMeters {
			spreadOK = false
			report.Issues = append(report.Issues,
				fmt.Sprintf("chapters spread %.1fkm around their centroid", spread/1000))
			spreadScore = maxSpreadMeters / spread
		}
	}

	rangeScore := 1.0
	if withCoord > 0 {
		rangeScore = float64(valid) / float64(withCoord)
	}

	report.Score = completeness * rangeScore * spreadScore
	report.IsValid = rangeOK && spreadOK && completeness >= minCompleteness
	return report
}

// avgSpread is the mean distance of the points from their centroid.
// A centroid over raw degrees is fine at guide scale; guides span
// kilometers, not hemispheres.
func avgSpread(pts []geo.Point) float64 {
	var cLat, cLng float64
	for _, p := range pts {
		cLat += p.Lat
		cLng += p.Lng
	}
	centroid := geo.Point{Lat: cLat / float64(len(pts)), Lng: cLng / float64(len(pts))}

	var sum float64
	for _, p := range pts {
		sum += geo.Distance(centroid, p)
	}
	return sum / float64(len(pts))
}
