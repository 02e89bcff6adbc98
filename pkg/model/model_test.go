package model

import (
	"testing"

	"guidepost/pkg/geo"
)

func TestPlaceTypeLevel(t *testing.T) {
	tests := []struct {
		typ  PlaceType
		want int
	}{
		{TypeCountry, 1},
		{TypeProvince, 2},
		{TypeCity, 3},
		{TypeDistrict, 4},
		{TypeLandmark, 4},
		{TypeAttraction, 4},
		{PlaceType("garbage"), 4},
	}
	for _, tt := range tests {
		if got := tt.typ.Level(); got != tt.want {
			t.Errorf("%s.Level() = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestPlaceTypePage(t *testing.T) {
	for _, typ := range []PlaceType{TypeCountry, TypeProvince, TypeCity} {
		if typ.Page() != PageRegionExplorer {
			t.Errorf("%s should route to region explorer", typ)
		}
	}
	for _, typ := range []PlaceType{TypeDistrict, TypeLandmark, TypeAttraction} {
		if typ.Page() != PageDetail {
			t.Errorf("%s should route to detail page", typ)
		}
	}
}

func TestGuideClone(t *testing.T) {
	orig := &Guide{
		Name:     "Kyoto",
		Language: "en",
		Chapters: []Chapter{
			{Title: "Gate", Coord: &geo.Point{Lat: 34.967, Lng: 135.772}},
			{Title: "Path"},
		},
	}

	clone := orig.Clone()
	clone.Chapters[0].Coord.Lat = 0
	clone.Chapters[1].Coord = &geo.Point{Lat: 1, Lng: 1}

	if orig.Chapters[0].Coord.Lat != 34.967 {
		t.Error("Clone shares coordinate pointers with the original")
	}
	if orig.Chapters[1].Coord != nil {
		t.Error("Clone mutation leaked into the original")
	}
}
