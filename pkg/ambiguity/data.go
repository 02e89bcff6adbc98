package ambiguity

import (
	"guidepost/pkg/geo"
	"guidepost/pkg/model"
)

// entries is the curated catalog of names known to denote multiple places.
// Each candidate carries the keywords that pull context toward it.
var entries = map[string][]model.LocationCandidate{
	"cambridge": {
		{
			ID: "city-cambridge-uk", Name: "Cambridge", Type: model.TypeCity,
			Region: "England", Country: "United Kingdom", CountryCode: "GB",
			Aliases:    []string{"Cambridge"},
			Coord:      &geo.Point{Lat: 52.2053, Lng: 0.1218},
			Popularity: 9.2,
			Keywords:   []string{"university", "punting", "cam", "colleges", "england"},
		},
		{
			ID: "city-cambridge-ma", Name: "Cambridge", Type: model.TypeCity,
			Region: "Massachusetts", Country: "United States", CountryCode: "US",
			Aliases:    []string{"Cambridge"},
			Coord:      &geo.Point{Lat: 42.3736, Lng: -71.1097},
			Popularity: 8.8,
			Keywords:   []string{"harvard", "mit", "boston", "charles river"},
		},
	},
	"birmingham": {
		{
			ID: "city-birmingham-uk", Name: "Birmingham", Type: model.TypeCity,
			Region: "England", Country: "United Kingdom", CountryCode: "GB",
			Aliases:    []string{"Birmingham", "Brum"},
			Coord:      &geo.Point{Lat: 52.4862, Lng: -1.8904},
			Popularity: 7.8,
			Keywords:   []string{"midlands", "bullring", "canals", "england"},
		},
		{
			ID: "city-birmingham-al", Name: "Birmingham", Type: model.TypeCity,
			Region: "Alabama", Country: "United States", CountryCode: "US",
			Aliases:    []string{"Birmingham"},
			Coord:      &geo.Point{Lat: 33.5186, Lng: -86.8104},
			Popularity: 6.5,
			Keywords:   []string{"alabama", "civil rights", "magic city"},
		},
	},
	"paris": {
		{
			ID: "city-paris-fr", Name: "Paris", Type: model.TypeCity,
			Region: "Île-de-France", Country: "France", CountryCode: "FR",
			Aliases:    []string{"Paris", "París", "パリ"},
			Coord:      &geo.Point{Lat: 48.8566, Lng: 2.3522},
			Popularity: 9.8,
			Keywords:   []string{"seine", "louvre", "eiffel", "france"},
		},
		{
			ID: "city-paris-tx", Name: "Paris", Type: model.TypeCity,
			Region: "Texas", Country: "United States", CountryCode: "US",
			Aliases:    []string{"Paris"},
			Coord:      &geo.Point{Lat: 33.6609, Lng: -95.5555},
			Popularity: 4.5,
			Keywords:   []string{"texas", "lamar county"},
		},
	},
	"cordoba": {
		{
			ID: "city-cordoba-es", Name: "Córdoba", Type: model.TypeCity,
			Region: "Andalusia", Country: "Spain", CountryCode: "ES",
			Aliases:    []string{"Córdoba", "Cordoba", "Cordova"},
			Coord:      &geo.Point{Lat: 37.8882, Lng: -4.7794},
			Popularity: 8.0,
			Keywords:   []string{"mezquita", "moorish", "andalusia", "spain"},
		},
		{
			ID: "city-cordoba-ar", Name: "Córdoba", Type: model.TypeCity,
			Region: "Córdoba Province", Country: "Argentina", CountryCode: "AR",
			Aliases:    []string{"Córdoba", "Cordoba"},
			Coord:      &geo.Point{Lat: -31.4201, Lng: -64.1888},
			Popularity: 6.8,
			Keywords:   []string{"argentina", "sierras", "jesuit"},
		},
	},
	"naples": {
		{
			ID: "city-naples-it", Name: "Naples", Type: model.TypeCity,
			Region: "Campania", Country: "Italy", CountryCode: "IT",
			Aliases:    []string{"Naples", "Napoli", "ナポリ"},
			Coord:      &geo.Point{Lat: 40.8518, Lng: 14.2681},
			Popularity: 8.5,
			Keywords:   []string{"vesuvius", "pizza", "pompeii", "italy"},
		},
		{
			ID: "city-naples-fl", Name: "Naples", Type: model.TypeCity,
			Region: "Florida", Country: "United States", CountryCode: "US",
			Aliases:    []string{"Naples"},
			Coord:      &geo.Point{Lat: 26.1420, Lng: -81.7948},
			Popularity: 5.9,
			Keywords:   []string{"florida", "gulf", "beaches", "everglades"},
		},
	},
	"valencia": {
		{
			ID: "city-valencia-es", Name: "Valencia", Type: model.TypeCity,
			Region: "Valencian Community", Country: "Spain", CountryCode: "ES",
			Aliases:    []string{"Valencia", "València"},
			Coord:      &geo.Point{Lat: 39.4699, Lng: -0.3763},
			Popularity: 8.2,
			Keywords:   []string{"paella", "fallas", "turia", "spain"},
		},
		{
			ID: "city-valencia-ve", Name: "Valencia", Type: model.TypeCity,
			Region: "Carabobo", Country: "Venezuela", CountryCode: "VE",
			Aliases:    []string{"Valencia"},
			Coord:      &geo.Point{Lat: 10.1620, Lng: -68.0077},
			Popularity: 5.2,
			Keywords:   []string{"venezuela", "carabobo"},
		},
	},
	"san jose": {
		{
			ID: "city-san-jose-us", Name: "San Jose", Type: model.TypeCity,
			Region: "California", Country: "United States", CountryCode: "US",
			Aliases:    []string{"San Jose", "San José"},
			Coord:      &geo.Point{Lat: 37.3382, Lng: -121.8863},
			Popularity: 7.0,
			Keywords:   []string{"silicon valley", "california", "tech"},
		},
		{
			ID: "city-san-jose-cr", Name: "San José", Type: model.TypeCity,
			Region: "San José Province", Country: "Costa Rica", CountryCode: "CR",
			Aliases:    []string{"San José", "San Jose"},
			Coord:      &geo.Point{Lat: 9.9281, Lng: -84.0907},
			Popularity: 6.9,
			Keywords:   []string{"costa rica", "central valley", "capital"},
		},
	},
	"santiago": {
		{
			ID: "city-santiago-cl", Name: "Santiago", Type: model.TypeCity,
			Region: "Santiago Metropolitan", Country: "Chile", CountryCode: "CL",
			Aliases:    []string{"Santiago", "Santiago de Chile"},
			Coord:      &geo.Point{Lat: -33.4489, Lng: -70.6693},
			Popularity: 7.6,
			Keywords:   []string{"chile", "andes", "capital"},
		},
		{
			ID: "city-santiago-es", Name: "Santiago de Compostela", Type: model.TypeCity,
			Region: "Galicia", Country: "Spain", CountryCode: "ES",
			Aliases:    []string{"Santiago de Compostela", "Santiago"},
			Coord:      &geo.Point{Lat: 42.8782, Lng: -8.5448},
			Popularity: 7.4,
			Keywords:   []string{"camino", "pilgrimage", "cathedral", "galicia", "spain"},
		},
	},
}
