package gazetteer

import (
	"guidepost/pkg/geo"
	"guidepost/pkg/model"
)

// DataVersion identifies the revision of the static table below.
const DataVersion = "2026-08-15"

// Record is one known entity. Records are plain data: the resolver logic is
// generic over the dataset and never branches on individual names.
// Aliases are stored verbatim (multilingual, no diacritic stripping).
type Record struct {
	ID          string
	Name        string
	Type        model.PlaceType
	Region      string
	Country     string
	CountryCode string
	Aliases     []string
	Coord       *geo.Point
	Popularity  float64
	Keywords    []string
}

var records = []Record{
	// Countries
	{
		ID: "country-japan", Name: "Japan", Type: model.TypeCountry,
		Country: "Japan", CountryCode: "JP",
		Aliases:    []string{"Japan", "日本", "Nippon", "Nihon", "Japón", "Japon"},
		Coord:      &geo.Point{Lat: 36.2048, Lng: 138.2529},
		Popularity: 9.5,
		Keywords:   []string{"island", "asia"},
	},
	{
		ID: "country-spain", Name: "Spain", Type: model.TypeCountry,
		Country: "Spain", CountryCode: "ES",
		Aliases:    []string{"Spain", "España", "Espagne", "スペイン"},
		Coord:      &geo.Point{Lat: 40.4637, Lng: -3.7492},
		Popularity: 9.3,
		Keywords:   []string{"iberia", "europe"},
	},
	{
		ID: "country-france", Name: "France", Type: model.TypeCountry,
		Country: "France", CountryCode: "FR",
		Aliases:    []string{"France", "Francia", "フランス"},
		Coord:      &geo.Point{Lat: 46.2276, Lng: 2.2137},
		Popularity: 9.6,
		Keywords:   []string{"europe"},
	},
	{
		ID: "country-uk", Name: "United Kingdom", Type: model.TypeCountry,
		Country: "United Kingdom", CountryCode: "GB",
		Aliases:    []string{"United Kingdom", "UK", "Great Britain", "Reino Unido", "イギリス"},
		Coord:      &geo.Point{Lat: 55.3781, Lng: -3.4360},
		Popularity: 9.2,
		Keywords:   []string{"britain", "europe"},
	},
	{
		ID: "country-italy", Name: "Italy", Type: model.TypeCountry,
		Country: "Italy", CountryCode: "IT",
		Aliases:    []string{"Italy", "Italia", "Italie", "イタリア"},
		Coord:      &geo.Point{Lat: 41.8719, Lng: 12.5674},
		Popularity: 9.4,
		Keywords:   []string{"europe"},
	},
	{
		ID: "country-usa", Name: "United States", Type: model.TypeCountry,
		Country: "United States", CountryCode: "US",
		Aliases:    []string{"United States", "USA", "United States of America", "Estados Unidos", "アメリカ"},
		Coord:      &geo.Point{Lat: 37.0902, Lng: -95.7129},
		Popularity: 9.0,
		Keywords:   []string{"america"},
	},

	// Provinces / regions
	{
		ID: "province-andalusia", Name: "Andalusia", Type: model.TypeProvince,
		Region: "Andalusia", Country: "Spain", CountryCode: "ES",
		Aliases:    []string{"Andalusia", "Andalucía", "Andalousie", "アンダルシア"},
		Coord:      &geo.Point{Lat: 37.5443, Lng: -4.7278},
		Popularity: 8.2,
		Keywords:   []string{"flamenco", "moorish", "south"},
	},
	{
		ID: "province-catalonia", Name: "Catalonia", Type: model.TypeProvince,
		Region: "Catalonia", Country: "Spain", CountryCode: "ES",
		Aliases:    []string{"Catalonia", "Cataluña", "Catalunya", "カタルーニャ"},
		Coord:      &geo.Point{Lat: 41.5912, Lng: 1.5209},
		Popularity: 8.4,
		Keywords:   []string{"barcelona", "mediterranean"},
	},
	{
		ID: "province-kansai", Name: "Kansai", Type: model.TypeProvince,
		Region: "Kansai", Country: "Japan", CountryCode: "JP",
		Aliases:    []string{"Kansai", "関西", "Kinki", "近畿"},
		Coord:      &geo.Point{Lat: 34.8, Lng: 135.5},
		Popularity: 8.0,
		Keywords:   []string{"osaka", "kyoto", "nara"},
	},
	{
		ID: "province-ile-de-france", Name: "Île-de-France", Type: model.TypeProvince,
		Region: "Île-de-France", Country: "France", CountryCode: "FR",
		Aliases:    []string{"Île-de-France", "Ile-de-France", "イル＝ド＝フランス"},
		Coord:      &geo.Point{Lat: 48.8499, Lng: 2.6370},
		Popularity: 8.3,
		Keywords:   []string{"paris", "capital region"},
	},

	// Cities
	{
		ID: "city-seville", Name: "Seville", Type: model.TypeCity,
		Region: "Andalusia", Country: "Spain", CountryCode: "ES",
		Aliases:    []string{"Seville", "Sevilla", "Séville", "セビリア", "セビージャ"},
		Coord:      &geo.Point{Lat: 37.3891, Lng: -5.9845},
		Popularity: 8.6,
		Keywords:   []string{"flamenco", "cathedral", "guadalquivir", "alcazar"},
	},
	{
		ID: "city-paris", Name: "Paris", Type: model.TypeCity,
		Region: "Île-de-France", Country: "France", CountryCode: "FR",
		Aliases:    []string{"Paris", "París", "Parigi", "パリ"},
		Coord:      &geo.Point{Lat: 48.8566, Lng: 2.3522},
		Popularity: 9.8,
		Keywords:   []string{"seine", "louvre", "capital"},
	},
	{
		ID: "city-london", Name: "London", Type: model.TypeCity,
		Region: "England", Country: "United Kingdom", CountryCode: "GB",
		Aliases:    []string{"London", "Londres", "Londra", "ロンドン"},
		Coord:      &geo.Point{Lat: 51.5074, Lng: -0.1278},
		Popularity: 9.7,
		Keywords:   []string{"thames", "capital"},
	},
	{
		ID: "city-kyoto", Name: "Kyoto", Type: model.TypeCity,
		Region: "Kansai", Country: "Japan", CountryCode: "JP",
		Aliases:    []string{"Kyoto", "京都", "Kioto", "キョウト"},
		Coord:      &geo.Point{Lat: 35.0116, Lng: 135.7681},
		Popularity: 9.2,
		Keywords:   []string{"temple", "geisha", "shrine", "imperial"},
	},
	{
		ID: "city-tokyo", Name: "Tokyo", Type: model.TypeCity,
		Region: "Kanto", Country: "Japan", CountryCode: "JP",
		Aliases:    []string{"Tokyo", "東京", "Tokio", "トウキョウ"},
		Coord:      &geo.Point{Lat: 35.6762, Lng: 139.6503},
		Popularity: 9.6,
		Keywords:   []string{"capital", "shibuya", "metropolis"},
	},
	{
		ID: "city-barcelona", Name: "Barcelona", Type: model.TypeCity,
		Region: "Catalonia", Country: "Spain", CountryCode: "ES",
		Aliases:    []string{"Barcelona", "Barcelone", "バルセロナ"},
		Coord:      &geo.Point{Lat: 41.3874, Lng: 2.1686},
		Popularity: 9.3,
		Keywords:   []string{"gaudi", "mediterranean", "gothic"},
	},
	{
		ID: "city-granada", Name: "Granada", Type: model.TypeCity,
		Region: "Andalusia", Country: "Spain", CountryCode: "ES",
		Aliases:    []string{"Granada", "Grenade", "グラナダ"},
		Coord:      &geo.Point{Lat: 37.1773, Lng: -3.5986},
		Popularity: 8.1,
		Keywords:   []string{"alhambra", "moorish", "sierra nevada"},
	},
	{
		ID: "city-rome", Name: "Rome", Type: model.TypeCity,
		Region: "Lazio", Country: "Italy", CountryCode: "IT",
		Aliases:    []string{"Rome", "Roma", "ローマ"},
		Coord:      &geo.Point{Lat: 41.9028, Lng: 12.4964},
		Popularity: 9.5,
		Keywords:   []string{"ancient", "vatican", "capital"},
	},
	{
		ID: "city-florence", Name: "Florence", Type: model.TypeCity,
		Region: "Tuscany", Country: "Italy", CountryCode: "IT",
		Aliases:    []string{"Florence", "Firenze", "フィレンツェ"},
		Coord:      &geo.Point{Lat: 43.7696, Lng: 11.2558},
		Popularity: 8.9,
		Keywords:   []string{"renaissance", "duomo", "uffizi"},
	},

	// Districts
	{
		ID: "district-montmartre", Name: "Montmartre", Type: model.TypeDistrict,
		Region: "Île-de-France", Country: "France", CountryCode: "FR",
		Aliases:    []string{"Montmartre", "モンマルトル"},
		Coord:      &geo.Point{Lat: 48.8867, Lng: 2.3431},
		Popularity: 8.0,
		Keywords:   []string{"sacre-coeur", "artists", "hill"},
	},
	{
		ID: "district-gion", Name: "Gion", Type: model.TypeDistrict,
		Region: "Kansai", Country: "Japan", CountryCode: "JP",
		Aliases:    []string{"Gion", "祇園", "ギオン"},
		Coord:      &geo.Point{Lat: 35.0037, Lng: 135.7751},
		Popularity: 7.9,
		Keywords:   []string{"geisha", "teahouse", "kyoto"},
	},
	{
		ID: "district-shibuya", Name: "Shibuya", Type: model.TypeDistrict,
		Region: "Kanto", Country: "Japan", CountryCode: "JP",
		Aliases:    []string{"Shibuya", "渋谷", "シブヤ"},
		Coord:      &geo.Point{Lat: 35.6580, Lng: 139.7016},
		Popularity: 8.2,
		Keywords:   []string{"crossing", "tokyo", "nightlife"},
	},

	// Landmarks
	{
		ID: "landmark-eiffel-tower", Name: "Eiffel Tower", Type: model.TypeLandmark,
		Region: "Île-de-France", Country: "France", CountryCode: "FR",
		Aliases:    []string{"Eiffel Tower", "Tour Eiffel", "Torre Eiffel", "エッフェル塔"},
		Coord:      &geo.Point{Lat: 48.8584, Lng: 2.2945},
		Popularity: 9.9,
		Keywords:   []string{"iron", "tower", "paris", "champ de mars"},
	},
	{
		ID: "landmark-sagrada-familia", Name: "Sagrada Família", Type: model.TypeLandmark,
		Region: "Catalonia", Country: "Spain", CountryCode: "ES",
		Aliases:    []string{"Sagrada Família", "Sagrada Familia", "サグラダ・ファミリア"},
		Coord:      &geo.Point{Lat: 41.4036, Lng: 2.1744},
		Popularity: 9.4,
		Keywords:   []string{"gaudi", "basilica", "barcelona"},
	},
	{
		ID: "landmark-alhambra", Name: "Alhambra", Type: model.TypeLandmark,
		Region: "Andalusia", Country: "Spain", CountryCode: "ES",
		Aliases:    []string{"Alhambra", "La Alhambra", "アルハンブラ宮殿"},
		Coord:      &geo.Point{Lat: 37.1760, Lng: -3.5881},
		Popularity: 9.1,
		Keywords:   []string{"palace", "moorish", "granada", "fortress"},
	},
	{
		ID: "landmark-fushimi-inari", Name: "Fushimi Inari Taisha", Type: model.TypeLandmark,
		Region: "Kansai", Country: "Japan", CountryCode: "JP",
		Aliases:    []string{"Fushimi Inari Taisha", "Fushimi Inari", "伏見稲荷大社", "伏見稲荷"},
		Coord:      &geo.Point{Lat: 34.9671, Lng: 135.7727},
		Popularity: 9.0,
		Keywords:   []string{"torii", "shrine", "fox", "kyoto"},
	},
	{
		ID: "landmark-kinkakuji", Name: "Kinkaku-ji", Type: model.TypeLandmark,
		Region: "Kansai", Country: "Japan", CountryCode: "JP",
		Aliases:    []string{"Kinkaku-ji", "Kinkakuji", "金閣寺", "Golden Pavilion"},
		Coord:      &geo.Point{Lat: 35.0394, Lng: 135.7292},
		Popularity: 8.8,
		Keywords:   []string{"golden", "temple", "zen", "kyoto"},
	},
	{
		ID: "landmark-big-ben", Name: "Big Ben", Type: model.TypeLandmark,
		Region: "England", Country: "United Kingdom", CountryCode: "GB",
		Aliases:    []string{"Big Ben", "Elizabeth Tower", "ビッグ・ベン"},
		Coord:      &geo.Point{Lat: 51.5007, Lng: -0.1246},
		Popularity: 8.9,
		Keywords:   []string{"clock", "westminster", "london"},
	},
	{
		ID: "landmark-colosseum", Name: "Colosseum", Type: model.TypeLandmark,
		Region: "Lazio", Country: "Italy", CountryCode: "IT",
		Aliases:    []string{"Colosseum", "Colosseo", "コロッセオ"},
		Coord:      &geo.Point{Lat: 41.8902, Lng: 12.4922},
		Popularity: 9.5,
		Keywords:   []string{"amphitheatre", "ancient", "rome", "gladiator"},
	},
	{
		ID: "landmark-statue-of-liberty", Name: "Statue of Liberty", Type: model.TypeLandmark,
		Region: "New York", Country: "United States", CountryCode: "US",
		Aliases:    []string{"Statue of Liberty", "Estatua de la Libertad", "自由の女神像"},
		Coord:      &geo.Point{Lat: 40.6892, Lng: -74.0445},
		Popularity: 9.2,
		Keywords:   []string{"liberty island", "new york", "harbor"},
	},
	{
		ID: "landmark-giralda", Name: "La Giralda", Type: model.TypeLandmark,
		Region: "Andalusia", Country: "Spain", CountryCode: "ES",
		Aliases:    []string{"La Giralda", "Giralda", "ヒラルダの塔"},
		Coord:      &geo.Point{Lat: 37.3861, Lng: -5.9926},
		Popularity: 8.3,
		Keywords:   []string{"bell tower", "cathedral", "seville", "minaret"},
	},

	// Attractions
	{
		ID: "attraction-park-guell", Name: "Park Güell", Type: model.TypeAttraction,
		Region: "Catalonia", Country: "Spain", CountryCode: "ES",
		Aliases:    []string{"Park Güell", "Parc Güell", "Park Guell", "グエル公園"},
		Coord:      &geo.Point{Lat: 41.4145, Lng: 2.1527},
		Popularity: 8.7,
		Keywords:   []string{"gaudi", "mosaic", "park", "barcelona"},
	},
	{
		ID: "attraction-arashiyama", Name: "Arashiyama Bamboo Grove", Type: model.TypeAttraction,
		Region: "Kansai", Country: "Japan", CountryCode: "JP",
		Aliases:    []string{"Arashiyama Bamboo Grove", "Arashiyama", "嵐山", "竹林の小径"},
		Coord:      &geo.Point{Lat: 35.0170, Lng: 135.6719},
		Popularity: 8.4,
		Keywords:   []string{"bamboo", "forest", "kyoto", "river"},
	},
}
