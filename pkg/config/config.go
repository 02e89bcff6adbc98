package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Request     RequestConfig     `yaml:"request"`
	Log         LogConfig         `yaml:"log"`
	DB          DBConfig          `yaml:"db"`
	LLM         LLMConfig         `yaml:"llm"`
	Places      PlacesConfig      `yaml:"places"`
	Geocoding   GeocodingConfig   `yaml:"geocoding"`
	Resolver    ResolverConfig    `yaml:"resolver"`
	Search      SearchConfig      `yaml:"search"`
	Validator   ValidatorConfig   `yaml:"validator"`
	MapAnalysis MapAnalysisConfig `yaml:"map_analysis"`
	Waypoint    WaypointConfig    `yaml:"waypoint"`
}

// RequestConfig holds HTTP request settings.
type RequestConfig struct {
	Retries int           `yaml:"retries"`
	Timeout Duration      `yaml:"timeout"`
	Backoff BackoffConfig `yaml:"backoff"`
	Stagger Duration      `yaml:"stagger"` // gap between queued requests per provider
}

// BackoffConfig holds exponential backoff settings.
type BackoffConfig struct {
	BaseDelay Duration `yaml:"base_delay"`
	MaxDelay  Duration `yaml:"max_delay"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Server   LogSettings `yaml:"server"`
	Requests LogSettings `yaml:"requests"`
	LLM      LogSettings `yaml:"llm"`
}

// LogSettings holds settings for a specific logger.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DBConfig holds database settings.
type DBConfig struct {
	Path string `yaml:"path"`
}

// LLMConfig holds settings for the generative text provider.
type LLMConfig struct {
	Provider    string            `yaml:"provider"` // "gemini", "mock"
	Model       string            `yaml:"model"`
	Key         string            `yaml:"key"`
	Profiles    map[string]string `yaml:"profiles"`    // intent -> model override
	Temperature float32           `yaml:"temperature"` // low: classification, not generation
}

// PlacesConfig holds settings for the place-search provider.
type PlacesConfig struct {
	Key      string `yaml:"key"`
	BaseURL  string `yaml:"base_url"`
	Language string `yaml:"language"`
}

// GeocodingConfig holds settings for the geocoding provider.
type GeocodingConfig struct {
	Key     string `yaml:"key"`
	BaseURL string `yaml:"base_url"`
}

// ContextWeights are the additive scores used when resolving an ambiguous
// name against surrounding text. Only the relative ordering matters
// (region > alias > keyword > popularity tie-break); the exact values are
// tunable, not calibrated.
type ContextWeights struct {
	Keyword    float64 `yaml:"keyword"`
	Alias      float64 `yaml:"alias"`
	Region     float64 `yaml:"region"`
	Popularity float64 `yaml:"popularity"` // tie-break factor, multiplied by popularity/10
}

// ResolverConfig holds settings for the classification chain.
type ResolverConfig struct {
	CacheTTL         Duration       `yaml:"cache_ttl"`          // confident results
	LowConfidenceTTL Duration       `yaml:"low_confidence_ttl"` // AI-derived, low confidence
	SweepInterval    Duration       `yaml:"sweep_interval"`     // cache eviction cadence
	ConfidentAbove   float64        `yaml:"confident_above"`    // threshold between the two TTLs
	FuzzyThreshold   int            `yaml:"fuzzy_threshold"`    // max edit distance for gazetteer fuzzy match
	GuideKnownBoost  float64        `yaml:"guide_known_boost"`  // confidence boost when a guide already exists
	Context          ContextWeights `yaml:"context"`
}

// SearchConfig holds settings for the external search aggregator.
type SearchConfig struct {
	MaxVariants   int      `yaml:"max_variants"`
	Stagger       Duration `yaml:"stagger"`        // delay between variant launches
	BranchTimeout Duration `yaml:"branch_timeout"` // per-variant timeout
}

// ValidatorConfig holds settings for coordinate self-validation.
// The thresholds are configuration, not constants: the 10m/50m defaults have
// no documented derivation.
type ValidatorConfig struct {
	AcceptDistance Distance `yaml:"accept_distance"`
	SearchRadius   Distance `yaml:"search_radius"`
	MinConfidence  float64  `yaml:"min_confidence"`
}

// MapAnalysisConfig holds settings for the anchor-selection state machine.
type MapAnalysisConfig struct {
	Rings        []Distance `yaml:"rings"`         // concentric neighborhood radii
	TypeFilters  []string   `yaml:"type_filters"`  // facility types gathered per ring
	CandidateCap int        `yaml:"candidate_cap"` // max candidates passed to AI selection
}

// WaypointConfig holds settings for geometric waypoint synthesis.
type WaypointConfig struct {
	BaseRadius Distance `yaml:"base_radius"`
	MaxRadius  Distance `yaml:"max_radius"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Request: RequestConfig{
			Retries: 3,
			Timeout: Duration(30 * time.Second),
			Backoff: BackoffConfig{
				BaseDelay: Duration(500 * time.Millisecond),
				MaxDelay:  Duration(30 * time.Second),
			},
			Stagger: Duration(100 * time.Millisecond),
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/server.log",
				Level: "INFO",
			},
			Requests: LogSettings{
				Path:  "./logs/requests.log",
				Level: "INFO",
			},
			LLM: LogSettings{
				Path:  "./logs/llm.log",
				Level: "INFO",
			},
		},
		DB: DBConfig{
			Path: "./data/guidepost.db",
		},
		LLM: LLMConfig{
			Provider:    "gemini",
			Model:       "gemini-2.5-flash-lite",
			Key:         "",
			Temperature: 0.1,
			Profiles: map[string]string{
				"classify": "gemini-2.5-flash-lite",
				"select":   "gemini-2.5-flash",
				"validate": "gemini-2.5-flash-lite",
			},
		},
		Places: PlacesConfig{
			BaseURL:  "https://maps.googleapis.com/maps/api/place",
			Language: "en",
		},
		Geocoding: GeocodingConfig{
			BaseURL: "https://maps.googleapis.com/maps/api/geocode",
		},
		Resolver: ResolverConfig{
			CacheTTL:         Duration(30 * time.Minute),
			LowConfidenceTTL: Duration(5 * time.Minute),
			SweepInterval:    Duration(1 * time.Minute),
			ConfidentAbove:   0.7,
			FuzzyThreshold:   2,
			GuideKnownBoost:  0.15,
			Context: ContextWeights{
				Keyword:    1.0,
				Alias:      2.0,
				Region:     3.0,
				Popularity: 0.1,
			},
		},
		Search: SearchConfig{
			MaxVariants:   8,
			Stagger:       Duration(200 * time.Millisecond),
			BranchTimeout: Duration(4 * time.Second),
		},
		Validator: ValidatorConfig{
			AcceptDistance: Distance(10),
			SearchRadius:   Distance(50),
			MinConfidence:  0.8,
		},
		MapAnalysis: MapAnalysisConfig{
			Rings:        []Distance{Distance(500), Distance(1000), Distance(2000)},
			TypeFilters:  []string{"tourist_attraction", "transit_station", "point_of_interest"},
			CandidateCap: 25,
		},
		Waypoint: WaypointConfig{
			BaseRadius: Distance(10),
			MaxRadius:  Distance(50),
		},
	}
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, defaults are merged under existing values but the file
// is NOT rewritten, to preserve user formatting and comments.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg.applyEnv()
		return cfg, nil
	}

	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv fills empty API keys from the environment. A key missing in both
// places is not an error: the resolver degrades to offline heuristics.
func (c *Config) applyEnv() {
	if c.LLM.Key == "" {
		c.LLM.Key = os.Getenv("GEMINI_API_KEY")
	}
	if c.Places.Key == "" {
		if key := os.Getenv("PLACES_API_KEY"); key != "" {
			c.Places.Key = key
		} else {
			c.Places.Key = os.Getenv("GOOGLE_MAPS_API_KEY")
		}
	}
	if c.Geocoding.Key == "" {
		if key := os.Getenv("GEOCODING_API_KEY"); key != "" {
			c.Geocoding.Key = key
		} else {
			c.Geocoding.Key = os.Getenv("GOOGLE_MAPS_API_KEY")
		}
	}
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Guidepost Configuration
# ----------------------
# Supported units:
#   Duration: ns, us, ms, s, m, h, d (day), w (week)
#   Distance: m (meters), km (kilometers)

`)
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return Save(path, DefaultConfig())
}
