package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"guidepost/pkg/ambiguity"
	"guidepost/pkg/classifier"
	"guidepost/pkg/config"
	"guidepost/pkg/gazetteer"
	"guidepost/pkg/geo"
	"guidepost/pkg/geocode"
	"guidepost/pkg/llm/gemini"
	"guidepost/pkg/logging"
	"guidepost/pkg/mapanalysis"
	"guidepost/pkg/model"
	"guidepost/pkg/places"
	"guidepost/pkg/probe"
	"guidepost/pkg/request"
	"guidepost/pkg/resolver"
	"guidepost/pkg/search"
	"guidepost/pkg/store"
	"guidepost/pkg/tracker"
	"guidepost/pkg/validate"
	"guidepost/pkg/version"
	"guidepost/pkg/waypoint"
)

const defaultConfigPath = "configs/guidepost.yaml"

func usage() {
	fmt.Fprintf(os.Stderr, `Guidepost location resolver %s

Usage:
  guidepost [flags] classify <name>
  guidepost [flags] enhance <name> [lat lng]
  guidepost [flags] enhance-guide <guide.json>
  guidepost [flags] quality <guide.json>
  guidepost --init-config

Flags:
`, version.Version)
	flag.PrintDefaults()
}

var (
	initConfig = flag.Bool("init-config", false, "generate a default config file and exit")
	configPath = flag.String("config", defaultConfigPath, "path to the config file")
	regionHint = flag.String("region", "", "region or country hint for classification")
	contextArg = flag.String("context", "", "surrounding text for disambiguation")
	skipProbes = flag.Bool("skip-probes", false, "skip startup dependency checks")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *initConfig {
		if err := config.GenerateDefault(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated:", *configPath)
		return
	}

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	if err := run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Keys may come from a local .env; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("Guidepost started", "version", version.Version)

	st, err := store.Open(cfg.DB.Path, time.Duration(cfg.Resolver.CacheTTL))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer st.Close()

	tr := tracker.New()
	httpClient := request.New(cfg.Request, st, tr)

	llmClient, err := gemini.NewClient(cfg.LLM, cfg.Log.LLM.Path, tr)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	defer llmClient.Close()

	placesClient := places.New(cfg.Places, httpClient)
	geocodeClient := geocode.New(cfg.Geocoding, httpClient)
	cls := classifier.New(llmClient)

	res := resolver.New(cfg.Resolver, resolver.Deps{
		Gazetteer:   gazetteer.New(cfg.Resolver.FuzzyThreshold),
		Catalog:     ambiguity.New(cfg.Resolver.Context),
		Classifier:  cls,
		Aggregator:  search.New(cfg.Search, placesClient, tr),
		Guides:      st,
		Places:      placesClient,
		Corrector:   validate.New(cfg.Validator, placesClient, cls),
		Selector:    mapanalysis.New(cfg.MapAnalysis, placesClient, geocodeClient, cls),
		Synthesizer: waypoint.New(cfg.Waypoint),
	})
	res.StartSweeper(ctx)

	if !*skipProbes {
		if err := runProbes(ctx, llmClient, placesClient, geocodeClient); err != nil {
			return fmt.Errorf("startup checks failed: %w", err)
		}
	}

	defer logStats(tr)

	switch args[0] {
	case "classify":
		return cmdClassify(ctx, res, args[1:])
	case "enhance":
		return cmdEnhance(ctx, res, args[1:])
	case "enhance-guide":
		return cmdEnhanceGuide(ctx, res, args[1:])
	case "quality":
		return cmdQuality(res, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// runProbes verifies external dependencies. Only the LLM is critical; the
// map providers are optional and the resolver degrades without them.
func runProbes(ctx context.Context, llm *gemini.Client, p *places.Client, g *geocode.Client) error {
	checks := []probe.Check{
		{Name: "LLM Provider", Run: llm.HealthCheck, Critical: false},
		{Name: "Places API", Run: availableCheck(p.Available), Critical: false},
		{Name: "Geocoding API", Run: availableCheck(g.Available), Critical: false},
	}
	return probe.Evaluate(probe.RunAll(ctx, checks))
}

func availableCheck(available func() bool) func(context.Context) error {
	return func(context.Context) error {
		if !available() {
			return fmt.Errorf("no API key configured")
		}
		return nil
	}
}

func cmdClassify(ctx context.Context, res *resolver.Resolver, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: classify <name>")
	}

	result, err := res.Classify(ctx, model.LocationQuery{
		Text:       args[0],
		Context:    *contextArg,
		RegionHint: *regionHint,
	})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func cmdEnhance(ctx context.Context, res *resolver.Resolver, args []string) error {
	var original *geo.Point
	switch len(args) {
	case 1:
	case 3:
		var p geo.Point
		if _, err := fmt.Sscanf(args[1], "%f", &p.Lat); err != nil {
			return fmt.Errorf("invalid latitude %q", args[1])
		}
		if _, err := fmt.Sscanf(args[2], "%f", &p.Lng); err != nil {
			return fmt.Errorf("invalid longitude %q", args[2])
		}
		original = &p
	default:
		return fmt.Errorf("usage: enhance <name> [lat lng]")
	}

	result, err := res.EnhanceCoordinates(ctx, args[0], *contextArg, original)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func cmdEnhanceGuide(ctx context.Context, res *resolver.Resolver, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: enhance-guide <guide.json>")
	}

	guide, err := loadGuide(args[0])
	if err != nil {
		return err
	}

	enhanced, report, err := res.EnhanceGuideCoordinates(ctx, guide.Name, guide)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"guide": enhanced, "report": report})
}

func cmdQuality(res *resolver.Resolver, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: quality <guide.json>")
	}

	guide, err := loadGuide(args[0])
	if err != nil {
		return err
	}
	return printJSON(res.ValidateCoordinateQuality(guide))
}

func loadGuide(path string) (*model.Guide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read guide: %w", err)
	}
	var guide model.Guide
	if err := json.Unmarshal(data, &guide); err != nil {
		return nil, fmt.Errorf("failed to parse guide: %w", err)
	}
	return &guide, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func logStats(tr *tracker.Tracker) {
	for provider, stats := range tr.Snapshot() {
		slog.Info("provider usage", "provider", provider,
			"cache_hits", stats.CacheHits, "cache_misses", stats.CacheMisses,
			"api_success", stats.APISuccess, "api_failures", stats.APIFailures)
	}
}
