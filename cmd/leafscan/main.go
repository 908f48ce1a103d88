package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/verdantlabs/leafscan/internal/analyzer"
	"github.com/verdantlabs/leafscan/internal/catalog"
	"github.com/verdantlabs/leafscan/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("leafscan %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	// Logs go to stderr; stdout carries the JSON report.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	} else {
		logger.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("loading catalog")
		}
		logger.Debug().Str("path", cfg.CatalogPath).Int("signatures", cat.Len()).Msg("catalog loaded")
	}

	if len(os.Args) > 1 && os.Args[1] == "--diseases" {
		listDiseases(cat)
		return
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("reading image")
	}

	h, err := analyzer.NewHeuristic(cat)
	if err != nil {
		logger.Fatal().Err(err).Msg("building analyzer")
	}

	logger.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Float64("threshold", cfg.ConfidenceThreshold).
		Msg("analyzing image")

	result, err := h.Analyze(context.Background(), data, cfg.ConfidenceThreshold)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("analysis failed")
	}

	logger.Info().
		Str("disease", result.DiseaseDetection.PrimaryDisease).
		Float64("confidence", result.DiseaseDetection.Confidence).
		Int("health_score", result.DiseaseDetection.HealthScore).
		Bool("low_confidence", result.DiseaseDetection.LowConfidence).
		Msg("analysis complete")

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("encoding report")
	}
	fmt.Println(string(out))
}

func listDiseases(cat *catalog.Catalog) {
	fmt.Println("Known conditions:")
	fmt.Println()
	for _, sig := range cat.Entries() {
		fmt.Printf("  %-16s %-20s %-9s %s\n", sig.ID, sig.Type, sig.Severity, sig.Description)
	}
}

func printUsage() {
	fmt.Println("leafscan - heuristic plant disease screening")
	fmt.Println()
	fmt.Println("Usage: leafscan [options] <image-file>")
	fmt.Println()
	fmt.Println("Analyzes a plant photo (PNG, JPEG, GIF, WebP) and prints a JSON")
	fmt.Println("report with the detected condition, health score, and care plan.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --diseases       List the known conditions and exit")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  LEAFSCAN_CONFIDENCE_THRESHOLD=0.7   Prediction cutoff (0-1)")
	fmt.Println("  LEAFSCAN_CATALOG=/path/catalog.json Custom signature catalog")
	fmt.Println("  LEAFSCAN_LOG_LEVEL=info             Log verbosity")
}
