// Package main is the phonegen sampling tool. It prints randomly generated
// phone numbers for a region and format selection, reproducible by seed.
//
// Configuration comes from PHONEGEN_* environment variables:
// PHONEGEN_REGIONS (comma-separated "cc:CODE" pairs), PHONEGEN_FORMATS
// (comma-separated format labels), PHONEGEN_COUNT, PHONEGEN_SEED,
// PHONEGEN_LOG_LEVEL, PHONEGEN_LOG_FORMAT.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/leanovate/gopter"

	"github.com/auth-platform/phonegen"
	"github.com/auth-platform/phonegen/strategy"
)

type config struct {
	Regions   string `koanf:"regions"`
	Formats   string `koanf:"formats"`
	Count     int    `koanf:"count"`
	Seed      int64  `koanf:"seed"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

func defaults() *config {
	return &config{
		Count:     10,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := defaults()
	k := koanf.New(".")
	if err := k.Load(env.Provider("PHONEGEN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PHONEGEN_"))
	}), nil); err != nil {
		return fmt.Errorf("load env config: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)

	var opts []strategy.Option
	if cfg.Regions != "" {
		opts = append(opts, strategy.WithRegionStrings(split(cfg.Regions)...))
	}
	if cfg.Formats != "" {
		opts = append(opts, strategy.WithFormatLabels(split(cfg.Formats)...))
	}

	cat, err := phonegen.Catalog()
	if err != nil {
		return err
	}
	s, err := strategy.New(cat, opts...)
	if err != nil {
		return err
	}
	logger.Info("strategy ready",
		slog.Int("catalog_regions", cat.Len()),
		slog.Int("regions", len(s.Regions())),
		slog.Int("formats", len(s.Formats())))

	params := gopter.DefaultGenParameters()
	if cfg.Seed != 0 {
		params.Rng = rand.New(rand.NewSource(cfg.Seed))
	}
	generate := strategy.Gen(s)
	for i := 0; i < cfg.Count; i++ {
		result := generate(params)
		value, ok := result.Retrieve()
		if !ok {
			return fmt.Errorf("draw %d: empty search space", i)
		}
		selectedRegion, selectedFormat, _ := s.LastSelection()
		logger.Info("sample",
			slog.String("region", selectedRegion.String()),
			slog.String("format", selectedFormat.String()))
		fmt.Println(value)
	}
	return nil
}

// newLogger builds a structured logger on stderr so samples on stdout stay
// pipeable.
func newLogger(level, logFormat string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.ToLower(logFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func split(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
