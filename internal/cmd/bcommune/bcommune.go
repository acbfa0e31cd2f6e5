// Package bcommune parses workspace command flags and launches the workspace
// runtime: the seeded store, the notification simulator, and the share server.
package bcommune

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mohanvarma22/bcommune/internal/ai"
	entrypoint "github.com/mohanvarma22/bcommune/internal/platform/cmd"
	"github.com/mohanvarma22/bcommune/internal/seed"
	"github.com/mohanvarma22/bcommune/internal/share"
	"github.com/mohanvarma22/bcommune/internal/simulator"
	"github.com/mohanvarma22/bcommune/internal/store"
)

// Config holds workspace command configuration.
type Config struct {
	ShareAddr         string        `env:"BCOMMUNE_SHARE_ADDR" envDefault:":8080"`
	SimulatorInterval time.Duration `env:"BCOMMUNE_SIMULATOR_INTERVAL" envDefault:"20s"`
	SimulatorSeed     int64         `env:"BCOMMUNE_SIMULATOR_SEED"`
	GeminiAPIKey      string        `env:"BCOMMUNE_GEMINI_API_KEY"`
	GeminiModel       string        `env:"BCOMMUNE_GEMINI_MODEL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.ShareAddr, "share-addr", cfg.ShareAddr, "The shared-dashboard HTTP server address")
	fs.DurationVar(&cfg.SimulatorInterval, "simulator-interval", cfg.SimulatorInterval, "The notification simulator tick interval")
	fs.Int64Var(&cfg.SimulatorSeed, "simulator-seed", cfg.SimulatorSeed, "The simulator RNG seed (0 = time-based)")
	fs.StringVar(&cfg.GeminiModel, "gemini-model", cfg.GeminiModel, "The Gemini model for applicant analysis")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the workspace runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWorkspace, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) error {
	var opts []store.Option
	if strings.TrimSpace(cfg.GeminiAPIKey) != "" {
		advisor, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("configure advisor: %w", err)
		}
		opts = append(opts, store.WithAdvisor(advisor))
	} else {
		log.Printf("no Gemini API key configured; applicant enrichment disabled")
	}

	s, err := store.New(seed.Snapshot(), opts...)
	if err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	defer s.Wait()

	shareServer, err := share.New(cfg.ShareAddr, s)
	if err != nil {
		return err
	}
	sim := simulator.New(s,
		simulator.WithInterval(cfg.SimulatorInterval),
		simulator.WithRNG(simulator.NewSeededRNG(cfg.SimulatorSeed, true)),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return shareServer.Serve(ctx)
	})
	g.Go(func() error {
		sim.Run(ctx)
		return nil
	})
	return g.Wait()
}
