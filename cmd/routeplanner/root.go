package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Neha3-ai/final-ip-project/config"
	"github.com/Neha3-ai/final-ip-project/congestion"
	"github.com/Neha3-ai/final-ip-project/core"
	"github.com/Neha3-ai/final-ip-project/planner"
)

// envConfig names the config file when --config is not given.
const envConfig = "ROUTEPLANNER_CONFIG"

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// app is everything a subcommand needs, built once per invocation.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	graph   *core.Graph
	planner *planner.Planner
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "routeplanner",
		Short:         "Congestion-aware route planning across city road networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// A missing .env is normal; a broken one is not.
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			if flags.configPath == "" {
				flags.configPath = os.Getenv(envConfig)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "network YAML (default: embedded five-city network, or $"+envConfig+")")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "text or json (overrides config)")

	root.AddCommand(
		newRouteCmd(flags),
		newRegionsCmd(flags),
		newServeCmd(flags),
	)

	return root
}

// buildApp loads configuration and assembles graph, sampler and planner.
// extra sampler options are applied after the configured ones.
func buildApp(cmd *cobra.Command, flags *rootFlags, extra ...congestion.Option) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	logger := cfg.Logger(cmd.ErrOrStderr())

	g, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	stats := g.Stats()
	logger.Debug("network built",
		slog.Int("regions", stats.Regions),
		slog.Int("nodes", stats.Nodes),
		slog.Int("edges", stats.Edges),
	)

	sampler := congestion.NewSampler(append(cfg.SamplerOptions(), extra...)...)
	p, err := planner.New(g, sampler,
		planner.WithLogger(logger),
		planner.WithFallbackRate(cfg.Congestion.FallbackRate),
		planner.WithStrategy(cfg.Strategy()),
	)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, graph: g, planner: p}, nil
}
