package main

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/hupe1980/lexis"
	"github.com/hupe1980/lexis/promcollector"
)

type app struct {
	configPath string
	logLevel   string
	logFormat  string
	metrics    bool

	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "lexis",
		Short:         "Full-text search over statute articles",
		Long:          `lexis indexes a corpus of articles (a JSON array of {"id","content"} objects or a snapshot file) and runs accent-insensitive ranked searches over it.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.registry == nil {
				return nil
			}
			return promcollector.WriteText(cmd.ErrOrStderr(), a.registry)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (text, json); overrides the config file")
	root.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics to stderr on exit")

	root.AddCommand(
		newSearchCmd(a),
		newHighlightCmd(a),
		newStatsCmd(a),
		newSnapshotCmd(a),
	)

	return root
}

func (a *app) config() (lexis.Config, error) {
	cfg := lexis.DefaultConfig()
	// Keep the shell quiet unless asked otherwise.
	cfg.Log.Level = "warn"

	if a.configPath != "" {
		loaded, err := lexis.LoadConfig(a.configPath)
		if err != nil {
			return lexis.Config{}, err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	return cfg, nil
}

func (a *app) newLibrary(stderr io.Writer) (*lexis.Library, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := lexis.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger, err := lexis.NewStreamLogger(stderr, cfg.Log.Format, level)
	if err != nil {
		return nil, err
	}

	opts := []lexis.Option{
		lexis.WithConfig(cfg),
		lexis.WithLogger(logger),
	}

	if a.metrics {
		a.registry = prometheus.NewRegistry()
		mc, err := promcollector.New(a.registry)
		if err != nil {
			return nil, err
		}
		opts = append(opts, lexis.WithMetricsCollector(mc))
	}

	return lexis.New(opts...)
}

