// Command cloudplaza presents the Cloud Plaza business plan in the terminal and
// exports it as a static HTML page.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cloudplaza/internal/config"
	"cloudplaza/internal/deck"
	"cloudplaza/internal/telemetry"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath  string
	contentPath string
	logLevel    string
	logFile     string
	section     string
}

// app is what a subcommand runs with once flags and config are resolved.
type app struct {
	cfg    *config.Config
	deck   *deck.Deck
	logger *log.Logger
	tracer *telemetry.Tracer
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "cloudplaza",
		Short: "Cloud Plaza business plan deck",
		Long: `cloudplaza shows the 麦田云端 · 活力广场 business plan as a scrollable
terminal page with a section navigation bar, or exports it as one static HTML page.

Examples:
  cloudplaza                      # present in the terminal
  cloudplaza --section finance    # open on the finance section
  cloudplaza export -o deck.html  # write the HTML page
  cloudplaza check --content deck.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresent(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default $CLOUDPLAZA_CONFIG or "+config.DefaultPath+")")
	flags.StringVar(&opts.contentPath, "content", "", "YAML deck overriding the built-in content")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file used while presenting")

	addSectionFlag(root, opts)
	root.AddCommand(newPresentCmd(opts), newExportCmd(opts), newCheckCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves defaults, file, env and flags, in that order.
func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.contentPath != "" {
		cfg.Content.Path = opts.contentPath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func loadDeck(cfg *config.Config) (*deck.Deck, error) {
	if cfg.Content.Path == "" {
		return deck.Default(), nil
	}
	return deck.LoadFile(cfg.Content.Path)
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
		Prefix:          "cloudplaza",
	})
}

// setup builds the app for a subcommand. Logs go to w unless the config names
// a log file.
func setup(ctx context.Context, opts *options, w io.Writer) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, a.closer = f, f
	}
	a.logger = newLogger(w, cfg.LogLevel())

	a.deck, err = loadDeck(cfg)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	a.tracer, err = telemetry.New(ctx)
	if err != nil {
		a.logger.Warn("tracing disabled", "err", err)
		a.tracer = telemetry.Disabled()
	}
	a.logger.Debug("config loaded", "content", cfg.Content.Path, "tracing", a.tracer.Enabled())
	return a, nil
}

// Close flushes tracing and closes the log file.
func (a *app) Close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			a.logger.Warn("trace shutdown", "err", err)
		}
	}
	if a.closer != nil {
		_ = a.closer.Close()
	}
}
