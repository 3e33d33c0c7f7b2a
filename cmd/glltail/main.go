package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"glltail/internal/config"
	"glltail/internal/monitor"
	"glltail/internal/sim"
	"glltail/internal/ui"
)

func main() {
	var (
		output     string
		interval   = config.Seconds(-1) // -1 means "not set on the CLI"
		configPath string
		summary    bool
		simulate   bool
		showRaw    bool
		noColor    bool
		verbose    bool
	)
	flag.StringVar(&output, "o", "", "capture file to poll (default putty.log)")
	flag.StringVar(&output, "output", "", "capture file to poll (default putty.log)")
	flag.Var(&interval, "t", "poll interval in seconds; fractions are truncated (default 1.01 -> 1)")
	flag.Var(&interval, "time", "poll interval in seconds; fractions are truncated (default 1.01 -> 1)")
	flag.StringVar(&configPath, "config", "", "optional YAML config file")
	flag.BoolVar(&summary, "summary", false, "scan the capture file once, print statistics, and exit")
	flag.BoolVar(&simulate, "sim", false, "append synthetic GLL sentences to the capture file instead of watching it")
	flag.BoolVar(&showRaw, "raw", false, "echo the raw matched sentence below the status line")
	flag.BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	flag.BoolVar(&verbose, "verbose", false, "verbose diagnostics on stderr")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
			os.Exit(1)
		}
	}
	// Flags win over the config file.
	if output != "" {
		cfg.Watch = output
	}
	if interval >= 0 {
		cfg.IntervalS = int(interval)
	}
	if showRaw {
		cfg.ShowRaw = true
	}
	if noColor {
		off := false
		cfg.Color = &off
	}

	if summary {
		if err := runSummary(os.Stdout, cfg.Watch); err != nil {
			fmt.Fprintf(os.Stderr, "summary failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if simulate {
		w := &sim.Writer{Path: cfg.Watch, Interval: cfg.Interval()}
		logger.Info("simulator started", zap.String("path", w.Path))
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("simulator stopped", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	var opts []ui.Option
	if cfg.Color != nil {
		opts = append(opts, ui.WithColor(*cfg.Color))
	}
	rend := ui.NewRenderer(os.Stdout, opts...)

	if err := ui.Banner(os.Stdout, rend.Colors(), cfg.Watch); err != nil {
		logger.Error("banner write failed", zap.Error(err))
	}

	m := monitor.New(cfg, rend, logger)
	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("monitor stopped", zap.Error(err))
		os.Exit(1)
	}
}

// newLogger keeps diagnostics on stderr; stdout belongs to the renderer.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
