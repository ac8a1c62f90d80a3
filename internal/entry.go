// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/glossgen/internal/pipeline"
	"github.com/starford/glossgen/internal/watcher"
)

// NewLogger builds the logger described by cfg, writing to w.
func NewLogger(cfg ApplicationConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewPlan turns the enabled outputs of cfg into a pipeline plan.
func NewPlan(cfg *Config) (pipeline.Plan, error) {
	plan := pipeline.Plan{
		Source:    cfg.Source.Path,
		Normalize: cfg.Source.Normalize,
	}

	if cfg.LaTeX.Enabled {
		file, dir := pipeline.DefaultLaTeXFile, ""
		if cfg.LaTeX.Output != "" {
			file, dir = filepath.Base(cfg.LaTeX.Output), filepath.Dir(cfg.LaTeX.Output)
		}
		r, err := pipeline.NewRenderer(pipeline.FormatLaTeX, file, "")
		if err != nil {
			return plan, err
		}
		plan.Targets = append(plan.Targets, pipeline.Target{Renderer: r, Dir: dir})
	}
	if cfg.Wiki.Enabled {
		r, err := pipeline.NewRenderer(pipeline.FormatWiki, "", "")
		if err != nil {
			return plan, err
		}
		plan.Targets = append(plan.Targets, pipeline.Target{Renderer: r, Dir: cfg.Wiki.Dir})
	}
	if cfg.Website.Enabled {
		r, err := pipeline.NewRenderer(pipeline.FormatWebsite, "", cfg.Website.Template)
		if err != nil {
			return plan, err
		}
		plan.Targets = append(plan.Targets, pipeline.Target{Renderer: r, Dir: cfg.Website.Dir})
	}
	if cfg.Index.Enabled {
		plan.Index = cfg.Index.Path
	}
	return plan, nil
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{stdout: os.Stdout}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := app.logger
	if logger == nil {
		logger = NewLogger(cfg.App, os.Stderr)
	}
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("source", cfg.Source.Path),
		slog.Bool("latex", cfg.LaTeX.Enabled),
		slog.Bool("wiki", cfg.Wiki.Enabled),
		slog.Bool("website", cfg.Website.Enabled),
		slog.Bool("index", cfg.Index.Enabled),
		slog.String("log_level", cfg.App.LogLevel.String()))

	plan, err := NewPlan(cfg)
	if err != nil {
		return fmt.Errorf("init outputs: %w", err)
	}
	if len(plan.Targets) == 0 && plan.Index == "" && !plan.Normalize {
		logger.Warn("no outputs enabled")
	}

	svc := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithStrict(cfg.Source.Strict),
		pipeline.WithStdout(app.stdout),
	)

	if !app.watch {
		rep, err := svc.Run(ctx, plan)
		if err != nil {
			return err
		}
		logger.Info("Build finished", slog.Int("entries", rep.Entries), slog.Int("outputs", len(rep.Outputs)))
		return nil
	}

	w, err := watcher.New(cfg.Source.Path, watcher.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("init watcher: %w", err)
	}
	rebuild := func(ctx context.Context) error {
		rep, err := svc.Run(ctx, plan)
		if err != nil {
			return err
		}
		if rep.Normalized != nil {
			w.Ignore(plan.Source, rep.Normalized)
		}
		logger.Info("Build finished", slog.Int("entries", rep.Entries), slog.Int("outputs", len(rep.Outputs)))
		return nil
	}

	// A broken source must not stop watch mode; the next save gets another try.
	if err := rebuild(ctx); err != nil {
		logger.Error("Initial build failed", slog.String("error", err.Error()))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return w.Run(gCtx, rebuild)
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
		}
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Watcher stopped")
	return nil
}
