package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/chime/internal/cli"
	"github.com/vk/chime/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
}

// New is the constructor for the main application. The returned App carries
// its own isolated logger, built from the explicit level/format/writer
// options rather than any global state.
func New(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")
	return &App{outW: outW, logger: logger}
}

// Run resolves the parameters from the environment and the parsed argv
// namespace, then writes the resolved-configuration report. Resolution runs
// exactly once, synchronously, before any consumer reads the result.
func (a *App) Run(ctx context.Context, env map[string]string, resolver *cli.Resolver) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	p, err := resolver.Resolve(ctx, env)
	if err != nil {
		return fmt.Errorf("parameter resolution failed: %w", err)
	}
	a.logger.Info("Parameters resolved.",
		"currentDate", p.CurrentDate.Format("2006-01-02"),
		"nDays", p.NDays,
	)

	return a.report(p)
}
