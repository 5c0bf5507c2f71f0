package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/chime/internal/app"
	"github.com/vk/chime/internal/cli"
)

// main is the entrypoint for the chime command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			env[key] = value
		}
	}

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, env, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, env map[string]string, args []string) error {
	resolver, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := app.NewConfig(app.Config{
		LogLevel:  resolver.LogLevel,
		LogFormat: resolver.LogFormat,
	})
	if err != nil {
		return err
	}

	chimeApp := app.New(outW, cfg)
	return chimeApp.Run(context.Background(), env, resolver)
}
