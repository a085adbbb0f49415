package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/katalvlaran/gnomes/internal/app"
	"github.com/katalvlaran/gnomes/internal/cli"
	"github.com/katalvlaran/gnomes/internal/ctxlog"
)

// main is the entrypoint for the gnomes command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	if err := cli.LoadDotEnv(cli.EnvFile(args)); err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	cfg, shouldExit, err := cli.Parse(args, outW, os.LookupEnv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)

	return app.Run(ctx, outW, cfg)
}
