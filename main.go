package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"evman/src-cli/shell"
	"evman/src-cli/utils"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

// raised or lowered once LOG_LEVEL is read
var logLevel = new(slog.LevelVar)

func init() {
	logLevel.Set(slog.LevelWarn)
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC1123Z,
		}),
	))
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
}

func main() {
	config := utils.NewConfig()
	logLevel.Set(config.GetLogLevel())

	// The AppState carries the store, the create/edit/delete managers and the
	// persistence backend; nothing below touches global state.
	as, err := utils.NewAppState(config)
	if err != nil {
		slog.Error("can't create app state", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.Default().With("session", as.SessionID))

	ctx := context.Background()
	if err := as.Load(ctx); err != nil {
		slog.Error("can't load data", "error", err)
		os.Exit(1)
	}

	runErr := shell.Run(ctx, as, os.Stdin, os.Stdout)
	if err := as.Close(); err != nil {
		slog.Warn("can't close app state", "error", err)
	}
	if runErr != nil {
		slog.Error("session ended with error", "error", runErr)
		os.Exit(1)
	}
}
