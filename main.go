package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/quickly-bmi/cliparse"
	"github.com/danielhkuo/quickly-bmi/logging"
	"github.com/danielhkuo/quickly-bmi/server"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if err := logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		slog.Error("Error configuring logger", "error", err)
		os.Exit(1)
	}

	// Stop on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg); err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
}
