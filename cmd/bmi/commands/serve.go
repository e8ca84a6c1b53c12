package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-bmi/cliparse"
	"github.com/danielhkuo/quickly-bmi/logging"
	"github.com/danielhkuo/quickly-bmi/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "serve [-p port] [-origin url] [-log-level lvl] [-log-format fmt] [-env file]",
		Short:              "Run the HTTP API and form",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliparse.ParseFlags(args)
			if errors.Is(err, flag.ErrHelp) {
				// usage was already printed by the flag set
				return nil
			}
			if err != nil {
				return err
			}
			if err := logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg)
		},
	}
}
