package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-bmi/logging"
)

var (
	logLevel  string
	logFormat string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bmi",
		Short:         "Body Mass Index calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(os.Stderr, logLevel, logFormat)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json)")

	root.AddCommand(calcCmd(), promptCmd(), serveCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
