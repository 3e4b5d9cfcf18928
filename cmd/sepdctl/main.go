package main

import (
	"fmt"
	"os"

	"github.com/danmuck/sepdata/internal/logging"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath  string
	metricsAddr string
	logLevel    string
}

func main() {
	logging.ConfigureRuntime()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sepdctl: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "sepdctl",
		Short: "Decode SEPD eye-tracking telemetry",
		Long: `sepdctl connects to an SEPD telemetry source and prints every decoded
field as "name = value", one packet per block, each block ending in "----".

Without a subcommand the transport from --config is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, "")
			if err != nil {
				return err
			}
			return stream(cmd, cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve /metrics and /healthz on this address")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")

	rootCmd.AddCommand(
		tcpCmd(opts),
		udpCmd(opts),
		decodeCmd(opts),
		configCmd(),
	)
	return rootCmd
}
