package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danmuck/sepdata/internal/client"
	"github.com/danmuck/sepdata/internal/config"
	"github.com/danmuck/sepdata/internal/logging"
	"github.com/danmuck/sepdata/internal/observability"
	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func tcpCmd(opts *rootOptions) *cobra.Command {
	var (
		host string
		port uint16
	)
	cmd := &cobra.Command{
		Use:   "tcp",
		Short: "Connect to a TCP telemetry server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, config.TransportTCP)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return stream(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&host, "host", "localhost", "server host")
	cmd.Flags().Uint16VarP(&port, "port", "p", config.DefaultTCPPort, "server port")
	return cmd
}

func udpCmd(opts *rootOptions) *cobra.Command {
	var port uint16
	cmd := &cobra.Command{
		Use:   "udp",
		Short: "Receive telemetry datagrams on a local port",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, config.TransportUDP)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return stream(cmd, cfg)
		},
	}
	cmd.Flags().Uint16VarP(&port, "port", "p", config.DefaultUDPPort, "local port to bind")
	return cmd
}

func decodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <capture-file>",
		Short: "Decode a raw byte capture of a TCP telemetry stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, config.TransportTCP)
			if err != nil {
				return err
			}
			c := client.NewCaptureClient(args[0], cfg.Client())
			err = runClient(cmd.Context(), c, cfg, cmd.OutOrStdout())
			if errors.Is(err, io.EOF) {
				st := c.Stats()
				log.Info().
					Uint64("packets", st.Packets).
					Uint64("invalid", st.InvalidPackets).
					Uint64("skipped_bytes", st.SkippedBytes).
					Msg("capture done")
				return nil
			}
			return err
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or check a sepdctl config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write a config template with every default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteTemplate(args[0], force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	validateCmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Load and validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s %s\n", cfg.Transport, endpoint(cfg))
			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}

// resolveConfig layers defaults, the config file and global flags. A
// non-empty transport pins the transport; the port then falls back to that
// transport's default unless the file was written for the same transport.
func resolveConfig(cmd *cobra.Command, opts *rootOptions, transport string) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if transport != "" && transport != cfg.Transport {
		cfg.Transport = transport
		cfg.Port = config.DefaultPort(transport)
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr = opts.metricsAddr
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	logging.SetLevel(cfg.LogLevel)
	return cfg, nil
}

func endpoint(cfg config.Config) string {
	if cfg.Transport == config.TransportUDP {
		return fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	}
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

func newClient(cfg config.Config) client.Client {
	if cfg.Transport == config.TransportUDP {
		return client.NewUDPClient(cfg.Port, cfg.Client())
	}
	return client.NewTCPClient(cfg.Host, cfg.Port, cfg.Client())
}

// stream runs a network client until interrupted.
func stream(cmd *cobra.Command, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("transport", cfg.Transport).Str("endpoint", endpoint(cfg)).Msg("starting")
	err := runClient(ctx, newClient(cfg), cfg, cmd.OutOrStdout())
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("interrupted")
		return nil
	}
	return err
}

// runClient connects c and prints packets until Poll stops. The metrics
// listener, when configured, runs alongside and shuts down with the loop.
func runClient(ctx context.Context, c client.Client, cfg config.Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := c.Connect(); err != nil {
		return err
	}
	defer func() {
		if err := c.Disconnect(); err != nil {
			log.Warn().Err(err).Msg("disconnect")
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.MetricsAddr != "" {
		g.Go(func() error { return serveMetrics(gctx, cfg.MetricsAddr) })
	}
	g.Go(func() error {
		defer cancel()
		return client.Poll(gctx, c, cfg.Backoff, func(p frame.Packet) error {
			return writePacket(out, p)
		})
	})
	return g.Wait()
}

// serveMetrics blocks until ctx is done or the listener fails.
func serveMetrics(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           observability.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("metrics listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics listener %s: %w", addr, err)
	case <-ctx.Done():
	}
	shutdownCtx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
