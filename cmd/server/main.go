package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sketchwire/sketchwire-server/internal/app"
	"github.com/sketchwire/sketchwire-server/internal/config"
	"github.com/sketchwire/sketchwire-server/internal/log"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sketchwire-server",
		Short:         "Real-time collaborative drawing session server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var (
		configPath string
		overrides  config.Config
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the drawing session server",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootLogger := log.New("info")

			cfg, path, err := config.Load(bootLogger, configPath)
			if err != nil {
				return err
			}
			cfg.UpdateFrom(overrides)

			logger := log.New(cfg.LogLevel)
			logger.Info().
				Str("addr", cfg.Addr).
				Str("config", path).
				Dur("room_grace", cfg.RoomGrace).
				Msg("starting sketchwire server")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application := app.New(&cfg, logger)
			if err := application.Run(ctx); err != nil {
				return err
			}

			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&overrides.Addr, "addr", "", "HTTP listen address")
	cmd.Flags().StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().DurationVar(&overrides.RoomGrace, "room-grace", 0, "grace period before an emptied room is destroyed")
	cmd.Flags().DurationVar(&overrides.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sketchwire-server %s (%s, %s)\n", version, commit, runtime.Version())
		},
	}
}
