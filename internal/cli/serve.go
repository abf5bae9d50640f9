package cli

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/ZanzyTHEbar/hongyeon/internal/config"
	"github.com/ZanzyTHEbar/hongyeon/internal/errors"
	"github.com/ZanzyTHEbar/hongyeon/internal/monitoring"
	"github.com/ZanzyTHEbar/hongyeon/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var port string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form and the scoring API",
		Long:  "Serve the form and the scoring API. Settings come from the environment and an optional .env file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return errors.NewConfigurationError(err.Error(), err)
			}
			if port != "" {
				cfg.Port = port
			}

			logger := monitoring.NewLogger(cfg.LogLevel)
			slog.SetDefault(logger.Logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, cfg, logger)
		},
	}

	c.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides PORT)")
	return c
}
