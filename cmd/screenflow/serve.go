package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/screenflow"
	httpAdapter "github.com/aretw0/screenflow/pkg/adapters/http"
	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/aretw0/screenflow/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve <definition>",
		Short: "Serve a scripted controller over HTTP",
		Long: `Builds a controller from the definition and exposes it as a JSON API, with
Prometheus metrics on /metrics and screen changes streamed on /events.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := loadFlow(args[0])
			if err != nil {
				return err
			}

			logger := slog.Default()
			reg := prometheus.NewRegistry()
			metrics := observability.NewMetrics(reg)
			hooks := domain.CombineHooks(metrics.Hooks(), observability.LoggingHooks(logger))

			ctrl, err := b.Build(screenflow.WithLogger(logger), screenflow.WithLifecycleHooks(hooks))
			if err != nil {
				return err
			}
			defer ctrl.Dispose(context.Background())

			srv := &http.Server{
				Addr:              ":" + port,
				Handler:           httpAdapter.NewHandler(ctrl, httpAdapter.WithLogger(logger), httpAdapter.WithGatherer(reg)),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				logger.Info("Starting screenflow server", "addr", srv.Addr, "definition", args[0])
				serverErrors <- srv.ListenAndServe()
			}()

			// Channel to listen for interrupt or terminate signals.
			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(shutdown)

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)

			case sig := <-shutdown:
				logger.Info("Start shutdown", "signal", sig)

				// Give outstanding requests a deadline for completion.
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					logger.Error("Graceful shutdown did not complete", "error", err)
					return srv.Close()
				}
				logger.Info("Screenflow server stopped gracefully")
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to listen on")
	return cmd
}
