package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradeready/portal/internal/api"
	"github.com/tradeready/portal/internal/pkg/config"
	"github.com/tradeready/portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides PORT)")
	return cmd
}

func runServe(ctx context.Context, port string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Service: "portal"})
	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("store", cfg.Store.Driver).
		Str("session", cfg.Session.Driver).
		Msg("starting portal")

	a, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}

	a.dispatcher.Start(context.WithoutCancel(ctx))

	e := api.NewRouter(a.services(), api.Options{
		Log:           logger.Component("http"),
		Health:        a.health,
		SecureCookies: cfg.Env == "production",
		AuthRPS:       cfg.RateLimit.AuthRPS,
		AuthBurst:     cfg.RateLimit.AuthBurst,
		Validator:     a.validator,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var runErr error
	select {
	case <-sigCtx.Done():
		log.Info().Msg("shutting down")
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server error")
			runErr = fmt.Errorf("serve %s: %w", srv.Addr, err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}

	if err := a.dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("activity queue not drained")
	}

	if err := a.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("backend shutdown error")
	}
	log.Info().Msg("server stopped")
	return runErr
}
