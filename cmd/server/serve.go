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

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/cashbench/internal/api"
	"github.com/mmynk/cashbench/internal/auth"
	"github.com/mmynk/cashbench/internal/config"
	"github.com/mmynk/cashbench/internal/middleware"
	"github.com/mmynk/cashbench/internal/service"
	"github.com/mmynk/cashbench/internal/storage"
	"github.com/mmynk/cashbench/internal/storage/sqlite"
	"github.com/mmynk/cashbench/pkg/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if cfg.Auth.JWTSecret == "" {
		slog.Warn("No JWT secret configured, using the development key", "env", "CASHBENCH_JWT_SECRET")
	}

	store, err := sqlite.New(cfg.Server.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Server.DBPath)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, err := newHandler(cfg, store, reg)
	if err != nil {
		return err
	}

	// h2c serves HTTP/2 without TLS for Connect clients.
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	slog.Info("Connect server starting", "address", cfg.Server.Addr)

	select {
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		return fmt.Errorf("http server: %w", err)
	}
}

// newHandler assembles the full HTTP surface: both Connect services,
// /metrics, /healthz and, when configured, the static frontend.
func newHandler(cfg config.Config, store storage.Store, reg *prometheus.Registry) (http.Handler, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret(), cfg.Auth.TokenTTL.Duration)
	authenticator := auth.NewPasswordAuthenticator(store)
	metrics := middleware.NewMetrics(reg)

	mux := http.NewServeMux()

	mux.Handle(api.NewLedgerServiceHandler(
		service.NewLedgerService(store, service.LedgerOptions{
			Workbenches:    cfg.Workbenches,
			DueSoonHorizon: cfg.Schedule.DueSoonDays,
			Location:       loc,
		}),
		connect.WithInterceptors(
			metrics.Interceptor(),
			middleware.RequireAuth(jwtManager),
			middleware.LoggingInterceptor(),
		),
	))
	mux.Handle(api.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, slog.Default()),
		connect.WithInterceptors(
			metrics.Interceptor(),
			middleware.OptionalAuth(jwtManager),
			middleware.LoggingInterceptor(),
		),
	))

	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("GET /healthz", healthz)

	if cfg.Server.StaticPath != "" {
		static, err := staticHandler(cfg.Server.StaticPath)
		if err != nil {
			return nil, err
		}
		mux.Handle("/", static)
	}

	return loggingMiddleware(corsMiddleware(mux)), nil
}
