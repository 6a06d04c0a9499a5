package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	tthttp "github.com/tasktrace/tasktrace/internal/adapter/http"
	ttotel "github.com/tasktrace/tasktrace/internal/adapter/otel"
	"github.com/tasktrace/tasktrace/internal/adapter/ws"
	"github.com/tasktrace/tasktrace/internal/config"
	"github.com/tasktrace/tasktrace/internal/logger"
	"github.com/tasktrace/tasktrace/internal/middleware"
	"github.com/tasktrace/tasktrace/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	slog.SetDefault(logger.New(cfg.Logging))

	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Logging.Level,
		"seed_enabled", cfg.Seed.Enabled,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Services ---
	var metrics *ttotel.Metrics
	if cfg.Telemetry.Enabled {
		metrics, err = ttotel.NewMetrics()
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	hub := ws.NewHub()
	sessionSvc := service.NewSessionService(hub, metrics)

	// Startup sequence: init narration, then the seed tasks.
	if cfg.Seed.Enabled {
		go sessionSvc.Seed(ctx, cfg.Seed.Delay, cfg.Seed.Tasks)
	}

	// --- HTTP ---
	handlers := &tthttp.Handlers{Session: sessionSvc}

	r := chi.NewRouter()

	// Middleware
	r.Use(tthttp.CORS(cfg.Server.CORSOrigin))
	r.Use(tthttp.Logger)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	if cfg.Telemetry.Enabled {
		r.Use(ttotel.HTTPMiddleware(cfg.Logging.Service))
	}

	// Health endpoint
	r.Get("/health", healthHandler(hub))

	// WebSocket endpoint (live journal stream for log viewers)
	r.Get("/ws", hub.HandleWS)

	// API routes
	tthttp.MountRoutes(r, handlers)

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-done
	slog.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}

// healthHandler returns an http.HandlerFunc that reports service health.
func healthHandler(hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok","viewers":%d}`, hub.ConnectionCount())
	}
}
