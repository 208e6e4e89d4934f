// cmd/activities-api/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"activities-api/internal/common/config"
	"activities-api/internal/common/logger"
	"activities-api/internal/common/observability"
	"activities-api/internal/models"
	"activities-api/internal/registry"
	"activities-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting activities API",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	seed, err := loadSeed(cfg)
	if err != nil {
		zapLog.Fatal("seed load failed", zap.Error(err))
	}
	reg := registry.New(seed)
	zapLog.Info("Registry seeded", zap.Int("activities", reg.Count()))

	// --- Metrics/pprof listener ---
	if cfg.Metrics.Enabled {
		go func() {
			metricsMux := http.NewServeMux()
			metricsMux.Handle("/metrics", promhttp.Handler())
			metricsMux.Handle("/debug/pprof/", http.DefaultServeMux)
			addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
			zapLog.Info("Metrics listener started", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, metricsMux); err != nil && err != http.ErrServerClosed {
				zapLog.Error("metrics listener failed", zap.Error(err))
			}
		}()
	}

	// --- API server ---
	srv := server.New(reg, log, obs, cfg.Server.StaticDir)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("API server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("API server failed", zap.Error(err))
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zapLog.Error("shutdown did not complete cleanly", zap.Error(err))
	}
	zapLog.Info("Stopped")
}

func loadSeed(cfg *config.Config) (map[string]models.Activity, error) {
	if cfg.Registry.SeedFile == "" {
		return registry.DefaultSeed(), nil
	}
	return registry.LoadSeed(cfg.Registry.SeedFile)
}
