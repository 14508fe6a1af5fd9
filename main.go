package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/kubejob-exporter/internal/config"
	server "github.com/mauv0809/kubejob-exporter/internal/http"
	"github.com/mauv0809/kubejob-exporter/internal/jobcache"
	"github.com/mauv0809/kubejob-exporter/internal/kubernetes"
	"github.com/mauv0809/kubejob-exporter/internal/metrics"
	"github.com/mauv0809/kubejob-exporter/internal/scraper"
)

func main() {
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	client, err := kubernetes.NewClient()
	if err != nil {
		log.Fatalf("Failed to initialize kubernetes client: %s", err)
	}

	cache := jobcache.New(cfg.JobLabel)
	publisher := metrics.NewPublisher()
	registry := metrics.NewRegistry(metrics.NewCollector(publisher))
	scr := scraper.New(client, cache, publisher, clockwork.NewRealClock(), cfg.Namespace, cfg.JobLabel, cfg.PollInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Populate the snapshot before exposing it over HTTP, so the first
	// external scrape never sees empty data.
	scr.Scrape(ctx)
	go scr.Run(ctx)

	s := server.NewServer(cache, scr, metrics.NewMetricsHandler(registry), cfg)

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port, "namespace", cfg.Namespace, "label", cfg.JobLabel)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)
		cancel()

		// Create a context with a timeout for the shutdown.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
