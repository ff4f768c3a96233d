package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/khizerinam08/deal-checker/internal/assembler"
	"github.com/khizerinam08/deal-checker/internal/classifier"
	"github.com/khizerinam08/deal-checker/internal/config"
	"github.com/khizerinam08/deal-checker/internal/models"
	"github.com/khizerinam08/deal-checker/internal/processor"
	"github.com/khizerinam08/deal-checker/internal/scheduler"
	"github.com/khizerinam08/deal-checker/internal/scraper"
	"github.com/khizerinam08/deal-checker/internal/storage"
	"github.com/khizerinam08/deal-checker/internal/validator"
)

// Server exposes the scraped deals over HTTP and lets a scrape be triggered
// on demand. Reads come from Postgres when configured, otherwise from the
// JSON output file.
type Server struct {
	processor *processor.DealProcessor
	store     *storage.PostgresStore // nil without DATABASE_URL
	file      *storage.JSONFile
}

func main() {
	slog.Info("Starting deal checker server...")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Critical error loading configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	selectors, err := scraper.LoadConfig()
	if err != nil {
		slog.Warn("Failed to load selectors. Using defaults.", "error", err)
		selectors = scraper.DefaultSelectors()
	}

	browser := scraper.NewBrowser(cfg.MenuURL, cfg.PageLoadTimeout, cfg.ScrollInterval, cfg.MaxScrollIterations)
	extractor := scraper.NewExtractor(browser, selectors)
	c := classifier.New(classifier.DefaultConfig(cfg.SatietyScoring))
	a := assembler.New(c, validator.New(), cfg.MenuURL, cfg.MinDealPrice)
	file := storage.NewJSONFile(cfg.OutputPath)

	var pg *storage.PostgresStore
	var store processor.DealStore
	if cfg.DatabaseURL != "" {
		pg, err = storage.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("Critical error connecting to Postgres", "error", err)
			os.Exit(1)
		}
		defer pg.Close()

		if err := pg.EnsureSchema(ctx); err != nil {
			slog.Error("Critical error ensuring schema", "error", err)
			os.Exit(1)
		}
		store = pg
	}

	p := processor.New(extractor, a, file, store)
	srv := &Server{processor: p, store: pg, file: file}

	if cfg.ScrapeInterval > 0 {
		sched := scheduler.New(p, cfg.ScrapeInterval)
		if err := sched.Start(ctx); err != nil {
			slog.Error("Critical error starting scheduler", "error", err)
			os.Exit(1)
		}
		defer sched.Stop()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/deals", srv.DealsHandler)
	mux.HandleFunc("/scrape", srv.ScrapeHandler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, `{"status":"ok"}`)
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGTERM/SIGINT
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		sig := <-sigCh
		slog.Info("Received signal, shutting down gracefully...", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", "error", err)
		}
	}()

	slog.Info("Listening on port", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Failed to listen and serve", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped.")
}

func (s *Server) DealsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var deals []models.Deal
	var err error
	if s.store != nil {
		deals, err = s.store.ListDeals(r.Context())
	} else {
		deals, err = s.file.Read()
	}
	if err != nil {
		slog.Error("Failed to load deals", "error", err)
		http.Error(w, "failed to load deals", http.StatusInternalServerError)
		return
	}
	if deals == nil {
		deals = []models.Deal{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(deals); err != nil {
		slog.Error("Failed to encode deals response", "error", err)
	}
}

// ScrapeHandler triggers a scrape asynchronously so the HTTP response isn't
// blocked by browser and database operations that may exceed timeouts.
func (s *Server) ScrapeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.processor.Run(ctx); err != nil {
			slog.Error("Triggered scrape failed", "error", err)
			return
		}
		slog.Info("Triggered scrape finished")
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	fmt.Fprintln(w, `{"status":"scrape started"}`)
}
