// Package main is the entry point for the salesdesk API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesdesk/internal/config"
	appctx "salesdesk/internal/core/context"
	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/customer"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/documents/sales_note"
	"salesdesk/internal/domain/editor"
	"salesdesk/internal/domain/reports"
	"salesdesk/internal/infrastructure/backend"
	v1 "salesdesk/internal/infrastructure/http/v1"
	"salesdesk/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	ctx = appctx.WithTrace(logger.WithLogger(ctx, log), appctx.NewTraceContext())

	log.Infow("starting salesdesk server", "version", version, "env", cfg.App.Env)

	// --- Sales backend ---
	client := backend.New(backend.Config{
		BaseURL: cfg.Backend.URL,
		Token:   cfg.Backend.Token,
		Timeout: cfg.Backend.Timeout,
	})
	log.Infow("sales backend configured", "url", cfg.Backend.URL, "timeout", cfg.Backend.Timeout)

	// --- Domain services ---
	notes := sales_note.NewService(backend.SalesNotes{Client: client})
	quotations := quotation.NewService(backend.Quotations{Client: client}, notes)

	format, err := reports.NewFormatter(cfg.Reports.Locale, cfg.Reports.Currency)
	if err != nil {
		log.Fatalw("invalid report formatting settings", "error", err)
	}
	reportService := reports.NewService(backend.Reports{Client: client}, format)

	// --- Edit sessions ---
	store := editor.NewStore(cfg.Session.TTL)
	editorService := editor.NewService(
		store,
		catalog.NewService(client),
		customer.NewService(client),
		notes,
		quotations,
		editor.Config{AllowPriceEdit: cfg.Editor.AllowPriceEdit},
	)
	go store.Run(ctx, cfg.Session.SweepInterval)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:      log,
		Development: cfg.IsDevelopment(),
		Version:     version,
		Sessions:    store,
		Editor:      editorService,
		SalesNotes:  notes,
		Quotations:  quotations,
		Reports:     reportService,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Backend.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Infow("server stopped", "open_sessions", store.Len())
}
