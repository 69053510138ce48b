package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medication-adherence/internal/adapters/ai/assemblyai"
	"medication-adherence/internal/adapters/ai/gemini"
	pg "medication-adherence/internal/adapters/storage/postgres"
	"medication-adherence/internal/platform/config"
	"medication-adherence/internal/platform/logger"
	"medication-adherence/internal/router"
)

// @title Medication Adherence API
// @version 1.0
// @description Normalización de recetas y analítica de adherencia.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// run arma dependencias y sirve hasta que ctx se cancela. Los defers corren
// siempre; main decide el exit code.
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	opts := router.Options{
		Logger:         log,
		Location:       cfg.Location(),
		MaxUploadBytes: cfg.MaxUploadBytes,
		ReportLogLimit: cfg.ReportLogLimit,
	}

	if cfg.DBDSN != "" {
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("postgres unavailable: %w", err)
		}
		defer db.Close()
		opts.DB = db
		log.Info("storage: postgres", nil)
	} else {
		log.Info("storage: in-memory (MEDIBUDDY_DB_DSN not set)", nil)
	}

	if cfg.GeminiEnabled() {
		gc, err := gemini.New(gemini.Options{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			BaseURL:    cfg.GeminiBaseURL,
			Timeout:    cfg.ProviderTimeout,
			MaxRetries: cfg.ProviderMaxRetries,
			Logger:     log,
		})
		if err != nil {
			return fmt.Errorf("gemini client: %w", err)
		}
		opts.Extractor = gc
		opts.Summarizer = gc
	} else {
		log.Warn("gemini disabled: extraction returns 503, summaries use template", nil)
	}

	if cfg.AssemblyAIEnabled() {
		ac, err := assemblyai.New(assemblyai.Options{
			APIKey:     cfg.AssemblyAIAPIKey,
			BaseURL:    cfg.AssemblyAIBaseURL,
			Timeout:    cfg.ProviderTimeout,
			MaxRetries: cfg.ProviderMaxRetries,
			Logger:     log,
		})
		if err != nil {
			return fmt.Errorf("assemblyai client: %w", err)
		}
		opts.Transcriber = ac
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		// Extracción y transcripción esperan al proveedor.
		WriteTimeout: cfg.ProviderTimeout*4 + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
