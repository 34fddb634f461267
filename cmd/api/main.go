// ABOUTME: Main entry point for the Profile Translate API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profile-translate-api/api"
	"profile-translate-api/api/middleware"
	stdhttp "profile-translate-api/infrastructure/http/standard"
	"profile-translate-api/pkg/config"
	"profile-translate-api/pkg/translator"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := translator.NewLogger(cfg.Log)
	logger.Info("Starting Profile Translate API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"db_type":    cfg.Database.Type,
	})

	ctx := context.Background()

	db, err := translator.OpenDatabase(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	cache, closeCache := translator.NewCache(cfg.Cache, logger)
	defer closeCache()

	// Outbound provider calls are logged with the inbound request ID
	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Server.HTTPTimeout,
		stdhttp.WithTransport(middleware.NewLoggingRoundTripper(nil, logger)),
	)

	opts := append(translator.FromConfig(cfg),
		translator.WithLogger(logger),
		translator.WithCache(cache),
		translator.WithDatabase(db),
		translator.WithHTTPClient(httpClient),
	)
	client, err := translator.NewClient(opts...)
	if err != nil {
		log.Fatalf("Failed to create translator: %v", err)
	}

	_, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		Translator: client,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.HTTPTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}
