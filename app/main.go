package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/feed-split/app/api"
	"github.com/lysyi3m/feed-split/app/cfg"
	"github.com/lysyi3m/feed-split/app/config"
	"github.com/lysyi3m/feed-split/app/feed"
	"github.com/lysyi3m/feed-split/app/fetcher"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	transformer := feed.NewTransformer()

	// One-shot mode: transform a local feed file and print the result
	if appCfg.InputFile != "" {
		if err := transformFile(transformer, appCfg.InputFile); err != nil {
			log.Fatalf("Failed to transform %s: %v", appCfg.InputFile, err)
		}
		return
	}

	log.Println("Starting Feed Split server...")

	log.Printf("Loading feed sources from %s...", appCfg.FeedsDir)
	sourceCache := config.NewSourceCache(appCfg.FeedsDir)
	if err := sourceCache.Run(); err != nil {
		log.Fatal("Failed to load feed sources:", err)
	}
	log.Printf("Loaded %d feed sources", sourceCache.Count())

	feedFetcher := fetcher.NewFetcher(&http.Client{})

	apiHandler := api.NewHandler(sourceCache, feedFetcher, transformer)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	// Create HTTP server with timeouts
	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		log.Printf("API endpoints available:")
		log.Printf("  Feed:          http://localhost:%s/feeds/<name>", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)

		if appCfg.APIAccessKey != "" {
			log.Printf("  Transform URL:  http://localhost:%s/api/transform?url=<feed-url> (requires API key)", appCfg.Port)
			log.Printf("  Transform body: http://localhost:%s/api/transform (POST, requires API key)", appCfg.Port)
			log.Printf("  List sources:   http://localhost:%s/api/sources (requires API key)", appCfg.Port)
		} else {
			log.Printf("  API endpoints: DISABLED (API_ACCESS_KEY not set)")
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Feed Split server started successfully!")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("Feed Split server shutdown complete")
}

func transformFile(transformer *feed.Transformer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	out, err := transformer.Run(string(data))
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}
