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

	"github.com/Clark-Hu/movie-queries/internal/config"
	httpserver "github.com/Clark-Hu/movie-queries/internal/http"
	"github.com/Clark-Hu/movie-queries/internal/query"
	"github.com/Clark-Hu/movie-queries/internal/source"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.New(os.Stdout, "[movie-queries] ", log.LstdFlags|log.Lshortfile)

	ds, opened, err := source.Load(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	defer opened.Close()

	queries := query.New(ds, query.Options{ExcellentThreshold: cfg.ExcellentThreshold})

	var health httpserver.HealthChecker
	if opened.Store != nil {
		health = opened.Store
	}
	server := httpserver.New(cfg, queries, health, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("graceful shutdown error: %v", err)
	}
}
