// Command mockapi serves the to-do REST API from memory for local use:
//
//	mockapi -addr :8080
//	todoremote --server http://localhost:8080 list
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todoremote/internal/backend/mockapi"
	"todoremote/internal/log"
	"todoremote/internal/store"
)

const shutdownTimeout = 5 * time.Second

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	seed := flag.Bool("seed", true, "start with the example tasks")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger := log.New(os.Stderr, log.LevelFromString(*level))

	api := mockapi.New()
	if *seed {
		for _, t := range store.NewSeeded().All() {
			api.Seed(mockapi.Task{ID: t.ID, Title: t.Title, Description: t.Description, Completed: t.IsCompleted})
		}
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", *addr, "tasks", len(api.Tasks()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
