// Package main is the entry point for the todoremote CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todoremote/internal/backend/remote"
	"todoremote/internal/cli"
	"todoremote/internal/commands"
	"todoremote/internal/config"
	"todoremote/internal/log"
	"todoremote/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		level := log.LevelFromString(os.Getenv(config.EnvPrefix + "_LOG_LEVEL"))
		if cfg.Debug {
			level = log.LevelDebug
		}
		opts := []remote.Option{remote.WithLogger(log.New(os.Stderr, level))}
		if cfg.Debug {
			opts = append(opts, remote.WithDumpTo(os.Stderr))
		}
		return remote.New(ctx, cfg, opts...)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
