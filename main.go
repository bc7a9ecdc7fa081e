package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg := loadConfig(log)

	d, err := loadDependencies(cfg, log)
	if err != nil {
		log.Error("failed to load runtime dependencies", zap.Error(err))
		fmt.Fprintln(os.Stderr, "To fix, check PORT and CORS_ORIGIN in the environment or .env file.")
		os.Exit(1)
	}

	app := newApp(cfg, log, d)

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		<-ch
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(ctx); err != nil {
			log.Warn("shutdown error", zap.Error(err))
		}
	}()

	if err := app.Start(); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
