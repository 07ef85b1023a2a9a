package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonfriesen/elementify"
	"github.com/jonfriesen/elementify/internal/config"
	"github.com/jonfriesen/elementify/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	envFile := flag.String("env", "", "path to a .env file (default ./.env when present)")
	flag.Parse()

	if err := run(*configPath, *envFile); err != nil {
		fmt.Fprintf(os.Stderr, "elementify-server: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, envFile string) error {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	cfg, err := config.Load(configPath, envFiles...)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	dict := elementify.PeriodicTable()
	if cfg.Dictionary.Path != "" {
		if dict, err = elementify.LoadDictionaryFile(cfg.Dictionary.Path); err != nil {
			return err
		}
	}

	srv, err := server.New(cfg.Server, dict, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Dictionary.Watch {
		go func() {
			if err := server.WatchDictionary(ctx, cfg.Dictionary.Path, logger, srv.Reload); err != nil {
				logger.Error("dictionary watcher stopped", zap.Error(err))
			}
		}()
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Listen(cfg.Server.Address)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
