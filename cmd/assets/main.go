package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/yourname/asset_lite/internal/app/resthttp"
	"github.com/yourname/asset_lite/internal/config"
)

// main поднимает asset-сервер и корректно завершает его по сигналу.
func main() {
	fs := pflag.NewFlagSet("assets", pflag.ExitOnError)
	cfgPath := fs.String("config", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")
	addr := fs.String("addr", "", "listen address, overrides config")
	root := fs.String("root", "", "served root directory, overrides config")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *root != "" {
		cfg.RootDir = *root
	}
	if err := os.MkdirAll(cfg.RootDir, 0o755); err != nil {
		log.Fatal(err)
	}

	handler, _, err := resthttp.NewServer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Printf("ASSETS listening on %s (ROOT_DIR=%s, version_file=%s)", cfg.ListenAddr, cfg.RootDir, cfg.VersionFile)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Сценарий graceful shutdown при получении SIGTERM/SIGINT или падении листенера.
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("ASSETS shutdown error: %v", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}
}
