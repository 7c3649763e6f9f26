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

	"github.com/spf13/cobra"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/config"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/server"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		useMock    bool
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Port = port
			}
			return serve(cfg, useMock)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config.yaml")
	cmd.Flags().BoolVar(&useMock, "mock", false, "use mock adapter instead of real LLM backends")
	cmd.Flags().IntVar(&port, "port", 0, "override listen port")
	return cmd
}

func serve(cfg config.Config, useMock bool) error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	reg := buildAdapters(cfg, useMock)
	for _, m := range reg.models {
		log.Printf("mode: %s enabled (model: %s)", m.Provider, m.ID)
	}
	if cfg.DefaultModel != "" && cfg.DefaultModel != reg.defaultModel {
		log.Printf("default model %q not configured, falling back to %s", cfg.DefaultModel, reg.defaultModel)
	}
	log.Printf("default model: %s", reg.defaultModel)

	handler := server.SetupMux(reg.adapters, reg.models, reg.defaultModel, server.Options{
		APIKey:         cfg.APIKey,
		RateLimit:      cfg.RateLimit,
		RequestTimeout: cfg.RequestTimeout,
	})

	if cfg.APIKey != "" {
		log.Println("auth: API key required (X-API-Key header)")
	} else {
		log.Println("auth: disabled (no api_key configured)")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		log.Printf("paraphrase api listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-done:
	}
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("server stopped")
	return nil
}
