package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adeqmish/ai-text-humanizer/internal/config"
	"github.com/adeqmish/ai-text-humanizer/internal/gateway"
	"github.com/adeqmish/ai-text-humanizer/internal/provider"
	"github.com/adeqmish/ai-text-humanizer/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	envFile := flag.String("env-file", "", "path to a dotenv file (default: .env when present)")
	useMock := flag.Bool("mock", false, "use the offline mock provider instead of Gemini")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	if *envFile == "" {
		if _, err := os.Stat(".env"); err == nil {
			*envFile = ".env"
		}
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	p, model, setupErr := buildProvider(cfg, *useMock, logger)
	gw := gateway.New(p, gateway.WithLogger(logger), gateway.WithSetupError(setupErr))
	handler := server.SetupMux(gw, server.Options{
		Model:         model,
		AccessKey:     cfg.AccessKey,
		MaxTextLength: cfg.MaxTextLength,
	})

	if cfg.AccessKey != "" {
		logger.Info("auth: access key required (X-API-Key header)")
	} else {
		logger.Info("auth: disabled (no access_key configured)")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("humanizer api listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// buildProvider returns a nil provider when no Gemini key is configured
// or the client cannot be built; the error is set only in the latter case.
// The server still starts and every humanize request then fails with a
// configuration error.
func buildProvider(cfg config.Config, useMock bool, logger *slog.Logger) (provider.Provider, string, error) {
	if useMock {
		logger.Info("mode: mock provider enabled")
		return &provider.Mock{Delay: 500 * time.Millisecond}, "mock", nil
	}

	if cfg.GeminiAPIKey == "" {
		logger.Warn("mode: no Gemini API key configured, humanize requests will fail")
		return nil, cfg.GeminiModel, nil
	}

	gemini, err := provider.NewGemini(context.Background(), provider.GeminiOptions{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		logger.Error("mode: gemini client unavailable", "error", err)
		return nil, cfg.GeminiModel, err
	}
	logger.Info("mode: gemini enabled", "model", gemini.Model())
	return gemini, gemini.Model(), nil
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(h)
}
