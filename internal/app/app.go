package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"device-compare/internal/api"
	"device-compare/internal/config"
	"device-compare/internal/llm"
	"device-compare/internal/schema"
	"device-compare/internal/service"
)

// App bundles the wired HTTP server.
type App struct {
	Server  *http.Server
	Service *service.ComparisonService
}

// NewApp wires the service, handler and router around an existing provider.
func NewApp(cfg *config.Config, provider llm.Provider) (*App, error) {
	outputSchema, err := schema.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load comparison schema: %w", err)
	}

	comparisonService := service.NewComparisonService(provider, outputSchema)
	geminiHandler := api.NewGeminiHandler(comparisonService)
	router := api.NewRouter(geminiHandler, cfg.RequestTimeout)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{Server: server, Service: comparisonService}, nil
}

// Run loads configuration, creates the process-wide Gemini client and serves
// HTTP until SIGINT/SIGTERM. It returns the process exit code.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	SetupLogger(cfg.LogLevel, os.Stdout, true)
	logConfigSource(cfg)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize Gemini client", "error", err)
		return 1
	}
	defer func() {
		if err := provider.Close(); err != nil {
			slog.Warn("Failed to close Gemini client", "error", err)
		}
	}()
	slog.Info("Gemini client initialized", "model", cfg.GeminiModel)

	application, err := NewApp(cfg, provider)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}

	if err := application.Serve(ctx); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}
	return 0
}

// NewProvider creates the Gemini provider from configuration.
func NewProvider(ctx context.Context, cfg *config.Config) (*llm.GeminiProvider, error) {
	return llm.NewGeminiProvider(ctx, llm.GeminiConfig{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		Temperature: cfg.GeminiTemperature,
		Timeout:     cfg.GeminiTimeout,
	})
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}

func logConfigSource(cfg *config.Config) {
	if cfg.ConfigFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", cfg.ConfigFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

// SetupLogger installs the default slog logger at the given level.
func SetupLogger(logLevel string, w io.Writer, asJSON bool) {
	opts := &slog.HandlerOptions{Level: ParseLevel(logLevel)}

	var handler slog.Handler
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps a LOG_LEVEL value to a slog level, defaulting to INFO.
func ParseLevel(logLevel string) slog.Level {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
