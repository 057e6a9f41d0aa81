package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/badgerttl/ipcalc/internal/domain"
	apihttp "github.com/badgerttl/ipcalc/internal/http"
)

type Config struct {
	Port         string        `yaml:"port"`
	LogLevel     string        `yaml:"logLevel"`
	ReadTimeout  time.Duration `yaml:"-"`
	WriteTimeout time.Duration `yaml:"-"`
	AuthEnabled  bool          `yaml:"authEnabled"`
	AuthIssuer   string        `yaml:"authIssuer"`
	AuthAudience string        `yaml:"authAudience"`
}

// LoadConfig builds the configuration from an optional YAML file named by
// CONFIG_FILE, then lets individual environment variables override it.
func LoadConfig() (Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("AUTH_ENABLED"); v != "" {
		cfg.AuthEnabled = v == "true" || v == "1"
	}
	if v := os.Getenv("AUTH_ISSUER"); v != "" {
		cfg.AuthIssuer = v
	}
	if v := os.Getenv("AUTH_AUDIENCE"); v != "" {
		cfg.AuthAudience = v
	}

	if cfg.Port == "" {
		cfg.Port = "4040"
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 3 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 3 * time.Second
	}
	return cfg, nil
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Run listens on the configured port and serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve wires the calculator service and API onto the given listener and
// shuts down gracefully when ctx is cancelled. The listener is closed by
// the server.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	service := domain.NewLoggingCalculatorService(logger, domain.NewCalculatorService())

	api := apihttp.NewAPI(logger, service)
	api.InitAuth(apihttp.AuthConfig{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		Audience: cfg.AuthAudience,
	})

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
