package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type config struct {
	port            int
	env             string
	appName         string
	shutdownTimeout time.Duration
	metrics         struct {
		enabled bool
	}
	cors struct {
		trustedOrigins []string
	}
}

type application struct {
	config  config
	logger  *slog.Logger
	metrics *metrics
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := loadEnvFile(".env")
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	app := newApplication(cfg, logger)

	err = app.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newApplication(cfg config, logger *slog.Logger) *application {
	return &application{
		config:  cfg,
		logger:  logger,
		metrics: newMetrics(),
	}
}

// loadEnvFile copies variables from path into the process environment
// without overriding ones already set. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadConfig(args []string, getenv func(string) string) (config, error) {
	var cfg config

	port, err := envInt(getenv, "PORT", 4000)
	if err != nil {
		return config{}, err
	}

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&cfg.port, "port", port, "API port")
	fs.StringVar(&cfg.env, "env", envString(getenv, "ENVIRONMENT", "development"), "Environment (development|staging|production)")
	fs.StringVar(&cfg.appName, "app-name", envString(getenv, "APP_NAME", "ci-pipeline-demo"), "Application name reported by /info")
	fs.DurationVar(&cfg.shutdownTimeout, "shutdown-timeout", 30*time.Second, "Graceful shutdown timeout")

	fs.BoolVar(&cfg.metrics.enabled, "metrics-enabled", true, "Expose Prometheus metrics at /metrics")

	// CORS configuration
	fs.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.cors.trustedOrigins = strings.Fields(val)
		return nil
	})

	err = fs.Parse(args)
	if err != nil {
		return config{}, err
	}

	switch {
	case cfg.port < 1 || cfg.port > 65535:
		return config{}, errors.New("port must be between 1 and 65535")
	case strings.TrimSpace(cfg.env) == "":
		return config{}, errors.New("environment must not be empty")
	case strings.TrimSpace(cfg.appName) == "":
		return config{}, errors.New("app name must not be empty")
	case cfg.shutdownTimeout <= 0:
		return config{}, errors.New("shutdown timeout must be positive")
	}

	return cfg, nil
}

func envString(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
