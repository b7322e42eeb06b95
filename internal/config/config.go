package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	yamlfile "github.com/Victor-armando18/cupcake-corner/internal/infrastructure/yaml"
)

const DefaultEndpoint = "https://reqres.in/api/cupcakes"

type Config struct {
	Endpoint string `yaml:"endpoint" validate:"required,url"`
	// RequestTimeout of zero keeps the HTTP transport default.
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"gte=0"`
	LogLevel       string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Server         ServerConfig  `yaml:"server"`
}

// ServerConfig drives the development endpoint in cmd/cupcake-api.
type ServerConfig struct {
	Listen       string `yaml:"listen" validate:"required"`
	RulesDir     string `yaml:"rules_dir" validate:"required"`
	RulesVersion string `yaml:"rules_version" validate:"required"`
}

func Default() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		LogLevel: "info",
		Server: ServerConfig{
			Listen:       ":8080",
			RulesDir:     "rules",
			RulesVersion: "v1",
		},
	}
}

// Load layers defaults, the optional YAML file at path, a .env file in the
// working directory and CUPCAKE_* environment variables, then validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := yamlfile.LoadFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}
	cfg.applyEnv()

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"CUPCAKE_ENDPOINT":      &c.Endpoint,
		"CUPCAKE_LOG_LEVEL":     &c.LogLevel,
		"CUPCAKE_LISTEN":        &c.Server.Listen,
		"CUPCAKE_RULES_DIR":     &c.Server.RulesDir,
		"CUPCAKE_RULES_VERSION": &c.Server.RulesVersion,
	}
	for key, dst := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
}

// Logger builds the process logger at the configured level.
func (c Config) Logger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
