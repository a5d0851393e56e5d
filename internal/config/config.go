package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "pomobar.yaml"

type Config struct {
	Port            string        `yaml:"port"`
	DBPath          string        `yaml:"db_path"`
	MigrationsDir   string        `yaml:"migrations_dir"`
	TickInterval    time.Duration `yaml:"tick_interval"`
	ControlPassword string        `yaml:"control_password"`
	JWTSecret       string        `yaml:"jwt_secret"`
	TokenTTL        time.Duration `yaml:"token_ttl"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	Chime           bool          `yaml:"chime"`
}

// Defaults leaves MigrationsDir empty, which selects the embedded schema.
func Defaults() Config {
	return Config{
		Port:         "8080",
		DBPath:       "./data/pomobar.db",
		TickInterval: time.Second,
		JWTSecret:    "change-this-secret",
		TokenTTL:     72 * time.Hour,
		CORSOrigins:  []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		Chime:        true,
	}
}

// Load layers defaults, an optional YAML file and environment variables, in
// that order. A .env file in the working directory is read into the
// environment first when present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Defaults()

	path := os.Getenv("CONFIG_FILE")
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if err := loadFile(&cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.MigrationsDir = getEnv("MIGRATIONS_DIR", cfg.MigrationsDir)
	cfg.TickInterval = getEnvDuration("TICK_INTERVAL_MS", time.Millisecond, cfg.TickInterval)
	cfg.ControlPassword = getEnv("CONTROL_PASSWORD", cfg.ControlPassword)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.TokenTTL = getEnvDuration("TOKEN_TTL_HOURS", time.Hour, cfg.TokenTTL)
	cfg.CORSOrigins = getEnvList("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.Chime = getEnvBool("CHIME", cfg.Chime)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// getEnvDuration reads a whole number of units. Unset or malformed values
// leave fallback untouched.
func getEnvDuration(key string, unit, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return time.Duration(parsed) * unit
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
