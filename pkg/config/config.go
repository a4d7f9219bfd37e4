package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Port        string `yaml:"port" env:"PORT"`
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`

	JWTSecret           string `yaml:"jwt_secret" env:"JWT_SECRET"`
	JWTIssuer           string `yaml:"jwt_issuer" env:"JWT_ISSUER"`
	JWTAccessTTLMinutes int    `yaml:"jwt_access_ttl_minutes" env:"JWT_ACCESS_TTL_MINUTES"`
	JWTRefreshTTLHours  int    `yaml:"jwt_refresh_ttl_hours" env:"JWT_REFRESH_TTL_HOURS"`

	GroqAPIKey    string `yaml:"groq_api_key" env:"GROQ_API_KEY"`
	GroqBaseURL   string `yaml:"groq_base_url" env:"GROQ_BASE_URL"`
	GroqModel     string `yaml:"groq_model" env:"GROQ_MODEL"`
	GeminiAPIKey  string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	GeminiBaseURL string `yaml:"gemini_base_url" env:"GEMINI_BASE_URL"`
	GeminiModel   string `yaml:"gemini_model" env:"GEMINI_MODEL"`
	LLMTimeoutSec int    `yaml:"llm_timeout_seconds" env:"LLM_TIMEOUT_SECONDS"`

	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`

	CORSAllowOrigins string `yaml:"cors_allow_origins" env:"CORS_ALLOW_ORIGINS"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:                "3001",
		DatabaseURL:         "sqlite://aicomparator.db",
		JWTSecret:           "dev-secret-change",
		JWTIssuer:           "ai-comparator",
		JWTAccessTTLMinutes: 60,
		JWTRefreshTTLHours:  24 * 7,
		GroqBaseURL:         "https://api.groq.com/openai/v1",
		GroqModel:           "llama-3.3-70b-versatile",
		GeminiBaseURL:       "https://generativelanguage.googleapis.com/v1beta",
		GeminiModel:         "gemini-flash-latest",
		LLMTimeoutSec:       60,
		LogLevel:            "info",
		LogFormat:           "json",
		CORSAllowOrigins:    "*",
	}
}

// Load reads configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables (optionally from a .env file), in
// increasing order of precedence.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.JWTAccessTTLMinutes <= 0 || cfg.JWTRefreshTTLHours <= 0 {
		return Config{}, fmt.Errorf("token lifetimes must be positive")
	}
	return cfg, nil
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Database splits DatabaseURL into a driver name and its DSN.
// postgres:// and postgresql:// URLs are passed to pgx unchanged;
// sqlite://path and file: URIs select the embedded SQLite backend.
func (c Config) Database() (driver, dsn string, err error) {
	u := strings.TrimSpace(c.DatabaseURL)
	switch {
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"):
		return DriverPostgres, u, nil
	case strings.HasPrefix(u, "sqlite://"):
		path := strings.TrimPrefix(u, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("DATABASE_URL %q has no sqlite path", u)
		}
		return DriverSQLite, path, nil
	case strings.HasPrefix(u, "file:"):
		return DriverSQLite, u, nil
	default:
		return "", "", fmt.Errorf("unsupported DATABASE_URL %q: use postgres:// or sqlite://", u)
	}
}

func (c Config) AccessTTL() time.Duration { return time.Duration(c.JWTAccessTTLMinutes) * time.Minute }

func (c Config) RefreshTTL() time.Duration { return time.Duration(c.JWTRefreshTTLHours) * time.Hour }

func (c Config) LLMTimeout() time.Duration { return time.Duration(c.LLMTimeoutSec) * time.Second }
