package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Panel     PanelConfig
	Research  ResearchConfig
	Browser   BrowserConfig
	Storage   StorageConfig
	Gemini    GeminiConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// PanelConfig holds the side-panel HTTP server configuration.
type PanelConfig struct {
	Host string `envconfig:"PANEL_HOST" default:"127.0.0.1"`
	Port string `envconfig:"PANEL_PORT" default:"8090"`
}

// Origins returns the origins the panel page is served from. A loopback or
// unspecified host is reachable as localhost, 127.0.0.1 and ::1.
func (p PanelConfig) Origins() []string {
	hosts := []string{p.Host}
	if ip := net.ParseIP(p.Host); p.Host == "localhost" || (ip != nil && (ip.IsLoopback() || ip.IsUnspecified())) {
		hosts = []string{"localhost", "127.0.0.1", "::1"}
	}
	origins := make([]string, 0, len(hosts))
	for _, h := range hosts {
		origins = append(origins, "http://"+net.JoinHostPort(h, p.Port))
	}
	return origins
}

// ResearchConfig holds the research service configuration. Endpoint is the
// URL the panel posts selections to; Host and Port are where cmd/research
// listens.
type ResearchConfig struct {
	Host        string `envconfig:"RESEARCH_HOST" default:"0.0.0.0"`
	Port        string `envconfig:"RESEARCH_PORT" default:"8080"`
	Endpoint    string `envconfig:"RESEARCH_ENDPOINT" default:"http://localhost:8080/api/research/process"`
	PromptsFile string `envconfig:"RESEARCH_PROMPTS_FILE"`
}

// BrowserConfig holds the DevTools connection used to read page selections.
type BrowserConfig struct {
	DebugURL string `envconfig:"BROWSER_DEBUG_URL" default:"http://127.0.0.1:9222"`
}

// StorageConfig selects and configures the note store backend.
type StorageConfig struct {
	Driver    string `envconfig:"STORAGE_DRIVER" default:"file"`
	Path      string `envconfig:"STORAGE_PATH"`
	Namespace string `envconfig:"STORAGE_NAMESPACE" default:"panel"`
	RedisURL  string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// GeminiConfig holds the model settings for the research service.
type GeminiConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY"`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
	File        string `envconfig:"LOG_FILE"`
}

// RateLimitConfig holds rate limiting configuration for the research API.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"40"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load reads an optional .env file and then loads configuration from
// environment variables. Variables already set in the environment win over
// the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStoragePath()
	}
	return &cfg, nil
}

// DefaultStoragePath is the note store directory used when STORAGE_PATH is
// unset: research-assistant under the user's config directory, so the note
// survives reboots.
func DefaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "research-assistant")
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Panel: PanelConfig{
			Host: "127.0.0.1",
			Port: "8090",
		},
		Research: ResearchConfig{
			Host:     "0.0.0.0",
			Port:     "8080",
			Endpoint: "http://localhost:8080/api/research/process",
		},
		Browser: BrowserConfig{
			DebugURL: "http://127.0.0.1:9222",
		},
		Storage: StorageConfig{
			Driver:    "file",
			Path:      DefaultStoragePath(),
			Namespace: "panel",
			RedisURL:  "redis://localhost:6379/0",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
			Enabled:           true,
		},
	}
}
