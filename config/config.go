// Package config loads server settings from an optional YAML file and the
// environment. Environment values win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SourceAI      = "ai"
	SourceCatalog = "catalog"
)

type Config struct {
	Port           string        `yaml:"port"`
	Mode           string        `yaml:"mode"`
	Source         string        `yaml:"source"`
	CatalogPath    string        `yaml:"catalog_path"`
	AIProvider     string        `yaml:"ai_provider"`
	AIModel        string        `yaml:"ai_model"`
	AIBaseURL      string        `yaml:"ai_base_url"`
	AITimeout      time.Duration `yaml:"ai_timeout"`
	GeminiKey      string        `yaml:"-"`
	DeepSeekKey    string        `yaml:"-"`
	SearchDebounce time.Duration `yaml:"search_debounce"`
	HandoffTTL     time.Duration `yaml:"handoff_ttl"`
	CORSOrigins    []string      `yaml:"cors_origins"`
}

func Defaults() Config {
	return Config{
		Port:           "8090",
		Mode:           "release",
		Source:         SourceAI,
		CatalogPath:    "influencers.db",
		AIProvider:     "gemini",
		AITimeout:      60 * time.Second,
		SearchDebounce: time.Second,
		HandoffTTL:     time.Minute,
	}
}

// Load reads .env (if present), then path (if present), then the environment.
// A missing file is not an error; API keys are only read from the environment.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: .env: %v", err)
	}

	cfg := Defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.Mode, "GIN_MODE")
	setString(&cfg.Source, "SOURCE")
	setString(&cfg.CatalogPath, "CATALOG_PATH")
	setString(&cfg.AIProvider, "AI_PROVIDER")
	setString(&cfg.AIModel, "AI_MODEL")
	setString(&cfg.AIBaseURL, "AI_BASE_URL")
	setString(&cfg.GeminiKey, "AUTH_GOOGLE_GEN_AI_KEY")
	setString(&cfg.DeepSeekKey, "DEEPSEEK_API_KEY")
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	for key, dst := range map[string]*time.Duration{
		"AI_TIMEOUT":      &cfg.AITimeout,
		"SEARCH_DEBOUNCE": &cfg.SearchDebounce,
		"HANDOFF_TTL":     &cfg.HandoffTTL,
	} {
		if v := os.Getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", key, v, err)
			}
			*dst = d
		}
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceAI, SourceCatalog:
	default:
		return fmt.Errorf("unknown source %q (want %q or %q)", c.Source, SourceAI, SourceCatalog)
	}
	if c.Source == SourceCatalog && c.CatalogPath == "" {
		return errors.New("catalog source needs CATALOG_PATH")
	}
	if c.SearchDebounce <= 0 {
		return errors.New("SEARCH_DEBOUNCE must be positive")
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
