// Package ai asks a generative model for JSON documents shaped by a schema.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

// SystemInstruction frames every request sent to a provider.
const SystemInstruction = "You are a researcher in the health and social media industry"

var (
	ErrProviderNotRegistered = errors.New("ai: provider not registered")
	ErrInvalidJSON           = errors.New("ai: response is not valid JSON")
	ErrEmptyResponse         = errors.New("ai: empty response")
)

// Generator returns a JSON document that follows schema, produced from prompt.
type Generator interface {
	Generate(ctx context.Context, schema *Schema, prompt string) ([]byte, error)
}

// FactoryConfig captures the inputs required to construct a provider.
type FactoryConfig struct {
	Provider    string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	GeminiKey   string
	DeepSeekKey string
	HTTPClient  *http.Client
}

// ProviderFactory builds a Generator for one provider.
type ProviderFactory func(FactoryConfig) (Generator, error)

const defaultProvider = "gemini"

var (
	mu        sync.RWMutex
	providers = map[string]ProviderFactory{}
)

// RegisterProvider registers a provider factory under one or more names.
func RegisterProvider(name string, factory ProviderFactory, aliases ...string) {
	mu.Lock()
	defer mu.Unlock()

	for _, n := range append([]string{name}, aliases...) {
		providers[strings.ToLower(n)] = factory
	}
}

// NewGenerator returns the generator for cfg.Provider, gemini by default.
func NewGenerator(cfg FactoryConfig) (Generator, error) {
	name := strings.TrimSpace(cfg.Provider)
	if name == "" {
		name = defaultProvider
	}

	mu.RLock()
	factory := providers[strings.ToLower(name)]
	mu.RUnlock()

	if factory == nil {
		return nil, fmt.Errorf("%w: %q", ErrProviderNotRegistered, name)
	}
	return factory(cfg)
}

// Decode parses a model response into v. Responses wrapped in prose or code
// fences are reduced to their outermost JSON object first.
func Decode(raw []byte, v any) error {
	err := json.Unmarshal(raw, v)
	if err == nil {
		return nil
	}
	text := string(raw)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		if err = json.Unmarshal([]byte(text[start:end+1]), v); err == nil {
			return nil
		}
	}
	log.Printf("ai: error parsing JSON: %v", err)
	return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
}

func httpClient(cfg FactoryConfig) *http.Client {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func valueOrDefault(val, def string) string {
	if strings.TrimSpace(val) != "" {
		return val
	}
	return def
}
