package llm

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Provider represents the LLM provider type
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
)

// Factory creates LLM instances based on provider
type Factory struct{}

// NewFactory creates a new LLM factory
func NewFactory() *Factory {
	return &Factory{}
}

// CreateLLM creates an LLM instance based on provider and configuration.
// Recognised keys: api_key, model, base_url, timeout.
func (f *Factory) CreateLLM(provider Provider, config map[string]string) (LLM, error) {
	timeout, err := parseTimeout(config["timeout"])
	if err != nil {
		return nil, err
	}

	switch Provider(strings.ToLower(string(provider))) {
	case ProviderClaude:
		apiKey := config["api_key"]
		if apiKey == "" {
			return nil, fmt.Errorf("Claude API key is required")
		}
		c := NewClaude(apiKey)
		if model := config["model"]; model != "" {
			c.model = model
		}
		if baseURL := config["base_url"]; baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
		c.client = &http.Client{Timeout: timeout}
		return c, nil

	case ProviderOpenAI:
		apiKey := config["api_key"]
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		o := NewOpenAI(apiKey)
		if model := config["model"]; model != "" {
			o.model = model
		}
		if baseURL := config["base_url"]; baseURL != "" {
			o.baseURL = strings.TrimSuffix(baseURL, "/")
		}
		o.client = &http.Client{Timeout: timeout}
		return o, nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// GetAvailableProviders returns a list of available LLM providers
func (f *Factory) GetAvailableProviders() []Provider {
	return []Provider{ProviderClaude, ProviderOpenAI}
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 60 * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q", s)
	}
	return d, nil
}
