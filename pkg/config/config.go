// Package config loads vibe-analyzer settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"k8s.io/client-go/util/homedir"
)

const (
	ProviderFunction = "function"
	ProviderClaude   = "claude"
	ProviderOpenAI   = "openai"

	defaultFunctionName = "analyze-prompt"
	defaultTimeout      = 60 * time.Second
	defaultOutput       = "human"
	fileName            = ".vibe-analyzer.yaml"
)

// Config holds all vibe-analyzer configuration.
type Config struct {
	// Provider selects the analysis backend: function, claude or openai.
	Provider string         `yaml:"provider"`
	Function FunctionConfig `yaml:"function"`
	Claude   LLMConfig      `yaml:"claude"`
	OpenAI   LLMConfig      `yaml:"openai"`
	Timeout  string         `yaml:"timeout"`
	Output   string         `yaml:"output"`
}

// FunctionConfig points at the hosted analysis function.
type FunctionConfig struct {
	URL    string `yaml:"url"`
	Name   string `yaml:"name"`
	APIKey string `yaml:"api_key"`
}

type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// DefaultPath returns ~/.vibe-analyzer.yaml, or "" when no home directory is known.
func DefaultPath() string {
	home := homedir.HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, fileName)
}

// Load reads path (a missing file is fine), applies environment overrides and fills
// defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.Function.URL = v
	}
	if v := os.Getenv("SUPABASE_ANON_KEY"); v != "" {
		c.Function.APIKey = v
	}
	if v := os.Getenv("ANALYSIS_FUNCTION"); v != "" {
		c.Function.Name = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.Claude.APIKey = v
	}
	if v := os.Getenv("CLAUDE_MODEL"); v != "" {
		c.Claude.Model = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.OpenAI.Model = v
	}
}

func (c *Config) applyDefaults() {
	if c.Provider == "" {
		// A configured function wins; otherwise fall back to Claude.
		if c.Function.URL != "" {
			c.Provider = ProviderFunction
		} else {
			c.Provider = ProviderClaude
		}
	}
	if c.Function.Name == "" {
		c.Function.Name = defaultFunctionName
	}
	if c.Timeout == "" {
		c.Timeout = defaultTimeout.String()
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}
}

// Validate checks that the selected provider has what it needs.
func (c *Config) Validate() error {
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	switch c.Provider {
	case ProviderFunction:
		if c.Function.URL == "" {
			return fmt.Errorf("function provider requires a url (set function.url or SUPABASE_URL)")
		}
	case ProviderClaude:
		if c.Claude.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	default:
		return fmt.Errorf("unsupported provider: %s (supported: function, claude, openai)", c.Provider)
	}
	return nil
}

// LLM returns the settings of the selected LLM provider, or nil for the function backend.
func (c *Config) LLM() *LLMConfig {
	switch c.Provider {
	case ProviderClaude:
		return &c.Claude
	case ProviderOpenAI:
		return &c.OpenAI
	default:
		return nil
	}
}

// TimeoutDuration parses Timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q", c.Timeout)
	}
	return d, nil
}
