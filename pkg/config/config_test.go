package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SUPABASE_URL", "SUPABASE_ANON_KEY", "ANALYSIS_FUNCTION", "LLM_PROVIDER",
		"ANTHROPIC_API_KEY", "CLAUDE_MODEL", "OPENAI_API_KEY", "OPENAI_MODEL",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ProviderClaude, cfg.Provider)
	assert.Equal(t, "analyze-prompt", cfg.Function.Name)
	assert.Equal(t, "human", cfg.Output)
	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, d)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
function:
  url: https://demo.supabase.co
  api_key: anon
timeout: 30s
output: yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderFunction, cfg.Provider)
	assert.Equal(t, "https://demo.supabase.co", cfg.Function.URL)
	assert.Equal(t, "anon", cfg.Function.APIKey)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Nil(t, cfg.LLM())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "provider: [unterminated"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("SUPABASE_URL selects the function provider", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SUPABASE_URL", "https://env.supabase.co")
		t.Setenv("SUPABASE_ANON_KEY", "env-key")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, ProviderFunction, cfg.Provider)
		assert.Equal(t, "env-key", cfg.Function.APIKey)
	})

	t.Run("LLM_PROVIDER openai reads OpenAI keys", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LLM_PROVIDER", "OpenAI")
		t.Setenv("OPENAI_API_KEY", "oa-key")
		t.Setenv("OPENAI_MODEL", "gpt-4.1")
		t.Setenv("ANTHROPIC_API_KEY", "ant-key")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, ProviderOpenAI, cfg.Provider)
		assert.Equal(t, "oa-key", cfg.LLM().APIKey)
		assert.Equal(t, "gpt-4.1", cfg.LLM().Model)
		assert.Equal(t, "ant-key", cfg.Claude.APIKey)
	})

	t.Run("env overrides file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "ant-key")
		path := writeConfig(t, "provider: claude\nclaude:\n  api_key: file-key\n  model: claude-opus\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "ant-key", cfg.LLM().APIKey)
		assert.Equal(t, "claude-opus", cfg.LLM().Model)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "function without url", cfg: Config{Provider: ProviderFunction, Timeout: "1s"}, wantErr: true},
		{name: "claude without key", cfg: Config{Provider: ProviderClaude, Timeout: "1s"}, wantErr: true},
		{name: "openai with key", cfg: Config{Provider: ProviderOpenAI, Timeout: "1s", OpenAI: LLMConfig{APIKey: "k"}}},
		{name: "unknown provider", cfg: Config{Provider: "gemini", Timeout: "1s"}, wantErr: true},
		{name: "bad timeout", cfg: Config{Provider: ProviderFunction, Timeout: "-5s", Function: FunctionConfig{URL: "u"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
