package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
llm:
  api_key: "sk-test"
  reasoning:
    model: "custom-70b"
search:
  provider: "searxng"
  searxng:
    base_url: "http://localhost:8080"
db:
  driver: "sqlite"
  source: "file:reports.db"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, DefaultLLMBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, "custom-70b", cfg.LLM.Reasoning.Model)
	assert.Equal(t, 2048, cfg.LLM.Reasoning.MaxTokens)
	assert.Equal(t, DefaultFastModel, cfg.LLM.Fast.Model)
	require.NotNil(t, cfg.LLM.Fast.Temperature)
	assert.Equal(t, float32(0), *cfg.LLM.Fast.Temperature)
	assert.Equal(t, 512, cfg.LLM.Fast.MaxTokens)
	assert.Equal(t, DefaultQuerySuffix, cfg.Search.QuerySuffix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GROQ_API_KEY":   "gsk-env",
		"TAVILY_API_KEY": "tvly-env",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "gsk-env", cfg.LLM.APIKey)
	assert.Equal(t, "tvly-env", cfg.Search.Tavily.APIKey)

	// 配置文件中的值优先
	cfg = Default()
	cfg.LLM.APIKey = "from-file"
	cfg.ApplyEnv(func(k string) string { return env[k] })
	assert.Equal(t, "from-file", cfg.LLM.APIKey)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Search.Provider = "bing"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.DB.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.DB.Driver = "postgres"
	assert.Error(t, cfg.Validate())
}
