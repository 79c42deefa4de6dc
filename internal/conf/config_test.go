package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/callerguard-backend/internal/lookup/biz"
	wstypes "github.com/lk2023060901/callerguard-backend/internal/websearch/types"
)

var credentialVars = []string{
	"SEARCH_API_KEY", "SERPER_API_KEY",
	"LLM_API_KEY", "DEEPSEEK_API_KEY",
	"LLM_MODEL", "SERVER_PORT",
}

// clearEnv unsets credential variables for the test and restores them after.
// t.Setenv cannot be used because godotenv skips variables that already exist.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range credentialVars {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { _ = os.Unsetenv(key) })
		}
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Setenv("SERPER_API_KEY", "serper"))
	require.NoError(t, os.Setenv("DEEPSEEK_API_KEY", "deepseek"))

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "serper", cfg.Search.APIKey)
	assert.Equal(t, wstypes.ProviderSerper, cfg.Search.ID)
	assert.Equal(t, "https://google.serper.dev", cfg.Search.APIHost)
	assert.Equal(t, 20, cfg.Search.Timeout)
	assert.Equal(t, "deepseek", cfg.LLM.APIKey)
	assert.Equal(t, "https://api.deepseek.com", cfg.LLM.BaseURL)
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.Equal(t, 25*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 200, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, biz.DefaultPolicy(), cfg.Policy())
	assert.Equal(t, biz.DefaultSummaryOptions(), cfg.SummaryOptions())
}

func TestLoadConfig_FileAndEnvFile(t *testing.T) {
	clearEnv(t)

	configPath := writeFile(t, "config.yaml", `
server:
  port: 9090
log:
  level: debug
  format: console
llm:
  model: deepseek-reasoner
  timeout: 40s
lookup:
  include_related: true
  max_results: 4
`)
	envPath := writeFile(t, "key.env", "SERPER_API_KEY=from-dotenv\nDEEPSEEK_API_KEY=ds-dotenv\n")

	cfg, err := LoadConfig(configPath, envPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "deepseek-reasoner", cfg.LLM.Model)
	assert.Equal(t, 40*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "from-dotenv", cfg.Search.APIKey)
	assert.Equal(t, "ds-dotenv", cfg.LLM.APIKey)

	policy := cfg.Policy()
	assert.True(t, policy.IncludeRelated)
	assert.Equal(t, 4, policy.MaxResults)
	assert.Equal(t, biz.DefaultKeywords, policy.Keywords)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	configPath := writeFile(t, "config.yaml", "llm:\n  model: from-file\n")
	require.NoError(t, os.Setenv("SEARCH_API_KEY", "primary"))
	require.NoError(t, os.Setenv("SERPER_API_KEY", "alias"))
	require.NoError(t, os.Setenv("LLM_API_KEY", "llm"))
	require.NoError(t, os.Setenv("LLM_MODEL", "from-env"))

	cfg, err := LoadConfig(configPath, filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.Search.APIKey)
	assert.Equal(t, "from-env", cfg.LLM.Model)
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	clearEnv(t)
	noEnv := filepath.Join(t.TempDir(), "none.env")

	_, err := LoadConfig("", noEnv)
	assert.ErrorIs(t, err, ErrMissingSearchKey)

	require.NoError(t, os.Setenv("SERPER_API_KEY", "serper"))
	_, err = LoadConfig("", noEnv)
	assert.ErrorIs(t, err, ErrMissingLLMKey)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Search: wstypes.ProviderConfig{ID: wstypes.ProviderSerper, Name: "Serper", APIHost: "http://s", APIKey: "k"},
			LLM:    LLMConfig{APIKey: "k", BaseURL: "http://l"},
			Lookup: LookupConfig{ScriptThreshold: 0.7, MaxResults: 6},
		}
	}

	cfg := valid()
	cfg.Log.Level, cfg.Log.Format, cfg.Log.Output = "info", "json", "console"
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Lookup.ScriptThreshold = 1.5
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Lookup.MaxResults = 0
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Search.APIHost = ""
	assert.ErrorIs(t, bad.Validate(), wstypes.ErrInvalidAPIHost)

	bad = *cfg
	bad.Search = wstypes.ProviderConfig{ID: wstypes.ProviderSearXNG, Name: "SearXNG", APIHost: "http://x"}
	assert.NoError(t, bad.Validate(), "searxng needs no API key")

	bad = *cfg
	bad.Log.Output = "syslog"
	assert.Error(t, bad.Validate())
}
