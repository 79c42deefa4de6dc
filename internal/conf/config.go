package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lk2023060901/callerguard-backend/internal/ai/provider/factory"
	"github.com/lk2023060901/callerguard-backend/internal/lookup/biz"
	"github.com/lk2023060901/callerguard-backend/internal/pkg/logger"
	"github.com/lk2023060901/callerguard-backend/internal/websearch/provider"
	wstypes "github.com/lk2023060901/callerguard-backend/internal/websearch/types"
)

// DefaultEnvFiles are loaded, when present, before the environment is read
var DefaultEnvFiles = []string{"key.env", ".env"}

var (
	ErrMissingSearchKey = errors.New("search API key is required (SERPER_API_KEY)")
	ErrMissingLLMKey    = errors.New("LLM API key is required (DEEPSEEK_API_KEY)")
)

type Config struct {
	Server ServerConfig           `mapstructure:"server"`
	Log    logger.Config          `mapstructure:"log"`
	Search wstypes.ProviderConfig `mapstructure:"search"`
	LLM    LLMConfig              `mapstructure:"llm"`
	Lookup LookupConfig           `mapstructure:"lookup"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LLMConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	BaseURL       string        `mapstructure:"base_url"`
	Model         string        `mapstructure:"model"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxTokens     int           `mapstructure:"max_tokens"`
	Temperature   float64       `mapstructure:"temperature"`
	TokenEncoding string        `mapstructure:"token_encoding"` // empty disables prompt token estimates
}

type LookupConfig struct {
	ScriptThreshold float64  `mapstructure:"script_threshold"`
	Keywords        []string `mapstructure:"keywords"`
	RequireKeyword  bool     `mapstructure:"require_keyword"`
	KeywordQuery    bool     `mapstructure:"keyword_query"`
	MaxResults      int      `mapstructure:"max_results"`
	IncludeRelated  bool     `mapstructure:"include_related"`
	MaxRelated      int      `mapstructure:"max_related"`
}

// LoadConfig reads dotenv files, then the YAML file at path, then the
// environment. A missing config file or env file is not an error; missing
// credentials are.
func LoadConfig(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = DefaultEnvFiles
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("search.api_key", "SEARCH_API_KEY", "SERPER_API_KEY")
	_ = v.BindEnv("llm.api_key", "LLM_API_KEY", "DEEPSEEK_API_KEY")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "5s")

	logDefaults := logger.DefaultConfig()
	v.SetDefault("log.level", logDefaults.Level)
	v.SetDefault("log.format", logDefaults.Format)
	v.SetDefault("log.output", logDefaults.Output)
	v.SetDefault("log.service", logDefaults.Service)
	v.SetDefault("log.enablecaller", logDefaults.EnableCaller)
	v.SetDefault("log.enablestacktrace", logDefaults.EnableStacktrace)
	v.SetDefault("log.file.filename", logDefaults.File.Filename)
	v.SetDefault("log.file.maxsize", logDefaults.File.MaxSize)
	v.SetDefault("log.file.maxage", logDefaults.File.MaxAge)
	v.SetDefault("log.file.maxbackups", logDefaults.File.MaxBackups)
	v.SetDefault("log.file.compress", logDefaults.File.Compress)

	policy := biz.DefaultPolicy()
	v.SetDefault("search.id", string(wstypes.ProviderSerper))
	v.SetDefault("search.name", "Serper")
	v.SetDefault("search.api_host", provider.DefaultSerperHost)
	v.SetDefault("search.api_key", "")
	v.SetDefault("search.basic_auth_username", "")
	v.SetDefault("search.basic_auth_password", "")
	v.SetDefault("search.country", policy.Country)
	v.SetDefault("search.language", policy.Language)
	v.SetDefault("search.timeout", 20)

	summary := biz.DefaultSummaryOptions()
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", factory.DeepSeekBaseURL)
	v.SetDefault("llm.model", summary.Model)
	v.SetDefault("llm.timeout", "25s")
	v.SetDefault("llm.max_tokens", summary.MaxTokens)
	v.SetDefault("llm.temperature", summary.Temperature)
	v.SetDefault("llm.token_encoding", "cl100k_base")

	v.SetDefault("lookup.script_threshold", policy.ScriptThreshold)
	v.SetDefault("lookup.keywords", policy.Keywords)
	v.SetDefault("lookup.require_keyword", policy.RequireKeyword)
	v.SetDefault("lookup.keyword_query", policy.KeywordQuery)
	v.SetDefault("lookup.max_results", policy.MaxResults)
	v.SetDefault("lookup.include_related", policy.IncludeRelated)
	v.SetDefault("lookup.max_related", policy.MaxRelated)
}

// Validate checks credentials and value ranges
func (c *Config) Validate() error {
	if c.Search.ID != wstypes.ProviderSearXNG && c.Search.APIKey == "" {
		return ErrMissingSearchKey
	}
	if err := c.Search.Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if c.LLM.APIKey == "" {
		return ErrMissingLLMKey
	}
	if c.LLM.BaseURL == "" {
		return errors.New("llm: base_url is required")
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Lookup.ScriptThreshold <= 0 || c.Lookup.ScriptThreshold > 1 {
		return fmt.Errorf("lookup: script_threshold must be in (0, 1], got %v", c.Lookup.ScriptThreshold)
	}
	if c.Lookup.MaxResults <= 0 {
		return fmt.Errorf("lookup: max_results must be positive, got %d", c.Lookup.MaxResults)
	}
	return nil
}

// Policy builds the filtering policy, scoped to the search locale
func (c *Config) Policy() biz.Policy {
	return biz.Policy{
		ScriptThreshold: c.Lookup.ScriptThreshold,
		Keywords:        c.Lookup.Keywords,
		RequireKeyword:  c.Lookup.RequireKeyword,
		KeywordQuery:    c.Lookup.KeywordQuery,
		MaxResults:      c.Lookup.MaxResults,
		IncludeRelated:  c.Lookup.IncludeRelated,
		MaxRelated:      c.Lookup.MaxRelated,
		Country:         c.Search.Country,
		Language:        c.Search.Language,
	}
}

// SummaryOptions returns the sampling parameters of summary requests
func (c *Config) SummaryOptions() biz.SummaryOptions {
	return biz.SummaryOptions{
		Model:       c.LLM.Model,
		MaxTokens:   c.LLM.MaxTokens,
		Temperature: c.LLM.Temperature,
	}
}

// Addr returns the HTTP listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
