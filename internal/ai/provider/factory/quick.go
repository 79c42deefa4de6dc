package factory

import (
	"time"

	"github.com/lk2023060901/callerguard-backend/internal/ai/provider/types"
)

const (
	// DeepSeekBaseURL DeepSeek OpenAI 兼容接口地址
	DeepSeekBaseURL = "https://api.deepseek.com"
	// DeepSeekChatModel DeepSeek 默认对话模型
	DeepSeekChatModel = "deepseek-chat"
)

// Option 配置选项函数
type Option func(*types.Config)

// WithModel 返回设置模型的 Option
func WithModel(model string) Option {
	return func(c *types.Config) {
		if model != "" {
			c.Model = model
		}
	}
}

// WithBaseURL 返回覆盖 Base URL 的 Option（空值忽略）
func WithBaseURL(baseURL string) Option {
	return func(c *types.Config) {
		if baseURL != "" {
			c.BaseURL = baseURL
		}
	}
}

// WithTimeout 返回设置超时的 Option
func WithTimeout(timeout time.Duration) Option {
	return func(c *types.Config) {
		if timeout > 0 {
			c.Timeout = timeout
		}
	}
}

// WithHeader 返回添加单个 Header 的 Option
func WithHeader(key, value string) Option {
	return func(c *types.Config) {
		if c.Headers == nil {
			c.Headers = make(map[string]string)
		}
		c.Headers[key] = value
	}
}

// DeepSeek 快速创建 DeepSeek 配置（基于 OpenAI 协议）
func DeepSeek(apiKey string, opts ...Option) *types.Config {
	return build(&types.Config{
		APIKey:  apiKey,
		BaseURL: DeepSeekBaseURL,
		Timeout: types.DefaultTimeout,
		Model:   DeepSeekChatModel,
		Headers: make(map[string]string),
	}, opts)
}

// OpenAI 快速创建 OpenAI 配置
func OpenAI(apiKey string, opts ...Option) *types.Config {
	return build(&types.Config{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Timeout: types.DefaultTimeout,
		Headers: make(map[string]string),
	}, opts)
}

// OpenAICompatible 快速创建 OpenAI 兼容配置
func OpenAICompatible(apiKey, baseURL string, opts ...Option) *types.Config {
	return build(&types.Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Timeout: types.DefaultTimeout,
		Headers: make(map[string]string),
	}, opts)
}

func build(config *types.Config, opts []Option) *types.Config {
	for _, opt := range opts {
		opt(config)
	}
	return config
}
