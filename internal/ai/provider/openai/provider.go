package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/lk2023060901/callerguard-backend/internal/ai/provider/types"
)

// Provider OpenAI 协议 Provider 实现（OpenAI、DeepSeek 等兼容服务）
type Provider struct {
	config *types.Config
	client *goopenai.Client
}

// New 创建 OpenAI Provider
func New(config *types.Config) (*Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	clientCfg := goopenai.DefaultConfig(config.APIKey)
	clientCfg.BaseURL = config.BaseURL
	clientCfg.HTTPClient = &http.Client{
		Timeout:   config.Timeout,
		Transport: &headerTransport{headers: config.Headers, base: http.DefaultTransport},
	}

	return &Provider{
		config: config,
		client: goopenai.NewClientWithConfig(clientCfg),
	}, nil
}

// Name 返回 Provider 名称
func (p *Provider) Name() string {
	return "openai"
}

// CreateChatCompletion 创建聊天补全（同步，单次请求，不重试）
func (p *Provider) CreateChatCompletion(ctx context.Context, req types.ChatCompletionRequest) (*types.ChatCompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	messages := make([]goopenai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = goopenai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
		Stream:      false,
	})
	if err != nil {
		return nil, p.classifyError(err)
	}

	choices := make([]types.Choice, len(resp.Choices))
	for i, c := range resp.Choices {
		choices[i] = types.Choice{
			Index:        c.Index,
			Message:      types.Message{Role: c.Message.Role, Content: c.Message.Content},
			FinishReason: string(c.FinishReason),
		}
	}

	return &types.ChatCompletionResponse{
		ID:      resp.ID,
		Model:   resp.Model,
		Choices: choices,
		Usage: types.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// Close 关闭 Provider
func (p *Provider) Close() error {
	return nil
}

// classifyError 将 go-openai 返回的错误转换为 ProviderError
func (p *Provider) classifyError(err error) *types.ProviderError {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return &types.ProviderError{
			Type:       types.ErrorTypeFromStatus(apiErr.HTTPStatusCode),
			Provider:   p.Name(),
			StatusCode: apiErr.HTTPStatusCode,
			Message:    apiErr.Message,
			Err:        err,
		}
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return &types.ProviderError{
			Type:       types.ErrorTypeFromStatus(reqErr.HTTPStatusCode),
			Provider:   p.Name(),
			StatusCode: reqErr.HTTPStatusCode,
			Message:    "API error",
			Err:        err,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &types.ProviderError{
			Type:     types.ErrorTypeTransport,
			Provider: p.Name(),
			Message:  "request failed",
			Err:      err,
		}
	}

	// 2xx 响应体解码失败
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &types.ProviderError{
			Type:     types.ErrorTypeInvalidResponse,
			Provider: p.Name(),
			Message:  "unmarshal response failed",
			Err:      err,
		}
	}

	return types.NewProviderError(p.Name(), "chat completion failed", err)
}

// headerTransport 为每个请求附加自定义 headers
type headerTransport struct {
	headers map[string]string
	base    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.headers) == 0 {
		return t.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	return t.base.RoundTrip(req)
}
