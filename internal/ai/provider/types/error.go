package types

import (
	"fmt"
	"net/http"
)

// ErrorType API 错误类型
type ErrorType string

const (
	// 4xx 客户端错误
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error" // 400 - 请求格式或内容错误
	ErrorTypeAuthentication ErrorType = "authentication_error"  // 401 - API Key 问题
	ErrorTypePermission     ErrorType = "permission_error"      // 403 - API Key 权限不足
	ErrorTypeNotFound       ErrorType = "not_found_error"       // 404 - 资源未找到
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"      // 429 - 达到速率限制

	// 5xx 服务器错误
	ErrorTypeAPI ErrorType = "api_error" // 500 - 内部服务器错误

	// 本地分类
	ErrorTypeTransport       ErrorType = "transport_error"  // 网络错误或超时，未拿到响应
	ErrorTypeInvalidResponse ErrorType = "invalid_response" // 2xx 但响应体无法解析
)

// ProviderError Provider 错误
type ProviderError struct {
	Type       ErrorType // 错误类型
	Provider   string    // Provider 名称
	StatusCode int       // HTTP 状态码，未收到响应时为 0
	Message    string    // 错误消息
	Err        error     // 原始错误
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		if e.Err != nil {
			return fmt.Sprintf("[%s][%s][%s] %s: %v",
				e.Provider, e.Type, http.StatusText(e.StatusCode), e.Message, e.Err)
		}
		return fmt.Sprintf("[%s][%s][%s] %s",
			e.Provider, e.Type, http.StatusText(e.StatusCode), e.Message)
	}

	if e.Err != nil {
		return fmt.Sprintf("[%s][%s] %s: %v", e.Provider, e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s][%s] %s", e.Provider, e.Type, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsInvalidResponse 判断是否为响应格式错误（服务可达，但返回内容不符合预期）
func (e *ProviderError) IsInvalidResponse() bool {
	return e.Type == ErrorTypeInvalidResponse
}

// NewProviderError 创建 Provider 错误
func NewProviderError(provider, message string, err error) *ProviderError {
	return &ProviderError{
		Type:     ErrorTypeAPI,
		Provider: provider,
		Message:  message,
		Err:      err,
	}
}

// ErrorTypeFromStatus 根据 HTTP 状态码推断错误类型
func ErrorTypeFromStatus(status int) ErrorType {
	switch status {
	case http.StatusBadRequest:
		return ErrorTypeInvalidRequest
	case http.StatusUnauthorized:
		return ErrorTypeAuthentication
	case http.StatusForbidden:
		return ErrorTypePermission
	case http.StatusNotFound:
		return ErrorTypeNotFound
	case http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	default:
		return ErrorTypeAPI
	}
}
