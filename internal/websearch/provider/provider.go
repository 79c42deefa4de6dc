package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	wshttp "github.com/lk2023060901/callerguard-backend/internal/websearch/http"
	"github.com/lk2023060901/callerguard-backend/internal/websearch/types"
)

// maxErrorBody caps how much of an upstream error body is kept for logging
const maxErrorBody = 2048

// Provider defines the interface for search providers
type Provider interface {
	// Search executes a search query
	Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error)

	// GetID returns the provider ID
	GetID() types.ProviderID

	// GetName returns the provider name
	GetName() string

	// Validate validates the provider configuration
	Validate() error
}

// BaseProvider provides common functionality for all providers
type BaseProvider struct {
	config     *types.ProviderConfig
	httpClient *http.Client
}

// NewBaseProvider creates a new base provider
func NewBaseProvider(config *types.ProviderConfig) *BaseProvider {
	timeout := time.Duration(config.Timeout) * time.Second

	return &BaseProvider{
		config:     config,
		httpClient: wshttp.NewHTTPClient(timeout),
	}
}

// GetID returns the provider ID
func (b *BaseProvider) GetID() types.ProviderID {
	return b.config.ID
}

// GetName returns the provider name
func (b *BaseProvider) GetName() string {
	return b.config.Name
}

// GetConfig returns the provider configuration
func (b *BaseProvider) GetConfig() *types.ProviderConfig {
	return b.config
}

// GetHTTPClient returns the HTTP client
func (b *BaseProvider) GetHTTPClient() *http.Client {
	return b.httpClient
}

// BuildDefaultHeaders builds default HTTP headers
func (b *BaseProvider) BuildDefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "CallerGuard-Backend/1.0",
	}
}

// DoRequest executes an HTTP request exactly once. Timeouts surface as
// ErrProviderTimeout, other transport failures as REQUEST_FAILED.
func (b *BaseProvider) DoRequest(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := b.httpClient.Do(req.WithContext(ctx))
	if err == nil {
		return resp, nil
	}

	if isTimeout(ctx, err) {
		return nil, &types.ProviderError{
			Provider: b.GetID(),
			Code:     "TIMEOUT",
			Message:  "search request timed out",
			Err:      fmt.Errorf("%w: %v", types.ErrProviderTimeout, err),
		}
	}

	return nil, &types.ProviderError{
		Provider: b.GetID(),
		Code:     "REQUEST_FAILED",
		Message:  "Failed to execute request",
		Err:      err,
	}
}

// CheckStatus turns any non-2xx response into a ProviderError carrying the
// upstream status and a bounded copy of the body.
func (b *BaseProvider) CheckStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &types.ProviderError{
		Provider:   b.GetID(),
		Code:       fmt.Sprintf("HTTP_%d", resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    string(body),
	}
}

// Validate validates the provider configuration
func (b *BaseProvider) Validate() error {
	return b.config.Validate()
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
