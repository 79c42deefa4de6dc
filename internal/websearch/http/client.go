package http

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a single search round trip
const DefaultTimeout = 20 * time.Second

// NewHTTPClient creates a new HTTP client with the specified timeout.
// A zero timeout falls back to DefaultTimeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
