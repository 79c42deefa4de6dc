package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lk2023060901/callerguard-backend/internal/websearch/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseProvider(t *testing.T) {
	config := &types.ProviderConfig{
		ID:      types.ProviderSerper,
		Name:    "Serper",
		APIHost: DefaultSerperHost,
		APIKey:  "test-key",
		Timeout: 20,
	}

	base := NewBaseProvider(config)
	assert.NotNil(t, base)
	assert.Equal(t, types.ProviderSerper, base.GetID())
	assert.Equal(t, "Serper", base.GetName())
	assert.Equal(t, 20*time.Second, base.GetHTTPClient().Timeout)
}

func TestNewBaseProvider_DefaultTimeout(t *testing.T) {
	base := NewBaseProvider(&types.ProviderConfig{ID: types.ProviderSerper, Name: "Serper"})
	assert.Equal(t, 20*time.Second, base.GetHTTPClient().Timeout)
}

func TestProviderConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *types.ProviderConfig
		wantErr error
	}{
		{
			name: "valid serper config",
			config: &types.ProviderConfig{
				ID:      types.ProviderSerper,
				Name:    "Serper",
				APIHost: DefaultSerperHost,
				APIKey:  "test-key",
			},
			wantErr: nil,
		},
		{
			name: "valid searxng config",
			config: &types.ProviderConfig{
				ID:      types.ProviderSearXNG,
				Name:    "SearXNG",
				APIHost: "https://search.example.com",
			},
			wantErr: nil,
		},
		{
			name: "searxng basic auth without password",
			config: &types.ProviderConfig{
				ID:                types.ProviderSearXNG,
				Name:              "SearXNG",
				APIHost:           "https://search.example.com",
				BasicAuthUsername: "admin",
			},
			wantErr: types.ErrMissingBasicAuthPassword,
		},
		{
			name: "missing provider ID",
			config: &types.ProviderConfig{
				Name:    "Test",
				APIHost: "https://api.test.com",
				APIKey:  "test-key",
			},
			wantErr: types.ErrInvalidProviderID,
		},
		{
			name: "missing provider name",
			config: &types.ProviderConfig{
				ID:      types.ProviderSerper,
				APIHost: DefaultSerperHost,
				APIKey:  "test-key",
			},
			wantErr: types.ErrInvalidProviderName,
		},
		{
			name: "missing API host",
			config: &types.ProviderConfig{
				ID:     types.ProviderSerper,
				Name:   "Serper",
				APIKey: "test-key",
			},
			wantErr: types.ErrInvalidAPIHost,
		},
		{
			name: "missing API key for serper",
			config: &types.ProviderConfig{
				ID:      types.ProviderSerper,
				Name:    "Serper",
				APIHost: DefaultSerperHost,
			},
			wantErr: types.ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBaseProvider_DoRequest_SingleAttempt(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	base := NewBaseProvider(&types.ProviderConfig{ID: types.ProviderSerper, Name: "Serper", APIHost: srv.URL})

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := base.DoRequest(context.Background(), req)
	require.NoError(t, err)
	defer resp.Body.Close()

	statusErr := base.CheckStatus(resp)
	require.Error(t, statusErr)

	var perr *types.ProviderError
	require.True(t, errors.As(statusErr, &perr))
	assert.Equal(t, http.StatusBadGateway, perr.StatusCode)
	assert.Equal(t, "HTTP_502", perr.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestBaseProvider_DoRequest_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	base := NewBaseProvider(&types.ProviderConfig{ID: types.ProviderSerper, Name: "Serper", APIHost: srv.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = base.DoRequest(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrProviderTimeout)

	var perr *types.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "TIMEOUT", perr.Code)
}

func TestBaseProvider_DoRequest_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	base := NewBaseProvider(&types.ProviderConfig{ID: types.ProviderSerper, Name: "Serper", APIHost: url})

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	_, err = base.DoRequest(context.Background(), req)
	require.Error(t, err)

	var perr *types.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "REQUEST_FAILED", perr.Code)
	assert.Zero(t, perr.StatusCode)
}
