package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/lk2023060901/callerguard-backend/internal/websearch/types"
)

// DefaultSerperHost is the public serper.dev endpoint
const DefaultSerperHost = "https://google.serper.dev"

// SerperProvider implements the serper.dev Google search API
type SerperProvider struct {
	*BaseProvider
}

// NewSerperProvider creates a new Serper provider
func NewSerperProvider(config *types.ProviderConfig) (Provider, error) {
	base := NewBaseProvider(config)
	return &SerperProvider{BaseProvider: base}, nil
}

// serperRequest represents a Serper API request
type serperRequest struct {
	Q  string `json:"q"`
	GL string `json:"gl,omitempty"`
	HL string `json:"hl,omitempty"`
}

// Search executes a search query using the Serper API
func (p *SerperProvider) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, types.ErrEmptyQuery
	}

	startTime := time.Now()

	serperReq := serperRequest{
		Q:  req.Query,
		GL: firstNonEmpty(req.Country, p.config.Country),
		HL: firstNonEmpty(req.Language, p.config.Language),
	}

	reqBody, err := json.Marshal(serperReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL := strings.TrimRight(p.config.APIHost, "/") + "/search"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range p.BuildDefaultHeaders() {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("X-API-KEY", p.config.APIKey)

	resp, err := p.DoRequest(ctx, httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := p.CheckStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.ProviderError{
			Provider:   p.GetID(),
			Code:       "READ_FAILED",
			StatusCode: resp.StatusCode,
			Message:    "Failed to read response body",
			Err:        err,
		}
	}

	if !gjson.ValidBytes(body) {
		return nil, &types.ProviderError{
			Provider:   p.GetID(),
			Code:       "INVALID_RESPONSE",
			StatusCode: resp.StatusCode,
			Message:    "response body is not valid JSON",
			Err:        types.ErrInvalidResponse,
		}
	}

	payload := gjson.ParseBytes(body)
	results := make([]*types.SearchResult, 0)

	payload.Get("organic").ForEach(func(_, item gjson.Result) bool {
		results = append(results, &types.SearchResult{
			Title:   item.Get("title").String(),
			Snippet: item.Get("snippet").String(),
			Link:    item.Get("link").String(),
			Kind:    types.KindOrganic,
		})
		return true
	})

	if req.IncludeRelated {
		payload.Get("peopleAlsoAsk").ForEach(func(_, item gjson.Result) bool {
			results = append(results, &types.SearchResult{
				Title:   item.Get("question").String(),
				Snippet: item.Get("snippet").String(),
				Link:    item.Get("link").String(),
				Kind:    types.KindRelatedQuestion,
			})
			return true
		})
	}

	return &types.SearchResponse{
		Query:    req.Query,
		Results:  results,
		Took:     time.Since(startTime).Milliseconds(),
		Provider: p.GetID(),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
