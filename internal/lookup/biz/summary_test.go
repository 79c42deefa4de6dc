package biz

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aitypes "github.com/lk2023060901/callerguard-backend/internal/ai/provider/types"
)

func TestSummarizer_Request(t *testing.T) {
	llm := &fakeLLM{resp: reply("  **Энэ** дугаар авто зарын эзэн байж магадгүй.  ")}
	s := NewSummarizer(llm, DefaultSummaryOptions())

	summary, err := s.Summarize(context.Background(), "prompt text")
	require.NoError(t, err)
	assert.Equal(t, "Энэ дугаар авто зарын эзэн байж магадгүй.", summary)

	require.Len(t, llm.calls, 1)
	req := llm.calls[0]
	assert.Equal(t, "deepseek-chat", req.Model)
	assert.Equal(t, 200, req.MaxTokens)
	assert.InDelta(t, 0.3, req.Temperature, 1e-9)
	assert.False(t, req.Stream)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, aitypes.RoleUser, req.Messages[0].Role)
	assert.Equal(t, "prompt text", req.Messages[0].Content)
}

func TestSummarizer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		llm     *fakeLLM
		wantErr error
		status  int
	}{
		{
			name:    "no choices",
			llm:     &fakeLLM{resp: &aitypes.ChatCompletionResponse{}},
			wantErr: ErrSummaryParse,
		},
		{
			name:    "blank content",
			llm:     &fakeLLM{resp: reply(" \n ")},
			wantErr: ErrSummaryParse,
		},
		{
			name: "undecodable body",
			llm: &fakeLLM{err: &aitypes.ProviderError{
				Type: aitypes.ErrorTypeInvalidResponse, Provider: "fake", Message: "unmarshal response failed",
			}},
			wantErr: ErrSummaryParse,
		},
		{
			name: "upstream 5xx",
			llm: &fakeLLM{err: &aitypes.ProviderError{
				Type: aitypes.ErrorTypeAPI, Provider: "fake", StatusCode: http.StatusServiceUnavailable,
			}},
			wantErr: ErrSummaryUnavailable,
			status:  http.StatusServiceUnavailable,
		},
		{
			name: "transport",
			llm: &fakeLLM{err: &aitypes.ProviderError{
				Type: aitypes.ErrorTypeTransport, Provider: "fake", Err: context.DeadlineExceeded,
			}},
			wantErr: ErrSummaryUnavailable,
		},
		{
			name:    "untyped error",
			llm:     &fakeLLM{err: errors.New("boom")},
			wantErr: ErrSummaryUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSummarizer(tt.llm, DefaultSummaryOptions()).Summarize(context.Background(), "p")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.status, summaryStatus(err))
		})
	}
}
