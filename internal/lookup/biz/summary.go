package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	aitypes "github.com/lk2023060901/callerguard-backend/internal/ai/provider/types"
)

// SummaryOptions are the sampling parameters of the summary request
type SummaryOptions struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// DefaultSummaryOptions returns the production sampling parameters
func DefaultSummaryOptions() SummaryOptions {
	return SummaryOptions{
		Model:       "deepseek-chat",
		MaxTokens:   200,
		Temperature: 0.3,
	}
}

// Summarizer turns a prompt into a short plain-text summary with one
// non-streaming chat completion.
type Summarizer struct {
	llm  aitypes.Provider
	opts SummaryOptions
}

// NewSummarizer creates a summarizer on top of a chat completion provider
func NewSummarizer(llm aitypes.Provider, opts SummaryOptions) *Summarizer {
	return &Summarizer{llm: llm, opts: opts}
}

// Summarize sends prompt as a single user message. Errors wrap
// ErrSummaryUnavailable when no usable reply was received and ErrSummaryParse
// when a reply arrived in an unexpected shape.
func (s *Summarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	resp, err := s.llm.CreateChatCompletion(ctx, aitypes.ChatCompletionRequest{
		Model: s.opts.Model,
		Messages: []aitypes.Message{
			{Role: aitypes.RoleUser, Content: prompt},
		},
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
		Stream:      false,
	})
	if err != nil {
		var perr *aitypes.ProviderError
		if errors.As(err, &perr) && perr.IsInvalidResponse() {
			return "", fmt.Errorf("%w: %w", ErrSummaryParse, err)
		}
		return "", fmt.Errorf("%w: %w", ErrSummaryUnavailable, err)
	}

	content, ok := resp.FirstContent()
	if !ok {
		return "", fmt.Errorf("%w: no choices in reply", ErrSummaryParse)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: empty message content", ErrSummaryParse)
	}

	return PlainText(content), nil
}

func summaryStatus(err error) int {
	var perr *aitypes.ProviderError
	if errors.As(err, &perr) {
		return perr.StatusCode
	}
	return 0
}
