package biz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lk2023060901/callerguard-backend/internal/pkg/logger"
	"github.com/lk2023060901/callerguard-backend/internal/pkg/metrics"
	"github.com/lk2023060901/callerguard-backend/internal/websearch/provider"
	wstypes "github.com/lk2023060901/callerguard-backend/internal/websearch/types"
)

// FoundItem is one filtered search result as shown to the client
type FoundItem struct {
	Title   string
	Snippet string
	Link    string
}

// AnalysisResult is the outcome of a successful lookup. FoundInformation and
// Sources come from the same filtered set that built the prompt.
type AnalysisResult struct {
	PhoneNumber      string
	Summary          string
	FoundInformation []FoundItem
	Sources          []string
}

// LookupUseCase runs normalize, search, filter, prompt, summarize and assemble
// for one phone number.
type LookupUseCase struct {
	searcher   provider.Provider
	summarizer *Summarizer
	filter     *Filter
	policy     Policy
	tokens     TokenCounter
	log        *logger.Logger
}

// NewLookupUseCase creates a lookup use case. tokens may be nil, which
// disables prompt size logging.
func NewLookupUseCase(searcher provider.Provider, summarizer *Summarizer, policy Policy, tokens TokenCounter, log *logger.Logger) *LookupUseCase {
	if log == nil {
		log = logger.L()
	}
	return &LookupUseCase{
		searcher:   searcher,
		summarizer: summarizer,
		filter:     NewFilter(policy),
		policy:     policy,
		tokens:     tokens,
		log:        log.Named("lookup"),
	}
}

// Analyze looks up rawPhone. It fails with ErrSearchUnavailable or
// ErrSummaryUnavailable; every other outcome, including an empty filtered set
// and an unreadable model reply, is a result.
func (uc *LookupUseCase) Analyze(ctx context.Context, rawPhone string) (*AnalysisResult, error) {
	phone := NormalizePhone(rawPhone)
	query := BuildSearchQuery(phone, uc.policy.queryKeywords())
	log := uc.log.WithContext(ctx).With(
		zap.String("phone_number", phone.Normalized),
		zap.String("query", query),
	)

	start := time.Now()
	resp, err := uc.searcher.Search(ctx, &wstypes.SearchRequest{
		Query:          query,
		Country:        uc.policy.Country,
		Language:       uc.policy.Language,
		IncludeRelated: uc.policy.IncludeRelated,
	})
	metrics.ObserveUpstream(metrics.UpstreamSearch, start, err)
	if err != nil {
		log.Error("search failed",
			zap.String("provider", string(uc.searcher.GetID())),
			zap.Int("upstream_status", searchStatus(err)),
			zap.Error(err),
		)
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeSearchUnavailable).Inc()
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}

	items := uc.filter.Apply(resp)
	metrics.FilteredResults.Observe(float64(len(items)))
	log.Debug("search results filtered",
		zap.Int("received", len(resp.Results)),
		zap.Int("kept", len(items)),
		zap.Int64("took_ms", resp.Took),
	)

	if len(items) == 0 {
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeNoInformation).Inc()
		return assemble(phone, NoInformationSummary, items), nil
	}

	prompt := BuildPrompt(items)
	if uc.tokens != nil {
		log.Debug("prompt built", zap.Int("prompt_tokens", uc.tokens.Count(prompt)))
	}

	start = time.Now()
	summary, err := uc.summarizer.Summarize(ctx, prompt)
	metrics.ObserveUpstream(metrics.UpstreamSummary, start, err)
	switch {
	case err == nil:
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeSummarized).Inc()
	case errors.Is(err, ErrSummaryParse):
		log.Warn("summary reply unreadable, using fallback",
			zap.Int("upstream_status", summaryStatus(err)),
			zap.Error(err),
		)
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeParseFallback).Inc()
		summary = ParseFailedSummary
	default:
		log.Error("summary failed",
			zap.Int("upstream_status", summaryStatus(err)),
			zap.Error(err),
		)
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeSummaryUnavailable).Inc()
		return nil, err
	}

	return assemble(phone, summary, items), nil
}

func assemble(phone PhoneQuery, summary string, items []ResultItem) *AnalysisResult {
	found := make([]FoundItem, 0, len(items))
	sources := make([]string, 0, len(items))
	for _, item := range items {
		found = append(found, FoundItem{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
		if item.Link != "" {
			sources = append(sources, item.Link)
		}
	}
	return &AnalysisResult{
		PhoneNumber:      phone.Normalized,
		Summary:          summary,
		FoundInformation: found,
		Sources:          sources,
	}
}

func searchStatus(err error) int {
	var perr *wstypes.ProviderError
	if errors.As(err, &perr) {
		return perr.StatusCode
	}
	return 0
}
