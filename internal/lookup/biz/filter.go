package biz

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lk2023060901/callerguard-backend/internal/websearch/types"
)

// ResultItem is a search result that passed the filter. Snippet holds the
// cleaned text; the original snippet is not kept.
type ResultItem struct {
	Title   string
	Snippet string
	Link    string
	Kind    types.ResultKind
}

// IsCyrillic reports whether r is in the Cyrillic block (U+0400–U+04FF)
func IsCyrillic(r rune) bool {
	return r >= 0x0400 && r <= 0x04FF
}

// MeetsScriptRatio reports whether Cyrillic letters make up at least
// threshold of all letters in text. Text without letters never passes.
func MeetsScriptRatio(text string, threshold float64) bool {
	var letters, cyrillic int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if IsCyrillic(r) {
			cyrillic++
		}
	}
	if letters == 0 {
		return false
	}
	return float64(cyrillic)/float64(letters) >= threshold
}

// ContainsKeyword lowercases text with Mongolian casing rules and reports
// whether any keyword occurs in it.
func ContainsKeyword(text string, keywords []string) bool {
	// Casers are stateful; one per call.
	lower := cases.Lower(language.Mongolian).String(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// CleanSnippet replaces every rune outside the Cyrillic block with a space,
// keeps spaces, and trims the result. Cleaning is idempotent.
func CleanSnippet(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if IsCyrillic(r) || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// Filter applies the script and keyword predicates and the result caps.
type Filter struct {
	policy Policy
}

// NewFilter creates a filter for the given policy
func NewFilter(policy Policy) *Filter {
	return &Filter{policy: policy}
}

// Accept reports whether a snippet passes every enabled predicate
func (f *Filter) Accept(snippet string) bool {
	if snippet == "" {
		return false
	}
	if !MeetsScriptRatio(snippet, f.policy.ScriptThreshold) {
		return false
	}
	if f.policy.RequireKeyword && !ContainsKeyword(snippet, f.policy.Keywords) {
		return false
	}
	return true
}

// Apply filters the provider results, keeping ranking order. Organic results
// are capped at MaxResults; related questions, when enabled, are capped
// separately and appended.
func (f *Filter) Apply(resp *types.SearchResponse) []ResultItem {
	if resp == nil {
		return []ResultItem{}
	}

	items := f.take(resp.Organic(), f.policy.MaxResults)
	if f.policy.IncludeRelated {
		items = append(items, f.take(resp.Related(), f.policy.MaxRelated)...)
	}
	return items
}

func (f *Filter) take(results []*types.SearchResult, limit int) []ResultItem {
	if limit <= 0 {
		return []ResultItem{}
	}
	items := make([]ResultItem, 0, limit)
	for _, r := range results {
		if len(items) >= limit {
			break
		}
		if !f.Accept(r.Snippet) {
			continue
		}
		items = append(items, ResultItem{
			Title:   r.Title,
			Snippet: CleanSnippet(r.Snippet),
			Link:    r.Link,
			Kind:    r.Kind,
		})
	}
	return items
}
