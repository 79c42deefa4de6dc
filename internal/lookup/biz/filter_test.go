package biz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/callerguard-backend/internal/websearch/types"
)

func TestMeetsScriptRatio(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"no letters", "8811-2233 !!", false},
		{"empty", "", false},
		{"all cyrillic", "Энэ дугаар", true},
		{"exactly at threshold", "абвгдеж abc", true},
		{"below threshold", "абвгде abcd", false},
		{"digits excluded from denominator", "утас дугаар 88112233 +976 ab", true},
		{"latin only", "phone number", false},
		{"outside block is not cyrillic", "ԱԲԳԴԵԶԷ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MeetsScriptRatio(tt.text, 0.7))
		})
	}
}

func TestContainsKeyword(t *testing.T) {
	assert.True(t, ContainsKeyword("УТАС: 88112233", DefaultKeywords))
	assert.True(t, ContainsKeyword("Дугаараа өгнө үү", DefaultKeywords))
	assert.True(t, ContainsKeyword("гар утасны дэлгүүр", DefaultKeywords))
	assert.False(t, ContainsKeyword("Сайн байна уу", DefaultKeywords))
	assert.False(t, ContainsKeyword("утас", nil))
	assert.False(t, ContainsKeyword("утас", []string{""}))
}

func TestCleanSnippet(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Утас: 8811-2233, зарна!", "Утас" + strings.Repeat(" ", 13) + "зарна"},
		{"  Сайн  байна  ", "Сайн  байна"},
		{"hello", ""},
		{"Зар\tобъявление", "Зар объявление"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := CleanSnippet(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CleanSnippet(got), "cleaning must be idempotent")
		})
	}
}

func organic(title, snippet, link string) *types.SearchResult {
	return &types.SearchResult{Title: title, Snippet: snippet, Link: link, Kind: types.KindOrganic}
}

func related(question, snippet, link string) *types.SearchResult {
	return &types.SearchResult{Title: question, Snippet: snippet, Link: link, Kind: types.KindRelatedQuestion}
}

func TestFilter_Accept(t *testing.T) {
	f := NewFilter(DefaultPolicy())
	assert.False(t, f.Accept(""))
	assert.False(t, f.Accept("Сайн байна уу"), "keyword required")
	assert.False(t, f.Accept("phone утас number call"), "script ratio required")
	assert.True(t, f.Accept("Энэ утас хэнийх вэ"))

	p := DefaultPolicy()
	p.RequireKeyword = false
	assert.True(t, NewFilter(p).Accept("Сайн байна уу"))
}

func TestFilter_Apply_CapAndOrder(t *testing.T) {
	resp := &types.SearchResponse{}
	for i := 0; i < 9; i++ {
		resp.Results = append(resp.Results,
			organic(fmt.Sprintf("t%d", i), fmt.Sprintf("Утас зарна %d", i), fmt.Sprintf("https://e.mn/%d", i)),
			organic("noise", "english text about phones", "https://e.com"),
		)
	}

	items := NewFilter(DefaultPolicy()).Apply(resp)
	require.Len(t, items, 6)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("t%d", i), item.Title)
		assert.Equal(t, "Утас зарна", item.Snippet)
		assert.Equal(t, types.KindOrganic, item.Kind)
	}
}

func TestFilter_Apply_Related(t *testing.T) {
	resp := &types.SearchResponse{Results: []*types.SearchResult{
		organic("a", "Утас 1", "https://e.mn/a"),
		related("q1", "Дугаар 1", "https://e.mn/q1"),
		related("q2", "Дугаар 2", "https://e.mn/q2"),
		related("q3", "no cyrillic here", "https://e.mn/q3"),
		related("q4", "Дугаар 4", "https://e.mn/q4"),
		related("q5", "Дугаар 5", "https://e.mn/q5"),
		organic("b", "Утас 2", "https://e.mn/b"),
	}}

	items := NewFilter(DefaultPolicy()).Apply(resp)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Title)
	assert.Equal(t, "b", items[1].Title)

	p := DefaultPolicy()
	p.IncludeRelated = true
	items = NewFilter(p).Apply(resp)
	require.Len(t, items, 5)
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	assert.Equal(t, []string{"a", "b", "q1", "q2", "q4"}, titles)
	assert.Equal(t, types.KindRelatedQuestion, items[4].Kind)
}

func TestFilter_Apply_Empty(t *testing.T) {
	f := NewFilter(DefaultPolicy())
	assert.Empty(t, f.Apply(nil))
	assert.Empty(t, f.Apply(&types.SearchResponse{}))

	p := DefaultPolicy()
	p.MaxResults = 0
	resp := &types.SearchResponse{Results: []*types.SearchResult{organic("a", "Утас", "")}}
	assert.Empty(t, NewFilter(p).Apply(resp))
}
