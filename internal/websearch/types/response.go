package types

// ResultKind distinguishes the result categories a provider can surface
type ResultKind string

const (
	KindOrganic         ResultKind = "organic"
	KindRelatedQuestion ResultKind = "related_question"
)

// SearchResponse represents a search response
type SearchResponse struct {
	Query    string          `json:"query"`
	Results  []*SearchResult `json:"results"`
	Took     int64           `json:"took"` // milliseconds
	Provider ProviderID      `json:"provider"`
}

// SearchResult represents a single search result in provider ranking order.
// Related questions carry the question text as Title.
type SearchResult struct {
	Title   string     `json:"title"`
	Snippet string     `json:"snippet"`
	Link    string     `json:"link"`
	Kind    ResultKind `json:"kind"`
}

// Organic returns the organic results, preserving order
func (r *SearchResponse) Organic() []*SearchResult {
	return r.byKind(KindOrganic)
}

// Related returns the related-question results, preserving order
func (r *SearchResponse) Related() []*SearchResult {
	return r.byKind(KindRelatedQuestion)
}

func (r *SearchResponse) byKind(kind ResultKind) []*SearchResult {
	out := make([]*SearchResult, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Kind == kind {
			out = append(out, res)
		}
	}
	return out
}
