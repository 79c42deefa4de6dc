package types

// SearchRequest represents a search request
type SearchRequest struct {
	Query string `json:"query"`

	// Country and Language override the provider defaults when set
	Country  string `json:"country,omitempty"`
	Language string `json:"language,omitempty"`

	// IncludeRelated asks the provider to also return related-question items
	// when it supports them.
	IncludeRelated bool `json:"include_related,omitempty"`
}
