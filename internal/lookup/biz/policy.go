package biz

// Keywords meaning "phone" and "number" in Mongolian
var DefaultKeywords = []string{"утас", "дугаар"}

// Policy configures query construction and snippet filtering.
type Policy struct {
	// ScriptThreshold is the minimum share of Cyrillic letters among all
	// letters in a snippet, inclusive.
	ScriptThreshold float64

	// Keywords are required in the snippet when RequireKeyword is set and are
	// added to the search query when KeywordQuery is set.
	Keywords       []string
	RequireKeyword bool
	KeywordQuery   bool

	// MaxResults caps organic results kept after filtering.
	MaxResults int

	// IncludeRelated adds related-question items, capped at MaxRelated and
	// appended after organic results.
	IncludeRelated bool
	MaxRelated     int

	// Country and Language scope the search (gl / hl).
	Country  string
	Language string
}

// DefaultPolicy returns the production filtering policy
func DefaultPolicy() Policy {
	return Policy{
		ScriptThreshold: 0.7,
		Keywords:        DefaultKeywords,
		RequireKeyword:  true,
		KeywordQuery:    true,
		MaxResults:      6,
		IncludeRelated:  false,
		MaxRelated:      3,
		Country:         "mn",
		Language:        "mn",
	}
}

func (p Policy) queryKeywords() []string {
	if !p.KeywordQuery {
		return nil
	}
	return p.Keywords
}
