package biz

import "errors"

var (
	// ErrSearchUnavailable the search provider could not be reached or
	// answered with a failure; the lookup stops before summarizing.
	ErrSearchUnavailable = errors.New("search provider unavailable")

	// ErrSummaryUnavailable the language model could not be reached or
	// answered with a failure.
	ErrSummaryUnavailable = errors.New("summary provider unavailable")

	// ErrSummaryParse the language model answered with an unexpected shape.
	ErrSummaryParse = errors.New("unexpected summary response")
)
