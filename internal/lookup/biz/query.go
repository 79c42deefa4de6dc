package biz

import (
	"fmt"
	"strings"
)

// BuildSearchQuery requires an exact match of either phone form. With
// keywords, the phone clause is AND-ed with an OR of the keywords.
func BuildSearchQuery(q PhoneQuery, keywords []string) string {
	phoneClause := fmt.Sprintf("%q OR %q", q.Normalized, q.LocalVariant)
	if len(keywords) == 0 {
		return phoneClause
	}
	return fmt.Sprintf("(%s) AND (%s)", phoneClause, strings.Join(keywords, " OR "))
}
