package biz

import "strings"

// CountryPrefix is the Mongolian international dialing prefix
const CountryPrefix = "+976"

// PhoneQuery holds the user input and the two search forms derived from it.
type PhoneQuery struct {
	Raw          string
	Normalized   string
	LocalVariant string
}

// NormalizePhone removes spaces and hyphens. When the number carries the
// country prefix, LocalVariant is the number without it; otherwise it equals
// Normalized, which makes the second OR clause of the search query redundant.
// Malformed or empty input passes through.
func NormalizePhone(raw string) PhoneQuery {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")

	local := normalized
	if strings.HasPrefix(normalized, CountryPrefix) {
		local = normalized[len(CountryPrefix):]
	}

	return PhoneQuery{
		Raw:          raw,
		Normalized:   normalized,
		LocalVariant: local,
	}
}
