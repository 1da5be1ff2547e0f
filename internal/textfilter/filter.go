// Package textfilter implements a multi-token "contains all" match over a
// single string field of a record collection.
package textfilter

import (
	"regexp"
	"strings"
)

var separators = regexp.MustCompile(`[^\w\-]+`)

// Tokens normalizes a free-text query: runs of characters other than ASCII
// letters, digits, underscore and hyphen become one space, then the result is
// trimmed, lowercased and split on whitespace.
func Tokens(query string) []string {
	clean := strings.TrimSpace(separators.ReplaceAllString(query, " "))
	if clean == "" {
		return nil
	}
	return strings.Fields(strings.ToLower(clean))
}

// Matches reports whether value contains every token, ignoring case.
func Matches(value string, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	value = strings.ToLower(value)
	for _, tok := range tokens {
		if !strings.Contains(value, tok) {
			return false
		}
	}
	return true
}

// First returns the first record whose selected field contains every token of
// query. A query with no tokens never matches.
func First[T any](records []T, field func(T) string, query string) (T, bool) {
	var zero T
	tokens := Tokens(query)
	if len(tokens) == 0 {
		return zero, false
	}
	for _, rec := range records {
		if Matches(field(rec), tokens) {
			return rec, true
		}
	}
	return zero, false
}
