package model

import "strings"

// MatchAny reports whether term occurs, case-insensitively, in any field.
// A term that is blank after trimming matches everything; otherwise the
// untrimmed term is used, as typed.
func MatchAny(term string, fields ...string) bool {
	if strings.TrimSpace(term) == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

type Matcher interface {
	Matches(term string) bool
}

// Filter keeps the items matching term, preserving order.
func Filter[T Matcher](items []T, term string) []T {
	if strings.TrimSpace(term) == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Matches(term) {
			out = append(out, item)
		}
	}
	return out
}
