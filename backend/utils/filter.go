package utils

import (
	"regexp"
	"strings"
)

// FilterAll is the wildcard value every categorical filter accepts.
const FilterAll = "all"

// Predicate reports whether an item passes one filter.
type Predicate[T any] func(T) bool

// Filter keeps the items for which every predicate holds, preserving input order.
// With no predicates every item is kept.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			result = append(result, item)
		}
	}
	return result
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if pred != nil && !pred(item) {
			return false
		}
	}
	return true
}

// MatchesSearch is a case-insensitive substring match of term against any of fields.
func MatchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// MatchesOption is exact equality, with "" and "all" matching everything.
func MatchesOption(filter, value string) bool {
	return IsWildcard(filter) || filter == value
}

// IsWildcard reports whether a filter value means "match all".
func IsWildcard(filter string) bool {
	return filter == "" || filter == FilterAll
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug lower-cases s and collapses whitespace runs into "-".
func Slug(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(s), "-")
}
