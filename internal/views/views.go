// Package views holds the pure derived-view functions the dashboard and
// board screens render from. Every function takes a snapshot slice as
// produced by a collection store's Items and never mutates it.
package views

import "strings"

// MatchAll is the wildcard criteria value: a predicate set to MatchAll
// (or left empty) matches every entity.
const MatchAll = "all"

// FieldFunc extracts the string value of one named filterable field
// from an entity. Unknown field names return the empty string, which
// only MatchAll criteria can match.
type FieldFunc[E any] func(e E, field string) string

// TextFunc returns the title and description an entity exposes to the
// free-text search predicate.
type TextFunc[E any] func(e E) (title, description string)

// Criteria is one filter over a collection: every equality predicate
// and the free-text search must match (logical AND).
type Criteria struct {
	// Equals maps field name to required value. A value of MatchAll or
	// "" always matches.
	Equals map[string]string

	// Search matches when it is a case-insensitive substring of the
	// entity's title or description. Empty or MatchAll matches all.
	Search string
}

// Filter returns the entities matching the criteria, preserving input
// order.
func Filter[E any](items []E, field FieldFunc[E], text TextFunc[E], c Criteria) []E {
	out := make([]E, 0, len(items))
	for _, item := range items {
		if matches(item, field, text, c) {
			out = append(out, item)
		}
	}
	return out
}

// CountWhere returns how many entities carry the given field value.
func CountWhere[E any](items []E, field FieldFunc[E], name, value string) int {
	count := 0
	for _, item := range items {
		if field(item, name) == value {
			count++
		}
	}
	return count
}

// GroupCount is one chart bucket.
type GroupCount struct {
	Label string
	Count int
}

// GroupCounts buckets the entities by the given field. The result has
// exactly one entry per requested bucket, in the caller's order, with a
// zero count for buckets no entity falls into. Values outside the
// bucket list are dropped.
func GroupCounts[E any](items []E, field FieldFunc[E], name string, buckets []string) []GroupCount {
	index := make(map[string]int, len(buckets))
	out := make([]GroupCount, len(buckets))
	for i, label := range buckets {
		index[label] = i
		out[i] = GroupCount{Label: label}
	}

	for _, item := range items {
		if i, ok := index[field(item, name)]; ok {
			out[i].Count++
		}
	}
	return out
}

func matches[E any](item E, field FieldFunc[E], text TextFunc[E], c Criteria) bool {
	for name, want := range c.Equals {
		if want == "" || want == MatchAll {
			continue
		}
		if field(item, name) != want {
			return false
		}
	}

	if c.Search == "" || c.Search == MatchAll {
		return true
	}
	title, description := text(item)
	needle := strings.ToLower(c.Search)
	return strings.Contains(strings.ToLower(title), needle) ||
		strings.Contains(strings.ToLower(description), needle)
}
