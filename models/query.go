package models

import "encoding/json"

// Sort directions accepted by ListQuery.Sort, matching the remote
// store's convention: -1 descending, 1 ascending.
const (
	SortDesc = -1
	SortAsc  = 1
)

// ListQuery narrows and orders a remote collection listing.
//
// Filter is a field -> value equality match combined with AND; an empty
// map matches everything. Sort maps a field name to SortAsc/SortDesc;
// the reference server only supports sorting by created_at, which is
// the sole order the synchronization layer requests.
type ListQuery struct {
	Filter map[string]string `json:"filter,omitempty"`
	Sort   map[string]int    `json:"sort,omitempty"`
}

// NewestFirst returns the canonical query used by every collection
// fetch: scope equality filters plus created_at descending.
func NewestFirst(filter map[string]string) ListQuery {
	return ListQuery{
		Filter: filter,
		Sort:   map[string]int{"created_at": SortDesc},
	}
}

// ListResponse is the wire envelope for a collection listing. Items is
// kept as raw JSON documents so the generic synchronization layer can
// decode into its own entity type.
type ListResponse struct {
	Items []json.RawMessage `json:"items"`
}
