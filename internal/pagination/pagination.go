// Package pagination normalizes limit/offset windows and wraps result
// rows with count metadata. It is shared by every list query.
package pagination

const (
	// DefaultLimit applies when the caller sends no limit or a
	// non-positive one.
	DefaultLimit = 10
	// MaxLimit is the silent clamp ceiling.
	MaxLimit = 100
)

// Page bundles one window of items with the metadata clients page on.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	HasMore    bool  `json:"hasMore"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// Normalize clamps limit to [1, MaxLimit] (defaulting to DefaultLimit)
// and floors negative offsets at zero. Out-of-range values are adjusted
// silently, never rejected.
func Normalize(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// NewPage wraps a fetched window. HasMore is true iff rows remain past
// this window.
func NewPage[T any](items []T, totalCount int64, limit, offset int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		TotalCount: totalCount,
		HasMore:    int64(offset+len(items)) < totalCount,
		Limit:      limit,
		Offset:     offset,
	}
}
