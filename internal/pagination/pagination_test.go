package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 10, 0},
		{"negative limit", -5, 0, 10, 0},
		{"in range", 25, 40, 25, 40},
		{"clamped to max", 101, 0, 100, 0},
		{"far over max", 100000, 0, 100, 0},
		{"exactly max", 100, 0, 100, 0},
		{"negative offset floored", 10, -3, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := Normalize(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestNewPage_HasMore(t *testing.T) {
	t.Parallel()

	// 25 total rows, window of 10 starting at 10: rows remain.
	page := NewPage(make([]int, 10), 25, 10, 10)
	assert.True(t, page.HasMore)
	assert.Equal(t, int64(25), page.TotalCount)

	// Last short window: offset 20 + 5 items == 25, nothing left.
	page = NewPage(make([]int, 5), 25, 10, 20)
	assert.False(t, page.HasMore)

	// Empty table.
	empty := NewPage([]string{}, 0, 10, 0)
	assert.False(t, empty.HasMore)
	assert.NotNil(t, empty.Items)
}

func TestNewPage_NilItems(t *testing.T) {
	t.Parallel()

	page := NewPage[string](nil, 0, 10, 0)
	assert.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
}
