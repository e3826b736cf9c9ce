package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsParams(t *testing.T) {
	params := &PaginationParams{Page: -3, PerPage: 500}
	params.Validate()

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.PerPage)

	params = &PaginationParams{Page: 0, PerPage: 0}
	params.Validate()

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 15, params.PerPage)
}

func TestOffset(t *testing.T) {
	params := &PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, params.Offset())

	params = &PaginationParams{Page: 1, PerPage: 15}
	assert.Equal(t, 0, params.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 35)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 4, p.TotalPages)
	assert.Equal(t, int64(35), p.Total)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := NewPagination(4, 10, 35)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := NewPagination(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestNewPaginatedResult(t *testing.T) {
	items := []string{"a", "b"}
	result := NewPaginatedResult(items, NewPagination(1, 15, 2))

	assert.Equal(t, items, result.Items)
	assert.Equal(t, int64(2), result.Pagination.Total)
}
