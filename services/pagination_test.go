package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestDefaults(t *testing.T) {
	var req PageRequest

	assert.Equal(t, 0, req.offset())
	assert.Equal(t, 10, req.limit())
	assert.Equal(t, "id asc", req.order())
}

func TestPageRequestOrder(t *testing.T) {
	req := PageRequest{SortField: "email", Direction: "desc"}
	assert.Equal(t, "email desc", req.order())

	req = PageRequest{SortField: "email", Direction: "sideways"}
	assert.Equal(t, "email asc", req.order())

	req = PageRequest{SortField: "not_a_column", Direction: "desc"}
	assert.Equal(t, "id desc", req.order())
}

func TestPageRequestOffset(t *testing.T) {
	req := PageRequest{Page: 3, Size: 20}
	assert.Equal(t, 40, req.offset())

	req = PageRequest{Page: -1, Size: 20}
	assert.Equal(t, 0, req.offset())
}

func TestNewPageResultCounts(t *testing.T) {
	result := newPageResult([]int{1, 2, 3}, 23, PageRequest{Page: 1, Size: 10})
	assert.Equal(t, 3, len(result.Content))
	assert.Equal(t, int64(23), result.TotalElements)
	assert.Equal(t, 3, result.TotalPages)
	assert.False(t, result.Empty)

	empty := newPageResult([]int{}, 0, PageRequest{Page: 1, Size: 10})
	assert.Equal(t, 0, empty.TotalPages)
	assert.True(t, empty.Empty)
}
