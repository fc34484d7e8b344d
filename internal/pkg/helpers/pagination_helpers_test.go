package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"zero size falls back to default", 1, 0, 0, DefaultPageSize},
		{"oversized page size falls back to default", 1, MaxPageSize + 1, 0, DefaultPageSize},
		{"page below one resets to first page", 0, 10, 0, 10},
		{"negative page resets to first page", -3, 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, 25, info.TotalItems)
}

func TestNewPaginationInfo_EmptyResult(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 0, info.TotalItems)
}

func TestNewPaginationInfo_PageBeyondEnd(t *testing.T) {
	info := NewPaginationInfo(5, 9, 10)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", DefaultPage, DefaultPageSize},
		{"explicit values", "page=3&size=25", 3, 25},
		{"non-numeric page", "page=abc&size=25", DefaultPage, 25},
		{"zero page", "page=0", DefaultPage, DefaultPageSize},
		{"oversized size", "size=9999", DefaultPage, DefaultPageSize},
		{"negative size", "size=-5", DefaultPage, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, size := ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}
