package data

import (
	"testing"

	"github.com/emzola/kritika/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestFiltersSort(t *testing.T) {
	f := Filters{Sort: "-created_at", SortSafeList: []string{"id", "created_at", "-id", "-created_at"}}
	assert.Equal(t, "created_at", f.SortColumn())
	assert.Equal(t, "DESC", f.SortDirection())

	f.Sort = "id"
	assert.Equal(t, "id", f.SortColumn())
	assert.Equal(t, "ASC", f.SortDirection())
}

func TestFiltersSortColumnPanicsOnUnsafeValue(t *testing.T) {
	f := Filters{Sort: "id; DROP TABLE reviews", SortSafeList: []string{"id"}}
	assert.Panics(t, func() { f.SortColumn() })
}

func TestFiltersLimitOffset(t *testing.T) {
	f := Filters{Page: 3, PageSize: 20}
	assert.Equal(t, 20, f.Limit())
	assert.Equal(t, 40, f.Offset())
}

func TestValidateFilters(t *testing.T) {
	safelist := []string{"id"}

	v := validator.New()
	ValidateFilters(v, Filters{Page: 1, PageSize: 10, Sort: "id", SortSafeList: safelist})
	assert.True(t, v.Valid(), "errors: %v", v.Errors)

	v = validator.New()
	ValidateFilters(v, Filters{Page: 0, PageSize: 10, Sort: "id", SortSafeList: safelist})
	assert.Contains(t, v.Errors, "page")

	v = validator.New()
	ValidateFilters(v, Filters{Page: 1, PageSize: 500, Sort: "id", SortSafeList: safelist})
	assert.Contains(t, v.Errors, "page_size")

	v = validator.New()
	ValidateFilters(v, Filters{Page: 1, PageSize: 10, Sort: "rating", SortSafeList: safelist})
	assert.Contains(t, v.Errors, "sort")
}

func TestCalculateMetadata(t *testing.T) {
	metadata := CalculateMetadata(103, 2, 10)
	assert.Equal(t, 2, metadata.CurrentPage)
	assert.Equal(t, 10, metadata.PageSize)
	assert.Equal(t, 1, metadata.FirstPage)
	assert.Equal(t, 11, metadata.LastPage)
	assert.Equal(t, 103, metadata.TotalRecords)

	assert.Equal(t, Metadata{}, CalculateMetadata(0, 1, 10))
}
