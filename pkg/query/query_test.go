package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xetasuite/xetasuite-go/pkg/query"
)

func TestFiltersValues(t *testing.T) {
	t.Parallel()

	t.Run("Empty_Values_Dropped", func(t *testing.T) {
		f := query.Filters{
			Page:   1,
			Search: "",
			Extra:  map[string]string{"site_id": "", "zone_id": "7"},
		}
		assert.Equal(t, []string{"page", "zone_id"}, f.Keys())
	})

	t.Run("Sort_Direction_Requires_Sort_Field", func(t *testing.T) {
		f := query.Filters{Page: 1, SortDirection: query.SortDesc}
		assert.Equal(t, []string{"page"}, f.Keys())

		f.SortBy = "name"
		values := f.Values()
		assert.Equal(t, "name", values.Get("sort_by"))
		assert.Equal(t, "desc", values.Get("sort_direction"))
	})

	t.Run("Zero_Page_Omitted", func(t *testing.T) {
		assert.Empty(t, query.Filters{}.Encode())
	})

	t.Run("Full_Encoding", func(t *testing.T) {
		f := query.Filters{
			Page:          2,
			PerPage:       25,
			Search:        "pump",
			SortBy:        "created_at",
			SortDirection: query.SortAsc,
			Extra:         map[string]string{"site_id": "3"},
		}
		assert.Equal(t,
			"page=2&per_page=25&search=pump&site_id=3&sort_by=created_at&sort_direction=asc",
			f.Encode())
	})
}

func TestSortDirectionToggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, query.SortDesc, query.SortAsc.Toggle())
	assert.Equal(t, query.SortAsc, query.SortDesc.Toggle())
	assert.Equal(t, query.SortAsc, query.SortDirection("").Toggle())
}

func TestFiltersClone(t *testing.T) {
	t.Parallel()

	f := query.Filters{Page: 1, Extra: map[string]string{"site_id": "3"}}
	clone := f.Clone()
	clone.Extra["site_id"] = "9"

	assert.Equal(t, "3", f.Extra["site_id"])
	assert.False(t, f.Equal(clone))
	assert.True(t, f.Equal(f.Clone()))
}
