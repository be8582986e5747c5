package pagination_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xetasuite/xetasuite-go/pkg/pagination"
)

func TestWindow(t *testing.T) {
	t.Parallel()

	e := pagination.Ellipsis

	t.Run("Middle_Of_Long_Range", func(t *testing.T) {
		assert.Equal(t, []int{1, e, 5, 6, 7, e, 12}, pagination.Window(6, 12))
	})

	t.Run("Start_Of_Range", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, e, 12}, pagination.Window(1, 12))
	})

	t.Run("End_Of_Range", func(t *testing.T) {
		assert.Equal(t, []int{1, e, 11, 12}, pagination.Window(12, 12))
	})

	t.Run("Short_Range_Has_No_Gaps", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4}, pagination.Window(2, 4))
		assert.Equal(t, []int{1}, pagination.Window(1, 1))
	})

	t.Run("Out_Of_Range_Current_Is_Clamped", func(t *testing.T) {
		assert.Equal(t, pagination.Window(1, 12), pagination.Window(0, 12))
		assert.Equal(t, pagination.Window(12, 12), pagination.Window(99, 12))
	})

	t.Run("Empty_Range", func(t *testing.T) {
		assert.Nil(t, pagination.Window(1, 0))
	})
}

func TestPageDecoding(t *testing.T) {
	t.Parallel()

	raw := `{
		"data": [{"id": 1, "name": "Boiler room"}],
		"links": {"first": "/api/v1/zones?page=1", "last": "/api/v1/zones?page=3", "prev": null, "next": "/api/v1/zones?page=2"},
		"meta": {"current_page": 1, "from": 1, "last_page": 3, "per_page": 25, "to": 25, "total": 63}
	}`

	type zone struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	var page pagination.Page[zone]
	require.NoError(t, json.Unmarshal([]byte(raw), &page))

	assert.Len(t, page.Data, 1)
	assert.Equal(t, "Boiler room", page.Data[0].Name)
	assert.Nil(t, page.Links.Prev)
	require.NotNil(t, page.Links.Next)
	assert.Equal(t, 63, page.Meta.Total)
	assert.True(t, page.Meta.HasNext())
	assert.False(t, page.Meta.HasPrev())
}
