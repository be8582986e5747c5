package selectbox_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xetasuite/xetasuite-go/components/selectbox"
)

type zoneOption struct {
	ID   int
	Name string
}

func (z zoneOption) OptionID() string    { return strconv.Itoa(z.ID) }
func (z zoneOption) OptionLabel() string { return z.Name }

func newZoneSelect() *selectbox.Select[zoneOption] {
	return selectbox.New([]zoneOption{
		{ID: 1, Name: "Boiler room"},
		{ID: 2, Name: "Cold storage"},
		{ID: 3, Name: "Broiler line"},
	})
}

func TestSelectFilter(t *testing.T) {
	t.Parallel()

	s := newZoneSelect()

	t.Run("Empty_Query_Returns_All", func(t *testing.T) {
		assert.Len(t, s.Filter(""), 3)
		assert.Len(t, s.Filter("   "), 3)
	})

	t.Run("Fuzzy_Match", func(t *testing.T) {
		matches := s.Filter("boiler")
		require.NotEmpty(t, matches)
		assert.Equal(t, "Boiler room", matches[0].Name)
	})

	t.Run("No_Match", func(t *testing.T) {
		assert.Empty(t, s.Filter("warehouse"))
	})
}

func TestSelectSelection(t *testing.T) {
	t.Parallel()

	s := newZoneSelect()

	s.SetSelected("2")
	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Cold storage", selected.Name)

	s.SetSelected("99")
	_, ok = s.Selected()
	assert.False(t, ok, "unknown id clears the selection")
}
