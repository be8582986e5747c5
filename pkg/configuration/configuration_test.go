package configuration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xetasuite/xetasuite-go/pkg/configuration"
)

func TestLoadDefaults(t *testing.T) {
	c, err := configuration.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", c.BaseURL)
	assert.Equal(t, 25, c.PageSize)
	assert.Equal(t, 300*time.Millisecond, c.SearchDebounce)
	assert.False(t, c.MetricsEnabled)
}

func TestLoadValidation(t *testing.T) {
	t.Run("Rejects_Relative_Base_URL", func(t *testing.T) {
		t.Setenv("XETA_BASE_URL", "localhost:8000/api")
		_, err := configuration.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "XETA_BASE_URL")
	})

	t.Run("Rejects_Zero_Page_Size", func(t *testing.T) {
		t.Setenv("XETA_PAGE_SIZE", "0")
		_, err := configuration.Load()
		require.Error(t, err)
	})

	t.Run("Rejects_Max_Below_Default", func(t *testing.T) {
		t.Setenv("XETA_PAGE_SIZE", "50")
		t.Setenv("XETA_MAX_PAGE_SIZE", "25")
		_, err := configuration.Load()
		require.Error(t, err)
	})
}

func TestLogrusLogLevel(t *testing.T) {
	c, err := configuration.Load()
	require.NoError(t, err)

	c.LogLevel = "debug"
	assert.Equal(t, "debug", c.LogrusLogLevel().String())
	c.LogLevel = "bogus"
	assert.Equal(t, "error", c.LogrusLogLevel().String())
}
