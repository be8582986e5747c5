package planner_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xetasuite/xetasuite-go/modules/planner"
	"github.com/xetasuite/xetasuite-go/pkg/apiclient"
)

func TestServiceGetRange(t *testing.T) {
	t.Parallel()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/calendar", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-08-31", r.URL.Query().Get("to"))
		assert.Equal(t, "3", r.URL.Query().Get("site_id"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{
					"id": 8, "kind": "maintenance", "title": "Pump overhaul",
					"site_id": 3, "starts_at": "2026-08-12T08:00:00Z",
					"ends_at": "2026-08-12T12:00:00Z", "all_day": false,
				},
			},
		})
	})

	server := httptest.NewServer(router)
	defer server.Close()
	client, err := apiclient.New(server.URL)
	require.NoError(t, err)
	svc := planner.NewService(planner.NewRepository(client))

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	events, err := svc.GetRange(context.Background(), from, to, 3)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, planner.KindMaintenance, events[0].Kind)
	assert.Equal(t, "Pump overhaul", events[0].Title)
}
