package maintenance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xetasuite/xetasuite-go/modules/maintenance"
	"github.com/xetasuite/xetasuite-go/pkg/apiclient"
	"github.com/xetasuite/xetasuite-go/pkg/query"
)

func newService(t *testing.T, router *mux.Router) *maintenance.Service {
	t.Helper()
	router.HandleFunc("/sanctum/csrf-cookie", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "XSRF-TOKEN", Value: "tok", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	client, err := apiclient.New(server.URL)
	require.NoError(t, err)
	return maintenance.NewService(maintenance.NewRepository(client))
}

func TestServiceResolveIncident(t *testing.T) {
	t.Parallel()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/incidents/5/resolve", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"id": 5, "item_id": 12, "severity": "high",
				"resolved": true, "resolved_at": "2026-08-20T10:30:00Z",
			},
		})
	})

	svc := newService(t, router)
	incident, err := svc.ResolveIncident(context.Background(), 5)
	require.NoError(t, err)

	assert.True(t, incident.Resolved)
	require.NotNil(t, incident.ResolvedAt)
	assert.Equal(t, maintenance.SeverityHigh, incident.Severity)
}

func TestServiceGetIncidentsFilters(t *testing.T) {
	t.Parallel()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/incidents", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("resolved"))
		assert.Empty(t, r.URL.Query().Get("search"), "empty search stays off the wire")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":  []map[string]any{{"id": 5, "item_id": 12, "severity": "critical", "resolved": false}},
			"links": map[string]any{"first": "x", "last": "x", "prev": nil, "next": nil},
			"meta":  map[string]any{"current_page": 1, "from": 1, "last_page": 1, "per_page": 25, "to": 1, "total": 1},
		})
	})

	svc := newService(t, router)
	page, err := svc.GetIncidents(context.Background(), query.Filters{
		Page:  1,
		Extra: map[string]string{"resolved": "0"},
	})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, maintenance.SeverityCritical, page.Data[0].Severity)
	assert.False(t, page.Data[0].Resolved)
}
