package listpage_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xetasuite/xetasuite-go/pkg/apierrors"
	"github.com/xetasuite/xetasuite-go/pkg/listpage"
	"github.com/xetasuite/xetasuite-go/pkg/pagination"
	"github.com/xetasuite/xetasuite-go/pkg/query"
)

type zone struct {
	ID   int
	Name string
}

// recordingFetch captures every filter object the controller sends and
// signals each completed fetch.
type recordingFetch struct {
	mu       sync.Mutex
	calls    []query.Filters
	err      error
	settled  chan struct{}
	pageData []zone
}

func newRecordingFetch() *recordingFetch {
	return &recordingFetch{
		settled:  make(chan struct{}, 64),
		pageData: []zone{{ID: 1, Name: "Boiler room"}},
	}
}

func (r *recordingFetch) fn(_ context.Context, filters query.Filters) (*pagination.Page[zone], error) {
	r.mu.Lock()
	r.calls = append(r.calls, filters)
	err := r.err
	data := r.pageData
	r.mu.Unlock()
	defer func() { r.settled <- struct{}{} }()
	if err != nil {
		return nil, err
	}
	return &pagination.Page[zone]{
		Data: data,
		Meta: pagination.Meta{CurrentPage: filters.Page, LastPage: 3, PerPage: 25, Total: 63},
	}, nil
}

func (r *recordingFetch) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.settled:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not settle in time")
	}
}

func (r *recordingFetch) filters(t *testing.T) []query.Filters {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]query.Filters, len(r.calls))
	copy(out, r.calls)
	return out
}

func TestControllerInitialFetch(t *testing.T) {
	t.Parallel()

	fetch := newRecordingFetch()
	c := listpage.New[zone](fetch.fn, listpage.WithPageSize[zone](25))
	defer c.Close()
	fetch.wait(t)

	calls := fetch.filters(t)
	require.Len(t, calls, 1)
	assert.Equal(t, "page=1&per_page=25", calls[0].Encode())

	snap := c.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Boiler room", snap.Items[0].Name)
	require.NotNil(t, snap.Meta)
	assert.Equal(t, 63, snap.Meta.Total)
}

func TestControllerDebounceCoalescesKeystrokes(t *testing.T) {
	t.Parallel()

	fetch := newRecordingFetch()
	c := listpage.New[zone](fetch.fn, listpage.WithDebounce[zone](40*time.Millisecond))
	defer c.Close()
	fetch.wait(t) // initial

	c.SetSearch("p")
	c.SetSearch("pu")
	c.SetSearch("pum")
	c.SetSearch("pump")
	fetch.wait(t) // debounced

	calls := fetch.filters(t)
	require.Len(t, calls, 2, "four keystrokes collapse into one fetch")
	assert.Equal(t, "pump", calls[1].Search)
	assert.Equal(t, 1, calls[1].Page)
}

func TestControllerSearchResetsPage(t *testing.T) {
	t.Parallel()

	fetch := newRecordingFetch()
	c := listpage.New[zone](fetch.fn, listpage.WithDebounce[zone](0))
	defer c.Close()
	fetch.wait(t)

	c.SetPage(2)
	fetch.wait(t)
	c.SetSearch("pump")
	fetch.wait(t)

	calls := fetch.filters(t)
	require.Len(t, calls, 3)
	assert.Equal(t, 2, calls[1].Page)
	assert.Equal(t, 1, calls[2].Page, "search change resets to page 1")

	// Re-submitting the identical search leaves the filter object
	// unchanged: no fetch.
	c.SetSearch("pump")
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, fetch.filters(t), 3)
}

func TestControllerSortToggling(t *testing.T) {
	t.Parallel()

	fetch := newRecordingFetch()
	c := listpage.New[zone](fetch.fn, listpage.WithDebounce[zone](0))
	defer c.Close()
	fetch.wait(t)

	c.SetPage(2)
	fetch.wait(t)

	c.ToggleSort("name")
	fetch.wait(t)
	calls := fetch.filters(t)
	last := calls[len(calls)-1]
	assert.Equal(t, 1, last.Page, "new sort field resets to page 1")
	assert.Equal(t, "name", last.SortBy)
	assert.Equal(t, query.SortAsc, last.SortDirection)

	c.ToggleSort("name")
	fetch.wait(t)
	assert.Equal(t, query.SortDesc, c.Snapshot().SortDirection)

	c.ToggleSort("name")
	fetch.wait(t)
	assert.Equal(t, query.SortAsc, c.Snapshot().SortDirection, "asc -> desc -> asc")
}

func TestControllerPageChangeKeepsSearchAndSort(t *testing.T) {
	t.Parallel()

	fetch := newRecordingFetch()
	c := listpage.New[zone](fetch.fn,
		listpage.WithDebounce[zone](0),
		listpage.WithDefaultSort[zone]("name", query.SortDesc))
	defer c.Close()
	fetch.wait(t)

	c.SetSearch("pump")
	fetch.wait(t)
	c.SetPage(3)
	fetch.wait(t)

	calls := fetch.filters(t)
	last := calls[len(calls)-1]
	assert.Equal(t, 3, last.Page)
	assert.Equal(t, "pump", last.Search, "page change keeps search")
	assert.Equal(t, "name", last.SortBy, "page change keeps sort")
	assert.Equal(t, query.SortDesc, last.SortDirection)
}

func TestControllerRefreshIsIdempotent(t *testing.T) {
	t.Parallel()

	fetch := newRecordingFetch()
	c := listpage.New[zone](fetch.fn,
		listpage.WithDebounce[zone](0),
		listpage.WithStaticFilters[zone](map[string]string{"site_id": "3"}))
	defer c.Close()
	fetch.wait(t)

	before := c.Filters()
	c.Refresh()
	fetch.wait(t)
	c.Refresh()
	fetch.wait(t)

	calls := fetch.filters(t)
	require.Len(t, calls, 3)
	assert.True(t, calls[1].Equal(calls[2]), "repeated refresh sends identical filters")
	assert.True(t, before.Equal(c.Filters()), "refresh does not drift state")
	assert.Equal(t, "3", calls[2].Extra["site_id"])
}

func TestControllerErrorSurfacing(t *testing.T) {
	t.Parallel()

	fetch := newRecordingFetch()
	fetch.err = apierrors.New(404, "", nil)
	c := listpage.New[zone](fetch.fn, listpage.WithDebounce[zone](0))
	defer c.Close()
	fetch.wait(t)

	snap := c.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "Resource not found", snap.Error)
	assert.Empty(t, snap.Items)

	// A later success clears the error.
	fetch.mu.Lock()
	fetch.err = nil
	fetch.mu.Unlock()
	c.Refresh()
	fetch.wait(t)

	snap = c.Snapshot()
	assert.Empty(t, snap.Error)
	assert.Len(t, snap.Items, 1)
}

func TestControllerStaleResponsesDiscarded(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var mu sync.Mutex
	var calls int

	fetch := func(_ context.Context, filters query.Filters) (*pagination.Page[zone], error) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			// Hold the first fetch until a newer one has settled.
			<-release
			return &pagination.Page[zone]{
				Data: []zone{{ID: 99, Name: "stale"}},
				Meta: pagination.Meta{CurrentPage: 1, LastPage: 1},
			}, nil
		}
		return &pagination.Page[zone]{
			Data: []zone{{ID: 1, Name: "fresh"}},
			Meta: pagination.Meta{CurrentPage: filters.Page, LastPage: 3},
		}, nil
	}

	settled := make(chan listpage.Snapshot[zone], 16)
	c := listpage.New[zone](fetch,
		listpage.WithDebounce[zone](0),
		listpage.WithObserver[zone](func(s listpage.Snapshot[zone]) {
			if !s.Loading {
				settled <- s
			}
		}))
	defer c.Close()

	c.SetPage(2)
	snap := <-settled
	assert.Equal(t, "fresh", snap.Items[0].Name)

	close(release)
	time.Sleep(50 * time.Millisecond)

	final := c.Snapshot()
	assert.Equal(t, "fresh", final.Items[0].Name, "superseded response never lands")
}

func TestControllerNilPageWithoutError(t *testing.T) {
	t.Parallel()

	fetch := func(context.Context, query.Filters) (*pagination.Page[zone], error) {
		return nil, nil
	}

	settled := make(chan listpage.Snapshot[zone], 4)
	c := listpage.New[zone](fetch,
		listpage.WithDebounce[zone](0),
		listpage.WithObserver[zone](func(s listpage.Snapshot[zone]) {
			if !s.Loading {
				settled <- s
			}
		}))
	defer c.Close()

	var snap listpage.Snapshot[zone]
	select {
	case snap = <-settled:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not settle in time")
	}
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	assert.Empty(t, snap.Items)
	assert.Nil(t, snap.Meta)
}

func TestControllerCloseStopsWork(t *testing.T) {
	t.Parallel()

	fetch := newRecordingFetch()
	c := listpage.New[zone](fetch.fn, listpage.WithDebounce[zone](30*time.Millisecond))
	fetch.wait(t)

	c.SetSearch("pending")
	c.Close()
	time.Sleep(80 * time.Millisecond)

	assert.Len(t, fetch.filters(t), 1, "debounce armed before Close never fires")
	c.SetPage(5)
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, fetch.filters(t), 1, "calls after Close are ignored")
}
