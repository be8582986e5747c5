// Package listpage implements the controller behind every paginated,
// searchable, sortable list view: one instance per view, owning search
// debouncing, page and sort state, fetch issuance and error surfacing.
package listpage

import (
	"context"
	"sync"
	"time"

	"github.com/xetasuite/xetasuite-go/pkg/apierrors"
	"github.com/xetasuite/xetasuite-go/pkg/pagination"
	"github.com/xetasuite/xetasuite-go/pkg/query"
)

// DefaultDebounce is how long search input must stay quiet before a fetch
// is issued.
const DefaultDebounce = 300 * time.Millisecond

// FetchFunc loads one page of results for the given filters. Services
// provide these; every error they return is already apierrors-typed.
type FetchFunc[T any] func(ctx context.Context, filters query.Filters) (*pagination.Page[T], error)

// Snapshot is an immutable copy of controller state handed to observers.
// Error is display-ready text; it is empty while a fetch is in flight.
type Snapshot[T any] struct {
	Items           []T
	Meta            *pagination.Meta
	Loading         bool
	Error           string
	Page            int
	Search          string
	DebouncedSearch string
	SortBy          string
	SortDirection   query.SortDirection
}

type Controller[T any] struct {
	fetch    FetchFunc[T]
	debounce time.Duration
	pageSize int
	static   map[string]string
	observer func(Snapshot[T])
	baseCtx  context.Context

	mu              sync.Mutex
	items           []T
	meta            *pagination.Meta
	loading         bool
	displayErr      string
	page            int
	search          string
	debouncedSearch string
	sortBy          string
	sortDir         query.SortDirection

	timer       *time.Timer
	generation  uint64
	cancelFetch context.CancelFunc
	closed      bool
	wg          sync.WaitGroup
}

type Option[T any] func(*Controller[T])

// WithDefaultSort sets the initial sort column and direction.
func WithDefaultSort[T any](field string, direction query.SortDirection) Option[T] {
	return func(c *Controller[T]) {
		c.sortBy = field
		c.sortDir = direction
	}
}

func WithDebounce[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) { c.debounce = d }
}

func WithPageSize[T any](n int) Option[T] {
	return func(c *Controller[T]) { c.pageSize = n }
}

// WithStaticFilters merges fixed entity-specific filters (site_id, status)
// into every request.
func WithStaticFilters[T any](filters map[string]string) Option[T] {
	return func(c *Controller[T]) { c.static = filters }
}

// WithObserver registers the callback notified after every state change.
// It runs outside the controller lock.
func WithObserver[T any](fn func(Snapshot[T])) Option[T] {
	return func(c *Controller[T]) { c.observer = fn }
}

// WithContext sets the parent context for all fetches.
func WithContext[T any](ctx context.Context) Option[T] {
	return func(c *Controller[T]) { c.baseCtx = ctx }
}

// New builds a controller and issues the initial fetch.
func New[T any](fetch FetchFunc[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		fetch:    fetch,
		debounce: DefaultDebounce,
		page:     1,
		sortDir:  query.SortAsc,
		baseCtx:  context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	snapshot := c.requestFetchLocked()
	c.mu.Unlock()
	c.notify(snapshot)
	return c
}

// SetSearch records a keystroke. The fetch fires only after input has been
// quiet for the debounce interval, with page reset to 1; intermediate
// values never reach the wire.
func (c *Controller[T]) SetSearch(q string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.search = q
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.debounce <= 0 {
		snapshot := c.applySearchLocked(q)
		c.mu.Unlock()
		c.notify(snapshot)
		return
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		snapshot := c.applySearchLocked(q)
		c.mu.Unlock()
		c.notify(snapshot)
	})
	snapshot := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snapshot)
}

// applySearchLocked promotes a debounced value. A value identical to the
// current debounced search leaves the filter object unchanged, so no fetch
// is issued.
func (c *Controller[T]) applySearchLocked(q string) *Snapshot[T] {
	if q == c.debouncedSearch {
		return nil
	}
	c.debouncedSearch = q
	c.page = 1
	return c.requestFetchLocked()
}

// ToggleSort applies a column-header click: an already-active field flips
// direction, a new field starts ascending. Both reset to page 1.
func (c *Controller[T]) ToggleSort(field string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.sortBy == field {
		c.sortDir = c.sortDir.Toggle()
	} else {
		c.sortBy = field
		c.sortDir = query.SortAsc
	}
	c.page = 1
	snapshot := c.requestFetchLocked()
	c.mu.Unlock()
	c.notify(snapshot)
}

// SetPage moves to another page without touching search or sort.
func (c *Controller[T]) SetPage(page int) {
	c.mu.Lock()
	if c.closed || page < 1 || page == c.page {
		c.mu.Unlock()
		return
	}
	c.page = page
	snapshot := c.requestFetchLocked()
	c.mu.Unlock()
	c.notify(snapshot)
}

// Refresh re-issues the current filters unchanged; list views call it after
// a create, update or delete. A pending debounce timer is left armed.
func (c *Controller[T]) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	snapshot := c.requestFetchLocked()
	c.mu.Unlock()
	c.notify(snapshot)
}

// Close cancels any in-flight fetch and stops the debounce timer. The
// controller ignores all calls afterwards.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.cancelFetch != nil {
		c.cancelFetch()
	}
	c.mu.Unlock()
	c.wg.Wait()
}

// Snapshot returns a copy of the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.snapshotLocked()
}

// Filters returns the filter object the controller would send right now.
// Two calls with unchanged state return equal filters.
func (c *Controller[T]) Filters() query.Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtersLocked()
}

func (c *Controller[T]) filtersLocked() query.Filters {
	f := query.Filters{
		Page:    c.page,
		PerPage: c.pageSize,
		Search:  c.debouncedSearch,
		SortBy:  c.sortBy,
	}
	if f.SortBy != "" {
		f.SortDirection = c.sortDir
	}
	if len(c.static) > 0 {
		f.Extra = make(map[string]string, len(c.static))
		for k, v := range c.static {
			f.Extra[k] = v
		}
	}
	return f
}

// requestFetchLocked supersedes any in-flight fetch and starts a new one.
// The returned snapshot reflects the loading state; nil means no change.
func (c *Controller[T]) requestFetchLocked() *Snapshot[T] {
	c.generation++
	generation := c.generation
	filters := c.filtersLocked()

	c.loading = true
	c.displayErr = ""
	if c.cancelFetch != nil {
		c.cancelFetch()
	}
	ctx, cancel := context.WithCancel(c.baseCtx)
	c.cancelFetch = cancel

	c.wg.Add(1)
	go c.runFetch(ctx, generation, filters)
	return c.snapshotLocked()
}

func (c *Controller[T]) runFetch(ctx context.Context, generation uint64, filters query.Filters) {
	defer c.wg.Done()
	page, err := c.fetch(ctx, filters)

	c.mu.Lock()
	if c.closed || generation != c.generation {
		// A newer fetch owns the state now; this response is stale.
		c.mu.Unlock()
		return
	}
	c.loading = false
	switch {
	case err != nil:
		c.displayErr = apierrors.Display(err)
	case page == nil:
		// A fetch returning neither page nor error leaves the view empty.
		c.items = nil
		c.meta = nil
	default:
		c.items = page.Data
		c.meta = &page.Meta
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snapshot)
}

func (c *Controller[T]) snapshotLocked() *Snapshot[T] {
	items := make([]T, len(c.items))
	copy(items, c.items)
	var meta *pagination.Meta
	if c.meta != nil {
		m := *c.meta
		meta = &m
	}
	return &Snapshot[T]{
		Items:           items,
		Meta:            meta,
		Loading:         c.loading,
		Error:           c.displayErr,
		Page:            c.page,
		Search:          c.search,
		DebouncedSearch: c.debouncedSearch,
		SortBy:          c.sortBy,
		SortDirection:   c.sortDir,
	}
}

func (c *Controller[T]) notify(snapshot *Snapshot[T]) {
	if snapshot == nil || c.observer == nil {
		return
	}
	c.observer(*snapshot)
}
