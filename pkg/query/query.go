// Package query models the filter object every list endpoint accepts and
// its translation into URL query parameters.
package query

import (
	"net/url"
	"sort"
	"strconv"
)

// SortDirection is the wire value of the sort_direction parameter.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Toggle flips asc to desc and anything else back to asc.
func (d SortDirection) Toggle() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// Filters is the canonical list-request filter object. The zero value asks
// for the server defaults. Extra carries entity-specific filters such as
// site_id or resolved; it is merged verbatim after the standard keys.
type Filters struct {
	Page          int
	PerPage       int
	Search        string
	SortBy        string
	SortDirection SortDirection
	Extra         map[string]string
}

// Values encodes the filters as URL query parameters. Keys with empty or
// zero values are dropped, and sort_direction is emitted only when a sort
// field is set.
func (f Filters) Values() url.Values {
	values := url.Values{}
	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.SortBy != "" {
		values.Set("sort_by", f.SortBy)
		if f.SortDirection != "" {
			values.Set("sort_direction", string(f.SortDirection))
		}
	}
	for key, value := range f.Extra {
		if key == "" || value == "" {
			continue
		}
		values.Set(key, value)
	}
	return values
}

// Encode renders the filters as a query string with stable key order.
func (f Filters) Encode() string {
	return f.Values().Encode()
}

// Clone returns a deep copy, so controllers can hand filters to fetch
// functions without sharing the Extra map.
func (f Filters) Clone() Filters {
	out := f
	if f.Extra != nil {
		out.Extra = make(map[string]string, len(f.Extra))
		for k, v := range f.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// Equal reports whether two filter objects would encode identically.
func (f Filters) Equal(other Filters) bool {
	return f.Encode() == other.Encode()
}

// Keys returns the sorted parameter names the filters would emit. Test
// helpers use it to assert the drop rule.
func (f Filters) Keys() []string {
	values := f.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
