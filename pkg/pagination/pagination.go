// Package pagination carries the wire envelope every paginated XetaSuite
// endpoint returns, plus the page-row math list views render from.
package pagination

// Meta is the server-computed pagination block. current_page always falls
// within [1, last_page]; last_page is never derived client-side.
type Meta struct {
	CurrentPage int `json:"current_page"`
	From        int `json:"from"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	To          int `json:"to"`
	Total       int `json:"total"`
}

// Links mirrors the envelope's navigation URLs. Prev and Next are null at
// the edges.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Page is the full paginated response for item type T.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Links Links `json:"links"`
	Meta  Meta  `json:"meta"`
}

// HasNext reports whether a page after the current one exists.
func (m Meta) HasNext() bool {
	return m.CurrentPage < m.LastPage
}

// HasPrev reports whether a page before the current one exists.
func (m Meta) HasPrev() bool {
	return m.CurrentPage > 1
}

// Ellipsis is the gap marker in a page window.
const Ellipsis = -1

// Window computes the page-row model: first and last page always shown,
// the current page with one neighbor on each side, and Ellipsis where
// pages were elided. last=12, current=6 yields [1 -1 5 6 7 -1 12].
func Window(current, last int) []int {
	if last < 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > last {
		current = last
	}

	keep := map[int]bool{1: true, last: true}
	for p := current - 1; p <= current+1; p++ {
		if p >= 1 && p <= last {
			keep[p] = true
		}
	}

	var window []int
	prev := 0
	for p := 1; p <= last; p++ {
		if !keep[p] {
			continue
		}
		if prev != 0 && p-prev > 1 {
			window = append(window, Ellipsis)
		}
		window = append(window, p)
		prev = p
	}
	return window
}
