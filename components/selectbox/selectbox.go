// Package selectbox is the generic option container behind entity pickers:
// any type exposing an ID and a label can populate one, and type-ahead
// filtering is fuzzy.
package selectbox

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Option is anything a dropdown can render.
type Option interface {
	OptionID() string
	OptionLabel() string
}

// Select holds the options and current selection of one dropdown.
type Select[T Option] struct {
	options  []T
	selected string
}

func New[T Option](options []T) *Select[T] {
	return &Select[T]{options: options}
}

// Options returns all options in insertion order.
func (s *Select[T]) Options() []T {
	out := make([]T, len(s.options))
	copy(out, s.options)
	return out
}

// Filter returns options whose label fuzzily matches q, best match first.
// An empty query returns everything.
func (s *Select[T]) Filter(q string) []T {
	if strings.TrimSpace(q) == "" {
		return s.Options()
	}
	type ranked struct {
		option T
		rank   int
	}
	var matches []ranked
	for _, opt := range s.options {
		rank := fuzzy.RankMatchNormalizedFold(q, opt.OptionLabel())
		if rank < 0 {
			continue
		}
		matches = append(matches, ranked{option: opt, rank: rank})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})
	out := make([]T, len(matches))
	for i, m := range matches {
		out[i] = m.option
	}
	return out
}

// SetSelected records the selected option ID. Unknown IDs clear the
// selection.
func (s *Select[T]) SetSelected(id string) {
	for _, opt := range s.options {
		if opt.OptionID() == id {
			s.selected = id
			return
		}
	}
	s.selected = ""
}

// Selected returns the selected option, if any.
func (s *Select[T]) Selected() (T, bool) {
	var zero T
	if s.selected == "" {
		return zero, false
	}
	for _, opt := range s.options {
		if opt.OptionID() == s.selected {
			return opt, true
		}
	}
	return zero, false
}
