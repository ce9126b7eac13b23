package isolate

import "strings"

// SelectorSet is an ordered, duplicate-free list of selectors. It only grows:
// once a selector is isolated it stays isolated for the life of the plugin.
type SelectorSet struct {
	order []string
	seen  map[string]struct{}
}

// NewSelectorSet creates an empty SelectorSet.
func NewSelectorSet() *SelectorSet {
	return &SelectorSet{
		order: make([]string, 0),
		seen:  make(map[string]struct{}),
	}
}

// Add appends selector if it is not present yet. It reports whether the set
// changed.
func (s *SelectorSet) Add(selector string) bool {
	if _, ok := s.seen[selector]; ok {
		return false
	}
	s.seen[selector] = struct{}{}
	s.order = append(s.order, selector)
	return true
}

// Contains reports whether selector is in the set.
func (s *SelectorSet) Contains(selector string) bool {
	_, ok := s.seen[selector]
	return ok
}

// Len returns the number of selectors.
func (s *SelectorSet) Len() int {
	return len(s.order)
}

// Slice returns the selectors in first-seen order. The slice is a copy.
func (s *SelectorSet) Slice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Join returns the selectors joined with SelectorSeparator.
func (s *SelectorSet) Join() string {
	return strings.Join(s.order, SelectorSeparator)
}
