// Package mapx provides small generic set and slice helpers.
package mapx

// Set is an unordered collection of unique values.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	s.Add(items...)

	return s
}

// Add inserts items into s.
func (s Set[T]) Add(items ...T) {
	for _, it := range items {
		s[it] = struct{}{}
	}
}

// Has reports whether item is in s. A nil Set contains nothing.
func (s Set[T]) Has(item T) bool {
	_, ok := s[item]

	return ok
}
