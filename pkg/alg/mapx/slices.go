package mapx

// Unique returns a new slice containing only the first occurrence of each element.
// Insertion order is preserved. Returns nil for a nil slice.
func Unique[T comparable](s []T) []T {
	if s == nil {
		return nil
	}

	seen := make(Set[T], len(s))
	result := make([]T, 0, len(s))

	for _, v := range s {
		if seen.Has(v) {
			continue
		}

		seen.Add(v)
		result = append(result, v)
	}

	return result
}
