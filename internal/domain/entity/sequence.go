package entity

// The nested collections on Post and Profile are prepend-ordered: every
// addition goes to the front, so iteration order is most-recent-first.
// These helpers are the only way entities touch their sub-collections;
// positional splicing is not used anywhere.

// InsertFront returns the sequence with item placed at the front.
func InsertFront[T any](seq []T, item T) []T {
	out := make([]T, 0, len(seq)+1)
	out = append(out, item)
	return append(out, seq...)
}

// RemoveWhere returns the sequence without the elements matching the
// predicate, and whether anything was removed. Relative order of the
// remaining elements is preserved.
func RemoveWhere[T any](seq []T, match func(T) bool) ([]T, bool) {
	out := seq[:0:0]
	removed := false
	for _, item := range seq {
		if match(item) {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}

// FindWhere returns the first element matching the predicate.
func FindWhere[T any](seq []T, match func(T) bool) (T, bool) {
	for _, item := range seq {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
