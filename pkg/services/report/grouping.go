package report

// Group is one partition produced by GroupBy.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy partitions items by the key function. Groups appear in the
// order their keys are first seen, and items keep their input order
// within a group. Keys compare by value.
func GroupBy[T any, K comparable](items []T, key func(T) K) []Group[K, T] {
	var groups []Group[K, T]
	index := make(map[K]int, len(items))

	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
