package catalog

// Partition splits items into ordered slices of at most size elements. Every
// slice but the last has exactly size elements, and concatenating the slices
// in order reproduces the input. The returned slices share the input's
// backing array.
func Partition[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end])
	}
	return batches
}
