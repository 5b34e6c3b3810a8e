package grouping

import "sort"

// Allocate splits total into len(weights) non-negative integers that sum to
// total and follow the weight ratios. Each part gets the floor of its exact
// share; the leftover units go one at a time to the parts with the largest
// fractional remainder, earlier parts first on ties.
func Allocate(total int, weights []int) []int {
	counts := make([]int, len(weights))
	if total <= 0 || len(weights) == 0 {
		return counts
	}

	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return counts
	}

	// Remainders are compared as integers (total*w mod sum) so ordering is
	// exact rather than subject to float rounding.
	rems := make([]int, len(weights))
	assigned := 0
	for i, w := range weights {
		counts[i] = total * w / sum
		rems[i] = total * w % sum
		assigned += counts[i]
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rems[order[a]] > rems[order[b]]
	})

	for i := 0; i < total-assigned; i++ {
		counts[order[i%len(order)]]++
	}
	return counts
}

// EvenChunks cuts items into parts contiguous chunks whose sizes differ by
// at most one, earlier chunks taking the extra items. Chunks may be empty
// when there are fewer items than parts. parts <= 0 yields a single chunk.
func EvenChunks[T any](items []T, parts int) [][]T {
	if parts <= 0 {
		return [][]T{items}
	}
	base, extra := len(items)/parts, len(items)%parts
	chunks := make([][]T, 0, parts)
	cursor := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks = append(chunks, items[cursor:cursor+size:cursor+size])
		cursor += size
	}
	return chunks
}
