package grouping

import (
	"fmt"
	"math"
	"strings"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
)

const (
	// MaxGroupSize is the largest bucket that stays a single group.
	MaxGroupSize = 30

	// TargetGroupSize is the average size the splitter aims for on large
	// buckets.
	TargetGroupSize = 25
)

// GroupSizes decides how a bucket of total entries is split:
//   - up to 30: one group
//   - 31 to 39: two halves, the second taking the odd entry
//   - 40 and more: GroupCount groups, the first total%g one larger
func GroupSizes(total int) []int {
	switch {
	case total <= 0:
		return nil
	case total <= MaxGroupSize:
		return []int{total}
	case total < 2*MinGroupSize:
		half := total / 2
		return []int{half, total - half}
	}

	count := GroupCount(total)
	base, extra := total/count, total%count
	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}

// GroupCount returns the number of groups for a bucket of total entries.
// From 40 up it is the g in [ceil(total/30), max(that, floor(total/20))]
// whose average size is closest to 25, the smallest g winning ties.
func GroupCount(total int) int {
	switch {
	case total <= MaxGroupSize:
		return 1
	case total < 2*MinGroupSize:
		return 2
	}

	lower := (total + MaxGroupSize - 1) / MaxGroupSize
	upper := max(lower, total/MinGroupSize)

	best, bestDev := lower, math.Inf(1)
	for g := lower; g <= upper; g++ {
		dev := math.Abs(float64(total)/float64(g) - TargetGroupSize)
		if dev < bestDev {
			best, bestDev = g, dev
		}
	}
	return best
}

// GroupID builds the identifier of the n-th (1-based) group of a bucket.
func GroupID(tag pos.Tag, labels []string, n int) string {
	return fmt.Sprintf("%s:%s:g%d", tag, strings.Join(labels, "+"), n)
}

// Partition shuffles words in place with rng and slices them sequentially
// into groups sized by GroupSizes. This shuffle is the only place the seed
// affects group membership.
func Partition(labels []string, words []*Entry, tag pos.Tag, rng RandomSource) []*Group {
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	sizes := GroupSizes(len(words))
	groups := make([]*Group, 0, len(sizes))
	cursor := 0
	for i, size := range sizes {
		end := cursor + size
		groups = append(groups, &Group{
			ID:           GroupID(tag, labels, i+1),
			PartOfSpeech: tag,
			StageLabels:  append([]string(nil), labels...),
			Entries:      words[cursor:end:end],
		})
		cursor = end
	}
	return groups
}
