package grouping

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Stage is a coarse difficulty band.
type Stage string

const (
	StageBeginner     Stage = "beginner"
	StageIntermediate Stage = "intermediate"
	StageAdvanced     Stage = "advanced"
)

// stagePlan fixes the stage order, the weight of each stage in the
// difficulty split and how many sub-levels it is cut into.
var stagePlan = []struct {
	stage     Stage
	weight    int
	sublevels int
}{
	{StageBeginner, 55, 3},
	{StageIntermediate, 65, 3},
	{StageAdvanced, 120, 6},
}

// Stages returns the stages in difficulty order.
func Stages() []Stage {
	out := make([]Stage, len(stagePlan))
	for i, p := range stagePlan {
		out[i] = p.stage
	}
	return out
}

// StageWeights returns the allocation weights in stage order (55/65/120).
func StageWeights() []int {
	out := make([]int, len(stagePlan))
	for i, p := range stagePlan {
		out[i] = p.weight
	}
	return out
}

// SublevelCount returns how many sub-levels the stage is divided into.
func (s Stage) SublevelCount() int {
	for _, p := range stagePlan {
		if p.stage == s {
			return p.sublevels
		}
	}
	return 0
}

// DisplayName returns the capitalized stage name.
func (s Stage) DisplayName() string {
	switch s {
	case StageBeginner:
		return "Beginner"
	case StageIntermediate:
		return "Intermediate"
	case StageAdvanced:
		return "Advanced"
	}
	return string(s)
}

// Label returns the sub-level label, e.g. "advanced_4" for index 4.
func (s Stage) Label(index int) string {
	return fmt.Sprintf("%s_%d", s, index)
}

// StageOf parses a sub-level label back into its stage and 1-based index.
func StageOf(label string) (Stage, int, bool) {
	i := strings.LastIndexByte(label, '_')
	if i <= 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(label[i+1:])
	if err != nil || n < 1 {
		return "", 0, false
	}
	stage := Stage(label[:i])
	if n > stage.SublevelCount() {
		return "", 0, false
	}
	return stage, n, true
}

// FormatLabels renders a label set for people, e.g.
// "Beginner 2-3" or "Beginner 3 + Intermediate 1".
func FormatLabels(labels []string) string {
	var parts []string
	var cur Stage
	var first, last int
	flush := func() {
		if cur == "" {
			return
		}
		if first == last {
			parts = append(parts, fmt.Sprintf("%s %d", cur.DisplayName(), first))
		} else {
			parts = append(parts, fmt.Sprintf("%s %d-%d", cur.DisplayName(), first, last))
		}
	}
	for _, l := range labels {
		stage, n, ok := StageOf(l)
		if !ok {
			flush()
			cur = ""
			parts = append(parts, l)
			continue
		}
		if stage == cur && n == last+1 {
			last = n
			continue
		}
		flush()
		cur, first, last = stage, n, n
	}
	flush()
	return strings.Join(parts, " + ")
}

// Buckets holds the three stage slices of one part of speech, each in
// ascending difficulty.
type Buckets struct {
	Beginner     []*Entry
	Intermediate []*Entry
	Advanced     []*Entry
}

// Get returns the bucket for the stage.
func (b Buckets) Get(s Stage) []*Entry {
	switch s {
	case StageBeginner:
		return b.Beginner
	case StageIntermediate:
		return b.Intermediate
	case StageAdvanced:
		return b.Advanced
	}
	return nil
}

// Len returns the total number of entries across the stages.
func (b Buckets) Len() int {
	return len(b.Beginner) + len(b.Intermediate) + len(b.Advanced)
}

// Stratify sorts entries by difficulty (stable, so ties keep input order)
// and slices them into beginner, intermediate and advanced runs sized by
// Allocate with the 55/65/120 weights. The input slice is not modified.
func Stratify(entries []*Entry) Buckets {
	sorted := make([]*Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level < sorted[j].Level
	})

	counts := Allocate(len(sorted), StageWeights())
	b, m := counts[0], counts[0]+counts[1]
	return Buckets{
		Beginner:     sorted[:b:b],
		Intermediate: sorted[b:m:m],
		Advanced:     sorted[m:],
	}
}

// Sublevels cuts each stage into its fixed number of even sub-levels
// (3/3/6), drops empty ones and returns them in stage order labeled
// "{stage}_{n}".
func Sublevels(b Buckets) []Sublevel {
	var out []Sublevel
	for _, p := range stagePlan {
		for i, chunk := range EvenChunks(b.Get(p.stage), p.sublevels) {
			if len(chunk) == 0 {
				continue
			}
			out = append(out, Sublevel{
				Labels:  []string{p.stage.Label(i + 1)},
				Entries: chunk,
			})
		}
	}
	return out
}
