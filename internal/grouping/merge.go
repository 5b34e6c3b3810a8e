package grouping

// MinGroupSize is the smallest bucket the merger emits on its own.
const MinGroupSize = 20

// MergeSmall folds every sub-level with fewer than MinGroupSize entries
// into its neighbour. A forward pass keeps absorbing the next sub-level
// while the accumulator is short; a short tail is then merged back into the
// last emitted bucket. If everything together is still short, that single
// bucket is returned as-is. Entry counts and labels are preserved; the
// input is not modified.
func MergeSmall(sublevels []Sublevel) []Sublevel {
	if len(sublevels) == 0 {
		return nil
	}

	var merged []Sublevel
	cur := cloneSublevel(sublevels[0])

	for _, next := range sublevels[1:] {
		if len(cur.Entries) < MinGroupSize {
			cur.Labels = append(cur.Labels, next.Labels...)
			cur.Entries = append(cur.Entries, next.Entries...)
			continue
		}
		merged = append(merged, cur)
		cur = cloneSublevel(next)
	}

	if len(cur.Entries) < MinGroupSize && len(merged) > 0 {
		last := &merged[len(merged)-1]
		last.Labels = append(last.Labels, cur.Labels...)
		last.Entries = append(last.Entries, cur.Entries...)
		return merged
	}
	return append(merged, cur)
}

// cloneSublevel copies the slices so appends never write into the
// caller's backing arrays.
func cloneSublevel(s Sublevel) Sublevel {
	return Sublevel{
		Labels:  append([]string(nil), s.Labels...),
		Entries: append([]*Entry(nil), s.Entries...),
	}
}
