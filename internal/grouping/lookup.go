package grouping

import (
	"strings"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
)

// FindGroup returns the group with the given ID, or nil.
func FindGroup(groups []*Group, id string) *Group {
	for _, g := range groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// FilterGroups keeps groups matching tag (empty matches all) whose ID
// contains query, case-insensitively.
func FilterGroups(groups []*Group, tag pos.Tag, query string) []*Group {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []*Group
	for _, g := range groups {
		if tag != "" && g.PartOfSpeech != tag {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(g.ID), query) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// TotalEntries sums the sizes of groups.
func TotalEntries(groups []*Group) int {
	n := 0
	for _, g := range groups {
		n += g.Size()
	}
	return n
}
