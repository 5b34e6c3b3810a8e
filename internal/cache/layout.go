package cache

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/mod/semver"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
)

// LayoutFormat is the version written with every persisted layout. Layouts
// with a different major version are ignored.
const LayoutFormat = "v1.0.0"

// ErrStaleLayout means a stored layout does not fit the loaded entries.
var ErrStaleLayout = errors.New("stale layout")

// Layout is the persisted form of a build: group metadata plus the
// SourceIndex of each member, in group order.
type Layout struct {
	Format string        `json:"format"`
	Groups []LayoutGroup `json:"groups"`
}

type LayoutGroup struct {
	ID      string   `json:"id"`
	POS     pos.Tag  `json:"pos"`
	Stages  []string `json:"stages"`
	Indices []int    `json:"indices"`
}

// NewLayout captures groups as a layout.
func NewLayout(groups []*grouping.Group) Layout {
	l := Layout{Format: LayoutFormat, Groups: make([]LayoutGroup, len(groups))}
	for i, g := range groups {
		idx := make([]int, len(g.Entries))
		for j, e := range g.Entries {
			idx[j] = e.SourceIndex
		}
		l.Groups[i] = LayoutGroup{ID: g.ID, POS: g.PartOfSpeech, Stages: g.StageLabels, Indices: idx}
	}
	return l
}

// Compatible reports whether format can be read by this version.
func Compatible(format string) bool {
	return semver.IsValid(format) && semver.Major(format) == semver.Major(LayoutFormat)
}

// DecodeLayout parses a stored layout and checks its format version.
func DecodeLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	if !Compatible(l.Format) {
		return Layout{}, fmt.Errorf("%w: format %q, want %s.x", ErrStaleLayout, l.Format, semver.Major(LayoutFormat))
	}
	return l, nil
}

// Encode serializes the layout.
func (l Layout) Encode() ([]byte, error) {
	return json.Marshal(l)
}

// EntryCount returns the number of member indices across groups.
func (l Layout) EntryCount() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g.Indices)
	}
	return n
}

// Rehydrate rebuilds the groups by pointing at entries. entries must be the
// freshly loaded list the layout was computed from: every index must be in
// range and every entry must be used exactly once.
func (l Layout) Rehydrate(entries []*grouping.Entry) ([]*grouping.Group, error) {
	if l.EntryCount() != len(entries) {
		return nil, fmt.Errorf("%w: layout covers %d entries, have %d", ErrStaleLayout, l.EntryCount(), len(entries))
	}

	used := make([]bool, len(entries))
	groups := make([]*grouping.Group, len(l.Groups))
	for i, lg := range l.Groups {
		g := &grouping.Group{
			ID:           lg.ID,
			PartOfSpeech: lg.POS,
			StageLabels:  append([]string(nil), lg.Stages...),
			Entries:      make([]*grouping.Entry, len(lg.Indices)),
		}
		for j, idx := range lg.Indices {
			if idx < 0 || idx >= len(entries) || used[idx] {
				return nil, fmt.Errorf("%w: group %s has bad index %d", ErrStaleLayout, lg.ID, idx)
			}
			e := entries[idx]
			if e.PartOfSpeech.Combined() != lg.POS {
				return nil, fmt.Errorf("%w: entry %d is %s, group %s is %s", ErrStaleLayout, idx, e.PartOfSpeech, lg.ID, lg.POS)
			}
			used[idx] = true
			g.Entries[j] = e
		}
		groups[i] = g
	}
	return groups, nil
}
