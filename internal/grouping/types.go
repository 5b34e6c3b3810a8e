// Package grouping partitions a vocabulary list into practice groups.
//
// Entries are split by part of speech, stratified into beginner,
// intermediate and advanced sub-levels by difficulty, small sub-levels are
// merged, and each resulting bucket is shuffled with a seeded RNG and cut
// into groups of roughly 20 to 30 entries. The same records and seed always
// produce the same groups.
package grouping

import (
	"strings"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
)

// Record is one raw input row as handed over by a loader. Level is kept as
// text so that non-numeric values can be reported against their row.
type Record struct {
	Text        string
	Translation string
	Level       string
}

// Entry is one vocabulary item. Entries are created once by Load and shared
// by pointer between buckets, groups and questions; nothing mutates them.
type Entry struct {
	Text         string
	Translation  string
	Level        float64
	PartOfSpeech pos.Tag

	// SourceIndex is the 0-based input row. It is the stable identity of
	// the entry regardless of shuffling.
	SourceIndex int

	// AudioKey is empty unless an audio key function was supplied.
	AudioKey string
}

// Group is a fixed set of entries sized for one practice session.
type Group struct {
	// ID is "{pos}:{labels joined by '+'}:g{n}", e.g. "noun:beginner_1:g2".
	ID           string
	PartOfSpeech pos.Tag
	StageLabels  []string

	// Entries are in seeded-shuffle order.
	Entries []*Entry
}

// Size returns the number of entries in the group.
func (g *Group) Size() int {
	return len(g.Entries)
}

// Sublevel is an ordered bucket of entries sharing a label set. Labels only
// grow when sub-levels are merged.
type Sublevel struct {
	Labels  []string
	Entries []*Entry
}

// Key joins the labels the way group IDs do.
func (s Sublevel) Key() string {
	return strings.Join(s.Labels, "+")
}
