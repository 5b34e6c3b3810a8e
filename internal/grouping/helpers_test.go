package grouping

import (
	"strconv"
	"strings"
)

// stem returns a distinct lowercase letter sequence for i. Prefixed with
// "b" by callers so no word collides with a closed word class.
func stem(i int) string {
	var b strings.Builder
	for {
		b.WriteByte(byte('a' + i%26))
		i /= 26
		if i == 0 {
			break
		}
	}
	return b.String()
}

// word builds a regular word for index i with the given ending: "o" for
// nouns, "a" for adjectives, "i" for verbs, "e" for adverbs.
func word(i int, ending string) string {
	return "b" + stem(i) + "l" + ending
}

func records(n int, ending string) []Record {
	recs := make([]Record, n)
	for i := range recs {
		recs[i] = Record{
			Text:        word(i, ending),
			Translation: "t" + strconv.Itoa(i),
			Level:       strconv.Itoa(i + 1),
		}
	}
	return recs
}

func entries(sizes ...int) []Sublevel {
	var out []Sublevel
	idx := 0
	for i, n := range sizes {
		s := Sublevel{Labels: []string{"s_" + strconv.Itoa(i+1)}}
		for j := 0; j < n; j++ {
			s.Entries = append(s.Entries, &Entry{Text: word(idx, "o"), SourceIndex: idx})
			idx++
		}
		out = append(out, s)
	}
	return out
}

func sizesOf(subs []Sublevel) []int {
	out := make([]int, len(subs))
	for i, s := range subs {
		out[i] = len(s.Entries)
	}
	return out
}

func groupSizes(groups []*Group) []int {
	out := make([]int, len(groups))
	for i, g := range groups {
		out[i] = g.Size()
	}
	return out
}

func indexSequence(groups []*Group) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		for _, e := range g.Entries {
			out[i] = append(out[i], e.SourceIndex)
		}
	}
	return out
}
