package grouping

import (
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
)

// Options tunes a build. The zero value is valid: derived seeding, no
// audio keys, no logging.
type Options struct {
	// AudioKey, when set, is called once per entry with the trimmed text.
	AudioKey func(text string) string

	SeedMode SeedMode

	// Logger receives one debug line per part of speech.
	Logger *slog.Logger
}

// Load converts records into entries. SourceIndex is the record position.
// The first invalid record aborts the load with a *DataValidationError.
func Load(records []Record, audioKey func(string) string) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(records))
	for i, rec := range records {
		e, err := newEntry(i, rec, audioKey)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func newEntry(row int, rec Record, audioKey func(string) string) (*Entry, error) {
	text := strings.TrimSpace(rec.Text)
	if text == "" {
		return nil, &DataValidationError{Row: row, Field: "text", Message: "is required"}
	}
	translation := strings.TrimSpace(rec.Translation)
	if translation == "" {
		return nil, &DataValidationError{Row: row, Field: "translation", Message: "is required"}
	}
	rawLevel := strings.TrimSpace(rec.Level)
	if rawLevel == "" {
		return nil, &DataValidationError{Row: row, Field: "level", Message: "is required"}
	}
	level, err := strconv.ParseFloat(rawLevel, 64)
	if err != nil || math.IsNaN(level) || math.IsInf(level, 0) {
		return nil, &DataValidationError{Row: row, Field: "level", Message: "must be a finite number, got " + strconv.Quote(rawLevel)}
	}

	e := &Entry{
		Text:         text,
		Translation:  translation,
		Level:        level,
		PartOfSpeech: pos.Classify(text),
		SourceIndex:  row,
	}
	if audioKey != nil {
		e.AudioKey = audioKey(text)
	}
	return e, nil
}

// Build loads records and partitions them into groups. The output is a
// pure function of records, seed and opts.SeedMode.
func Build(records []Record, seed int64, opts Options) ([]*Group, error) {
	entries, err := Load(records, opts.AudioKey)
	if err != nil {
		return nil, err
	}
	return BuildEntries(entries, seed, opts), nil
}

// BuildEntries partitions already loaded entries. Each combined part of
// speech is stratified, merged and partitioned independently; the groups
// are concatenated in canonical part-of-speech order.
func BuildEntries(entries []*Entry, seed int64, opts Options) []*Group {
	byPOS := make(map[pos.Tag][]*Entry)
	for _, e := range entries {
		tag := e.PartOfSpeech.Combined()
		byPOS[tag] = append(byPOS[tag], e)
	}

	var shared RandomSource
	if opts.SeedMode == SeedModeShared {
		shared = NewRand(seed)
	}

	var groups []*Group
	for _, tag := range sortedTags(byPOS) {
		sublevels := MergeSmall(Sublevels(Stratify(byPOS[tag])))

		before := len(groups)
		for _, s := range sublevels {
			rng := shared
			if rng == nil {
				rng = newBucketRand(seed, tag, s.Labels)
			}
			groups = append(groups, Partition(s.Labels, s.Entries, tag, rng)...)
		}

		if opts.Logger != nil {
			opts.Logger.Debug("partitioned part of speech",
				slog.String("pos", string(tag)),
				slog.Int("entries", len(byPOS[tag])),
				slog.Int("sublevels", len(sublevels)),
				slog.Int("groups", len(groups)-before),
			)
		}
	}
	return groups
}

// sortedTags returns the map keys in canonical order; tags outside the
// known set sort after it alphabetically.
func sortedTags(m map[pos.Tag][]*Entry) []pos.Tag {
	tags := make([]pos.Tag, 0, len(m))
	for tag := range m {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		ri, rj := tags[i].Rank(), tags[j].Rank()
		if ri != rj {
			return ri < rj
		}
		return tags[i] < tags[j]
	})
	return tags
}
