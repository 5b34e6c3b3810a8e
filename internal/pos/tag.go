// Package pos classifies Esperanto words into part-of-speech tags using
// closed word lists and ending rules. Classification depends on the word
// text alone.
package pos

// Tag is a part-of-speech category.
type Tag string

const (
	Noun            Tag = "noun"
	Verb            Tag = "verb"
	Adjective       Tag = "adjective"
	Adverb          Tag = "adverb"
	BareAdverb      Tag = "bare_adverb"
	Correlative     Tag = "correlative"
	PersonalPronoun Tag = "personal_pronoun"
	Pronoun         Tag = "pronoun"
	Numeral         Tag = "numeral"
	Preposition     Tag = "preposition"
	Conjunction     Tag = "conjunction"
	Prefix          Tag = "prefix"
	Suffix          Tag = "suffix"
	Other           Tag = "other"
	Unknown         Tag = "unknown"
)

// ordered is the canonical iteration order. Anything that walks tags to
// consume randomness must use it.
var ordered = []Tag{
	Noun,
	Verb,
	Adjective,
	Adverb,
	BareAdverb,
	Correlative,
	PersonalPronoun,
	Pronoun,
	Numeral,
	Preposition,
	Conjunction,
	Prefix,
	Suffix,
	Other,
	Unknown,
}

var displayNames = map[Tag]string{
	Noun:            "Noun",
	Verb:            "Verb",
	Adjective:       "Adjective",
	Adverb:          "Adverb",
	BareAdverb:      "Bare adverb",
	Correlative:     "Correlative",
	PersonalPronoun: "Personal pronoun",
	Pronoun:         "Pronoun",
	Numeral:         "Numeral",
	Preposition:     "Preposition",
	Conjunction:     "Conjunction",
	Prefix:          "Prefix",
	Suffix:          "Suffix",
	Other:           "Other",
	Unknown:         "Unknown",
}

// Ordered returns every tag in canonical order.
func Ordered() []Tag {
	out := make([]Tag, len(ordered))
	copy(out, ordered)
	return out
}

func (t Tag) String() string { return string(t) }

// IsValid reports whether t is one of the known tags.
func (t Tag) IsValid() bool {
	_, ok := displayNames[t]
	return ok
}

// DisplayName returns a human-readable name, or the raw value for unknown tags.
func (t Tag) DisplayName() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}

// Rank returns the position of t in the canonical order, or len(Ordered())
// for tags outside the set.
func (t Tag) Rank() int {
	for i, o := range ordered {
		if o == t {
			return i
		}
	}
	return len(ordered)
}

// Combined folds the pronoun-like tags into Pronoun. Grouping treats
// personal and other pronouns as one population.
func (t Tag) Combined() Tag {
	if t == PersonalPronoun {
		return Pronoun
	}
	return t
}

// Parse converts a string into a Tag. ok is false for unknown values.
func Parse(s string) (Tag, bool) {
	t := Tag(s)
	return t, t.IsValid()
}
