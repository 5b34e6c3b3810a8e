package pos

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// numeralStem matches a numeral root followed by any run of Esperanto
// letters (unua, dekdu, centoj, ...).
var numeralStem = regexp.MustCompile(`^(unu|du|tri|kvar|kvin|ses|sep|ok|naŭ|dek|cent|mil)[a-zĉĝĥĵŝŭ]*$`)

var folder = cases.Fold()

// Normalize trims surrounding whitespace, composes combining diacritics
// (c + U+0302 becomes ĉ) and case-folds the result.
func Normalize(word string) string {
	w := strings.TrimSpace(word)
	if w == "" {
		return ""
	}
	return folder.String(norm.NFC.String(w))
}

// Classify returns the part-of-speech tag for word. It never fails: input
// that is blank yields Unknown and input that no rule recognizes yields Other.
func Classify(word string) Tag {
	w := Normalize(word)
	if w == "" {
		return Unknown
	}

	switch {
	case strings.HasPrefix(w, "-"):
		// "-et-" and "-ul" are both suffixes.
		return Suffix
	case strings.HasSuffix(w, "-"):
		return Prefix
	}

	if IsCorrelative(w) {
		return Correlative
	}
	if _, ok := personalPronouns[w]; ok {
		return PersonalPronoun
	}
	if _, ok := pronouns[w]; ok {
		return Pronoun
	}
	if isNumeral(w) {
		return Numeral
	}
	if _, ok := prepositions[w]; ok {
		return Preposition
	}
	if _, ok := conjunctions[w]; ok {
		return Conjunction
	}
	if _, ok := bareAdverbs[w]; ok {
		return BareAdverb
	}

	return classifyByEnding(StripInflection(w))
}

// IsCorrelative reports whether w is one of the table words: a fixed
// prefix joined to a fixed ending, or one of the special forms.
func IsCorrelative(w string) bool {
	if _, ok := correlativeSpecial[w]; ok {
		return true
	}
	for _, prefix := range correlativePrefixes {
		rest, ok := strings.CutPrefix(w, prefix)
		if !ok {
			continue
		}
		for _, suffix := range correlativeSuffixes {
			if rest == suffix {
				return true
			}
		}
	}
	return false
}

// StripInflection removes trailing plural and accusative markers. It strips
// repeatedly, so "hundojn" becomes "hundo".
func StripInflection(w string) string {
	return strings.TrimRight(w, "jn")
}

func isNumeral(w string) bool {
	if isAllDigits(w) {
		return true
	}
	if _, ok := numerals[w]; ok {
		return true
	}
	return numeralStem.MatchString(w)
}

func isAllDigits(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func classifyByEnding(base string) Tag {
	if strings.HasSuffix(base, "e") {
		return Adverb
	}
	for _, end := range verbEndings {
		if strings.HasSuffix(base, end) {
			return Verb
		}
	}
	if strings.HasSuffix(base, "a") {
		return Adjective
	}
	if strings.HasSuffix(base, "o") {
		return Noun
	}
	return Other
}
