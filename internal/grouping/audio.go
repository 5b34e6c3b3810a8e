package grouping

import (
	"regexp"
	"strings"
)

// xSystem spells the Esperanto supersigned letters in ASCII.
var xSystem = strings.NewReplacer(
	"ĉ", "cx", "ĝ", "gx", "ĥ", "hx", "ĵ", "jx", "ŝ", "sx", "ŭ", "ux",
	"Ĉ", "Cx", "Ĝ", "Gx", "Ĥ", "Hx", "Ĵ", "Jx", "Ŝ", "Sx", "Ŭ", "Ux",
)

var unsafeRun = regexp.MustCompile(`[^0-9A-Za-z_]+`)

// DefaultAudioKey derives the audio file stem for a word: x-system
// transliteration, every other non-alphanumeric run replaced by "_",
// lower-cased, with surrounding underscores trimmed. "Ĉu vi?" becomes
// "cxu_vi".
func DefaultAudioKey(word string) string {
	ascii := xSystem.Replace(word)
	safe := unsafeRun.ReplaceAllString(strings.TrimSpace(ascii), "_")
	if safe == "" {
		safe = "untitled"
	}
	return strings.Trim(strings.ToLower(safe), "_")
}
