package pos

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		word string
		want Tag
	}{
		// Ending rules
		{"birdo", Noun},
		{"bela", Adjective},
		{"kuri", Verb},
		{"kuras", Verb},
		{"kuris", Verb},
		{"kuros", Verb},
		{"kurus", Verb},
		{"kuru", Verb},
		{"rapide", Adverb},

		// Plural / accusative stripping
		{"birdoj", Noun},
		{"birdojn", Noun},
		{"belan", Adjective},
		{"rapiden", Adverb},

		// Closed classes
		{"kio", Correlative},
		{"tiu", Correlative},
		{"neniam", Correlative},
		{"ĉiuj", Correlative},
		{"kaj", Conjunction},
		{"sed", Conjunction},
		{"mi", PersonalPronoun},
		{"oni", PersonalPronoun},
		{"si", Pronoun},
		{"mem", Pronoun},
		{"de", Preposition},
		{"kontraŭ", Preposition},
		{"jes", BareAdverb},
		{"tie ĉi", BareAdverb},

		// Numerals
		{"tri", Numeral},
		{"unua", Numeral},
		{"dekdu", Numeral},
		{"42", Numeral},
		{"miliono", Numeral},

		// Affixes
		{"-et-", Suffix},
		{"-ul", Suffix},
		{"mal-", Prefix},
		{"-", Suffix},

		// Fallbacks
		{"", Unknown},
		{"   ", Unknown},
		{"xyz", Other},
		{"n", Other},

		// Normalization
		{"BIRDO", Noun},
		{"  Bela  ", Adjective},
		{"Ĉevalo", Noun},
		{"KAJ", Conjunction},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := Classify(tt.word)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	words := []string{"birdo", "kio", "-et-", "rapide", "dek", "ŝi"}
	for _, w := range words {
		first := Classify(w)
		for i := 0; i < 5; i++ {
			if got := Classify(w); got != first {
				t.Fatalf("Classify(%q) changed from %q to %q", w, first, got)
			}
		}
	}
}

func TestStripInflection(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hundojn", "hundo"},
		{"hundoj", "hundo"},
		{"hundon", "hundo"},
		{"hundo", "hundo"},
		{"jn", ""},
	}
	for _, tt := range tests {
		if got := StripInflection(tt.in); got != tt.want {
			t.Errorf("StripInflection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  ĈEVALO "); got != "ĉevalo" {
		t.Errorf("Normalize precomposed = %q", got)
	}
	if got := Normalize("C\u0302EVALO"); got != "ĉevalo" {
		t.Errorf("Normalize combining = %q", got)
	}
}

func TestTag_Combined(t *testing.T) {
	if PersonalPronoun.Combined() != Pronoun {
		t.Error("personal pronoun should fold into pronoun")
	}
	if Pronoun.Combined() != Pronoun {
		t.Error("pronoun should stay pronoun")
	}
	if Noun.Combined() != Noun {
		t.Error("noun should be unchanged")
	}
}

func TestOrdered(t *testing.T) {
	tags := Ordered()
	seen := make(map[Tag]bool)
	for i, tag := range tags {
		if seen[tag] {
			t.Fatalf("duplicate tag %q", tag)
		}
		seen[tag] = true
		if tag.Rank() != i {
			t.Errorf("%q.Rank() = %d, want %d", tag, tag.Rank(), i)
		}
		if !tag.IsValid() {
			t.Errorf("%q should be valid", tag)
		}
	}
	if Tag("bogus").Rank() != len(tags) {
		t.Error("unknown tag should rank after all known tags")
	}

	// Mutating the returned slice must not affect later calls.
	tags[0] = Other
	if Ordered()[0] != Noun {
		t.Error("Ordered returned shared backing array")
	}
}

func TestParse(t *testing.T) {
	if tag, ok := Parse("noun"); !ok || tag != Noun {
		t.Errorf("Parse(noun) = %q, %v", tag, ok)
	}
	if _, ok := Parse("NOUN"); ok {
		t.Error("Parse should be case-sensitive")
	}
	if Tag("bogus").DisplayName() != "bogus" {
		t.Error("unknown tag display name should be raw value")
	}
}
