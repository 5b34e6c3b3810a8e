package pos

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var personalPronouns = set("mi", "vi", "li", "ŝi", "ĝi", "ni", "ili", "oni", "ci")

// "oni" is also listed as a personal pronoun, which wins.
var pronouns = set("oni", "si", "mem")

var (
	correlativePrefixes = []string{"ki", "ti", "i", "neni", "ĉi", "ĉ"}
	correlativeSuffixes = []string{"u", "o", "a", "e", "al", "am", "el", "om", "es"}
	correlativeSpecial  = set("ĉi", "ĉiuj", "ĉiu")
)

var prepositions = set(
	"al", "da", "de", "disde", "el", "ekster", "ĝis", "je", "inter",
	"kontraŭ", "kun", "laŭ", "malgraŭ", "per", "po", "por", "post", "pri",
	"pro", "sen", "sub", "super", "sur", "tra", "trans", "ĉe", "ĉirkaŭ",
	"antaŭ", "apud", "eksteren", "interne", "preter", "en", "anstataŭ",
	"krom", "malantaŭ",
)

var conjunctions = set(
	"kaj", "aŭ", "sed", "se", "ĉar", "ke", "do", "tamen", "kvankam", "ol",
	"ĉu", "kvazaŭ", "dum", "nek", "tial",
)

var bareAdverbs = set(
	"jes", "ne", "nun", "tre", "pli", "plej", "jen", "ja", "preskaŭ",
	"baldaŭ", "hieraŭ", "morgaŭ", "ĉiam", "neniam", "foje", "refoje",
	"ankoraŭ", "tuj", "jam", "eĉ", "apenaŭ", "for", "tie", "tie ĉi", "ĉie",
	"sekve", "multe", "iom", "iomete", "sufiĉe", "egale", "kune", "aparte",
	"tute", "parte", "rekte", "malrekte", "denove", "pli-malpli",
	"proksime", "malproksime", "bone", "malbone", "ajn", "ankaŭ", "nur",
	"des", "hodiaŭ", "almenaŭ", "adiaŭ",
)

var numerals = set(
	"nul", "nulo", "unu", "du", "tri", "kvar", "kvin", "ses", "sep", "ok",
	"naŭ", "dek", "cent", "mil", "miliono", "miliardo", "ducent", "tricent",
)

// verbEndings are checked after the adverb ending and before the adjective
// and noun endings.
var verbEndings = []string{"as", "is", "os", "us", "u", "i"}
