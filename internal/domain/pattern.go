package domain

import "fmt"

// SearchMode selects how pattern search compares two words.
type SearchMode string

const (
	SearchExact    SearchMode = "exact"
	SearchSimilar  SearchMode = "similar"
	SearchSyllable SearchMode = "syllable"
	SearchShape    SearchMode = "shape"
)

// ParseSearchMode validates a mode name. An empty name selects SearchSimilar.
func ParseSearchMode(s string) (SearchMode, error) {
	switch m := SearchMode(s); m {
	case "":
		return SearchSimilar, nil
	case SearchExact, SearchSimilar, SearchSyllable, SearchShape:
		return m, nil
	default:
		return "", NewValidationError("mode", fmt.Sprintf("unknown search mode %q", s))
	}
}

// WordShape summarizes the structure of a word for pattern search.
type WordShape struct {
	SyllableCount      int    `json:"syllableCount"`
	Structure          string `json:"structure"`
	CVPattern          string `json:"consonantVowelPattern"`
	ConjunctCount      int    `json:"conjunctCount"`
	VowelModifierCount int    `json:"vowelModifierCount"`
}

// GunintamMark is a dependent vowel sign and the rune it attaches to.
type GunintamMark struct {
	Position   int    `json:"position"`
	Modifier   string `json:"modifier"`
	AttachedTo string `json:"attachedTo"`
}

// OthuMark is a virama joining two consonants into a conjunct.
type OthuMark struct {
	Position          int    `json:"position"`
	Conjunct          string `json:"conjunct"`
	BaseConsonant     string `json:"baseConsonant"`
	ConjunctConsonant string `json:"conjunctConsonant"`
}

// Letter is a consonant or independent vowel at a rune position.
type Letter struct {
	Position int    `json:"position"`
	Value    string `json:"value"`
}

// WordPattern is the full gunintam/othu description of a word. Positions
// are rune offsets.
type WordPattern struct {
	Word       string         `json:"word"`
	Syllables  []string       `json:"syllables"`
	Shape      WordShape      `json:"shape"`
	Gunintam   []GunintamMark `json:"gunintam"`
	Othu       []OthuMark     `json:"othu"`
	Consonants []Letter       `json:"consonants"`
	Vowels     []Letter       `json:"vowels"`
}

// PatternMatch is one search hit.
type PatternMatch struct {
	Word       string      `json:"word"`
	Pattern    WordPattern `json:"pattern"`
	Similarity float64     `json:"similarity"`
	MatchType  string      `json:"matchType"`
	Details    []string    `json:"details"`
}
