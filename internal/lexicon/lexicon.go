// Package lexicon holds the heuristic marker tables used by the statistics
// and exposes them through read-only queries. A Lexicon never changes after
// construction and is safe for concurrent use.
package lexicon

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lexicon answers marker lookups against an immutable set of Tables.
type Lexicon struct {
	t Tables
}

// Default returns a Lexicon built from DefaultTables.
func Default() *Lexicon {
	return &Lexicon{t: DefaultTables()}
}

// New validates t and returns a Lexicon holding a private copy of it.
func New(t Tables) (*Lexicon, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &Lexicon{t: t.clone()}, nil
}

// Tables returns a copy of the underlying tables.
func (l *Lexicon) Tables() Tables {
	return l.t.clone()
}

func (t Tables) validate() error {
	groups := map[string][]Group{
		"loan_origins":    t.LoanOrigins,
		"derivations":     t.Derivations,
		"word_classes":    t.WordClasses,
		"semantic_fields": t.SemanticFields,
	}
	for key, gs := range groups {
		for i, g := range gs {
			if strings.TrimSpace(g.Name) == "" {
				return fmt.Errorf("lexicon: %s[%d]: name is required", key, i)
			}
		}
	}
	for i, r := range t.FormationRules {
		if strings.TrimSpace(r.Type) == "" {
			return fmt.Errorf("lexicon: formation_rules[%d]: type is required", i)
		}
	}
	return nil
}

// CaseMarkers returns the case markers word ends with.
func (l *Lexicon) CaseMarkers(word string) []string {
	return matchSuffixes(word, l.t.CaseMarkers)
}

// Honorifics returns the honorific markers found anywhere in word.
func (l *Lexicon) Honorifics(word string) []string {
	return matchContains(word, l.t.Honorifics)
}

// CompoundRoots returns the compound roots contained in word when word is
// more than three runes longer than the root.
func (l *Lexicon) CompoundRoots(word string) []string {
	n := utf8.RuneCountInString(word)
	var out []string
	for _, root := range l.t.CompoundRoots {
		if strings.Contains(word, root) && n > utf8.RuneCountInString(root)+3 {
			out = append(out, root)
		}
	}
	return out
}

// HasSandhiTrigger reports whether word contains a virama cluster that
// marks a sandhi candidate.
func (l *Lexicon) HasSandhiTrigger(word string) bool {
	return len(matchContains(word, l.t.SandhiTriggers)) > 0
}

// LoanOrigin classifies word by the first origin group with a marker in it.
// Words matching no group are "native".
func (l *Lexicon) LoanOrigin(word string) string {
	if g, ok := firstGroup(word, l.t.LoanOrigins, strings.Contains); ok {
		return g
	}
	return "native"
}

// LoanOrigins lists every origin bucket name, "native" last.
func (l *Lexicon) LoanOrigins() []string {
	out := make([]string, 0, len(l.t.LoanOrigins)+1)
	for _, g := range l.t.LoanOrigins {
		out = append(out, g.Name)
	}
	return append(out, "native")
}

// Prefixes returns the morphological prefixes of word that leave at least
// three runes of stem.
func (l *Lexicon) Prefixes(word string) []string {
	return affixesWithStem(word, l.t.Prefixes, strings.HasPrefix)
}

// Suffixes returns the morphological suffixes of word that leave at least
// three runes of stem.
func (l *Lexicon) Suffixes(word string) []string {
	return affixesWithStem(word, l.t.Suffixes, strings.HasSuffix)
}

// Derivation returns "<CLASS>-<suffix>" for the first derivational suffix
// word ends with, or "" when none applies.
func (l *Lexicon) Derivation(word string) string {
	for _, g := range l.t.Derivations {
		for _, m := range g.Markers {
			if strings.HasSuffix(word, m) {
				return g.Name + "-" + m
			}
		}
	}
	return ""
}

// ClusterConstraint labels a consonant cluster as "forbidden-<c>" or
// "common-<c>", or returns "" for unremarkable clusters.
func (l *Lexicon) ClusterConstraint(cluster string) string {
	for _, c := range l.t.ForbiddenClusters {
		if c == cluster {
			return "forbidden-" + cluster
		}
	}
	for _, c := range l.t.CommonClusters {
		if c == cluster {
			return "common-" + cluster
		}
	}
	return ""
}

// WordClass returns the first word class with a marker contained in word.
func (l *Lexicon) WordClass(word string) (string, bool) {
	return firstGroup(word, l.t.WordClasses, strings.Contains)
}

// SemanticFields returns every semantic field with a marker in word.
func (l *Lexicon) SemanticFields(word string) []string {
	var out []string
	for _, g := range l.t.SemanticFields {
		if len(matchContains(word, g.Markers)) > 0 {
			out = append(out, g.Name)
		}
	}
	return out
}

// MorphemeCount estimates the number of morphemes in word: one base, one
// per matching prefix and suffix, and one more for words over eight runes.
func (l *Lexicon) MorphemeCount(word string) int {
	n := 1
	for _, p := range l.t.MorphemePrefixes {
		if strings.HasPrefix(word, p) {
			n++
		}
	}
	for _, s := range l.t.MorphemeSuffixes {
		if strings.HasSuffix(word, s) {
			n++
		}
	}
	if utf8.RuneCountInString(word) > 8 {
		n++
	}
	return n
}

// Formation classifies how word was likely formed. Words of at most four
// runes are "simple"; unmatched longer words are "basic".
func (l *Lexicon) Formation(word string) string {
	if utf8.RuneCountInString(word) <= 4 {
		return "simple"
	}
	for _, r := range l.t.FormationRules {
		if anyMatch(word, r.Prefixes, strings.HasPrefix) ||
			anyMatch(word, r.Contains, strings.Contains) ||
			anyMatch(word, r.Suffixes, strings.HasSuffix) {
			return r.Type
		}
	}
	return "basic"
}

// PunctuationCount counts runes of word that are sentence punctuation.
func (l *Lexicon) PunctuationCount(word string) int {
	n := 0
	for _, r := range word {
		if strings.ContainsRune(l.t.PunctuationMarks, r) {
			n++
		}
	}
	return n
}

func matchSuffixes(word string, markers []string) []string {
	var out []string
	for _, m := range markers {
		if strings.HasSuffix(word, m) {
			out = append(out, m)
		}
	}
	return out
}

func matchContains(word string, markers []string) []string {
	var out []string
	for _, m := range markers {
		if strings.Contains(word, m) {
			out = append(out, m)
		}
	}
	return out
}

func anyMatch(word string, markers []string, match func(s, sub string) bool) bool {
	for _, m := range markers {
		if match(word, m) {
			return true
		}
	}
	return false
}

func firstGroup(word string, groups []Group, match func(s, sub string) bool) (string, bool) {
	for _, g := range groups {
		if anyMatch(word, g.Markers, match) {
			return g.Name, true
		}
	}
	return "", false
}

func affixesWithStem(word string, affixes []string, match func(s, affix string) bool) []string {
	n := utf8.RuneCountInString(word)
	var out []string
	for _, a := range affixes {
		if match(word, a) && n > utf8.RuneCountInString(a)+2 {
			out = append(out, a)
		}
	}
	return out
}
