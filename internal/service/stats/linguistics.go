package stats

import (
	"strings"

	"github.com/kesava/telugu-word-analysis/internal/akshara"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// Minimum rune lengths below which words are skipped by heuristic sections.
const (
	minLinguisticLength = 3
	minMorphologyLength = 4
	minCompoundLength   = 9
	minReduplication    = 6
)

func (a *Analyzer) teluguLinguistics(c *corpus, st *domain.Stats) {
	sandhi := counter{}
	compounds := counter{}
	cases := counter{}
	honorifics := counter{}
	redup := counter{}
	origins := counter{}

	for i, rs := range c.runes {
		if len(rs) < minLinguisticLength {
			continue
		}
		word := c.words[i]

		if a.lex.HasSandhiTrigger(word) {
			if cl := consonantClusters(rs); len(cl) > 0 {
				sandhi.add(cl[0])
			}
		}
		if len(rs) >= minCompoundLength {
			for _, root := range a.lex.CompoundRoots(word) {
				compounds.add(root)
			}
		}
		for _, m := range a.lex.CaseMarkers(word) {
			cases.add(m)
		}
		for _, h := range a.lex.Honorifics(word) {
			honorifics.add(h)
		}
		if p := reduplication(word, rs); p != "" {
			redup.add(p)
		}
		origins.add(a.lex.LoanOrigin(word))
	}

	loans := make(map[string]domain.Share)
	for _, name := range a.lex.LoanOrigins() {
		loans[name] = domain.Share{Count: origins[name], Percentage: percent(origins[name], c.total())}
	}

	st.TeluguLinguistics = &domain.LinguisticStats{
		SandhiPatterns:        sandhi.ranked(15, c.total()),
		CompoundWords:         compounds.ranked(20, c.total()),
		CaseMarkers:           cases.ranked(0, c.total()),
		HonorificPatterns:     honorifics.ranked(0, c.total()),
		ReduplicationPatterns: redup.ranked(10, c.total()),
		LoanWordDistribution:  loans,
	}
}

// reduplication detects a word made of two equal halves ("x-x") or one whose
// first four runes recur later ("x...x").
func reduplication(word string, rs []rune) string {
	if len(rs) < minReduplication {
		return ""
	}

	half := len(rs) / 2
	first, second := string(rs[:half]), string(rs[half:])
	if first == second {
		return first + "-" + second
	}

	part := string(rs[:4])
	if strings.LastIndex(word, part) > 0 {
		return part + "..." + part
	}
	return ""
}

// consonantClusters returns the non-overlapping consonant+virama+consonant
// sequences of rs, left to right.
func consonantClusters(rs []rune) []string {
	var out []string
	for i := 0; i+2 < len(rs); {
		if akshara.Classify(rs[i]) == akshara.Consonant &&
			rs[i+1] == akshara.ViramaRune &&
			akshara.Classify(rs[i+2]) == akshara.Consonant {
			out = append(out, string(rs[i:i+3]))
			i += 3
			continue
		}
		i++
	}
	return out
}

func (a *Analyzer) morphology(c *corpus, st *domain.Stats) {
	prefixes := counter{}
	suffixes := counter{}
	roots := counter{}
	derivations := counter{}

	for i, rs := range c.runes {
		if len(rs) < minMorphologyLength {
			continue
		}
		word := c.words[i]

		for _, p := range a.lex.Prefixes(word) {
			prefixes.add(p)
		}
		for _, s := range a.lex.Suffixes(word) {
			suffixes.add(s)
		}
		if p := rootPattern(c.syllables[i]); p != "" {
			roots.add(p)
		}
		if d := a.lex.Derivation(word); d != "" {
			derivations.add(d)
		}
	}

	st.Morphology = &domain.MorphologyStats{
		PrefixFrequency:      prefixes.ranked(15, c.total()),
		SuffixFrequency:      suffixes.ranked(20, c.total()),
		RootPatterns:         roots.ranked(12, c.total()),
		DerivationalPatterns: derivations.ranked(10, c.total()),
	}
}

// rootPattern encodes the first two aksharas as C, CV, V or X joined by "-".
func rootPattern(syllables []string) string {
	if len(syllables) < 2 {
		return ""
	}

	parts := make([]string, 2)
	for i, s := range syllables[:2] {
		rs := []rune(s)
		switch akshara.Classify(rs[0]) {
		case akshara.Consonant:
			if len(rs) > 1 {
				parts[i] = "CV"
			} else {
				parts[i] = "C"
			}
		case akshara.IndependentVowel:
			parts[i] = "V"
		default:
			parts[i] = "X"
		}
	}
	return strings.Join(parts, "-")
}
