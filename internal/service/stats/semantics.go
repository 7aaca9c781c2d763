package stats

import (
	"math"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

var (
	complexityOrder = []string{"simple", "medium", "complex", "highly_complex"}
	loadOrder       = []string{"easy", "medium", "hard", "very_hard"}
)

// lastConsonant is the highest code point counted as a common letter when
// estimating cognitive load.
const lastConsonant rune = 0x0C39

func (a *Analyzer) semanticPatterns(c *corpus, st *domain.Stats) {
	complexity := counter{}
	classes := counter{}
	fields := counter{}
	formation := counter{}
	load := counter{}

	for i, rs := range c.runes {
		if len(rs) < minLinguisticLength {
			continue
		}
		word := c.words[i]
		syls := c.syllables[i]
		morphemes := a.lex.MorphemeCount(word)

		complexity.add(bucket(len(syls)+morphemes, complexityOrder, 3, 6, 9))

		if class, ok := a.lex.WordClass(word); ok {
			classes.add(class)
		}
		for _, f := range a.lex.SemanticFields(word) {
			fields.add(f)
		}
		formation.add(a.lex.Formation(word))
		load.add(bucket(cognitiveLoad(rs, len(syls), morphemes), loadOrder, 5, 10, 15))
	}

	st.SemanticPatterns = &domain.SemanticStats{
		WordComplexity: complexity.ordered(complexityOrder, c.total()),
		WordClasses:    classes.ranked(0, c.total()),
		SemanticFields: fields.ranked(0, c.total()),
		WordFormation:  formation.ranked(10, c.total()),
		CognitiveLoad:  load.ordered(loadOrder, c.total()),
	}
}

// bucket returns names[i] for the first bound i with v <= bound, or the
// last name when v exceeds every bound.
func bucket(v int, names []string, bounds ...int) string {
	for i, b := range bounds {
		if v <= b {
			return names[i]
		}
	}
	return names[len(bounds)]
}

// cognitiveLoad scores processing difficulty from length, akshara count,
// conjuncts, morphemes and the number of signs and rare letters.
func cognitiveLoad(rs []rune, syllables, morphemes int) int {
	score := float64(len(rs)) * 0.5
	score += float64(syllables)
	score += float64(len(consonantClusters(rs)) * 2)
	score += float64(morphemes)
	for _, r := range rs {
		if r > lastConsonant {
			score++
		}
	}
	return int(math.Round(score))
}
