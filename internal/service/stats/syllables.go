package stats

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/kesava/telugu-word-analysis/internal/akshara"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

func (a *Analyzer) syllableAnalysis(c *corpus, st *domain.Stats) {
	freq := counter{}
	consonants := counter{}
	perWord := make(map[int]int)

	for _, syls := range c.syllables {
		perWord[len(syls)]++
		for _, s := range syls {
			freq.add(s)
			if r, _ := utf8.DecodeRuneInString(s); akshara.Classify(r) == akshara.Consonant {
				consonants.add(string(r))
			}
		}
	}

	counts := sortedKeys(perWord)
	dist := make([]domain.SyllableBucket, 0, len(counts))
	sum := 0
	for _, n := range counts {
		dist = append(dist, domain.SyllableBucket{
			SyllableCount: n,
			WordCount:     perWord[n],
			Percentage:    percent(perWord[n], c.total()),
		})
		sum += n * perWord[n]
	}

	st.SyllableAnalysis = &domain.SyllableAnalysis{
		MostFrequentSyllables: freq.ranked(25, c.total()),
		ConsonantFrequency:    consonants.ranked(20, c.total()),
		SyllablesPerWord: domain.SyllablesPerWord{
			Distribution:            dist,
			AverageSyllablesPerWord: ratio(sum, c.total()),
		},
		TotalUniqueSyllables: len(freq),
	}
}

func (a *Analyzer) aksharams(c *corpus, st *domain.Stats) {
	freq := counter{}
	combos := counter{}
	vowels := counter{}
	occurrences := 0

	for _, syls := range c.syllables {
		for _, s := range syls {
			freq.add(s)
			occurrences++

			if r, _ := utf8.DecodeRuneInString(s); utf8.RuneCountInString(s) >= 2 && akshara.Classify(r) == akshara.Consonant {
				combos.add(s)
			}
			for _, r := range s {
				if cl := akshara.Classify(r); cl == akshara.IndependentVowel || cl == akshara.DependentVowelSign {
					vowels.add(string(r))
				}
			}
		}
	}

	st.Aksharams = &domain.AksharamStats{
		Top30:                      freq.ranked(30, c.total()),
		ConsonantVowelCombinations: combos.ranked(20, c.total()),
		VowelUsageInSyllables:      vowels.ranked(15, c.total()),
		TotalUniqueSyllables:       len(freq),
		TotalSyllableOccurrences:   occurrences,
	}
}

// gunintam counts every dependent vowel sign and the virama.
func (a *Analyzer) gunintam(c *corpus, st *domain.Stats) {
	signs := counter{}
	for _, rs := range c.runes {
		for _, r := range rs {
			if cl := akshara.Classify(r); cl == akshara.DependentVowelSign || cl == akshara.Virama {
				signs.add(string(r))
			}
		}
	}

	st.Gunintam = &domain.GunintamStats{
		All:                  signs.ranked(0, c.total()),
		TotalUniqueGunintams: len(signs),
	}
}

const (
	punctuationFirst rune = 0x0964
	punctuationLast  rune = 0x0965
)

func (a *Analyzer) patterns(c *corpus, st *domain.Stats) {
	var p domain.PatternStats
	for _, rs := range c.runes {
		var matras, halanta, numbers, punct bool
		allConsonants, allVowels := true, true

		for _, r := range rs {
			cl := akshara.Classify(r)
			if cl == akshara.DependentVowelSign || cl == akshara.Virama {
				matras = true
				halanta = halanta || cl == akshara.Virama
			}
			numbers = numbers || akshara.IsDigit(r)
			punct = punct || (r >= punctuationFirst && r <= punctuationLast)
			allConsonants = allConsonants && cl == akshara.Consonant
			allVowels = allVowels && cl == akshara.IndependentVowel
		}

		if matras {
			p.WithMatras++
		} else {
			p.WithoutMatras++
		}
		p.WithHalanta += b2i(halanta)
		p.WithNumbers += b2i(numbers)
		p.WithPunctuation += b2i(punct)
		p.AllConsonants += b2i(allConsonants)
		p.AllVowels += b2i(allVowels)
	}

	total := c.total()
	p.Percentages = map[string]float64{
		"withMatras":      percent(p.WithMatras, total),
		"withoutMatras":   percent(p.WithoutMatras, total),
		"withHalanta":     percent(p.WithHalanta, total),
		"withNumbers":     percent(p.WithNumbers, total),
		"withPunctuation": percent(p.WithPunctuation, total),
		"allConsonants":   percent(p.AllConsonants, total),
		"allVowels":       percent(p.AllVowels, total),
	}
	st.Patterns = &p
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// affixLimits are the ranked list sizes for one, two and three rune affixes.
var affixLimits = [3]int{20, 20, 15}

func (a *Analyzer) wordBeginnings(c *corpus, st *domain.Stats) {
	st.WordBeginnings = a.affixes(c, func(rs []rune, n int) []rune { return rs[:n] })
}

func (a *Analyzer) wordEndings(c *corpus, st *domain.Stats) {
	st.WordEndings = a.affixes(c, func(rs []rune, n int) []rune { return rs[len(rs)-n:] })
}

// affixes ranks the n-rune beginnings or endings selected by cut, each with
// up to three example words in corpus order.
func (a *Analyzer) affixes(c *corpus, cut func(rs []rune, n int) []rune) *domain.AffixStats {
	var out [3][]domain.AffixCount
	for k := range 3 {
		n := k + 1
		tally := counter{}
		examples := make(map[string][]string)
		for i, rs := range c.runes {
			if len(rs) < n {
				continue
			}
			key := string(cut(rs, n))
			tally.add(key)
			if len(examples[key]) < 3 {
				examples[key] = append(examples[key], c.words[i])
			}
		}

		ranked := tally.ranked(affixLimits[k], c.total())
		out[k] = make([]domain.AffixCount, 0, len(ranked))
		for _, r := range ranked {
			out[k] = append(out[k], domain.AffixCount{Count: r, Examples: examples[r.Value]})
		}
	}
	return &domain.AffixStats{OneChar: out[0], TwoChar: out[1], ThreeChar: out[2]}
}

// sortedKeys returns map keys in ascending order.
func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
