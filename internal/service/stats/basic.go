package stats

import (
	"cmp"
	"slices"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

func (a *Analyzer) basic(c *corpus, st *domain.Stats) {
	chars := make(map[rune]struct{})
	totalChars := 0
	for _, rs := range c.runes {
		totalChars += len(rs)
		for _, r := range rs {
			chars[r] = struct{}{}
		}
	}

	var longest, shortest domain.WordRef
	for _, i := range c.valid {
		n := len(c.runes[i])
		if n > longest.Length {
			longest = domain.WordRef{Word: c.words[i], Length: n}
		}
		if n > 0 && (shortest.Length == 0 || n < shortest.Length) {
			shortest = domain.WordRef{Word: c.words[i], Length: n}
		}
	}

	st.Basic = &domain.BasicStats{
		TotalWords:       c.total(),
		AverageLength:    ratio(totalChars, c.total()),
		UniqueCharacters: len(chars),
		LongestWord:      longest,
		ShortestWord:     shortest,
		TotalCharacters:  totalChars,
		ValidWordsCount:  len(c.valid),
		FilteredOutCount: c.total() - len(c.valid),
	}
}

func (a *Analyzer) lengthDistribution(c *corpus, st *domain.Stats) {
	raw := make(map[int]int)
	for _, rs := range c.runes {
		raw[len(rs)]++
	}

	lengths := sortedKeys(raw)
	d := &domain.LengthDistribution{
		Lengths:     lengths,
		Counts:      make([]int, len(lengths)),
		Percentages: make([]float64, len(lengths)),
		Raw:         raw,
	}
	for i, l := range lengths {
		d.Counts[i] = raw[l]
		d.Percentages[i] = percent(raw[l], c.total())
	}
	st.LengthDistribution = d
}

const (
	longestLimit     = 15
	shortestLimit    = 10
	uniqueCharsLimit = 10
	palindromeLimit  = 15
)

func (a *Analyzer) interestingWords(c *corpus, st *domain.Stats) {
	refs := make([]domain.WordRef, 0, len(c.valid))
	for _, i := range c.valid {
		refs = append(refs, domain.WordRef{Word: c.words[i], Length: len(c.runes[i])})
	}

	longest := slices.Clone(refs)
	slices.SortStableFunc(longest, func(x, y domain.WordRef) int { return cmp.Compare(y.Length, x.Length) })

	shortest := slices.DeleteFunc(slices.Clone(refs), func(r domain.WordRef) bool { return r.Length == 0 })
	slices.SortStableFunc(shortest, func(x, y domain.WordRef) int { return cmp.Compare(x.Length, y.Length) })

	unique := make([]domain.UniqueChars, 0, len(c.valid))
	palindromes := make([]string, 0)
	for _, i := range c.valid {
		rs := c.runes[i]
		unique = append(unique, domain.UniqueChars{
			Word:        c.words[i],
			UniqueChars: distinctRunes(rs),
			Length:      len(rs),
		})
		if len(rs) > 1 && isPalindrome(rs) && len(palindromes) < palindromeLimit {
			palindromes = append(palindromes, c.words[i])
		}
	}
	slices.SortStableFunc(unique, func(x, y domain.UniqueChars) int { return cmp.Compare(y.UniqueChars, x.UniqueChars) })

	st.InterestingWords = &domain.InterestingWords{
		Longest:         head(longest, longestLimit),
		Shortest:        head(shortest, shortestLimit),
		MostUniqueChars: head(unique, uniqueCharsLimit),
		Palindromes:     palindromes,
	}
}

func distinctRunes(rs []rune) int {
	seen := make(map[rune]struct{}, len(rs))
	for _, r := range rs {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func isPalindrome(rs []rune) bool {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		if rs[i] != rs[j] {
			return false
		}
	}
	return true
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
