package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesava/telugu-word-analysis/internal/akshara"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

func TestCounter_RankedBreaksTiesByValue(t *testing.T) {
	t.Parallel()

	c := counter{"b": 2, "a": 2, "c": 5, "d": 1}
	got := c.ranked(3, 10)

	assert.Equal(t, []domain.Count{
		{Value: "c", Count: 5, Percentage: 50},
		{Value: "a", Count: 2, Percentage: 20},
		{Value: "b", Count: 2, Percentage: 20},
	}, got)
	assert.Len(t, c.ranked(0, 10), 4)
}

func TestPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, percent(3, 0))
	assert.Equal(t, 33.33, percent(1, 3))
	assert.Equal(t, 66.67, percent(2, 3))
}

func TestConsonantClusters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want []string
	}{
		{"అమ్మ", []string{"మ్మ"}},
		{"తల్లిదండ్రులు", []string{"ల్ల", "డ్ర"}},
		{"క్ష్మ", []string{"క్ష"}},
		{"కమల", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, consonantClusters([]rune(tt.word)), tt.word)
	}
}

func TestReduplication(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{"గలగల", ""},
		{"గలగలగల", "గలగల...గలగల"},
		{"గబగబగబగబ", "గబగబ-గబగబ"},
		{"చకచక", ""},
		{"చిటచిట", "చిట-చిట"},
		{"అమ్మఅమ్మ", "అమ్మ-అమ్మ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reduplication(tt.word, []rune(tt.word)), tt.word)
	}
}

func TestRootPattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "V-C", rootPattern(akshara.Segment("అకల")))
	assert.Equal(t, "CV-CV", rootPattern(akshara.Segment("రాము")))
	assert.Equal(t, "C-X", rootPattern(akshara.Segment("కం")))
	assert.Equal(t, "", rootPattern(akshara.Segment("క")))
}

func TestAlliterates(t *testing.T) {
	t.Parallel()

	p, ok := alliterates(akshara.Segment("కాకి"))
	require.True(t, ok)
	assert.Equal(t, "కక", p)

	p, ok = alliterates(akshara.Segment("మామిమ"))
	require.True(t, ok)
	assert.Equal(t, "మమమ", p)

	_, ok = alliterates(akshara.Segment("కమల"))
	assert.False(t, ok)
	_, ok = alliterates(akshara.Segment("క"))
	assert.False(t, ok)
}

func TestBucket(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "simple", bucket(3, complexityOrder, 3, 6, 9))
	assert.Equal(t, "medium", bucket(4, complexityOrder, 3, 6, 9))
	assert.Equal(t, "complex", bucket(9, complexityOrder, 3, 6, 9))
	assert.Equal(t, "highly_complex", bucket(10, complexityOrder, 3, 6, 9))
}

func TestCognitiveLoad(t *testing.T) {
	t.Parallel()

	// అమ్మ: 4 runes * 0.5 + 2 aksharas + 1 cluster * 2 + 1 morpheme + 1 virama.
	rs := []rune("అమ్మ")
	assert.Equal(t, 8, cognitiveLoad(rs, 2, 1))
}

func TestAnalyze_Linguistics(t *testing.T) {
	t.Parallel()

	words := []string{"ఇంటివరకు", "గురువుగారు", "విద్యార్థి", "కమల", "అ"}
	st, err := newTestAnalyzer(Config{Sections: []string{domain.SectionTeluguLinguistics}}).
		Analyze(context.Background(), words)
	require.NoError(t, err)

	tl := st.TeluguLinguistics
	require.NotNil(t, tl)
	assert.Equal(t, []domain.Count{{Value: "ద్య", Count: 1, Percentage: 20}}, tl.SandhiPatterns)
	assert.Equal(t, "గారు", tl.HonorificPatterns[0].Value)
	assert.Equal(t, domain.Share{Count: 1, Percentage: 20}, tl.LoanWordDistribution["sanskrit"])
	assert.Equal(t, 3, tl.LoanWordDistribution["native"].Count)
	// "అ" is too short to be classified.
	total := 0
	for _, s := range tl.LoanWordDistribution {
		total += s.Count
	}
	assert.Equal(t, 4, total)
}

func TestAnalyze_Phonetics(t *testing.T) {
	t.Parallel()

	words := []string{"అమ్మ", "అక్క", "కాకి"}
	st, err := newTestAnalyzer(Config{Sections: []string{domain.SectionPhonetics}}).
		Analyze(context.Background(), words)
	require.NoError(t, err)

	ph := st.Phonetics
	require.NotNil(t, ph)
	assert.ElementsMatch(t, []string{"common-క్క", "common-మ్మ"}, values(ph.PhoneticConstraints))
	assert.Equal(t, "కక", ph.AlliterationPatterns[0].Value)
}

func TestAnalyze_InterestingWords(t *testing.T) {
	t.Parallel()

	words := []string{"కటక", "అ", "ఇంటివరకు", "మలయాళం", "abba", "ఒక వాక్యం"}
	st, err := newTestAnalyzer(Config{Sections: []string{domain.SectionInterestingWords}}).
		Analyze(context.Background(), words)
	require.NoError(t, err)

	iw := st.InterestingWords
	require.NotNil(t, iw)
	assert.Equal(t, "ఇంటివరకు", iw.Longest[0].Word)
	assert.Equal(t, "అ", iw.Shortest[0].Word)
	assert.Equal(t, []string{"కటక", "abba"}, iw.Palindromes)
	for _, w := range iw.Longest {
		assert.NotEqual(t, "ఒక వాక్యం", w.Word)
	}
}

func values(cs []domain.Count) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Value)
	}
	return out
}
