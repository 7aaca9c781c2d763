package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// WriteSummary prints a short human-readable digest of st. Sections that
// were not generated are left out.
func WriteSummary(w io.Writer, st *domain.Stats) error {
	var b strings.Builder

	b.WriteString("=== TELUGU SYLLABLE-BASED ANALYSIS SUMMARY ===\n")
	fmt.Fprintf(&b, "Total Words: %d\n", st.Metadata.TotalWords)
	if bs := st.Basic; bs != nil {
		fmt.Fprintf(&b, "Average Length: %.2f characters\n", bs.AverageLength)
		fmt.Fprintf(&b, "Unique Characters: %d\n", bs.UniqueCharacters)
		fmt.Fprintf(&b, "Longest Word: %q (%d chars)\n", bs.LongestWord.Word, bs.LongestWord.Length)
		fmt.Fprintf(&b, "Shortest Word: %q (%d chars)\n", bs.ShortestWord.Word, bs.ShortestWord.Length)
	}
	if sa := st.SyllableAnalysis; sa != nil {
		fmt.Fprintf(&b, "Average Syllables per Word: %.2f\n", sa.SyllablesPerWord.AverageSyllablesPerWord)
		fmt.Fprintf(&b, "Total Unique Syllables: %d\n", sa.TotalUniqueSyllables)
		writeTop(&b, "Top 5 Most Common Syllables", sa.MostFrequentSyllables, "times")
		writeTop(&b, "Top 5 Most Common Consonants", sa.ConsonantFrequency, "times")
	}
	if wb := st.WordBeginnings; wb != nil {
		top := make([]domain.Count, 0, len(wb.TwoChar))
		for _, a := range wb.TwoChar {
			top = append(top, a.Count)
		}
		writeTop(&b, "Top 5 Most Common Word Beginnings (2 chars)", top, "words")
	}
	if tl := st.TeluguLinguistics; tl != nil {
		writeTop(&b, "Top 3 Case Markers", head(tl.CaseMarkers, 3), "words")
		b.WriteString("\nLoan Word Distribution:\n")
		for _, origin := range sortedKeys(tl.LoanWordDistribution) {
			fmt.Fprintf(&b, "- %s: %.2f%%\n", origin, tl.LoanWordDistribution[origin].Percentage)
		}
	}
	if m := st.Morphology; m != nil {
		writeTop(&b, "Top 3 Prefixes", head(m.PrefixFrequency, 3), "words")
	}
	if sp := st.SemanticPatterns; sp != nil && len(sp.WordComplexity) > 0 {
		b.WriteString("\nWord Complexity Distribution:\n")
		for _, c := range sp.WordComplexity {
			fmt.Fprintf(&b, "- %s: %.2f%%\n", c.Value, c.Percentage)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTop(b *strings.Builder, title string, items []domain.Count, unit string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for i, it := range head(items, 5) {
		fmt.Fprintf(b, "%d. %q - %d %s (%.2f%%)\n", i+1, it.Value, it.Count, unit, it.Percentage)
	}
}
