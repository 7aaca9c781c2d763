package pattern

import (
	"fmt"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// details explains why candidate matched input under mode.
func details(input, candidate domain.WordPattern, mode domain.SearchMode) []string {
	var out []string

	switch mode {
	case domain.SearchExact:
		out = append(out, "Perfect gunintam & othu match")

	case domain.SearchSimilar:
		var g, o int
		for _, a := range input.Gunintam {
			for _, b := range candidate.Gunintam {
				if a.Position == b.Position && a.Modifier == b.Modifier {
					g++
					break
				}
			}
		}
		for _, a := range input.Othu {
			for _, b := range candidate.Othu {
				if a.Position == b.Position && a.Conjunct == b.Conjunct {
					o++
					break
				}
			}
		}
		if g > 0 {
			out = append(out, fmt.Sprintf("%d exact gunintam %s", g, plural(g, "match", "matches")))
		}
		if o > 0 {
			out = append(out, fmt.Sprintf("%d exact othu %s", o, plural(o, "match", "matches")))
		}

	case domain.SearchSyllable:
		out = append(out, fmt.Sprintf("%d syllables", candidate.Shape.SyllableCount))
		g := len(shared(gunintamTypes(input), gunintamTypes(candidate)))
		o := len(shared(othuTypes(input), othuTypes(candidate)))
		if g > 0 {
			out = append(out, fmt.Sprintf("%d shared gunintam %s", g, plural(g, "type", "types")))
		}
		if o > 0 {
			out = append(out, fmt.Sprintf("%d shared othu %s", o, plural(o, "type", "types")))
		}
		if g == 0 && o == 0 {
			out = append(out, "Same length, different patterns")
		}

	case domain.SearchShape:
		sh := candidate.Shape
		out = append(out, "CV: "+sh.CVPattern)
		if sh.ConjunctCount > 0 {
			out = append(out, fmt.Sprintf("%d %s", sh.ConjunctCount, plural(sh.ConjunctCount, "conjunct", "conjuncts")))
		}
		if sh.VowelModifierCount > 0 {
			out = append(out, fmt.Sprintf("%d %s", sh.VowelModifierCount, plural(sh.VowelModifierCount, "modifier", "modifiers")))
		}
	}

	if len(out) == 0 {
		return []string{"Similar structure"}
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
