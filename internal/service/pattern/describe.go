package pattern

import (
	"github.com/kesava/telugu-word-analysis/internal/akshara"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// Describe builds the gunintam/othu description of word. Positions are rune
// offsets into word.
func Describe(word string) domain.WordPattern {
	runes := []rune(word)
	syllables := akshara.Segment(word)
	sh := akshara.Describe(word)

	p := domain.WordPattern{
		Word:      word,
		Syllables: syllables,
		Shape: domain.WordShape{
			SyllableCount:      len(syllables),
			Structure:          sh.Structure,
			CVPattern:          sh.CVPattern,
			ConjunctCount:      sh.ConjunctCount,
			VowelModifierCount: sh.VowelModifierCount,
		},
		Gunintam:   []domain.GunintamMark{},
		Othu:       []domain.OthuMark{},
		Consonants: []domain.Letter{},
		Vowels:     []domain.Letter{},
	}

	for i, r := range runes {
		var prev string
		if i > 0 {
			prev = string(runes[i-1])
		}

		switch akshara.Classify(r) {
		case akshara.DependentVowelSign:
			p.Gunintam = append(p.Gunintam, domain.GunintamMark{
				Position:   i,
				Modifier:   string(r),
				AttachedTo: prev,
			})
		case akshara.Virama:
			if i+1 >= len(runes) {
				continue
			}
			next := string(runes[i+1])
			p.Othu = append(p.Othu, domain.OthuMark{
				Position:          i,
				Conjunct:          prev + string(r) + next,
				BaseConsonant:     prev,
				ConjunctConsonant: next,
			})
		case akshara.Consonant:
			p.Consonants = append(p.Consonants, domain.Letter{Position: i, Value: string(r)})
		case akshara.IndependentVowel:
			p.Vowels = append(p.Vowels, domain.Letter{Position: i, Value: string(r)})
		}
	}

	return p
}
