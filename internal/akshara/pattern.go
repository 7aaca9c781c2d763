package akshara

import "strings"

// Shape summarizes the consonant/vowel structure of a word.
type Shape struct {
	Structure          string `json:"structure"`
	CVPattern          string `json:"cvPattern"`
	ConjunctCount      int    `json:"conjunctCount"`
	VowelModifierCount int    `json:"vowelModifierCount"`
}

// StructuralPattern encodes word over the alphabet {C, V, M}. Each consonant
// contributes C, followed by an extra V when the next rune is a virama. Each
// independent vowel contributes V and each dependent vowel sign M. Viramas
// and non-letters contribute nothing.
//
// The pattern is computed directly from the runes, not from Segment.
func StructuralPattern(word string) string {
	return Describe(word).Structure
}

// CVPattern encodes word as consonants (C) and vowels (V), where both
// independent vowels and dependent signs count as V.
func CVPattern(word string) string {
	return Describe(word).CVPattern
}

// Describe computes the full Shape of word in one pass.
func Describe(word string) Shape {
	runes := []rune(word)

	var structure, cv strings.Builder
	var sh Shape
	for i, r := range runes {
		switch Classify(r) {
		case Consonant:
			structure.WriteByte('C')
			cv.WriteByte('C')
			if i+1 < len(runes) && Classify(runes[i+1]) == Virama {
				structure.WriteByte('V')
				sh.ConjunctCount++
			}
		case IndependentVowel:
			structure.WriteByte('V')
			cv.WriteByte('V')
		case DependentVowelSign:
			structure.WriteByte('M')
			cv.WriteByte('V')
			sh.VowelModifierCount++
		}
	}

	sh.Structure = structure.String()
	sh.CVPattern = cv.String()
	return sh
}

// PhoneticPattern maps an akshara to C (consonant), V (vowel or sign) and
// the virama itself. Other runes are skipped.
func PhoneticPattern(syllable string) string {
	var b strings.Builder
	for _, r := range syllable {
		switch Classify(r) {
		case Consonant:
			b.WriteByte('C')
		case IndependentVowel, DependentVowelSign:
			b.WriteByte('V')
		case Virama:
			b.WriteRune(ViramaRune)
		}
	}
	return b.String()
}
