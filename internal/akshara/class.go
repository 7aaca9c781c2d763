// Package akshara splits Telugu text into aksharas (orthographic syllables)
// and derives structural patterns from them. All functions are pure and safe
// for concurrent use.
package akshara

// Class is the orthographic role of a single code point.
type Class uint8

const (
	Other Class = iota
	IndependentVowel
	Consonant
	DependentVowelSign
	Virama
)

// Telugu block boundaries used by the classifier.
const (
	BlockStart rune = 0x0C00
	BlockEnd   rune = 0x0C7F

	vowelFirst     rune = 0x0C05
	vowelLast      rune = 0x0C14
	consonantFirst rune = 0x0C15
	consonantLast  rune = 0x0C39
	signFirst      rune = 0x0C3E
	signLast       rune = 0x0C4C
	ViramaRune     rune = 0x0C4D
	DigitFirst     rune = 0x0C66
	DigitLast      rune = 0x0C6F
)

var classNames = [...]string{
	Other:              "other",
	IndependentVowel:   "independent_vowel",
	Consonant:          "consonant",
	DependentVowelSign: "dependent_vowel_sign",
	Virama:             "virama",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Classify returns the class of r. Avagraha, anusvara, visarga, digits and
// every code point outside the Telugu letter ranges are Other.
func Classify(r rune) Class {
	switch {
	case r >= vowelFirst && r <= vowelLast:
		return IndependentVowel
	case r >= consonantFirst && r <= consonantLast:
		return Consonant
	case r >= signFirst && r <= signLast:
		return DependentVowelSign
	case r == ViramaRune:
		return Virama
	default:
		return Other
	}
}

// IsTelugu reports whether r belongs to the Telugu Unicode block.
func IsTelugu(r rune) bool {
	return r >= BlockStart && r <= BlockEnd
}

// ContainsTelugu reports whether s has at least one Telugu code point.
func ContainsTelugu(s string) bool {
	for _, r := range s {
		if IsTelugu(r) {
			return true
		}
	}
	return false
}

// IsDigit reports whether r is a Telugu digit (౦-౯).
func IsDigit(r rune) bool {
	return r >= DigitFirst && r <= DigitLast
}
