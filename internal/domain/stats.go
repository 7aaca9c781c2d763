package domain

import (
	"fmt"
	"time"
)

// StatsVersion is written into every generated statistics document.
const StatsVersion = "1.0.0"

// Section names of the statistics document, in generation order.
const (
	SectionBasic              = "basic"
	SectionLengthDistribution = "lengthDistribution"
	SectionSyllableAnalysis   = "syllableAnalysis"
	SectionAksharams          = "aksharams"
	SectionGunintam           = "gunintam"
	SectionWordBeginnings     = "wordBeginnings"
	SectionWordEndings        = "wordEndings"
	SectionPatterns           = "patterns"
	SectionTeluguLinguistics  = "teluguLinguistics"
	SectionMorphology         = "morphology"
	SectionPhonetics          = "phonetics"
	SectionSemanticPatterns   = "semanticPatterns"
	SectionInterestingWords   = "interestingWords"
)

// AllSections lists every section name in generation order.
func AllSections() []string {
	return []string{
		SectionBasic, SectionLengthDistribution, SectionSyllableAnalysis,
		SectionAksharams, SectionGunintam, SectionWordBeginnings,
		SectionWordEndings, SectionPatterns, SectionTeluguLinguistics,
		SectionMorphology, SectionPhonetics, SectionSemanticPatterns,
		SectionInterestingWords,
	}
}

// Stats is the full statistics document for one corpus. Sections that were
// not generated are nil and omitted from JSON.
type Stats struct {
	Metadata           Metadata            `json:"metadata"`
	Basic              *BasicStats         `json:"basic,omitempty"`
	LengthDistribution *LengthDistribution `json:"lengthDistribution,omitempty"`
	SyllableAnalysis   *SyllableAnalysis   `json:"syllableAnalysis,omitempty"`
	Aksharams          *AksharamStats      `json:"aksharams,omitempty"`
	Gunintam           *GunintamStats      `json:"gunintam,omitempty"`
	WordBeginnings     *AffixStats         `json:"wordBeginnings,omitempty"`
	WordEndings        *AffixStats         `json:"wordEndings,omitempty"`
	Patterns           *PatternStats       `json:"patterns,omitempty"`
	TeluguLinguistics  *LinguisticStats    `json:"teluguLinguistics,omitempty"`
	Morphology         *MorphologyStats    `json:"morphology,omitempty"`
	Phonetics          *PhoneticStats      `json:"phonetics,omitempty"`
	SemanticPatterns   *SemanticStats      `json:"semanticPatterns,omitempty"`
	InterestingWords   *InterestingWords   `json:"interestingWords,omitempty"`
}

// Metadata describes how and when a document was generated.
type Metadata struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Version     string    `json:"version"`
	TotalWords  int       `json:"totalWords"`
}

// Section returns the named section, or ErrNotFound when the name is
// unknown or the section was not generated.
func (s *Stats) Section(name string) (any, error) {
	switch name {
	case SectionBasic:
		if s.Basic != nil {
			return s.Basic, nil
		}
	case SectionLengthDistribution:
		if s.LengthDistribution != nil {
			return s.LengthDistribution, nil
		}
	case SectionSyllableAnalysis:
		if s.SyllableAnalysis != nil {
			return s.SyllableAnalysis, nil
		}
	case SectionAksharams:
		if s.Aksharams != nil {
			return s.Aksharams, nil
		}
	case SectionGunintam:
		if s.Gunintam != nil {
			return s.Gunintam, nil
		}
	case SectionWordBeginnings:
		if s.WordBeginnings != nil {
			return s.WordBeginnings, nil
		}
	case SectionWordEndings:
		if s.WordEndings != nil {
			return s.WordEndings, nil
		}
	case SectionPatterns:
		if s.Patterns != nil {
			return s.Patterns, nil
		}
	case SectionTeluguLinguistics:
		if s.TeluguLinguistics != nil {
			return s.TeluguLinguistics, nil
		}
	case SectionMorphology:
		if s.Morphology != nil {
			return s.Morphology, nil
		}
	case SectionPhonetics:
		if s.Phonetics != nil {
			return s.Phonetics, nil
		}
	case SectionSemanticPatterns:
		if s.SemanticPatterns != nil {
			return s.SemanticPatterns, nil
		}
	case SectionInterestingWords:
		if s.InterestingWords != nil {
			return s.InterestingWords, nil
		}
	default:
		return nil, fmt.Errorf("section %q: %w", name, ErrNotFound)
	}
	return nil, fmt.Errorf("section %q not generated: %w", name, ErrNotFound)
}

// Count is a ranked frequency entry. Percentage is relative to the total
// number of words in the corpus.
type Count struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// WordRef is a word together with a rune length.
type WordRef struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}

type BasicStats struct {
	TotalWords       int     `json:"totalWords"`
	AverageLength    float64 `json:"averageLength"`
	UniqueCharacters int     `json:"uniqueCharacters"`
	LongestWord      WordRef `json:"longestWord"`
	ShortestWord     WordRef `json:"shortestWord"`
	TotalCharacters  int     `json:"totalCharacters"`
	ValidWordsCount  int     `json:"validWordsCount"`
	FilteredOutCount int     `json:"filteredOutCount"`
}

type LengthDistribution struct {
	Lengths     []int       `json:"lengths"`
	Counts      []int       `json:"counts"`
	Percentages []float64   `json:"percentages"`
	Raw         map[int]int `json:"raw"`
}

type SyllableAnalysis struct {
	MostFrequentSyllables []Count          `json:"mostFrequentSyllables"`
	ConsonantFrequency    []Count          `json:"consonantFrequency"`
	SyllablesPerWord      SyllablesPerWord `json:"syllablesPerWord"`
	TotalUniqueSyllables  int              `json:"totalUniqueSyllables"`
}

type SyllablesPerWord struct {
	Distribution            []SyllableBucket `json:"distribution"`
	AverageSyllablesPerWord float64          `json:"averageSyllablesPerWord"`
}

type SyllableBucket struct {
	SyllableCount int     `json:"syllableCount"`
	WordCount     int     `json:"wordCount"`
	Percentage    float64 `json:"percentage"`
}

type AksharamStats struct {
	Top30                      []Count `json:"top30"`
	ConsonantVowelCombinations []Count `json:"consonantVowelCombinations"`
	VowelUsageInSyllables      []Count `json:"vowelUsageInSyllables"`
	TotalUniqueSyllables       int     `json:"totalUniqueSyllables"`
	TotalSyllableOccurrences   int     `json:"totalSyllableOccurrences"`
}

type GunintamStats struct {
	All                  []Count `json:"all"`
	TotalUniqueGunintams int     `json:"totalUniqueGunintams"`
}

// AffixStats holds word beginnings or endings of one, two and three runes.
type AffixStats struct {
	OneChar   []AffixCount `json:"oneChar"`
	TwoChar   []AffixCount `json:"twoChar"`
	ThreeChar []AffixCount `json:"threeChar"`
}

type AffixCount struct {
	Count
	Examples []string `json:"examples"`
}

type PatternStats struct {
	WithMatras      int                `json:"withMatras"`
	WithoutMatras   int                `json:"withoutMatras"`
	WithHalanta     int                `json:"withHalanta"`
	WithNumbers     int                `json:"withNumbers"`
	WithPunctuation int                `json:"withPunctuation"`
	AllConsonants   int                `json:"allConsonants"`
	AllVowels       int                `json:"allVowels"`
	Percentages     map[string]float64 `json:"percentages"`
}

type LinguisticStats struct {
	SandhiPatterns        []Count          `json:"sandhiPatterns"`
	CompoundWords         []Count          `json:"compoundWords"`
	CaseMarkers           []Count          `json:"caseMarkers"`
	HonorificPatterns     []Count          `json:"honorificPatterns"`
	ReduplicationPatterns []Count          `json:"reduplicationPatterns"`
	LoanWordDistribution  map[string]Share `json:"loanWordDistribution"`
}

// Share is a count with its percentage of the corpus.
type Share struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type MorphologyStats struct {
	PrefixFrequency      []Count `json:"prefixFrequency"`
	SuffixFrequency      []Count `json:"suffixFrequency"`
	RootPatterns         []Count `json:"rootPatterns"`
	DerivationalPatterns []Count `json:"derivationalPatterns"`
}

type PhoneticStats struct {
	PhoneticPatterns     []Count `json:"phoneticPatterns"`
	ConsonantClusters    []Count `json:"consonantClusters"`
	VowelSequences       []Count `json:"vowelSequences"`
	AlliterationPatterns []Count `json:"alliterationPatterns"`
	PhoneticConstraints  []Count `json:"phoneticConstraints"`
}

type SemanticStats struct {
	WordComplexity []Count `json:"wordComplexity"`
	WordClasses    []Count `json:"wordClasses"`
	SemanticFields []Count `json:"semanticFields"`
	WordFormation  []Count `json:"wordFormation"`
	CognitiveLoad  []Count `json:"cognitiveLoad"`
}

type InterestingWords struct {
	Longest         []WordRef     `json:"longest"`
	Shortest        []WordRef     `json:"shortest"`
	MostUniqueChars []UniqueChars `json:"mostUniqueChars"`
	Palindromes     []string      `json:"palindromes"`
}

type UniqueChars struct {
	Word        string `json:"word"`
	UniqueChars int    `json:"uniqueChars"`
	Length      int    `json:"length"`
}
