package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicon_CaseMarkers(t *testing.T) {
	t.Parallel()

	l := Default()
	assert.ElementsMatch(t, []string{"కు", "వరకు"}, l.CaseMarkers("ఇంటివరకు"))
	assert.Empty(t, l.CaseMarkers("అమ్మ"))
}

func TestLexicon_LoanOrigin(t *testing.T) {
	t.Parallel()

	l := Default()
	tests := []struct {
		word string
		want string
	}{
		{"క్షమ", "sanskrit"},
		{"ఫలము", "arabic"},
		{"అమ్మ", "english"}, // virama marker
		{"కమల", "native"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.LoanOrigin(tt.word), tt.word)
	}
	assert.Equal(t, []string{"sanskrit", "arabic", "english", "native"}, l.LoanOrigins())
}

func TestLexicon_Affixes(t *testing.T) {
	t.Parallel()

	l := Default()
	assert.Equal(t, []string{"ప్ర"}, l.Prefixes("ప్రయాణము"))
	// Stem too short: ప్ర + two runes.
	assert.Empty(t, l.Prefixes("ప్రయా"))
	assert.Equal(t, []string{"ము"}, l.Suffixes("ప్రయాణము"))
}

func TestLexicon_Derivation(t *testing.T) {
	t.Parallel()

	l := Default()
	assert.Equal(t, "VERB-చు", l.Derivation("చదివించు"))
	assert.Equal(t, "NOUN-తనం", l.Derivation("మంచితనం"))
	assert.Equal(t, "", l.Derivation("అమ్మ"))
}

func TestLexicon_ClusterConstraint(t *testing.T) {
	t.Parallel()

	l := Default()
	assert.Equal(t, "common-మ్మ", l.ClusterConstraint("మ్మ"))
	assert.Equal(t, "forbidden-ణ్క", l.ClusterConstraint("ణ్క"))
	assert.Equal(t, "", l.ClusterConstraint("స్త"))
}

func TestLexicon_WordClassFirstMatchWins(t *testing.T) {
	t.Parallel()

	l := Default()
	// Contains both a noun marker (లు) and an adverb marker (గా).
	class, ok := l.WordClass("పిల్లలుగా")
	require.True(t, ok)
	assert.Equal(t, "noun", class)

	_, ok = l.WordClass("ఇ")
	assert.False(t, ok)
}

func TestLexicon_SemanticFields(t *testing.T) {
	t.Parallel()

	l := Default()
	assert.Equal(t, []string{"family", "food"}, l.SemanticFields("అన్నం"))
}

func TestLexicon_MorphemeCount(t *testing.T) {
	t.Parallel()

	l := Default()
	assert.Equal(t, 1, l.MorphemeCount("కల"))
	// Prefix అ, suffix లు.
	assert.Equal(t, 3, l.MorphemeCount("అడవులు"))
}

func TestLexicon_Formation(t *testing.T) {
	t.Parallel()

	l := Default()
	tests := []struct {
		word string
		want string
	}{
		{"కలం", "simple"},
		{"అనుమానము", "negation"},
		{"ప్రయాణము", "sanskrit_compound"},
		{"పుస్తకము", "conjunct_formation"},
		{"గురువుగారు", "honorific"},
		{"చదివించు", "causative"},
		{"పాఠశాల", "basic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.Formation(tt.word), tt.word)
	}
}

func TestLexicon_CompoundRoots(t *testing.T) {
	t.Parallel()

	l := Default()
	assert.Equal(t, []string{"దేవ"}, l.CompoundRoots("దేవాలయములు"))
	assert.Empty(t, l.CompoundRoots("దేవత"))
}

func TestLexicon_PunctuationCount(t *testing.T) {
	t.Parallel()

	l := Default()
	assert.Equal(t, 0, l.PunctuationCount("అమ్మ"))
	assert.Equal(t, 2, l.PunctuationCount("అ,మ।"))
}

func TestNew_CopiesTables(t *testing.T) {
	t.Parallel()

	tables := DefaultTables()
	l, err := New(tables)
	require.NoError(t, err)

	tables.CaseMarkers[0] = "XX"
	tables.WordClasses[0].Markers[0] = "YY"

	got := l.Tables()
	assert.Equal(t, "కు", got.CaseMarkers[0])
	assert.Equal(t, "ము", got.WordClasses[0].Markers[0])

	got.CaseMarkers[0] = "ZZ"
	assert.Equal(t, "కు", l.Tables().CaseMarkers[0])
}

func TestNew_RejectsUnnamedGroup(t *testing.T) {
	t.Parallel()

	tables := DefaultTables()
	tables.SemanticFields = append(tables.SemanticFields, Group{Markers: []string{"x"}})

	_, err := New(tables)
	assert.Error(t, err)
}

func TestLoadFile_Overrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := `
case_markers: ["లో"]
semantic_fields:
  - name: colour
    markers: ["ఎరుపు", "నీలం"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"లో"}, l.CaseMarkers("ఇంట్లో"))
	assert.Empty(t, l.CaseMarkers("ఇంటికు"))
	assert.Equal(t, []string{"colour"}, l.SemanticFields("నీలం"))
	// Untouched keys keep defaults.
	assert.Equal(t, "common-మ్మ", l.ClusterConstraint("మ్మ"))
}

func TestLoadFile_EmptyPath(t *testing.T) {
	t.Parallel()

	l, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), l.Tables())
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
