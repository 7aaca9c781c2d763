package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

func sampleStats() *domain.Stats {
	return &domain.Stats{
		LengthDistribution: &domain.LengthDistribution{
			Lengths: []int{1, 3, 4},
			Counts:  []int{1, 3, 3},
		},
		SyllableAnalysis: &domain.SyllableAnalysis{
			MostFrequentSyllables: []domain.Count{{Value: "అ", Count: 3}, {Value: "మ్మ", Count: 2}},
		},
	}
}

func TestParseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		wantKind   Kind
		wantFormat Format
		wantErr    bool
	}{
		{"syllables.svg", KindSyllables, FormatSVG, false},
		{"lengths.PNG", KindLengths, FormatPNG, false},
		{"gunintam.png", KindGunintam, FormatPNG, false},
		{"consonants.svg", KindConsonants, FormatSVG, false},
		{"pie.svg", "", "", true},
		{"syllables.gif", "", "", true},
		{"syllables", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kind, format, err := ParseName(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantFormat, format)
		})
	}
}

func TestBars(t *testing.T) {
	t.Parallel()

	bars, err := Bars(sampleStats(), KindLengths)
	require.NoError(t, err)
	require.Len(t, bars, 3)
	assert.Equal(t, "3", bars[1].Label)
	assert.Equal(t, 3.0, bars[1].Value)

	bars, err = Bars(sampleStats(), KindSyllables)
	require.NoError(t, err)
	assert.Equal(t, "అ", bars[0].Label)
}

func TestBars_MissingSection(t *testing.T) {
	t.Parallel()

	_, err := Bars(sampleStats(), KindGunintam)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = Bars(sampleStats(), KindConsonants)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBars_Capped(t *testing.T) {
	t.Parallel()

	st := &domain.Stats{Gunintam: &domain.GunintamStats{}}
	for i := 0; i < MaxBars+5; i++ {
		st.Gunintam.All = append(st.Gunintam.All, domain.Count{Value: string(rune(0x0C3E + i%15)), Count: 100 - i})
	}

	bars, err := Bars(st, KindGunintam)
	require.NoError(t, err)
	assert.Len(t, bars, MaxBars)
}

func TestRender(t *testing.T) {
	t.Parallel()

	var svg bytes.Buffer
	require.NoError(t, Render(&svg, sampleStats(), KindLengths, FormatSVG))
	assert.Contains(t, svg.String(), "<svg")

	var png bytes.Buffer
	require.NoError(t, Render(&png, sampleStats(), KindSyllables, FormatPNG))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))
}

func TestContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/svg+xml", ContentType(FormatSVG))
	assert.Equal(t, "image/png", ContentType(FormatPNG))
}
