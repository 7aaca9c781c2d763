// Package chart renders statistics sections as bar charts.
package chart

import (
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// Kind selects the statistic a chart shows.
type Kind string

const (
	KindSyllables  Kind = "syllables"
	KindConsonants Kind = "consonants"
	KindLengths    Kind = "lengths"
	KindGunintam   Kind = "gunintam"
)

// Format is an output image format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// MaxBars caps the number of bars in one chart.
const MaxBars = 20

const (
	barWidth   = 36
	barSpacing = 12
	height     = 480
	padding    = 120
)

var titles = map[Kind]string{
	KindSyllables:  "Most frequent aksharas",
	KindConsonants: "Consonant frequency",
	KindLengths:    "Word length distribution",
	KindGunintam:   "Gunintam (vowel sign) usage",
}

// ParseName splits a chart file name such as "syllables.svg" into its kind
// and format.
func ParseName(name string) (Kind, Format, error) {
	ext := path.Ext(name)
	kind := Kind(strings.TrimSuffix(name, ext))
	format := Format(strings.TrimPrefix(strings.ToLower(ext), "."))

	if _, ok := titles[kind]; !ok {
		return "", "", domain.NewValidationError("chart", fmt.Sprintf("unknown chart %q", kind))
	}
	if format != FormatSVG && format != FormatPNG {
		return "", "", domain.NewValidationError("chart", fmt.Sprintf("unsupported image format %q", format))
	}
	return kind, format, nil
}

// ContentType returns the MIME type of f.
func ContentType(f Format) string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// Bars extracts the values of kind from st. Returns domain.ErrNotFound when
// the section was not generated or is empty.
func Bars(st *domain.Stats, kind Kind) ([]gochart.Value, error) {
	var bars []gochart.Value

	switch kind {
	case KindSyllables:
		if st.SyllableAnalysis != nil {
			bars = countBars(st.SyllableAnalysis.MostFrequentSyllables)
		}
	case KindConsonants:
		if st.SyllableAnalysis != nil {
			bars = countBars(st.SyllableAnalysis.ConsonantFrequency)
		}
	case KindGunintam:
		if st.Gunintam != nil {
			bars = countBars(st.Gunintam.All)
		}
	case KindLengths:
		if ld := st.LengthDistribution; ld != nil {
			for i, l := range ld.Lengths {
				bars = append(bars, gochart.Value{Label: strconv.Itoa(l), Value: float64(ld.Counts[i])})
			}
		}
	default:
		return nil, domain.NewValidationError("chart", fmt.Sprintf("unknown chart %q", kind))
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("chart %s: %w", kind, domain.ErrNotFound)
	}
	if len(bars) > MaxBars {
		bars = bars[:MaxBars]
	}
	return bars, nil
}

func countBars(counts []domain.Count) []gochart.Value {
	bars := make([]gochart.Value, len(counts))
	for i, c := range counts {
		bars[i] = gochart.Value{Label: c.Value, Value: float64(c.Count)}
	}
	return bars
}

// Render draws the kind chart of st into w.
func Render(w io.Writer, st *domain.Stats, kind Kind, format Format) error {
	bars, err := Bars(st, kind)
	if err != nil {
		return err
	}

	bc := gochart.BarChart{
		Title:      titles[kind],
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      len(bars)*(barWidth+barSpacing) + padding,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Bars:       bars,
	}

	renderer := gochart.SVG
	if format == FormatPNG {
		renderer = gochart.PNG
	}

	if err := bc.Render(renderer, w); err != nil {
		return fmt.Errorf("render %s chart: %w", kind, err)
	}
	return nil
}
