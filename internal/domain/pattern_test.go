package domain

import (
	"errors"
	"testing"
)

func TestParseSearchMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    SearchMode
		wantErr bool
	}{
		{in: "", want: SearchSimilar},
		{in: "exact", want: SearchExact},
		{in: "similar", want: SearchSimilar},
		{in: "syllable", want: SearchSyllable},
		{in: "shape", want: SearchShape},
		{in: "fuzzy", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseSearchMode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Errorf("ParseSearchMode(%q) err = %v, want ErrValidation", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseSearchMode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestStats_Section(t *testing.T) {
	t.Parallel()

	s := &Stats{Basic: &BasicStats{TotalWords: 3}}

	v, err := s.Section(SectionBasic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := v.(*BasicStats); !ok || b.TotalWords != 3 {
		t.Fatalf("unexpected section value: %#v", v)
	}

	if _, err := s.Section(SectionPhonetics); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing section err = %v, want ErrNotFound", err)
	}
	if _, err := s.Section("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown section err = %v, want ErrNotFound", err)
	}
}
