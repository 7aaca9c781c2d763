package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  అమ్మ  ", want: "అమ్మ"},
		{name: "double quotes", input: `"అమ్మ"`, want: "అమ్మ"},
		{name: "single quotes", input: "'అక్క'", want: "అక్క"},
		{name: "quotes and spaces", input: ` "కలం" `, want: "కలం"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "only quotes", input: `""`, want: ""},
		{name: "ai length mark composes", input: "ై", want: "ై"},
		{name: "latin untouched", input: "Word", want: "Word"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeWord(tt.input))
		})
	}
}

func TestNormalizeWords_DropsEmpty(t *testing.T) {
	t.Parallel()

	got := NormalizeWords([]string{" అ ", "", "  ", `"ఆ"`})
	assert.Equal(t, []string{"అ", "ఆ"}, got)
}
