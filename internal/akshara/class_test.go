package akshara

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    rune
		want Class
	}{
		{'అ', IndependentVowel},
		{'ఔ', IndependentVowel},
		{'క', Consonant},
		{'హ', Consonant},
		{'ా', DependentVowelSign},
		{'ౌ', DependentVowelSign},
		{'్', Virama},
		{'ఽ', Other},
		{'ం', Other},
		{'ః', Other},
		{'౧', Other},
		{'a', Other},
		{' ', Other},
		{'౎', Other},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.r), "rune %U", tt.r)
	}
}

func TestClass_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "consonant", Consonant.String())
	assert.Equal(t, "virama", Virama.String())
	assert.Equal(t, "unknown", Class(42).String())
}

func TestContainsTelugu(t *testing.T) {
	t.Parallel()

	assert.True(t, ContainsTelugu("abcక"))
	assert.True(t, ContainsTelugu("౧"))
	assert.False(t, ContainsTelugu("hello"))
	assert.False(t, ContainsTelugu(""))
}

func TestIsDigit(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDigit('౦'))
	assert.True(t, IsDigit('౯'))
	assert.False(t, IsDigit('9'))
}
