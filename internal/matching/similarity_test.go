package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSetMatcherSimilarity(t *testing.T) {
	m := NewTokenSetMatcher()

	tests := []struct {
		name string
		a    string
		b    string
		min  float64
		max  float64
	}{
		{name: "identical names", a: "John Doe", b: "John Doe", min: 1.0, max: 1.0},
		{name: "case insensitive", a: "JOHN DOE", b: "john doe", min: 1.0, max: 1.0},
		{name: "whitespace normalized", a: "  John   Doe ", b: "John Doe", min: 1.0, max: 1.0},
		{name: "token order insensitive", a: "Doe John", b: "John Doe", min: 1.0, max: 1.0},
		{name: "partial name is a full partial match", a: "John", b: "John Doe", min: 1.0, max: 1.0},
		{name: "minor typo stays high", a: "Jon Doe", b: "John Doe", min: 0.8, max: 0.99},
		{name: "zero token overlap scores low", a: "Alice Uwase", b: "John Doe", min: 0.0, max: 0.5},
		{name: "empty claimed name", a: "", b: "John Doe", min: 0.0, max: 0.0},
		{name: "empty stored name", a: "John Doe", b: "", min: 0.0, max: 0.0},
		{name: "both empty", a: "", b: "", min: 0.0, max: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Similarity(tt.a, tt.b)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestSimilarityIsSymmetric(t *testing.T) {
	m := NewTokenSetMatcher()

	pairs := [][2]string{
		{"John Doe", "Doe John"},
		{"John", "John Doe"},
		{"Alice Uwase", "John Doe"},
		{"Jean Claude Habimana", "Habimana Jean"},
	}

	for _, pair := range pairs {
		assert.InDelta(t, m.Similarity(pair[0], pair[1]), m.Similarity(pair[1], pair[0]), 1e-9)
	}
}

func TestSimilarityRange(t *testing.T) {
	m := NewTokenSetMatcher()

	pairs := [][2]string{
		{"a", "b"},
		{"John Doe", "Jane Poe"},
		{"x y z", "x"},
		{"very long name with many tokens", "short"},
	}

	for _, pair := range pairs {
		got := m.Similarity(pair[0], pair[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}
