// Package matching provides the fuzzy name comparison used by payment
// verification. The algorithm sits behind a narrow interface so the
// threshold or implementation can change without touching endpoint logic.
package matching

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// NameMatcher scores the similarity of two personal names in [0,1].
type NameMatcher interface {
	Similarity(a, b string) float64
}

// TokenSetMatcher compares names case-insensitively, whitespace-normalized
// and token-order-insensitively. Each token of the shorter name is scored
// against its best edit-distance match in the other name, so "Doe John"
// matches "John Doe" and a lone "John" partially matches "John Doe".
type TokenSetMatcher struct{}

// NewTokenSetMatcher returns the default name matcher.
func NewTokenSetMatcher() *TokenSetMatcher {
	return &TokenSetMatcher{}
}

// Similarity implements NameMatcher.
func (m *TokenSetMatcher) Similarity(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)

	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	// Score from the smaller token set, so supplying a subset of the
	// stored name is a partial match rather than a penalty.
	if len(tokensB) < len(tokensA) {
		tokensA, tokensB = tokensB, tokensA
	}

	var total float64
	for _, token := range tokensA {
		total += bestTokenScore(token, tokensB)
	}
	return total / float64(len(tokensA))
}

func tokenize(name string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(name)))
}

// bestTokenScore returns the highest similarity between token and any
// candidate, where similarity is 1 - dist/maxLen.
func bestTokenScore(token string, candidates []string) float64 {
	best := 0.0
	for _, candidate := range candidates {
		maxLen := len(token)
		if len(candidate) > maxLen {
			maxLen = len(candidate)
		}
		if maxLen == 0 {
			continue
		}

		dist := levenshtein.ComputeDistance(token, candidate)
		score := 1.0 - float64(dist)/float64(maxLen)
		if score > best {
			best = score
		}
	}
	return best
}
