// Package embedding provides the text-embedding capability used by the
// semantic scorer, with a Gemini-backed implementation.
package embedding

import (
	"context"
	"errors"
	"math"
)

// ErrProviderUnavailable indicates the embedding provider failed or
// timed out. Callers substitute a neutral score rather than aborting
// the enclosing ranking pass.
var ErrProviderUnavailable = errors.New("embedding provider unavailable")

// Provider is an abstraction over embedding backends.
type Provider interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the provider.
	Close() error
}

// Cosine computes the cosine similarity between two vectors in [-1, 1].
// Mismatched or zero-magnitude vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
