// Package embedding holds shared helpers for embedding adapters.
package embedding

import "math"

// Normalize scales a vector to unit length (L2), converting from the
// float64 values HTTP APIs return. Dot products between normalized vectors
// equal cosine similarity, which is what the search engine relies on.
// A zero vector is returned as all zeros rather than dividing by zero.
func Normalize(raw []float64) []float32 {
	var sumSq float64
	for _, v := range raw {
		sumSq += v * v
	}

	out := make([]float32, len(raw))
	if sumSq == 0 {
		return out
	}
	norm := math.Sqrt(sumSq)
	for i, v := range raw {
		out[i] = float32(v / norm)
	}
	return out
}
