// Package testutil provides utilities for testing
package testutil

import (
	"math/rand"
)

// Shuffled returns a copy of in with its elements in a pseudo-random order
// derived from seed. The input slice is not modified.
func Shuffled(in []string, seed int64) []string {
	out := make([]string, len(in))
	copy(out, in)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Reversed returns a copy of in in reverse order.
func Reversed(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}
