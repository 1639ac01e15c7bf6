// Package spechelper contains the shared pieces of the contract specifications.
package spechelper

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

// MakeValue creates a random value of type T.
// It is the default fixture maker of the contract configurations.
func MakeValue[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(*new(T)).(T)
}

// Shuffle rearranges the slice elements in place into a random permutation.
func Shuffle[T any](rnd *random.Random, vs []T) {
	for i := len(vs) - 1; 0 < i; i-- {
		j := rnd.IntN(i + 1)
		vs[i], vs[j] = vs[j], vs[i]
	}
}
