package matrix

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Test helpers

func mustRows[T Numeric](t *testing.T, rows [][]T) *Dense[T] {
	t.Helper()
	d, err := FromRows(rows)
	require.NoError(t, err)
	return d
}

func randDense(t *testing.T, rng *rand.Rand, rows, cols int) *Dense[int64] {
	t.Helper()
	d, err := New[int64](rows, cols)
	require.NoError(t, err)
	for i := range d.data {
		d.data[i] = rng.Int64N(201) - 100
	}
	return d
}

func materialize[T Numeric](t *testing.T, src Operand[T]) *Dense[T] {
	t.Helper()
	var out Dense[T]
	require.NoError(t, out.Assign(src))
	return &out
}

func assertSameData[T Numeric](t *testing.T, want, got *Dense[T]) {
	t.Helper()
	require.Equal(t, want.Shape(), got.Shape())
	if diff := cmp.Diff(want.Data(), got.Data()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

// countingPlus returns an addition combinator that counts its invocations.
func countingPlus[T Numeric](calls *int) Combinator[T] {
	return Combinator[T]{Name: "counting-add", Symbol: "+", Fn: func(x, y T) T {
		*calls++
		return x + y
	}}
}
