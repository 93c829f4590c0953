package matrix

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSubIntegers(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{5, 6}, {7, 8}})

	assertSameData(t, mustRows(t, [][]int{{6, 8}, {10, 12}}), materialize(t, a.Add(b)))
	assertSameData(t, mustRows(t, [][]int{{-4, -4}, {-4, -4}}), materialize(t, a.Sub(b)))
}

func TestScale(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	want := mustRows(t, [][]int{{2, 4}, {6, 8}})

	assertSameData(t, want, materialize(t, a.Scale(2)))
	assertSameData(t, want, materialize(t, Scale[int](2, a)))
	assertSameData(t, want, materialize(t, ScaleRight[int](a, 2)))
}

func TestMixedExpression(t *testing.T) {
	// 5.1*A + B - C + 2.1*D over uniform matrices.
	a := Must(Full(3, 3, 4.1))
	b := Must(Full(3, 3, 1.2))
	c := Must(Full(3, 3, 3.6))
	d := Must(Full(3, 3, 5.3))

	got := materialize(t, a.Scale(5.1).Add(b).Sub(c).Add(d.Scale(2.1)))
	want := 5.1*4.1 + 1.2 - 3.6 + 2.1*5.3
	for _, v := range got.Data() {
		assert.InDelta(t, want, v, 1e-9)
	}
}

func TestComplexSum(t *testing.T) {
	a := Must(Full(4, 4, complex(5, 6)))
	b := Must(Full(4, 4, complex(1, 0)))
	c := Must(Full(4, 4, complex(0, 5)))

	got := materialize(t, a.Add(b).Add(c))
	for _, v := range got.Data() {
		assert.Equal(t, complex(6, 11), v)
	}
}

func TestAddShapeMismatch(t *testing.T) {
	a := Must(New[int](2, 2))
	b := Must(New[int](3, 3))
	dst := Must(New[int](2, 2))

	err := dst.Assign(a.Add(b))
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "2x2 vs 3x3")
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 20; trial++ {
		rows, cols := 1+rng.IntN(6), 1+rng.IntN(6)
		a := randDense(t, rng, rows, cols)
		b := randDense(t, rng, rows, cols)
		c := randDense(t, rng, rows, cols)
		k := rng.Int64N(21) - 10

		t.Run("commutativity", func(t *testing.T) {
			assertSameData(t, materialize(t, a.Add(b)), materialize(t, b.Add(a)))
		})

		t.Run("associativity", func(t *testing.T) {
			assertSameData(t, materialize(t, a.Add(b).Add(c)), materialize(t, Add[int64](a, b.Add(c))))
		})

		t.Run("scalar distribution", func(t *testing.T) {
			got := materialize(t, a.Scale(k))
			for r := 0; r < rows; r++ {
				for col := 0; col < cols; col++ {
					want, _ := a.At(r, col)
					v, _ := got.At(r, col)
					assert.Equal(t, k*want, v)
				}
			}
		})

		t.Run("self subtraction", func(t *testing.T) {
			assertSameData(t, Must(New[int64](rows, cols)), materialize(t, a.Sub(a)))
		})

		t.Run("accumulate equivalence", func(t *testing.T) {
			want := materialize(t, a.Add(b))
			acc := a.Clone()
			require.NoError(t, acc.AddAssign(b))
			assertSameData(t, want, acc)

			want = materialize(t, a.Sub(b))
			acc = a.Clone()
			require.NoError(t, acc.SubAssign(b))
			assertSameData(t, want, acc)
		})
	}
}

func TestAddAssignIndexedFill(t *testing.T) {
	a := Must(New[int16](3, 3))
	require.NoError(t, a.SetRow(0, []int16{1, 2, 3}))
	require.NoError(t, a.SetRow(1, []int16{20, 5, 3}))
	require.NoError(t, a.SetRow(2, []int16{3, 30, 1}))
	b := Must(Full[int16](3, 3, 40))

	require.NoError(t, a.AddAssign(b))
	assert.Equal(t, []int16{41, 42, 43, 60, 45, 43, 43, 70, 41}, a.Data())
}

func TestAddAssignExpression(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{5, 6}, {7, 8}})

	require.NoError(t, a.AddAssign(b.Scale(2)))
	assert.Equal(t, []int{11, 14, 17, 20}, a.Data())
}

func TestAddAssignFailureLeavesDestination(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := Must(New[int](3, 3))
	g := a.gen

	require.ErrorIs(t, a.AddAssign(b), ErrShapeMismatch)
	require.ErrorIs(t, a.SubAssign(b), ErrShapeMismatch)
	assert.Equal(t, []int{1, 2, 3, 4}, a.Data())
	assert.Equal(t, g, a.gen)
}

func TestAddAssignUnbound(t *testing.T) {
	var a Dense[int]
	b := Must(New[int](2, 2))
	assert.ErrorIs(t, a.AddAssign(b), ErrUnbound)
}

func TestAddAssignSelf(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, a.AddAssign(a))
	assert.Equal(t, []int{2, 4, 6, 8}, a.Data())
}

func TestOperatorsAreLazy(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	calls := 0

	e := Combine[int](a, a, countingPlus[int](&calls)).Scale(3)
	assert.Zero(t, calls, "building an expression must not evaluate it")

	got := materialize(t, e)
	assert.Equal(t, 4, calls)
	assert.Equal(t, []int{6, 12, 18, 24}, got.Data())
}
