// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gonumx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/exprmat/matrix"
)

func TestView(t *testing.T) {
	d := matrix.Must(matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}))
	v, err := NewView(d)
	require.NoError(t, err)

	r, c := v.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, v.At(1, 2))
	assert.Equal(t, 6.0, v.T().At(2, 1))
	assert.Panics(t, func() { v.At(2, 0) })

	// The view reads through to the matrix.
	require.NoError(t, d.Set(0, 0, 10))
	assert.Equal(t, 10.0, v.At(0, 0))

	assert.True(t, mat.Equal(v, mat.NewDense(2, 3, []float64{10, 2, 3, 4, 5, 6})))
}

func TestNewView_Unbound(t *testing.T) {
	var d matrix.Dense[float64]
	_, err := NewView(&d)
	assert.ErrorIs(t, err, matrix.ErrUnbound)

	_, err = ToMat(nil)
	assert.ErrorIs(t, err, matrix.ErrUnbound)
}

func TestRoundTrip(t *testing.T) {
	d := matrix.Must(matrix.FromRows([][]float64{{1.5, -2}, {0, 4}}))

	m, err := ToMat(d)
	require.NoError(t, err)
	back, err := FromMat(m)
	require.NoError(t, err)
	assert.True(t, back.Equal(d))

	// ToMat copies.
	m.Set(0, 0, 99)
	x, _ := d.At(0, 0)
	assert.Equal(t, 1.5, x)
}

func TestFromMat_Transpose(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	d, err := FromMat(src.T())
	require.NoError(t, err)
	assert.Equal(t, matrix.Shape{Rows: 3, Cols: 2}, d.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, d.Data())
}

func TestLazyExpressionAgainstGonum(t *testing.T) {
	a := matrix.Must(matrix.FromRows([][]float64{{1, 2}, {3, 4}}))
	b := matrix.Must(matrix.FromRows([][]float64{{0.5, 1}, {-1, 2}}))

	var got matrix.Dense[float64]
	require.NoError(t, got.Assign(a.Scale(3).Sub(b)))

	ma, _ := ToMat(a)
	mb, _ := ToMat(b)
	var want mat.Dense
	want.Scale(3, ma)
	want.Sub(&want, mb)

	gv, err := NewView(&got)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(gv, &want, 1e-12))
}
