// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonumx connects float64 matrices to gonum.org/v1/gonum/mat.
//
// View exposes a matrix.Dense[float64] as a read-only mat.Matrix without
// copying; ToMat and FromMat copy in either direction.
package gonumx

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/exprmat/matrix"
)

// View adapts a *matrix.Dense[float64] to the mat.Matrix interface.
// It reads through to the underlying matrix on every At call.
type View struct {
	d *matrix.Dense[float64]
}

var _ mat.Matrix = View{}

// NewView wraps d. d must be bound.
func NewView(d *matrix.Dense[float64]) (View, error) {
	if d == nil || !d.IsBound() {
		return View{}, fmt.Errorf("gonumx: %w", matrix.ErrUnbound)
	}
	return View{d: d}, nil
}

// Dims returns the dimensions of the matrix.
func (v View) Dims() (r, c int) {
	return v.d.Rows(), v.d.Cols()
}

// At returns the element at row i, column j.
// It panics with mat.ErrIndexOutOfRange on bad indices, as mat.Matrix
// implementations do.
func (v View) At(i, j int) float64 {
	x, err := v.d.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return x
}

// T returns the implicit transpose of the view.
func (v View) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}

// ToMat copies d into a new *mat.Dense.
func ToMat(d *matrix.Dense[float64]) (*mat.Dense, error) {
	if d == nil || !d.IsBound() {
		return nil, fmt.Errorf("gonumx: %w", matrix.ErrUnbound)
	}
	return mat.NewDense(d.Rows(), d.Cols(), d.Data()), nil
}

// FromMat copies any mat.Matrix into a new matrix.Dense[float64].
func FromMat(m mat.Matrix) (*matrix.Dense[float64], error) {
	r, c := m.Dims()
	out, err := matrix.New[float64](r, c)
	if err != nil {
		return nil, fmt.Errorf("gonumx: %w", err)
	}
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := range row {
			row[j] = m.At(i, j)
		}
		if err := out.SetRow(i, row); err != nil {
			return nil, fmt.Errorf("gonumx: %w", err)
		}
	}
	return out, nil
}
