// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense matrices with lazily evaluated elementwise
// expressions.
//
// # Overview
//
// Arithmetic on matrices builds an expression tree instead of computing a
// result. The tree is evaluated cell by cell only when it is assigned into a
// Dense, so a chain such as 5.1*A + B - C + 2.1*D allocates no temporaries:
//
//	a, _ := matrix.Full(500, 500, 4.1)
//	b, _ := matrix.Full(500, 500, 1.2)
//	c, _ := matrix.Full(500, 500, 3.6)
//	d, _ := matrix.Full(500, 500, 5.3)
//
//	var sum matrix.Dense[float64]
//	err := sum.Assign(a.Scale(5.1).Add(b).Sub(c).Add(d.Scale(2.1)))
//
// # Element Types
//
// Any type satisfying Numeric works: signed and unsigned integers, floats
// and complex numbers, including named types built on them.
//
// # Products
//
// Mul computes the matrix product eagerly and returns a Dense, which can
// then be used in further lazy expressions:
//
//	ab, err := matrix.Mul(a, b)
//	err = dst.Assign(ab.Add(c))
//
// # Errors
//
// Failures are reported as errors wrapping one of the package sentinels
// (ErrShapeMismatch, ErrIndexOutOfRange, ...). Shape errors found while an
// expression is built are kept inside the expression and reported by
// Expr.Err and by the assignment that consumes it. Must converts an error
// into a panic for callers that prefer assertion semantics.
//
// # Sharing and Mutation
//
// Expressions refer to the matrices they were built from. Changing one of
// those matrices before the expression is assigned makes the assignment
// fail with ErrStaleOperand. A sub-expression used in several places is
// recomputed at every use unless the Evaluator is created WithMemo.
package matrix
