// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"context"

	"github.com/born-ml/exprmat/internal/matrix"
)

// Type aliases for public API

// Numeric is the constraint for matrix element types.
type Numeric = matrix.Numeric

// DataType represents the element type of a matrix at runtime.
type DataType = matrix.DataType

// Data type constants.
const (
	Unknown    DataType = matrix.Unknown
	Int        DataType = matrix.Int
	Int8       DataType = matrix.Int8
	Int16      DataType = matrix.Int16
	Int32      DataType = matrix.Int32
	Int64      DataType = matrix.Int64
	Uint       DataType = matrix.Uint
	Uint8      DataType = matrix.Uint8
	Uint16     DataType = matrix.Uint16
	Uint32     DataType = matrix.Uint32
	Uint64     DataType = matrix.Uint64
	Float32    DataType = matrix.Float32
	Float64    DataType = matrix.Float64
	Complex64  DataType = matrix.Complex64
	Complex128 DataType = matrix.Complex128
)

// Shape is the (rows, cols) pair of a matrix-like value.
// The zero Shape is the scalar sentinel.
type Shape = matrix.Shape

// ScalarShape is the sentinel shape of scalar operands.
var ScalarShape = matrix.ScalarShape

// Dense is a row-major matrix that owns its data.
type Dense[T Numeric] = matrix.Dense[T]

// Expr is a lazily evaluated matrix expression.
type Expr[T Numeric] = matrix.Expr[T]

// Operand is a *Dense or an Expr.
type Operand[T Numeric] = matrix.Operand[T]

// Combinator is a named binary function applied elementwise.
type Combinator[T Numeric] = matrix.Combinator[T]

// Kind identifies the variant of an expression node.
type Kind = matrix.Kind

// Expression node kinds.
const (
	KindLeaf    Kind = matrix.KindLeaf
	KindScalar  Kind = matrix.KindScalar
	KindCombine Kind = matrix.KindCombine
	KindEmpty   Kind = matrix.KindEmpty
)

// Evaluator materializes expressions, optionally in parallel or with
// memoization of shared sub-expressions.
type Evaluator = matrix.Evaluator

// Option configures an Evaluator.
type Option = matrix.Option

// Sentinel errors.
var (
	ErrShapeMismatch     = matrix.ErrShapeMismatch
	ErrIndexOutOfRange   = matrix.ErrIndexOutOfRange
	ErrBadShape          = matrix.ErrBadShape
	ErrUnbound           = matrix.ErrUnbound
	ErrStaleOperand      = matrix.ErrStaleOperand
	ErrInvalidExpression = matrix.ErrInvalidExpression
)

// New creates a rows×cols matrix filled with zeros.
//
// Example:
//
//	m, err := matrix.New[int](3, 3)
func New[T Numeric](rows, cols int) (*Dense[T], error) {
	return matrix.New[T](rows, cols)
}

// Full creates a rows×cols matrix with every element set to fill.
func Full[T Numeric](rows, cols int, fill T) (*Dense[T], error) {
	return matrix.Full(rows, cols, fill)
}

// FromSlice creates a matrix from row-major data. The slice is copied.
func FromSlice[T Numeric](rows, cols int, data []T) (*Dense[T], error) {
	return matrix.FromSlice(rows, cols, data)
}

// FromRows creates a matrix from equally sized rows.
//
// Example:
//
//	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
func FromRows[T Numeric](rows [][]T) (*Dense[T], error) {
	return matrix.FromRows(rows)
}

// Must panics if err is non-nil and returns v otherwise.
func Must[V any](v V, err error) V {
	return matrix.Must(v, err)
}

// ParseDataType maps a type name such as "float64" to its DataType.
func ParseDataType(name string) (DataType, bool) {
	return matrix.ParseDataType(name)
}

// DataTypeOf reports the DataType of T.
func DataTypeOf[T Numeric]() DataType {
	return matrix.DataTypeOf[T]()
}

// Scalar returns a constant expression that broadcasts to any shape.
func Scalar[T Numeric](v T) Expr[T] {
	return matrix.Scalar(v)
}

// Combine builds an elementwise expression applying op to a and b.
func Combine[T Numeric](a, b Operand[T], op Combinator[T]) Expr[T] {
	return matrix.Combine(a, b, op)
}

// Plus returns the elementwise addition combinator.
func Plus[T Numeric]() Combinator[T] { return matrix.Plus[T]() }

// Minus returns the elementwise subtraction combinator.
func Minus[T Numeric]() Combinator[T] { return matrix.Minus[T]() }

// Times returns the elementwise multiplication combinator.
func Times[T Numeric]() Combinator[T] { return matrix.Times[T]() }

// Add builds the lazy sum a + b.
func Add[T Numeric](a, b Operand[T]) Expr[T] {
	return matrix.Add(a, b)
}

// Sub builds the lazy difference a - b.
func Sub[T Numeric](a, b Operand[T]) Expr[T] {
	return matrix.Sub(a, b)
}

// Scale builds the lazy scalar product k * a.
func Scale[T Numeric](k T, a Operand[T]) Expr[T] {
	return matrix.Scale(k, a)
}

// ScaleRight builds the lazy scalar product a * k.
func ScaleRight[T Numeric](a Operand[T], k T) Expr[T] {
	return matrix.ScaleRight(a, k)
}

// Mul computes the matrix product a @ b eagerly.
func Mul[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	return matrix.Mul(a, b)
}

// MulWith computes a @ b using ev's worker pool.
func MulWith[T Numeric](ctx context.Context, ev *Evaluator, a, b *Dense[T]) (*Dense[T], error) {
	return matrix.MulWith(ctx, ev, a, b)
}

// Materialize evaluates src into a new matrix. A nil ev uses the default
// sequential evaluator.
func Materialize[T Numeric](ctx context.Context, ev *Evaluator, src Operand[T]) (*Dense[T], error) {
	return matrix.Materialize(ctx, ev, src)
}

// NewEvaluator creates an evaluator.
//
// Example:
//
//	ev := matrix.NewEvaluator(matrix.WithWorkers(4), matrix.WithMemo())
//	err := dst.AssignWith(ctx, ev, expr)
func NewEvaluator(opts ...Option) *Evaluator {
	return matrix.NewEvaluator(opts...)
}

// WithLogger, WithMemo and WithWorkers configure an Evaluator.
var (
	WithLogger  = matrix.WithLogger
	WithMemo    = matrix.WithMemo
	WithWorkers = matrix.WithWorkers
)
