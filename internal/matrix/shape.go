package matrix

import "fmt"

// Shape is the (rows, cols) pair of a matrix-like value.
//
// The zero Shape is the scalar sentinel: the value has no intrinsic shape
// and broadcasts to whatever the other operand requires.
type Shape struct {
	Rows int
	Cols int
}

// ScalarShape is the sentinel shape carried by scalar operands.
var ScalarShape = Shape{}

// IsScalar reports whether s is the scalar sentinel.
func (s Shape) IsScalar() bool {
	return s == ScalarShape
}

// NumElements returns rows*cols. The scalar sentinel has one element.
func (s Shape) NumElements() int {
	if s.IsScalar() {
		return 1
	}
	return s.Rows * s.Cols
}

// Validate checks that both dimensions are positive.
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d (dimensions must be > 0)", ErrBadShape, s.Rows, s.Cols)
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// String formats the shape as "RxC", or "scalar" for the sentinel.
func (s Shape) String() string {
	if s.IsScalar() {
		return "scalar"
	}
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Resolve computes the shape of an elementwise node from its operands.
//
// Rules:
//  1. A scalar operand takes the shape of the other operand.
//  2. Two matrix operands must have identical shapes.
//  3. Two scalar operands are ambiguous and rejected.
//
// Examples:
//
//	scalar, 3x4 → 3x4
//	3x4, 3x4    → 3x4
//	2x2, 3x3    → error
func Resolve(a, b Shape) (Shape, error) {
	switch {
	case a.IsScalar() && b.IsScalar():
		return Shape{}, fmt.Errorf("%w: both operands are scalars", ErrShapeMismatch)
	case a.IsScalar():
		return b, nil
	case b.IsScalar():
		return a, nil
	case a != b:
		return Shape{}, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a, b)
	default:
		return a, nil
	}
}
