package matrix

import "errors"

// Every message carries the "matrix: " prefix. Operations wrap these with
// context via fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
var (
	// ErrShapeMismatch indicates incompatible operand shapes: two non-scalar
	// operands of an elementwise node, a.Cols != b.Rows in a product, or a
	// destination whose shape differs from the expression it receives.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfRange indicates a row or column index outside the matrix.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when requested dimensions are not positive.
	// (0, 0) is reserved for scalar operands and never names a matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrUnbound indicates a zero-value Dense was used as an operand.
	ErrUnbound = errors.New("matrix: matrix has no data")

	// ErrStaleOperand indicates that a matrix referenced by an expression
	// was modified after the expression was built.
	ErrStaleOperand = errors.New("matrix: operand modified after expression was built")

	// ErrInvalidExpression indicates an empty expression or a combinator
	// without a function.
	ErrInvalidExpression = errors.New("matrix: invalid expression")
)
