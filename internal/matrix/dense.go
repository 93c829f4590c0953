package matrix

import "fmt"

// Dense is a row-major rows×cols matrix that owns its buffer.
//
// It is the only type in this package that holds element data; expressions
// built from it refer back to it until they are assigned somewhere.
//
// The zero value is an unbound matrix with no data. Assigning an expression
// into an unbound matrix binds it to the expression's shape.
//
// Example:
//
//	a, _ := matrix.Full[int](2, 2, 1)
//	b, _ := matrix.Full[int](2, 2, 2)
//	var c matrix.Dense[int]
//	err := c.Assign(a.Add(b)) // c is now 2x2, all 3s
type Dense[T Numeric] struct {
	rows int
	cols int
	data []T

	// gen is bumped on every mutation so that expressions can detect
	// operands that changed underneath them.
	gen uint64
}

// New creates a rows×cols matrix filled with the zero value of T.
func New[T Numeric](rows, cols int) (*Dense[T], error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Dense[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}, nil
}

// Full creates a rows×cols matrix with every element set to fill.
func Full[T Numeric](rows, cols int, fill T) (*Dense[T], error) {
	d, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = fill
	}
	return d, nil
}

// FromSlice creates a matrix from row-major data.
// The slice is copied into the matrix.
func FromSlice[T Numeric](rows, cols int, data []T) (*Dense[T], error) {
	d, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d requires %d elements, got %d",
			ErrBadShape, rows, cols, rows*cols, len(data))
	}
	copy(d.data, data)
	return d, nil
}

// FromRows creates a matrix from a slice of equally sized rows.
func FromRows[T Numeric](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadShape)
	}
	cols := len(rows[0])
	d, err := New[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrBadShape, r, len(row), cols)
		}
		copy(d.data[r*cols:], row)
	}
	return d, nil
}

// Must panics if err is non-nil and returns v otherwise.
// It suits tests and callers that treat shape errors as programming errors.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

// Rows returns the number of rows.
func (d *Dense[T]) Rows() int {
	return d.rows
}

// Cols returns the number of columns.
func (d *Dense[T]) Cols() int {
	return d.cols
}

// Shape returns the matrix shape. An unbound matrix reports the zero Shape.
func (d *Dense[T]) Shape() Shape {
	return Shape{Rows: d.rows, Cols: d.cols}
}

// IsBound reports whether the matrix holds data.
func (d *Dense[T]) IsBound() bool {
	return d.data != nil
}

// At returns the element at (r, c).
func (d *Dense[T]) At(r, c int) (T, error) {
	if err := d.checkIndex(r, c); err != nil {
		var zero T
		return zero, err
	}
	return d.data[r*d.cols+c], nil
}

// Set stores v at (r, c).
func (d *Dense[T]) Set(r, c int, v T) error {
	if err := d.checkIndex(r, c); err != nil {
		return err
	}
	d.data[r*d.cols+c] = v
	d.gen++
	return nil
}

// Row returns a copy of row r.
func (d *Dense[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= d.rows {
		return nil, fmt.Errorf("%w: row %d of %v", ErrIndexOutOfRange, r, d.Shape())
	}
	out := make([]T, d.cols)
	copy(out, d.data[r*d.cols:(r+1)*d.cols])
	return out, nil
}

// SetRow overwrites row r with vals, which must have Cols() elements.
func (d *Dense[T]) SetRow(r int, vals []T) error {
	if r < 0 || r >= d.rows {
		return fmt.Errorf("%w: row %d of %v", ErrIndexOutOfRange, r, d.Shape())
	}
	if len(vals) != d.cols {
		return fmt.Errorf("%w: row of %d elements into %v", ErrShapeMismatch, len(vals), d.Shape())
	}
	copy(d.data[r*d.cols:], vals)
	d.gen++
	return nil
}

// Data returns a row-major copy of the elements.
func (d *Dense[T]) Data() []T {
	out := make([]T, len(d.data))
	copy(out, d.data)
	return out
}

// Clone returns a deep copy of the matrix. Cloning an unbound matrix
// yields another unbound matrix.
func (d *Dense[T]) Clone() *Dense[T] {
	if !d.IsBound() {
		return &Dense[T]{}
	}
	return &Dense[T]{
		rows: d.rows,
		cols: d.cols,
		data: d.Data(),
	}
}

// CopyFrom replaces the contents of d with a copy of src, resizing d to
// src's shape. Copying a matrix onto itself is a no-op; copying an unbound
// matrix unbinds d.
func (d *Dense[T]) CopyFrom(src *Dense[T]) {
	if d == src {
		return
	}
	if !src.IsBound() {
		d.rows, d.cols, d.data = 0, 0, nil
		d.gen++
		return
	}
	if cap(d.data) >= len(src.data) && d.data != nil {
		d.data = d.data[:len(src.data)]
	} else {
		d.data = make([]T, len(src.data))
	}
	copy(d.data, src.data)
	d.rows, d.cols = src.rows, src.cols
	d.gen++
}

// Equal reports whether d and other have the same shape and elements.
// A nil matrix is only equal to another nil matrix.
func (d *Dense[T]) Equal(other *Dense[T]) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.IsBound() != other.IsBound() {
		return false
	}
	if d.rows != other.rows || d.cols != other.cols {
		return false
	}
	for i := range d.data {
		if d.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// checkIndex rejects (r, c) when either index falls outside its range.
func (d *Dense[T]) checkIndex(r, c int) error {
	if r < 0 || r >= d.rows || c < 0 || c >= d.cols {
		return fmt.Errorf("%w: (%d, %d) in %v", ErrIndexOutOfRange, r, c, d.Shape())
	}
	return nil
}

// bind allocates storage for an unbound matrix.
func (d *Dense[T]) bind(s Shape) {
	d.rows, d.cols = s.Rows, s.Cols
	d.data = make([]T, s.NumElements())
	d.gen++
}
