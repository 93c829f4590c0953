package matrix

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of an expression node.
type Kind uint8

// Expression node kinds.
const (
	KindLeaf    Kind = iota // reference to a Dense matrix
	KindScalar              // value-captured constant
	KindCombine             // binary elementwise combination
	KindEmpty               // zero-value Expr with no node
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindScalar:
		return "scalar"
	case KindCombine:
		return "combine"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Combinator is a named binary function applied elementwise.
type Combinator[T Numeric] struct {
	Name   string // used in error messages and String output
	Symbol string // infix symbol, e.g. "+"
	Fn     func(x, y T) T
}

// Plus returns the elementwise addition combinator.
func Plus[T Numeric]() Combinator[T] {
	return Combinator[T]{Name: "add", Symbol: "+", Fn: func(x, y T) T { return x + y }}
}

// Minus returns the elementwise subtraction combinator.
func Minus[T Numeric]() Combinator[T] {
	return Combinator[T]{Name: "sub", Symbol: "-", Fn: func(x, y T) T { return x - y }}
}

// Times returns the elementwise multiplication combinator.
func Times[T Numeric]() Combinator[T] {
	return Combinator[T]{Name: "mul", Symbol: "*", Fn: func(x, y T) T { return x * y }}
}

// node is one element of an expression tree.
//
// Exactly one group of fields is meaningful, selected by kind:
//   - KindLeaf: store, gen
//   - KindScalar: value
//   - KindCombine: op, left, right
//
// shape and err are resolved once, when the node is built.
type node[T Numeric] struct {
	kind Kind

	store *Dense[T]
	gen   uint64

	value T

	op          Combinator[T]
	left, right *node[T]

	shape Shape
	err   error
}

func leafNode[T Numeric](d *Dense[T]) *node[T] {
	n := &node[T]{kind: KindLeaf, store: d}
	if d == nil || !d.IsBound() || d.Shape().IsScalar() {
		n.err = ErrUnbound
		return n
	}
	n.gen = d.gen
	n.shape = d.Shape()
	return n
}

func scalarNode[T Numeric](v T) *node[T] {
	return &node[T]{kind: KindScalar, value: v}
}

func combineNode[T Numeric](l, r *node[T], op Combinator[T]) *node[T] {
	n := &node[T]{kind: KindCombine, op: op, left: l, right: r}
	switch {
	case l == nil || r == nil:
		n.err = fmt.Errorf("%w: %s with empty operand", ErrInvalidExpression, op.Name)
	case op.Fn == nil:
		n.err = fmt.Errorf("%w: combinator %q has no function", ErrInvalidExpression, op.Name)
	case l.err != nil:
		n.err = l.err
	case r.err != nil:
		n.err = r.err
	default:
		shape, err := Resolve(l.shape, r.shape)
		if err != nil {
			n.err = fmt.Errorf("%s: %w", op.Name, err)
			return n
		}
		n.shape = shape
	}
	return n
}

// at evaluates the node at (r, c). Callers guarantee the tree is valid and
// (r, c) lies within its shape.
func (n *node[T]) at(r, c int) T {
	switch n.kind {
	case KindLeaf:
		return n.store.data[r*n.store.cols+c]
	case KindScalar:
		return n.value
	default:
		return n.op.Fn(n.left.at(r, c), n.right.at(r, c))
	}
}

// walk visits every node reachable from n, once per path.
func (n *node[T]) walk(visit func(*node[T])) {
	visit(n)
	if n.kind == KindCombine {
		n.left.walk(visit)
		n.right.walk(visit)
	}
}

// checkLeaves fails if any referenced matrix changed since its leaf was built.
func (n *node[T]) checkLeaves() error {
	var err error
	n.walk(func(m *node[T]) {
		if err == nil && m.kind == KindLeaf && m.store.gen != m.gen {
			err = fmt.Errorf("%w: %v leaf", ErrStaleOperand, m.shape)
		}
	})
	return err
}

func (n *node[T]) format(sb *strings.Builder) {
	switch n.kind {
	case KindLeaf:
		fmt.Fprintf(sb, "[%v]", n.shape)
	case KindScalar:
		fmt.Fprintf(sb, "%v", n.value)
	default:
		sb.WriteByte('(')
		n.left.format(sb)
		sym := n.op.Symbol
		if sym == "" {
			sym = n.op.Name
		}
		fmt.Fprintf(sb, " %s ", sym)
		n.right.format(sb)
		sb.WriteByte(')')
	}
}

// Operand is anything that can appear in an expression: a *Dense or an Expr.
type Operand[T Numeric] interface {
	operand() *node[T]
}

func (d *Dense[T]) operand() *node[T] {
	return leafNode(d)
}

// Expr is a lazily evaluated matrix expression.
//
// Building an Expr costs O(1) and performs no elementwise work; the work
// happens when the expression is assigned into a Dense. Shape errors found
// while building are kept in the expression and reported by Err and by
// every assignment that uses it.
//
// An Expr refers to the matrices it was built from. Modifying one of them
// before the expression is assigned makes the assignment fail with
// ErrStaleOperand.
type Expr[T Numeric] struct {
	root *node[T]
}

func (e Expr[T]) operand() *node[T] {
	return e.root
}

// Scalar returns an expression holding the constant v. It broadcasts to
// the shape of whatever it is combined with.
func Scalar[T Numeric](v T) Expr[T] {
	return Expr[T]{root: scalarNode(v)}
}

// Combine builds an elementwise expression applying op to a and b.
func Combine[T Numeric](a, b Operand[T], op Combinator[T]) Expr[T] {
	return Expr[T]{root: combineNode(a.operand(), b.operand(), op)}
}

// Kind returns the kind of the root node, or KindEmpty for the zero Expr.
func (e Expr[T]) Kind() Kind {
	if e.root == nil {
		return KindEmpty
	}
	return e.root.kind
}

// Err returns the error recorded while building the expression, if any.
func (e Expr[T]) Err() error {
	if e.root == nil {
		return fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}
	return e.root.err
}

// Shape returns the resolved shape of the expression.
func (e Expr[T]) Shape() (Shape, error) {
	if err := e.Err(); err != nil {
		return Shape{}, err
	}
	return e.root.shape, nil
}

// At evaluates a single element of the expression without materializing it.
// A scalar expression ignores (r, c).
func (e Expr[T]) At(r, c int) (T, error) {
	var zero T
	if err := e.Err(); err != nil {
		return zero, err
	}
	s := e.root.shape
	if !s.IsScalar() && (r < 0 || r >= s.Rows || c < 0 || c >= s.Cols) {
		return zero, fmt.Errorf("%w: (%d, %d) in %v", ErrIndexOutOfRange, r, c, s)
	}
	if err := e.root.checkLeaves(); err != nil {
		return zero, err
	}
	return e.root.at(r, c), nil
}

// Nodes returns the number of nodes in the expression, counting a shared
// sub-expression once per path.
func (e Expr[T]) Nodes() int {
	if e.root == nil {
		return 0
	}
	count := 0
	e.root.walk(func(*node[T]) { count++ })
	return count
}

// String renders the expression tree, e.g. "((2 * [2x2]) + [2x2])".
func (e Expr[T]) String() string {
	if e.root == nil {
		return "<empty>"
	}
	var sb strings.Builder
	e.root.format(&sb)
	return sb.String()
}
