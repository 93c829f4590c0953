package matrix

// Add builds the lazy elementwise sum a + b.
//
// Example:
//
//	sum := matrix.Add[int](a, b)
//	err := dst.Assign(sum)
func Add[T Numeric](a, b Operand[T]) Expr[T] {
	return Combine(a, b, Plus[T]())
}

// Sub builds the lazy elementwise difference a - b.
func Sub[T Numeric](a, b Operand[T]) Expr[T] {
	return Combine(a, b, Minus[T]())
}

// Scale builds the lazy scalar product k * a.
func Scale[T Numeric](k T, a Operand[T]) Expr[T] {
	return Expr[T]{root: combineNode(scalarNode(k), a.operand(), Times[T]())}
}

// ScaleRight builds the lazy scalar product a * k.
// It is represented exactly like Scale(k, a).
func ScaleRight[T Numeric](a Operand[T], k T) Expr[T] {
	return Scale(k, a)
}

// Add returns the lazy expression d + o.
func (d *Dense[T]) Add(o Operand[T]) Expr[T] {
	return Add[T](d, o)
}

// Sub returns the lazy expression d - o.
func (d *Dense[T]) Sub(o Operand[T]) Expr[T] {
	return Sub[T](d, o)
}

// Scale returns the lazy expression k * d.
func (d *Dense[T]) Scale(k T) Expr[T] {
	return Scale[T](k, d)
}

// Add returns the lazy expression e + o.
func (e Expr[T]) Add(o Operand[T]) Expr[T] {
	return Add[T](e, o)
}

// Sub returns the lazy expression e - o.
func (e Expr[T]) Sub(o Operand[T]) Expr[T] {
	return Sub[T](e, o)
}

// Scale returns the lazy expression k * e.
func (e Expr[T]) Scale(k T) Expr[T] {
	return Scale[T](k, e)
}

// AddAssign replaces d with d + o.
//
// The sum is first materialized into a temporary of d's shape and only then
// swapped into d, so d is left untouched if evaluation fails.
func (d *Dense[T]) AddAssign(o Operand[T]) error {
	return d.accumulate(o, Plus[T]())
}

// SubAssign replaces d with d - o. See AddAssign.
func (d *Dense[T]) SubAssign(o Operand[T]) error {
	return d.accumulate(o, Minus[T]())
}

func (d *Dense[T]) accumulate(o Operand[T], op Combinator[T]) error {
	if !d.IsBound() {
		return ErrUnbound
	}
	tmp, err := New[T](d.rows, d.cols)
	if err != nil {
		return err
	}
	if err := tmp.Assign(Combine[T](d, o, op)); err != nil {
		return err
	}
	d.data = tmp.data
	d.gen++
	return nil
}
