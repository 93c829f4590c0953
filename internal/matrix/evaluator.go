package matrix

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/born-ml/exprmat/internal/parallel"
)

// Evaluator materializes expressions into matrices.
//
// The zero-option evaluator walks the expression once per output cell in
// row-major order on the calling goroutine, and does not memoize shared
// sub-expressions: a node reachable through two paths is evaluated twice
// per cell. WithMemo and WithWorkers change that on request.
type Evaluator struct {
	logger *zap.Logger
	memo   bool
	par    parallel.Config
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for per-materialization debug records.
func WithLogger(l *zap.Logger) Option {
	return func(ev *Evaluator) {
		if l != nil {
			ev.logger = l
		}
	}
}

// WithMemo makes the evaluator materialize every elementwise node that is
// reachable through more than one path exactly once, before the main pass.
func WithMemo() Option {
	return func(ev *Evaluator) {
		ev.memo = true
	}
}

// WithWorkers splits output rows across n goroutines. n <= 0 uses one
// worker per CPU; n == 1 keeps evaluation sequential.
func WithWorkers(n int) Option {
	return func(ev *Evaluator) {
		ev.par = parallel.WithWorkers(n)
	}
}

// NewEvaluator creates an evaluator. Without options it is sequential,
// does not memoize and does not log.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := &Evaluator{
		logger: zap.NewNop(),
		par:    parallel.Config{Enabled: false, NumWorkers: 1},
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Memo reports whether the evaluator memoizes shared sub-expressions.
func (ev *Evaluator) Memo() bool {
	return ev.memo
}

// Workers returns the number of goroutines used per materialization.
func (ev *Evaluator) Workers() int {
	if !ev.par.Enabled {
		return 1
	}
	return ev.par.NumWorkers
}

var defaultEvaluator = NewEvaluator()

func evaluatorOrDefault(ev *Evaluator) *Evaluator {
	if ev == nil {
		return defaultEvaluator
	}
	return ev
}

// Assign evaluates src into d using the default sequential evaluator.
//
// d must have src's shape, or be unbound, in which case it is allocated with
// src's shape. Shape, stale-operand and expression errors are reported
// before any element of d is written.
func (d *Dense[T]) Assign(src Operand[T]) error {
	return d.AssignWith(context.Background(), nil, src)
}

// AssignWith evaluates src into d using ev (nil means the default evaluator).
// ctx is only consulted between row chunks, so a canceled parallel
// evaluation may leave d partially written.
func (d *Dense[T]) AssignWith(ctx context.Context, ev *Evaluator, src Operand[T]) error {
	ev = evaluatorOrDefault(ev)
	start := time.Now()

	root := src.operand()
	if root == nil {
		return fmt.Errorf("assign: %w: empty expression", ErrInvalidExpression)
	}
	if root.err != nil {
		return fmt.Errorf("assign: %w", root.err)
	}
	if root.shape.IsScalar() {
		return fmt.Errorf("assign: %w: scalar expression has no shape", ErrShapeMismatch)
	}

	// Unbound -> ShapeChecked.
	if d.IsBound() && d.Shape() != root.shape {
		return fmt.Errorf("assign: %w: destination %v, expression %v", ErrShapeMismatch, d.Shape(), root.shape)
	}
	if err := root.checkLeaves(); err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	if root.kind == KindLeaf && root.store == d {
		return nil
	}

	shared := 0
	if ev.memo {
		var err error
		root, shared, err = memoize(ctx, ev, root)
		if err != nil {
			return fmt.Errorf("assign: %w", err)
		}
	}

	// ShapeChecked -> Materialized.
	if !d.IsBound() {
		d.bind(root.shape)
	}
	// A failed fill may still have written rows.
	d.gen++
	if err := fill(ctx, ev, d.data, root); err != nil {
		return fmt.Errorf("assign: %w", err)
	}

	if ce := ev.logger.Check(zap.DebugLevel, "materialized expression"); ce != nil {
		ce.Write(
			zap.Stringer("shape", root.shape),
			zap.Int("nodes", Expr[T]{root: root}.Nodes()),
			zap.Int("memoized", shared),
			zap.Int("workers", ev.Workers()),
			zap.Duration("elapsed", time.Since(start)))
	}
	return nil
}

// Materialize evaluates src into a newly allocated matrix.
func Materialize[T Numeric](ctx context.Context, ev *Evaluator, src Operand[T]) (*Dense[T], error) {
	out := &Dense[T]{}
	if err := out.AssignWith(ctx, ev, src); err != nil {
		return nil, err
	}
	return out, nil
}

// fill writes root.at(r, c) into dst for every cell, row-major.
func fill[T Numeric](ctx context.Context, ev *Evaluator, dst []T, root *node[T]) error {
	rows, cols := root.shape.Rows, root.shape.Cols
	return parallel.ForRange(ctx, rows, func(start, end int) error {
		for r := start; r < end; r++ {
			row := dst[r*cols : (r+1)*cols]
			for c := range row {
				row[c] = root.at(r, c)
			}
		}
		return nil
	}, ev.par)
}

// parallelRows calls f for every row in [0, rows) on ev's worker pool.
func parallelRows(ctx context.Context, ev *Evaluator, rows int, f func(r int)) error {
	return parallel.For(ctx, rows, func(r int) error {
		f(r)
		return nil
	}, ev.par)
}
