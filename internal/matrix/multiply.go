package matrix

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Mul computes the matrix product a @ b eagerly: (M, K) @ (K, N) -> (M, N).
//
// Unlike Add, Sub and Scale, the product does not fit the elementwise model
// (each output cell reads a whole row and column), so it is computed
// immediately and returned as a new matrix, which may then take part in
// further lazy expressions:
//
//	ab, err := matrix.Mul(a, b)
//	err = dst.Assign(ab.Add(c))
func Mul[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	return MulWith(context.Background(), nil, a, b)
}

// MulWith is Mul using ev's worker pool to split output rows.
func MulWith[T Numeric](ctx context.Context, ev *Evaluator, a, b *Dense[T]) (*Dense[T], error) {
	ev = evaluatorOrDefault(ev)
	start := time.Now()

	if a == nil || b == nil || !a.IsBound() || !b.IsBound() {
		return nil, fmt.Errorf("mul: %w", ErrUnbound)
	}
	m, k := a.rows, a.cols
	kAlt, n := b.rows, b.cols
	if k != kAlt {
		return nil, fmt.Errorf("mul: %w: %v @ %v", ErrShapeMismatch, a.Shape(), b.Shape())
	}

	out, err := New[T](m, n)
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}
	if err := matmul(ctx, ev, out.data, a.data, b.data, m, k, n); err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}

	if ce := ev.logger.Check(zap.DebugLevel, "multiplied matrices"); ce != nil {
		ce.Write(
			zap.Stringer("lhs", a.Shape()),
			zap.Stringer("rhs", b.Shape()),
			zap.Int("workers", ev.Workers()),
			zap.Duration("elapsed", time.Since(start)))
	}
	return out, nil
}

// matmul performs the dense triple loop.
// C[i,j] = sum_k A[i,k] * B[k,j], starting from the zero value of T.
func matmul[T Numeric](ctx context.Context, ev *Evaluator, c, a, b []T, m, k, n int) error {
	return parallelRows(ctx, ev, m, func(i int) {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	})
}
