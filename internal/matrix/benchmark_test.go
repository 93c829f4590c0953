package matrix

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkAssign(b *testing.B) {
	for _, size := range []int{100, 500} {
		a := Must(Full(size, size, 4))
		bb := Must(Full(size, size, 1))
		c := Must(Full(size, size, 3))
		d := Must(Full(size, size, 5))
		dst := Must(New[int](size, size))

		b.Run(fmt.Sprintf("lazy_sum4_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = dst.Assign(a.Add(bb).Add(c).Add(d))
			}
		})

		b.Run(fmt.Sprintf("eager_sum4_%d", size), func(b *testing.B) {
			// One temporary per step, for comparison.
			for i := 0; i < b.N; i++ {
				t1 := Must(Materialize[int](context.Background(), nil, a.Add(bb)))
				t2 := Must(Materialize[int](context.Background(), nil, t1.Add(c)))
				_ = dst.Assign(t2.Add(d))
			}
		})

		ev := NewEvaluator(WithWorkers(0))
		b.Run(fmt.Sprintf("parallel_sum4_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = dst.AssignWith(context.Background(), ev, a.Add(bb).Add(c).Add(d))
			}
		})
	}
}

func BenchmarkMemo(b *testing.B) {
	a := Must(Full(300, 300, 1.5))
	s := a.Add(a).Scale(2)
	expr := s.Add(s).Sub(s)
	dst := Must(New[float64](300, 300))

	b.Run("plain", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = dst.Assign(expr)
		}
	})

	ev := NewEvaluator(WithMemo())
	b.Run("memo", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = dst.AssignWith(context.Background(), ev, expr)
		}
	})
}

func BenchmarkMul(b *testing.B) {
	x := Must(Full(100, 500, 4.1))
	y := Must(Full(500, 100, 1.2))

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Mul(x, y)
		}
	})

	ev := NewEvaluator(WithWorkers(0))
	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = MulWith(context.Background(), ev, x, y)
		}
	})
}
