package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/born-ml/exprmat/matrix"
)

// supportedTypes lists the element types a scenario may use.
var supportedTypes = map[matrix.DataType]bool{
	matrix.Int:        true,
	matrix.Int16:      true,
	matrix.Int64:      true,
	matrix.Float64:    true,
	matrix.Complex128: true,
}

// Result is the outcome of one scenario.
type Result struct {
	Name    string
	Kind    string
	DType   matrix.DataType
	Shape   matrix.Shape
	Sample  string        // out(0,0)
	Before  string        // rendered first operand, when printing
	After   string        // rendered result, when printing
	Elapsed time.Duration // expression build and assignment
}

// RunScenario builds and evaluates one scenario with ev.
func RunScenario(ctx context.Context, ev *matrix.Evaluator, sc Scenario) (Result, error) {
	if err := sc.Validate(); err != nil {
		return Result{}, err
	}
	dt, _ := matrix.ParseDataType(sc.DType)
	switch dt {
	case matrix.Int:
		return runTyped[int](ctx, ev, sc)
	case matrix.Int16:
		return runTyped[int16](ctx, ev, sc)
	case matrix.Int64:
		return runTyped[int64](ctx, ev, sc)
	case matrix.Float64:
		return runTyped[float64](ctx, ev, sc)
	case matrix.Complex128:
		return runTyped[complex128](ctx, ev, sc)
	default:
		return Result{}, fmt.Errorf("unsupported dtype %q", sc.DType)
	}
}

func runTyped[T matrix.Numeric](ctx context.Context, ev *matrix.Evaluator, sc Scenario) (Result, error) {
	res := Result{Name: sc.Name, Kind: sc.Kind, DType: matrix.DataTypeOf[T]()}

	ops, err := operands[T](sc)
	if err != nil {
		return res, err
	}
	if sc.Print {
		res.Before = renderMatrix(ops[0])
	}

	start := time.Now()
	out, err := evaluate(ctx, ev, sc, ops)
	if err != nil {
		return res, err
	}
	res.Elapsed = time.Since(start)

	res.Shape = out.Shape()
	sample, err := out.At(0, 0)
	if err != nil {
		return res, err
	}
	res.Sample = fmt.Sprint(sample)
	if sc.Print {
		res.After = renderMatrix(out)
	}
	return res, nil
}

// operands allocates one matrix per fill. For matmul-add the first two are
// rows×inner and inner×cols.
func operands[T matrix.Numeric](sc Scenario) ([]*matrix.Dense[T], error) {
	ops := make([]*matrix.Dense[T], len(sc.Fills))
	for i, v := range sc.Fills {
		rows, cols := sc.Rows, sc.Cols
		if sc.Kind == KindMatMulAdd {
			switch i {
			case 0:
				cols = sc.Inner
			case 1:
				rows = sc.Inner
			}
		}
		d, err := matrix.Full(rows, cols, convert[T](v))
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
		ops[i] = d
	}

	for r, row := range sc.Initial {
		vals := make([]T, len(row))
		for c, v := range row {
			vals[c] = convert[T](v)
		}
		if err := ops[0].SetRow(r, vals); err != nil {
			return nil, fmt.Errorf("initial row %d: %w", r, err)
		}
	}
	return ops, nil
}

func evaluate[T matrix.Numeric](ctx context.Context, ev *matrix.Evaluator, sc Scenario, ops []*matrix.Dense[T]) (*matrix.Dense[T], error) {
	switch sc.Kind {
	case KindSum:
		expr := ops[0].Add(ops[1])
		for _, op := range ops[2:] {
			expr = expr.Add(op)
		}
		return matrix.Materialize[T](ctx, ev, expr)

	case KindAxpy:
		s0, s1 := convert[T](sc.Scalars[0]), convert[T](sc.Scalars[1])
		expr := ops[0].Scale(s0).Add(ops[1]).Sub(ops[2]).Add(matrix.ScaleRight[T](ops[3], s1))
		return matrix.Materialize[T](ctx, ev, expr)

	case KindAccumulate:
		if err := ops[0].AddAssign(ops[1]); err != nil {
			return nil, err
		}
		return ops[0], nil

	case KindMatMulAdd:
		ab, err := matrix.MulWith(ctx, ev, ops[0], ops[1])
		if err != nil {
			return nil, err
		}
		return matrix.Materialize[T](ctx, ev, ab.Add(ops[2]))

	default:
		return nil, fmt.Errorf("unknown kind %q", sc.Kind)
	}
}

// convert narrows a YAML value to T. Real types drop the imaginary part and
// integer types truncate toward zero.
func convert[T matrix.Numeric](v Value) T {
	c := complex128(v)
	var out T
	switch p := any(&out).(type) {
	case *int:
		*p = int(real(c))
	case *int16:
		*p = int16(real(c))
	case *int64:
		*p = int64(real(c))
	case *float64:
		*p = real(c)
	case *complex128:
		*p = c
	}
	return out
}

// RunAll runs every scenario in cfg and logs each outcome.
func RunAll(ctx context.Context, logger *zap.Logger, ev *matrix.Evaluator, cfg Config) ([]Result, error) {
	results := make([]Result, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := RunScenario(ctx, ev, sc)
		if err != nil {
			logger.Error("Scenario failed", zap.String("name", sc.Name), zap.Error(err))
			return results, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		logger.Info("Scenario finished",
			zap.String("name", res.Name),
			zap.String("kind", res.Kind),
			zap.Stringer("dtype", res.DType),
			zap.Stringer("shape", res.Shape),
			zap.String("sample", res.Sample),
			zap.Duration("elapsed", res.Elapsed))
		results = append(results, res)
	}
	return results, nil
}
