package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/genmat/matrix"
)

// View is the element-type-independent part of matrix.Matrix used for reporting.
type View interface {
	Kind() matrix.Kind
	Shape() matrix.Shape
	Print(w io.Writer, opts ...matrix.PrintOption) error
}

// Run builds both operands, adds them with matrix.Add and records the outcome.
// A shape mismatch is recorded in Result.Mismatch, not returned as an error.
func Run(s *Scenario) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scenario", ErrInvalidScenario)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	switch s.Element {
	case ElementInt:
		return run(s, toInt)
	default:
		return run(s, func(v float64) (float64, error) { return v, nil })
	}
}

func run[T matrix.Number](s *Scenario, conv func(float64) (T, error)) (*Result, error) {
	left, err := build(s.Left, conv)
	if err != nil {
		return nil, fmt.Errorf("%s: left: %w", s.Name, err)
	}
	right, err := build(s.Right, conv)
	if err != nil {
		return nil, fmt.Errorf("%s: right: %w", s.Name, err)
	}

	res := &Result{
		Scenario:  s,
		Left:      left,
		Right:     right,
		LeftName:  s.Left.label("left"),
		RightName: s.Right.label("right"),
	}

	sum, err := matrix.Add(left, right)
	switch {
	case errors.Is(err, matrix.ErrShapeMismatch):
		res.Mismatch = true
		return res, nil
	case err != nil:
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}

	rows, err := matrix.ToRows(sum)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	res.Sum = sum
	res.SumRows = widen(rows)

	return res, nil
}

// build allocates the operand's variant and populates it cell by cell
// through the contract.
func build[T matrix.Number](o Operand, conv func(float64) (T, error)) (matrix.Matrix[T], error) {
	rows, cols := len(o.Rows), 0
	if rows > 0 {
		cols = len(o.Rows[0])
	}

	var (
		m   matrix.Matrix[T]
		err error
	)
	switch o.Kind {
	case KindFixed:
		m, err = newFixed[T](rows, cols)
	default:
		m, err = matrix.NewHeap[T](rows, cols)
	}
	if err != nil {
		return nil, err
	}

	m.LoadDefaults()
	for i, row := range o.Rows {
		for j, v := range row {
			cell, err := conv(v)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			if err = m.Set(i, j, cell); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// newFixed maps a runtime shape onto one of the predefined Dims types.
func newFixed[T matrix.Number](rows, cols int) (matrix.Matrix[T], error) {
	switch (matrix.Shape{Rows: rows, Cols: cols}) {
	case matrix.Shape{Rows: 1, Cols: 1}:
		return fixedAs[T, matrix.Dims1x1]()
	case matrix.Shape{Rows: 2, Cols: 2}:
		return fixedAs[T, matrix.Dims2x2]()
	case matrix.Shape{Rows: 2, Cols: 3}:
		return fixedAs[T, matrix.Dims2x3]()
	case matrix.Shape{Rows: 3, Cols: 2}:
		return fixedAs[T, matrix.Dims3x2]()
	case matrix.Shape{Rows: 3, Cols: 3}:
		return fixedAs[T, matrix.Dims3x3]()
	case matrix.Shape{Rows: 4, Cols: 4}:
		return fixedAs[T, matrix.Dims4x4]()
	default:
		return nil, fmt.Errorf("%w: %dx%d", ErrUnsupportedShape, rows, cols)
	}
}

func fixedAs[T matrix.Number, D matrix.Dims]() (matrix.Matrix[T], error) {
	m, err := matrix.NewFixed[T, D]()
	if err != nil {
		return nil, err
	}

	return m, nil
}

// toInt converts an integral literal. float64(math.MaxInt) rounds up to 2^63,
// so the upper bound is exclusive.
func toInt(v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, v)
	}
	if v < math.MinInt || v >= -math.MinInt {
		return 0, fmt.Errorf("%w: %v", ErrIntOverflow, v)
	}

	return int(v), nil
}

func widen[T matrix.Number](rows [][]T) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = float64(v)
		}
	}

	return out
}
