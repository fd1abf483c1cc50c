package scenario

import (
	"fmt"

	"github.com/katalvlaran/genmat/internal/logging"
)

// Result is the outcome of Run.
type Result struct {
	Scenario  *Scenario
	Left      View
	Right     View
	LeftName  string
	RightName string

	// Sum is nil when Mismatch is true.
	Sum     View
	SumRows [][]float64

	// Mismatch records the shape-mismatch no-result signal.
	Mismatch bool
}

// Check compares the outcome with the scenario's expectation.
// A scenario without expect/expectMismatch only requires a result.
func (r *Result) Check() error {
	s := r.Scenario
	switch {
	case s.ExpectMismatch && !r.Mismatch:
		return fmt.Errorf("%w: %s: expected a shape mismatch, got a %s sum", ErrExpectationFailed, s.Name, r.Sum.Shape())
	case !s.ExpectMismatch && r.Mismatch:
		return fmt.Errorf("%w: %s: unexpected shape mismatch %s vs %s", ErrExpectationFailed, s.Name, r.Left.Shape(), r.Right.Shape())
	case s.Expect == nil:
		return nil
	}

	if len(s.Expect) != len(r.SumRows) {
		return fmt.Errorf("%w: %s: sum has %d rows, want %d", ErrExpectationFailed, s.Name, len(r.SumRows), len(s.Expect))
	}
	for i, row := range s.Expect {
		if len(row) != len(r.SumRows[i]) {
			return fmt.Errorf("%w: %s: sum row %d has %d cells, want %d", ErrExpectationFailed, s.Name, i, len(r.SumRows[i]), len(row))
		}
		for j, want := range row {
			if got := r.SumRows[i][j]; got != want {
				return fmt.Errorf("%w: %s: sum(%d,%d) = %v, want %v", ErrExpectationFailed, s.Name, i, j, got, want)
			}
		}
	}

	return nil
}

// releaser is implemented by variants owning storage (HeapMatrix).
type releaser interface {
	Release()
}

// Release tears down the sum, then the left and right operands, logging each
// step. Fixed matrices own nothing; they are only logged.
func (r *Result) Release(log logging.Logger) {
	type named struct {
		name string
		m    View
	}
	order := []named{{"sum", r.Sum}, {r.LeftName, r.Left}, {r.RightName, r.Right}}
	for _, n := range order {
		if n.m == nil {
			continue
		}
		log.Info("releasing matrix", "scenario", r.Scenario.Name, "name", n.name, "kind", n.m.Kind().String(), "shape", n.m.Shape().String())
		if rel, ok := n.m.(releaser); ok {
			rel.Release()
		}
	}
}
