// Package scenario describes matrix additions in YAML and runs them through
// the matrix contract. A scenario names two operands (variant + literal
// rows), the element type, and either the expected sum or an expected shape
// mismatch.
//
// Example document:
//
//	name: float-heap-plus-fixed
//	element: float
//	left:  {name: A, kind: heap,  rows: [[1.5, 2.0], [0.0, 1.0]]}
//	right: {name: B, kind: fixed, rows: [[0.5, 1.0], [2.0, 3.0]]}
//	expect: [[2.0, 3.0], [2.0, 4.0]]
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Element selects the matrix element type.
type Element string

const (
	// ElementFloat runs the scenario on float64 matrices.
	ElementFloat Element = "float"
	// ElementInt runs the scenario on int matrices; literals must be integral.
	ElementInt Element = "int"
)

// Operand kinds accepted in YAML.
const (
	KindHeap  = "heap"
	KindFixed = "fixed"
)

var (
	// ErrInvalidScenario reports a structurally invalid document.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnsupportedShape reports a fixed operand whose shape has no Dims type.
	ErrUnsupportedShape = errors.New("scenario: unsupported fixed shape")

	// ErrNotInteger reports a non-integral literal in an int scenario.
	ErrNotInteger = errors.New("scenario: value is not an integer")

	// ErrIntOverflow reports an integral literal outside the range of int.
	ErrIntOverflow = errors.New("scenario: value overflows int")

	// ErrExpectationFailed reports a sum (or mismatch) that differs from the document.
	ErrExpectationFailed = errors.New("scenario: expectation failed")
)

// Operand is one side of the addition.
type Operand struct {
	Name string      `yaml:"name"`
	Kind string      `yaml:"kind"`
	Rows [][]float64 `yaml:"rows"`
}

// Scenario is one addition to perform.
type Scenario struct {
	Name           string      `yaml:"name"`
	Description    string      `yaml:"description,omitempty"`
	Element        Element     `yaml:"element"`
	Left           Operand     `yaml:"left"`
	Right          Operand     `yaml:"right"`
	Expect         [][]float64 `yaml:"expect,omitempty"`
	ExpectMismatch bool        `yaml:"expectMismatch,omitempty"`
}

// Load decodes a single scenario document from r and validates it.
// Unknown fields are rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile reads and validates the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Validate checks the document structure. It does not check operand shapes
// against each other: a mismatch is a legitimate scenario outcome.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	if s.Element != ElementFloat && s.Element != ElementInt {
		return fmt.Errorf("%w: %s: element %q must be %q or %q", ErrInvalidScenario, s.Name, s.Element, ElementFloat, ElementInt)
	}
	if err := s.Left.validate("left"); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidScenario, s.Name, err)
	}
	if err := s.Right.validate("right"); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidScenario, s.Name, err)
	}
	if s.ExpectMismatch && s.Expect != nil {
		return fmt.Errorf("%w: %s: expect and expectMismatch are exclusive", ErrInvalidScenario, s.Name)
	}
	if err := checkRectangular(s.Expect); err != nil {
		return fmt.Errorf("%w: %s: expect: %v", ErrInvalidScenario, s.Name, err)
	}

	return nil
}

func (o Operand) validate(side string) error {
	if o.Kind != KindHeap && o.Kind != KindFixed {
		return fmt.Errorf("%s: kind %q must be %q or %q", side, o.Kind, KindHeap, KindFixed)
	}
	if err := checkRectangular(o.Rows); err != nil {
		return fmt.Errorf("%s: %v", side, err)
	}

	return nil
}

// label is the operand name, or the side when unnamed.
func (o Operand) label(side string) string {
	if o.Name != "" {
		return o.Name
	}

	return side
}

func checkRectangular(rows [][]float64) error {
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(rows[0]))
		}
	}

	return nil
}
