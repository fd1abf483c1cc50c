package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/genmat/internal/scenario"
	"github.com/katalvlaran/genmat/matrix"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // A scenario's expectation failed
	ExitCommandError = 2 // Invalid flags, unreadable or invalid scenario files
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// writeResult renders operands and outcome of one scenario run.
func writeResult(w io.Writer, res *scenario.Result, popts []matrix.PrintOption) error {
	s := res.Scenario
	if _, err := fmt.Fprintf(w, ">> %s <<\n", s.Name); err != nil {
		return err
	}
	if s.Description != "" {
		fmt.Fprintf(w, "// %s\n", s.Description)
	}
	fmt.Fprintln(w)

	if err := writeView(w, res.LeftName, res.Left, popts); err != nil {
		return err
	}
	if err := writeView(w, res.RightName, res.Right, popts); err != nil {
		return err
	}

	if res.Mismatch {
		_, err := fmt.Fprintf(w, "%s + %s: shape mismatch (%s vs %s), no result\n\n",
			res.LeftName, res.RightName, res.Left.Shape(), res.Right.Shape())
		return err
	}

	return writeView(w, res.LeftName+" + "+res.RightName, res.Sum, popts)
}

// writeView prints "name (kind RxC) =", the grid and a blank line.
func writeView(w io.Writer, name string, v scenario.View, popts []matrix.PrintOption) error {
	if _, err := fmt.Fprintf(w, "%s (%s %s) =\n", name, v.Kind(), v.Shape()); err != nil {
		return err
	}
	if err := v.Print(w, popts...); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)

	return err
}
