// SPDX-License-Identifier: MIT

// Package matrix - grid rendering shared by every variant.
//
// Layout (defaults): each row is "|" followed by one " |"-terminated
// right-aligned field per column:
//
//	|   1.5 |   2.0 |
//	|   0.0 |   1.0 |
//
// Floats are rendered fixed-point with the configured precision; integers
// ignore precision. WithLanguage switches number rendering to
// golang.org/x/text/message so digit grouping follows the locale.

package matrix

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"golang.org/x/text/message"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "|"
	_fmtCellEnd  = " |"
	_fmtRowClose = "\n"
)

// cellFormatter renders one element according to resolved options.
type cellFormatter[T Number] struct {
	verb    string                               // e.g. "%6.1f" or "%6d"
	convert func(v T) any                        // widens v to float64/int64/uint64
	sprintf func(format string, a ...any) string // fmt.Sprintf or a locale printer
}

// newCellFormatter resolves the verb once per Print call from T's kind.
// Complexity: O(1).
func newCellFormatter[T Number](o printOptions) cellFormatter[T] {
	var zero T
	f := cellFormatter[T]{sprintf: fmt.Sprintf}
	if o.localized {
		p := message.NewPrinter(o.lang)
		f.sprintf = func(format string, a ...any) string { return p.Sprintf(format, a...) }
	}

	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		f.verb = fmt.Sprintf("%%%d.%df", o.width, o.precision)
		f.convert = func(v T) any { return reflect.ValueOf(v).Float() }
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f.verb = fmt.Sprintf("%%%dd", o.width)
		f.convert = func(v T) any { return reflect.ValueOf(v).Int() }
	default: // unsigned kinds
		f.verb = fmt.Sprintf("%%%dd", o.width)
		f.convert = func(v T) any { return reflect.ValueOf(v).Uint() }
	}

	return f
}

// render writes a row-major buffer of shape s to w.
// Implementation:
//   - Stage 1: resolve options and the cell verb.
//   - Stage 2: build the whole grid in a strings.Builder (fixed i→j order).
//   - Stage 3: single write to w.
//
// Complexity: Time O(r*c), Space O(r*c) for the text.
func render[T Number](w io.Writer, s Shape, data []T, opts ...PrintOption) error {
	if w == nil {
		return fmt.Errorf("Print: %w", ErrNilWriter)
	}
	f := newCellFormatter[T](gatherPrintOptions(opts...))

	var sb strings.Builder
	var i, j int
	for i = 0; i < s.Rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < s.Cols; j++ {
			sb.WriteString(f.sprintf(f.verb, f.convert(data[i*s.Cols+j])))
			sb.WriteString(_fmtCellEnd)
		}
		sb.WriteString(_fmtRowClose)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// renderString is render into a string; used by String() implementations.
func renderString[T Number](s Shape, data []T) string {
	var sb strings.Builder
	_ = render(&sb, s, data) // strings.Builder never fails

	return sb.String()
}
