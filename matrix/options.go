// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Print.
// This file defines:
//   - PrintOption / printOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherPrintOptions helper that applies defaults first.
//
// Design goals:
//   - Deterministic output: no global state.
//   - No dead switches: each option changes rendering and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"

	"golang.org/x/text/language"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrintWidth is the minimum field width of every rendered cell.
	DefaultPrintWidth = 6

	// DefaultPrintPrecision is the number of fractional digits for float elements.
	DefaultPrintPrecision = 1

	// maxPrintWidth bounds WithWidth to keep rows printable.
	maxPrintWidth = 64

	// maxPrintPrecision bounds WithPrecision.
	maxPrintPrecision = 17
)

// PrintOption configures Print.
type PrintOption func(*printOptions)

// printOptions holds the resolved print configuration.
// Fields are unexported; callers go through WithX constructors.
type printOptions struct {
	width     int          // minimum field width (right-aligned)
	precision int          // fractional digits for float kinds
	lang      language.Tag // locale for number rendering
	localized bool         // true once WithLanguage was applied
}

// WithWidth sets the minimum field width of each cell.
// Panics if w < 1 or w > 64.
func WithWidth(w int) PrintOption {
	if w < 1 || w > maxPrintWidth {
		panic(fmt.Sprintf("matrix: WithWidth(%d): width must be in [1,%d]", w, maxPrintWidth))
	}

	return func(o *printOptions) { o.width = w }
}

// WithPrecision sets the number of fractional digits for float elements.
// Integer elements ignore it. Panics if p < 0 or p > 17.
func WithPrecision(p int) PrintOption {
	if p < 0 || p > maxPrintPrecision {
		panic(fmt.Sprintf("matrix: WithPrecision(%d): precision must be in [0,%d]", p, maxPrintPrecision))
	}

	return func(o *printOptions) { o.precision = p }
}

// WithLanguage renders numbers with the locale conventions of tag
// (digit grouping, decimal separator) through golang.org/x/text/message.
func WithLanguage(tag language.Tag) PrintOption {
	return func(o *printOptions) {
		o.lang = tag
		o.localized = true
	}
}

// gatherPrintOptions applies defaults, then user options in order (last wins).
func gatherPrintOptions(user ...PrintOption) printOptions {
	o := printOptions{
		width:     DefaultPrintWidth,
		precision: DefaultPrintPrecision,
		lang:      language.Und,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
