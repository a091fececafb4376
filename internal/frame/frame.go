// Package frame provides the in-memory tabular data model consumed by the
// loader: ordered, typed columns of equal length with nil cells standing in
// for SQL NULL.
package frame

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Kind identifies the semantic type of a column's values.
// It drives SQL type inference and parameter binding.
type Kind int

const (
	// Int32 holds 32-bit integers (stored as int32).
	Int32 Kind = iota
	// Int64 holds 64-bit integers (stored as int64).
	Int64
	// Float holds floating-point numbers (stored as float64).
	Float
	// Date holds date-only values (stored as time.Time, time part ignored).
	Date
	// DateTime holds timestamps (stored as time.Time).
	DateTime
	// Text holds free-form strings.
	Text
	// Categorical holds strings drawn from a fixed label set.
	Categorical
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float:
		return "float"
	case Date:
		return "date"
	case DateTime:
		return "datetime"
	case Text:
		return "text"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column is one named, typed column of values. A nil cell is bound as SQL
// NULL. Levels is the distinct label set for Categorical columns and is
// ignored for every other kind.
type Column struct {
	Name   string
	Kind   Kind
	Values []any
	Levels []string
}

// ErrNoColumns is returned when a frame is constructed without any columns.
var ErrNoColumns = errors.New("frame: at least one column is required")

// Frame is an ordered collection of equal-length columns.
type Frame struct {
	cols []Column
	rows int
}

// New builds a frame from the given columns. All columns must have the same
// number of values.
func New(cols ...Column) (*Frame, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	rows := len(cols[0].Values)
	for _, c := range cols {
		if len(c.Values) != rows {
			return nil, fmt.Errorf("frame: column %q has %d values, expected %d", c.Name, len(c.Values), rows)
		}
	}
	return &Frame{cols: cols, rows: rows}, nil
}

// Columns returns the frame's columns in order.
func (f *Frame) Columns() []Column {
	return f.cols
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.rows
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.cols)
}

// Row returns the i-th row as a slice of cells in column order.
func (f *Frame) Row(i int) []any {
	row := make([]any, len(f.cols))
	for j, c := range f.cols {
		row[j] = c.Values[i]
	}
	return row
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// ToSnake converts a camelCase identifier to snake_case. It is used when the
// caller's column naming convention differs from the database's.
func ToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
