// Package infer maps a column's semantic value type to a target SQL column
// type, measuring text widths from the observed data.
package infer

import (
	"fmt"

	"github.com/coregx/tabload/internal/frame"
)

// DefaultTextWidth is the VARCHAR width used when a text column has no
// present values to measure.
const DefaultTextWidth = 255

// ColumnDescriptor carries one column's inferred SQL shape.
type ColumnDescriptor struct {
	Name string
	Kind frame.Kind
	// SQLType is the rendered target column type, e.g. "VARCHAR(300)".
	SQLType string
	// MaxTextLength is the measured text width; zero for non-text columns.
	MaxTextLength int
}

// Describe infers the SQL column type for one column.
func Describe(col frame.Column) ColumnDescriptor {
	d := ColumnDescriptor{Name: col.Name, Kind: col.Kind}
	switch col.Kind {
	case frame.Int32:
		d.SQLType = "INTEGER"
	case frame.DateTime:
		d.SQLType = "DATETIME2"
	case frame.Date:
		d.SQLType = "DATE"
	case frame.Int64:
		d.SQLType = "BIGINT"
	case frame.Float:
		d.SQLType = "FLOAT"
	default:
		d.MaxTextLength = textWidth(col)
		if d.MaxTextLength <= DefaultTextWidth {
			d.SQLType = fmt.Sprintf("VARCHAR(%d)", DefaultTextWidth)
		} else {
			d.SQLType = fmt.Sprintf("VARCHAR(%d)", d.MaxTextLength)
		}
	}
	return d
}

// DescribeAll infers descriptors for every column of the frame, in order.
func DescribeAll(f *frame.Frame) []ColumnDescriptor {
	cols := f.Columns()
	out := make([]ColumnDescriptor, len(cols))
	for i, c := range cols {
		out[i] = Describe(c)
	}
	return out
}

// textWidth measures the longest textual representation in the column.
// Categorical columns measure their label set; columns with no present
// values degrade to the default width.
func textWidth(col frame.Column) int {
	if col.Kind == frame.Categorical && len(col.Levels) > 0 {
		width := 0
		for _, level := range col.Levels {
			if len(level) > width {
				width = len(level)
			}
		}
		return width
	}

	width := -1
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		if n := len(fmt.Sprintf("%v", v)); n > width {
			width = n
		}
	}
	if width < 0 {
		// All values absent: nothing to measure.
		return DefaultTextWidth
	}
	return width
}
