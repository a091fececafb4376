package loader

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coregx/tabload/internal/escape"
	"github.com/coregx/tabload/internal/frame"
)

// execCtas materializes the table through a single CREATE TABLE AS SELECT
// whose source is a UNION ALL of literal rows. One statement, zero per-row
// round trips; used on dialects where those round trips dominate.
func (l *Loader) execCtas(ctx context.Context, qualified string, quoted []string, plan InsertPlan, f *frame.Frame) error {
	cols := f.Columns()

	var b strings.Builder
	b.WriteString(l.conn.Dialect().CreateTablePrefix(plan.Target.Temporary))
	b.WriteString(qualified)
	b.WriteString(" AS SELECT * FROM (")
	for i := 0; i < f.Len(); i++ {
		if i > 0 {
			b.WriteString(" UNION ALL ")
		}
		b.WriteString("SELECT ")
		for j, c := range cols {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(sqlLiteral(c.Kind, c.Values[i]))
			// Column aliases on the first row name the result set.
			if i == 0 {
				b.WriteString(" AS ")
				b.WriteString(quoted[j])
			}
		}
	}
	b.WriteString(") t;")

	return l.conn.Execute(ctx, b.String())
}

// sqlLiteral renders one cell as a SQL literal: text quoted through the
// literal escaper, numerics unquoted, absent cells as the NULL literal.
func sqlLiteral(k frame.Kind, v any) string {
	if v == nil {
		return "NULL"
	}
	switch k {
	case frame.Int32:
		if n, ok := v.(int32); ok {
			return strconv.FormatInt(int64(n), 10)
		}
	case frame.Int64:
		if n, ok := v.(int64); ok {
			return strconv.FormatInt(n, 10)
		}
	case frame.Float:
		if x, ok := v.(float64); ok {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
	case frame.Date:
		if t, ok := v.(time.Time); ok {
			return escape.Literal(t.Format("2006-01-02"), '\'')
		}
	case frame.DateTime:
		if t, ok := v.(time.Time); ok {
			return escape.Literal(t.Format("2006-01-02 15:04:05"), '\'')
		}
	}
	return escape.Literal(fmt.Sprintf("%v", v), '\'')
}
