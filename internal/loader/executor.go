package loader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coregx/tabload/internal/frame"
	"github.com/coregx/tabload/internal/infer"
	"github.com/coregx/tabload/internal/tracer"
)

// execDirect streams rows through a parameterized INSERT in fixed-size
// batches, suspending auto-commit for the duration so each batch is atomic
// on backends that support it.
func (l *Loader) execDirect(ctx context.Context, qualified string, quoted []string, plan InsertPlan, f *frame.Frame, progress func(float64)) error {
	d := l.conn.Dialect()

	placeholders := make([]string, len(quoted))
	for i := range placeholders {
		placeholders[i] = d.Placeholder(i + 1)
	}
	insertSQL := "INSERT INTO " + qualified +
		" (" + strings.Join(quoted, ",") + ") VALUES (" + strings.Join(placeholders, ",") + ")"

	if hasBigint(plan.Columns) {
		if err := l.conn.ValidateInt64(ctx); err != nil {
			return fmt.Errorf("%w: %s", ErrInt64Transport, err)
		}
	}

	total := f.Len()
	if total == 0 {
		return nil
	}

	restore, err := l.suspendAutoCommit()
	if err != nil {
		return err
	}
	defer restore()

	for start := 0; start < total; start += l.batchSize {
		end := start + l.batchSize
		if end > total {
			end = total
		}
		rows := make([][]any, 0, end-start)
		for i := start; i < end; i++ {
			rows = append(rows, bindRow(f, i))
		}

		batchStart := time.Now()
		_, span := l.tracer.StartSpan(ctx, "tabload.batch")
		err := l.conn.ExecuteBatch(ctx, insertSQL, rows)
		tracer.AddLoadAttributes(span, &tracer.LoadMetadata{
			Dialect:  d.Name(),
			Table:    plan.Target.Name,
			Strategy: plan.Strategy.String(),
			Rows:     len(rows),
			Duration: time.Since(batchStart),
			Error:    err,
		})
		span.End()
		l.reporter.ObserveBatch(d.Name(), plan.Target.Name, len(rows), time.Since(batchStart), err)
		if err != nil {
			return err
		}

		fraction := float64(end) / float64(total)
		l.reporter.SetProgress(plan.Target.Name, fraction)
		if progress != nil {
			progress(fraction)
		}
	}
	return nil
}

// suspendAutoCommit turns auto-commit off for the batch loop and returns the
// release function that restores it. The release runs on every exit path,
// including panics from within the loop.
func (l *Loader) suspendAutoCommit() (func(), error) {
	if !l.conn.AutoCommit() {
		return func() {}, nil
	}
	if err := l.conn.SetAutoCommit(false); err != nil {
		return nil, err
	}
	return func() {
		if err := l.conn.SetAutoCommit(true); err != nil {
			l.log.Warn("tabload: failed to restore auto-commit", "error", err)
		}
	}, nil
}

func hasBigint(cols []infer.ColumnDescriptor) bool {
	for _, c := range cols {
		if c.SQLType == "BIGINT" {
			return true
		}
	}
	return false
}

// bindRow converts one frame row into driver parameter values, preserving
// each column's semantic type.
func bindRow(f *frame.Frame, i int) []any {
	cols := f.Columns()
	row := make([]any, len(cols))
	for j, c := range cols {
		row[j] = bindValue(c.Kind, c.Values[i])
	}
	return row
}

// bindValue maps a cell to its bound form. Dates are bound as date-only
// strings so no time-of-day or zone information leaks into a DATE column;
// everything else passes through in its native Go type.
func bindValue(k frame.Kind, v any) any {
	if v == nil {
		return nil
	}
	if k == frame.Date {
		if t, ok := v.(time.Time); ok {
			return t.Format("2006-01-02")
		}
	}
	return v
}
