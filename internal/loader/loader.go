// Package loader implements the insert-strategy engine: per-call planning
// (type inference, identifier escaping, strategy selection) and execution
// through one of the batched-insert, bulk-load, or CTAS paths.
package loader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coregx/tabload/internal/bulk"
	"github.com/coregx/tabload/internal/dialects"
	"github.com/coregx/tabload/internal/escape"
	"github.com/coregx/tabload/internal/frame"
	"github.com/coregx/tabload/internal/infer"
	"github.com/coregx/tabload/internal/logger"
	"github.com/coregx/tabload/internal/metrics"
	"github.com/coregx/tabload/internal/tracer"
)

// DefaultBatchSize is the number of rows per batch when none is configured.
const DefaultBatchSize = 10000

// Loader writes tabular data into relational tables over a borrowed
// connection. A Loader is cheap and carries no per-call state; it is safe to
// reuse across calls, but not concurrently on one connection.
type Loader struct {
	conn      Conn
	log       logger.Logger
	tracer    tracer.Tracer
	reporter  metrics.Reporter
	batchSize int
}

// Option is a functional option for configuring a Loader.
type Option func(*Loader)

// WithLogger sets the structured logger.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) { ld.log = l }
}

// WithTracer sets the tracer used around insert calls and batches.
func WithTracer(t tracer.Tracer) Option {
	return func(ld *Loader) { ld.tracer = t }
}

// WithReporter sets the metrics reporter.
func WithReporter(r metrics.Reporter) Option {
	return func(ld *Loader) { ld.reporter = r }
}

// WithBatchSize sets the number of rows per batch. Non-positive values fall
// back to the default.
func WithBatchSize(n int) Option {
	return func(ld *Loader) {
		if n > 0 {
			ld.batchSize = n
		}
	}
}

// New creates a Loader over the given connection.
func New(conn Conn, opts ...Option) *Loader {
	l := &Loader{
		conn:      conn,
		log:       logger.Noop{},
		tracer:    tracer.NoopTracer{},
		reporter:  metrics.Noop{},
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Request holds the per-call flags of one insert.
type Request struct {
	// DropIfExists issues a conditional drop before anything else.
	DropIfExists bool
	// CreateTable creates the destination table from the inferred types.
	CreateTable bool
	// BulkLoad requests the staged bulk-load strategy where eligible.
	BulkLoad bool
	// UseMppBulkLoad is the deprecated alias for BulkLoad.
	//
	// Deprecated: set BulkLoad instead.
	UseMppBulkLoad bool
	// SnakeCaseNames translates camelCase column names to snake_case.
	SnakeCaseNames bool
	// Progress, when set, receives fractional progress after each batch.
	Progress func(fraction float64)
	// Bulk is the backend-specific bulk adapter; required when the
	// bulk-load strategy is selected.
	Bulk bulk.Loader
}

// Insert writes the frame into the target table, choosing the execution
// strategy from the dialect and request flags. The caller blocks until the
// whole insert completes or fails.
func (l *Loader) Insert(ctx context.Context, target TableTarget, f *frame.Frame, req Request) error {
	if f == nil || f.Width() == 0 {
		return frame.ErrNoColumns
	}
	d := l.conn.Dialect()

	if req.UseMppBulkLoad && !req.BulkLoad {
		l.log.Warn("tabload: UseMppBulkLoad is deprecated, substituting BulkLoad",
			"table", target.Name)
		req.BulkLoad = true
	}
	if d.HasTempPrefix(target.Name) && !target.Temporary {
		l.log.Warn("tabload: table name follows the temp naming convention, treating as temporary",
			"table", target.Name)
		target.Temporary = true
	}

	plan, quoted, qualified, err := l.plan(d, target, f, req)
	if err != nil {
		return err
	}

	start := time.Now()
	ctx, span := l.tracer.StartSpan(ctx, "tabload.insert")
	err = l.execute(ctx, d, plan, quoted, qualified, f, req)
	tracer.AddLoadAttributes(span, &tracer.LoadMetadata{
		Dialect:  d.Name(),
		Table:    target.Name,
		Strategy: plan.Strategy.String(),
		Rows:     f.Len(),
		Duration: time.Since(start),
		Error:    err,
	})
	span.End()
	l.reporter.ObserveLoad(d.Name(), target.Name, plan.Strategy.String(), f.Len(), time.Since(start), err)
	return err
}

// plan infers column types, escapes identifiers, and selects the strategy.
func (l *Loader) plan(d dialects.Dialect, target TableTarget, f *frame.Frame, req Request) (InsertPlan, []string, string, error) {
	descs := infer.DescribeAll(f)
	if req.SnakeCaseNames {
		for i := range descs {
			descs[i].Name = frame.ToSnake(descs[i].Name)
		}
	}

	names := make([]string, len(descs))
	for i, desc := range descs {
		names[i] = desc.Name
		if escape.IsReserved(desc.Name) {
			l.log.Warn("tabload: column name collides with a reserved word",
				"column", desc.Name, "table", target.Name)
		}
	}
	if escape.IsReserved(target.Name) {
		l.log.Warn("tabload: table name collides with a reserved word",
			"table", target.Name)
	}

	quote := d.QuoteRune()
	quoted, err := escape.Identifiers(names, quote)
	if err != nil {
		return InsertPlan{}, nil, "", err
	}
	qualified, err := l.qualifiedName(d, target, quote)
	if err != nil {
		return InsertPlan{}, nil, "", err
	}

	plan := InsertPlan{
		Target:   target,
		Columns:  descs,
		Strategy: SelectStrategy(d, req.CreateTable, target.Temporary, req.BulkLoad, f.Len()),
	}
	return plan, quoted, qualified, nil
}

// execute runs the drop/create preamble and dispatches to the chosen
// strategy.
func (l *Loader) execute(ctx context.Context, d dialects.Dialect, plan InsertPlan, quoted []string, qualified string, f *frame.Frame, req Request) error {
	if req.DropIfExists {
		if err := l.conn.Execute(ctx, d.DropIfExistsSQL(qualified, plan.Target.Temporary)); err != nil {
			return err
		}
	}

	// The CTAS statement creates the table itself.
	if req.CreateTable && plan.Strategy != CtasHack {
		defs := make([]string, len(plan.Columns))
		for i, col := range plan.Columns {
			defs[i] = quoted[i] + " " + col.SQLType
		}
		if err := l.conn.Execute(ctx, d.CreateTableSQL(qualified, defs, plan.Target.Temporary)); err != nil {
			return err
		}
	}

	switch plan.Strategy {
	case BulkLoad:
		return l.execBulk(ctx, qualified, plan, f, req.Bulk)
	case CtasHack:
		return l.execCtas(ctx, qualified, quoted, plan, f)
	default:
		return l.execDirect(ctx, qualified, quoted, plan, f, req.Progress)
	}
}

// qualifiedName renders the escaped, optionally schema-qualified table name.
// Prefix-convention temp names are session-scoped and never combine with a
// schema; the prefix itself stays outside the quoted part.
func (l *Loader) qualifiedName(d dialects.Dialect, target TableTarget, quote rune) (string, error) {
	name := target.Name
	if target.Temporary {
		name = d.TempName(name)
	}
	if d.HasTempPrefix(name) {
		base := strings.TrimLeft(name, "#")
		esc, err := escape.Identifier(base, quote)
		if err != nil {
			return "", err
		}
		if target.Schema != "" {
			l.log.Warn("tabload: schema ignored for prefix-convention temp table",
				"schema", target.Schema, "table", name)
		}
		return name[:len(name)-len(base)] + esc, nil
	}

	esc, err := escape.Identifier(name, quote)
	if err != nil {
		return "", err
	}
	if target.Schema == "" {
		return esc, nil
	}
	schema, err := escape.Identifier(target.Schema, quote)
	if err != nil {
		return "", err
	}
	return schema + "." + esc, nil
}

// execBulk validates the adapter configuration, then hands the frame over.
// Validation failures abort before any data movement.
func (l *Loader) execBulk(ctx context.Context, qualified string, plan InsertPlan, f *frame.Frame, adapter bulk.Loader) error {
	if adapter == nil {
		return ErrBulkNotConfigured
	}
	if err := adapter.Validate(); err != nil {
		return fmt.Errorf("tabload: bulk configuration: %w", err)
	}
	l.log.Debug("tabload: bulk load", "table", plan.Target.Name, "rows", f.Len())
	return adapter.Load(ctx, l.conn, bulk.Table{
		Schema:    plan.Target.Schema,
		Name:      plan.Target.Name,
		Qualified: qualified,
	}, f, plan.Columns)
}
