package bulk

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/coregx/tabload/internal/frame"
	"github.com/coregx/tabload/internal/infer"
)

// PostgresConfig carries what the native COPY path needs: direct access to
// the caller's *sql.DB opened with the lib/pq driver, and an optional
// default schema used when the target itself carries none.
type PostgresConfig struct {
	DB     *sql.DB
	Schema string
}

// PostgresCopyLoader streams rows through PostgreSQL's COPY protocol using
// lib/pq. No external staging is involved; the buffer lives inside the
// driver's copy stream.
type PostgresCopyLoader struct {
	cfg PostgresConfig
}

// NewPostgresCopyLoader creates the adapter.
func NewPostgresCopyLoader(cfg PostgresConfig) *PostgresCopyLoader {
	return &PostgresCopyLoader{cfg: cfg}
}

// Validate verifies the database handle is present.
func (l *PostgresCopyLoader) Validate() error {
	if l.cfg.DB == nil {
		return &ConfigError{Adapter: "postgres", Missing: []string{"DB"}}
	}
	return nil
}

// Load copies every row inside one transaction. The raw schema and table
// names are handed to pq, which applies its own identifier quoting to each
// part.
func (l *PostgresCopyLoader) Load(ctx context.Context, _ Executor, table Table, f *frame.Frame, cols []infer.ColumnDescriptor) error {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}

	tx, err := l.cfg.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bulk: postgres: begin copy transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	schema := table.Schema
	if schema == "" {
		schema = l.cfg.Schema
	}
	stmt, err := tx.PrepareContext(ctx, copyStatement(schema, table.Name, names))
	if err != nil {
		return fmt.Errorf("bulk: postgres: prepare copy: %w", err)
	}

	frameCols := f.Columns()
	row := make([]any, len(frameCols))
	for i := 0; i < f.Len(); i++ {
		for j, c := range frameCols {
			row[j] = copyValue(c.Kind, c.Values[i])
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			_ = stmt.Close()
			return fmt.Errorf("bulk: postgres: copy row %d: %w", i, err)
		}
	}

	// Final empty Exec flushes the copy stream.
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return fmt.Errorf("bulk: postgres: flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("bulk: postgres: close copy: %w", err)
	}
	return tx.Commit()
}

// copyStatement builds the COPY ... FROM STDIN form through pq so schema,
// table, and column names are each quoted as separate identifiers.
func copyStatement(schema, table string, names []string) string {
	if schema != "" {
		return pq.CopyInSchema(schema, table, names...)
	}
	return pq.CopyIn(table, names...)
}

func copyValue(k frame.Kind, v any) any {
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
