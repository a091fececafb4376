// Package conn adapts a database/sql handle to the loader's connection
// collaborator, with prepared-statement caching and an explicit-transaction
// implementation of auto-commit suspension.
package conn

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coregx/tabload/internal/cache"
	"github.com/coregx/tabload/internal/dialects"
)

// SQLConn implements the loader's Conn over a *sql.DB. database/sql has no
// auto-commit switch, so SetAutoCommit(false) opens a transaction that
// subsequent statements join, and SetAutoCommit(true) commits it.
//
// SQLConn assumes exclusive use for the duration of one insert call and is
// not safe for concurrent calls.
type SQLConn struct {
	db        *sql.DB
	dialect   dialects.Dialect
	stmtCache *cache.StmtCache
	tx        *sql.Tx
}

// New creates an adapter over db with the named dialect. Unknown dialect
// names fall back to the generic dialect.
func New(db *sql.DB, dialectName string) *SQLConn {
	return &SQLConn{
		db:        db,
		dialect:   dialects.Get(dialectName),
		stmtCache: cache.New(),
	}
}

// Dialect returns the dialect selected at construction.
func (c *SQLConn) Dialect() dialects.Dialect {
	return c.dialect
}

// Execute runs a non-parameterized statement, inside the open transaction
// when auto-commit is suspended.
func (c *SQLConn) Execute(ctx context.Context, sqlText string) error {
	if c.tx != nil {
		_, err := c.tx.ExecContext(ctx, sqlText)
		return err
	}
	_, err := c.db.ExecContext(ctx, sqlText)
	return err
}

// ExecuteBatch runs the parameterized statement once per row, reusing a
// cached prepared statement for the SQL text.
func (c *SQLConn) ExecuteBatch(ctx context.Context, sqlText string, rows [][]any) error {
	stmt, ok := c.stmtCache.Get(sqlText)
	if !ok {
		var err error
		stmt, err = c.db.PrepareContext(ctx, sqlText)
		if err != nil {
			return err
		}
		c.stmtCache.Set(sqlText, stmt)
	}
	if c.tx != nil {
		stmt = c.tx.StmtContext(ctx, stmt)
		defer func() {
			_ = stmt.Close()
		}()
	}
	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("conn: batch row %d: %w", i, err)
		}
	}
	return nil
}

// AutoCommit reports whether statements currently commit individually.
func (c *SQLConn) AutoCommit() bool {
	return c.tx == nil
}

// SetAutoCommit toggles auto-commit. Turning it off opens a transaction;
// turning it back on commits that transaction.
func (c *SQLConn) SetAutoCommit(on bool) error {
	if on {
		if c.tx == nil {
			return nil
		}
		tx := c.tx
		c.tx = nil
		return tx.Commit()
	}
	if c.tx != nil {
		return nil
	}
	tx, err := c.db.BeginTx(context.Background(), nil)
	if err != nil {
		return err
	}
	c.tx = tx
	return nil
}

// ValidateInt64 verifies 64-bit integers round-trip through the driver
// without precision loss, using a value outside the 53-bit float range that
// a lossy transport would corrupt.
func (c *SQLConn) ValidateInt64(ctx context.Context) error {
	const probe = int64(9007199254740993) // 2^53 + 1
	sqlText := "SELECT " + c.dialect.Placeholder(1)
	var got int64
	if err := c.db.QueryRowContext(ctx, sqlText, probe).Scan(&got); err != nil {
		return err
	}
	if got != probe {
		return fmt.Errorf("conn: int64 probe returned %d, want %d", got, probe)
	}
	return nil
}

// Close releases the statement cache. The underlying *sql.DB stays open; it
// belongs to the caller.
func (c *SQLConn) Close() error {
	c.stmtCache.Clear()
	if c.tx != nil {
		tx := c.tx
		c.tx = nil
		return tx.Rollback()
	}
	return nil
}
