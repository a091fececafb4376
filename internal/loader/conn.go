package loader

import (
	"context"

	"github.com/coregx/tabload/internal/dialects"
)

// Conn is the connection collaborator the loader borrows for the duration of
// one insert call. Establishing and closing the connection, as well as the
// wire protocol underneath, belong to the caller.
//
// The loader's only mutation of connection state is the auto-commit toggle,
// which it always restores before returning.
type Conn interface {
	// Dialect returns the dialect selected for this connection.
	Dialect() dialects.Dialect

	// Execute runs a non-parameterized statement.
	Execute(ctx context.Context, sql string) error

	// ExecuteBatch runs a parameterized statement once per row.
	ExecuteBatch(ctx context.Context, sql string, rows [][]any) error

	// AutoCommit reports whether the connection currently commits each
	// statement individually.
	AutoCommit() bool

	// SetAutoCommit toggles auto-commit mode.
	SetAutoCommit(on bool) error

	// ValidateInt64 verifies that 64-bit integers survive the transport
	// to this backend without precision loss.
	ValidateInt64(ctx context.Context) error
}
