package loader

import (
	"github.com/coregx/tabload/internal/dialects"
	"github.com/coregx/tabload/internal/infer"
)

// Strategy identifies how rows reach the server.
type Strategy int

const (
	// DirectInsert streams rows through a parameterized INSERT in batches.
	DirectInsert Strategy = iota
	// BulkLoad stages the data externally and triggers a backend-native
	// load mechanism.
	BulkLoad
	// CtasHack materializes the table through a single CREATE TABLE AS
	// SELECT built from literal row unions.
	CtasHack
)

// String returns the strategy name used in spans and metrics labels.
func (s Strategy) String() string {
	switch s {
	case BulkLoad:
		return "bulk"
	case CtasHack:
		return "ctas"
	default:
		return "direct"
	}
}

// TableTarget identifies the destination table.
type TableTarget struct {
	// Schema optionally qualifies the table. It is ignored, with a
	// warning, for prefix-convention temp names: exactly one naming
	// convention applies per dialect.
	Schema string
	Name   string
	// Temporary marks the table as session-scoped.
	Temporary bool
}

// InsertPlan is the immutable outcome of planning one insert call.
type InsertPlan struct {
	Target   TableTarget
	Columns  []infer.ColumnDescriptor
	Strategy Strategy
}

// SelectStrategy decides which execution strategy to run. It is a pure
// function; the first matching rule wins.
//
// Bulk loaders need durable staged storage, which most dialects disallow for
// session-scoped temp objects, so eligibility is delegated to the dialect.
// The CTAS shortcut applies to dialects whose per-statement insert overhead
// dominates, and only when the table is freshly created with at least one
// row to materialize.
func SelectStrategy(d dialects.Dialect, createTable, temporary, bulkLoad bool, rowCount int) Strategy {
	if bulkLoad && d.BulkLoadEligible(createTable, temporary) {
		return BulkLoad
	}
	if d.SupportsCtas() && createTable && rowCount > 0 {
		return CtasHack
	}
	return DirectInsert
}
