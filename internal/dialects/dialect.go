// Package dialects provides database-specific SQL dialect implementations,
// handling identifier quoting, placeholder translation, temp-table naming
// conventions, and per-backend insert-strategy eligibility.
package dialects

import "strings"

// Dialect defines database-specific behaviors. A dialect is selected once at
// connection-construction time and consulted by the loader for every
// backend-conditional decision.
type Dialect interface {
	// Name returns the canonical dialect identifier (e.g. "redshift").
	Name() string

	// QuoteRune returns the identifier quote character, or 0 when the
	// backend supports no identifier quoting at all.
	QuoteRune() rune

	// Placeholder returns the parameter placeholder for the given 1-based
	// position ("?" or "$1", "$2", ...).
	Placeholder(index int) string

	// TempName applies the backend's session-scoped table naming
	// convention to a bare table name. Backends whose temp tables are
	// keyword-based return the name unchanged.
	TempName(name string) string

	// HasTempPrefix reports whether the given name already follows the
	// backend's temp-table naming convention.
	HasTempPrefix(name string) bool

	// BulkLoadEligible reports whether a staged bulk load may target a
	// table with the given create/temp flags. Backends without a bulk
	// path always return false.
	BulkLoadEligible(createTable, temporary bool) bool

	// SupportsCtas reports whether materializing a fresh table through a
	// single CREATE TABLE AS SELECT beats row-by-row inserts here.
	SupportsCtas() bool

	// DropIfExistsSQL returns the conditional drop statement for a
	// qualified table name.
	DropIfExistsSQL(qualified string, temporary bool) string

	// CreateTablePrefix returns the opening keywords of a create
	// statement, carrying the backend's temp keyword for session-scoped
	// tables. Backends whose temp tables are name-based return the plain
	// form.
	CreateTablePrefix(temporary bool) string

	// CreateTableSQL returns the create statement for a qualified table
	// name and rendered column definitions.
	CreateTableSQL(qualified string, columnDefs []string, temporary bool) string
}

var registry = make(map[string]Dialect)

// Register registers a dialect by name. Later registrations replace earlier
// ones, which lets callers substitute a custom variant.
func Register(name string, d Dialect) {
	registry[strings.ToLower(name)] = d
}

// Get retrieves a registered dialect by name. Unknown names fall back to the
// generic dialect rather than failing, so unrecognized backends still get the
// plain parameterized-insert path.
func Get(name string) Dialect {
	if d, ok := registry[strings.ToLower(name)]; ok {
		return d
	}
	return registry["generic"]
}
