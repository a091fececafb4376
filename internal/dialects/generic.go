package dialects

import "strings"

// GenericDialect is the fallback for backends without a dedicated variant.
// It supports no identifier quoting, no bulk loading, and no CTAS shortcut,
// so every insert takes the plain parameterized path.
type GenericDialect struct{}

func init() {
	Register("generic", &GenericDialect{})
	Register("sqlite", &GenericDialect{})
	Register("sqlite3", &GenericDialect{})
	Register("mysql", &GenericDialect{})
}

// Name returns "generic".
func (d *GenericDialect) Name() string { return "generic" }

// QuoteRune returns 0: identifier quoting is not assumed to be available.
func (d *GenericDialect) QuoteRune() rune { return 0 }

// Placeholder returns the generic placeholder (always "?").
func (d *GenericDialect) Placeholder(_ int) string { return "?" }

// TempName returns the name unchanged; temp tables are keyword-based.
func (d *GenericDialect) TempName(name string) string { return name }

// HasTempPrefix always reports false.
func (d *GenericDialect) HasTempPrefix(_ string) bool { return false }

// BulkLoadEligible always reports false.
func (d *GenericDialect) BulkLoadEligible(_, _ bool) bool { return false }

// SupportsCtas reports false: row-by-row inserts are fine here.
func (d *GenericDialect) SupportsCtas() bool { return false }

// DropIfExistsSQL returns a standard conditional drop.
func (d *GenericDialect) DropIfExistsSQL(qualified string, _ bool) string {
	return "DROP TABLE IF EXISTS " + qualified + ";"
}

// CreateTablePrefix uses the TEMPORARY keyword for session-scoped tables.
func (d *GenericDialect) CreateTablePrefix(temporary bool) string {
	if temporary {
		return "CREATE TEMPORARY TABLE "
	}
	return "CREATE TABLE "
}

// CreateTableSQL returns a standard create statement.
func (d *GenericDialect) CreateTableSQL(qualified string, columnDefs []string, temporary bool) string {
	return d.CreateTablePrefix(temporary) + qualified + " (" + strings.Join(columnDefs, ", ") + ");"
}
