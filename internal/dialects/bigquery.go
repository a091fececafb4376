package dialects

import "strings"

// BigQueryDialect implements Google BigQuery behavior. Row-by-row inserts
// carry a high per-statement cost, so freshly created tables go through the
// CTAS shortcut; no staged bulk path is wired for this backend.
type BigQueryDialect struct{}

func init() {
	Register("bigquery", &BigQueryDialect{})
}

// Name returns "bigquery".
func (d *BigQueryDialect) Name() string { return "bigquery" }

// QuoteRune returns the BigQuery identifier quote character (backtick).
func (d *BigQueryDialect) QuoteRune() rune { return '`' }

// Placeholder returns the generic placeholder (always "?").
func (d *BigQueryDialect) Placeholder(_ int) string { return "?" }

// TempName returns the name unchanged.
func (d *BigQueryDialect) TempName(name string) string { return name }

// HasTempPrefix always reports false.
func (d *BigQueryDialect) HasTempPrefix(_ string) bool { return false }

// BulkLoadEligible always reports false.
func (d *BigQueryDialect) BulkLoadEligible(_, _ bool) bool { return false }

// SupportsCtas reports true.
func (d *BigQueryDialect) SupportsCtas() bool { return true }

// DropIfExistsSQL returns a standard conditional drop.
func (d *BigQueryDialect) DropIfExistsSQL(qualified string, _ bool) string {
	return "DROP TABLE IF EXISTS " + qualified + ";"
}

// CreateTablePrefix uses the TEMPORARY keyword for session-scoped tables.
func (d *BigQueryDialect) CreateTablePrefix(temporary bool) string {
	if temporary {
		return "CREATE TEMPORARY TABLE "
	}
	return "CREATE TABLE "
}

// CreateTableSQL returns a standard create statement.
func (d *BigQueryDialect) CreateTableSQL(qualified string, columnDefs []string, temporary bool) string {
	return d.CreateTablePrefix(temporary) + qualified + " (" + strings.Join(columnDefs, ", ") + ");"
}
