package dialects

import (
	"fmt"
	"strings"
)

// RedshiftDialect implements Amazon Redshift-specific behavior. Redshift
// charges a high per-statement cost for row-by-row inserts, so freshly
// created tables prefer the CTAS shortcut, and large loads go through
// S3-staged COPY.
type RedshiftDialect struct{}

func init() {
	Register("redshift", &RedshiftDialect{})
}

// Name returns "redshift".
func (d *RedshiftDialect) Name() string { return "redshift" }

// QuoteRune returns the Redshift identifier quote character.
func (d *RedshiftDialect) QuoteRune() rune { return '"' }

// Placeholder returns PostgreSQL-style placeholders ($1, $2, etc.).
func (d *RedshiftDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

// TempName returns the name unchanged; temp tables use the TEMP keyword.
func (d *RedshiftDialect) TempName(name string) string { return name }

// HasTempPrefix always reports false.
func (d *RedshiftDialect) HasTempPrefix(_ string) bool { return false }

// BulkLoadEligible permits S3-staged COPY into durable tables only; COPY
// cannot target session-scoped temp objects from external storage.
func (d *RedshiftDialect) BulkLoadEligible(_, temporary bool) bool {
	return !temporary
}

// SupportsCtas reports true.
func (d *RedshiftDialect) SupportsCtas() bool { return true }

// DropIfExistsSQL returns a standard conditional drop.
func (d *RedshiftDialect) DropIfExistsSQL(qualified string, _ bool) string {
	return "DROP TABLE IF EXISTS " + qualified + ";"
}

// CreateTablePrefix uses the TEMP keyword for session-scoped tables.
func (d *RedshiftDialect) CreateTablePrefix(temporary bool) string {
	if temporary {
		return "CREATE TEMP TABLE "
	}
	return "CREATE TABLE "
}

// CreateTableSQL returns a standard create statement.
func (d *RedshiftDialect) CreateTableSQL(qualified string, columnDefs []string, temporary bool) string {
	return d.CreateTablePrefix(temporary) + qualified + " (" + strings.Join(columnDefs, ", ") + ");"
}
