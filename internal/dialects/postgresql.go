package dialects

import (
	"fmt"
	"strings"
)

// PostgresDialect implements PostgreSQL-specific behavior. Bulk loading is
// available through the native COPY path, but only into durable tables:
// staged loads cannot target session-scoped temp objects.
type PostgresDialect struct{}

func init() {
	Register("postgresql", &PostgresDialect{})
	Register("postgres", &PostgresDialect{})
}

// Name returns "postgresql".
func (d *PostgresDialect) Name() string { return "postgresql" }

// QuoteRune returns the PostgreSQL identifier quote character.
func (d *PostgresDialect) QuoteRune() rune { return '"' }

// Placeholder returns PostgreSQL placeholder format ($1, $2, etc.).
func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

// TempName returns the name unchanged; temp tables use the TEMP keyword.
func (d *PostgresDialect) TempName(name string) string { return name }

// HasTempPrefix always reports false.
func (d *PostgresDialect) HasTempPrefix(_ string) bool { return false }

// BulkLoadEligible permits staged loads into durable tables only.
func (d *PostgresDialect) BulkLoadEligible(_, temporary bool) bool {
	return !temporary
}

// SupportsCtas reports false: multi-row parameterized inserts are cheap here.
func (d *PostgresDialect) SupportsCtas() bool { return false }

// DropIfExistsSQL returns a standard conditional drop.
func (d *PostgresDialect) DropIfExistsSQL(qualified string, _ bool) string {
	return "DROP TABLE IF EXISTS " + qualified + ";"
}

// CreateTablePrefix uses the TEMP keyword for session-scoped tables.
func (d *PostgresDialect) CreateTablePrefix(temporary bool) string {
	if temporary {
		return "CREATE TEMP TABLE "
	}
	return "CREATE TABLE "
}

// CreateTableSQL returns a standard create statement.
func (d *PostgresDialect) CreateTableSQL(qualified string, columnDefs []string, temporary bool) string {
	return d.CreateTablePrefix(temporary) + qualified + " (" + strings.Join(columnDefs, ", ") + ");"
}
