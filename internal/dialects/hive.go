package dialects

import "strings"

// HiveDialect implements Apache Hive behavior. Bulk loads stage a file on
// the distributed filesystem and issue LOAD DATA, which requires the target
// table to be created as part of the same call.
type HiveDialect struct{}

func init() {
	Register("hive", &HiveDialect{})
}

// Name returns "hive".
func (d *HiveDialect) Name() string { return "hive" }

// QuoteRune returns the Hive identifier quote character (backtick).
func (d *HiveDialect) QuoteRune() rune { return '`' }

// Placeholder returns the generic placeholder (always "?").
func (d *HiveDialect) Placeholder(_ int) string { return "?" }

// TempName returns the name unchanged; temp tables use the TEMPORARY keyword.
func (d *HiveDialect) TempName(name string) string { return name }

// HasTempPrefix always reports false.
func (d *HiveDialect) HasTempPrefix(_ string) bool { return false }

// BulkLoadEligible permits staged loads only when the table is created by
// this call; loading into pre-existing tables is not supported.
func (d *HiveDialect) BulkLoadEligible(createTable, _ bool) bool {
	return createTable
}

// SupportsCtas reports true.
func (d *HiveDialect) SupportsCtas() bool { return true }

// DropIfExistsSQL returns a standard conditional drop.
func (d *HiveDialect) DropIfExistsSQL(qualified string, _ bool) string {
	return "DROP TABLE IF EXISTS " + qualified + ";"
}

// CreateTablePrefix uses the TEMPORARY keyword for session-scoped tables.
func (d *HiveDialect) CreateTablePrefix(temporary bool) string {
	if temporary {
		return "CREATE TEMPORARY TABLE "
	}
	return "CREATE TABLE "
}

// CreateTableSQL returns a standard create statement.
func (d *HiveDialect) CreateTableSQL(qualified string, columnDefs []string, temporary bool) string {
	return d.CreateTablePrefix(temporary) + qualified + " (" + strings.Join(columnDefs, ", ") + ");"
}
