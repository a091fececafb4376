package dialects

import (
	"fmt"
	"strings"
)

// PDWDialect implements Microsoft Parallel Data Warehouse behavior. Temp
// tables follow the SQL Server "#name" prefix convention and live in the
// tempdb catalog, which changes both the drop check and the qualified name.
type PDWDialect struct{}

func init() {
	Register("pdw", &PDWDialect{})
}

// Name returns "pdw".
func (d *PDWDialect) Name() string { return "pdw" }

// QuoteRune returns the quoted-identifier character.
func (d *PDWDialect) QuoteRune() rune { return '"' }

// Placeholder returns the generic placeholder (always "?").
func (d *PDWDialect) Placeholder(_ int) string { return "?" }

// TempName prefixes the name with "#" unless it already carries the prefix.
func (d *PDWDialect) TempName(name string) string {
	if strings.HasPrefix(name, "#") {
		return name
	}
	return "#" + name
}

// HasTempPrefix reports whether the name follows the "#name" convention.
func (d *PDWDialect) HasTempPrefix(name string) bool {
	return strings.HasPrefix(name, "#")
}

// BulkLoadEligible permits dwloader-staged loads into durable tables only.
func (d *PDWDialect) BulkLoadEligible(_, temporary bool) bool {
	return !temporary
}

// SupportsCtas reports true.
func (d *PDWDialect) SupportsCtas() bool { return true }

// DropIfExistsSQL checks the object catalog before dropping; temp objects
// live in the session-scoped tempdb catalog.
func (d *PDWDialect) DropIfExistsSQL(qualified string, temporary bool) string {
	catalog := qualified
	if temporary {
		catalog = "tempdb.." + qualified
	}
	return fmt.Sprintf("IF OBJECT_ID('%s', 'U') IS NOT NULL DROP TABLE %s;", catalog, qualified)
}

// CreateTablePrefix is always the plain form; temp tables are marked by the
// "#name" prefix already applied by TempName, not by a keyword.
func (d *PDWDialect) CreateTablePrefix(_ bool) string {
	return "CREATE TABLE "
}

// CreateTableSQL returns a standard create statement.
func (d *PDWDialect) CreateTableSQL(qualified string, columnDefs []string, temporary bool) string {
	return d.CreateTablePrefix(temporary) + qualified + " (" + strings.Join(columnDefs, ", ") + ");"
}
