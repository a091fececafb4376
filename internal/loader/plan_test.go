package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coregx/tabload/internal/dialects"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name        string
		dialect     string
		createTable bool
		temporary   bool
		bulkLoad    bool
		rowCount    int
		expected    Strategy
	}{
		{
			name:    "redshift create without bulk uses ctas",
			dialect: "redshift", createTable: true, rowCount: 5,
			expected: CtasHack,
		},
		{
			name:    "redshift create with bulk prefers bulk",
			dialect: "redshift", createTable: true, bulkLoad: true, rowCount: 5,
			expected: BulkLoad,
		},
		{
			name:    "redshift temp create with bulk falls back to ctas",
			dialect: "redshift", createTable: true, temporary: true, bulkLoad: true, rowCount: 5,
			expected: CtasHack,
		},
		{
			name:    "generic create is direct",
			dialect: "generic", createTable: true, rowCount: 5,
			expected: DirectInsert,
		},
		{
			name:    "ctas needs rows",
			dialect: "redshift", createTable: true, rowCount: 0,
			expected: DirectInsert,
		},
		{
			name:    "ctas needs create",
			dialect: "redshift", rowCount: 5,
			expected: DirectInsert,
		},
		{
			name:    "hive bulk needs create",
			dialect: "hive", bulkLoad: true, rowCount: 5,
			expected: DirectInsert,
		},
		{
			name:    "hive bulk with create",
			dialect: "hive", createTable: true, bulkLoad: true, rowCount: 5,
			expected: BulkLoad,
		},
		{
			name:    "postgres bulk into existing durable table",
			dialect: "postgresql", bulkLoad: true, rowCount: 5,
			expected: BulkLoad,
		},
		{
			name:    "pdw without flags is direct",
			dialect: "pdw", rowCount: 5,
			expected: DirectInsert,
		},
		{
			name:    "bigquery create uses ctas even with bulk requested",
			dialect: "bigquery", createTable: true, bulkLoad: true, rowCount: 5,
			expected: CtasHack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := dialects.Get(tt.dialect)
			got := SelectStrategy(d, tt.createTable, tt.temporary, tt.bulkLoad, tt.rowCount)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "direct", DirectInsert.String())
	assert.Equal(t, "bulk", BulkLoad.String())
	assert.Equal(t, "ctas", CtasHack.String())
}
