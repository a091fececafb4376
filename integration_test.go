//go:build integration
// +build integration

package tabload_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/tabload"
)

// openFromEnv connects through the named driver using a DSN from the
// environment, skipping the test when the variable is unset.
func openFromEnv(t *testing.T, driver, envVar string) *sql.DB {
	t.Helper()
	dsn := os.Getenv(envVar)
	if dsn == "" {
		t.Skipf("%s not set; skipping %s integration test", envVar, driver)
	}
	db, err := sql.Open(driver, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx))
	return db
}

func peopleFrame(t *testing.T) *tabload.Frame {
	t.Helper()
	f, err := tabload.NewFrame(
		tabload.Column{Name: "person_id", Kind: tabload.Int32, Values: []any{int32(1), int32(2), int32(3)}},
		tabload.Column{Name: "name", Kind: tabload.Text, Values: []any{"Ada", "Grace", nil}},
		tabload.Column{Name: "joined", Kind: tabload.Date, Values: []any{
			time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			nil,
		}},
	)
	require.NoError(t, err)
	return f
}

func requireCount(t *testing.T, db *sql.DB, table string, want int) {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	assert.Equal(t, want, n)
}

func TestIntegrationMySQL(t *testing.T) {
	db := openFromEnv(t, "mysql", "MYSQL_TEST_DSN")
	c := tabload.Wrap(db, "mysql")
	defer c.Close()

	err := tabload.New(c).Insert(context.Background(),
		tabload.TableTarget{Name: "tabload_people"}, peopleFrame(t), tabload.Request{
			DropIfExists: true,
			CreateTable:  true,
		})
	require.NoError(t, err)
	requireCount(t, db, "tabload_people", 3)
}

func TestIntegrationPostgres(t *testing.T) {
	db := openFromEnv(t, "postgres", "POSTGRES_TEST_DSN")
	c := tabload.Wrap(db, "postgresql")
	defer c.Close()

	l := tabload.New(c)
	err := l.Insert(context.Background(),
		tabload.TableTarget{Name: "tabload_people"}, peopleFrame(t), tabload.Request{
			DropIfExists: true,
			CreateTable:  true,
		})
	require.NoError(t, err)
	requireCount(t, db, "tabload_people", 3)

	var name sql.NullString
	require.NoError(t, db.QueryRow(
		"SELECT name FROM tabload_people WHERE person_id = 3").Scan(&name))
	assert.False(t, name.Valid)
}

func TestIntegrationPostgresCopy(t *testing.T) {
	db := openFromEnv(t, "postgres", "POSTGRES_TEST_DSN")
	c := tabload.Wrap(db, "postgresql")
	defer c.Close()

	err := tabload.New(c).Insert(context.Background(),
		tabload.TableTarget{Name: "tabload_copy"}, peopleFrame(t), tabload.Request{
			DropIfExists: true,
			CreateTable:  true,
			BulkLoad:     true,
			Bulk:         tabload.NewPostgresCopyLoader(tabload.PostgresConfig{DB: db}),
		})
	require.NoError(t, err)
	requireCount(t, db, "tabload_copy", 3)
}

func TestIntegrationSQLiteCgo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabload.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	c := tabload.Wrap(db, "sqlite3")
	defer c.Close()

	err = tabload.New(c).Insert(context.Background(),
		tabload.TableTarget{Name: "tabload_people"}, peopleFrame(t), tabload.Request{
			CreateTable: true,
		})
	require.NoError(t, err)
	requireCount(t, db, "tabload_people", 3)
}
