package tabload_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/coregx/tabload"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	return db
}

func TestLoadRoundTrip(t *testing.T) {
	db := openDB(t)
	c := tabload.Wrap(db, "sqlite")
	defer c.Close()

	f, err := tabload.NewFrame(
		tabload.Column{Name: "personId", Kind: tabload.Int32, Values: []any{int32(1), int32(2), int32(3)}},
		tabload.Column{Name: "fullName", Kind: tabload.Text, Values: []any{"Ada", "Grace", nil}},
		tabload.Column{Name: "score", Kind: tabload.Float, Values: []any{97.5, nil, 88.0}},
		tabload.Column{Name: "joined", Kind: tabload.Date, Values: []any{
			time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			nil,
		}},
	)
	require.NoError(t, err)

	l := tabload.New(c)
	err = l.Insert(context.Background(), tabload.TableTarget{Name: "people"}, f, tabload.Request{
		DropIfExists:   true,
		CreateTable:    true,
		SnakeCaseNames: true,
	})
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM people").Scan(&n))
	assert.Equal(t, 3, n)

	var name sql.NullString
	var score sql.NullFloat64
	var joined sql.NullString
	require.NoError(t, db.QueryRow(
		"SELECT full_name, score, joined FROM people WHERE person_id = 2").
		Scan(&name, &score, &joined))
	assert.Equal(t, "Grace", name.String)
	assert.False(t, score.Valid)
	assert.Equal(t, "2024-01-15", joined.String)

	require.NoError(t, db.QueryRow(
		"SELECT full_name FROM people WHERE person_id = 3").Scan(&name))
	assert.False(t, name.Valid)
}

func TestLoadAppendsToExistingTable(t *testing.T) {
	db := openDB(t)
	c := tabload.Wrap(db, "sqlite")
	defer c.Close()

	_, err := db.Exec("CREATE TABLE readings (n INTEGER)")
	require.NoError(t, err)

	f, err := tabload.NewFrame(
		tabload.Column{Name: "n", Kind: tabload.Int32, Values: []any{int32(10), int32(20)}},
	)
	require.NoError(t, err)

	l := tabload.New(c)
	require.NoError(t, l.Insert(context.Background(), tabload.TableTarget{Name: "readings"}, f, tabload.Request{}))
	require.NoError(t, l.Insert(context.Background(), tabload.TableTarget{Name: "readings"}, f, tabload.Request{}))

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM readings").Scan(&n))
	assert.Equal(t, 4, n)
}

func TestLoadBigint(t *testing.T) {
	db := openDB(t)
	c := tabload.Wrap(db, "sqlite")
	defer c.Close()

	big := int64(9007199254740993)
	f, err := tabload.NewFrame(
		tabload.Column{Name: "n", Kind: tabload.Int64, Values: []any{big}},
	)
	require.NoError(t, err)

	err = tabload.New(c).Insert(context.Background(), tabload.TableTarget{Name: "big"}, f, tabload.Request{
		CreateTable: true,
	})
	require.NoError(t, err)

	var got int64
	require.NoError(t, db.QueryRow("SELECT n FROM big").Scan(&got))
	assert.Equal(t, big, got)
}

func TestLoadManyBatches(t *testing.T) {
	db := openDB(t)
	c := tabload.Wrap(db, "sqlite")
	defer c.Close()

	values := make([]any, 2500)
	for i := range values {
		values[i] = int32(i)
	}
	f, err := tabload.NewFrame(
		tabload.Column{Name: "n", Kind: tabload.Int32, Values: values},
	)
	require.NoError(t, err)

	var fractions []float64
	l := tabload.New(c, tabload.WithBatchSize(1000))
	err = l.Insert(context.Background(), tabload.TableTarget{Name: "numbers"}, f, tabload.Request{
		CreateTable: true,
		Progress:    func(fr float64) { fractions = append(fractions, fr) },
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{0.4, 0.8, 1.0}, fractions)
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM numbers").Scan(&n))
	assert.Equal(t, 2500, n)
}
