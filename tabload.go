// Package tabload loads tabular data into relational tables across multiple
// SQL dialects, choosing among parameterized batched inserts, backend-native
// bulk loading, and create-as-select materialization depending on target
// capabilities. Column types are inferred from the data, identifiers are
// validated and quoted per dialect, and large data sets are streamed in
// fixed-size batches under a suspended auto-commit.
package tabload

import (
	"database/sql"

	"github.com/coregx/tabload/internal/bulk"
	"github.com/coregx/tabload/internal/conn"
	"github.com/coregx/tabload/internal/frame"
	"github.com/coregx/tabload/internal/loader"
	"github.com/coregx/tabload/internal/logger"
	"github.com/coregx/tabload/internal/metrics"
	"github.com/coregx/tabload/internal/tracer"
)

type (
	// Frame is an ordered collection of equal-length typed columns.
	Frame = frame.Frame
	// Column is one named, typed column of values; nil cells are SQL NULL.
	Column = frame.Column
	// Kind identifies the semantic type of a column's values.
	Kind = frame.Kind

	// Loader writes frames into relational tables over a borrowed connection.
	Loader = loader.Loader
	// Option is a functional option for configuring a Loader.
	Option = loader.Option
	// Request holds the per-call flags of one insert.
	Request = loader.Request
	// TableTarget identifies the destination table.
	TableTarget = loader.TableTarget
	// Strategy identifies how rows reach the server.
	Strategy = loader.Strategy
	// Conn is the connection collaborator borrowed for one insert call.
	Conn = loader.Conn

	// BulkLoader is one backend's bulk-load mechanism.
	BulkLoader = bulk.Loader
	// BulkTable identifies the bulk-load destination handed to adapters.
	BulkTable = bulk.Table
	// RedshiftS3Config configures S3-staged COPY into Redshift.
	RedshiftS3Config = bulk.RedshiftS3Config
	// PostgresConfig configures native COPY into PostgreSQL.
	PostgresConfig = bulk.PostgresConfig
	// PDWConfig configures the external dwloader invocation.
	PDWConfig = bulk.PDWConfig
	// HiveConfig configures filesystem-staged LOAD DATA into Hive.
	HiveConfig = bulk.HiveConfig

	// Logger is the structured logging interface consumed by the loader.
	Logger = logger.Logger
	// Tracer is the tracing interface consumed by the loader.
	Tracer = tracer.Tracer
	// Reporter receives batch and progress metrics.
	Reporter = metrics.Reporter
)

// Column kinds.
const (
	Int32       = frame.Int32
	Int64       = frame.Int64
	Float       = frame.Float
	Date        = frame.Date
	DateTime    = frame.DateTime
	Text        = frame.Text
	Categorical = frame.Categorical
)

// Execution strategies.
const (
	DirectInsert = loader.DirectInsert
	BulkLoad     = loader.BulkLoad
	CtasHack     = loader.CtasHack
)

// Re-export core constructors and options.
var (
	NewFrame = frame.New
	New      = loader.New

	WithLogger    = loader.WithLogger
	WithTracer    = loader.WithTracer
	WithReporter  = loader.WithReporter
	WithBatchSize = loader.WithBatchSize

	NewRedshiftLoader     = bulk.NewRedshiftLoader
	NewPostgresCopyLoader = bulk.NewPostgresCopyLoader
	NewPDWLoader          = bulk.NewPDWLoader
	NewHiveLoader         = bulk.NewHiveLoader

	NewSlogLogger       = logger.NewSlog
	NewOtelTracer       = tracer.NewOtelTracer
	NewPrometheusReport = metrics.NewPrometheus
)

// Wrap adapts a *sql.DB to the loader's connection collaborator using the
// named dialect ("postgresql", "redshift", "pdw", "hive", "bigquery", or
// anything else for the generic dialect).
func Wrap(db *sql.DB, dialect string) *conn.SQLConn {
	return conn.New(db, dialect)
}
