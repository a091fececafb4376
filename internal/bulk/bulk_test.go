package bulk

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/tabload/internal/frame"
)

// recordingExecutor captures statements issued by adapters.
type recordingExecutor struct {
	statements []string
}

func (e *recordingExecutor) Execute(_ context.Context, sql string) error {
	e.statements = append(e.statements, sql)
	return nil
}

// recordingStager captures the staged payload and returns a fixed location.
type recordingStager struct {
	key      string
	payload  []byte
	location string
}

func (s *recordingStager) Stage(_ context.Context, key string, r io.Reader) (string, error) {
	s.key = key
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.payload = data
	return s.location, nil
}

// recordingRunner captures external process invocations.
type recordingRunner struct {
	name string
	args []string
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.name = name
	r.args = args
	return nil
}

func stagingFrame(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.Column{Name: "id", Kind: frame.Int32, Values: []any{int32(1), int32(2)}},
		frame.Column{Name: "note", Kind: frame.Text, Values: []any{"hello, world", nil}},
	)
	require.NoError(t, err)
	return f
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Adapter: "redshift", Missing: []string{"AccessKey", "Bucket"}}
	assert.Equal(t, "bulk: redshift configuration missing fields: AccessKey, Bucket", err.Error())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, stagingFrame(t)))

	// The comma-bearing cell is quoted; the absent cell is an empty field.
	assert.Equal(t, "1,\"hello, world\"\n2,\n", buf.String())
}

func TestRedshiftValidate(t *testing.T) {
	l := NewRedshiftLoader(RedshiftS3Config{Region: "us-east-1"}, nil)
	err := l.Validate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"AccessKey", "SecretKey", "Bucket", "ObjectKey"}, cfgErr.Missing)

	full := RedshiftS3Config{
		AccessKey: "AK", SecretKey: "SK", Region: "us-east-1",
		Bucket: "stage", ObjectKey: "load.csv.gz",
	}
	assert.NoError(t, NewRedshiftLoader(full, nil).Validate())
}

func TestRedshiftLoad(t *testing.T) {
	cfg := RedshiftS3Config{
		AccessKey: "AK", SecretKey: "SK", Region: "us-east-1",
		Bucket: "stage", ObjectKey: "load.csv.gz",
	}
	stager := &recordingStager{location: "s3://stage/load.csv.gz"}
	exec := &recordingExecutor{}

	err := NewRedshiftLoader(cfg, stager).Load(context.Background(), exec,
		Table{Name: "events", Qualified: "events"}, stagingFrame(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "load.csv.gz", stager.key)

	// The staged object is gzip-compressed CSV.
	gz, err := gzip.NewReader(bytes.NewReader(stager.payload))
	require.NoError(t, err)
	plain, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "1,\"hello, world\"\n2,\n", string(plain))

	require.Len(t, exec.statements, 1)
	assert.Equal(t,
		"COPY events FROM 's3://stage/load.csv.gz' "+
			"CREDENTIALS 'aws_access_key_id=AK;aws_secret_access_key=SK' "+
			"REGION 'us-east-1' CSV GZIP EMPTYASNULL DATEFORMAT 'auto' TIMEFORMAT 'auto';",
		exec.statements[0])
}

func TestPostgresCopyStatement(t *testing.T) {
	// Schema, table, and column names are quoted as separate identifiers;
	// a schema-qualified target never collapses into one quoted string.
	assert.Equal(t,
		`COPY "stats"."events" ("id", "name") FROM STDIN`,
		copyStatement("stats", "events", []string{"id", "name"}))
	assert.Equal(t,
		`COPY "events" ("id") FROM STDIN`,
		copyStatement("", "events", []string{"id"}))
}

func TestPDWValidate(t *testing.T) {
	err := NewPDWLoader(PDWConfig{}, nil).Validate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"LoaderPath", "Server"}, cfgErr.Missing)

	// A configured but missing executable fails too.
	err = NewPDWLoader(PDWConfig{LoaderPath: "/no/such/dwloader", Server: "pdw-ctl"}, nil).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loader executable")
}

func TestPDWLoad(t *testing.T) {
	runner := &recordingRunner{}
	cfg := PDWConfig{LoaderPath: "/opt/dwloader", Server: "pdw-ctl", StagingDir: t.TempDir()}

	err := NewPDWLoader(cfg, runner).Load(context.Background(), nil,
		Table{Name: "events", Qualified: "events"}, stagingFrame(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "/opt/dwloader", runner.name)
	require.Len(t, runner.args, 12)
	assert.Equal(t, []string{"-S", "pdw-ctl", "-M", "append"}, runner.args[:4])
	assert.Equal(t, "-i", runner.args[4])
	assert.Equal(t, []string{"-T", "events", "-t", ",", "-r", "\n"}, runner.args[6:])

	// The staged file is removed once the loader exits.
	_, err = os.Stat(runner.args[5])
	assert.True(t, os.IsNotExist(err))
}

func TestHiveValidate(t *testing.T) {
	err := NewHiveLoader(HiveConfig{}, nil).Validate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"StagingDir"}, cfgErr.Missing)

	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	err = NewHiveLoader(HiveConfig{StagingDir: file}, nil).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")

	assert.NoError(t, NewHiveLoader(HiveConfig{StagingDir: t.TempDir()}, nil).Validate())
}

func TestHiveLoad(t *testing.T) {
	stager := &recordingStager{location: "/warehouse/staging/tabload-hive-1.csv"}
	exec := &recordingExecutor{}

	err := NewHiveLoader(HiveConfig{StagingDir: "/warehouse/staging"}, stager).
		Load(context.Background(), exec, Table{Name: "events", Qualified: "events"}, stagingFrame(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "tabload-hive.csv", stager.key)
	require.Len(t, exec.statements, 1)
	assert.Equal(t,
		"LOAD DATA INPATH '/warehouse/staging/tabload-hive-1.csv' INTO TABLE events;",
		exec.statements[0])
}

func TestFileStager(t *testing.T) {
	dir := t.TempDir()
	s := &FileStager{Dir: dir}

	path, err := s.Stage(context.Background(), "stage.csv", strings.NewReader("a,b\n"))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "stage-"))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}
