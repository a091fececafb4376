// Package bulk provides backend-specific bulk-load adapters that move data
// outside the row-by-row SQL path: object-storage staging plus COPY for
// Redshift, native COPY for PostgreSQL, an external loader process for PDW,
// and filesystem staging plus LOAD DATA for Hive.
//
// Each adapter is independent and replaceable; adding a backend means adding
// a new adapter without touching the others.
package bulk

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/coregx/tabload/internal/frame"
	"github.com/coregx/tabload/internal/infer"
)

// Executor runs non-parameterized statements on the borrowed connection.
// The loader's connection collaborator satisfies it.
type Executor interface {
	Execute(ctx context.Context, sql string) error
}

// Table identifies the bulk-load destination. Qualified is the escaped,
// optionally schema-qualified form for direct embedding in SQL; Schema and
// Name are the raw parts for load mechanisms that apply their own quoting.
type Table struct {
	Schema    string
	Name      string
	Qualified string
}

// Loader is one backend's bulk-load mechanism. Validate runs eagerly before
// any data movement; Load blocks until the backend reports success or
// failure and surfaces that signal unchanged.
type Loader interface {
	Validate() error
	Load(ctx context.Context, exec Executor, table Table, f *frame.Frame, cols []infer.ColumnDescriptor) error
}

// ConfigError reports missing credential or path fields, listed so the
// caller can fix the whole configuration in one pass.
type ConfigError struct {
	Adapter string
	Missing []string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("bulk: %s configuration missing fields: %s", e.Adapter, strings.Join(e.Missing, ", "))
}

// Stager places staged payloads where the backend's load mechanism can read
// them and returns the resulting location (an object URI or a file path).
type Stager interface {
	Stage(ctx context.Context, key string, r io.Reader) (string, error)
}

// Runner invokes an external loader process and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs external processes through os/exec.
type ExecRunner struct{}

// Run executes the command, returning the combined output in the error when
// the process exits non-zero.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("bulk: %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
