package bulk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coregx/tabload/internal/frame"
	"github.com/coregx/tabload/internal/infer"
)

// PDWConfig carries the external dwloader invocation parameters.
type PDWConfig struct {
	// LoaderPath is the dwloader executable.
	LoaderPath string
	// Server is the PDW control node address passed to the loader.
	Server string
	// StagingDir receives the staged CSV; defaults to the system temp dir.
	StagingDir string
}

// PDWLoader stages a local CSV and hands it to the external dwloader
// process, which performs the actual parallel load.
type PDWLoader struct {
	cfg    PDWConfig
	runner Runner
}

// NewPDWLoader creates the adapter. A nil runner defaults to os/exec.
func NewPDWLoader(cfg PDWConfig, runner Runner) *PDWLoader {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &PDWLoader{cfg: cfg, runner: runner}
}

// Validate checks the loader path and server eagerly, including that the
// executable actually exists.
func (l *PDWLoader) Validate() error {
	var missing []string
	if l.cfg.LoaderPath == "" {
		missing = append(missing, "LoaderPath")
	}
	if l.cfg.Server == "" {
		missing = append(missing, "Server")
	}
	if len(missing) > 0 {
		return &ConfigError{Adapter: "pdw", Missing: missing}
	}
	if _, err := os.Stat(l.cfg.LoaderPath); err != nil {
		return fmt.Errorf("bulk: pdw: loader executable: %w", err)
	}
	return nil
}

// Load stages the frame to a CSV file and runs dwloader against it. The
// staged file is removed after the process exits.
func (l *PDWLoader) Load(ctx context.Context, _ Executor, table Table, f *frame.Frame, _ []infer.ColumnDescriptor) error {
	dir := l.cfg.StagingDir
	if dir == "" {
		dir = os.TempDir()
	}
	staged, err := os.CreateTemp(dir, "tabload-pdw-*.csv")
	if err != nil {
		return fmt.Errorf("bulk: pdw: create staging file: %w", err)
	}
	path := staged.Name()
	defer func() {
		_ = os.Remove(path)
	}()

	if err := writeCSV(staged, f); err != nil {
		_ = staged.Close()
		return fmt.Errorf("bulk: pdw: write staging file: %w", err)
	}
	if err := staged.Close(); err != nil {
		return fmt.Errorf("bulk: pdw: write staging file: %w", err)
	}

	return l.runner.Run(ctx, l.cfg.LoaderPath,
		"-S", l.cfg.Server,
		"-M", "append",
		"-i", filepath.Clean(path),
		"-T", table.Qualified,
		"-t", ",",
		"-r", "\n",
	)
}
