package bulk

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/coregx/tabload/internal/frame"
	"github.com/coregx/tabload/internal/infer"
)

// HiveConfig carries the staging location for LOAD DATA.
type HiveConfig struct {
	// StagingDir is a directory readable by the Hive server (typically a
	// mounted distributed-filesystem path).
	StagingDir string
}

// HiveLoader stages a local CSV and issues LOAD DATA INPATH on the
// connection. The Hive server takes ownership of the staged file, so no
// cleanup happens on success.
type HiveLoader struct {
	cfg    HiveConfig
	stager Stager
}

// NewHiveLoader creates the adapter. A nil stager defaults to a file stager
// writing into StagingDir.
func NewHiveLoader(cfg HiveConfig, stager Stager) *HiveLoader {
	if stager == nil {
		stager = &FileStager{Dir: cfg.StagingDir}
	}
	return &HiveLoader{cfg: cfg, stager: stager}
}

// Validate checks the staging directory eagerly.
func (l *HiveLoader) Validate() error {
	if l.cfg.StagingDir == "" {
		return &ConfigError{Adapter: "hive", Missing: []string{"StagingDir"}}
	}
	info, err := os.Stat(l.cfg.StagingDir)
	if err != nil {
		return fmt.Errorf("bulk: hive: staging dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("bulk: hive: staging dir %s is not a directory", l.cfg.StagingDir)
	}
	return nil
}

// Load stages the frame and triggers LOAD DATA INPATH.
func (l *HiveLoader) Load(ctx context.Context, exec Executor, table Table, f *frame.Frame, _ []infer.ColumnDescriptor) error {
	var buf bytes.Buffer
	if err := writeCSV(&buf, f); err != nil {
		return fmt.Errorf("bulk: hive: encode staging csv: %w", err)
	}
	path, err := l.stager.Stage(ctx, "tabload-hive.csv", &buf)
	if err != nil {
		return err
	}
	return exec.Execute(ctx, fmt.Sprintf("LOAD DATA INPATH '%s' INTO TABLE %s;", path, table.Qualified))
}
