package bulk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStager writes staged payloads into a directory and returns the file
// path. It backs adapters whose load mechanism reads from a filesystem the
// server can see.
type FileStager struct {
	Dir string
}

// Stage writes the payload to a uniquely named file derived from key.
func (s *FileStager) Stage(_ context.Context, key string, r io.Reader) (string, error) {
	pattern := key
	if ext := filepath.Ext(key); ext != "" {
		pattern = key[:len(key)-len(ext)] + "-*" + ext
	}
	f, err := os.CreateTemp(s.Dir, pattern)
	if err != nil {
		return "", fmt.Errorf("bulk: stage %s: %w", key, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("bulk: stage %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("bulk: stage %s: %w", key, err)
	}
	return f.Name(), nil
}
