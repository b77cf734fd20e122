package jsonline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"
	"github.com/msomdec/weblog/internal/domain"
)

// Optimize rewrites the append-only data files keeping only lines that
// decode as JSON objects, discarding the residue of partial writes.
// Users are excluded: the user file has a live update path and its
// valid lines are already the only ones readers see.
func (s *Store) Optimize(ctx context.Context) (domain.OptimizeReport, error) {
	var report domain.OptimizeReport
	for _, name := range []string{postsFile, galleryFile, contactsFile} {
		kept, dropped, err := OptimizeFile(s.dataFile(name))
		if err != nil {
			return report, err
		}
		report.Kept += kept
		report.Dropped += dropped
	}
	return report, nil
}

// ClearLogs truncates every .log file in the data directory and
// returns how many were cleared.
func (s *Store) ClearLogs(ctx context.Context) (int, error) {
	matches, err := filepath.Glob(filepath.Join(s.dataDir, "*.log"))
	if err != nil {
		return 0, fmt.Errorf("list log files: %w", err)
	}
	cleared := 0
	for _, path := range matches {
		if err := os.Truncate(path, 0); err != nil {
			return cleared, fmt.Errorf("truncate %s: %w", path, err)
		}
		cleared++
	}
	return cleared, nil
}

// OptimizeFile rewrites one data file keeping only lines that parse as
// JSON objects. It returns how many lines were kept and dropped. The
// rewrite runs under the same lock discipline as any other write; a
// missing file is a no-op.
func OptimizeFile(path string) (kept, dropped int, err error) {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return 0, 0, fmt.Errorf("lock %s: %w", path, err)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("read %s: %w", path, err)
	}

	var buf bytes.Buffer
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var rec map[string]any
		if json.Unmarshal(line, &rec) != nil {
			dropped++
			continue
		}
		buf.Write(line)
		buf.WriteByte('\n')
		kept++
	}

	if dropped == 0 {
		return kept, 0, nil
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return kept, dropped, fmt.Errorf("rewrite %s: %w", path, err)
	}
	return kept, dropped, nil
}
