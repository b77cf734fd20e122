package jsonline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"
)

// table provides append/scan/rewrite over one newline-delimited JSON
// file. Writers take an exclusive advisory lock on a sidecar .lock
// file so mutual exclusion holds across processes, not just within
// one. Readers take no lock: records are written as whole lines, so a
// reader observes either the pre- or post-append state, never a torn
// line.
type table[T any] struct {
	path string
	lock *flock.Flock
}

func newTable[T any](path string) *table[T] {
	return &table[T]{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// scanAll reads and decodes every line of the file in order. A missing
// file is an empty table. Blank lines and lines that fail to decode
// are the residue of partial writes or manual edits; they are skipped
// and must never fail a read.
func (t *table[T]) scanAll() ([]T, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", t.path, err)
	}
	var records []T
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var rec T
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// append encodes the record and appends it as one line, creating the
// file and its parent directory if needed.
func (t *table[T]) append(rec T) error {
	if err := t.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", t.path, err)
	}
	defer t.lock.Unlock()
	return t.appendLocked(rec)
}

// appendChecked scans the table and appends the record produced by
// decide, holding the write lock across both steps. Uniqueness checks
// made inside decide and the append are therefore one atomic
// operation; two concurrent callers cannot both pass the same check.
func (t *table[T]) appendChecked(decide func(existing []T) (T, error)) error {
	if err := t.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", t.path, err)
	}
	defer t.lock.Unlock()

	existing, err := t.scanAll()
	if err != nil {
		return err
	}
	rec, err := decide(existing)
	if err != nil {
		return err
	}
	return t.appendLocked(rec)
}

// rewriteAll atomically replaces the file content with the encoded
// records, in the given order.
func (t *table[T]) rewriteAll(records []T) error {
	if err := t.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", t.path, err)
	}
	defer t.lock.Unlock()
	return t.rewriteLocked(records)
}

// rewriteWith scans, applies update, and rewrites the file, all under
// the write lock. This is the in-place update path.
func (t *table[T]) rewriteWith(update func(existing []T) ([]T, error)) error {
	if err := t.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", t.path, err)
	}
	defer t.lock.Unlock()

	existing, err := t.scanAll()
	if err != nil {
		return err
	}
	records, err := update(existing)
	if err != nil {
		return err
	}
	return t.rewriteLocked(records)
}

func (t *table[T]) appendLocked(rec T) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", t.path, err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("append to %s: %w", t.path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync %s: %w", t.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", t.path, err)
	}
	return nil
}

func (t *table[T]) rewriteLocked(records []T) error {
	var buf bytes.Buffer
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := renameio.WriteFile(t.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("rewrite %s: %w", t.path, err)
	}
	return nil
}
