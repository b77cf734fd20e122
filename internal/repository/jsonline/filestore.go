package jsonline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/msomdec/weblog/internal/domain"
)

// fileStore implements domain.FileStore on the local filesystem. Keys
// must be plain basenames; anything that could escape the upload
// directory is rejected.
type fileStore struct {
	dir string
}

func (s *fileStore) Save(ctx context.Context, key string, data []byte) error {
	if !validKey(key) {
		return fmt.Errorf("%w: invalid storage key", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	if err := renameio.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return fmt.Errorf("save upload %s: %w", key, err)
	}
	return nil
}

func (s *fileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if !validKey(key) {
		return nil, domain.ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read upload %s: %w", key, err)
	}
	return data, nil
}

func validKey(key string) bool {
	return key != "" && key == filepath.Base(key) && !strings.HasPrefix(key, ".")
}
