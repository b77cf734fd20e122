// Package jsonline implements the entity repositories over
// newline-delimited JSON text files, one file per entity type. Each
// line holds one self-contained record; lines that fail to decode are
// skipped on read, which is the store's sole defense against
// partial-write corruption.
package jsonline

import (
	"path/filepath"

	"github.com/msomdec/weblog/internal/domain"
)

const (
	usersFile    = "users.txt"
	postsFile    = "posts.txt"
	galleryFile  = "gallery.txt"
	contactsFile = "contact_messages.txt"
)

// Store bundles the file-backed tables for all entity types. It owns
// the byte content of the files under its data directory; callers go
// through the repositories and never touch the files directly.
type Store struct {
	dataDir   string
	uploadDir string
}

// New creates a Store rooted at dataDir, with uploaded file bytes kept
// under uploadDir. Files and directories are created lazily on first
// write; a missing data file reads as an empty table.
func New(dataDir, uploadDir string) *Store {
	return &Store{dataDir: dataDir, uploadDir: uploadDir}
}

// DataDir returns the directory holding the data files.
func (s *Store) DataDir() string { return s.dataDir }

// Users returns the user repository.
func (s *Store) Users() domain.UserRepository { return NewUserRepository(s) }

// Posts returns the post repository.
func (s *Store) Posts() domain.PostRepository { return NewPostRepository(s) }

// Gallery returns the gallery repository.
func (s *Store) Gallery() domain.GalleryRepository { return NewGalleryRepository(s) }

// ContactMessages returns the contact message repository.
func (s *Store) ContactMessages() domain.ContactRepository { return NewContactRepository(s) }

// Files returns the upload file store.
func (s *Store) Files() domain.FileStore { return &fileStore{dir: s.uploadDir} }

func (s *Store) dataFile(name string) string {
	return filepath.Join(s.dataDir, name)
}
