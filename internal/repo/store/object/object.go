package object

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/digest"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
)

// ErrNotFound reports a digest with no object on disk.
var ErrNotFound = errors.New("object not found")

// Store is a flat content-addressed directory. Each entry's filename is a
// digest and its content is the raw bytes of a blob or a serialized commit
// body; the two are not distinguished on disk.
type Store struct {
	Dir  string
	Hash *digest.Hasher
}

// New creates a Store over dir using the given digest format.
func New(dir string, h *digest.Hasher) *Store {
	return &Store{Dir: dir, Hash: h}
}

// Put stores data under its digest and returns the digest. Writing an
// already-present object is a no-op; concurrent writers of the same content
// produce the same bytes, so duplicate writes are safe.
func (s *Store) Put(data []byte) (string, error) {
	d := s.Hash.Sum(data)
	dst := filepath.Join(s.Dir, d)

	if fi, err := fsio.StatFile(dst); err == nil && fi.Size() == int64(len(data)) {
		return d, nil
	}

	if err := fsio.WriteFileAtomic(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("store object %s: %w", d, err)
	}
	return d, nil
}

// Get returns the raw bytes stored under d.
func (s *Store) Get(d string) ([]byte, error) {
	data, err := fsio.ReadFile(filepath.Join(s.Dir, d))
	if err != nil {
		if fsio.IsNotExist(err) {
			return nil, fmt.Errorf("object %s: %w", d, ErrNotFound)
		}
		return nil, fmt.Errorf("read object %s: %w", d, err)
	}
	return data, nil
}

// Exists reports whether an object is present under d.
func (s *Store) Exists(d string) bool {
	fi, err := fsio.StatFile(filepath.Join(s.Dir, d))
	return err == nil && fi.Mode().IsRegular()
}
