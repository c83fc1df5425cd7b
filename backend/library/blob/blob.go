// Package blob persists uploaded file bytes as named entries in a single
// directory. Names are validated on every call so a hostile name can never
// read or write outside the root.
package blob

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidName is returned for names that would escape the store root.
	ErrInvalidName = errors.New("blob: invalid name")
	// ErrNotExist is returned when no blob with the given name is stored.
	ErrNotExist = errors.New("blob: no such blob")
)

// Store is a directory-backed blob store.
type Store struct {
	root string
}

// NewStore opens (and creates, if needed) the store directory.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

// Root returns the store directory.
func (s *Store) Root() string {
	return s.root
}

// PathFor resolves a blob name to its path inside the store, rejecting names
// with directory components or traversal sequences.
func (s *Store) PathFor(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return "", ErrInvalidName
	}
	full := filepath.Join(s.root, name)
	if !strings.HasPrefix(filepath.Clean(full), filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", ErrInvalidName
	}
	return full, nil
}

// Save writes the blob under name, replacing any existing entry.
func (s *Store) Save(name string, r io.Reader) error {
	full, err := s.PathFor(name)
	if err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read returns the stored bytes for name.
func (s *Store) Read(name string) ([]byte, error) {
	full, err := s.PathFor(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

// Exists reports whether a blob with the given name is stored.
func (s *Store) Exists(name string) bool {
	full, err := s.PathFor(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

// Remove deletes the blob with the given name.
func (s *Store) Remove(name string) error {
	full, err := s.PathFor(name)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return ErrNotExist
		}
		return err
	}
	return nil
}
