// Package cas stores pipeline stamps as JSON files.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

const stampExt = ".json"

var _ ports.StampStore = (*Store)(nil)

// Store implements ports.StampStore with one JSON file per stamp.
type Store struct {
	mu sync.RWMutex
}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

// Path returns the file holding the stamp name in dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+stampExt)
}

// Get reads the stamp name from dir. A missing stamp returns nil without error.
func (s *Store) Get(dir, name string) (*domain.Stamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := Path(dir, name)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the workspace layout
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", path)
	}

	var stamp domain.Stamp
	if err := json.Unmarshal(data, &stamp); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", path)
	}
	return &stamp, nil
}

// Put writes stamp into dir, replacing any previous stamp of the same name.
func (s *Store) Put(dir string, stamp domain.Stamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(stamp, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "dir", dir)
	}

	path := Path(dir, stamp.Name)
	tmp, err := os.CreateTemp(dir, "."+stamp.Name+"-*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// Delete removes the stamp name from dir. Deleting a missing stamp is not an error.
func (s *Store) Delete(dir, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := Path(dir, name)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}
	return nil
}
