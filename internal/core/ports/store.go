package ports

import "go.trai.ch/ucb/internal/core/domain"

// StampStore persists pipeline stamps in a directory.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StampStore interface {
	// Get retrieves the stamp with the given name.
	// Returns nil, nil if not found.
	Get(dir, name string) (*domain.Stamp, error)

	// Put stores the stamp.
	Put(dir string, stamp domain.Stamp) error

	// Delete removes the stamp. A missing stamp is not an error.
	Delete(dir, name string) error
}
