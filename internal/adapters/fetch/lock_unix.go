//go:build !windows

package fetch

import (
	"os"

	"go.trai.ch/ucb/internal/core/domain"
	"golang.org/x/sys/unix"
)

// lockFile takes an exclusive advisory lock on path, creating it if needed.
func lockFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, domain.FilePerm) //nolint:gosec // cache path
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil { //nolint:gosec // file descriptors fit in int
		_ = f.Close()
		return nil, err
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN) //nolint:gosec // file descriptors fit in int
		_ = f.Close()
	}, nil
}
