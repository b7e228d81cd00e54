//go:build !windows

package host

import (
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// Free returns the bytes available to unprivileged users on the filesystem holding path.
func (DiskProbe) Free(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrHostProbeFailed, err.Error()), "path", path)
	}
	return uint64(st.Bavail) * uint64(st.Bsize), nil //nolint:gosec,unconvert // Bsize is positive, field types vary per platform
}
