//go:build windows

package host

import (
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/windows"
)

// Free returns the bytes available to the calling user on the volume holding path.
func (DiskProbe) Free(path string) (uint64, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrHostProbeFailed, err.Error()), "path", path)
	}

	var available, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(p, &available, &total, &free); err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrHostProbeFailed, err.Error()), "path", path)
	}
	return available, nil
}
