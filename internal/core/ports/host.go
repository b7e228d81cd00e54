package ports

import "go.trai.ch/ucb/internal/core/domain"

// DistroDetector identifies the host Linux distribution.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type DistroDetector interface {
	Detect() (domain.Distro, error)
}

// DiskProbe reports free space.
type DiskProbe interface {
	// Free returns the bytes available to an unprivileged user on the volume holding path.
	Free(path string) (uint64, error)
}
