package ports

import (
	"context"

	"go.trai.ch/ucb/internal/core/domain"
)

// Fetcher downloads source archives into a local cache.
//
//go:generate mockgen -source=fetch.go -destination=mocks/mock_fetch.go -package=mocks
type Fetcher interface {
	// Fetch downloads req.URL, or req.Key from req.Mirror when enabled, to req.Dest.
	// An existing complete file is reused and reported as cached.
	Fetch(ctx context.Context, req domain.DownloadRequest) (domain.DownloadResult, error)
}

// Archiver unpacks and inspects archives.
type Archiver interface {
	// ExtractTarXz unpacks a .tar.xz archive into dest, dropping strip leading path elements.
	ExtractTarXz(ctx context.Context, archive, dest string, strip int) error

	// ExtractZip unpacks a zip archive into dest.
	ExtractZip(ctx context.Context, archive, dest string) error

	// CountTarGz returns the number of regular files in a .tar.gz archive.
	CountTarGz(archive string) (int, error)
}

// SmokeTester launches a built browser and checks that it starts.
type SmokeTester interface {
	Smoke(ctx context.Context, binary string) (domain.SmokeReport, error)
}
