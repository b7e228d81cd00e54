package ports

import (
	"context"

	"go.trai.ch/ucb/internal/core/domain"
)

// BuildSystem drives the build-file generator and the compilation backend.
//
//go:generate mockgen -source=buildsystem.go -destination=mocks/mock_buildsystem.go -package=mocks
type BuildSystem interface {
	// BootstrapGen builds gn from source and generates build files with the given args.
	BootstrapGen(ctx context.Context, req domain.BuildRequest, args string) error

	// BootstrapGN builds gn from source without generating build files and returns its path.
	BootstrapGN(ctx context.Context, req domain.BuildRequest) (string, error)

	// Gen generates build files from args.gn. Unused arguments are fatal.
	Gen(ctx context.Context, req domain.BuildRequest) error

	// Compile builds the requested targets.
	Compile(ctx context.Context, req domain.BuildRequest) error
}
