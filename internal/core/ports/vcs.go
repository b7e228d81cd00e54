package ports

import (
	"context"

	"go.trai.ch/ucb/internal/core/domain"
)

// VCS is the version control client the pipeline drives.
// Every path is a working directory.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// Clone clones remote into path.
	Clone(ctx context.Context, remote, path string, opts domain.CloneOptions) error

	// ProbeWorkTree reports whether path is inside a working tree and where its top level is.
	// It returns an error only when the client cannot answer.
	ProbeWorkTree(ctx context.Context, path string) (domain.WorkTreeProbe, error)

	// IsShallow reports whether the repository history is truncated.
	IsShallow(ctx context.Context, path string) (bool, error)

	// Head returns the checked out commit.
	Head(ctx context.Context, path string) (string, error)

	// ExactTag returns the tag pointing exactly at rev, or "" when there is none.
	ExactTag(ctx context.Context, path, rev string) (string, error)

	// DefaultBranch returns the remote's HEAD branch.
	DefaultBranch(ctx context.Context, path, remote string) (string, error)

	// Clean removes untracked and ignored files.
	Clean(ctx context.Context, path string) error

	// ResetHard discards local modifications.
	ResetHard(ctx context.Context, path string) error

	// Fetch fetches remote including tags.
	Fetch(ctx context.Context, path, remote string) error

	// Pull merges branch of remote into the current branch.
	Pull(ctx context.Context, path, remote, branch string) error

	// Checkout moves the working tree to revision.
	Checkout(ctx context.Context, path, revision string) error

	// SubmoduleUpdate initializes and updates submodules recursively.
	SubmoduleUpdate(ctx context.Context, path string) error
}
