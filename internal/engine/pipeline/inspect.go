package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Inspector derives the RepoState of a working directory. It never mutates anything.
type Inspector struct {
	vcs ports.VCS
}

// NewInspector creates an Inspector.
func NewInspector(vcs ports.VCS) *Inspector {
	return &Inspector{vcs: vcs}
}

// Inspect classifies path and, for valid trees, reports HEAD and whether its exact tag equals target.
func (i *Inspector) Inspect(ctx context.Context, path, target string) (domain.RepoState, error) {
	state := domain.RepoState{Path: path, Kind: domain.RepoAbsent}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, corrupt(err, path)
	}
	if !info.IsDir() {
		state.Kind = domain.RepoInvalid
		return state, nil
	}

	probe, err := i.vcs.ProbeWorkTree(ctx, path)
	if err != nil {
		return state, corrupt(err, path)
	}
	if !probe.IsWorkTree || !samePath(probe.TopLevel, path) {
		state.Kind = domain.RepoInvalid
		return state, nil
	}

	shallow, err := i.vcs.IsShallow(ctx, path)
	if err != nil {
		return state, corrupt(err, path)
	}
	state.Kind = domain.RepoFullValid
	if shallow {
		state.Kind = domain.RepoShallowValid
	}

	state.Revision, err = i.vcs.Head(ctx, path)
	if err != nil {
		return state, corrupt(err, path)
	}
	state.Tag, err = i.vcs.ExactTag(ctx, path, state.Revision)
	if err != nil {
		return state, corrupt(err, path)
	}
	state.MatchesTarget = target != "" && state.Tag == target
	return state, nil
}

// samePath compares two directories after resolving symlinks.
func samePath(a, b string) bool {
	return canonical(a) == canonical(b)
}

func canonical(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

func corrupt(err error, path string) error {
	return zerr.With(zerr.Wrap(domain.ErrRepositoryCorrupt, err.Error()), "path", path)
}
