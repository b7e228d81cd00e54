package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// OriginRemote is the remote name created by clone.
const OriginRemote = "origin"

// Acquirer brings a working directory to a requested revision.
type Acquirer struct {
	vcs       ports.VCS
	inspector *Inspector
	logger    ports.Logger
	tracer    ports.Tracer
}

// NewAcquirer creates an Acquirer.
func NewAcquirer(vcs ports.VCS, inspector *Inspector, logger ports.Logger, tracer ports.Tracer) *Acquirer {
	return &Acquirer{vcs: vcs, inspector: inspector, logger: logger, tracer: tracer}
}

// Acquire reconciles req.Path with req.Revision. A tree already at the target tag is left untouched.
func (a *Acquirer) Acquire(ctx context.Context, req domain.AcquireRequest) (domain.AcquireResult, error) {
	res := domain.AcquireResult{Path: req.Path}
	name := "acquire " + filepath.Base(req.Path)

	err := inSpan(ctx, a.tracer, name, func(ctx context.Context) error {
		state, err := a.inspector.Inspect(ctx, req.Path, req.Revision)
		if err != nil {
			return err
		}

		res.Action, err = a.reconcile(ctx, req, state)
		if err != nil {
			return err
		}

		if res.Action == domain.ActionNone {
			res.Revision = state.Revision
			return nil
		}
		res.Revision, err = a.vcs.Head(ctx, req.Path)
		return err
	})
	if err != nil {
		return res, zerr.With(zerr.Wrap(err, "acquire"), "path", req.Path)
	}
	return res, nil
}

func (a *Acquirer) reconcile(ctx context.Context, req domain.AcquireRequest, state domain.RepoState) (domain.AcquireAction, error) {
	switch state.Kind {
	case domain.RepoAbsent:
		return domain.ActionCloned, a.clone(ctx, req)

	case domain.RepoInvalid:
		a.logger.Warn(req.Path + " is not a git working tree, removing it")
		if err := os.RemoveAll(req.Path); err != nil {
			return domain.ActionNone, zerr.Wrap(err, "remove invalid tree")
		}
		return domain.ActionRecloned, a.clone(ctx, req)

	case domain.RepoShallowValid:
		if req.Pin {
			return domain.ActionNone, zerr.With(
				zerr.Wrap(domain.ErrCannotPinShallowRepository, "shallow tree"),
				"revision", req.Revision,
			)
		}
		a.logger.Info(filepath.Base(req.Path) + " is shallow at " + state.Revision + ", leaving it")
		return domain.ActionNone, nil

	default:
		return a.update(ctx, req, state)
	}
}

func (a *Acquirer) clone(ctx context.Context, req domain.AcquireRequest) error {
	opts := domain.CloneOptions{Branch: req.Revision}
	if req.Shallow {
		opts.Depth = 1
		opts.NoTags = true
	}
	a.logger.Info("cloning " + req.Remote + " into " + req.Path)
	return a.vcs.Clone(ctx, req.Remote, req.Path, opts)
}

func (a *Acquirer) update(ctx context.Context, req domain.AcquireRequest, state domain.RepoState) (domain.AcquireAction, error) {
	if req.Revision == "" {
		branch, err := a.vcs.DefaultBranch(ctx, req.Path, OriginRemote)
		if err != nil {
			return domain.ActionNone, err
		}
		a.logger.Info("updating " + filepath.Base(req.Path) + " to " + OriginRemote + "/" + branch)
		return domain.ActionUpdated, a.vcs.Pull(ctx, req.Path, OriginRemote, branch)
	}

	if state.MatchesTarget {
		a.logger.Info(filepath.Base(req.Path) + " is at " + req.Revision + ", no need to update")
		return domain.ActionNone, nil
	}

	current := state.Revision
	if state.Tag != "" {
		current += " (tag: " + state.Tag + ")"
	}
	if req.Shallow {
		a.logger.Warn(filepath.Base(req.Path) + " is at " + current + ", not " + req.Revision + ", leaving it in shallow mode")
		return domain.ActionNone, nil
	}
	a.logger.Info(filepath.Base(req.Path) + " is at " + current + ", updating to " + req.Revision)

	if req.Reset {
		if err := a.vcs.Clean(ctx, req.Path); err != nil {
			return domain.ActionNone, err
		}
		if err := a.vcs.ResetHard(ctx, req.Path); err != nil {
			return domain.ActionNone, err
		}
	}
	if err := a.vcs.Fetch(ctx, req.Path, OriginRemote); err != nil {
		return domain.ActionNone, err
	}
	return domain.ActionUpdated, a.vcs.Checkout(ctx, req.Path, req.Revision)
}
