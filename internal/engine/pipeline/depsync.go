package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step names recorded by the dependency sync stage.
const (
	StepGClientConfig    = "gclient-config"
	StepGClientSync      = "gclient-sync"
	StepGClientRunHooks  = "gclient-runhooks"
	StepInstallBuildDeps = "install-build-deps"
)

// SyncArgs returns the extra gclient sync arguments for the mode of cfg.
// ref is the src revision read before gclient touches the tree.
func SyncArgs(cfg domain.BuildConfig, ref string) []string {
	var args []string
	if cfg.Reset {
		args = append(args, "--revision", "src@"+ref, "--force", "--upstream", "--reset")
	}
	if cfg.Shallow {
		return append(args, "--shallow")
	}
	return append(args, "--with_tags", "--with_branch_heads")
}

// DependencySyncer pulls Chromium's DEPS with gclient and optionally installs host packages.
type DependencySyncer struct {
	gclient ports.DependencyFetcher
	exec    ports.Executor
	distro  ports.DistroDetector
	logger  ports.Logger
	tracer  ports.Tracer
}

// NewDependencySyncer creates a DependencySyncer.
func NewDependencySyncer(
	gclient ports.DependencyFetcher,
	exec ports.Executor,
	distro ports.DistroDetector,
	logger ports.Logger,
	tracer ports.Tracer,
) *DependencySyncer {
	return &DependencySyncer{gclient: gclient, exec: exec, distro: distro, logger: logger, tracer: tracer}
}

// Sync writes .gclient, runs gclient sync and hooks, then the build-deps script when requested.
func (s *DependencySyncer) Sync(
	ctx context.Context,
	cfg domain.BuildConfig,
	profile domain.PlatformProfile,
	ref string,
) ([]domain.StepResult, error) {
	l := cfg.Layout()
	var steps []domain.StepResult

	err := inSpan(ctx, s.tracer, "gclient", func(ctx context.Context) error {
		if !isDir(l.DepotTools()) {
			return zerr.With(zerr.Wrap(domain.ErrDepotToolsMissing, "dependency sync"), "path", l.DepotTools())
		}

		gclientFile := domain.RenderGClient(cfg.OS, cfg.Settings().Origins.Chromium)
		if err := os.WriteFile(l.GClientFile(), []byte(gclientFile), domain.FilePerm); err != nil { //nolint:gosec // .gclient is not secret
			return zerr.With(zerr.Wrap(domain.ErrGClientWriteFailed, err.Error()), "path", l.GClientFile())
		}
		steps = append(steps, domain.Succeeded(StepGClientConfig))

		if err := s.gclient.Sync(ctx, cfg.Root, l.DepotTools(), SyncArgs(cfg, ref)); err != nil {
			return zerr.Wrap(err, "gclient sync")
		}
		steps = append(steps, domain.Succeeded(StepGClientSync))

		if err := s.gclient.RunHooks(ctx, cfg.Root, l.DepotTools()); err != nil {
			return zerr.Wrap(err, "gclient runhooks")
		}
		steps = append(steps, domain.Succeeded(StepGClientRunHooks))
		return nil
	})
	if err != nil {
		return steps, err
	}

	if !cfg.InstallBuildDeps {
		return steps, nil
	}
	step, err := s.installBuildDeps(ctx, cfg, profile)
	if err != nil {
		return steps, err
	}
	return append(steps, step), nil
}

func (s *DependencySyncer) installBuildDeps(
	ctx context.Context,
	cfg domain.BuildConfig,
	profile domain.PlatformProfile,
) (domain.StepResult, error) {
	if profile.DepsScript == "" {
		return domain.Skipped(StepInstallBuildDeps, "no build-deps script for "+string(cfg.OS)), nil
	}

	distro, err := s.distro.Detect()
	if err != nil {
		s.logger.Warn("cannot detect the host distribution, skipping build dependencies")
		return domain.Tolerated(StepInstallBuildDeps, err), nil
	}
	if !distro.SupportsBuildDeps() {
		s.logger.Warn("installing build dependencies only works on Debian based systems, skipping")
		return domain.Skipped(StepInstallBuildDeps, "unsupported distribution "+distro.ID), nil
	}

	s.logger.Warn("installing build dependencies requires root privileges")
	cmd := domain.NewCommand(cfg.Root, "sudo", filepath.Join(domain.SrcDirName, "build", profile.DepsScript))
	cmd.Name = StepInstallBuildDeps
	cmd.TTY = true
	if err := s.exec.Run(ctx, cmd); err != nil {
		return domain.StepResult{}, zerr.Wrap(err, "install build dependencies")
	}
	return domain.Succeeded(StepInstallBuildDeps), nil
}
