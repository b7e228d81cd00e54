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

// ChromeBinary is the browser executable inside a Linux output folder.
const ChromeBinary = "chrome"

// Builder generates build files and compiles the profile targets.
type Builder struct {
	build  ports.BuildSystem
	disk   ports.DiskProbe
	smoke  ports.SmokeTester
	logger ports.Logger
	tracer ports.Tracer
}

// NewBuilder creates a Builder.
func NewBuilder(
	build ports.BuildSystem,
	disk ports.DiskProbe,
	smoke ports.SmokeTester,
	logger ports.Logger,
	tracer ports.Tracer,
) *Builder {
	return &Builder{build: build, disk: disk, smoke: smoke, logger: logger, tracer: tracer}
}

// Build resolves the GN flags, writes args.gn (or bootstraps gn with them) and runs ninja.
func (b *Builder) Build(ctx context.Context, cfg domain.BuildConfig, profile domain.PlatformProfile) (domain.BuildReport, error) {
	report := domain.BuildReport{Targets: profile.Targets}

	if len(profile.Targets) == 0 {
		return report, zerr.With(zerr.Wrap(domain.ErrUnsupportedTarget, "build: no targets"), "os", string(cfg.OS))
	}
	if err := CheckDiskSpace(b.disk, b.logger, cfg, false); err != nil {
		return report, err
	}

	flags, err := ResolveFlags(cfg, profile)
	if err != nil {
		return report, zerr.Wrap(err, "build: resolve flags")
	}
	report.Flags = flags

	l := cfg.Layout()
	out := l.OutputPath(cfg)
	report.OutputPath = out
	if err := ensureOutputDir(out); err != nil {
		return report, err
	}

	req := domain.NewBuildRequest(cfg, profile)

	err = inSpan(ctx, b.tracer, "gn", func(ctx context.Context) error {
		if cfg.DirectDownload {
			report.Bootstrapped = true
			return b.build.BootstrapGen(ctx, req, flags.Render(" "))
		}

		args := l.ArgsFile(cfg)
		if err := os.WriteFile(args, []byte(flags.Render("\n")), domain.FilePerm); err != nil { //nolint:gosec // args.gn is not secret
			return zerr.With(zerr.Wrap(domain.ErrArgsFileWriteFailed, err.Error()), "path", args)
		}

		if profile.WindowsToolchain {
			gn, err := b.build.BootstrapGN(ctx, req)
			if err != nil {
				return err
			}
			req.GN = gn
			report.Bootstrapped = true
		}
		return b.build.Gen(ctx, req)
	})
	if err != nil {
		return report, zerr.Wrap(err, "build: generate")
	}

	if err := inSpan(ctx, b.tracer, "ninja", func(ctx context.Context) error {
		return b.build.Compile(ctx, req)
	}); err != nil {
		return report, zerr.Wrap(err, "build: compile")
	}
	return report, nil
}

// Smoke launches the freshly built browser headless.
func (b *Builder) Smoke(ctx context.Context, cfg domain.BuildConfig) (domain.SmokeReport, error) {
	var report domain.SmokeReport
	err := inSpan(ctx, b.tracer, StageSmoke, func(ctx context.Context) error {
		var err error
		report, err = b.smoke.Smoke(ctx, filepath.Join(cfg.Layout().OutputPath(cfg), ChromeBinary))
		return err
	})
	if err != nil {
		return report, zerr.Wrap(err, "build: smoke test")
	}
	return report, nil
}

// ensureOutputDir removes a plain file at out and creates the directory.
func ensureOutputDir(out string) error {
	info, err := os.Lstat(out)
	switch {
	case err == nil && !info.IsDir():
		if err := os.Remove(out); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrArgsFileWriteFailed, err.Error()), "path", out)
		}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return zerr.With(zerr.Wrap(domain.ErrArgsFileWriteFailed, err.Error()), "path", out)
	}
	if err := os.MkdirAll(out, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrArgsFileWriteFailed, err.Error()), "path", out)
	}
	return nil
}

// CheckDiskSpace compares the free space under the root with the configured minimum.
// It fails with ErrInsufficientDiskSpace when strict and only warns otherwise. Build and init both run it lenient.
func CheckDiskSpace(disk ports.DiskProbe, logger ports.Logger, cfg domain.BuildConfig, strict bool) error {
	minFree := cfg.Settings().MinFreeBytes()
	if minFree == 0 {
		return nil
	}

	free, err := disk.Free(cfg.Root)
	if err != nil {
		logger.Warn("cannot determine free disk space: " + err.Error())
		return nil
	}
	if free >= minFree {
		return nil
	}

	err = zerr.With(
		zerr.With(zerr.Wrap(domain.ErrInsufficientDiskSpace, "disk preflight"), "free_bytes", free),
		"required_bytes", minFree,
	)
	if strict {
		return err
	}
	logger.Warn("low disk space: " + err.Error())
	return nil
}
