package pipeline

import (
	"context"
	"os"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step names recorded by init.
const (
	StepDepotTools      = "depot-tools"
	StepDepotToolsSetup = "depot-tools-setup"
	StepSource          = "source"
)

// DepotToolsZipName is the cache key of the Windows depot_tools bundle.
const DepotToolsZipName = "depot_tools.zip"

// Initializer bootstraps depot_tools and the Chromium checkout of a new workspace.
type Initializer struct {
	acquirer *Acquirer
	fetcher  ports.Fetcher
	archiver ports.Archiver
	exec     ports.Executor
	disk     ports.DiskProbe
	stamps   ports.StampStore
	logger   ports.Logger
	tracer   ports.Tracer
}

// NewInitializer creates an Initializer.
func NewInitializer(
	acquirer *Acquirer,
	fetcher ports.Fetcher,
	archiver ports.Archiver,
	exec ports.Executor,
	disk ports.DiskProbe,
	stamps ports.StampStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *Initializer {
	return &Initializer{
		acquirer: acquirer,
		fetcher:  fetcher,
		archiver: archiver,
		exec:     exec,
		disk:     disk,
		stamps:   stamps,
		logger:   logger,
		tracer:   tracer,
	}
}

// Init installs depot_tools and, outside Windows, checks out src at the configured version.
func (i *Initializer) Init(ctx context.Context, cfg domain.BuildConfig) ([]domain.StepResult, error) {
	if err := CheckDiskSpace(i.disk, i.logger, cfg, false); err != nil {
		return nil, err
	}
	if cfg.OS == domain.OSWindows {
		return i.initWindows(ctx, cfg)
	}

	var steps []domain.StepResult
	l := cfg.Layout()
	settings := cfg.Settings()

	tools := settings.CheckoutFor(domain.DepotToolsDirName)
	if _, err := i.acquirer.Acquire(ctx, domain.AcquireRequest{
		Remote: tools.Remote,
		Path:   l.DepotTools(),
	}); err != nil {
		return steps, zerr.Wrap(err, "init: depot_tools")
	}
	steps = append(steps, domain.Succeeded(StepDepotTools))

	if cfg.Shallow && exists(l.Src()) {
		i.logger.Warn("shallow init removes the existing " + l.Src())
		if err := os.RemoveAll(l.Src()); err != nil {
			return steps, zerr.With(zerr.Wrap(err, "init: remove src"), "path", l.Src())
		}
	}

	src := settings.CheckoutFor(domain.SrcDirName)
	res, err := i.acquirer.Acquire(ctx, domain.AcquireRequest{
		Remote:   src.Remote,
		Path:     l.Src(),
		Revision: src.Revision,
		Shallow:  cfg.Shallow,
		Reset:    cfg.Reset,
		Pin:      !cfg.Shallow,
	})
	if err != nil {
		return steps, zerr.Wrap(err, "init: src")
	}
	if res.Action.Fresh() {
		if err := i.stamps.Delete(l.StampDir(), domain.PrepareStampName); err != nil {
			return steps, err
		}
	}
	steps = append(steps, domain.StepResult{Step: StepSource, Status: domain.StepSucceeded, Detail: res.Action.String()})
	return steps, nil
}

func (i *Initializer) initWindows(ctx context.Context, cfg domain.BuildConfig) ([]domain.StepResult, error) {
	var steps []domain.StepResult
	l := cfg.Layout()

	err := inSpan(ctx, i.tracer, StageDownload, func(ctx context.Context) error {
		res, err := i.fetcher.Fetch(ctx, domain.DownloadRequest{
			URL:  cfg.Settings().Origins.DepotToolsZip,
			Key:  DepotToolsZipName,
			Dest: l.DownloadDir(),
		})
		if err != nil {
			return err
		}
		return i.archiver.ExtractZip(ctx, res.Path, l.DepotTools())
	})
	if err != nil {
		return steps, zerr.Wrap(err, "init: depot_tools")
	}
	steps = append(steps, domain.Succeeded(StepDepotTools))

	cmd := domain.NewCommand(cfg.Root, "cmd", "/c", `depot_tools\gclient.bat`)
	cmd.Name = "gclient"
	if err := i.exec.Run(ctx, cmd); err != nil {
		return steps, zerr.Wrap(err, "init: gclient bootstrap")
	}
	steps = append(steps, domain.Succeeded(StepDepotToolsSetup))
	return steps, nil
}
