package pipeline

import (
	"context"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reporter collects the read-only workspace report. It never mutates the tree.
type Reporter struct {
	inspector *Inspector
	stamps    ports.StampStore
	archiver  ports.Archiver
	disk      ports.DiskProbe
	logger    ports.Logger
}

// NewReporter creates a Reporter.
func NewReporter(
	inspector *Inspector,
	stamps ports.StampStore,
	archiver ports.Archiver,
	disk ports.DiskProbe,
	logger ports.Logger,
) *Reporter {
	return &Reporter{inspector: inspector, stamps: stamps, archiver: archiver, disk: disk, logger: logger}
}

// Status inspects the checkouts, stamps, cache and output folder.
func (r *Reporter) Status(ctx context.Context, cfg domain.BuildConfig, profile domain.PlatformProfile) (domain.StatusReport, error) {
	l := cfg.Layout()
	settings := cfg.Settings()
	report := domain.StatusReport{Root: cfg.Root, CacheFiles: -1}

	for _, dir := range []string{domain.SrcDirName, domain.DepotToolsDirName, profile.PatchRepoDir} {
		co := settings.CheckoutFor(dir)
		if dir == profile.PatchRepoDir && co.Revision == "" {
			co.Revision = settings.Versions.Ungoogled
		}
		state, err := r.inspector.Inspect(ctx, l.Path(dir), co.Revision)
		if err != nil {
			return report, zerr.Wrap(err, "status")
		}
		report.Repos = append(report.Repos, state)
	}

	var err error
	if report.Prepared, err = r.stamps.Get(l.StampDir(), domain.PrepareStampName); err != nil {
		return report, zerr.Wrap(err, "status: prepare stamp")
	}
	if report.Downloaded, err = r.stamps.Get(l.StampDir(), domain.DownloadStampName); err != nil {
		return report, zerr.Wrap(err, "status: download stamp")
	}

	if exists(l.DomSubCache()) {
		n, err := r.archiver.CountTarGz(l.DomSubCache())
		if err != nil {
			r.logger.Warn("cannot read domain substitution cache: " + err.Error())
		} else {
			report.CacheFiles = n
		}
	}

	report.OutputPath = l.OutputPath(cfg)
	report.ArgsFile = exists(l.ArgsFile(cfg))

	if report.FreeBytes, err = r.disk.Free(cfg.Root); err != nil {
		r.logger.Warn("cannot determine free disk space: " + err.Error())
	}
	return report, nil
}
