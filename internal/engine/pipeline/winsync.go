package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step names recorded by the downloads-based sync.
const (
	StepOverlay           = "overlay"
	StepSubmodules        = "submodules"
	StepRetrieveDownloads = "downloads-retrieve"
	StepUnpackDownloads   = "downloads-unpack"
)

// DownloadsIni is the archive manifest read by downloads.py.
const DownloadsIni = "downloads.ini"

// DownloadsCacheDir returns the downloads.py cache directory under the overlay, relative to the root.
func DownloadsCacheDir(profile domain.PlatformProfile) string {
	return filepath.Join(profile.OverlayDir, "build", "downloads_cache")
}

// DownloadsSyncer populates src from the archives listed in downloads.ini instead of gclient.
type DownloadsSyncer struct {
	acquirer  *Acquirer
	vcs       ports.VCS
	downloads ports.DownloadsTool
	stamps    ports.StampStore
	logger    ports.Logger
	tracer    ports.Tracer
}

// NewDownloadsSyncer creates a DownloadsSyncer.
func NewDownloadsSyncer(
	acquirer *Acquirer,
	vcs ports.VCS,
	downloads ports.DownloadsTool,
	stamps ports.StampStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *DownloadsSyncer {
	return &DownloadsSyncer{
		acquirer:  acquirer,
		vcs:       vcs,
		downloads: downloads,
		stamps:    stamps,
		logger:    logger,
		tracer:    tracer,
	}
}

// Sync updates the overlay checkout and its submodules, recreates src and unpacks the downloads into it.
func (s *DownloadsSyncer) Sync(ctx context.Context, cfg domain.BuildConfig, profile domain.PlatformProfile) ([]domain.StepResult, error) {
	l := cfg.Layout()
	overlay := l.Path(profile.OverlayDir)
	var steps []domain.StepResult

	co := cfg.Settings().CheckoutFor(profile.OverlayDir)
	if _, err := s.acquirer.Acquire(ctx, domain.AcquireRequest{Remote: co.Remote, Path: overlay, Revision: co.Revision}); err != nil {
		return steps, err
	}
	steps = append(steps, domain.Succeeded(StepOverlay))

	if err := s.vcs.SubmoduleUpdate(ctx, overlay); err != nil {
		return steps, zerr.Wrap(err, "update overlay submodules")
	}
	steps = append(steps, domain.Succeeded(StepSubmodules))

	err := inSpan(ctx, s.tracer, "downloads", func(ctx context.Context) error {
		cache := l.Path(DownloadsCacheDir(profile))
		if err := os.MkdirAll(cache, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "path", cache)
		}

		if exists(l.Src()) {
			s.logger.Warn("src already exists, removing " + l.Src())
		}
		if err := os.RemoveAll(l.Src()); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "path", l.Src())
		}
		if err := os.MkdirAll(l.Src(), domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "path", l.Src())
		}
		if err := s.stamps.Delete(l.StampDir(), domain.PrepareStampName); err != nil {
			return err
		}

		inis := []string{
			filepath.Join(profile.PatchRepoDir, DownloadsIni),
			filepath.Join(profile.OverlayDir, DownloadsIni),
		}
		if err := s.downloads.Retrieve(ctx, cfg.Root, profile.UtilsDir(), inis, cache); err != nil {
			return err
		}
		steps = append(steps, domain.Succeeded(StepRetrieveDownloads))

		s.logger.Info("unpacking downloads")
		if err := s.downloads.Unpack(ctx, cfg.Root, profile.UtilsDir(), inis, cache, l.Src()); err != nil {
			return err
		}
		steps = append(steps, domain.Succeeded(StepUnpackDownloads))
		return nil
	})
	return steps, err
}
