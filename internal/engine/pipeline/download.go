package pipeline

import (
	"context"
	"os"
	"strings"
	"time"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step names recorded by the direct download.
const (
	StepFetchTarball  = "fetch-tarball"
	StepUnpackTarball = "unpack-tarball"
)

// TarballSource populates src from the official Chromium source tarball.
type TarballSource struct {
	fetcher  ports.Fetcher
	archiver ports.Archiver
	stamps   ports.StampStore
	logger   ports.Logger
	tracer   ports.Tracer
	now      func() time.Time
}

// NewTarballSource creates a TarballSource.
func NewTarballSource(
	fetcher ports.Fetcher,
	archiver ports.Archiver,
	stamps ports.StampStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *TarballSource {
	return &TarballSource{
		fetcher:  fetcher,
		archiver: archiver,
		stamps:   stamps,
		logger:   logger,
		tracer:   tracer,
		now:      time.Now,
	}
}

// Sync fetches and unpacks the tarball of the configured Chromium version.
// It does nothing when the download stamp already records that version.
func (t *TarballSource) Sync(ctx context.Context, cfg domain.BuildConfig) ([]domain.StepResult, error) {
	l := cfg.Layout()
	settings := cfg.Settings()
	version := settings.Versions.Chromium
	var steps []domain.StepResult

	err := inSpan(ctx, t.tracer, StageDownload, func(ctx context.Context) error {
		stamp, err := t.stamps.Get(l.StampDir(), domain.DownloadStampName)
		if err != nil {
			return err
		}
		if upToDate(stamp, version, settings.ExpectedBlake3) && isDir(l.Src()) {
			t.logger.Info("src already unpacked from chromium " + version)
			steps = append(steps, domain.Skipped(StepFetchTarball, "stamp matches "+version))
			return nil
		}

		res, err := t.fetcher.Fetch(ctx, domain.DownloadRequest{
			URL:    settings.TarballURL(),
			Key:    domain.TarballName(version),
			Dest:   l.DownloadDir(),
			Mirror: settings.Mirror,
		})
		if err != nil {
			return zerr.Wrap(err, "fetch source tarball")
		}
		if want := settings.ExpectedBlake3; want != "" && !strings.EqualFold(want, res.Digest) {
			return zerr.With(
				zerr.With(zerr.Wrap(domain.ErrChecksumMismatch, "source tarball"), "expected", want),
				"actual", res.Digest,
			)
		}
		steps = append(steps, domain.Succeeded(StepFetchTarball))

		if err := os.RemoveAll(l.Src()); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrArchiveExtractFailed, err.Error()), "path", l.Src())
		}
		if err := t.stamps.Delete(l.StampDir(), domain.PrepareStampName); err != nil {
			return err
		}
		if err := t.archiver.ExtractTarXz(ctx, res.Path, l.Src(), 1); err != nil {
			return zerr.Wrap(err, "unpack source tarball")
		}
		steps = append(steps, domain.Succeeded(StepUnpackTarball))

		return t.stamps.Put(l.StampDir(), domain.Stamp{
			Name:      domain.DownloadStampName,
			Revision:  version,
			Digest:    res.Digest,
			Steps:     steps,
			Timestamp: t.now().UTC(),
		})
	})
	return steps, err
}

func upToDate(stamp *domain.Stamp, version, expected string) bool {
	if stamp == nil || stamp.Revision != version {
		return false
	}
	return expected == "" || strings.EqualFold(expected, stamp.Digest)
}
