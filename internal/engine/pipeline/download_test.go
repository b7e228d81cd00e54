package pipeline_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports/mocks"
	"go.trai.ch/ucb/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type downloadFixture struct {
	*harness
	fetcher  *mocks.MockFetcher
	archiver *mocks.MockArchiver
	source   *pipeline.TarballSource
}

func newDownload(t *testing.T) *downloadFixture {
	h := newHarness(t)
	f := &downloadFixture{
		harness:  h,
		fetcher:  mocks.NewMockFetcher(h.ctrl),
		archiver: mocks.NewMockArchiver(h.ctrl),
	}
	f.source = pipeline.NewTarballSource(f.fetcher, f.archiver, h.stamps, h.logger, h.tracer)
	return f
}

func TestTarballSource_FetchAndUnpack(t *testing.T) {
	f := newDownload(t)
	cfg := resolve(t, domain.Invocation{DirectDownload: true})
	l := cfg.Layout()
	writeFile(t, l.Path("src", "old"), "left over")

	archive := l.Path(".ucb", "downloads", domain.TarballName(domain.DefaultChromiumVersion))
	f.stamps.EXPECT().Get(l.StampDir(), domain.DownloadStampName).Return(nil, nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), domain.DownloadRequest{
		URL:  cfg.Settings().TarballURL(),
		Key:  domain.TarballName(domain.DefaultChromiumVersion),
		Dest: l.DownloadDir(),
	}).Return(domain.DownloadResult{Path: archive, Digest: "d1"}, nil)
	f.stamps.EXPECT().Delete(l.StampDir(), domain.PrepareStampName).Return(nil)
	f.archiver.EXPECT().ExtractTarXz(gomock.Any(), archive, l.Src(), 1).
		DoAndReturn(func(_ context.Context, _, dest string, _ int) error {
			_, err := os.Stat(dest + "/old")
			assert.True(t, os.IsNotExist(err), "src must be emptied before unpacking")
			return os.MkdirAll(dest, 0o750)
		})

	var stamp domain.Stamp
	f.stamps.EXPECT().Put(l.StampDir(), gomock.Any()).DoAndReturn(func(_ string, s domain.Stamp) error {
		stamp = s
		return nil
	})

	steps, err := f.source.Sync(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, steps, 2)
	assert.Equal(t, domain.DownloadStampName, stamp.Name)
	assert.Equal(t, domain.DefaultChromiumVersion, stamp.Revision)
	assert.Equal(t, "d1", stamp.Digest)
}

func TestTarballSource_UpToDate(t *testing.T) {
	f := newDownload(t)
	cfg := resolve(t, domain.Invocation{DirectDownload: true})
	require.NoError(t, os.MkdirAll(cfg.Layout().Src(), 0o750))

	f.stamps.EXPECT().Get(gomock.Any(), domain.DownloadStampName).
		Return(&domain.Stamp{Name: domain.DownloadStampName, Revision: domain.DefaultChromiumVersion, Digest: "d1"}, nil)

	steps, err := f.source.Sync(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, domain.StepSkipped, steps[0].Status)
}

func TestTarballSource_ChecksumMismatch(t *testing.T) {
	f := newDownload(t)
	s := domain.DefaultSettings()
	s.ExpectedBlake3 = "expected"
	cfg := resolve(t, domain.Invocation{DirectDownload: true}).WithSettings(s)

	f.stamps.EXPECT().Get(gomock.Any(), domain.DownloadStampName).Return(nil, nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(domain.DownloadResult{Digest: "actual"}, nil)

	_, err := f.source.Sync(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrChecksumMismatch)
}
