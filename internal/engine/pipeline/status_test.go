package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports/mocks"
	"go.trai.ch/ucb/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func TestReporter_Status(t *testing.T) {
	h := newHarness(t)
	archiver := mocks.NewMockArchiver(h.ctrl)
	disk := mocks.NewMockDiskProbe(h.ctrl)
	r := pipeline.NewReporter(pipeline.NewInspector(h.vcs), h.stamps, archiver, disk, h.logger)

	cfg := resolve(t, domain.Invocation{})
	l := cfg.Layout()
	writeFile(t, l.Path("src", "BUILD.gn"), "")
	writeFile(t, l.DomSubCache(), "gz")
	writeFile(t, l.ArgsFile(cfg), "is_debug=false\n")

	h.validTree(l.Src(), false, "abc", domain.DefaultChromiumVersion)
	prepared := &domain.Stamp{Name: domain.PrepareStampName, Timestamp: time.Now().UTC()}
	h.stamps.EXPECT().Get(l.StampDir(), domain.PrepareStampName).Return(prepared, nil)
	h.stamps.EXPECT().Get(l.StampDir(), domain.DownloadStampName).Return(nil, nil)
	archiver.EXPECT().CountTarGz(l.DomSubCache()).Return(42, nil)
	disk.EXPECT().Free(cfg.Root).Return(uint64(7), nil)

	report, err := r.Status(context.Background(), cfg, profile(t, domain.OSLinux))
	require.NoError(t, err)

	require.Len(t, report.Repos, 3)
	assert.True(t, report.Repos[0].MatchesTarget)
	assert.Equal(t, domain.RepoAbsent, report.Repos[1].Kind)
	assert.Equal(t, domain.RepoAbsent, report.Repos[2].Kind)
	assert.Equal(t, prepared, report.Prepared)
	assert.Nil(t, report.Downloaded)
	assert.Equal(t, 42, report.CacheFiles)
	assert.True(t, report.ArgsFile)
	assert.Equal(t, uint64(7), report.FreeBytes)
}

func TestReporter_EmptyWorkspace(t *testing.T) {
	h := newHarness(t)
	archiver := mocks.NewMockArchiver(h.ctrl)
	disk := mocks.NewMockDiskProbe(h.ctrl)
	r := pipeline.NewReporter(pipeline.NewInspector(h.vcs), h.stamps, archiver, disk, h.logger)
	cfg := resolve(t, domain.Invocation{})

	h.stamps.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	disk.EXPECT().Free(gomock.Any()).Return(uint64(0), assert.AnError)

	report, err := r.Status(context.Background(), cfg, profile(t, domain.OSLinux))
	require.NoError(t, err)
	assert.Equal(t, -1, report.CacheFiles)
	assert.False(t, report.ArgsFile)
	assert.Nil(t, report.Prepared)
}
