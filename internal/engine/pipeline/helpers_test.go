package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/ucb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	ctrl   *gomock.Controller
	vcs    *mocks.MockVCS
	logger *mocks.MockLogger
	tracer *mocks.MockTracer
	stamps *mocks.MockStampStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		ctrl:   ctrl,
		vcs:    mocks.NewMockVCS(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		tracer: mocks.NewMockTracer(ctrl),
		stamps: mocks.NewMockStampStore(ctrl),
	}

	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	h.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	return h
}

func resolve(t *testing.T, in domain.Invocation) domain.BuildConfig {
	t.Helper()
	if in.Root == "" {
		in.Root = t.TempDir()
	}
	if in.OS == "" {
		in.OS = "linux"
	}
	if in.Arch == "" {
		in.Arch = "x64"
	}
	cfg, err := domain.ResolveConfig(in)
	require.NoError(t, err)
	return cfg
}

func profile(t *testing.T, target domain.TargetOS) domain.PlatformProfile {
	t.Helper()
	p, err := domain.ProfileFor(target)
	require.NoError(t, err)
	return p
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// validTree expects the inspector probes for a working tree at path.
func (h *harness) validTree(path string, shallow bool, head, tag string) {
	h.vcs.EXPECT().ProbeWorkTree(gomock.Any(), path).
		Return(domain.WorkTreeProbe{IsWorkTree: true, TopLevel: path}, nil)
	h.vcs.EXPECT().IsShallow(gomock.Any(), path).Return(shallow, nil)
	h.vcs.EXPECT().Head(gomock.Any(), path).Return(head, nil)
	h.vcs.EXPECT().ExactTag(gomock.Any(), path, head).Return(tag, nil)
}
