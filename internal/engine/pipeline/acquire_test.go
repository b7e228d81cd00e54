package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

const remote = "https://example.test/src.git"

func newAcquirer(h *harness) *pipeline.Acquirer {
	return pipeline.NewAcquirer(h.vcs, pipeline.NewInspector(h.vcs), h.logger, h.tracer)
}

func TestAcquire_AbsentClones(t *testing.T) {
	tests := []struct {
		name    string
		shallow bool
		opts    domain.CloneOptions
	}{
		{name: "full", opts: domain.CloneOptions{Branch: "1.0"}},
		{name: "shallow", shallow: true, opts: domain.CloneOptions{Branch: "1.0", Depth: 1, NoTags: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			path := filepath.Join(t.TempDir(), "src")

			gomock.InOrder(
				h.vcs.EXPECT().Clone(gomock.Any(), remote, path, tt.opts).Return(nil),
				h.vcs.EXPECT().Head(gomock.Any(), path).Return("abc", nil),
			)

			res, err := newAcquirer(h).Acquire(context.Background(), domain.AcquireRequest{
				Remote: remote, Path: path, Revision: "1.0", Shallow: tt.shallow,
			})
			require.NoError(t, err)
			assert.Equal(t, domain.ActionCloned, res.Action)
			assert.Equal(t, "abc", res.Revision)
			assert.True(t, res.Action.Fresh())
		})
	}
}

func TestAcquire_MatchingTagIsNoOp(t *testing.T) {
	h := newHarness(t)
	path := t.TempDir()

	// Only read-only probes are expected; any mutating call fails the controller.
	h.validTree(path, false, "abc", "1.0")

	res, err := newAcquirer(h).Acquire(context.Background(), domain.AcquireRequest{
		Remote: remote, Path: path, Revision: "1.0", Reset: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionNone, res.Action)
	assert.Equal(t, "abc", res.Revision)
}

func TestAcquire_ShallowPinRejected(t *testing.T) {
	h := newHarness(t)
	path := t.TempDir()
	h.validTree(path, true, "abc", "0.9")

	_, err := newAcquirer(h).Acquire(context.Background(), domain.AcquireRequest{
		Remote: remote, Path: path, Revision: "1.0", Pin: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCannotPinShallowRepository)
}

func TestAcquire_ShallowModeKeepsShallowHead(t *testing.T) {
	h := newHarness(t)
	path := t.TempDir()
	h.validTree(path, true, "abc", "")

	res, err := newAcquirer(h).Acquire(context.Background(), domain.AcquireRequest{
		Remote: remote, Path: path, Revision: "1.0", Shallow: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionNone, res.Action)
	assert.Equal(t, "abc", res.Revision)
}

func TestAcquire_ShallowModeLeavesMismatchedFullTree(t *testing.T) {
	h := newHarness(t)
	path := t.TempDir()
	h.validTree(path, false, "old", "0.9")

	// No fetch, checkout or second HEAD read is expected.
	res, err := newAcquirer(h).Acquire(context.Background(), domain.AcquireRequest{
		Remote: remote, Path: path, Revision: "1.0", Shallow: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionNone, res.Action)
	assert.Equal(t, "old", res.Revision)
}

func TestAcquire_MismatchUpdates(t *testing.T) {
	tests := []struct {
		name  string
		reset bool
	}{
		{name: "keep local changes"},
		{name: "reset", reset: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			path := t.TempDir()
			h.validTree(path, false, "old", "0.9")

			var calls []any
			if tt.reset {
				calls = append(calls,
					h.vcs.EXPECT().Clean(gomock.Any(), path).Return(nil),
					h.vcs.EXPECT().ResetHard(gomock.Any(), path).Return(nil),
				)
			}
			calls = append(calls,
				h.vcs.EXPECT().Fetch(gomock.Any(), path, pipeline.OriginRemote).Return(nil),
				h.vcs.EXPECT().Checkout(gomock.Any(), path, "1.0").Return(nil),
				h.vcs.EXPECT().Head(gomock.Any(), path).Return("new", nil),
			)
			gomock.InOrder(calls...)

			res, err := newAcquirer(h).Acquire(context.Background(), domain.AcquireRequest{
				Remote: remote, Path: path, Revision: "1.0", Reset: tt.reset,
			})
			require.NoError(t, err)
			assert.Equal(t, domain.ActionUpdated, res.Action)
			assert.Equal(t, "new", res.Revision)
		})
	}
}

func TestAcquire_DefaultBranchPulls(t *testing.T) {
	h := newHarness(t)
	path := t.TempDir()
	h.validTree(path, false, "old", "")

	gomock.InOrder(
		h.vcs.EXPECT().DefaultBranch(gomock.Any(), path, pipeline.OriginRemote).Return("main", nil),
		h.vcs.EXPECT().Pull(gomock.Any(), path, pipeline.OriginRemote, "main").Return(nil),
		h.vcs.EXPECT().Head(gomock.Any(), path).Return("new", nil),
	)

	res, err := newAcquirer(h).Acquire(context.Background(), domain.AcquireRequest{Remote: remote, Path: path})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionUpdated, res.Action)
}

func TestAcquire_InvalidIsRecloned(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "src")
	writeFile(t, path, "stray file")

	h.vcs.EXPECT().Clone(gomock.Any(), remote, path, domain.CloneOptions{Branch: "1.0"}).
		DoAndReturn(func(_ context.Context, _, p string, _ domain.CloneOptions) error {
			_, err := os.Stat(p)
			assert.True(t, os.IsNotExist(err), "invalid path must be removed before cloning")
			return nil
		})
	h.vcs.EXPECT().Head(gomock.Any(), path).Return("abc", nil)

	res, err := newAcquirer(h).Acquire(context.Background(), domain.AcquireRequest{
		Remote: remote, Path: path, Revision: "1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionRecloned, res.Action)
}
