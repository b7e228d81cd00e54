package pipeline_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports/mocks"
	"go.trai.ch/ucb/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func TestSyncArgs(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Invocation
		want []string
	}{
		{name: "default", want: []string{"--with_tags", "--with_branch_heads"}},
		{name: "shallow", in: domain.Invocation{Shallow: true}, want: []string{"--shallow"}},
		{
			name: "reset",
			in:   domain.Invocation{Reset: true},
			want: []string{"--revision", "src@abc", "--force", "--upstream", "--reset", "--with_tags", "--with_branch_heads"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pipeline.SyncArgs(resolve(t, tt.in), "abc"))
		})
	}
}

type depsyncFixture struct {
	*harness
	gclient *mocks.MockDependencyFetcher
	exec    *mocks.MockExecutor
	distro  *mocks.MockDistroDetector
	syncer  *pipeline.DependencySyncer
}

func newDepsync(t *testing.T) *depsyncFixture {
	h := newHarness(t)
	f := &depsyncFixture{
		harness: h,
		gclient: mocks.NewMockDependencyFetcher(h.ctrl),
		exec:    mocks.NewMockExecutor(h.ctrl),
		distro:  mocks.NewMockDistroDetector(h.ctrl),
	}
	f.syncer = pipeline.NewDependencySyncer(f.gclient, f.exec, f.distro, h.logger, h.tracer)
	return f
}

func TestDependencySync_MissingDepotTools(t *testing.T) {
	f := newDepsync(t)
	cfg := resolve(t, domain.Invocation{})

	_, err := f.syncer.Sync(context.Background(), cfg, profile(t, domain.OSLinux), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDepotToolsMissing)
}

func TestDependencySync_RunsSyncAndHooks(t *testing.T) {
	f := newDepsync(t)
	cfg := resolve(t, domain.Invocation{OS: "android", Shallow: true})
	l := cfg.Layout()
	require.NoError(t, os.MkdirAll(l.DepotTools(), 0o750))

	gomock.InOrder(
		f.gclient.EXPECT().Sync(gomock.Any(), cfg.Root, l.DepotTools(), []string{"--shallow"}).Return(nil),
		f.gclient.EXPECT().RunHooks(gomock.Any(), cfg.Root, l.DepotTools()).Return(nil),
	)

	steps, err := f.syncer.Sync(context.Background(), cfg, profile(t, domain.OSAndroid), "")
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, pipeline.StepGClientRunHooks, steps[2].Step)

	data, err := os.ReadFile(l.GClientFile())
	require.NoError(t, err)
	assert.Contains(t, string(data), "target_os = [ 'android' ]")
}

func TestDependencySync_HooksFailure(t *testing.T) {
	f := newDepsync(t)
	cfg := resolve(t, domain.Invocation{})
	require.NoError(t, os.MkdirAll(cfg.Layout().DepotTools(), 0o750))

	f.gclient.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gclient.EXPECT().RunHooks(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrCommandFailed)

	steps, err := f.syncer.Sync(context.Background(), cfg, profile(t, domain.OSLinux), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Len(t, steps, 2)
}

func TestDependencySync_InstallBuildDeps(t *testing.T) {
	tests := []struct {
		name      string
		distro    domain.Distro
		detectErr error
		run       bool
		status    domain.StepStatus
	}{
		{name: "debian", distro: domain.Distro{ID: "debian"}, run: true, status: domain.StepSucceeded},
		{name: "fedora", distro: domain.Distro{ID: "fedora"}, status: domain.StepSkipped},
		{name: "undetectable", detectErr: errors.New("no os-release"), status: domain.StepTolerated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDepsync(t)
			cfg := resolve(t, domain.Invocation{InstallBuildDeps: true})
			require.NoError(t, os.MkdirAll(cfg.Layout().DepotTools(), 0o750))

			f.gclient.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			f.gclient.EXPECT().RunHooks(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			f.distro.EXPECT().Detect().Return(tt.distro, tt.detectErr)
			if tt.run {
				f.exec.EXPECT().Run(gomock.Any(), gomock.Cond(func(cmd domain.Command) bool {
					return cmd.Executable() == "sudo" && cmd.TTY &&
						cmd.Args[1] == "src/build/install-build-deps.sh"
				})).Return(nil)
			}

			steps, err := f.syncer.Sync(context.Background(), cfg, profile(t, domain.OSLinux), "")
			require.NoError(t, err)
			last := steps[len(steps)-1]
			assert.Equal(t, pipeline.StepInstallBuildDeps, last.Step)
			assert.Equal(t, tt.status, last.Status)
		})
	}
}
