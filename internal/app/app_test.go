package app_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/app"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/ucb/internal/core/ports/mocks"
	"go.trai.ch/ucb/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	vcs      *mocks.MockVCS
	gclient  *mocks.MockDependencyFetcher
	build    *mocks.MockBuildSystem
	smoke    *mocks.MockSmokeTester
	disk     *mocks.MockDiskProbe
	stamps   *mocks.MockStampStore
	renderer *mocks.MockRenderer
	logger   *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		vcs:      mocks.NewMockVCS(ctrl),
		gclient:  mocks.NewMockDependencyFetcher(ctrl),
		build:    mocks.NewMockBuildSystem(ctrl),
		smoke:    mocks.NewMockSmokeTester(ctrl),
		disk:     mocks.NewMockDiskProbe(ctrl),
		stamps:   mocks.NewMockStampStore(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	p := pipeline.New(pipeline.Deps{
		VCS:       f.vcs,
		GClient:   f.gclient,
		Patch:     mocks.NewMockPatchTool(ctrl),
		Downloads: mocks.NewMockDownloadsTool(ctrl),
		Build:     f.build,
		Exec:      mocks.NewMockExecutor(ctrl),
		Fetcher:   mocks.NewMockFetcher(ctrl),
		Archiver:  mocks.NewMockArchiver(ctrl),
		Smoke:     f.smoke,
		Distro:    mocks.NewMockDistroDetector(ctrl),
		Disk:      f.disk,
		Stamps:    f.stamps,
		Logger:    f.logger,
		Tracer:    tracer,
	})
	f.app = app.New(f.loader, p, f.logger, tracer, f.renderer)
	return f
}

func workspace(t *testing.T) (string, domain.Layout) {
	t.Helper()
	root := t.TempDir()
	l := domain.NewLayout(root)
	require.NoError(t, os.MkdirAll(l.DepotTools(), 0o750))
	return root, l
}

func TestApp_Sync_AbsentTree(t *testing.T) {
	f := newFixture(t)
	root, l := workspace(t)

	f.loader.EXPECT().Load(root).Return(domain.DefaultSettings(), nil)
	gomock.InOrder(
		f.vcs.EXPECT().Clone(gomock.Any(), domain.DefaultChromiumOrigin, l.Src(),
			domain.CloneOptions{Branch: domain.DefaultChromiumVersion}).Return(nil),
		f.vcs.EXPECT().Head(gomock.Any(), l.Src()).Return("abc", nil),
		f.stamps.EXPECT().Delete(l.StampDir(), domain.PrepareStampName).Return(nil),
		f.gclient.EXPECT().Sync(gomock.Any(), root, l.DepotTools(), []string{"--with_tags", "--with_branch_heads"}).Return(nil),
		f.gclient.EXPECT().RunHooks(gomock.Any(), root, l.DepotTools()).Return(nil),
	)
	f.renderer.EXPECT().Stop().Return(nil)

	err := f.app.Sync(context.Background(), domain.Invocation{Root: root, OS: "linux", Arch: "x64"})
	require.NoError(t, err)
}

func TestApp_Sync_SecondRunStillRunsHooks(t *testing.T) {
	f := newFixture(t)
	root, l := workspace(t)
	require.NoError(t, os.MkdirAll(l.Src(), 0o750))

	f.loader.EXPECT().Load(root).Return(domain.DefaultSettings(), nil)
	f.vcs.EXPECT().ProbeWorkTree(gomock.Any(), l.Src()).Return(domain.WorkTreeProbe{IsWorkTree: true, TopLevel: l.Src()}, nil)
	f.vcs.EXPECT().IsShallow(gomock.Any(), l.Src()).Return(false, nil)
	f.vcs.EXPECT().Head(gomock.Any(), l.Src()).Return("abc", nil)
	f.vcs.EXPECT().ExactTag(gomock.Any(), l.Src(), "abc").Return(domain.DefaultChromiumVersion, nil)
	f.gclient.EXPECT().Sync(gomock.Any(), root, l.DepotTools(), gomock.Any()).Return(nil)
	f.gclient.EXPECT().RunHooks(gomock.Any(), root, l.DepotTools()).Return(nil)
	f.renderer.EXPECT().Stop().Return(nil)

	err := f.app.Sync(context.Background(), domain.Invocation{Root: root, OS: "linux", Arch: "x64"})
	require.NoError(t, err)
}

func TestApp_Sync_ResetPinsShallowTree(t *testing.T) {
	f := newFixture(t)
	root, l := workspace(t)
	require.NoError(t, os.MkdirAll(l.Src(), 0o750))

	f.loader.EXPECT().Load(root).Return(domain.DefaultSettings(), nil)
	f.vcs.EXPECT().ProbeWorkTree(gomock.Any(), l.Src()).Return(domain.WorkTreeProbe{IsWorkTree: true, TopLevel: l.Src()}, nil)
	f.vcs.EXPECT().IsShallow(gomock.Any(), l.Src()).Return(true, nil)
	f.vcs.EXPECT().Head(gomock.Any(), l.Src()).Return("abc", nil)
	f.vcs.EXPECT().ExactTag(gomock.Any(), l.Src(), "abc").Return("", nil)
	f.renderer.EXPECT().Stop().Return(nil)

	err := f.app.Sync(context.Background(), domain.Invocation{Root: root, OS: "linux", Arch: "x64", Reset: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCannotPinShallowRepository)
}

func TestApp_Sync_DefaultModeRejectsShallowTree(t *testing.T) {
	f := newFixture(t)
	root, l := workspace(t)
	require.NoError(t, os.MkdirAll(l.Src(), 0o750))

	f.loader.EXPECT().Load(root).Return(domain.DefaultSettings(), nil)
	f.vcs.EXPECT().ProbeWorkTree(gomock.Any(), l.Src()).Return(domain.WorkTreeProbe{IsWorkTree: true, TopLevel: l.Src()}, nil)
	f.vcs.EXPECT().IsShallow(gomock.Any(), l.Src()).Return(true, nil)
	f.vcs.EXPECT().Head(gomock.Any(), l.Src()).Return("old", nil)
	f.vcs.EXPECT().ExactTag(gomock.Any(), l.Src(), "old").Return("", nil)
	f.renderer.EXPECT().Stop().Return(nil)

	// gclient must not run against a tree left at the wrong revision.
	err := f.app.Sync(context.Background(), domain.Invocation{Root: root, OS: "linux", Arch: "x64"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCannotPinShallowRepository)
}

func TestApp_Sync_ShallowModeKeepsShallowTree(t *testing.T) {
	f := newFixture(t)
	root, l := workspace(t)
	require.NoError(t, os.MkdirAll(l.Src(), 0o750))

	f.loader.EXPECT().Load(root).Return(domain.DefaultSettings(), nil)
	f.vcs.EXPECT().ProbeWorkTree(gomock.Any(), l.Src()).Return(domain.WorkTreeProbe{IsWorkTree: true, TopLevel: l.Src()}, nil)
	f.vcs.EXPECT().IsShallow(gomock.Any(), l.Src()).Return(true, nil)
	f.vcs.EXPECT().Head(gomock.Any(), l.Src()).Return("old", nil)
	f.vcs.EXPECT().ExactTag(gomock.Any(), l.Src(), "old").Return("", nil)
	f.gclient.EXPECT().Sync(gomock.Any(), root, l.DepotTools(), []string{"--shallow"}).Return(nil)
	f.gclient.EXPECT().RunHooks(gomock.Any(), root, l.DepotTools()).Return(nil)
	f.renderer.EXPECT().Stop().Return(nil)

	err := f.app.Sync(context.Background(), domain.Invocation{Root: root, OS: "linux", Arch: "x64", Shallow: true})
	require.NoError(t, err)
}

func TestApp_InvalidConfiguration(t *testing.T) {
	f := newFixture(t)

	err := f.app.Sync(context.Background(), domain.Invocation{OS: "linux", Arch: "x64", Shallow: true, Reset: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestApp_SettingsError(t *testing.T) {
	f := newFixture(t)
	root := t.TempDir()

	f.loader.EXPECT().Load(root).Return(domain.Settings{}, domain.ErrConfigParseFailed)

	err := f.app.Prepare(context.Background(), domain.Invocation{Root: root, OS: "linux", Arch: "x64"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Build_SmokeSkippedOutsideLinux(t *testing.T) {
	f := newFixture(t)
	root := t.TempDir()
	p, err := domain.ProfileFor(domain.OSAndroid)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(domain.NewLayout(root).Path(p.PatchRepoDir), 0o750))
	require.NoError(t, os.WriteFile(domain.NewLayout(root).Path(p.FlagsFile()), nil, 0o600))

	f.loader.EXPECT().Load(root).Return(domain.DefaultSettings(), nil)
	f.disk.EXPECT().Free(root).Return(uint64(1)<<40, nil)
	f.build.EXPECT().Gen(gomock.Any(), gomock.Any()).Return(nil)
	f.build.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil)
	f.renderer.EXPECT().Stop().Return(nil)

	err = f.app.Build(context.Background(), domain.Invocation{Root: root, OS: "android", Arch: "arm64"}, app.BuildOptions{Smoke: true})
	require.NoError(t, err)
}

func TestApp_Clean_RequiresForce(t *testing.T) {
	f := newFixture(t)
	root := t.TempDir()
	f.loader.EXPECT().Load(root).Return(domain.DefaultSettings(), nil)

	err := f.app.Clean(context.Background(), domain.Invocation{Root: root, OS: "linux", Arch: "x64", OutputDir: "elsewhere"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutputDirNotDefault)
}

type switchableLogger struct {
	ports.Logger
	json, verbose bool
}

func (l *switchableLogger) SetJSON(enable bool)    { l.json = enable }
func (l *switchableLogger) SetVerbose(enable bool) { l.verbose = enable }

func TestApp_ConfigureLogging(t *testing.T) {
	log := &switchableLogger{}
	a := app.New(nil, nil, log, nil, nil)

	a.ConfigureLogging(true, true)
	assert.True(t, log.json)
	assert.True(t, log.verbose)
}
