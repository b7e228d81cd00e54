package ucpatch_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/adapters/ucpatch"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const utils = "ungoogled-chromium/utils"

func setup(t *testing.T) (*ucpatch.Tool, *mocks.MockExecutor, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)
	return ucpatch.New(exec, log), exec, log
}

func args(want ...string) gomock.Matcher {
	return gomock.Cond(func(cmd domain.Command) bool {
		return assert.ObjectsAreEqual(want, cmd.Args)
	})
}

func TestReadSeries(t *testing.T) {
	got, err := ucpatch.ReadSeries(filepath.Join("testdata", "patches"))
	require.NoError(t, err)
	assert.Equal(t, []string{"core/fix-a.patch", "core/fix-b.patch", "core/broken.patch"}, got)
}

func TestReadSeries_Missing(t *testing.T) {
	_, err := ucpatch.ReadSeries(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrManifestReadFailed)
}

func TestPreflight(t *testing.T) {
	assert.NoError(t, ucpatch.Preflight(filepath.Join("testdata", "patches", "core", "fix-a.patch")))
	assert.NoError(t, ucpatch.Preflight(filepath.Join("testdata", "patches", "core", "fix-b.patch")))
	assert.ErrorIs(t, ucpatch.Preflight(filepath.Join("testdata", "patches", "core", "broken.patch")), domain.ErrPatchMalformed)
	assert.ErrorIs(t, ucpatch.Preflight(filepath.Join("testdata", "missing.patch")), domain.ErrPatchMalformed)
}

func TestApplySeries_Strict(t *testing.T) {
	tool, exec, _ := setup(t)
	root, err := filepath.Abs("testdata")
	require.NoError(t, err)

	exec.EXPECT().Run(gomock.Any(), args(utils+"/patches.py", "apply", "src", "patches")).
		Do(func(_ context.Context, cmd domain.Command) {
			assert.Equal(t, root, cmd.Dir)
			assert.Equal(t, filepath.Join(root, "src", "patch.exe"), cmd.Env["PATCH_BIN"])
		})

	report, err := tool.ApplySeries(context.Background(), root, utils, "src", "patches",
		domain.PatchOptions{PatchBin: filepath.Join("src", "patch.exe")})
	require.NoError(t, err)
	assert.Equal(t, "patches", report.Dir)
	assert.Len(t, report.Applied, 3)
	assert.Empty(t, report.Skipped)
}

func TestApplySeries_StrictFailure(t *testing.T) {
	tool, exec, _ := setup(t)

	exec.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(zerr.With(zerr.Wrap(domain.ErrCommandFailed, "patches.py"), "exit_code", 1))

	_, err := tool.ApplySeries(context.Background(), "testdata", utils, "src", "patches", domain.PatchOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestApplySeries_BestEffort(t *testing.T) {
	tool, exec, log := setup(t)
	root := "testdata"
	fixA := filepath.Join(root, "patches", "core", "fix-a.patch")
	fixB := filepath.Join(root, "patches", "core", "fix-b.patch")
	flags := func(file string) []string {
		return []string{"-p1", "--ignore-whitespace", "--forward", "--no-backup-if-mismatch", "-d", "src", "-i", file}
	}

	gomock.InOrder(
		exec.EXPECT().Output(gomock.Any(), args(append([]string{"patch", "--dry-run"}, flags(fixA)...)...)).
			Return(domain.CommandOutput{}, nil),
		exec.EXPECT().Run(gomock.Any(), args(append([]string{"patch"}, flags(fixA)...)...)),
		exec.EXPECT().Output(gomock.Any(), args(append([]string{"patch", "--dry-run"}, flags(fixB)...)...)).
			Return(domain.CommandOutput{Stdout: "1 out of 1 hunk FAILED\n", ExitCode: 1}, nil),
	)
	log.EXPECT().Warn(gomock.Any()).Times(2)

	report, err := tool.ApplySeries(context.Background(), root, utils, "src", "patches",
		domain.PatchOptions{BestEffort: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"core/fix-a.patch"}, report.Applied)
	assert.Equal(t, []string{"core/fix-b.patch", "core/broken.patch"}, report.Skipped)
}

func TestApplySeries_BestEffortPatchBin(t *testing.T) {
	tool, exec, log := setup(t)
	root, err := filepath.Abs("testdata")
	require.NoError(t, err)
	bin := filepath.Join(root, "src", "patch.exe")

	exec.EXPECT().Output(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, cmd domain.Command) {
			assert.Equal(t, bin, cmd.Args[0])
		}).
		Return(domain.CommandOutput{ExitCode: 1}, nil).Times(2)
	log.EXPECT().Warn(gomock.Any()).Times(3)

	report, err := tool.ApplySeries(context.Background(), root, utils, "src", "patches",
		domain.PatchOptions{BestEffort: true, PatchBin: filepath.Join("src", "patch.exe")})
	require.NoError(t, err)
	assert.Empty(t, report.Applied)
	assert.Len(t, report.Skipped, 3)
}

func TestApplySeries_MissingSeries(t *testing.T) {
	tool, _, _ := setup(t)

	_, err := tool.ApplySeries(context.Background(), t.TempDir(), utils, "src", "patches", domain.PatchOptions{})
	assert.ErrorIs(t, err, domain.ErrManifestReadFailed)
}

func TestScripts(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(*ucpatch.Tool) error
		want []string
	}{
		{
			name: "fixup",
			call: func(tl *ucpatch.Tool) error {
				return tl.ApplyFixup(ctx, "/work", "ungoogled-chromium-android/patches/Other/ungoogled-main-repo-fix.patch")
			},
			want: []string{"patch", "-p1", "--ignore-whitespace", "-i",
				"ungoogled-chromium-android/patches/Other/ungoogled-main-repo-fix.patch", "--no-backup-if-mismatch"},
		},
		{
			name: "prune",
			call: func(tl *ucpatch.Tool) error {
				return tl.Prune(ctx, "/work", utils, "src", "ungoogled-chromium/pruning.list.filtered")
			},
			want: []string{utils + "/prune_binaries.py", "src", "ungoogled-chromium/pruning.list.filtered"},
		},
		{
			name: "substitute",
			call: func(tl *ucpatch.Tool) error {
				return tl.SubstituteDomains(ctx, "/work", utils, "src", domain.SubstitutionRequest{
					RegexList: "ungoogled-chromium/domain_regex.list",
					FileList:  "ungoogled-chromium/domain_substitution.list.filtered",
					CacheFile: "domsubcache.tar.gz",
				})
			},
			want: []string{utils + "/domain_substitution.py", "apply",
				"-r", "ungoogled-chromium/domain_regex.list",
				"-f", "ungoogled-chromium/domain_substitution.list.filtered",
				"-c", "domsubcache.tar.gz", "src"},
		},
		{
			name: "retrieve",
			call: func(tl *ucpatch.Tool) error {
				return tl.Retrieve(ctx, "/work", utils, []string{"a.ini", "b.ini"}, "/cache")
			},
			want: []string{utils + "/downloads.py", "retrieve", "-i", "a.ini", "b.ini", "-c", "/cache"},
		},
		{
			name: "unpack",
			call: func(tl *ucpatch.Tool) error {
				return tl.Unpack(ctx, "/work", utils, []string{"a.ini", "b.ini"}, "/cache", "/work/src")
			},
			want: []string{utils + "/downloads.py", "unpack", "-i", "a.ini", "b.ini", "-c", "/cache", "/work/src"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, exec, _ := setup(t)
			exec.EXPECT().Run(gomock.Any(), args(tt.want...)).
				Do(func(_ context.Context, cmd domain.Command) {
					assert.Equal(t, "/work", cmd.Dir)
				})
			require.NoError(t, tt.call(tool))
		})
	}
}
