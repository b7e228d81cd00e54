package gn_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/adapters/gn"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func linuxRequest() domain.BuildRequest {
	return domain.BuildRequest{
		Src:        "/work/src",
		OutputPath: "out/Release_linux_x64",
		DepotTools: "/work/depot_tools",
		Jobs:       8,
		Targets:    []string{"chrome", "chromedriver"},
	}
}

func TestGen(t *testing.T) {
	tests := []struct {
		name   string
		gn     string
		binary string
	}{
		{name: "default gn", gn: "", binary: "gn"},
		{name: "bootstrapped gn", gn: "out/Release/gn", binary: "out/Release/gn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			exec := mocks.NewMockExecutor(ctrl)

			req := linuxRequest()
			req.GN = tt.gn

			exec.EXPECT().Run(gomock.Any(), gomock.Any()).Do(func(_ context.Context, cmd domain.Command) {
				assert.Equal(t, []string{tt.binary, "gen", "out/Release_linux_x64", "--fail-on-unused-args"}, cmd.Args)
				assert.Equal(t, "/work/src", cmd.Dir)
				assert.Equal(t, []string{"/work/depot_tools"}, cmd.PathPrefix)
			})

			require.NoError(t, gn.New(exec, nil).Gen(context.Background(), req))
		})
	}
}

func TestCompile(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	exec.EXPECT().Run(gomock.Any(), gomock.Any()).Do(func(_ context.Context, cmd domain.Command) {
		assert.Equal(t,
			[]string{"autoninja", "-j", "8", "-C", "out/Release_linux_x64", "chrome", "chromedriver"},
			cmd.Args,
		)
		assert.True(t, cmd.TTY)
		assert.Equal(t, "ninja", cmd.Label())
	})

	require.NoError(t, gn.New(exec, nil).Compile(context.Background(), linuxRequest()))
}

func TestCompile_NoTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	req := linuxRequest()
	req.Targets = nil

	err := gn.New(exec, nil).Compile(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedTarget)
}

func TestCompile_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	exec.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(zerr.With(zerr.Wrap(domain.ErrCommandFailed, "ninja"), "exit_code", 1))

	err := gn.New(exec, nil).Compile(context.Background(), linuxRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestBootstrapGen(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	exec.EXPECT().Run(gomock.Any(), gomock.Any()).Do(func(_ context.Context, cmd domain.Command) {
		assert.Equal(t,
			[]string{"tools/gn/bootstrap/bootstrap.py", `--gn-gen-args=is_debug=false target_os="linux" `},
			cmd.Args,
		)
		assert.Equal(t, "/work/src", cmd.Dir)
	})

	err := gn.New(exec, nil).BootstrapGen(context.Background(), linuxRequest(), `is_debug=false target_os="linux" `)
	require.NoError(t, err)
}

func TestWindowsWithoutToolchain(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	req := linuxRequest()
	req.WindowsToolchain = true

	_, err := gn.New(exec, nil).BootstrapGN(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolchainNotFound)
}

func TestVCVarsScript(t *testing.T) {
	got := gn.VCVarsScript(`C:\VS\VC\Auxiliary\Build\vcvars64.bat`, []string{"gn.exe", "gen", "out"})

	assert.Equal(t,
		"call \"C:\\VS\\VC\\Auxiliary\\Build\\vcvars64.bat\" >nul\n"+
			"set DEPOT_TOOLS_WIN_TOOLCHAIN=0\n"+
			"\"gn.exe\" \"gen\" \"out\"\n"+
			"exit\n",
		got,
	)
}
