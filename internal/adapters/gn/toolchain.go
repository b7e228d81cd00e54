package gn

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Toolchain locates the Visual Studio build environment with vswhere.
type Toolchain struct {
	exec   ports.Executor
	getenv func(string) string
	stat   func(string) (os.FileInfo, error)

	once   sync.Once
	vcvars string
	err    error
}

// NewToolchain creates a Toolchain reading the host environment.
func NewToolchain(exec ports.Executor) *Toolchain {
	return &Toolchain{exec: exec, getenv: os.Getenv, stat: os.Stat}
}

// VCVars returns the path of vcvars64.bat of the latest installation. The lookup runs once.
func (t *Toolchain) VCVars(ctx context.Context) (string, error) {
	t.once.Do(func() {
		t.vcvars, t.err = t.locate(ctx)
	})
	return t.vcvars, t.err
}

func (t *Toolchain) locate(ctx context.Context) (string, error) {
	vswhere := filepath.Join(t.getenv("ProgramFiles(x86)"), "Microsoft Visual Studio", "Installer", "vswhere.exe")

	out, err := t.exec.Output(ctx, domain.NewCommand("", vswhere, "-prerelease", "-latest", "-property", "installationPath"))
	if err != nil {
		return "", zerr.Wrap(domain.ErrToolchainNotFound, err.Error())
	}
	if !out.Success() || out.Trimmed() == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrToolchainNotFound, "vswhere found no installation"), "exit_code", out.ExitCode)
	}

	vcvars := filepath.Join(out.Trimmed(), "VC", "Auxiliary", "Build", "vcvars64.bat")
	if _, err := t.stat(vcvars); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrToolchainNotFound, "vcvars64.bat missing"), "path", vcvars)
	}
	return vcvars, nil
}

// VCVarsScript renders the cmd.exe input that loads vcvars and runs argv.
func VCVarsScript(vcvars string, argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = `"` + a + `"`
	}

	lines := []string{
		`call "` + vcvars + `" >nul`,
		"set DEPOT_TOOLS_WIN_TOOLCHAIN=0",
		strings.Join(quoted, " "),
		"exit",
	}
	return strings.Join(lines, "\n") + "\n"
}
