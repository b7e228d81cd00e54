// Package gn implements ports.BuildSystem with gn and ninja.
package gn

import (
	"context"
	"path/filepath"
	"strconv"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	bootstrapScript = filepath.Join("tools", "gn", "bootstrap", "bootstrap.py")
	windowsNinja    = filepath.Join("third_party", "ninja", "ninja.exe")
)

const (
	gnBinary         = "gn"
	autoninjaBinary  = "autoninja"
	windowsGN        = "gn.exe"
	windowsPython    = "python"
	failOnUnusedArgs = "--fail-on-unused-args"
)

var _ ports.BuildSystem = (*BuildSystem)(nil)

// BuildSystem runs gn and ninja inside the source tree.
type BuildSystem struct {
	exec      ports.Executor
	toolchain *Toolchain
}

// New creates a BuildSystem. toolchain is only consulted for Windows requests.
func New(exec ports.Executor, toolchain *Toolchain) *BuildSystem {
	return &BuildSystem{exec: exec, toolchain: toolchain}
}

// BootstrapGen builds gn from source and lets it generate build files with args.
func (b *BuildSystem) BootstrapGen(ctx context.Context, req domain.BuildRequest, args string) error {
	cmd := b.command(req, "gn bootstrap", bootstrapScript, "--gn-gen-args="+args)
	if err := b.exec.Run(ctx, cmd); err != nil {
		return zerr.Wrap(err, "bootstrap gn")
	}
	return nil
}

// BootstrapGN builds gn.exe into the output folder without generating build files.
func (b *BuildSystem) BootstrapGN(ctx context.Context, req domain.BuildRequest) (string, error) {
	gn := filepath.Join(req.OutputPath, windowsGN)

	cmd, err := b.windowsCommand(ctx, req, "gn bootstrap",
		windowsPython, bootstrapScript, "-o", gn, "--skip-generate-buildfiles")
	if err != nil {
		return "", err
	}
	if err := b.exec.Run(ctx, cmd); err != nil {
		return "", zerr.Wrap(err, "bootstrap gn")
	}
	return gn, nil
}

// Gen runs gn gen on the output folder. Unused arguments fail the run.
func (b *BuildSystem) Gen(ctx context.Context, req domain.BuildRequest) error {
	gn := req.GN
	if gn == "" {
		gn = gnBinary
	}

	argv := []string{gn, "gen", req.OutputPath, failOnUnusedArgs}
	cmd, err := b.maybeWindows(ctx, req, "gn gen", argv...)
	if err != nil {
		return err
	}
	if err := b.exec.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "gn gen"), "output", req.OutputPath)
	}
	return nil
}

// Compile builds the requested targets with ninja.
func (b *BuildSystem) Compile(ctx context.Context, req domain.BuildRequest) error {
	if len(req.Targets) == 0 {
		return zerr.Wrap(domain.ErrUnsupportedTarget, "no build targets")
	}

	ninja := autoninjaBinary
	if req.WindowsToolchain {
		ninja = windowsNinja
	}
	argv := append([]string{ninja, "-j", strconv.Itoa(req.Jobs), "-C", req.OutputPath}, req.Targets...)

	cmd, err := b.maybeWindows(ctx, req, "ninja", argv...)
	if err != nil {
		return err
	}
	cmd.TTY = true
	if err := b.exec.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "ninja"), "targets", req.Targets)
	}
	return nil
}

func (b *BuildSystem) command(req domain.BuildRequest, name string, argv ...string) domain.Command {
	cmd := domain.NewCommand(req.Src, argv...)
	if req.DepotTools != "" {
		cmd = cmd.WithPathPrefix(req.DepotTools)
	}
	cmd.Name = name
	return cmd
}

func (b *BuildSystem) maybeWindows(ctx context.Context, req domain.BuildRequest, name string, argv ...string) (domain.Command, error) {
	if req.WindowsToolchain {
		return b.windowsCommand(ctx, req, name, argv...)
	}
	return b.command(req, name, argv...), nil
}

// windowsCommand runs argv inside cmd.exe after loading the Visual Studio environment.
func (b *BuildSystem) windowsCommand(ctx context.Context, req domain.BuildRequest, name string, argv ...string) (domain.Command, error) {
	if b.toolchain == nil {
		return domain.Command{}, zerr.Wrap(domain.ErrToolchainNotFound, "no toolchain locator")
	}
	vcvars, err := b.toolchain.VCVars(ctx)
	if err != nil {
		return domain.Command{}, err
	}

	cmd := b.command(req, name, "cmd.exe", "/k")
	cmd.Stdin = VCVarsScript(vcvars, argv)
	return cmd, nil
}
