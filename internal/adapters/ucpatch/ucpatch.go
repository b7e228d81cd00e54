// Package ucpatch drives the ungoogled-chromium utility scripts and patch(1).
package ucpatch

import (
	"context"
	"path/filepath"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	patchBinary       = "patch"
	pruneScript       = "prune_binaries.py"
	patchesScript     = "patches.py"
	substituteScript  = "domain_substitution.py"
	downloadsScript   = "downloads.py"
	patchBinEnv       = "PATCH_BIN"
	defaultStripLevel = "-p1"
)

var (
	_ ports.PatchTool     = (*Tool)(nil)
	_ ports.DownloadsTool = (*Tool)(nil)
)

// Tool implements ports.PatchTool and ports.DownloadsTool.
// Every command runs in the workspace root, so relative paths resolve against it.
type Tool struct {
	exec   ports.Executor
	logger ports.Logger
}

// New creates a Tool.
func New(exec ports.Executor, logger ports.Logger) *Tool {
	return &Tool{exec: exec, logger: logger}
}

// ApplyFixup applies patchFile to root with patch(1).
func (t *Tool) ApplyFixup(ctx context.Context, root, patchFile string) error {
	cmd := domain.NewCommand(root, patchBinary, defaultStripLevel, "--ignore-whitespace",
		"-i", patchFile, "--no-backup-if-mismatch")
	cmd.Name = "fixup " + filepath.Base(patchFile)
	if err := t.exec.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "apply fix-up patch"), "patch", patchFile)
	}
	return nil
}

// Prune removes the prebuilt binaries listed in list from src.
func (t *Tool) Prune(ctx context.Context, root, utilsDir, src, list string) error {
	cmd := domain.NewCommand(root, filepath.Join(utilsDir, pruneScript), src, list)
	cmd.Name = "prune " + filepath.Base(list)
	if err := t.exec.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "prune binaries"), "list", list)
	}
	return nil
}

// SubstituteDomains runs one domain substitution pass over src.
func (t *Tool) SubstituteDomains(ctx context.Context, root, utilsDir, src string, req domain.SubstitutionRequest) error {
	cmd := domain.NewCommand(root, filepath.Join(utilsDir, substituteScript), "apply",
		"-r", req.RegexList,
		"-f", req.FileList,
		"-c", req.CacheFile,
		src,
	)
	cmd.Name = "substitute " + filepath.Base(req.FileList)
	if err := t.exec.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "domain substitution"), "list", req.FileList)
	}
	return nil
}

// Retrieve downloads the archives listed in inis into cache.
func (t *Tool) Retrieve(ctx context.Context, root, utilsDir string, inis []string, cache string) error {
	args := append([]string{filepath.Join(utilsDir, downloadsScript), "retrieve", "-i"}, inis...)
	args = append(args, "-c", cache)
	cmd := domain.NewCommand(root, args...)
	cmd.Name = "downloads retrieve"
	if err := t.exec.Run(ctx, cmd); err != nil {
		return zerr.Wrap(err, "retrieve downloads")
	}
	return nil
}

// Unpack unpacks the archives listed in inis from cache into dest.
func (t *Tool) Unpack(ctx context.Context, root, utilsDir string, inis []string, cache, dest string) error {
	args := append([]string{filepath.Join(utilsDir, downloadsScript), "unpack", "-i"}, inis...)
	args = append(args, "-c", cache, dest)
	cmd := domain.NewCommand(root, args...)
	cmd.Name = "downloads unpack"
	if err := t.exec.Run(ctx, cmd); err != nil {
		return zerr.Wrap(err, "unpack downloads")
	}
	return nil
}

// abs resolves p against root.
func abs(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
