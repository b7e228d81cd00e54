package ucpatch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReadSeries returns the patch entries of the series file in patchDir.
// Blank lines and '#' comments are ignored.
func ReadSeries(patchDir string) ([]string, error) {
	path := filepath.Join(patchDir, domain.SeriesFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", path)
	}

	var entries []string
	for _, line := range domain.ParseManifest(string(data)) {
		if strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, strings.Fields(line)[0])
	}
	return entries, nil
}

// ApplySeries applies the series in patchDir to src.
// Strict mode hands the whole series to patches.py and fails on the first error.
// Best-effort mode applies each patch on its own and skips the ones that do not apply.
func (t *Tool) ApplySeries(
	ctx context.Context,
	root, utilsDir, src, patchDir string,
	opts domain.PatchOptions,
) (domain.PatchReport, error) {
	report := domain.PatchReport{Dir: patchDir}

	series, err := ReadSeries(abs(root, patchDir))
	if err != nil {
		return report, err
	}

	if !opts.BestEffort {
		cmd := domain.NewCommand(root, filepath.Join(utilsDir, patchesScript), "apply", src, patchDir)
		cmd.Name = "patches " + patchDir
		if opts.PatchBin != "" {
			cmd = cmd.WithEnv(patchBinEnv, abs(root, opts.PatchBin))
		}
		if err := t.exec.Run(ctx, cmd); err != nil {
			return report, zerr.With(zerr.Wrap(err, "apply patch series"), "dir", patchDir)
		}
		report.Applied = series
		return report, nil
	}

	bin := patchBinary
	if opts.PatchBin != "" {
		bin = abs(root, opts.PatchBin)
	}

	for _, entry := range series {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		file := filepath.Join(abs(root, patchDir), filepath.FromSlash(entry))
		if err := t.applyOne(ctx, root, src, bin, file); err != nil {
			t.logger.Warn("skipping patch " + entry + ": " + err.Error())
			report.Skipped = append(report.Skipped, entry)
			continue
		}
		report.Applied = append(report.Applied, entry)
	}
	return report, nil
}

// applyOne checks that file parses as a diff and applies cleanly before applying it,
// so a failing patch never leaves hunks behind.
func (t *Tool) applyOne(ctx context.Context, root, src, bin, file string) error {
	if err := Preflight(file); err != nil {
		return err
	}

	flags := []string{defaultStripLevel, "--ignore-whitespace", "--forward",
		"--no-backup-if-mismatch", "-d", src, "-i", file}

	dry := domain.NewCommand(root, append([]string{bin, "--dry-run"}, flags...)...)
	out, err := t.exec.Output(ctx, dry)
	if err != nil {
		return err
	}
	if !out.Success() {
		return zerr.With(zerr.Wrap(domain.ErrCommandFailed, "patch does not apply"), "output", strings.TrimSpace(out.Stdout))
	}

	cmd := domain.NewCommand(root, append([]string{bin}, flags...)...)
	cmd.Name = "patch " + filepath.Base(file)
	return t.exec.Run(ctx, cmd)
}

// Preflight parses file as a unified or git diff and fails when it has no file changes.
func Preflight(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrPatchMalformed, err.Error()), "patch", file)
	}
	files, _, err := gitdiff.Parse(bytes.NewReader(data))
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrPatchMalformed, err.Error()), "patch", file)
	}
	if len(files) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrPatchMalformed, "no file changes"), "patch", file)
	}
	return nil
}
