// Package archive unpacks source and tool archives.
package archive

import (
	"archive/tar"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Archiver = (*Archiver)(nil)

// Archiver implements ports.Archiver.
type Archiver struct{}

// New creates an Archiver.
func New() *Archiver {
	return &Archiver{}
}

// ExtractTarXz unpacks an xz-compressed tarball into dest, dropping the first strip path components.
func (a *Archiver) ExtractTarXz(ctx context.Context, archive, dest string, strip int) error {
	f, err := os.Open(archive) //nolint:gosec // archive comes from the download cache
	if err != nil {
		return extractError(err, archive)
	}
	defer func() { _ = f.Close() }()

	xr, err := xz.NewReader(f)
	if err != nil {
		return extractError(err, archive)
	}
	if err := extractTar(ctx, tar.NewReader(xr), dest, strip); err != nil {
		return zerr.With(err, "archive", archive)
	}
	return nil
}

// ExtractZip unpacks a zip archive into dest.
func (a *Archiver) ExtractZip(ctx context.Context, archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return extractError(err, archive)
	}
	defer func() { _ = r.Close() }()

	root, err := filepath.Abs(dest)
	if err != nil {
		return extractError(err, archive)
	}

	for _, zf := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		target, err := within(root, zf.Name)
		if err != nil {
			return zerr.With(err, "archive", archive)
		}
		if zf.FileInfo().IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return extractError(err, archive)
			}
			continue
		}

		rc, err := zf.Open()
		if err != nil {
			return extractError(err, archive)
		}
		err = writeFile(target, rc, zf.Mode())
		_ = rc.Close()
		if err != nil {
			return extractError(err, archive)
		}
	}
	return nil
}

// CountTarGz returns the number of regular files in a gzip-compressed tarball.
func (a *Archiver) CountTarGz(archive string) (int, error) {
	f, err := os.Open(archive) //nolint:gosec // archive path is derived from the workspace layout
	if err != nil {
		return 0, extractError(err, archive)
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return 0, extractError(err, archive)
	}
	defer func() { _ = gz.Close() }()

	n := 0
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return 0, extractError(err, archive)
		}
		if hdr.Typeflag == tar.TypeReg {
			n++
		}
	}
}

func extractTar(ctx context.Context, tr *tar.Reader, dest string, strip int) error {
	root, err := filepath.Abs(dest)
	if err != nil {
		return zerr.Wrap(domain.ErrArchiveExtractFailed, err.Error())
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.Wrap(domain.ErrArchiveExtractFailed, err.Error())
		}

		name, ok := stripComponents(hdr.Name, strip)
		if !ok {
			continue
		}
		target, err := within(root, name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			err = os.MkdirAll(target, domain.DirPerm)
		case tar.TypeReg:
			err = writeFile(target, tr, hdr.FileInfo().Mode())
		case tar.TypeSymlink:
			err = symlink(hdr.Linkname, target)
		default:
			// Devices, fifos and hard links do not occur in source tarballs.
		}
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrArchiveExtractFailed, err.Error()), "entry", hdr.Name)
		}
	}
}

// stripComponents drops the first n slash-separated components of name.
// It reports false when nothing is left.
func stripComponents(name string, n int) (string, bool) {
	name = strings.TrimPrefix(filepath.ToSlash(name), "./")
	for range n {
		_, rest, ok := strings.Cut(name, "/")
		if !ok {
			return "", false
		}
		name = rest
	}
	name = strings.TrimSuffix(name, "/")
	return name, name != ""
}

// within joins name onto root and rejects entries escaping it.
func within(root, name string) (string, error) {
	target := filepath.Join(root, filepath.FromSlash(name))
	if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", zerr.With(zerr.Wrap(domain.ErrIllegalArchivePath, "archive entry"), "entry", name)
	}
	return target, nil
}

func writeFile(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return err
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm()) //nolint:gosec // target is checked by within
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil { //nolint:gosec // archives are trusted source tarballs
		_ = out.Close()
		return err
	}
	return out.Close()
}

func symlink(linkname, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return err
	}
	_ = os.Remove(target)
	return os.Symlink(linkname, target)
}

func extractError(err error, archive string) error {
	return zerr.With(zerr.Wrap(domain.ErrArchiveExtractFailed, err.Error()), "archive", archive)
}
