// Package fetch downloads source archives into a local cache.
package fetch

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
	"lukechampine.com/blake3"
)

const digestSize = 32

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetcher implements ports.Fetcher over HTTP or an S3-compatible mirror.
type Fetcher struct {
	client   *http.Client
	mirror   MirrorOpener
	logger   ports.Logger
	progress io.Writer
}

// New creates a Fetcher. Progress bars are drawn on progress only when it is a terminal.
func New(logger ports.Logger, progress io.Writer) *Fetcher {
	return &Fetcher{
		client:   &http.Client{},
		mirror:   openS3,
		logger:   logger,
		progress: progress,
	}
}

// WithHTTPClient replaces the HTTP client.
func (f *Fetcher) WithHTTPClient(c *http.Client) *Fetcher {
	f.client = c
	return f
}

// WithMirror replaces the mirror opener.
func (f *Fetcher) WithMirror(m MirrorOpener) *Fetcher {
	f.mirror = m
	return f
}

// Fetch places req.Key in the req.Dest cache directory and returns its BLAKE3 digest.
// A file already present in the cache is not downloaded again.
func (f *Fetcher) Fetch(ctx context.Context, req domain.DownloadRequest) (domain.DownloadResult, error) {
	if err := os.MkdirAll(req.Dest, domain.DirPerm); err != nil {
		return domain.DownloadResult{}, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "dir", req.Dest)
	}
	path := filepath.Join(req.Dest, req.Key)

	unlock, err := lockFile(path + ".lock")
	if err != nil {
		return domain.DownloadResult{}, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "path", path)
	}
	defer unlock()

	if _, err := os.Stat(path); err == nil {
		f.logger.Debug("using cached " + path)
		res, err := digestFile(path)
		res.Cached = true
		return res, err
	} else if !errors.Is(err, fs.ErrNotExist) {
		return domain.DownloadResult{}, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "path", path)
	}

	body, size, source, err := f.open(ctx, req)
	if err != nil {
		return domain.DownloadResult{}, err
	}
	defer func() { _ = body.Close() }()

	f.logger.Info("downloading " + source)
	res, err := f.store(body, size, path, req.Key)
	if err != nil {
		return domain.DownloadResult{}, zerr.With(err, "source", source)
	}
	return res, nil
}

func (f *Fetcher) open(ctx context.Context, req domain.DownloadRequest) (io.ReadCloser, int64, string, error) {
	if req.Mirror.Enabled() {
		return f.mirror(ctx, req.Mirror, req.Key)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, http.NoBody)
	if err != nil {
		return nil, 0, req.URL, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "url", req.URL)
	}
	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, 0, req.URL, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "url", req.URL)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, 0, req.URL, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "unexpected status "+strconv.Itoa(resp.StatusCode)), "url", req.URL),
			"status", resp.StatusCode,
		)
	}
	return resp.Body, resp.ContentLength, req.URL, nil
}

// store streams body into a temporary file beside path and renames it into place.
func (f *Fetcher) store(body io.Reader, size int64, path, label string) (domain.DownloadResult, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return domain.DownloadResult{}, zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	h := blake3.New(digestSize, nil)
	bar := f.bar(size, label)
	n, err := io.Copy(io.MultiWriter(tmp, h, bar), body)
	_ = bar.Finish()
	if err != nil {
		_ = tmp.Close()
		return domain.DownloadResult{}, zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}
	if size >= 0 && n != size {
		_ = tmp.Close()
		return domain.DownloadResult{}, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "short download"), "bytes", n)
	}
	if err := tmp.Close(); err != nil {
		return domain.DownloadResult{}, zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return domain.DownloadResult{}, zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}

	return domain.DownloadResult{Path: path, Size: n, Digest: hex.EncodeToString(h.Sum(nil))}, nil
}

func (f *Fetcher) bar(size int64, label string) *progressbar.ProgressBar {
	if !isTerminal(f.progress) {
		return progressbar.DefaultSilent(size)
	}
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(f.progress),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// Digest returns the hex BLAKE3 digest of the file at path.
func Digest(path string) (string, error) {
	res, err := digestFile(path)
	return res.Digest, err
}

func digestFile(path string) (domain.DownloadResult, error) {
	file, err := os.Open(path) //nolint:gosec // cache path
	if err != nil {
		return domain.DownloadResult{}, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "path", path)
	}
	defer func() { _ = file.Close() }()

	h := blake3.New(digestSize, nil)
	n, err := io.Copy(h, file)
	if err != nil {
		return domain.DownloadResult{}, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "path", path)
	}
	return domain.DownloadResult{Path: path, Size: n, Digest: hex.EncodeToString(h.Sum(nil))}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
