// Package host inspects the machine ucb runs on.
package host

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// OSReleasePaths are consulted in order; the first readable file wins.
var OSReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

var _ ports.DistroDetector = (*DistroDetector)(nil)

// DistroDetector reads os-release(5).
type DistroDetector struct {
	paths []string
}

// NewDistroDetector creates a detector reading paths, or OSReleasePaths when none are given.
func NewDistroDetector(paths ...string) *DistroDetector {
	if len(paths) == 0 {
		paths = OSReleasePaths
	}
	return &DistroDetector{paths: paths}
}

// Detect returns the distribution described by the first readable os-release file.
func (d *DistroDetector) Detect() (domain.Distro, error) {
	for _, path := range d.paths {
		f, err := os.Open(path) //nolint:gosec // fixed system paths
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return domain.Distro{}, zerr.With(zerr.Wrap(domain.ErrHostProbeFailed, err.Error()), "path", path)
		}
		distro, err := ParseOSRelease(f)
		_ = f.Close()
		if err != nil {
			return domain.Distro{}, zerr.With(err, "path", path)
		}
		return distro, nil
	}
	return domain.Distro{}, zerr.With(zerr.Wrap(domain.ErrHostProbeFailed, "os-release not found"), "paths", d.paths)
}

// ParseOSRelease parses the KEY=value lines of an os-release file.
func ParseOSRelease(r io.Reader) (domain.Distro, error) {
	var d domain.Distro

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = unquote(value)

		switch key {
		case "ID":
			d.ID = strings.ToLower(value)
		case "ID_LIKE":
			d.IDLike = strings.Fields(strings.ToLower(value))
		case "VERSION_ID":
			d.Version = value
		case "VERSION_CODENAME":
			d.Codename = value
		}
	}
	if err := sc.Err(); err != nil {
		return domain.Distro{}, zerr.Wrap(domain.ErrHostProbeFailed, err.Error())
	}
	return d, nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		if s, err := strconv.Unquote(`"` + v[1:len(v)-1] + `"`); err == nil {
			return s
		}
		return v[1 : len(v)-1]
	}
	return v
}
