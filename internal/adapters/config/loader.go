// Package config loads the optional ucb.yaml workspace settings.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file in the workspace root.
type Loader struct {
	logger   ports.Logger
	Filename string
}

// NewLoader creates a Loader reading domain.SettingsFileName.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, Filename: domain.SettingsFileName}
}

// Load reads the settings of the workspace at root. A missing file yields the defaults.
func (l *Loader) Load(root string) (domain.Settings, error) {
	path := filepath.Join(root, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the workspace root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no " + l.Filename + ", using defaults")
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	settings, err := Parse(data)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

// Parse decodes a settings document on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (domain.Settings, error) {
	var file File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	return file.apply(domain.DefaultSettings()), nil
}

func (f File) apply(s domain.Settings) domain.Settings {
	set(&s.Versions.Chromium, f.Versions.Chromium)
	set(&s.Versions.Ungoogled, f.Versions.UngoogledChromium)
	set(&s.Versions.UngoogledAndroid, f.Versions.UngoogledChromiumAndroid)

	set(&s.Origins.Chromium, f.Origins.Chromium)
	set(&s.Origins.DepotTools, f.Origins.DepotTools)
	set(&s.Origins.DepotToolsZip, f.Origins.DepotToolsZip)
	set(&s.Origins.Ungoogled, f.Origins.UngoogledChromium)
	set(&s.Origins.UngoogledAndroid, f.Origins.UngoogledChromiumAndroid)
	set(&s.Origins.UngoogledWindows, f.Origins.UngoogledChromiumWindows)

	s.Mirror = domain.Mirror{
		Bucket:   f.Mirror.Bucket,
		Endpoint: f.Mirror.Endpoint,
		Region:   f.Mirror.Region,
		Prefix:   f.Mirror.Prefix,
	}

	set(&s.TarballBaseURL, f.Download.TarballBaseURL)
	s.ExpectedBlake3 = f.Download.ExpectedBlake3

	if f.MinFreeGB != nil {
		s.MinFreeGB = *f.MinFreeGB
	}
	return s
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
