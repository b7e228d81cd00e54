package domain

import (
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Invocation holds the raw, unvalidated parameters of a CLI call.
type Invocation struct {
	Root             string
	OS               string
	Arch             string
	Debug            bool
	OutputDir        string
	CCWrapper        string
	GNArgs           string
	Shallow          bool
	Reset            bool
	DirectDownload   bool
	InstallBuildDeps bool
	BestEffort       bool
	Jobs             int
}

// SyncMode is the source synchronization mode selected by the mutually
// exclusive shallow, reset and direct-download switches.
type SyncMode int

const (
	// ModeDefault fetches full history and tags.
	ModeDefault SyncMode = iota
	// ModeShallow fetches without history.
	ModeShallow
	// ModeReset discards local changes and pins dependencies to the source revision.
	ModeReset
	// ModeDirectDownload uses the official source tarball instead of git.
	ModeDirectDownload
)

func (m SyncMode) String() string {
	switch m {
	case ModeShallow:
		return "shallow"
	case ModeReset:
		return "reset"
	case ModeDirectDownload:
		return "direct-download"
	default:
		return "default"
	}
}

// BuildConfig is the validated configuration of one invocation.
// It is passed by value and never modified after ResolveConfig returns.
type BuildConfig struct {
	Root              string
	OS                TargetOS
	CPU               TargetCPU
	Debug             bool
	Shallow           bool
	Reset             bool
	InstallBuildDeps  bool
	DirectDownload    bool
	BestEffortPatches bool
	OutputDir         string
	CCWrapper         string
	Jobs              int
	gnOverrides       FlagSet
	settings          Settings
}

// Settings returns the workspace settings the config was resolved with.
func (c BuildConfig) Settings() Settings {
	return c.settings
}

// WithSettings returns a copy of the config using s.
func (c BuildConfig) WithSettings(s Settings) BuildConfig {
	c.settings = s
	return c
}

// GNOverrides returns a copy of the CLI-supplied flag overrides.
func (c BuildConfig) GNOverrides() FlagSet {
	return c.gnOverrides.Clone()
}

// Mode returns the selected sync mode.
func (c BuildConfig) Mode() SyncMode {
	switch {
	case c.Shallow:
		return ModeShallow
	case c.Reset:
		return ModeReset
	case c.DirectDownload:
		return ModeDirectDownload
	default:
		return ModeDefault
	}
}

// ReleaseChannel is "Debug" for debug builds and "Release" otherwise.
func (c BuildConfig) ReleaseChannel() string {
	if c.Debug {
		return "Debug"
	}
	return "Release"
}

// OutputFolderName is the composite output folder name, e.g. Release_linux_x64.
// Downstream tooling relies on this name.
func (c BuildConfig) OutputFolderName() string {
	return c.ReleaseChannel() + "_" + string(c.OS) + "_" + string(c.CPU)
}

// Layout returns the workspace layout rooted at the config root.
func (c BuildConfig) Layout() Layout {
	return NewLayout(c.Root)
}

// ResolveConfig validates an invocation and produces a BuildConfig.
// It has no side effects.
func ResolveConfig(in Invocation) (BuildConfig, error) {
	targetOS, err := ParseTargetOS(in.OS)
	if err != nil {
		return BuildConfig{}, err
	}

	targetCPU, err := ParseTargetCPU(in.Arch)
	if err != nil {
		return BuildConfig{}, err
	}

	var modes []string
	if in.Shallow {
		modes = append(modes, "shallow")
	}
	if in.Reset {
		modes = append(modes, "reset")
	}
	if in.DirectDownload {
		modes = append(modes, "direct-download")
	}
	if len(modes) > 1 {
		return BuildConfig{}, zerr.With(
			zerr.Wrap(ErrInvalidConfiguration, "shallow, reset and direct-download are mutually exclusive"),
			"modes", strings.Join(modes, ","),
		)
	}

	if in.Jobs < 0 {
		return BuildConfig{}, zerr.With(zerr.Wrap(ErrInvalidConfiguration, "job count must not be negative"), "jobs", in.Jobs)
	}
	jobs := in.Jobs
	if jobs == 0 {
		jobs = runtime.NumCPU()
	}

	outputDir := strings.TrimSpace(in.OutputDir)
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	root := in.Root
	if root == "" {
		root = "."
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return BuildConfig{}, zerr.With(zerr.Wrap(ErrInvalidConfiguration, "cannot resolve workspace root"), "root", in.Root)
	}

	return BuildConfig{
		Root:              root,
		OS:                targetOS,
		CPU:               targetCPU,
		Debug:             in.Debug,
		Shallow:           in.Shallow,
		Reset:             in.Reset,
		InstallBuildDeps:  in.InstallBuildDeps,
		DirectDownload:    in.DirectDownload,
		BestEffortPatches: in.BestEffort,
		OutputDir:         outputDir,
		CCWrapper:         strings.TrimSpace(in.CCWrapper),
		Jobs:              jobs,
		gnOverrides:       ParseGNOverrides(in.GNArgs),
		settings:          DefaultSettings(),
	}, nil
}
