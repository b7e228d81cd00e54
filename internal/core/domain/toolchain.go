package domain

import "path/filepath"

// BuildRequest tells the build system where and what to build.
type BuildRequest struct {
	// Src is the absolute source tree directory; gn and ninja run inside it.
	Src string
	// OutputPath is the output folder as passed to gn and ninja, relative to Src unless absolute.
	OutputPath string
	// DepotTools is prepended to PATH.
	DepotTools string
	Jobs       int
	Targets    []string
	// GN overrides the gn executable, e.g. a bootstrapped gn.exe.
	GN string
	// WindowsToolchain runs gn and ninja inside the Visual Studio environment.
	WindowsToolchain bool
}

// NewBuildRequest derives the build request for cfg and profile.
func NewBuildRequest(cfg BuildConfig, profile PlatformProfile) BuildRequest {
	l := cfg.Layout()
	return BuildRequest{
		Src:              l.Src(),
		OutputPath:       filepath.Join(cfg.OutputDir, cfg.OutputFolderName()),
		DepotTools:       l.DepotTools(),
		Jobs:             cfg.Jobs,
		Targets:          append([]string(nil), profile.Targets...),
		WindowsToolchain: profile.WindowsToolchain,
	}
}
