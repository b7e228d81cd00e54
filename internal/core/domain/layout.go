package domain

import "path/filepath"

const (
	// SrcDirName is the name of the Chromium source tree directory.
	SrcDirName = "src"

	// DefaultOutputDir is the default output base directory, relative to the source tree.
	DefaultOutputDir = "out"

	// DepotToolsDirName is the name of the depot_tools checkout.
	DepotToolsDirName = "depot_tools"

	// UngoogledDirName is the name of the ungoogled-chromium checkout.
	UngoogledDirName = "ungoogled-chromium"

	// AndroidOverlayDirName is the name of the ungoogled-chromium-android checkout.
	AndroidOverlayDirName = "ungoogled-chromium-android"

	// WindowsOverlayDirName is the name of the ungoogled-chromium-windows checkout.
	WindowsOverlayDirName = "ungoogled-chromium-windows"

	// DomSubCacheName is the name of the domain substitution cache artifact.
	DomSubCacheName = "domsubcache.tar.gz"

	// GClientFileName is the name of the gclient solution file.
	GClientFileName = ".gclient"

	// ArgsFileName is the name of the generated GN flags file.
	ArgsFileName = "args.gn"

	// StateDirName is the name of the internal workspace directory.
	StateDirName = ".ucb"

	// StampDirName is the name of the stamp directory.
	StampDirName = "stamps"

	// DownloadDirName is the name of the direct-download cache directory.
	DownloadDirName = "downloads"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "ucb.yaml"

	// FilteredSuffix is appended to a list file name when writing its filtered copy.
	FilteredSuffix = ".filtered"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout resolves the on-disk locations of a workspace.
type Layout struct {
	Root string
}

// NewLayout returns the layout for the workspace at root.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// Path joins elements onto the workspace root.
func (l Layout) Path(elem ...string) string {
	return filepath.Join(append([]string{l.Root}, elem...)...)
}

// Src returns the source tree directory.
func (l Layout) Src() string { return l.Path(SrcDirName) }

// DepotTools returns the depot_tools directory.
func (l Layout) DepotTools() string { return l.Path(DepotToolsDirName) }

// DomSubCache returns the domain substitution cache file.
func (l Layout) DomSubCache() string { return l.Path(DomSubCacheName) }

// GClientFile returns the gclient solution file.
func (l Layout) GClientFile() string { return l.Path(GClientFileName) }

// StateDir returns the internal workspace directory.
func (l Layout) StateDir() string { return l.Path(StateDirName) }

// StampDir returns the stamp directory.
func (l Layout) StampDir() string { return l.Path(StateDirName, StampDirName) }

// DownloadDir returns the direct-download cache directory.
func (l Layout) DownloadDir() string { return l.Path(StateDirName, DownloadDirName) }

// SettingsFile returns the settings file path.
func (l Layout) SettingsFile() string { return l.Path(SettingsFileName) }

// OutputBase returns the output base directory inside the source tree.
func (l Layout) OutputBase(outputDir string) string {
	if filepath.IsAbs(outputDir) {
		return outputDir
	}
	return filepath.Join(l.Src(), outputDir)
}

// OutputPath returns the composite output folder for cfg inside the source tree.
func (l Layout) OutputPath(cfg BuildConfig) string {
	return filepath.Join(l.OutputBase(cfg.OutputDir), cfg.OutputFolderName())
}

// ArgsFile returns the args.gn path for cfg.
func (l Layout) ArgsFile(cfg BuildConfig) string {
	return filepath.Join(l.OutputPath(cfg), ArgsFileName)
}

// FilteredList returns the path of the filtered copy of a list file.
func FilteredList(list string) string {
	return list + FilteredSuffix
}
