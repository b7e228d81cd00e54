package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// SecondPass describes an additional prune, patch and substitution round
// applied after the primary one.
type SecondPass struct {
	PruneList        string
	PatchDir         string
	SubstitutionList string
}

// PlatformProfile carries every platform-dependent decision of the pipeline.
// It is selected once from the target OS and read by all stages.
// All paths are relative to the workspace root.
type PlatformProfile struct {
	OS TargetOS

	// PatchRepoDir is the ungoogled-chromium checkout providing utils/, patches/ and lists.
	PatchRepoDir string
	// OverlayDir is the platform overlay checkout, if any.
	OverlayDir string
	// PatchCheckouts are reset to their pinned revisions at the start of prepare.
	PatchCheckouts []string

	// FixupPatch is applied with patch(1) before the primary patch set.
	FixupPatch string
	// ExtraPatchDirs are applied after the primary patch set.
	ExtraPatchDirs []string
	// SecondPass runs after the primary substitution, with a fresh cache.
	SecondPass *SecondPass

	// ExtraFlagFiles are layered over flags.gn.
	ExtraFlagFiles []string
	// ExtraFlags are forced on top of the common forced flags.
	ExtraFlags []Flag

	// DepsScript is the install-build-deps script under src/build.
	DepsScript string
	// Targets are the ninja targets to compile.
	Targets []string

	// SourceFromDownloads selects the downloads.py retrieve/unpack flow instead of gclient.
	SourceFromDownloads bool
	// PatchBin is exported as PATCH_BIN to the patch scripts when set.
	PatchBin string
	// WindowsToolchain wraps gn and ninja in the Visual Studio environment.
	WindowsToolchain bool
}

// SeriesFileName lists the patches of a patch directory in application order.
const SeriesFileName = "series"

// PruneExcludes are entries never pruned from the tree.
var PruneExcludes = []string{"buildtools/linux64/gn"}

// AndroidFixupPatch is applied to the ungoogled-chromium checkout before patching for Android.
var AndroidFixupPatch = filepath.Join(AndroidOverlayDirName, "patches", "Other", "ungoogled-main-repo-fix.patch")

// ProfileFor returns the platform profile for os.
func ProfileFor(os TargetOS) (PlatformProfile, error) {
	switch os {
	case OSLinux:
		return PlatformProfile{
			OS:             OSLinux,
			PatchRepoDir:   UngoogledDirName,
			PatchCheckouts: []string{UngoogledDirName},
			DepsScript:     "install-build-deps.sh",
			Targets:        []string{"chrome", "chrome_sandbox", "chromedriver"},
		}, nil
	case OSAndroid:
		return PlatformProfile{
			OS:             OSAndroid,
			PatchRepoDir:   UngoogledDirName,
			OverlayDir:     AndroidOverlayDirName,
			PatchCheckouts: []string{UngoogledDirName, AndroidOverlayDirName},
			FixupPatch:     AndroidFixupPatch,
			SecondPass: &SecondPass{
				PruneList:        filepath.Join(AndroidOverlayDirName, "pruning_2.list"),
				PatchDir:         filepath.Join(AndroidOverlayDirName, "patches"),
				SubstitutionList: filepath.Join(AndroidOverlayDirName, "domain_sub_2.list"),
			},
			DepsScript: "install-build-deps-android.sh",
			Targets:    []string{"chrome_modern_public_bundle"},
		}, nil
	case OSWindows:
		return PlatformProfile{
			OS:                  OSWindows,
			PatchRepoDir:        filepath.Join(WindowsOverlayDirName, UngoogledDirName),
			OverlayDir:          WindowsOverlayDirName,
			ExtraPatchDirs:      []string{filepath.Join(WindowsOverlayDirName, "patches")},
			ExtraFlagFiles:      []string{filepath.Join(WindowsOverlayDirName, "flags.windows.gn")},
			ExtraFlags:          []Flag{{Key: "enable_resource_allowlist_generation", Value: "false"}},
			Targets:             []string{"chrome", "chromedriver"},
			SourceFromDownloads: true,
			PatchBin:            filepath.Join(SrcDirName, "third_party", "git", "usr", "bin", "patch.exe"),
			WindowsToolchain:    true,
		}, nil
	default:
		return PlatformProfile{}, zerr.With(zerr.Wrap(ErrUnsupportedTarget, "no platform profile"), "os", string(os))
	}
}

// UtilsDir returns the ungoogled-chromium utils directory.
func (p PlatformProfile) UtilsDir() string {
	return filepath.Join(p.PatchRepoDir, "utils")
}

// PatchDir returns the primary patch set directory.
func (p PlatformProfile) PatchDir() string {
	return filepath.Join(p.PatchRepoDir, "patches")
}

// FlagsFile returns the base GN flags file.
func (p PlatformProfile) FlagsFile() string {
	return filepath.Join(p.PatchRepoDir, "flags.gn")
}

// PruneList returns the primary pruning list.
func (p PlatformProfile) PruneList() string {
	return filepath.Join(p.PatchRepoDir, "pruning.list")
}

// SubstitutionList returns the primary domain substitution list.
func (p PlatformProfile) SubstitutionList() string {
	return filepath.Join(p.PatchRepoDir, "domain_substitution.list")
}

// DomainRegexList returns the domain substitution rule file.
func (p PlatformProfile) DomainRegexList() string {
	return filepath.Join(p.PatchRepoDir, "domain_regex.list")
}
