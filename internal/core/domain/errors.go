package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfiguration is returned when the invocation cannot be resolved into a BuildConfig.
	ErrInvalidConfiguration = zerr.New("invalid configuration")

	// ErrRepositoryCorrupt is returned when a VCS probe fails on a path that exists as a directory.
	ErrRepositoryCorrupt = zerr.New("repository is corrupt")

	// ErrCannotPinShallowRepository is returned when a revision pin is requested on a shallow checkout.
	ErrCannotPinShallowRepository = zerr.New("cannot pin revision on a shallow repository")

	// ErrUnsupportedTarget is returned when a platform has no build targets.
	ErrUnsupportedTarget = zerr.New("target OS not supported")

	// ErrTreeAlreadyPrepared is returned when prepare runs against a tree that was already patched.
	ErrTreeAlreadyPrepared = zerr.New("source tree is already prepared, re-sync with --reset before preparing again")

	// ErrDepotToolsMissing is returned when depot_tools has not been initialized.
	ErrDepotToolsMissing = zerr.New("cannot find depot_tools, run init first")

	// ErrCommandFailed is returned when an external command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandNotFound is returned when an executable cannot be resolved.
	ErrCommandNotFound = zerr.New("executable not found")

	// ErrEmptyCommand is returned when a command has no executable.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrFlagsFileReadFailed is returned when a GN flags file cannot be read.
	ErrFlagsFileReadFailed = zerr.New("failed to read flags file")

	// ErrArgsFileWriteFailed is returned when args.gn cannot be written.
	ErrArgsFileWriteFailed = zerr.New("failed to write args.gn")

	// ErrManifestReadFailed is returned when a list file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read list file")

	// ErrManifestWriteFailed is returned when a filtered list file cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write filtered list file")

	// ErrPatchMalformed is returned when a patch file cannot be parsed as a diff.
	ErrPatchMalformed = zerr.New("malformed patch")

	// ErrStoreReadFailed is returned when a stamp cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read stamp")

	// ErrStoreUnmarshalFailed is returned when a stamp cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal stamp")

	// ErrStoreMarshalFailed is returned when a stamp cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal stamp")

	// ErrStoreWriteFailed is returned when a stamp cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write stamp")

	// ErrStoreCreateFailed is returned when the stamp directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create stamp directory")

	// ErrDownloadFailed is returned when a source archive cannot be fetched.
	ErrDownloadFailed = zerr.New("download failed")

	// ErrChecksumMismatch is returned when a downloaded archive does not match its expected digest.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrArchiveExtractFailed is returned when an archive cannot be unpacked.
	ErrArchiveExtractFailed = zerr.New("failed to extract archive")

	// ErrIllegalArchivePath is returned when an archive entry escapes the destination directory.
	ErrIllegalArchivePath = zerr.New("illegal file path in archive")

	// ErrInsufficientDiskSpace is returned when the workspace volume is too small for a build.
	ErrInsufficientDiskSpace = zerr.New("insufficient disk space")

	// ErrGClientWriteFailed is returned when the .gclient solution file cannot be written.
	ErrGClientWriteFailed = zerr.New("failed to write .gclient")

	// ErrHostProbeFailed is returned when the host distribution or free disk space cannot be determined.
	ErrHostProbeFailed = zerr.New("failed to inspect host")

	// ErrSmokeTestFailed is returned when the built browser fails to start headless.
	ErrSmokeTestFailed = zerr.New("smoke test failed")

	// ErrOutputDirNotDefault is returned when clean targets a non-default output directory without force.
	ErrOutputDirNotDefault = zerr.New("refusing to remove non-default output directory without --force")

	// ErrToolchainNotFound is returned when the Visual Studio toolchain cannot be located.
	ErrToolchainNotFound = zerr.New("could not find vcvars batch script")
)
