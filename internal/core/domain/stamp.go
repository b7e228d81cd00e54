package domain

import "time"

const (
	// PrepareStampName names the stamp written after a successful prepare.
	PrepareStampName = "prepare"
	// DownloadStampName names the stamp written after a source tarball is unpacked.
	DownloadStampName = "download"
)

// Stamp records that a pipeline stage left the tree in a known state.
type Stamp struct {
	Name        string       `json:"name"`
	OS          TargetOS     `json:"os,omitempty"`
	Revision    string       `json:"revision,omitempty"`
	Digest      string       `json:"digest,omitempty"`
	Fingerprint string       `json:"fingerprint,omitempty"`
	Steps       []StepResult `json:"steps,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
}

// DownloadRequest asks for a remote archive to be placed in a local cache.
type DownloadRequest struct {
	URL    string
	Key    string
	Dest   string
	Mirror Mirror
}

// DownloadResult describes a fetched archive.
type DownloadResult struct {
	Path   string
	Size   int64
	Digest string
	Cached bool
}

// Distro identifies the host Linux distribution.
type Distro struct {
	ID       string
	IDLike   []string
	Version  string
	Codename string
}

// SupportsBuildDeps reports whether Chromium's install-build-deps scripts run on the distro.
func (d Distro) SupportsBuildDeps() bool {
	return d.ID == "debian" || d.ID == "ubuntu"
}

// SmokeReport is the outcome of launching a built browser.
type SmokeReport struct {
	Binary    string
	UserAgent string
}
