package domain

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultChromiumOrigin is the Chromium source repository.
	DefaultChromiumOrigin = "https://chromium.googlesource.com/chromium/src.git"
	// DefaultDepotToolsOrigin is the depot_tools repository.
	DefaultDepotToolsOrigin = "https://chromium.googlesource.com/chromium/tools/depot_tools.git"
	// DefaultDepotToolsZip is the depot_tools bundle used on Windows.
	DefaultDepotToolsZip = "https://storage.googleapis.com/chrome-infra/depot_tools.zip"
	// DefaultUngoogledOrigin is the ungoogled-chromium repository.
	DefaultUngoogledOrigin = "https://github.com/ungoogled-software/ungoogled-chromium.git"
	// DefaultUngoogledAndroidOrigin is the ungoogled-chromium-android repository.
	DefaultUngoogledAndroidOrigin = "https://github.com/ungoogled-software/ungoogled-chromium-android.git"
	// DefaultUngoogledWindowsOrigin is the ungoogled-chromium-windows repository.
	DefaultUngoogledWindowsOrigin = "https://github.com/ungoogled-software/ungoogled-chromium-windows.git"
	// DefaultTarballBaseURL hosts the official Chromium source tarballs.
	DefaultTarballBaseURL = "https://commondatastorage.googleapis.com/chromium-browser-official/"

	// DefaultChromiumVersion is the Chromium tag built by default.
	DefaultChromiumVersion = "131.0.6778.85"
	// DefaultUngoogledVersion is the ungoogled-chromium tag matching DefaultChromiumVersion.
	DefaultUngoogledVersion = "131.0.6778.85-1"
	// DefaultUngoogledAndroidVersion is the ungoogled-chromium-android tag matching DefaultChromiumVersion.
	DefaultUngoogledAndroidVersion = "131.0.6778.85-1"

	// DefaultMinFreeGB is the free space below which init and build warn or fail.
	DefaultMinFreeGB = 100
)

// Versions pins the upstream revisions.
type Versions struct {
	Chromium         string
	Ungoogled        string
	UngoogledAndroid string
}

// Origins holds the remote URLs.
type Origins struct {
	Chromium         string
	DepotTools       string
	DepotToolsZip    string
	Ungoogled        string
	UngoogledAndroid string
	UngoogledWindows string
}

// Mirror is an optional S3-compatible mirror for source tarballs.
type Mirror struct {
	Bucket   string
	Endpoint string
	Region   string
	Prefix   string
}

// Enabled reports whether a mirror bucket is configured.
func (m Mirror) Enabled() bool { return m.Bucket != "" }

// Settings is the workspace configuration read from ucb.yaml.
type Settings struct {
	Versions       Versions
	Origins        Origins
	Mirror         Mirror
	TarballBaseURL string
	ExpectedBlake3 string
	MinFreeGB      uint64
}

// DefaultSettings returns the compiled-in settings.
func DefaultSettings() Settings {
	return Settings{
		Versions: Versions{
			Chromium:         DefaultChromiumVersion,
			Ungoogled:        DefaultUngoogledVersion,
			UngoogledAndroid: DefaultUngoogledAndroidVersion,
		},
		Origins: Origins{
			Chromium:         DefaultChromiumOrigin,
			DepotTools:       DefaultDepotToolsOrigin,
			DepotToolsZip:    DefaultDepotToolsZip,
			Ungoogled:        DefaultUngoogledOrigin,
			UngoogledAndroid: DefaultUngoogledAndroidOrigin,
			UngoogledWindows: DefaultUngoogledWindowsOrigin,
		},
		TarballBaseURL: DefaultTarballBaseURL,
		MinFreeGB:      DefaultMinFreeGB,
	}
}

// TarballName is the official source archive name for version.
func TarballName(version string) string {
	return fmt.Sprintf("chromium-%s.tar.xz", version)
}

// TarballURL returns the download URL of the configured Chromium tarball.
func (s Settings) TarballURL() string {
	base := s.TarballBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.PathEscape(TarballName(s.Versions.Chromium))
}

// MinFreeBytes converts MinFreeGB to bytes.
func (s Settings) MinFreeBytes() uint64 {
	return s.MinFreeGB << 30
}

// Checkout is a repository kept on disk under the workspace root.
type Checkout struct {
	Dir    string
	Remote string
	// Revision is empty when the checkout tracks the remote default branch.
	Revision string
}

// CheckoutFor returns the remote and pinned revision of the checkout in dir.
func (s Settings) CheckoutFor(dir string) Checkout {
	c := Checkout{Dir: dir}
	switch dir {
	case SrcDirName:
		c.Remote, c.Revision = s.Origins.Chromium, s.Versions.Chromium
	case DepotToolsDirName:
		c.Remote = s.Origins.DepotTools
	case UngoogledDirName:
		c.Remote, c.Revision = s.Origins.Ungoogled, s.Versions.Ungoogled
	case AndroidOverlayDirName:
		c.Remote, c.Revision = s.Origins.UngoogledAndroid, s.Versions.UngoogledAndroid
	case WindowsOverlayDirName:
		c.Remote = s.Origins.UngoogledWindows
	}
	return c
}
