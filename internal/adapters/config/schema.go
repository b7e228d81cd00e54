package config

// File represents the structure of the ucb.yaml settings file.
type File struct {
	Versions  VersionsDTO `yaml:"versions"`
	Origins   OriginsDTO  `yaml:"origins"`
	Mirror    MirrorDTO   `yaml:"mirror"`
	Download  DownloadDTO `yaml:"download"`
	MinFreeGB *uint64     `yaml:"min_free_gb"`
}

// VersionsDTO pins upstream revisions.
type VersionsDTO struct {
	Chromium                 string `yaml:"chromium"`
	UngoogledChromium        string `yaml:"ungoogled_chromium"`
	UngoogledChromiumAndroid string `yaml:"ungoogled_chromium_android"`
}

// OriginsDTO overrides remote URLs.
type OriginsDTO struct {
	Chromium                 string `yaml:"chromium"`
	DepotTools               string `yaml:"depot_tools"`
	DepotToolsZip            string `yaml:"depot_tools_zip"`
	UngoogledChromium        string `yaml:"ungoogled_chromium"`
	UngoogledChromiumAndroid string `yaml:"ungoogled_chromium_android"`
	UngoogledChromiumWindows string `yaml:"ungoogled_chromium_windows"`
}

// MirrorDTO configures the S3-compatible tarball mirror.
type MirrorDTO struct {
	Bucket   string `yaml:"bucket"`
	Endpoint string `yaml:"endpoint"`
	Region   string `yaml:"region"`
	Prefix   string `yaml:"prefix"`
}

// DownloadDTO configures direct downloads.
type DownloadDTO struct {
	TarballBaseURL string `yaml:"tarball_base_url"`
	ExpectedBlake3 string `yaml:"expected_blake3"`
}
