package pipeline

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/zerr"
)

// WriteFilteredList writes list minus excludes to <list>.filtered and returns that path.
// Both paths are relative to root.
func WriteFilteredList(root, list string, excludes []string) (string, error) {
	src := filepath.Join(root, list)
	data, err := os.ReadFile(src) //nolint:gosec // list path comes from the platform profile
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", src)
	}

	entries := domain.FilterManifest(domain.ParseManifest(string(data)), excludes)

	filtered := domain.FilteredList(list)
	dst := filepath.Join(root, filtered)
	if err := os.WriteFile(dst, []byte(domain.RenderManifest(entries)), domain.FilePerm); err != nil { //nolint:gosec // list files are not secret
		return "", zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", dst)
	}
	return filtered, nil
}

// ManifestInputs lists the files whose content decides what prepare does to the tree.
func ManifestInputs(profile domain.PlatformProfile) []string {
	inputs := []string{
		filepath.Join(profile.PatchDir(), domain.SeriesFileName),
		profile.PruneList(),
		profile.SubstitutionList(),
		profile.DomainRegexList(),
	}
	if profile.FixupPatch != "" {
		inputs = append(inputs, profile.FixupPatch)
	}
	for _, dir := range profile.ExtraPatchDirs {
		inputs = append(inputs, filepath.Join(dir, domain.SeriesFileName))
	}
	if p := profile.SecondPass; p != nil {
		inputs = append(inputs,
			p.PruneList,
			filepath.Join(p.PatchDir, domain.SeriesFileName),
			p.SubstitutionList,
		)
	}
	return inputs
}

// Fingerprint hashes the manifest inputs of profile with xxhash64. Missing files hash as empty.
func Fingerprint(root string, profile domain.PlatformProfile) string {
	h := xxhash.New()
	for _, rel := range ManifestInputs(profile) {
		_, _ = h.WriteString(filepath.ToSlash(rel))
		_, _ = h.Write([]byte{0})
		data, _ := os.ReadFile(filepath.Join(root, rel)) //nolint:gosec // inputs come from the platform profile
		_, _ = h.Write(data)
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
