package domain

import "strings"

// ParseManifest splits list file content into trimmed, non-empty entries.
func ParseManifest(data string) []string {
	lines := strings.Split(data, "\n")
	entries := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		entries = append(entries, l)
	}
	return entries
}

// FilterManifest drops excluded entries. Surviving entries keep their
// relative order and duplicates are kept.
func FilterManifest(entries, excludes []string) []string {
	skip := make(map[string]struct{}, len(excludes))
	for _, e := range excludes {
		skip[strings.TrimSpace(e)] = struct{}{}
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := skip[strings.TrimSpace(e)]; ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

// RenderManifest serializes entries one per line.
func RenderManifest(entries []string) string {
	if len(entries) == 0 {
		return ""
	}
	return strings.Join(entries, "\n") + "\n"
}
