//go:build windows

package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// candidates expands path with the extensions listed in PATHEXT.
func candidates(path string, env []string) []string {
	if filepath.Ext(path) != "" {
		return []string{path}
	}

	exts := ".com;.exe;.bat;.cmd"
	for _, e := range env {
		if k, v, ok := strings.Cut(e, "="); ok && strings.EqualFold(k, "PATHEXT") && v != "" {
			exts = v
		}
	}

	var out []string
	for _, ext := range filepath.SplitList(strings.ToLower(exts)) {
		if ext != "" {
			out = append(out, path+ext)
		}
	}
	return out
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if d.IsDir() {
		return os.ErrPermission
	}
	return nil
}
