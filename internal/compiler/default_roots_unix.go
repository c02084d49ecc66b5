//go:build !windows

package compiler

import (
	"path/filepath"
	"strings"
)

const defaultDataDirs = "/usr/local/share/:/usr/share/"

// systemRoots follows the XDG base directory layout.
func systemRoots(lookup func(string) (string, bool)) []string {
	var roots []string
	if home, ok := lookup("XDG_DATA_HOME"); ok && home != "" {
		roots = append(roots, filepath.Join(home, "drip"))
	}
	dirs, ok := lookup("XDG_DATA_DIRS")
	if !ok || dirs == "" {
		dirs = defaultDataDirs
	}
	for _, dir := range strings.Split(dirs, ":") {
		if dir != "" {
			roots = append(roots, filepath.Join(dir, "drip"))
		}
	}
	return roots
}
