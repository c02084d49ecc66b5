//go:build windows

package compiler

import (
	"path/filepath"
)

func systemRoots(lookup func(string) (string, bool)) []string {
	var roots []string
	if local, ok := lookup("LOCALAPPDATA"); ok && local != "" {
		roots = append(roots, filepath.Join(local, "drip"))
	}
	if data, ok := lookup("ProgramData"); ok && data != "" {
		roots = append(roots, filepath.Join(data, "drip"))
	}
	return roots
}
