// Package target converts user supplied compile targets into the forms used
// by the file systems and the watcher.
package target

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Normalize converts a target into the rooted form that idl.FileSystem
// implementations expect. Plain paths and file URIs become slash rooted
// paths. Any other URI is returned unchanged for some other file system to
// handle.
func Normalize(target string) string {
	p, ok := FilePath(target)
	if !ok {
		return target
	}
	if !filepath.IsAbs(p) {
		return filepath.Join("/", p)
	}
	return filepath.Clean(p)
}

// LocalPath resolves a target against a root directory on disk. It reports
// false for targets that are not local files.
func LocalPath(root string, target string) (string, bool) {
	p, ok := FilePath(target)
	if !ok {
		return "", false
	}
	return filepath.Join(root, filepath.Join("/", p)), true
}

// FilePath returns the local path named by a target. Only targets written as
// scheme://... are treated as URIs, so plain paths keep characters such as
// '#' and '%' verbatim. It reports false for URIs other than file://.
func FilePath(target string) (string, bool) {
	scheme, _, found := strings.Cut(target, "://")
	if !found || strings.ContainsAny(scheme, "/\\") {
		return target, true
	}
	if !strings.EqualFold(scheme, "file") {
		return "", false
	}
	u, err := url.Parse(target)
	if err != nil {
		return "", false
	}
	return u.Path, true
}
