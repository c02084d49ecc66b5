// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"path/filepath"

	"gopkg.driplang.org/parser.go/internal/fs"
	"gopkg.driplang.org/parser.go/internal/idl"
)

// PathEnv lists extra search roots, separated like PATH, that are searched
// before the system data directories.
const PathEnv = "DRIP_PATH"

// DefaultRoots returns the search roots used when no file system is given.
func DefaultRoots(lookup func(string) (string, bool)) []string {
	var roots []string
	if v, ok := lookup(PathEnv); ok {
		for _, p := range filepath.SplitList(v) {
			if p != "" {
				roots = append(roots, p)
			}
		}
	}
	return append(roots, systemRoots(lookup)...)
}

func NewDefaultFS(lookup func(string) (string, bool)) (idl.FileSystem, error) {
	roots := DefaultRoots(lookup)
	f := make(fs.FileSystemMulti, 0, len(roots))
	for _, root := range roots {
		rf, err := fs.NewFileSystemLocal(root)
		if err != nil {
			return nil, err
		}
		f = append(f, rf)
	}
	return f, nil
}
