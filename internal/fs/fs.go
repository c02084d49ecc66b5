// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.driplang.org/parser.go/internal/exc"
	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/target"
)

const (
	fileExt = ".drip"
)

var knownExts = map[string]idl.FileKind{
	fileExt: idl.FileKindDrip,
}

// KindOf returns the kind of file implied by the extension of the path.
func KindOf(path string) idl.FileKind {
	return knownExts[filepath.Ext(path)]
}

var _ idl.FileSystem = FileSystemMulti{}

// FileSystemMulti is an ordered set of FileSystem implementations. Open
// returns the result of the first member that can satisfy the URI. Writes
// must go to a single member.
type FileSystemMulti []idl.FileSystem

func (r FileSystemMulti) Open(ctx context.Context, uri string) ([]idl.File, error) {
	for _, fs := range r {
		files, err := fs.Open(ctx, uri)
		if err != nil {
			continue
		}
		return files, nil
	}
	return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, fmt.Sprintf("could not open %s from any file system", uri))
}

func (r FileSystemMulti) Write(ctx context.Context, uri string, content string) error {
	return exc.New(exc.Location{URI: uri}, exc.CodeUnsupportedFileSystemOperation, "cannot write to a composite file system")
}

// FileFilter selects which files are opened when a target is a directory.
type FileFilter func(ctx context.Context, fname string) bool

type FileSystemLocalOption func(*fileSystemLocal)

// WithOptionFSFactory replaces os.DirFS as the source of the underlying file
// system. The factory receives the absolute root directory.
func WithOptionFSFactory(v func(root string) fs.FS) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fsFactory = v
	}
}

// WithOptionFileFilter replaces the default filter, which keeps drip source
// files only.
func WithOptionFileFilter(v FileFilter) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fileFilter = v
	}
}

type fileSystemLocal struct {
	root       string
	fsFactory  func(string) fs.FS
	fileFilter FileFilter
}

// NewFileSystemLocal creates a FileSystem rooted at a directory of the local
// disk. URIs given to Open and Write are resolved against the root and can
// never escape it.
func NewFileSystemLocal(root string, options ...FileSystemLocalOption) (idl.FileSystem, error) {
	absroot, err := filepath.Abs(root)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: root}, err)
	}
	result := &fileSystemLocal{
		root:      absroot,
		fsFactory: os.DirFS,
		fileFilter: func(ctx context.Context, fname string) bool {
			return KindOf(fname) != idl.FileKindNone
		},
	}
	for _, option := range options {
		option(result)
	}
	return result, nil
}

// resolve turns a URI into an unrooted, slash separated path as required by
// fs.ValidPath. The root itself is ".". It reports false for URIs that do not
// name a local file.
func resolve(uri string) (string, bool) {
	p, ok := target.FilePath(uri)
	if !ok {
		return "", false
	}
	p = strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(p)), "/")
	if p == "" {
		return ".", true
	}
	return p, true
}

// Open returns the file named by uri. A directory opens every matching file
// below it, depth first in lexical order. Hidden directories are skipped.
func (r *fileSystemLocal) Open(ctx context.Context, uri string) ([]idl.File, error) {
	p, ok := resolve(uri)
	if !ok {
		return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, fmt.Sprintf("%s is not a local path", uri))
	}
	dir := r.fsFactory(r.root)
	stat, err := fs.Stat(dir, p)
	if err != nil {
		return nil, fsErr(p, err)
	}
	if !stat.IsDir() {
		return []idl.File{r.file(dir, p)}, nil
	}

	var files []idl.File
	err = fs.WalkDir(dir, p, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name != p && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if r.fileFilter(ctx, d.Name()) {
			files = append(files, r.file(dir, name))
		}
		return nil
	})
	if err != nil {
		return nil, fsErr(p, err)
	}
	if len(files) < 1 {
		return nil, exc.New(exc.Location{URI: "/" + p}, exc.CodeFileNotFound, fmt.Sprintf("found directory /%s but it holds no drip files", p))
	}
	return files, nil
}

func (r *fileSystemLocal) file(dir fs.FS, name string) idl.File {
	return NewFileFN(path.Join("/", name), func() (io.ReadCloser, error) {
		return dir.Open(name)
	}, KindOf(name))
}

// Write stores content at uri below the root, creating parent directories as
// needed.
func (r *fileSystemLocal) Write(ctx context.Context, uri string, content string) error {
	rel, ok := resolve(uri)
	if !ok {
		return exc.New(exc.Location{URI: uri}, exc.CodeUnsupportedFileSystemOperation, fmt.Sprintf("cannot write %s to a local file system", uri))
	}
	p := filepath.Join(r.root, filepath.FromSlash(rel))
	d := filepath.Dir(p)
	if err := os.MkdirAll(d, os.ModeDir|0o755); err != nil {
		return fsErr(d, err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		return fsErr(p, err)
	}
	return nil
}

func fsErr(path string, err error) error {
	if e, ok := err.(exc.Exception); ok {
		return e
	}
	location := exc.Location{URI: path}
	if errT, ok := err.(*fs.PathError); ok {
		location.URI = errT.Path
	}
	switch {
	case os.IsNotExist(err):
		return exc.Wrap(location, exc.CodeFileNotFound, err)
	case os.IsPermission(err):
		return exc.Wrap(location, exc.CodePermissionDenied, err)
	default:
		return exc.WrapUnknown(location, err)
	}
}
