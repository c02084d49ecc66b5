// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"io"
	"strings"

	"gopkg.driplang.org/parser.go/internal/exc"
	"gopkg.driplang.org/parser.go/internal/idl"
)

// NewFileString wraps static string content in idl.File.
func NewFileString(path string, content string, kind idl.FileKind) idl.File {
	return NewFileFN(path, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	}, kind)
}

type fileIOFunc struct {
	path string
	kind idl.FileKind
	body func() (io.ReadCloser, error)
}

// NewFileFN is intended to wrap actual file based content in the idl.File
// interface. The given body function is used each time there is a call to the
// idl.File.Body method so it must return a new io.ReadCloser handle.
func NewFileFN(path string, body func() (io.ReadCloser, error), kind idl.FileKind) idl.File {
	return &fileIOFunc{
		path: path,
		kind: kind,
		body: body,
	}
}

func (f *fileIOFunc) Path(ctx context.Context) string {
	return f.path
}
func (f *fileIOFunc) Kind(ctx context.Context) idl.FileKind {
	return f.kind
}
func (f *fileIOFunc) Body(ctx context.Context) (io.ReadCloser, error) {
	return f.body()
}

// ReadAll loads the complete body of a file. Failures are reported as
// exceptions located at the file.
func ReadAll(ctx context.Context, f idl.File) (string, error) {
	rc, err := f.Body(ctx)
	if err != nil {
		return "", fsErr(f.Path(ctx), err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", exc.WrapUnknown(exc.Location{URI: f.Path(ctx)}, err)
	}
	return string(b), nil
}
