package fs

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"gopkg.driplang.org/parser.go/internal/exc"
	"gopkg.driplang.org/parser.go/internal/idl"
)

func newMapFS(t *testing.T, files fstest.MapFS) idl.FileSystem {
	t.Helper()
	f, err := NewFileSystemLocal(".", WithOptionFSFactory(func(string) iofs.FS {
		return files
	}))
	require.NoError(t, err)
	return f
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, idl.FileKindDrip, KindOf("a/b.drip"))
	require.Equal(t, idl.FileKindNone, KindOf("a/b.txt"))
	require.Equal(t, idl.FileKindNone, KindOf("drip"))
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newMapFS(t, fstest.MapFS{
		"src/main.drip": {Data: []byte("a := 1")},
	})
	files, err := f.Open(ctx, "src/main.drip")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "/src/main.drip", files[0].Path(ctx))
	require.Equal(t, idl.FileKindDrip, files[0].Kind(ctx))
	content, err := ReadAll(ctx, files[0])
	require.NoError(t, err)
	require.Equal(t, "a := 1", content)

	files, err = f.Open(ctx, "file:///src/main.drip")
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestOpenDirectory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newMapFS(t, fstest.MapFS{
		"src/b.drip":        {Data: []byte("b")},
		"src/a.drip":        {Data: []byte("a")},
		"src/notes.txt":     {Data: []byte("ignored")},
		"src/nested/c.drip": {Data: []byte("c")},
		"src/.cache/d.drip": {Data: []byte("hidden")},
		"empty/readme.md":   {Data: []byte("ignored")},
	})
	files, err := f.Open(ctx, "/src")
	require.NoError(t, err)
	require.Len(t, files, 3)
	require.Equal(t, "/src/a.drip", files[0].Path(ctx))
	require.Equal(t, "/src/b.drip", files[1].Path(ctx))
	require.Equal(t, "/src/nested/c.drip", files[2].Path(ctx))

	files, err = f.Open(ctx, "/")
	require.NoError(t, err)
	require.Len(t, files, 3)

	_, err = f.Open(ctx, "/empty")
	var e exc.Exception
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeFileNotFound, e.Code())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		uri      string
		expected string
		local    bool
	}{
		{uri: "", expected: ".", local: true},
		{uri: "/", expected: ".", local: true},
		{uri: "a.drip", expected: "a.drip", local: true},
		{uri: "/src/../a.drip", expected: "a.drip", local: true},
		{uri: "../../etc/x.drip", expected: "etc/x.drip", local: true},
		{uri: "file:///src/a.drip", expected: "src/a.drip", local: true},
		{uri: "/a#1.drip", expected: "a#1.drip", local: true},
		{uri: "/a%20b.drip", expected: "a%20b.drip", local: true},
		{uri: "mem://a.drip", local: false},
	}
	for _, testCase := range testCases {
		actual, ok := resolve(testCase.uri)
		require.Equal(t, testCase.local, ok, testCase.uri)
		require.Equal(t, testCase.expected, actual, testCase.uri)
	}
}

func TestOpenVerbatimNames(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newMapFS(t, fstest.MapFS{
		"a#1.drip":   {Data: []byte("hash")},
		"a%20b.drip": {Data: []byte("percent")},
		"a":          {Data: []byte("wrong")},
		"a b.drip":   {Data: []byte("wrong")},
	})
	for uri, expected := range map[string]string{"/a#1.drip": "hash", "/a%20b.drip": "percent"} {
		files, err := f.Open(ctx, uri)
		require.NoError(t, err)
		require.Len(t, files, 1)
		require.Equal(t, uri, files[0].Path(ctx))
		content, err := ReadAll(ctx, files[0])
		require.NoError(t, err)
		require.Equal(t, expected, content)
	}

	_, err := f.Open(ctx, "mem://a.drip")
	var e exc.Exception
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeFileNotFound, e.Code())
}

func TestOpenMissing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newMapFS(t, fstest.MapFS{})
	_, err := f.Open(ctx, "/missing.drip")
	var e exc.Exception
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeFileNotFound, e.Code())

	_, err = FileSystemMulti{f}.Open(ctx, "/missing.drip")
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeFileNotFound, e.Code())
	require.Equal(t, "/missing.drip", e.Location().URI)
}

func TestMultiFallsThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	first := newMapFS(t, fstest.MapFS{"a.drip": {Data: []byte("first")}})
	second := newMapFS(t, fstest.MapFS{
		"a.drip": {Data: []byte("second")},
		"b.drip": {Data: []byte("second")},
	})
	multi := FileSystemMulti{first, second}

	files, err := multi.Open(ctx, "/a.drip")
	require.NoError(t, err)
	content, err := ReadAll(ctx, files[0])
	require.NoError(t, err)
	require.Equal(t, "first", content)

	files, err = multi.Open(ctx, "/b.drip")
	require.NoError(t, err)
	content, err = ReadAll(ctx, files[0])
	require.NoError(t, err)
	require.Equal(t, "second", content)

	var e exc.Exception
	require.ErrorAs(t, multi.Write(ctx, "/c.drip", ""), &e)
	require.Equal(t, exc.CodeUnsupportedFileSystemOperation, e.Code())
}

func TestWriteThenOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	f, err := NewFileSystemLocal(root)
	require.NoError(t, err)
	require.NoError(t, f.Write(ctx, "/out/x.drip", "x := 1"))

	b, err := os.ReadFile(filepath.Join(root, "out", "x.drip"))
	require.NoError(t, err)
	require.Equal(t, "x := 1", string(b))

	files, err := f.Open(ctx, "/out")
	require.NoError(t, err)
	require.Len(t, files, 1)
	content, err := ReadAll(ctx, files[0])
	require.NoError(t, err)
	require.Equal(t, "x := 1", content)
}

func TestReadAllBodyFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := NewFileFN("/broken.drip", func() (io.ReadCloser, error) {
		return nil, errors.New("boom")
	}, idl.FileKindDrip)
	_, err := ReadAll(ctx, f)
	var e exc.Exception
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeUnknownFatal, e.Code())
	require.Equal(t, "/broken.drip", e.Location().URI)

	content, err := ReadAll(ctx, NewFileString("/s.drip", "s", idl.FileKindDrip))
	require.NoError(t, err)
	require.Equal(t, "s", content)
}
