package compiler

import (
	"bytes"
	"context"
	"errors"
	iofs "io/fs"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"gopkg.driplang.org/parser.go/internal/exc"
	"gopkg.driplang.org/parser.go/internal/fs"
	"gopkg.driplang.org/parser.go/internal/idl"
)

func newTestCompiler(t *testing.T, files fstest.MapFS, opts ...Option) Compiler {
	t.Helper()
	local, err := fs.NewFileSystemLocal(".", fs.WithOptionFSFactory(func(string) iofs.FS {
		return files
	}))
	require.NoError(t, err)
	opts = append([]Option{OptionWithFS(local)}, opts...)
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

func TestCompileClean(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := newTestCompiler(t, fstest.MapFS{
		"src/b.drip": {Data: []byte("b := 2")},
		"src/a.drip": {Data: []byte("a := 1")},
	}, OptionWithLogger(logger), OptionWithMaxConcurrency(1))

	out, err := c.Compile(context.Background(), &CompileRequest{Files: []string{"src"}})
	require.NoError(t, err)
	require.NotEmpty(t, out.RunID)
	require.Len(t, out.Modules, 2)
	require.Equal(t, "/src/a.drip", out.Modules[0].URI)
	require.Equal(t, "/src/b.drip", out.Modules[1].URI)
	require.Equal(t, "a := 1", out.Modules[0].Text)
	require.Equal(t, "a := 1", out.Modules[0].Result.Tree().Text())
	require.Len(t, out.Modules[0].Tokens, 5)
	require.Contains(t, logs.String(), "component=compiler")
	require.Contains(t, logs.String(), "uri=/src/a.drip")
	require.Contains(t, logs.String(), "run="+out.RunID)
}

func TestCompileDiagnostics(t *testing.T) {
	t.Parallel()

	c := newTestCompiler(t, fstest.MapFS{
		"bad.drip": {Data: []byte("a := 1\nb :: (\nextern x")},
	})
	out, err := c.Compile(context.Background(), &CompileRequest{Files: []string{"bad.drip", "bad.drip"}})
	require.Error(t, err)
	require.Len(t, out.Modules, 1)

	var me MultiException
	require.ErrorAs(t, err, &me)
	require.Len(t, me, 3)

	require.Equal(t, exc.CodeUnexpectedToken, me[0].Code())
	require.Equal(t, "/bad.drip", me[0].Location().URI)
	require.Equal(t, int32(3), me[0].Location().Line)
	require.Equal(t, int32(1), me[0].Location().Column)
	require.Equal(t, "expected number, identifier, '-' or '(', but found extern", me[0].Message())

	require.Equal(t, exc.CodeUnexpectedToken, me[1].Code())
	require.Equal(t, "expected ')', but found extern", me[1].Message())

	require.Equal(t, exc.CodeUnsupportedConstruct, me[2].Code())
	require.Equal(t, "unsupported extern block", me[2].Message())
	require.Equal(t, int64(14), me[2].Location().Offset)
}

func TestCompileMissingFile(t *testing.T) {
	t.Parallel()

	c := newTestCompiler(t, fstest.MapFS{})
	_, err := c.Compile(context.Background(), &CompileRequest{Files: []string{"missing.drip"}})
	var me MultiException
	require.ErrorAs(t, err, &me)
	require.Len(t, me, 1)
	require.Equal(t, exc.CodeFileNotFound, me[0].Code())
}

func TestCompileUnsupportedFormat(t *testing.T) {
	t.Parallel()

	c := newTestCompiler(t, fstest.MapFS{
		"notes.txt": {Data: []byte("hello")},
	})
	_, err := c.Compile(context.Background(), &CompileRequest{Files: []string{"notes.txt"}})
	var me MultiException
	require.ErrorAs(t, err, &me)
	require.Len(t, me, 1)
	require.Equal(t, exc.CodeUnsupportedFileFormat, me[0].Code())
}

func TestCompileSharedReporter(t *testing.T) {
	t.Parallel()

	reporter := exc.NewReporter(nil)
	c := newTestCompiler(t, fstest.MapFS{
		"a.drip": {Data: []byte(")")},
	}, OptionWithExcReporter(reporter))
	_, err := c.Compile(context.Background(), &CompileRequest{Files: []string{"a.drip"}})
	require.Error(t, err)
	_, err = c.Compile(context.Background(), &CompileRequest{Files: []string{"a.drip"}})
	require.Error(t, err)
	require.Len(t, reporter.Reported(), 2)
}

func TestCompileCancelled(t *testing.T) {
	t.Parallel()

	c := newTestCompiler(t, fstest.MapFS{
		"a.drip": {Data: []byte("a")},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Compile(ctx, &CompileRequest{Files: []string{"a.drip"}})
	if err != nil {
		require.True(t, errors.Is(err, context.Canceled))
	}
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	module := &Module{URI: "mem://x"}
	c := newTestCompiler(t, fstest.MapFS{"x.drip": {Data: []byte("x :: trait { Type T }")}})
	out, err := c.Compile(context.Background(), &CompileRequest{Files: []string{"x.drip"}})
	require.Error(t, err)
	module.Result = out.Modules[0].Result
	module.Lines = idl.NewLineIndex(out.Modules[0].Text)

	excs := Diagnostics(module)
	require.Len(t, excs, 1)
	require.Equal(t, "mem://x:1:14 -- D0101: unsupported associated type list", excs[0].Error())
}

func TestMultiException(t *testing.T) {
	t.Parallel()

	me := MultiException{
		exc.New(exc.Location{URI: "a"}, exc.CodeFileNotFound, "one"),
		exc.New(exc.Location{URI: "b"}, exc.CodeFileNotFound, "two"),
	}
	require.Equal(t, "a -- D0001: one; b -- D0001: two", me.Error())
	require.Equal(t, "no exceptions", MultiException{}.Error())
}
