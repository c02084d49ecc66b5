package exc

import (
	"errors"
	"io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.driplang.org/parser.go/internal/idl"
)

func TestExceptionFormat(t *testing.T) {
	t.Parallel()

	e := New(Location{URI: "/a.drip", Location: idl.Location{Line: 3, Column: 7, Offset: 20}}, CodeUnexpectedToken, "expected number")
	require.Equal(t, "/a.drip:3:7 -- D0100: expected number", e.Error())
	require.Equal(t, CodeUnexpectedToken, e.Code())
	require.Equal(t, "expected number", e.Message())
	require.Equal(t, int64(20), e.Location().Offset)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	require.Nil(t, Wrap(Location{}, CodeUnknownFatal, nil))

	wrapped := Wrap(Location{URI: "x"}, CodeFileNotFound, fs.ErrNotExist)
	require.Equal(t, CodeFileNotFound, wrapped.Code())
	require.True(t, errors.Is(wrapped, fs.ErrNotExist))

	inner := New(Location{URI: "x"}, CodePermissionDenied, "denied")
	outer := WrapUnknown(Location{URI: "y"}, inner)
	require.Equal(t, CodeUnknownFatal, outer.Code())
	require.Equal(t, "denied", outer.Message())
	var target Exception
	require.True(t, errors.As(errors.Unwrap(outer), &target))
	require.Equal(t, CodePermissionDenied, target.Code())
}

func TestReporter(t *testing.T) {
	t.Parallel()

	r := NewReporter([]string{CodeFileNotFound})
	require.Nil(t, r.Report(New(Location{}, CodeUnexpectedToken, "a")))
	require.Nil(t, r.Report(New(Location{}, CodeFileNotFound, "b")))
	require.NotNil(t, r.Report(New(Location{}, CodeUnknownFatal, "c")))
	require.Len(t, r.Reported(), 3)

	var wg sync.WaitGroup
	for x := 0; x < 50; x = x + 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Report(New(Location{}, CodeUnsupportedConstruct, "d"))
		}()
	}
	wg.Wait()
	require.Len(t, r.Reported(), 53)
}

func TestLocationString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/a.drip", Location{URI: "/a.drip"}.String())
	require.Equal(t, "/a.drip:2:4", Location{URI: "/a.drip", Location: idl.Location{Line: 2, Column: 4}}.String())
	require.Equal(t, "/a.drip -- D0001: missing", New(Location{URI: "/a.drip"}, CodeFileNotFound, "missing").Error())
}

func TestReportedOrder(t *testing.T) {
	t.Parallel()

	at := func(uri string, offset int64) Location {
		return Location{URI: uri, Location: idl.Location{Line: 1, Column: int32(offset) + 1, Offset: offset}}
	}
	r := NewReporter(nil)
	_ = r.Report(New(at("/b.drip", 0), CodeUnexpectedToken, "b0"))
	_ = r.Report(New(at("/a.drip", 9), CodeUnexpectedToken, "a9"))
	_ = r.Report(New(at("/a.drip", 2), CodeUnexpectedToken, "a2 first"))
	_ = r.Report(New(at("/a.drip", 2), CodeUnsupportedConstruct, "a2 second"))

	var messages []string
	for _, e := range r.Reported() {
		messages = append(messages, e.Message())
	}
	require.Equal(t, []string{"a2 first", "a2 second", "a9", "b0"}, messages)
}
