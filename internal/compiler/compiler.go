// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gopkg.driplang.org/parser.go/internal/exc"
	"gopkg.driplang.org/parser.go/internal/fs"
	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/lexer"
	"gopkg.driplang.org/parser.go/internal/parser"
	"gopkg.driplang.org/parser.go/internal/target"
)

type Option func(c *compiler) error

func OptionWithFS(fs idl.FileSystem) Option {
	return func(c *compiler) error {
		c.FS = fs
		return nil
	}
}

func OptionWithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(c *compiler) error {
		c.LookupENV = lookupEnv
		return nil
	}
}

// OptionWithExcReporter installs a reporter shared by every call to Compile.
// Without it each call gets a fresh reporter.
func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(c *compiler) error {
		c.Reporter = reporter
		return nil
	}
}

func OptionWithLogger(logger *slog.Logger) Option {
	return func(c *compiler) error {
		c.Logger = logger
		return nil
	}
}

func OptionWithMaxConcurrency(max int) Option {
	return func(c *compiler) error {
		c.MaxConcurrency = max
		return nil
	}
}

type Compiler interface {
	Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error)
}

type CompileRequest struct {
	// Files are paths or URIs. Directories expand to the drip files they
	// contain.
	Files []string
}

type CompileResponse struct {
	RunID   string
	Modules []*Module
}

// Module is the outcome of parsing one file.
type Module struct {
	URI    string
	Text   string
	Tokens []idl.Token
	Result *parser.Result
	Lines  *idl.LineIndex
}

func New(opts ...Option) (Compiler, error) {
	c := &compiler{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.LookupENV == nil {
		c.LookupENV = os.LookupEnv
	}
	if c.FS == nil {
		dfs, err := NewDefaultFS(c.LookupENV)
		if err != nil {
			return nil, err
		}
		c.FS = dfs
	}
	if c.MaxConcurrency == 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		c.MaxConcurrency = max
	}
	if c.Semaphore == nil {
		c.Semaphore = newSemaphore(c.MaxConcurrency)
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.Logger = c.Logger.With(slog.String("component", "compiler"))
	return c, nil
}

type compiler struct {
	LookupENV      func(string) (string, bool)
	FS             idl.FileSystem
	MaxConcurrency int
	Semaphore      *semaphore
	Reporter       exc.Reporter
	Logger         *slog.Logger
}

func (self *compiler) Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error) {
	runID := uuid.NewString()
	logger := self.Logger.With(slog.String("run", runID))
	reporter := self.Reporter
	if reporter == nil {
		reporter = exc.NewReporter(nil)
	}
	response := &CompileResponse{RunID: runID}

	files := make([]idl.File, 0, len(req.Files))
	for _, t := range req.Files {
		uri := target.Normalize(t)
		in, err := self.FS.Open(ctx, uri)
		if err != nil {
			if fatal := reporter.Report(toException(uri, err)); fatal != nil {
				return response, MultiException(reporter.Reported())
			}
			continue
		}
		files = append(files, in...)
	}
	logger.Debug("compile started", slog.Int("targets", len(req.Files)), slog.Int("files", len(files)))

	loaded := &sync.Map{}
	results := make(chan fileResult, len(files))
	for _, file := range files {
		go func(file idl.File) {
			module, err := self.compileFile(ctx, logger, reporter, file, loaded)
			results <- fileResult{module, err}
		}(file)
	}

	for x := 0; x < len(files); x = x + 1 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-results:
			if result.err != nil {
				if _, ok := result.err.(exc.Exception); !ok {
					return nil, result.err
				}
				return response, MultiException(reporter.Reported())
			}
			if result.module != nil {
				response.Modules = append(response.Modules, result.module)
			}
		}
	}
	slices.SortFunc(response.Modules, func(a *Module, b *Module) int {
		return strings.Compare(a.URI, b.URI)
	})

	caught := reporter.Reported()
	logger.Debug("compile finished", slog.Int("modules", len(response.Modules)), slog.Int("exceptions", len(caught)))
	if len(caught) > 0 {
		return response, MultiException(caught)
	}
	return response, nil
}

func (self *compiler) compileFile(ctx context.Context, logger *slog.Logger, reporter exc.Reporter, file idl.File, loaded *sync.Map) (*Module, error) {
	if err := self.Semaphore.Acquire(ctx); err != nil {
		return nil, err
	}
	defer self.Semaphore.Release()

	uri := file.Path(ctx)
	if _, ok := loaded.LoadOrStore(uri, true); ok {
		return nil, nil
	}
	if file.Kind(ctx) != idl.FileKindDrip {
		e := exc.New(exc.Location{URI: uri}, exc.CodeUnsupportedFileFormat, "unsupported file format")
		return nil, reporter.Report(e)
	}
	text, err := fs.ReadAll(ctx, file)
	if err != nil {
		return nil, reporter.Report(toException(uri, err))
	}

	started := time.Now()
	tokens := lexer.Tokenize(text)
	result := parser.ParseTokens(tokens)
	module := &Module{
		URI:    uri,
		Text:   text,
		Tokens: tokens,
		Result: result,
		Lines:  idl.NewLineIndex(text),
	}
	for _, e := range Diagnostics(module) {
		if fatal := reporter.Report(e); fatal != nil {
			return nil, fatal
		}
	}
	logger.Debug("parsed file",
		slog.String("uri", uri),
		slog.Int("tokens", len(tokens)),
		slog.Int("events", result.EventCount()),
		slog.Int("diagnostics", len(result.Errors())),
		slog.Duration("elapsed", time.Since(started)),
	)
	return module, nil
}

// Diagnostics converts the parse errors of a module into exceptions located
// by line and column.
func Diagnostics(module *Module) []exc.Exception {
	errs := module.Result.Errors()
	result := make([]exc.Exception, 0, len(errs))
	for _, err := range errs {
		code := exc.CodeUnexpectedToken
		if err.Unsupported != "" {
			code = exc.CodeUnsupportedConstruct
		}
		location := exc.Location{
			URI:      module.URI,
			Location: module.Lines.Location(err.Range.Start),
		}
		result = append(result, exc.New(location, code, err.Message()))
	}
	return result
}

func toException(uri string, err error) exc.Exception {
	if e, ok := err.(exc.Exception); ok {
		return e
	}
	return exc.WrapUnknown(exc.Location{URI: uri}, err)
}

type fileResult struct {
	module *Module
	err    error
}

type MultiException []exc.Exception

func (self MultiException) Error() string {
	if len(self) == 0 {
		return "no exceptions"
	}
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}
