package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gopkg.driplang.org/parser.go/internal/compiler"
	"gopkg.driplang.org/parser.go/internal/config"
	"gopkg.driplang.org/parser.go/internal/fs"
	"gopkg.driplang.org/parser.go/internal/render"
	"gopkg.driplang.org/parser.go/internal/repl"
	"gopkg.driplang.org/parser.go/internal/target"
	"gopkg.driplang.org/parser.go/internal/watch"
)

type opts struct {
	Roots      []string
	ConfigPath string
	Color      bool
	LogLevel   string
	Format     string
	Watch      bool
	Out        string
	Trivia     bool

	config *config.Config
	logger *slog.Logger
}

// errExit carries a process exit status without a message. Diagnostics have
// already been written by the time it is returned.
type errExit int

func (e errExit) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		var code errExit
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer, stderr io.Writer) *cobra.Command {
	op := &opts{}
	root := &cobra.Command{
		Use:           "drip",
		Short:         "Resilient parser for the drip language",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return op.load(cmd.Flags(), stderr)
		},
	}
	bindCommon(root.PersistentFlags(), op)
	root.SetOut(stdout)
	root.SetErr(stderr)

	parse := &cobra.Command{
		Use:   "parse TARGET...",
		Short: "Parse files or directories and print their syntax trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return op.runParse(cmd.Context(), args, stdout, stderr)
		},
	}
	parse.Flags().StringVar(&op.Format, "format", "text", "Output format: text, yaml or json.")
	parse.Flags().BoolVar(&op.Watch, "watch", false, "Parse again whenever a target changes.")
	parse.Flags().StringVar(&op.Out, "out", "", "Write one output file per module below this directory instead of stdout.")

	tokens := &cobra.Command{
		Use:   "tokens TARGET...",
		Short: "Print the token stream of files or directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return op.runTokens(cmd.Context(), args, stdout, stderr)
		},
	}
	tokens.Flags().BoolVar(&op.Trivia, "trivia", false, "Include whitespace and comments.")

	interactive := &cobra.Command{
		Use:   "repl",
		Short: "Parse input line by line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Start(stdout, repl.Options{
				Prompt:      op.config.REPL.Prompt,
				HistoryFile: op.config.REPL.HistoryFile,
				Color:       op.Color,
			})
		},
	}

	root.AddCommand(parse, tokens, interactive)
	return root
}

func bindCommon(flags *pflag.FlagSet, op *opts) {
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for targets.")
	flags.StringVar(&op.ConfigPath, "config", config.DefaultPath, "Configuration file.")
	flags.BoolVar(&op.Color, "color", false, "Colour the output.")
	flags.StringVar(&op.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error.")
}

// load reads the configuration file and fills in every flag the user did
// not set explicitly.
func (op *opts) load(flags *pflag.FlagSet, stderr io.Writer) error {
	c, err := config.Load(op.ConfigPath, flags.Changed("config"))
	if err != nil {
		return err
	}
	op.config = c
	if !flags.Changed("root") {
		op.Roots = c.Roots
	}
	if !flags.Changed("color") {
		op.Color = c.Color
	}
	if !flags.Changed("log-level") {
		op.LogLevel = c.LogLevel
	}
	if flags.Lookup("format") != nil && !flags.Changed("format") {
		op.Format = c.Format
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(op.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", op.LogLevel, err)
	}
	op.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func (op *opts) newCompiler() (compiler.Compiler, error) {
	mf := make(fs.FileSystemMulti, 0, len(op.Roots)+1)
	for _, root := range op.Roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, err
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			return nil, err
		}
		mf = append(mf, rf)
	}
	df, err := compiler.NewDefaultFS(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	mf = append(mf, df)
	return compiler.New(
		compiler.OptionWithLookupEnv(os.LookupEnv),
		compiler.OptionWithFS(mf),
		compiler.OptionWithLogger(op.logger),
	)
}

// compile runs one compile and writes its diagnostics. A nil response means
// nothing can be printed.
func (op *opts) compile(ctx context.Context, c compiler.Compiler, targets []string, stderr io.Writer) (*compiler.CompileResponse, error) {
	out, err := c.Compile(ctx, &compiler.CompileRequest{Files: targets})
	if err == nil {
		return out, nil
	}
	var me compiler.MultiException
	if !errors.As(err, &me) {
		return nil, err
	}
	if rerr := render.New(stderr, op.Color).Diagnostics(me); rerr != nil {
		return nil, rerr
	}
	return out, errExit(1)
}

func (op *opts) runParse(ctx context.Context, targets []string, stdout io.Writer, stderr io.Writer) error {
	format, err := render.ParseFormat(op.Format)
	if err != nil {
		return err
	}
	c, err := op.newCompiler()
	if err != nil {
		return err
	}
	run := func(ctx context.Context) error {
		out, err := op.compile(ctx, c, targets, stderr)
		if out == nil {
			return err
		}
		if op.Out != "" {
			if werr := op.writeModules(ctx, out.Modules, format); werr != nil {
				return werr
			}
			return err
		}
		r := render.New(stdout, op.Color)
		for _, module := range out.Modules {
			if rerr := r.Result(module.URI, module.Result, format); rerr != nil {
				return rerr
			}
		}
		return err
	}
	err = run(ctx)
	if !op.Watch {
		return err
	}
	return op.watch(ctx, targets, stderr, run)
}

// writeModules stores each rendered module below the output directory at
// its own URI plus the extension of the format.
func (op *opts) writeModules(ctx context.Context, modules []*compiler.Module, format render.Format) error {
	dest, err := fs.NewFileSystemLocal(op.Out)
	if err != nil {
		return err
	}
	for _, module := range modules {
		var b bytes.Buffer
		if err := render.New(&b, false).Result(module.URI, module.Result, format); err != nil {
			return err
		}
		uri := module.URI + format.Extension()
		if err := dest.Write(ctx, uri, b.String()); err != nil {
			return err
		}
		op.logger.Info("wrote module", slog.String("uri", uri))
	}
	return nil
}

func (op *opts) watch(ctx context.Context, targets []string, stderr io.Writer, run func(context.Context) error) error {
	var paths []string
	for _, t := range targets {
		for _, root := range op.Roots {
			p, ok := target.LocalPath(root, t)
			if !ok {
				continue
			}
			if _, err := os.Stat(p); err == nil {
				paths = append(paths, p)
				break
			}
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("none of the targets can be watched")
	}
	w, err := watch.New(paths, op.config.Watch.Debounce.Duration, op.logger)
	if err != nil {
		return err
	}
	defer w.Close()
	err = w.Run(ctx, func(ctx context.Context) {
		if err := run(ctx); err != nil && !errors.As(err, new(errExit)) {
			fmt.Fprintln(stderr, err.Error())
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (op *opts) runTokens(ctx context.Context, targets []string, stdout io.Writer, stderr io.Writer) error {
	c, err := op.newCompiler()
	if err != nil {
		return err
	}
	out, err := op.compile(ctx, c, targets, stderr)
	if out != nil {
		r := render.New(stdout, op.Color)
		for _, module := range out.Modules {
			if rerr := r.Tokens(module.Tokens, op.Trivia); rerr != nil {
				return rerr
			}
		}
	}
	return err
}
