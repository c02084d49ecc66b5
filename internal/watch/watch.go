// Package watch re-runs an action when drip sources change on disk.
package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"gopkg.driplang.org/parser.go/internal/fs"
	"gopkg.driplang.org/parser.go/internal/idl"
)

type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger
	// files holds the explicitly named files. Events in watched directories
	// are otherwise filtered by extension.
	files map[string]bool
}

// New watches the given files and directories. A file is watched through
// its parent directory so that editors which replace files on save are
// still noticed.
func New(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		logger:   logger.With(slog.String("component", "watch")),
		files:    make(map[string]bool),
	}
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		stat, err := os.Stat(abs)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		dir := abs
		if !stat.IsDir() {
			dir = filepath.Dir(abs)
			w.files[abs] = true
		}
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
		w.logger.Debug("watching", slog.String("dir", dir))
	}
	return w, nil
}

func (w *Watcher) relevant(name string) bool {
	if w.files[name] {
		return true
	}
	return fs.KindOf(name) == idl.FileKindDrip
}

// Run calls onChange once the watched sources have been quiet for the
// debounce interval after a change. It returns when the context ends or
// the watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context)) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if !w.relevant(event.Name) {
				continue
			}
			w.logger.Debug("change", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)
		case <-timer.C:
			onChange(ctx)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}
