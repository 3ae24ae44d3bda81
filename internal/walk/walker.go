package walk

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"datefix/internal/logging"
	"datefix/internal/reconcile"
	"datefix/internal/report"
)

// Processor reconciles a single file.
type Processor interface {
	Process(path string) reconcile.Outcome
}

// Walker drives reconciliation over a directory tree or a single file.
// Cancellation is cooperative: the context is consulted before each
// new file, never mid-file, so a file that has started always finishes.
type Walker struct {
	logger     *slog.Logger
	processor  Processor
	exclude    []string
	skipHidden bool
}

type Option func(*Walker)

// WithExclusions skips any path containing one of the substrings.
func WithExclusions(patterns []string) Option {
	return func(w *Walker) {
		w.exclude = patterns
	}
}

// WithSkipHidden prunes dot-prefixed files and directories.
func WithSkipHidden(skip bool) Option {
	return func(w *Walker) {
		w.skipHidden = skip
	}
}

func New(logger *slog.Logger, processor Processor, opts ...Option) *Walker {
	w := &Walker{
		logger:    logging.NewComponentLogger(logger, "walk"),
		processor: processor,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Directory walks root and reconciles every regular file it reaches.
// An unreadable subdirectory is logged and counted, not fatal; only a
// failure on root itself aborts the walk.
func (w *Walker) Directory(ctx context.Context, root string, sum *report.Summary) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			w.logger.Error("walking directory failed",
				logging.String(logging.FieldFile, path),
				logging.Error(err))
			sum.Errors++
			return nil
		}
		if ctx.Err() != nil {
			w.logger.Info("cancellation requested, stopping traversal")
			return filepath.SkipAll
		}
		if d.IsDir() {
			if path != root {
				if w.excluded(path) {
					w.logger.Debug("skipping excluded directory",
						logging.String(logging.FieldFile, path))
					return filepath.SkipDir
				}
				if w.skipHidden && strings.HasPrefix(d.Name(), ".") {
					w.logger.Debug("skipping hidden directory",
						logging.String(logging.FieldFile, path))
					return filepath.SkipDir
				}
			}
			sum.FoldersSeen++
			return nil
		}
		if !d.Type().IsRegular() {
			w.logger.Debug("skipping irregular file",
				logging.String(logging.FieldFile, path))
			return nil
		}
		if w.excluded(path) {
			w.logger.Debug("skipping excluded file",
				logging.String(logging.FieldFile, path))
			sum.FilesSkipped++
			return nil
		}
		if w.skipHidden && strings.HasPrefix(d.Name(), ".") {
			w.logger.Debug("skipping hidden file",
				logging.String(logging.FieldFile, path))
			sum.FilesSkipped++
			return nil
		}
		w.handle(path, sum)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}
	return nil
}

// File reconciles a single explicitly named file. Exclusions still
// apply; the hidden-file rule does not, since the caller asked for the
// file by name.
func (w *Walker) File(ctx context.Context, path string, sum *report.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.excluded(path) {
		w.logger.Debug("skipping excluded file",
			logging.String(logging.FieldFile, path))
		sum.FilesSkipped++
		return nil
	}
	w.handle(path, sum)
	return nil
}

func (w *Walker) handle(path string, sum *report.Summary) {
	sum.FilesSeen++
	out := w.processor.Process(path)
	if out.SkippedNonImage {
		sum.NonImages++
	}
	if out.EmbeddedUpdated {
		sum.EmbeddedUpdated++
	}
	if out.ModifiedUpdated {
		sum.ModifiedUpdated++
	}
	if out.Unresolved {
		sum.Unresolved++
	}
	if out.ReadError {
		sum.Errors++
	}
	sum.Errors += out.WriteErrors
}

func (w *Walker) excluded(path string) bool {
	for _, pattern := range w.exclude {
		if pattern != "" && strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}
