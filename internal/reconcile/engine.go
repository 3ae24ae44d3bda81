package reconcile

import (
	"log/slog"
	"time"

	"datefix/internal/filetimes"
	"datefix/internal/logging"
	"datefix/internal/metadata"
)

// MetadataStore reads and writes embedded capture dates.
type MetadataStore interface {
	ReadDate(path string) (time.Time, bool)
	WriteDate(path string, value time.Time) error
}

// FileTimes reads and writes filesystem modification times.
type FileTimes interface {
	Modified(path string) (time.Time, error)
	SetModified(path string, value time.Time) error
}

// Extractor infers dates from file and folder names.
type Extractor interface {
	FromPath(path string) (time.Time, bool)
	FromFolder(path string) (time.Time, bool)
}

// Outcome describes what a single reconciliation did. Under dry run
// the update fields still report the writes that would have happened.
type Outcome struct {
	SkippedNonImage bool
	EmbeddedUpdated bool
	ModifiedUpdated bool
	Unresolved      bool
	ReadError       bool
	WriteErrors     int
}

// Engine reconciles a file's embedded capture date and filesystem
// modification time to a single trustworthy value. Files are handled
// one at a time; a file that has started processing runs to
// completion.
type Engine struct {
	logger     *slog.Logger
	metadata   MetadataStore
	filetimes  FileTimes
	extractor  Extractor
	futureDays int
	now        func() time.Time
}

type Option func(*Engine)

// WithClock overrides the time source used for future-date checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New builds an engine. futureDays sets the future-date correction
// horizon; zero disables that correction entirely.
func New(logger *slog.Logger, store MetadataStore, times FileTimes, extractor Extractor, futureDays int, opts ...Option) *Engine {
	e := &Engine{
		logger:     logging.NewComponentLogger(logger, "reconcile"),
		metadata:   store,
		filetimes:  times,
		extractor:  extractor,
		futureDays: futureDays,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process runs the decision procedure for one file.
//
// Comparisons against the filesystem date use the value read at the
// start, even after a sanity correction rewrites the file itself.
func (e *Engine) Process(path string) Outcome {
	var out Outcome

	e.logger.Debug("processing file", logging.String(logging.FieldFile, path))

	fsDate, err := e.filetimes.Modified(path)
	if err != nil {
		e.logger.Error("reading modification time failed",
			logging.String(logging.FieldFile, path),
			logging.Error(err))
		out.ReadError = true
		return out
	}

	now := e.now()
	var threshold time.Time
	hasThreshold := e.futureDays > 0
	if hasThreshold {
		threshold = now.Add(time.Duration(e.futureDays) * 24 * time.Hour)
	}

	if hasThreshold && fsDate.After(threshold) {
		e.logger.Info("correcting modification time in the future",
			logging.String(logging.FieldFile, path),
			logging.Time(logging.FieldValue, fsDate))
		if err := e.filetimes.SetModified(path, now); err != nil {
			e.logger.Error("writing modification time failed",
				logging.String(logging.FieldFile, path),
				logging.Error(err))
			out.WriteErrors++
		} else {
			out.ModifiedUpdated = true
		}
	}

	if fsDate.Before(filetimes.EpochFloor) {
		e.logger.Info("correcting modification time before the epoch floor",
			logging.String(logging.FieldFile, path),
			logging.Time(logging.FieldValue, fsDate))
		if err := e.filetimes.SetModified(path, filetimes.EpochFloor); err != nil {
			e.logger.Error("writing modification time failed",
				logging.String(logging.FieldFile, path),
				logging.Error(err))
			out.WriteErrors++
		} else {
			out.ModifiedUpdated = true
		}
	}

	if !metadata.IsSupportedImage(path) {
		e.logger.Debug("skipping file with unsupported extension",
			logging.String(logging.FieldFile, path))
		out.SkippedNonImage = true
		return out
	}

	if embedded, ok := e.metadata.ReadDate(path); ok {
		switch {
		case embedded.Before(filetimes.EpochFloor):
			e.logger.Info("correcting embedded date before the epoch floor",
				logging.String(logging.FieldFile, path),
				logging.Time(logging.FieldValue, embedded))
			if err := e.metadata.WriteDate(path, filetimes.EpochFloor); err != nil {
				e.logger.Error("writing capture date failed",
					logging.String(logging.FieldFile, path),
					logging.Error(err))
				out.WriteErrors++
			} else {
				out.EmbeddedUpdated = true
			}
		case hasThreshold && embedded.After(threshold):
			e.logger.Info("correcting embedded date in the future",
				logging.String(logging.FieldFile, path),
				logging.Time(logging.FieldValue, embedded))
			if err := e.metadata.WriteDate(path, now); err != nil {
				e.logger.Error("writing capture date failed",
					logging.String(logging.FieldFile, path),
					logging.Error(err))
				out.WriteErrors++
			} else {
				out.EmbeddedUpdated = true
			}
		default:
			e.logger.Debug("embedded date already present",
				logging.String(logging.FieldFile, path),
				logging.Time(logging.FieldValue, embedded))
		}
		return out
	}

	extracted, ok := e.extractor.FromPath(path)
	if !ok {
		extracted, ok = e.extractor.FromFolder(path)
	}
	if !ok {
		e.logger.Warn("found no date resolution",
			logging.String(logging.FieldFile, path))
		out.Unresolved = true
		return out
	}

	// Matching years suggest the modification time is the real capture
	// moment and the filename only narrows it to a day, so the finer
	// filesystem value becomes the embedded date.
	if extracted.Year() == fsDate.Year() {
		e.logger.Info("adopting modification time as capture date",
			logging.String(logging.FieldFile, path),
			logging.Time(logging.FieldValue, fsDate))
		if err := e.metadata.WriteDate(path, fsDate); err != nil {
			e.logger.Error("writing capture date failed",
				logging.String(logging.FieldFile, path),
				logging.Error(err))
			out.WriteErrors++
		} else {
			out.EmbeddedUpdated = true
		}
		return out
	}

	e.logger.Info("setting capture and modification dates",
		logging.String(logging.FieldFile, path),
		logging.Time(logging.FieldValue, extracted))
	if err := e.metadata.WriteDate(path, extracted); err != nil {
		e.logger.Error("writing capture date failed",
			logging.String(logging.FieldFile, path),
			logging.Error(err))
		out.WriteErrors++
	} else {
		out.EmbeddedUpdated = true
	}
	if err := e.filetimes.SetModified(path, extracted); err != nil {
		e.logger.Error("writing modification time failed",
			logging.String(logging.FieldFile, path),
			logging.Error(err))
		out.WriteErrors++
	} else {
		out.ModifiedUpdated = true
	}
	return out
}
