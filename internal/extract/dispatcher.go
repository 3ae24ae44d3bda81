package extract

import (
	"log/slog"
	"path/filepath"
	"time"

	"datefix/internal/logging"
)

// Dispatcher runs the extractor chain over file and folder names, discarding
// any candidate date that lies in the future.
type Dispatcher struct {
	logger *slog.Logger
	now    func() time.Time
	rules  []rule
}

// Option customizes dispatcher construction.
type Option func(*Dispatcher)

// WithClock overrides the time source used for future-date discarding.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// New constructs a Dispatcher. A nil logger falls back to a no-op logger.
func New(logger *slog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger: logging.NewComponentLogger(logger, "extract"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	// Chain order is load-bearing: the permissive date-prefix form must run
	// after the two strict camera patterns, and the screenshot re-dispatch last.
	d.rules = []rule{
		{"whatsapp", whatsappDate},
		{"android", androidDate},
		{"date_prefix", datePrefixDate},
		{"epoch_uuid", epochUUIDDate},
		{"screenshot", d.screenshotDate},
	}
	return d
}

type rule struct {
	name  string
	parse func(name string) (time.Time, bool)
}

// FromPath extracts a date from the path's base name. The second return is
// false when no extractor matched or every match was in the future.
func (d *Dispatcher) FromPath(path string) (time.Time, bool) {
	return d.dispatch(filepath.Base(path))
}

// FromFolder extracts a date from the name of the path's parent directory,
// letting year- or date-named folders supply a date for their contents.
func (d *Dispatcher) FromFolder(path string) (time.Time, bool) {
	return d.dispatch(filepath.Base(filepath.Dir(path)))
}

func (d *Dispatcher) dispatch(name string) (time.Time, bool) {
	for _, r := range d.rules {
		value, ok := r.parse(name)
		if !ok {
			continue
		}
		if value.After(d.now()) {
			d.logger.Debug("discarding extracted date in the future",
				logging.String(logging.FieldExtractor, r.name),
				logging.Time(logging.FieldValue, value),
				logging.String("name", name))
			continue
		}
		return value, true
	}
	return time.Time{}, false
}
