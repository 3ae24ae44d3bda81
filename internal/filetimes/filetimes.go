package filetimes

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/djherbis/times"

	"datefix/internal/logging"
)

// EpochFloor is the earliest modification time a write will produce.
// Timestamps inside the first day of 1970 are placeholders left by
// tools that lost the real date, so writes clamp to the day after.
var EpochFloor = time.Date(1970, 1, 2, 0, 0, 0, 0, time.Local)

// Store reads and writes filesystem modification times. In dry run
// mode writes are logged and skipped.
type Store struct {
	logger *slog.Logger
	dryRun bool
}

func New(logger *slog.Logger, dryRun bool) *Store {
	return &Store{
		logger: logging.NewComponentLogger(logger, "filetimes"),
		dryRun: dryRun,
	}
}

// Modified returns the file's modification time.
func (s *Store) Modified(path string) (time.Time, error) {
	spec, err := times.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("reading file times for %s: %w", path, err)
	}
	return spec.ModTime(), nil
}

// SetModified stamps the file's access and modification times with
// value, clamped to EpochFloor.
func (s *Store) SetModified(path string, value time.Time) error {
	if s.dryRun {
		s.logger.Info("dry run, skipping modification time write",
			logging.String(logging.FieldFile, path),
			logging.Time(logging.FieldValue, value))
		return nil
	}
	if value.Before(EpochFloor) {
		s.logger.Debug("clamping modification time to the epoch floor",
			logging.String(logging.FieldFile, path),
			logging.Time(logging.FieldValue, value))
		value = EpochFloor
	}
	if err := os.Chtimes(path, value, value); err != nil {
		return fmt.Errorf("setting modification time for %s: %w", path, err)
	}
	return nil
}
