package metadata

import (
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	exiftool "github.com/barasher/go-exiftool"

	"datefix/internal/logging"
)

const (
	captureDateTag    = "DateTimeOriginal"
	captureDateLayout = "2006:01:02 15:04:05"
)

// Store reads and writes embedded capture dates. Reads are served from
// an in-process EXIF parse when the container allows it and fall back
// to a long-running exiftool process otherwise. Writes always go
// through exiftool, which rewrites files in place.
type Store struct {
	logger *slog.Logger
	tool   *exiftool.Exiftool
	dryRun bool
}

// NewStore starts the exiftool process backing the store. The caller
// owns the returned store and must Close it.
func NewStore(logger *slog.Logger, binary string, dryRun bool) (*Store, error) {
	// SetExiftoolBinaryPath stats its argument verbatim, so a bare
	// command name has to be resolved against PATH first.
	resolved, err := exec.LookPath(binary)
	if err != nil {
		resolved = binary
	}
	tool, err := exiftool.NewExiftool(exiftool.SetExiftoolBinaryPath(resolved))
	if err != nil {
		return nil, fmt.Errorf("starting exiftool: %w", err)
	}
	return &Store{
		logger: logging.NewComponentLogger(logger, "metadata"),
		tool:   tool,
		dryRun: dryRun,
	}, nil
}

// Close shuts down the exiftool process.
func (s *Store) Close() error {
	return s.tool.Close()
}

// ReadDate returns the file's embedded capture date, if present. A
// missing tag, an unreadable file, and an unparseable timestamp all
// report absence rather than an error.
func (s *Store) ReadDate(path string) (time.Time, bool) {
	if ts, ok := readEmbeddedDate(path); ok {
		return ts, true
	}

	metas := s.tool.ExtractMetadata(path)
	if len(metas) == 0 {
		return time.Time{}, false
	}
	if err := metas[0].Err; err != nil {
		s.logger.Debug("exiftool could not read file",
			logging.String(logging.FieldFile, path),
			logging.Error(err))
		return time.Time{}, false
	}
	raw, err := metas[0].GetString(captureDateTag)
	if err != nil {
		return time.Time{}, false
	}
	return parseCaptureDate(raw)
}

// WriteDate stores value as the file's capture date. In dry run mode
// the write is logged and skipped.
func (s *Store) WriteDate(path string, value time.Time) error {
	if s.dryRun {
		s.logger.Info("dry run, skipping capture date write",
			logging.String(logging.FieldFile, path),
			logging.Time(logging.FieldValue, value))
		return nil
	}

	meta := exiftool.EmptyFileMetadata()
	meta.File = path
	meta.SetString(captureDateTag, value.Format(captureDateLayout))

	metas := []exiftool.FileMetadata{meta}
	s.tool.WriteMetadata(metas)
	if err := metas[0].Err; err != nil {
		return fmt.Errorf("writing capture date to %s: %w", path, err)
	}
	return nil
}
