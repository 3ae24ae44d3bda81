package metadata

import (
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// readEmbeddedDate parses the capture date in process. It handles the
// JPEG and TIFF containers goexif understands; anything else falls back
// to the exiftool process in Store.ReadDate.
func readEmbeddedDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}
	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, false
	}
	raw, err := tag.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	return parseCaptureDate(raw)
}

// parseCaptureDate converts an EXIF timestamp string into a local time.
// Sub-second suffixes and timezone offsets some writers append are
// ignored.
func parseCaptureDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) > len(captureDateLayout) {
		raw = raw[:len(captureDateLayout)]
	}
	ts, err := time.ParseInLocation(captureDateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
