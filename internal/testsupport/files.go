package testsupport

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Touch writes a small placeholder file, creating parent directories
// as needed.
func Touch(t testing.TB, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("placeholder"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteCaptureTIFF writes a minimal little-endian TIFF whose EXIF
// sub-directory carries stamp ("2006:01:02 15:04:05" form) as the
// capture date. The in-process metadata reader understands it, so
// tests get real image fixtures without shelling out to exiftool.
func WriteCaptureTIFF(t testing.TB, path, stamp string) {
	t.Helper()

	value := append([]byte(stamp), 0)
	buf := []byte{'I', 'I', 0x2a, 0x00, 8, 0, 0, 0}

	// IFD0: a single pointer to the EXIF sub-directory at offset 26.
	buf = binary.LittleEndian.AppendUint16(buf, 1)
	buf = binary.LittleEndian.AppendUint16(buf, 0x8769)
	buf = binary.LittleEndian.AppendUint16(buf, 4)
	buf = binary.LittleEndian.AppendUint32(buf, 1)
	buf = binary.LittleEndian.AppendUint32(buf, 26)
	buf = binary.LittleEndian.AppendUint32(buf, 0)

	// EXIF sub-directory: DateTimeOriginal as ASCII data at offset 44.
	buf = binary.LittleEndian.AppendUint16(buf, 1)
	buf = binary.LittleEndian.AppendUint16(buf, 0x9003)
	buf = binary.LittleEndian.AppendUint16(buf, 2)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(value)))
	buf = binary.LittleEndian.AppendUint32(buf, 44)
	buf = binary.LittleEndian.AppendUint32(buf, 0)

	buf = append(buf, value...)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteImageWithoutDate writes a bare TIFF container that carries no
// capture date at all.
func WriteImageWithoutDate(t testing.TB, path string) {
	t.Helper()

	buf := []byte{'I', 'I', 0x2a, 0x00, 8, 0, 0, 0}
	// An IFD with zero entries and no successor.
	buf = binary.LittleEndian.AppendUint16(buf, 0)
	buf = binary.LittleEndian.AppendUint32(buf, 0)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
