package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"datefix/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp log directory
// per test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithExclusions sets the scan exclusion substrings on the test config.
func WithExclusions(patterns ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.Exclude = patterns
	}
}

// WithFutureDays sets the future-date correction horizon on the test config.
func WithFutureDays(days int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Fix.FutureDays = days
	}
}

// WithExiftoolBinary overrides the exiftool binary on the test config.
func WithExiftoolBinary(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Exiftool.Binary = path
	}
}

// StubExiftoolScript speaks just enough of the exiftool stay-open
// protocol to answer each command batch with an empty metadata
// document, so reads resolve to "no metadata" instead of hanging.
const StubExiftoolScript = `#!/bin/sh
while IFS= read -r line; do
  if [ "$line" = "-execute" ]; then
    printf '[{"SourceFile":"stub"}]\n{ready}\n'
  fi
done
`

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, exiftool is stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"exiftool"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte(StubExiftoolScript)
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
