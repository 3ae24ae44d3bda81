// Package runlock prevents two runs from mutating the same tree at
// once.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock is a held run lock.
type Lock struct {
	flock *flock.Flock
}

// Acquire takes the lock file without blocking. A lock held elsewhere
// reports an error naming the path so the user can find the other run.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}
	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring run lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("another run holds the lock at %s", path)
	}
	return &Lock{flock: fl}, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	return l.flock.Unlock()
}
