package runner

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/gofrs/flock"
)

// Lock guards a run against a concurrent one on the same machine.
type Lock struct {
	path  string
	flock *flock.Flock
}

// AcquireLock takes the lock file at path without blocking. A lock held by
// another process is ErrLocked.
func AcquireLock(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create lock directory for %s", path).
			WithDetail("path", path)
	}

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLocked, "cannot acquire lock %s", path).
			WithDetail("path", path)
	}
	if !locked {
		return nil, errors.Newf(errors.ErrLocked, "another potbin run holds %s", path).
			WithDetail("path", path)
	}
	return &Lock{path: path, flock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks and removes the lock file.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot release lock %s", l.path)
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot remove lock %s", l.path)
	}
	return nil
}
