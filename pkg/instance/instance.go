// Package instance keeps a second remapper from grabbing the same devices.
package instance

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Lock is a held single-instance lock.
type Lock struct {
	path    string
	release func() error
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.release == nil {
		return nil
	}
	err := l.release()
	l.release = nil
	return err
}

// Acquire takes the lock called name in the user's runtime directory.
func Acquire(name string) (*Lock, error) {
	return AcquireAt(filepath.Join(xdg.RuntimeDir, name+".lock"))
}
