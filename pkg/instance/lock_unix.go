//go:build unix

package instance

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"golang.org/x/sys/unix"
)

// AcquireAt takes an exclusive, non-blocking flock on path. The lock is
// released by the kernel if the process dies.
func AcquireAt(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot create %s", filepath.Dir(path))
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot open lock file %s", path)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if err == unix.EWOULDBLOCK {
			return nil, errors.New(errors.ErrAlreadyRunning, "another keyremap instance is running").
				WithDetail("lock", path)
		}
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot lock %s", path)
	}

	_ = f.Truncate(0)
	_, _ = f.WriteString(strconv.Itoa(os.Getpid()) + "\n")

	return &Lock{
		path: path,
		release: func() error {
			_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
			return f.Close()
		},
	}, nil
}
