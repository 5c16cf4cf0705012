//go:build unix

package instance

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "keyremap.lock")

	first, err := AcquireAt(path)
	require.NoError(t, err)
	assert.Equal(t, path, first.Path())

	// flock locks belong to the open file description, so a second open in
	// the same process conflicts too.
	_, err = AcquireAt(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyRunning))

	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	again, err := AcquireAt(path)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestReleaseNil(t *testing.T) {
	var l *Lock
	assert.NoError(t, l.Release())
}
