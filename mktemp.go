// Package mktemp creates uniquely named temporary files and directories
// whose lifetime is bound to an owning handle. Closing the handle removes
// the underlying filesystem entry, so the usual pattern is:
//
//	t, err := mktemp.NewDir(mktemp.WithPrefix("job-"))
//	if err != nil {
//		return err
//	}
//	defer t.Close()
//
// Cleanup happens exactly once, tolerates an already removed path, and
// removes directories recursively. Release transfers ownership of the
// entry out of the handle, suppressing cleanup.
package mktemp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/op/go-logging"
	"github.com/spf13/afero"
)

// maxAttempts bounds how many generated names are tried before giving up
// on a colliding parent directory. Applies to files and directories alike.
const maxAttempts = 10

// Temp owns a temporary file or directory. A Temp must have a single owner;
// do not copy it. Ownership is transferred with Release, never by
// duplicating the handle.
type Temp struct {
	fs       afero.Fs
	logger   *logging.Logger
	path     string
	released bool
	closed   bool
}

// NewFile creates an empty temporary file, by default in the system temp
// directory. The file is created exclusively: an existing entry is never
// truncated, the name is regenerated instead.
func NewFile(opts ...Option) (*Temp, error) {
	return create(newOptions(opts), false)
}

// NewDir creates a temporary directory, by default in the system temp
// directory. Only the final path element is created; the parent must exist.
func NewDir(opts ...Option) (*Temp, error) {
	return create(newOptions(opts), true)
}

func create(o options, dir bool) (*Temp, error) {
	info, err := o.fs.Stat(o.parent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: [%s] is not a directory", ErrDirUnavailable, o.parent)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := filepath.Join(o.parent, o.prefix+o.namer.Name())

		if err := materialize(o.fs, candidate, dir); err != nil {
			if os.IsExist(err) {
				o.logger.Debugf("Temp path [%s] is taken, generating a new name", candidate)
				continue
			}
			return nil, fmt.Errorf("%w: %w", ErrCreationFailed, err)
		}

		return &Temp{fs: o.fs, logger: o.logger, path: candidate}, nil
	}

	return nil, fmt.Errorf("%w: %d attempts in [%s]", ErrCollisionExhausted, maxAttempts, o.parent)
}

// materialize creates the entry at path with owner-only permissions,
// failing if the path already exists.
func materialize(fs afero.Fs, path string, dir bool) error {
	if dir {
		return fs.Mkdir(path, 0o700)
	}

	file, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}

	return file.Close()
}

// Path returns the path of the temporary entry. It stays valid for the
// whole life of the handle, including after Release.
func (t *Temp) Path() string {
	return t.path
}

// String implements fmt.Stringer so the handle can be used directly where
// a path string is being formatted.
func (t *Temp) String() string {
	return t.path
}

// Release transfers ownership of the filesystem entry to the caller.
// Close becomes a no-op afterwards. Irreversible and idempotent.
func (t *Temp) Release() {
	t.released = true
}

// Close removes the temporary entry unless it was released. Whatever is
// found at the path decides the removal: directories are removed
// recursively, files individually, and a missing path counts as success.
// Only the first call acts; subsequent calls return nil. Failures are
// logged and returned, never panicked, so Close is safe in a bare defer.
func (t *Temp) Close() error {
	if t.closed || t.released {
		t.closed = true
		return nil
	}
	t.closed = true

	info, err := t.fs.Stat(t.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.logger.Warningf("Could not inspect temp path [%s]: %s", t.path, err)
		return fmt.Errorf("%w: %w", ErrCleanupFailed, err)
	}

	if info.IsDir() {
		err = t.fs.RemoveAll(t.path)
	} else {
		err = t.fs.Remove(t.path)
	}

	if err != nil && !os.IsNotExist(err) {
		t.logger.Warningf("Could not remove temp path [%s]: %s", t.path, err)
		return fmt.Errorf("%w: %w", ErrCleanupFailed, err)
	}

	return nil
}
