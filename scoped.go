package mktemp

// WithTempFile creates a temporary file and passes its path to fn. The file
// is removed on every exit path, including when fn returns an error or
// panics. A cleanup failure is returned only when fn itself succeeded.
func WithTempFile(fn func(path string) error, opts ...Option) error {
	temp, err := NewFile(opts...)
	if err != nil {
		return err
	}

	return runScoped(temp, fn)
}

// WithTempDir is the directory counterpart of WithTempFile. The directory
// and everything created inside it are removed when fn returns.
func WithTempDir(fn func(path string) error, opts ...Option) error {
	temp, err := NewDir(opts...)
	if err != nil {
		return err
	}

	return runScoped(temp, fn)
}

func runScoped(temp *Temp, fn func(path string) error) (err error) {
	defer func() {
		if closeErr := temp.Close(); err == nil {
			err = closeErr
		}
	}()

	return fn(temp.Path())
}
