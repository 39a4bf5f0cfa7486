package mktemp

import (
	"github.com/op/go-logging"
	"github.com/spf13/afero"

	"github.com/shini4i/mktemp/internal/naming"
	"github.com/shini4i/mktemp/internal/ports"
)

var log = logging.MustGetLogger("mktemp")

type options struct {
	fs     afero.Fs
	namer  ports.Namer
	logger *logging.Logger
	parent string
	prefix string
}

// Option mutates construction parameters for a temporary file or directory.
type Option func(*options)

// newOptions applies the provided options on top of the defaults and
// resolves the parent directory when none was requested.
func newOptions(opts []Option) options {
	o := options{
		fs:     afero.NewOsFs(),
		namer:  naming.UUID{},
		logger: log,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.parent == "" {
		o.parent = afero.GetTempDir(o.fs, "")
	}

	return o
}

// WithParent overrides the system temp directory as the parent for the new
// entry. The directory must already exist.
func WithParent(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.parent = dir
		}
	}
}

// WithPrefix prepends a fixed prefix to the generated name.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithFs overrides the filesystem the entry is created on. The same
// filesystem is used for cleanup.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithNamer overrides the unique name generator.
func WithNamer(namer ports.Namer) Option {
	return func(o *options) {
		if namer != nil {
			o.namer = namer
		}
	}
}

// WithLogger overrides the logger used for cleanup diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
