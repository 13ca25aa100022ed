package sizemap

import (
	"io"
	"log/slog"
)

// Options is the configuration of a SizeMap.
type Options struct {
	// Profile is the page-size model to build for.
	Profile Profile

	// Source optionally supplies a table that replaces the compiled-in one.
	// It is applied only if the whole table is valid.
	Source TableSource

	// Logger receives override decisions. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions builds the model selected at build time and honors the
// SIZEMAP_SIZE_CLASSES environment variable.
var DefaultOptions = Options{
	Profile: DefaultProfile,
	Source:  EnvSource(EnvName),
}

// Option modifies Options.
type Option func(*Options)

// WithProfile selects the page-size model.
func WithProfile(p Profile) Option {
	return func(o *Options) { o.Profile = p }
}

// WithSource sets the override source. Nil disables overrides.
func WithSource(src TableSource) Option {
	return func(o *Options) { o.Source = src }
}

// WithEnv reads overrides from the named environment variable.
func WithEnv(name string) Option {
	return WithSource(EnvSource(name))
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func newOptions(opts ...Option) Options {
	options := DefaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

func checkOptions(options Options) error {
	if _, ok := ResolveChecked(options.Profile); !ok {
		return ErrUnknownProfile
	}
	return nil
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return discardLogger
	}
	return o.Logger
}
