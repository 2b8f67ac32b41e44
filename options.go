package invidx

import (
	"runtime"

	"github.com/madekit/invidx/codec"
)

// Options configures the facade operations.
type Options struct {
	// Logger receives structured operation logs. Defaults to NoopLogger.
	Logger *Logger
	// Codec is the wire format for SaveIndex/LoadIndex.
	// Defaults to codec.Default (binary).
	Codec codec.Codec
	// Workers bounds the tokenization goroutines used by BuildIndex.
	// Defaults to GOMAXPROCS.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the operation logger.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithCodec sets the persistence codec.
func WithCodec(c codec.Codec) Option {
	return func(o *Options) {
		o.Codec = c
	}
}

// WithWorkers bounds build concurrency.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

func applyOptions(opts []Option) Options {
	o := Options{
		Logger:  NoopLogger(),
		Codec:   codec.Default,
		Workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = NoopLogger()
	}
	if o.Codec == nil {
		o.Codec = codec.Default
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}
