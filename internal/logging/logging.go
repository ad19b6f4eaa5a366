// Package logging constructs the loggers used by ratcalc.
package logging

import (
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

type (
	// Option configures New.
	Option func(c *loggerConfig)

	loggerConfig struct {
		timeField string
	}
)

// WithTimeField adds the current time to each event, under the given key.
// An empty key disables the time field (the default).
func WithTimeField(field string) Option {
	return func(c *loggerConfig) {
		c.timeField = field
	}
}

// New returns a logger writing JSON lines to w, filtering out events less
// severe than level. The result is generified, as it is passed to library
// code, and nil may be used in its place to disable logging.
func New(w io.Writer, level logiface.Level, options ...Option) *logiface.Logger[logiface.Event] {
	var c loggerConfig
	for _, o := range options {
		o(&c)
	}
	return stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(w),
			stumpy.WithTimeField(c.timeField),
		),
		stumpy.L.WithLevel(level),
	).Logger()
}
