package eventloop

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option represents a functional option for configuring a Runner
type Option[T any] func(*Runner[T])

// WithLogHandler sets a custom slog handler for the Runner instance.
func WithLogHandler[T any](handler slog.Handler) Option[T] {
	return func(r *Runner[T]) {
		if handler != nil {
			r.logger = slog.New(handler.WithGroup("eventloop.Runner"))
		}
	}
}

// WithContext sets a parent context for the Runner instance. Canceling it
// stops the loop just like Stop.
func WithContext[T any](ctx context.Context) Option[T] {
	return func(r *Runner[T]) {
		if ctx != nil {
			r.ctx, r.cancel = context.WithCancel(ctx)
		}
	}
}

// WithName sets the name used in logs and as the "machine" metrics label.
func WithName[T any](name string) Option[T] {
	return func(r *Runner[T]) {
		if name != "" {
			r.name = name
		}
	}
}

// WithInterval generates one event per interval.
func WithInterval[T any](interval time.Duration) Option[T] {
	return func(r *Runner[T]) {
		r.config.Interval = interval
	}
}

// WithEvents delivers one event per value received on events. Closing the
// channel stops the loop.
func WithEvents[T any](events <-chan struct{}) Option[T] {
	return func(r *Runner[T]) {
		r.events = events
	}
}

// WithMaxEvents makes Run return after n events.
func WithMaxEvents[T any](n int) Option[T] {
	return func(r *Runner[T]) {
		r.config.MaxEvents = n
	}
}

// WithConfig replaces the interval and max events settings at once.
func WithConfig[T any](cfg Config) Option[T] {
	return func(r *Runner[T]) {
		r.config = cfg
	}
}

// WithRegisterer registers the runner's metrics on reg instead of leaving
// them unregistered.
func WithRegisterer[T any](reg prometheus.Registerer) Option[T] {
	return func(r *Runner[T]) {
		r.registerer = reg
	}
}
