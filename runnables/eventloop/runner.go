// Package eventloop runs a typestate.Machine as a long-lived service. The
// machine itself never waits on anything; the Runner owns the event source
// (a ticker or a channel), delivers each event with SendEvent from its own
// goroutine, and reports its lifecycle through the usual Run/Stop/GetState
// contract so it can be hosted by a supervisor.
package eventloop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/robbyt/go-typestate/internal/finitestate"
	"github.com/robbyt/go-typestate/typestate"
)

const defaultName = "typestate"

// Runner delivers events to a typestate.Machine.
type Runner[T any] struct {
	name       string
	config     Config
	events     <-chan struct{}
	registerer prometheus.Registerer

	// mu serializes access to machine between Run and Inspect
	mu      sync.Mutex
	machine *typestate.Machine[T]

	fsm     finitestate.Machine
	metrics *metrics

	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger
}

// NewRunner creates a Runner for machine. An event source is required: use
// WithInterval, WithEvents, or both.
func NewRunner[T any](machine *typestate.Machine[T], opts ...Option[T]) (*Runner[T], error) {
	if machine == nil {
		return nil, ErrNilMachine
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner[T]{
		name:    defaultName,
		machine: machine,
		ctx:     ctx,
		cancel:  cancel,
		logger:  slog.Default().WithGroup("eventloop.Runner"),
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.config.validate(); err != nil {
		return nil, err
	}
	if r.config.Interval == 0 && r.events == nil {
		return nil, fmt.Errorf("%w: use WithInterval or WithEvents", ErrNoEventSource)
	}

	machineFSM, err := finitestate.New(r.logger.WithGroup("fsm").Handler())
	if err != nil {
		return nil, fmt.Errorf("unable to create fsm: %w", err)
	}
	r.fsm = machineFSM

	r.metrics = newMetrics(r.name)
	if err := r.metrics.register(r.registerer); err != nil {
		return nil, err
	}

	return r, nil
}

// String returns a string representation of the Runner instance.
func (r *Runner[T]) String() string {
	return fmt.Sprintf("eventloop.Runner{name: %s, %s}", r.name, r.config)
}

// Run delivers events until ctx is canceled, Stop is called, the event
// channel is closed, or MaxEvents is reached. A Runner can only be run once.
func (r *Runner[T]) Run(ctx context.Context) error {
	logger := r.logger.WithGroup("Run")

	if err := r.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("%w: %w", ErrAlreadyRunning, err)
	}

	var ticks <-chan time.Time
	if r.config.Interval > 0 {
		ticker := time.NewTicker(r.config.Interval)
		defer ticker.Stop()
		ticks = ticker.C
	}
	events := r.events

	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		r.setStateError()
		return fmt.Errorf("failed to transition to Running state: %w", err)
	}
	logger.Info("Starting event loop", "name", r.name, "config", r.config)

	delivered := 0
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Parent context canceled")
			return r.shutdown()
		case <-r.ctx.Done():
			logger.Debug("Runner stopped")
			return r.shutdown()
		case <-ticks:
		case _, ok := <-events:
			if !ok {
				logger.Debug("Event source closed")
				return r.shutdown()
			}
		}

		r.dispatch()
		delivered++
		if r.config.MaxEvents > 0 && delivered >= r.config.MaxEvents {
			logger.Debug("Event limit reached", "events", delivered)
			return r.shutdown()
		}
	}
}

// Stop signals the loop to exit. It does not wait for Run to return.
func (r *Runner[T]) Stop() {
	r.logger.WithGroup("Stop").Debug("Stopping event loop", "name", r.name)
	r.cancel()
}

// Inspect calls fn with the current state and a copy of the shared context.
// It blocks while an event is being delivered.
func (r *Runner[T]) Inspect(fn func(current typestate.State[T], shared T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.machine.Current(), r.machine.Shared())
}

// dispatch delivers one event to the machine.
func (r *Runner[T]) dispatch() {
	r.mu.Lock()
	defer r.mu.Unlock()

	from := stateName(r.machine.Current())
	transitioned := r.machine.SendEvent()
	to := stateName(r.machine.Current())

	r.metrics.observe(from, to, transitioned)
	if transitioned {
		r.logger.Debug("Transitioned", "from", from, "to", to)
	}
}

// shutdown moves the lifecycle to Stopped once the loop has exited.
func (r *Runner[T]) shutdown() error {
	if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
		r.setStateError()
		return fmt.Errorf("failed to transition to Stopping state: %w", err)
	}
	r.cancel()
	if err := r.fsm.Transition(finitestate.StatusStopped); err != nil {
		r.setStateError()
		return fmt.Errorf("failed to transition to Stopped state: %w", err)
	}
	r.logger.Info("Event loop stopped", "name", r.name)
	return nil
}

// stateName is the label used for a state in logs and metrics.
func stateName(s any) string {
	if named, ok := s.(fmt.Stringer); ok {
		return named.String()
	}
	return fmt.Sprintf("%T", s)
}
