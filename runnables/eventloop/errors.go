package eventloop

import "errors"

var (
	// ErrNilMachine is returned when the runner is created without a machine
	ErrNilMachine = errors.New("state machine is nil")

	// ErrNoEventSource is returned when neither an interval nor an event channel is configured
	ErrNoEventSource = errors.New("no event source configured")

	// ErrInvalidConfig is returned when the loop configuration is invalid
	ErrInvalidConfig = errors.New("invalid event loop configuration")

	// ErrAlreadyRunning is returned when Run is called on a runner that was already started
	ErrAlreadyRunning = errors.New("event loop already started")

	// ErrMetrics is returned when the metrics collectors cannot be registered
	ErrMetrics = errors.New("unable to register metrics")
)
