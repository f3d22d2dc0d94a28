// Package finitestate tracks the lifecycle of long-running components such
// as the event loop. It wraps github.com/robbyt/go-fsm, a runtime string
// state machine; the typed state graphs themselves live in package typestate.
package finitestate

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-fsm"
)

const (
	StatusNew      = fsm.StatusNew
	StatusBooting  = fsm.StatusBooting
	StatusRunning  = fsm.StatusRunning
	StatusStopping = fsm.StatusStopping
	StatusStopped  = fsm.StatusStopped
	StatusError    = fsm.StatusError
	StatusUnknown  = fsm.StatusUnknown
)

// Machine is the subset of go-fsm used by lifecycle-tracked components.
type Machine interface {
	// Transition moves to state, failing if the move is not allowed.
	Transition(state string) error

	// TransitionBool is Transition reporting success as a bool.
	TransitionBool(state string) bool

	// SetState forces state regardless of the allowed transitions.
	SetState(state string) error

	// GetState returns the current lifecycle state.
	GetState() string

	// GetStateChan emits the state whenever it changes. The channel is
	// closed when ctx is canceled.
	GetStateChan(ctx context.Context) <-chan string
}

// New creates a lifecycle machine starting at StatusNew with the standard
// New -> Booting -> Running -> Stopping -> Stopped transitions.
func New(handler slog.Handler) (Machine, error) {
	m, err := fsm.New(handler, StatusNew, fsm.TypicalTransitions)
	if err != nil {
		return nil, err
	}
	return m, nil
}
