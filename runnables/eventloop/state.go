package eventloop

import (
	"context"

	"github.com/robbyt/go-typestate/internal/finitestate"
)

// GetState returns the lifecycle state of the event loop.
func (r *Runner[T]) GetState() string {
	return r.fsm.GetState()
}

// GetStateChan returns a channel that emits the lifecycle state whenever it
// changes. The channel is closed when ctx is canceled.
func (r *Runner[T]) GetStateChan(ctx context.Context) <-chan string {
	return r.fsm.GetStateChan(ctx)
}

// IsRunning returns true if the event loop is delivering events.
func (r *Runner[T]) IsRunning() bool {
	return r.fsm.GetState() == finitestate.StatusRunning
}

// setStateError marks the FSM as being in the error state.
func (r *Runner[T]) setStateError() {
	if r.fsm.TransitionBool(finitestate.StatusError) {
		return
	}
	if err := r.fsm.SetState(finitestate.StatusError); err != nil {
		r.logger.Error("Failed to set Error state", "error", err)
	}
}
