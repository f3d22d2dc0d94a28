package eventloop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-typestate/typestate"
)

// tally is the shared context of the test machine.
type tally struct {
	events int
}

type ping struct{ typestate.Hooks[tally] }

func (ping) String() string { return "ping" }

func (p ping) OnEvent(t *tally) typestate.Next[tally] {
	t.events++
	return typestate.Transition[pingToPong](p, pong{}, t)
}

type pong struct{ typestate.Hooks[tally] }

func (pong) String() string { return "pong" }

func (p pong) OnEvent(t *tally) typestate.Next[tally] {
	t.events++
	return typestate.Transition[pongToPing](p, ping{}, t)
}

type (
	pingToPong struct{ typestate.Allow[ping, pong] }
	pongToPing struct{ typestate.Allow[pong, ping] }
)

func newMachine(t *testing.T) *typestate.Machine[tally] {
	t.Helper()
	m, err := typestate.New[tally](ping{}, tally{})
	require.NoError(t, err)
	return m
}

// bufferedEvents returns a channel already holding n events.
func bufferedEvents(n int) chan struct{} {
	ch := make(chan struct{}, n)
	for range n {
		ch <- struct{}{}
	}
	return ch
}

// MockStateMachine is a mock of finitestate.Machine.
type MockStateMachine struct {
	mock.Mock
}

func (m *MockStateMachine) Transition(state string) error {
	args := m.Called(state)
	return args.Error(0)
}

func (m *MockStateMachine) TransitionBool(state string) bool {
	args := m.Called(state)
	return args.Bool(0)
}

func (m *MockStateMachine) SetState(state string) error {
	args := m.Called(state)
	return args.Error(0)
}

func (m *MockStateMachine) GetState() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockStateMachine) GetStateChan(ctx context.Context) <-chan string {
	args := m.Called(ctx)
	return args.Get(0).(<-chan string)
}
