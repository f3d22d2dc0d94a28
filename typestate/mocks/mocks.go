/*
Package mocks provides a testify-backed implementation of typestate.State for
tests that need to count or stub lifecycle hooks.

Example:

	a := mocks.NewState[App]("a")
	b := mocks.NewState[App]("b")
	a.On("OnEnter", mock.Anything).Once()
	a.On("OnExit", mock.Anything).Once()
	b.On("OnEnter", mock.Anything).Once()
	a.On("OnEvent", mock.Anything).Return(func(app *App) typestate.Next[App] {
		return typestate.Transition[mocks.Edge[App]](a, b, app)
	})

	m, _ := typestate.New[App](a, App{})
	m.SendEvent()
	a.AssertExpectations(t)
*/
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/robbyt/go-typestate/typestate"
)

// EventFunc computes the result of OnEvent when the call happens. Return it
// from an OnEvent expectation to build a transition lazily.
type EventFunc[T any] func(shared *T) typestate.Next[T]

// State is a mock implementation of typestate.State.
type State[T any] struct {
	mock.Mock
	Name string
}

// Edge allows any mock State to transition to any other mock State over the
// same shared context.
type Edge[T any] struct {
	typestate.Allow[*State[T], *State[T]]
}

// NewState creates a mock State identified by name in failure output.
func NewState[T any](name string) *State[T] {
	return &State[T]{Name: name}
}

// OnEnter records the call.
func (m *State[T]) OnEnter(shared *T) {
	m.Called(shared)
}

// OnEvent records the call and returns the stubbed typestate.Next. The stub
// may be a Next value, an EventFunc, or a plain func(*T) typestate.Next[T].
func (m *State[T]) OnEvent(shared *T) typestate.Next[T] {
	args := m.Called(shared)
	switch v := args.Get(0).(type) {
	case typestate.Next[T]:
		return v
	case EventFunc[T]:
		return v(shared)
	case func(*T) typestate.Next[T]:
		return v(shared)
	default:
		return typestate.Stay[T]()
	}
}

// OnExit records the call.
func (m *State[T]) OnExit(shared *T) {
	m.Called(shared)
}

// String returns the mock's name.
func (m *State[T]) String() string {
	return m.Name
}

var _ typestate.State[struct{}] = (*State[struct{}])(nil)
