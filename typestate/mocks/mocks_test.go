package mocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-typestate/typestate"
)

type counter struct {
	n int
}

func TestState(t *testing.T) {
	t.Parallel()

	t.Run("stubbed stay", func(t *testing.T) {
		t.Parallel()

		s := NewState[counter]("idle")
		s.On("OnEnter", mock.Anything).Once()
		s.On("OnEvent", mock.Anything).Return(typestate.Stay[counter]()).Twice()

		m, err := typestate.New[counter](s, counter{})
		require.NoError(t, err)
		m.SendEvent()
		m.SendEvent()

		assert.Same(t, s, m.Current())
		s.AssertExpectations(t)
		s.AssertNotCalled(t, "OnExit", mock.Anything)
	})

	t.Run("lazy transition", func(t *testing.T) {
		t.Parallel()

		a := NewState[counter]("a")
		b := NewState[counter]("b")
		a.On("OnEnter", mock.Anything).Once()
		a.On("OnExit", mock.Anything).Once()
		b.On("OnEnter", mock.Anything).Once()
		a.On("OnEvent", mock.Anything).Return(EventFunc[counter](func(c *counter) typestate.Next[counter] {
			c.n++
			return typestate.Transition[Edge[counter]](a, b, c)
		})).Once()

		m, err := typestate.New[counter](a, counter{})
		require.NoError(t, err)
		m.SendEvent()

		assert.Same(t, b, m.Current())
		assert.Equal(t, 1, m.Shared().n)
		a.AssertExpectations(t)
		b.AssertExpectations(t)
	})

	t.Run("String returns the name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "idle", NewState[counter]("idle").String())
	})
}
