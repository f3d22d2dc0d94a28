/*
Copyright 2024 Robert Terhaar <robbyt@robbyt.net>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package typestate

// Machine owns the current state and the shared context of one state
// machine. It is not safe for concurrent use.
type Machine[T any] struct {
	current State[T]
	shared  T
}

// New creates a Machine and runs the initial state's OnEnter before
// returning.
func New[T any](initial State[T], shared T) (*Machine[T], error) {
	if initial == nil {
		return nil, ErrNilState
	}

	m := &Machine[T]{
		current: initial,
		shared:  shared,
	}
	m.current.OnEnter(&m.shared)
	return m, nil
}

// SendEvent delivers one event to the current state. If the state
// transitioned, its successor becomes current and SendEvent reports true;
// otherwise nothing changes.
func (m *Machine[T]) SendEvent() bool {
	next := m.current.OnEvent(&m.shared)
	successor, ok := next.State()
	if ok {
		m.current = successor
	}
	return ok
}

// Current returns the current state.
func (m *Machine[T]) Current() State[T] {
	return m.current
}

// Shared returns a copy of the shared context.
func (m *Machine[T]) Shared() T {
	return m.shared
}
