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

// State is one node of a state graph over the shared context T.
type State[T any] interface {
	// OnEnter is called once when the state becomes current. It must not
	// transition.
	OnEnter(shared *T)

	// OnEvent handles one event. It returns Stay to remain in the current
	// state, or the result of Transition to move to a successor.
	OnEvent(shared *T) Next[T]

	// OnExit is called once when the state stops being current, right
	// before the successor's OnEnter.
	OnExit(shared *T)
}

// Hooks provides no-op OnEnter and OnExit methods. Embed it in states that
// only care about events.
type Hooks[T any] struct{}

// OnEnter does nothing.
func (Hooks[T]) OnEnter(*T) {}

// OnExit does nothing.
func (Hooks[T]) OnExit(*T) {}
