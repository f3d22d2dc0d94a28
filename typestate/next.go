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

// Next is the result of handling an event: either no transition (the zero
// value, see Stay) or the successor produced by Transition. Its hooks have
// already run by the time a Next exists, so consuming it is only a matter of
// storing the successor.
type Next[T any] struct {
	state State[T]
}

// Stay returns a Next that keeps the current state.
func Stay[T any]() Next[T] {
	return Next[T]{}
}

// State returns the successor and true, or nil and false when no transition
// happened. Machine consumes Next on its own; State is for callers driving
// states without a Machine.
func (n Next[T]) State() (State[T], bool) {
	return n.state, n.state != nil
}
