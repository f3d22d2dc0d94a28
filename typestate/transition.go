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

// Transition moves from the current state to a freshly built successor. It
// runs from.OnExit, then to.OnEnter, and returns a Next carrying to.
//
// The edge type E is named explicitly and the rest is inferred:
//
//	return typestate.Transition[RunToExit](r, Exit{}, shared)
//
// The call compiles only when E is a declared edge for exactly (From, To).
func Transition[E Edge[From, To], T any, From State[T], To State[T]](
	from From,
	to To,
	shared *T,
) Next[T] {
	from.OnExit(shared)
	to.OnEnter(shared)
	return Next[T]{state: to}
}
