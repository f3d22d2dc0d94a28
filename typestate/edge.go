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

// Allow marks a legal transition from the From state type to the To state
// type. It is embedded in a named edge type, which is what Transition
// accepts:
//
//	type RunToResize struct{ typestate.Allow[Run, Resize] }
//
// Allow is directed; Allow[Run, Resize] does not permit Resize -> Run.
type Allow[From, To any] struct{}

// Edge is satisfied only by struct types made of a single embedded
// Allow[From, To]. Allow itself has an empty underlying struct and does not
// qualify, so every edge has to be declared as its own type.
type Edge[From, To any] interface {
	~struct{ Allow[From, To] }
}
