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

/*
Package typestate builds finite state machines whose legal transitions are
checked by the Go compiler.

Every state implements [State] over a shared context type T. A state hands
control to a successor only through [Transition], and Transition only
type-checks when an edge type for the (From, To) pair has been declared:

	type Run struct{ typestate.Hooks[App] }
	type Exit struct{ typestate.Hooks[App] }

	// Run may move to Exit. Exit -> Run needs its own declaration.
	type RunToExit struct{ typestate.Allow[Run, Exit] }

	func (r Run) OnEvent(app *App) typestate.Next[App] {
		app.Count++
		return typestate.Transition[RunToExit](r, Exit{}, app)
	}

Writing typestate.Transition[RunToExit](Exit{}, Run{}, app), or naming an
edge that was never declared, is a build failure rather than a runtime
error.

A [Machine] owns the current state and the shared context. It runs the
initial state's OnEnter when it is created and, on every [Machine.SendEvent],
installs whatever successor the current state's OnEvent produced. The
package does no I/O, starts no goroutines and holds no locks; a Machine
must be driven from one goroutine at a time.
*/
package typestate
