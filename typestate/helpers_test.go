package typestate

import "fmt"

// trace is the shared context used by the tests. Every hook appends to
// calls so ordering can be asserted.
type trace struct {
	calls  []string
	events int
}

func (tr *trace) record(format string, args ...any) {
	tr.calls = append(tr.calls, fmt.Sprintf(format, args...))
}

type stateA struct{}

func (stateA) OnEnter(tr *trace) { tr.record("enter-A") }
func (stateA) OnExit(tr *trace)  { tr.record("exit-A") }

func (a stateA) OnEvent(tr *trace) Next[trace] {
	tr.events++
	return Transition[aToB](a, stateB{}, tr)
}

type stateB struct{}

func (stateB) OnEnter(tr *trace) { tr.record("enter-B") }
func (stateB) OnExit(tr *trace)  { tr.record("exit-B") }

func (b stateB) OnEvent(tr *trace) Next[trace] {
	tr.events++
	return Transition[bToA](b, stateA{}, tr)
}

// idle never leaves and relies on the default hooks.
type idle struct {
	Hooks[trace]
}

func (idle) OnEvent(tr *trace) Next[trace] {
	tr.events++
	return Stay[trace]()
}

// idleToA exists so idle can be used as a predecessor in Transition tests.
type idleToA struct{ Allow[idle, stateA] }

type (
	aToB struct{ Allow[stateA, stateB] }
	bToA struct{ Allow[stateB, stateA] }
)
