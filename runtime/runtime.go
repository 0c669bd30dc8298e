/*
Package runtime implements the runtime environment of the interpreter,
consisting of the fail state, the stack of declaration levels, predefined
exceptions, the diagnostics sink, options and heap statistics.

There is exactly one Runtime per program. It is threaded explicitly through
declaration, matching and execution; nothing in this module is global.

Fail State

Exceptions do not unwind the Go stack. Raising an exception sets a sticky
fail state (flag, exception value and the expression which raised it), which
every loop of the executor polls after each sub-evaluation. Cleanup code has
to run correctly even when the fail state is set; code which must not be
short-circuited saves and clears the fail state, and restores it afterwards.

Declaration Levels

Declaration levels are scope frames. Levels are pushed and popped for
lexical nesting, and grown and shrunk for speculative levels which exist
only during the evaluation of a declaration's name.

Interrupts

The only asynchronous element is an interrupt request, which may be set from
any goroutine (e.g. a signal handler). It is polled between the evaluation of
the arguments of a primitive action and its invocation.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runtime

import (
	"sync/atomic"

	"github.com/npillmayer/schuko/tracing"

	"github.com/ThomasMertes/seed7-sub008/object"
)

// tracer traces with key 'seed7.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("seed7.runtime")
}

// InterruptAction tells the executor how to continue after an interrupt.
type InterruptAction int

// Results of interrupt handlers.
const (
	Terminate InterruptAction = iota // raise ACTION_ERROR
	Continue                         // proceed with the primitive call
)

// Runtime is a type implementing a runtime environment for an interpreter.
type Runtime struct {
	Options       Options
	Levels        *LevelStack   // declaration levels
	Reporter      Reporter      // sink for diagnostics
	Stats         *Stats        // heap statistics
	Prog          *object.Object // PROGOBJECT of the running program
	ExceptionType *object.Type
	Exceptions    map[string]*object.Object
	OnInterrupt   func(rt *Runtime) InterruptAction
	OnRelease     func(obj *object.Object) // called for every freed object header
	UData         interface{}              // extension point

	fail      FailState
	interrupt atomic.Bool
}

// Names of the predefined exceptions.
var ExceptionNames = []string{
	"MEMORY_ERROR", "NUMERIC_ERROR", "OVERFLOW_ERROR", "RANGE_ERROR",
	"INDEX_ERROR", "FILE_ERROR", "DATABASE_ERROR", "GRAPHIC_ERROR",
	"ACTION_ERROR", "CREATE_ERROR", "DESTROY_ERROR", "COPY_ERROR", "IN_ERROR",
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized
// with a global declaration level and the predefined exceptions.
func NewRuntimeEnvironment(opts Options) *Runtime {
	rt := &Runtime{
		Options:    opts,
		Levels:     NewLevelStack(),
		Reporter:   NewCollector(),
		Stats:      NewStats(),
		Exceptions: make(map[string]*object.Object),
	}
	rt.Levels.Push("globals")
	rt.ExceptionType = object.NewType("EXCEPTION", nil)
	for i, name := range ExceptionNames {
		exc := object.NewWithValue(object.EnumLiteralObject, rt.ExceptionType, int64(i))
		exc.SetEntity(object.NewEntity(name))
		rt.Exceptions[name] = exc
	}
	return rt
}

// Exception returns the predefined exception of a given name, or nil.
func (rt *Runtime) Exception(name string) *object.Object {
	return rt.Exceptions[name]
}

// --- Interrupts ------------------------------------------------------------

// RequestInterrupt may be called from any goroutine.
func (rt *Runtime) RequestInterrupt() {
	rt.interrupt.Store(true)
}

// InterruptPending is true if an interrupt has been requested and not yet
// handled.
func (rt *Runtime) InterruptPending() bool {
	return rt.interrupt.Load()
}

// HandleInterrupt consumes a pending interrupt and calls the interrupt
// handler. Without a handler, or if the handler decides to terminate,
// ACTION_ERROR is raised. HandleInterrupt returns false if execution must
// not continue.
func (rt *Runtime) HandleInterrupt() bool {
	if !rt.interrupt.CompareAndSwap(true, false) {
		return true
	}
	tracer().Infof("interrupt requested")
	action := Terminate
	if rt.OnInterrupt != nil {
		action = rt.OnInterrupt(rt)
	}
	if action == Terminate {
		rt.RaiseException("ACTION_ERROR")
		return false
	}
	return true
}
