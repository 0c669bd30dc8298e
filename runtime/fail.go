package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/ThomasMertes/seed7-sub008/object"
)

// FailState is the sticky exception state of a runtime.
type FailState struct {
	Flag  bool
	Value *object.Object // the exception
	Expr  *object.Object // the expression which raised it, if known
}

// Raise sets the fail state. If an exception is already propagating, the
// first exception wins and Raise does nothing.
func (rt *Runtime) Raise(exception, expr *object.Object) {
	if rt.fail.Flag {
		tracer().Debugf("already failing with %v, ignoring %v", rt.fail.Value, exception)
		return
	}
	if rt.Options.TraceExceptions {
		tracer().Infof("raise %v", exception)
	} else {
		tracer().Debugf("raise %v", exception)
	}
	rt.fail = FailState{Flag: true, Value: exception, Expr: expr}
}

// RaiseException raises a predefined exception by name.
func (rt *Runtime) RaiseException(name string) {
	exc := rt.Exceptions[name]
	if exc == nil {
		tracer().Errorf("unknown exception %s", name)
		exc = rt.Exceptions["ACTION_ERROR"]
	}
	rt.Raise(exc, nil)
}

// SetFailExpr records the raising expression, if none is recorded yet.
func (rt *Runtime) SetFailExpr(expr *object.Object) {
	if rt.fail.Flag && rt.fail.Expr == nil {
		rt.fail.Expr = expr
	}
}

// Failing reports the fail flag.
func (rt *Runtime) Failing() bool {
	return rt.fail.Flag
}

// Fail returns a copy of the fail state.
func (rt *Runtime) Fail() FailState {
	return rt.fail
}

// FailValue returns the propagating exception, or nil.
func (rt *Runtime) FailValue() *object.Object {
	if !rt.fail.Flag {
		return nil
	}
	return rt.fail.Value
}

// ResetFail clears the fail state, i.e. catches the exception.
func (rt *Runtime) ResetFail() {
	rt.fail = FailState{}
}

// SaveFail returns the current fail state and clears it. Used around cleanup
// code which must run to completion.
func (rt *Runtime) SaveFail() FailState {
	saved := rt.fail
	rt.fail = FailState{}
	return saved
}

// RestoreFail re-installs a saved fail state. If the saved state was not
// failing, an exception raised in between stays in effect.
func (rt *Runtime) RestoreFail(saved FailState) {
	if saved.Flag {
		if rt.fail.Flag {
			tracer().Debugf("exception %v during cleanup superseded by %v", rt.fail.Value, saved.Value)
		}
		rt.fail = saved
	}
}
