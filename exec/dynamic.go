package exec

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/ThomasMertes/seed7-sub008/memory"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// ExecDynamic executes a call of an interface function. The actual
// parameters are evaluated, interface values are replaced by the structs
// they refer to, and the call site is matched again against the concrete
// types, without probing interfaces. The result of the new match is
// executed.
//
// A re-match yielding the dynamic callee again would recurse forever and
// raises ACTION_ERROR, as does nesting dynamic calls deeper than
// Options.MaxDynamicDepth.
func (ex *Executor) ExecDynamic(call *object.Object) *object.Object {
	rt := ex.rt
	callee, args := call.List().Obj, call.List().Next
	if max := rt.Options.MaxDynamicDepth; max > 0 && ex.depth >= max {
		return ex.illegal(call, fmt.Sprintf("dynamic dispatch nested deeper than %d", max))
	}
	ex.depth++
	defer func() { ex.depth-- }()
	actuals, temps := ex.evalArgList(args)
	if rt.Failing() {
		rt.SetFailExpr(call)
		ex.releaseTemps(actuals, temps, nil)
		return nil
	}
	for _, i := range temps.AppendTo(nil) {
		actuals.Nth(i).ParkDynamic()
	}
	result := ex.dispatch(call, callee, actuals)
	for _, i := range temps.AppendTo(nil) {
		a := actuals.Nth(i).UnparkDynamic()
		if a != result && a.IsTemp() {
			memory.DumpAnyTemp(rt, a)
		}
	}
	return result
}

func (ex *Executor) dispatch(call, callee *object.Object, actuals *object.List) *object.Object {
	ent := callee.Entity()
	if ent == nil || ent.FParams == nil || ex.matcher == nil {
		return ex.illegal(call, fmt.Sprintf("%v cannot be dispatched", callee))
	}
	var elems []*object.Object
	a := actuals
	for p := ent.FParams; p != nil; p = p.Next {
		if p.Obj != nil && p.Obj.Category() == object.SymbolObject {
			elems = append(elems, p.Obj)
			continue
		}
		if a == nil {
			return ex.illegal(call, "too few parameters for dynamic call")
		}
		actual := a.Obj
		if actual == nil {
			return ex.illegal(call, "parameter of dynamic call has no value")
		}
		if actual.Category() == object.InterfaceObject && actual.Obj() != nil {
			actual = actual.Obj()
		}
		elems = append(elems, actual)
		a = a.Next
	}
	site := object.New(object.ExprObject, nil)
	site.SetList(object.NewList(elems...))
	resolved, err := ex.matcher.MatchExpression(site)
	if err != nil || resolved == nil {
		tracer().Infof("dynamic call %v: %v", call, err)
		rt := ex.rt
		rt.RaiseException("ACTION_ERROR")
		rt.SetFailExpr(call)
		return nil
	}
	if resolved == callee || (resolved.Category().IsCall() && resolved.List().Obj == callee) {
		return ex.illegal(call, fmt.Sprintf("%v dispatches to itself", callee))
	}
	tracer().Debugf("dynamic call %v dispatches to %v", call, resolved)
	if resolved.Category().IsCall() {
		return ex.ExecCall(resolved)
	}
	return ex.Evaluate(resolved)
}

// --- object.Evaluator ------------------------------------------------------

// Raise sets the fail state, if it is not set already.
func (ex *Executor) Raise(exception *object.Object) {
	ex.rt.Raise(exception, nil)
}

// RaiseException raises a predefined exception by name.
func (ex *Executor) RaiseException(name string) {
	ex.rt.RaiseException(name)
}

// Failing reports the fail flag.
func (ex *Executor) Failing() bool {
	return ex.rt.Failing()
}

// FailValue is the exception currently propagating, or nil.
func (ex *Executor) FailValue() *object.Object {
	return ex.rt.FailValue()
}

// ResetFail clears the fail state.
func (ex *Executor) ResetFail() {
	ex.rt.ResetFail()
}

// BuildTemp creates a TEMP object.
func (ex *Executor) BuildTemp(cat object.Category, typ *object.Type, value interface{}) *object.Object {
	return memory.BuildTemp(ex.rt, cat, typ, value)
}

// Release releases an object handed out as TEMP.
func (ex *Executor) Release(obj *object.Object) {
	if obj != nil && obj.IsTemp() {
		memory.DumpAnyTemp(ex.rt, obj)
	}
}

// Assign copies the value of src into the variable dest.
func (ex *Executor) Assign(dest, src *object.Object) {
	memory.AssignValue(ex.rt, dest, src)
}

// Report forwards a diagnostic to the runtime.
func (ex *Executor) Report(kind runtime.ErrorKind, msg string, objs ...*object.Object) {
	ex.rt.Report(runtime.NewDiagnostic(kind, msg, objs...))
}
