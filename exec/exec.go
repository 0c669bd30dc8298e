package exec

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"golang.org/x/tools/container/intsets"

	"github.com/ThomasMertes/seed7-sub008/match"
	"github.com/ThomasMertes/seed7-sub008/memory"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// Executor evaluates resolved call trees. It implements object.Evaluator,
// the view primitive actions have of the interpreter.
type Executor struct {
	rt      *runtime.Runtime
	matcher *match.Matcher // re-matches call sites of dynamic dispatch
	depth   int            // nesting of dynamic dispatch
}

var _ object.Evaluator = (*Executor)(nil)

// New creates an executor. m is used to re-match dynamic call sites; it will
// not probe interfaces.
func New(rt *runtime.Runtime, m *match.Matcher) *Executor {
	ex := &Executor{rt: rt}
	if m != nil {
		ex.matcher = m.WithoutInterfaces()
	}
	return ex
}

// Runtime returns the runtime of the executor.
func (ex *Executor) Runtime() *runtime.Runtime {
	return ex.rt
}

// ExecObject evaluates an actual parameter: calls are executed, parameters
// are dereferenced, everything else (including MATCHOBJECTs, which are
// passed by name) is returned as is.
func (ex *Executor) ExecObject(obj *object.Object) *object.Object {
	if obj == nil {
		return nil
	}
	switch obj.Category() {
	case object.CallObject:
		return ex.ExecCall(obj)
	case object.ValueParamObject, object.RefParamObject, object.ResultObject, object.LocalVObject:
		return obj.Obj()
	}
	return obj
}

// ExecCall executes a resolved call, dispatching on the category of the
// callee.
func (ex *Executor) ExecCall(call *object.Object) *object.Object {
	l := call.List()
	if l == nil || l.Obj == nil {
		return ex.illegal(call, "empty call")
	}
	callee, args := l.Obj, l.Next
	switch callee.Category() {
	case object.ActObject:
		if object.IsDynamic(callee) {
			return ex.ExecDynamic(call)
		}
		return ex.ExecAction(callee, args, call)
	case object.BlockObject:
		return ex.ExecLambda(callee, args, call)
	case object.CallObject, object.MatchObject:
		result := ex.ExecCall(callee)
		ex.dropArgs(args)
		return result
	case object.ValueParamObject, object.RefParamObject, object.ResultObject, object.LocalVObject:
		result := ex.Evaluate(callee)
		ex.dropArgs(args)
		return result
	case object.DeclaredObject, object.ForwardObject, object.SymbolObject, object.ExprObject, object.FormParamObject:
		return ex.illegal(call, fmt.Sprintf("%v cannot be called", callee))
	case object.ConstEnumObject, object.VarEnumObject:
		ex.dropArgs(args)
		return callee.Obj()
	}
	ex.dropArgs(args)
	return callee
}

// dropArgs evaluates actual parameters of self-evaluating callees for their
// side effects and releases the results.
func (ex *Executor) dropArgs(args *object.List) {
	for ; args != nil && !ex.rt.Failing(); args = args.Next {
		if v := ex.ExecObject(args.Obj); v != nil && v.IsTemp() {
			memory.DumpAnyTemp(ex.rt, v)
		}
	}
}

func (ex *Executor) illegal(call *object.Object, msg string) *object.Object {
	ex.rt.Report(runtime.NewDiagnostic(runtime.ActIllegal, msg, call))
	ex.rt.RaiseException("ACTION_ERROR")
	ex.rt.SetFailExpr(call)
	return nil
}

// evalArgList evaluates actual parameters left to right, stopping at the
// first failure. The positions of TEMP results are recorded.
func (ex *Executor) evalArgList(args *object.List) (*object.List, *intsets.Sparse) {
	temps := &intsets.Sparse{}
	var evaluated []*object.Object
	for i := 0; args != nil; args, i = args.Next, i+1 {
		v := ex.ExecObject(args.Obj)
		if v != nil && v.IsTemp() {
			temps.Insert(i)
		}
		evaluated = append(evaluated, v)
		if ex.rt.Failing() {
			break
		}
	}
	return object.NewList(evaluated...), temps
}

// releaseTemps releases evaluated parameters which are still TEMP, except
// keep.
func (ex *Executor) releaseTemps(actuals *object.List, temps *intsets.Sparse, keep *object.Object) {
	for _, i := range temps.AppendTo(nil) {
		if v := actuals.Nth(i); v != nil && v != keep && v.IsTemp() {
			memory.DumpAnyTemp(ex.rt, v)
		}
	}
}

// ExecAction calls a primitive action with evaluated parameters. If the
// fail state is set during evaluation of the parameters, the primitive is
// not called. Parameters which are still TEMP after the call are released;
// primitives adopting a parameter into their result clear its TEMP flag.
func (ex *Executor) ExecAction(callee *object.Object, args *object.List, call *object.Object) *object.Object {
	rt := ex.rt
	actuals, temps := ex.evalArgList(args)
	if rt.Failing() {
		rt.SetFailExpr(call)
		ex.releaseTemps(actuals, temps, nil)
		return nil
	}
	if rt.Options.CheckInterrupt && rt.InterruptPending() {
		if !rt.HandleInterrupt() {
			rt.SetFailExpr(call)
			ex.releaseTemps(actuals, temps, nil)
			return nil
		}
	}
	act := callee.Action()
	if act == nil || act.Fn == nil {
		ex.releaseTemps(actuals, temps, nil)
		return ex.illegal(call, fmt.Sprintf("action %v has no implementation", callee))
	}
	if rt.Options.TraceActions {
		tracer().Infof("%s %v", act.Name, actuals)
	}
	result := act.Fn(ex, actuals)
	if rt.Failing() {
		rt.SetFailExpr(call)
		if result != nil && result.IsTemp() && !actuals.Contains(result) {
			memory.DumpAnyTemp(rt, result)
		}
		result = nil
	} else if result != nil && result.Type == nil && callee.Type != nil {
		result.Type = callee.Type.ResultType
	}
	ex.releaseTemps(actuals, temps, result)
	return result
}

// Evaluate evaluates an object in a call-by-name context, e.g. the
// condition of a loop. Calls are executed, actions and blocks are called
// without parameters, and parameters bound to code are evaluated. Other
// objects evaluate to themselves.
func (ex *Executor) Evaluate(obj *object.Object) *object.Object {
	if obj == nil {
		return nil
	}
	switch obj.Category() {
	case object.MatchObject, object.CallObject:
		return ex.ExecCall(obj)
	case object.ActObject:
		return ex.ExecAction(obj, nil, obj)
	case object.BlockObject:
		return ex.ExecLambda(obj, nil, obj)
	case object.ValueParamObject, object.RefParamObject, object.ResultObject, object.LocalVObject:
		v := obj.Obj()
		if v != nil && v.Category().IsCode() {
			return ex.Evaluate(v)
		}
		return v
	}
	return obj
}
