package exec

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/ThomasMertes/seed7-sub008/memory"
	"github.com/ThomasMertes/seed7-sub008/object"
)

// binding remembers the previous value of a formal parameter, local variable
// or result slot. Formals are shared by all activations of a block, so
// recursive calls have to restore them on exit.
type binding struct {
	slot  *object.Object
	old   *object.Object
	owned *object.Object // released on restore
}

func (b binding) restore(ex *Executor) {
	b.slot.SetObj(b.old)
	if b.owned != nil {
		memory.DumpAnyTemp(ex.rt, b.owned)
	}
}

func restoreAll(ex *Executor, bindings []binding) {
	for i := len(bindings) - 1; i >= 0; i-- {
		bindings[i].restore(ex)
	}
}

// ExecLambda calls a user defined block. Actual parameters are evaluated and
// bound to the formals of the block, locals and the result slot are
// instantiated, and the body is evaluated. Bindings are undone in reverse
// order afterwards, whether or not an exception is propagating.
//
// Binding rules: a TEMP actual for a value parameter is adopted, other
// actuals are copied, except for code and enumeration literals, which are
// bound by reference. A TEMP actual for a reference parameter is lent for the
// duration of the call and released when the parameter is unbound.
func (ex *Executor) ExecLambda(callee *object.Object, args *object.List, call *object.Object) *object.Object {
	rt := ex.rt
	blk := callee.Block()
	if blk == nil {
		return ex.illegal(call, "block without body")
	}
	params := ex.bindParams(blk.Params, args)
	var locals []binding
	if !rt.Failing() {
		locals = ex.bindLocals(blk.LocalVars)
	}
	var res *object.Object
	var resBinding binding
	if blk.Result != nil && !rt.Failing() {
		res = memory.CopyObject(rt, blk.Result.Init)
		if res != nil {
			res.Adopt().SetVar(true)
			resBinding = binding{slot: blk.Result.Obj, old: blk.Result.Obj.Obj()}
			blk.Result.Obj.SetObj(res)
		}
	}
	var result *object.Object
	if !rt.Failing() {
		result = ex.Evaluate(blk.Body)
	}
	if blk.Result != nil {
		if result != nil && result != res && result.IsTemp() {
			memory.DumpAnyTemp(rt, result)
		}
		result = nil
		if res != nil {
			resBinding.restore(ex)
			if rt.Failing() {
				memory.DumpAnyTemp(rt, res)
			} else {
				result = res.SetTemp()
			}
		}
	} else if rt.Failing() {
		if result != nil && result.IsTemp() {
			memory.DumpAnyTemp(rt, result)
		}
		result = nil
	} else if promotable(result) {
		result = memory.CopyObject(rt, result)
	}
	restoreAll(ex, locals)
	restoreAll(ex, params)
	if rt.Failing() {
		rt.SetFailExpr(call)
	}
	return result
}

// bindParams evaluates the actual parameters and binds them to the formals.
// All actuals are evaluated before the first formal is rebound, as an actual
// may read a formal of the block itself in a recursive call. If an actual
// fails, the ones evaluated so far are released and nothing is bound.
func (ex *Executor) bindParams(formals, args *object.List) []binding {
	rt := ex.rt
	var actuals []*object.Object
	for ; args != nil; args = args.Next {
		actual := ex.ExecObject(args.Obj)
		if rt.Failing() {
			if actual != nil && actual.IsTemp() {
				memory.DumpAnyTemp(rt, actual)
			}
			ex.dropActuals(actuals, 0)
			return nil
		}
		actuals = append(actuals, actual)
	}
	var bindings []binding
	for i, actual := range actuals {
		var formal *object.Object
		if formals != nil {
			formal, formals = formals.Obj, formals.Next
		}
		if formal == nil || !formal.Category().IsParam() {
			// attribute parameters and symbols bind nothing
			if actual != nil && actual.IsTemp() {
				memory.DumpAnyTemp(rt, actual)
			}
			continue
		}
		b := binding{slot: formal, old: formal.Obj()}
		switch formal.Category() {
		case object.RefParamObject, object.ResultObject:
			if actual != nil && actual.IsTemp() {
				actual.Lend()
				b.owned = actual
			}
			formal.SetObj(actual)
		default:
			bound := actual
			switch {
			case actual == nil:
			case actual.IsTemp():
				bound = actual.Adopt()
				b.owned = bound
			case actual.Category().IsCode() || actual.Category() == object.EnumLiteralObject:
			default:
				bound = memory.CopyObject(rt, actual)
				if bound == nil {
					ex.dropActuals(actuals, i+1)
					return bindings
				}
				bound.Adopt()
				b.owned = bound
			}
			if b.owned != nil {
				bound.SetVar(formal.IsVar())
			}
			formal.SetObj(bound)
		}
		bindings = append(bindings, b)
	}
	return bindings
}

// dropActuals releases the TEMP actuals from position from on, which have
// not been bound.
func (ex *Executor) dropActuals(actuals []*object.Object, from int) {
	for _, actual := range actuals[from:] {
		if actual != nil && actual.IsTemp() {
			memory.DumpAnyTemp(ex.rt, actual)
		}
	}
}

// bindLocals instantiates the local variables of a block from their initial
// values.
func (ex *Executor) bindLocals(locals []object.LocObj) []binding {
	var bindings []binding
	for _, lv := range locals {
		inst := memory.CopyObject(ex.rt, lv.Init)
		if inst == nil {
			break
		}
		inst.Adopt().SetVar(lv.Obj.IsVar())
		bindings = append(bindings, binding{slot: lv.Obj, old: lv.Obj.Obj(), owned: inst})
		lv.Obj.SetObj(inst)
	}
	return bindings
}

// promotable is true for results of blocks without result slot which have
// to be copied to be returned as TEMP.
func promotable(result *object.Object) bool {
	if result == nil || result.IsTemp() {
		return false
	}
	switch cat := result.Category(); {
	case cat == object.EnumLiteralObject, cat == object.TypeObject, cat == object.SymbolObject:
		return false
	case cat.IsCode():
		return false
	}
	return true
}
