package action

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/ThomasMertes/seed7-sub008/object"
)

// formParam builds a formal parameter declaration for a name token. The
// parameter takes the identifier's entity, so that it becomes visible under
// that name while the body of a function is analyzed.
func formParam(ev object.Evaluator, env *Env, cat object.Category, isVar bool, args *object.List) *object.Object {
	typ, name := args.Nth(0).TypeValue(), args.Nth(1)
	if typ == nil || name == nil || name.Category() != object.SymbolObject || name.Entity() == nil {
		tracer().Errorf("illegal parameter declaration %v", args)
		ev.RaiseException("ACTION_ERROR")
		return nil
	}
	p := ev.BuildTemp(cat, typ, nil)
	if p == nil {
		return nil
	}
	p.ClearTemp().SetVar(isVar).SetEntity(name.Entity())
	fp := ev.BuildTemp(object.FormParamObject, env.FParam, nil)
	if fp == nil {
		return nil
	}
	fp.SetObj(p)
	return fp
}

func registerDecl(t *Table, env *Env) {
	// func T
	t.Register("TYP_FUNC", func(ev object.Evaluator, args *object.List) *object.Object {
		return args.Nth(0).TypeValue().FuncType().MatchObj
	})
	// varfunc T
	t.Register("TYP_VARFUNC", func(ev object.Evaluator, args *object.List) *object.Object {
		return args.Nth(0).TypeValue().VarfuncType().MatchObj
	})
	// in T: name
	t.Register("DCL_IN", func(ev object.Evaluator, args *object.List) *object.Object {
		return formParam(ev, env, object.ValueParamObject, false, args)
	})
	// in var T: name
	t.Register("DCL_IN_VAR", func(ev object.Evaluator, args *object.List) *object.Object {
		return formParam(ev, env, object.ValueParamObject, true, args)
	})
	// ref T: name
	t.Register("DCL_REF", func(ev object.Evaluator, args *object.List) *object.Object {
		return formParam(ev, env, object.RefParamObject, false, args)
	})
	// inout T: name
	t.Register("DCL_INOUT", func(ev object.Evaluator, args *object.List) *object.Object {
		return formParam(ev, env, object.RefParamObject, true, args)
	})
	// attr T
	t.Register("DCL_ATTR", func(ev object.Evaluator, args *object.List) *object.Object {
		typ := args.Nth(0).TypeValue()
		if typ == nil {
			ev.RaiseException("ACTION_ERROR")
			return nil
		}
		fp := ev.BuildTemp(object.FormParamObject, env.FParam, nil)
		if fp == nil {
			return nil
		}
		fp.SetObj(typ.MatchObj)
		return fp
	})
}
