package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/ThomasMertes/seed7-sub008/object"
)

// CheckAccessRights walks a resolved call and its nested calls, pairing the
// formal parameters of each callee with the actual parameters. It returns
// the first call binding a constant to an inout parameter, together with the
// offending actual parameter, or (nil, nil).
func CheckAccessRights(call *object.Object) (*object.Object, *object.Object) {
	if call == nil || !call.Category().IsCall() {
		return nil, nil
	}
	l := call.List()
	if l == nil {
		return nil, nil
	}
	callee := l.Obj
	var formals *object.List
	if p := callee.Property(); p != nil {
		formals = p.Params
	}
	for actual := l.Next; actual != nil; actual = actual.Next {
		if formals != nil {
			f := formals.Obj
			if f != nil && f.Category() == object.RefParamObject && f.IsVar() && !isVariable(actual.Obj) {
				tracer().Infof("constant %v bound to inout parameter %s", actual.Obj, f.Name())
				return call, actual.Obj
			}
			formals = formals.Next
		}
		if c, a := CheckAccessRights(actual.Obj); a != nil {
			return c, a
		}
	}
	return nil, nil
}
