package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/ThomasMertes/seed7-sub008/decl"
	"github.com/ThomasMertes/seed7-sub008/object"
)

// state is the state of one matching pass. Rewrites of sub-expressions are
// logged, so that a dead branch can be rolled back to a mark.
type state struct {
	lenient    bool // constants may bind to inout parameters
	interfaces bool
	undo       []func()
}

func (st *state) mark() int {
	return len(st.undo)
}

func (st *state) rollback(mark int) {
	for i := len(st.undo) - 1; i >= mark; i-- {
		st.undo[i]()
	}
	st.undo = st.undo[:mark]
}

// buildCall re-tags expr in place as the resolved call of callee. A callee
// without parameters is returned as is.
func (st *state) buildCall(expr, callee *object.Object, args []*object.Object) *object.Object {
	if len(args) == 0 {
		return callee
	}
	oldCat, oldList, oldType := expr.Category(), expr.List(), expr.Type
	st.undo = append(st.undo, func() {
		expr.Retag(oldCat)
		expr.SetList(oldList)
		expr.Type = oldType
	})
	expr.Retag(CallCategory(callee))
	expr.SetList(object.NewList(append([]*object.Object{callee}, args...)...))
	expr.Type = callee.Type
	tracer().Debugf("resolved %s to %v", oldList, expr)
	return expr
}

// matchSubexpr matches tokens[i:] starting at trie node n. It returns the
// callee and the actual parameters for positions i and following.
func (m *Matcher) matchSubexpr(st *state, n *decl.Node, tokens []*object.Object, i int) (*object.Object, []*object.Object, bool) {
	if i == len(tokens) {
		if n.Entity != nil {
			if obj := n.Entity.Object(); obj != nil {
				return obj, nil, true
			}
		}
		return nil, nil, false
	}
	tok := tokens[i]
	mark := st.mark()
	if generic := decl.Generic(tok); generic != nil {
		if child := n.Symbol(generic); child != nil {
			if callee, args, ok := m.matchSubexpr(st, child, tokens, i+1); ok {
				return callee, args, true
			}
			st.rollback(mark)
		}
	}
	if callee, args, ok := m.matchValue(st, n, tokens, i, tok); ok {
		return callee, args, true
	}
	var operand *object.Object
	switch tok.Category() {
	case object.ExprObject:
		operand = m.matchNested(st, tok)
	case object.SymbolObject:
		operand = m.root.LookupName(tok)
	}
	if operand != nil {
		if callee, args, ok := m.matchValue(st, n, tokens, i, operand); ok {
			return callee, args, true
		}
	}
	st.rollback(mark)
	return nil, nil, false
}

// matchValue tries the attribute and parameter branches of n for val as
// the actual parameter at position i.
func (m *Matcher) matchValue(st *state, n *decl.Node, tokens []*object.Object, i int, val *object.Object) (*object.Object, []*object.Object, bool) {
	mark := st.mark()
	try := func(k decl.Key, actual *object.Object) (*object.Object, []*object.Object, bool) {
		child := n.Child(k)
		if child == nil {
			return nil, nil, false
		}
		callee, args, ok := m.matchSubexpr(st, child, tokens, i+1)
		if !ok {
			st.rollback(mark)
			return nil, nil, false
		}
		return callee, append([]*object.Object{actual}, args...), true
	}
	switch val.Category() {
	case object.TypeObject:
		for t := val.TypeValue(); t != nil; t = t.Meta {
			if callee, args, ok := try(decl.Key{Kind: decl.AttrKey, Type: t}, val); ok {
				return callee, args, true
			}
		}
	case object.FormParamObject:
		if k, ok := decl.ParamKey(val); ok && k.Kind == decl.ParamAttrKey {
			if callee, args, ok := try(k, val); ok {
				return callee, args, true
			}
		}
	}
	typ := val.Type
	if typ == nil {
		return nil, nil, false
	}
	variable := isVariable(val)
	if st.interfaces {
		for _, iface := range typ.InterfaceWalk() {
			for _, kind := range branchOrder(variable, st.lenient) {
				callee, args, ok := try(decl.Key{Kind: kind, Type: iface}, val)
				if !ok {
					continue
				}
				if object.IsDynamic(callee) {
					tracer().Debugf("interface %s dispatches dynamically", iface)
					return callee, args, true
				}
				tracer().Debugf("discarding non-dynamic interface match of %v", callee)
				st.rollback(mark)
			}
		}
	}
	if callee, args, ok := m.matchTyped(st, variable, typ, try, val); ok {
		return callee, args, true
	}
	for rt := typ.ResultType; rt != nil; rt = rt.ResultType {
		wrapper := MatchObject2(val, rt)
		if callee, args, ok := m.matchTyped(st, isVariable(wrapper), rt, try, wrapper); ok {
			return callee, args, true
		}
	}
	return nil, nil, false
}

type tryFunc func(decl.Key, *object.Object) (*object.Object, []*object.Object, bool)

// matchTyped tries the parameter branches for type typ and its supertypes,
// in the order given by the variability of the actual.
func (m *Matcher) matchTyped(st *state, variable bool, typ *object.Type, try tryFunc, actual *object.Object) (*object.Object, []*object.Object, bool) {
	for _, kind := range branchOrder(variable, st.lenient) {
		for t := typ; t != nil; t = t.Meta {
			if callee, args, ok := try(decl.Key{Kind: kind, Type: t}, actual); ok {
				return callee, args, true
			}
		}
	}
	return nil, nil, false
}

// branchOrder lists the parameter branches to try. Variables prefer inout
// parameters; constants bind to inout parameters only in a lenient pass.
func branchOrder(variable, lenient bool) []decl.KeyKind {
	if variable {
		return []decl.KeyKind{decl.InoutKey, decl.OtherKey}
	}
	if lenient {
		return []decl.KeyKind{decl.OtherKey, decl.InoutKey}
	}
	return []decl.KeyKind{decl.OtherKey}
}

// isVariable is true for mutable bindings and calls of functions yielding
// variables.
func isVariable(obj *object.Object) bool {
	return obj.IsVar() || (obj.Type != nil && obj.Type.IsVarfuncType)
}
