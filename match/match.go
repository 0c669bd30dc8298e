package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/ThomasMertes/seed7-sub008/decl"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// Matcher resolves expressions against a declaration trie.
type Matcher struct {
	root       *decl.Root
	rt         *runtime.Runtime
	interfaces bool // probe interface types of tokens
}

// New creates a matcher. Interface dispatch follows the runtime options.
func New(root *decl.Root) *Matcher {
	rt := root.Runtime()
	return &Matcher{
		root:       root,
		rt:         rt,
		interfaces: rt.Options.InterfaceDispatch,
	}
}

// WithoutInterfaces returns a matcher which never probes interfaces. It is
// used to re-match call sites during dynamic dispatch.
func (m *Matcher) WithoutInterfaces() *Matcher {
	return &Matcher{root: m.root, rt: m.rt}
}

// Root returns the declaration trie of the matcher.
func (m *Matcher) Root() *decl.Root {
	return m.root
}

// MatchExpression resolves an expression. It returns the resolved call (the
// re-tagged expression), or the callee itself if it takes no parameters.
// Objects other than expressions and symbols are returned unchanged.
//
// If no declaration matches, a NoMatch diagnostic is reported and returned.
// If the expression matches only by binding a constant to an inout
// parameter, the result is returned together with a WrongAccessRight
// diagnostic.
func (m *Matcher) MatchExpression(expr *object.Object) (*object.Object, error) {
	if expr == nil {
		return nil, m.rt.Report(runtime.NewDiagnostic(runtime.ExprExpected, "missing expression"))
	}
	switch expr.Category() {
	case object.SymbolObject:
		if obj := m.root.LookupName(expr); obj != nil {
			return obj, nil
		}
		return nil, m.rt.Report(runtime.NewDiagnostic(runtime.NoMatch,
			fmt.Sprintf("'%s' not declared", expr.Name()), expr))
	case object.ExprObject:
	default:
		return expr, nil
	}
	tracer().Debugf("match %v", expr.List())
	if result := m.tryMatch(expr, false); result != nil {
		return result, nil
	}
	result := m.tryMatch(expr, true)
	if result == nil {
		return nil, m.rt.Report(runtime.NewDiagnostic(runtime.NoMatch,
			fmt.Sprintf("no declaration matches %s", expr.List()), expr))
	}
	if call, actual := CheckAccessRights(result); actual != nil {
		return result, m.rt.Report(runtime.NewDiagnostic(runtime.WrongAccessRight,
			fmt.Sprintf("%v is not a variable", actual), call, actual))
	}
	return result, nil
}

// tryMatch matches an expression in one pass. A failed pass leaves no
// trace.
func (m *Matcher) tryMatch(expr *object.Object, lenient bool) *object.Object {
	st := &state{lenient: lenient, interfaces: m.interfaces}
	tokens := expr.List().Objects()
	callee, args, ok := m.matchSubexpr(st, m.root.Top(), tokens, 0)
	if !ok {
		st.rollback(0)
		return nil
	}
	return st.buildCall(expr, callee, args)
}

// matchNested resolves a sub-expression in place, within the state of the
// enclosing match.
func (m *Matcher) matchNested(st *state, expr *object.Object) *object.Object {
	tokens := expr.List().Objects()
	mark := st.mark()
	callee, args, ok := m.matchSubexpr(st, m.root.Top(), tokens, 0)
	if !ok {
		st.rollback(mark)
		return nil
	}
	return st.buildCall(expr, callee, args)
}

// MatchObject2 wraps an object as a resolved call yielding a value of type
// typ, i.e. as a call of a parameterless function.
func MatchObject2(obj *object.Object, typ *object.Type) *object.Object {
	wrapper := object.New(object.CallObject, typ)
	wrapper.SetList(object.NewList(obj))
	if obj.Type != nil && obj.Type.IsVarfuncType {
		wrapper.SetVar(true)
	}
	return wrapper
}

// CallCategory returns the category of a resolved call of callee.
func CallCategory(callee *object.Object) object.Category {
	if callee.Type.IsFunc() {
		return object.MatchObject
	}
	return object.CallObject
}
