package decl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/ThomasMertes/seed7-sub008"
	"github.com/ThomasMertes/seed7-sub008/memory"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// keyOf derives the trie key of an element of a name pattern.
func (root *Root) keyOf(elem *object.Object) (Key, bool) {
	if elem == nil {
		return Key{}, false
	}
	switch elem.Category() {
	case object.SymbolObject:
		if generic := Generic(elem); generic != nil {
			return Key{Kind: SymbolKey, Sym: generic}, true
		}
	case object.TypeObject:
		return Key{Kind: AttrKey, Type: elem.TypeValue()}, true
	case object.FormParamObject:
		return ParamKey(elem.Obj())
	}
	return Key{}, false
}

// ParamKey derives the trie key of a formal parameter.
func ParamKey(param *object.Object) (Key, bool) {
	if param == nil {
		return Key{}, false
	}
	switch param.Category() {
	case object.TypeObject:
		return Key{Kind: AttrKey, Type: param.TypeValue()}, true
	case object.ValueParamObject:
		return Key{Kind: OtherKey, Type: param.Type}, true
	case object.RefParamObject:
		if param.IsVar() {
			return Key{Kind: InoutKey, Type: param.Type}, true
		}
		return Key{Kind: OtherKey, Type: param.Type}, true
	case object.FormParamObject:
		inner := param.Obj()
		if inner == nil {
			break
		}
		typ := inner.Type
		if inner.Category() == object.TypeObject {
			typ = inner.TypeValue()
		}
		return Key{Kind: ParamAttrKey, Type: typ, ByRef: inner.Category() == object.RefParamObject}, true
	}
	return Key{}, false
}

// formalOf returns the formal parameter of a pattern element, as bound to
// the corresponding actual parameter of calls.
func formalOf(elem *object.Object) *object.Object {
	if elem.Category() == object.FormParamObject {
		return elem.Obj()
	}
	return elem
}

// EnterName declares a name at the current declaration level and returns the
// declared object. nameExpr is a symbol token or an expression of symbol
// tokens and parameter declarations.
//
// Parameter declarations are evaluated in a speculative level. If the name is
// already declared at the current level by a forward declaration, the forward
// object is returned. If it is declared at the current level otherwise, the
// existing object is returned together with a DeclaredTwice diagnostic.
func (root *Root) EnterName(nameExpr *object.Object) (*object.Object, error) {
	rt := root.rt
	var pattern []*object.Object
	switch nameExpr.Category() {
	case object.SymbolObject:
		pattern = []*object.Object{nameExpr}
	case object.ExprObject, object.ListObject:
		pattern = nameExpr.List().Objects()
	default:
		return nil, rt.Report(runtime.NewDiagnostic(runtime.ExprExpected,
			fmt.Sprintf("name expected, found %v", nameExpr), nameExpr))
	}
	if len(pattern) == 0 {
		return nil, rt.Report(runtime.NewDiagnostic(runtime.ExprExpected, "empty name", nameExpr))
	}
	rt.Levels.Grow("name")
	elems, err := root.evalPattern(pattern)
	if serr := root.ShrinkLevel(); serr != nil && err == nil {
		err = serr
	}
	if err != nil {
		return nil, err
	}
	node := root.top
	var path []Key
	var fparams, formals []*object.Object
	var names []string
	for _, e := range elems {
		k, _ := root.keyOf(e)
		path = append(path, k)
		node = node.ensure(k)
		if k.Kind == SymbolKey {
			fparams = append(fparams, k.Sym)
			names = append(names, k.Sym.Name())
		} else {
			fparams = append(fparams, e)
			formals = append(formals, formalOf(e))
		}
	}
	simple := len(path) == 1 && path[0].Kind == SymbolKey
	ent := node.Entity
	if ent == nil {
		if simple {
			ent = path[0].Sym.Entity()
		} else if ent = root.unpark(ShapeOf(path).Key()); ent == nil {
			ent = object.NewEntity(strings.Join(names, " "))
		}
		node.Entity = ent
		root.nodes[ent] = node
	}
	if !simple {
		ent.FParams = object.NewList(fparams...)
	}
	depth := rt.Levels.Depth()
	if o, ok := ent.Owner(); ok && o.Level == depth {
		if o.Obj.Category() == object.ForwardObject {
			tracer().Debugf("resolving forward declaration of %s", ent)
			if p := o.Obj.Property(); p != nil {
				p.Params = object.NewList(formals...)
			}
			return o.Obj, nil
		}
		return o.Obj, rt.Report(runtime.NewDiagnostic(runtime.DeclaredTwice,
			fmt.Sprintf("'%s' declared twice", ent), nameExpr, o.Obj))
	}
	obj := memory.Build(rt, object.DeclaredObject, nil, nil)
	if obj == nil {
		return nil, rt.Report(runtime.NewDiagnostic(runtime.Memory,
			fmt.Sprintf("cannot declare '%s'", ent), nameExpr))
	}
	obj.SetProperty(&object.Property{
		Entity: ent,
		Params: object.NewList(formals...),
		Pos:    patternPos(pattern),
	})
	ent.PushOwner(obj, depth)
	rt.Levels.Current().Add(runtime.Entry{Obj: obj, Entity: ent, Owned: true})
	tracer().P("level", depth).Debugf("declared %s", ent)
	return obj, nil
}

// Forward declares a name with a forward placeholder. A later EnterName of
// the same pattern at the same level returns the identical object.
func (root *Root) Forward(nameExpr *object.Object) (*object.Object, error) {
	obj, err := root.EnterName(nameExpr)
	if err != nil {
		return obj, err
	}
	if obj.Category() == object.DeclaredObject {
		obj.Retag(object.ForwardObject)
	}
	return obj, nil
}

// IsForward is true for forward declared objects which have not been
// resolved yet.
func IsForward(obj *object.Object) bool {
	return obj != nil && obj.Category() == object.ForwardObject
}

// evalPattern evaluates parameter declarations of a name pattern and enters
// the declared parameters into the current (speculative) level.
func (root *Root) evalPattern(pattern []*object.Object) ([]*object.Object, error) {
	rt := root.rt
	elems := make([]*object.Object, 0, len(pattern))
	for _, e := range pattern {
		switch e.Category() {
		case object.SymbolObject, object.TypeObject:
			elems = append(elems, e)
			continue
		case object.FormParamObject:
			elems = append(elems, e)
			root.EnterParam(e.Obj())
			continue
		case object.ExprObject:
			if root.ParamEval == nil {
				break
			}
			fp := root.ParamEval(e)
			if rt.Failing() {
				exc := rt.FailValue()
				rt.ResetFail()
				if fp != nil && fp.IsTemp() {
					memory.ReleaseTemp(rt, fp)
				}
				return nil, rt.Report(runtime.NewDiagnostic(runtime.ParamExpected,
					fmt.Sprintf("exception %v in parameter declaration", exc), e))
			}
			if fp == nil || (fp.Category() != object.FormParamObject && fp.Category() != object.TypeObject) {
				if fp != nil && fp.IsTemp() {
					memory.ReleaseTemp(rt, fp)
				}
				break
			}
			fp.Adopt()
			elems = append(elems, fp)
			if fp.Category() == object.FormParamObject {
				root.EnterParam(fp.Obj())
			}
			continue
		}
		return nil, rt.Report(runtime.NewDiagnostic(runtime.ParamExpected,
			fmt.Sprintf("parameter declaration expected, found %v", e), e))
	}
	return elems, nil
}

// EnterParam makes a formal parameter visible by its name at the current
// level. The level does not own the parameter.
func (root *Root) EnterParam(param *object.Object) {
	root.enterSimple(param)
}

// EnterLocal makes a local variable or result slot of a block visible by its
// name at the current level. The block owns the object, not the level.
func (root *Root) EnterLocal(local *object.Object) {
	root.enterSimple(local)
}

func (root *Root) enterSimple(obj *object.Object) {
	if obj == nil {
		return
	}
	ent := obj.Entity()
	if ent == nil {
		return
	}
	if ent.Syobject == nil {
		ent.Syobject = object.New(object.SymbolObject, root.SymbolType).SetEntity(ent)
	}
	node := root.top.ensure(Key{Kind: SymbolKey, Sym: ent.Syobject})
	if node.Entity == nil {
		node.Entity = ent
		root.nodes[ent] = node
	}
	depth := root.rt.Levels.Depth()
	ent.PushOwner(obj, depth)
	root.rt.Levels.Current().Add(runtime.Entry{Obj: obj, Entity: ent})
}

func patternPos(pattern []*object.Object) (pos seed7.Pos) {
	for _, e := range pattern {
		if p := e.Pos(); !p.IsNull() {
			return p
		}
	}
	return
}
