package interp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/ThomasMertes/seed7-sub008"
	"github.com/ThomasMertes/seed7-sub008/memory"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// --- Tokens ----------------------------------------------------------------

// Sym creates a symbol token.
func (p *Program) Sym(name string) *object.Object {
	return p.Decls.Symbol(name, seed7.NoPos)
}

// SymAt creates a symbol token with a source position.
func (p *Program) SymAt(name string, pos seed7.Pos) *object.Object {
	return p.Decls.Symbol(name, pos)
}

// Expr creates an unresolved expression.
func (p *Program) Expr(tokens ...*object.Object) *object.Object {
	e := object.New(object.ExprObject, nil)
	e.SetList(object.NewList(tokens...))
	return e
}

// Int creates an integer literal.
func (p *Program) Int(i int64) *object.Object {
	return object.NewWithValue(object.IntObject, p.Types.Integer, i)
}

// Str creates a string literal.
func (p *Program) Str(s string) *object.Object {
	return object.NewWithValue(object.StriObject, p.Types.String, s)
}

func (p *Program) param(cat object.Category, typ *object.Type, name string, isVar bool) *object.Object {
	ent, _ := p.Decls.Idents.ResolveOrDefine(name)
	prm := object.New(cat, typ).SetVar(isVar).SetEntity(ent)
	fp := object.New(object.FormParamObject, p.Types.FParam)
	fp.SetObj(prm)
	return fp
}

// In declares a value parameter, as 'in typ: name' does.
func (p *Program) In(typ *object.Type, name string) *object.Object {
	return p.param(object.ValueParamObject, typ, name, false)
}

// InVar declares a mutable value parameter.
func (p *Program) InVar(typ *object.Type, name string) *object.Object {
	return p.param(object.ValueParamObject, typ, name, true)
}

// Ref declares a constant reference parameter.
func (p *Program) Ref(typ *object.Type, name string) *object.Object {
	return p.param(object.RefParamObject, typ, name, false)
}

// Inout declares a variable reference parameter.
func (p *Program) Inout(typ *object.Type, name string) *object.Object {
	return p.param(object.RefParamObject, typ, name, true)
}

// Attr declares an attribute parameter.
func (p *Program) Attr(typ *object.Type) *object.Object {
	return typ.MatchObj
}

// --- Declarations ----------------------------------------------------------

func (p *Program) declareType(name string, t *object.Type) error {
	obj, err := p.Decls.EnterName(p.Sym(name))
	if err != nil {
		return err
	}
	obj.Become(object.TypeObject, p.Types.Type, t)
	return nil
}

// DeclareType declares a new type with supertype meta.
func (p *Program) DeclareType(name string, meta *object.Type) (*object.Type, error) {
	t := p.newType(name, meta)
	t.Prog = p.RT.Prog.Program()
	if err := p.declareType(name, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeclareInterface declares an interface type and records that each of
// impls implements it.
func (p *Program) DeclareInterface(name string, impls ...*object.Type) (*object.Type, error) {
	iface, err := p.DeclareType(name, nil)
	if err != nil {
		return nil, err
	}
	for _, t := range impls {
		t.AddInterface(iface)
	}
	return iface, nil
}

// initialize turns a freshly declared object into a copy of value. A name
// which is declared already yields an error and leaves the old object
// untouched.
func (p *Program) initialize(obj *object.Object, err error, value *object.Object) (*object.Object, error) {
	if err != nil {
		return obj, err
	}
	if obj.Category() != object.DeclaredObject && obj.Category() != object.ForwardObject {
		return obj, fmt.Errorf("'%s' is already initialized", obj.Name())
	}
	cp := memory.CopyObject(p.RT, value)
	if cp == nil {
		exc := p.RT.FailValue()
		p.RT.ResetFail()
		return obj, p.RT.Report(runtime.NewDiagnostic(runtime.Memory,
			fmt.Sprintf("cannot initialize '%s': %v", obj.Name(), exc), obj))
	}
	obj.Become(cp.Category(), value.Type, cp.Value())
	memory.FreeObject(p.RT, cp)
	return obj, nil
}

// DeclareConst declares a constant with a copy of value.
func (p *Program) DeclareConst(nameExpr, value *object.Object) (*object.Object, error) {
	obj, err := p.Decls.EnterName(nameExpr)
	return p.initialize(obj, err, value)
}

// DeclareVar declares a variable initialized with a copy of value.
func (p *Program) DeclareVar(nameExpr, value *object.Object) (*object.Object, error) {
	obj, err := p.DeclareConst(nameExpr, value)
	if err == nil {
		obj.SetVar(true)
	}
	return obj, err
}

// DeclareAction declares a name bound to a registered primitive.
func (p *Program) DeclareAction(nameExpr *object.Object, typ *object.Type, actionName string) (*object.Object, error) {
	act, ok := p.Actions.Lookup(actionName)
	if !ok {
		return nil, p.RT.Report(runtime.NewDiagnostic(runtime.ActIllegal,
			fmt.Sprintf("unknown primitive %s", actionName), nameExpr))
	}
	obj, err := p.Decls.EnterName(nameExpr)
	if err != nil {
		return obj, err
	}
	return obj.Become(object.ActObject, typ, act), nil
}

// DeclareDynamic declares an interface function. Calls are dispatched at run
// time on the concrete types of the actual parameters.
func (p *Program) DeclareDynamic(nameExpr *object.Object, typ *object.Type) (*object.Object, error) {
	return p.DeclareAction(nameExpr, typ, object.DynamicActionName)
}

// Forward declares a name whose definition follows later.
func (p *Program) Forward(nameExpr *object.Object, typ *object.Type) (*object.Object, error) {
	obj, err := p.Decls.Forward(nameExpr)
	if err == nil {
		obj.Type = typ
	}
	return obj, err
}

// Local is a local variable of a function.
type Local struct {
	Name string
	Init *object.Object // initial value, copied for every call
}

// FuncDef defines the body of a user defined function.
type FuncDef struct {
	Result *object.Object // initial value of the result slot; nil for 'return' style bodies and procedures
	Locals []Local
	Body   *object.Object // unresolved expression
}

// DeclareFunc declares a user defined function or procedure. The name
// pattern is declared first, so that the body may call the function
// recursively. Then formal parameters, the result slot and locals are made
// visible in a new level while the body is matched.
func (p *Program) DeclareFunc(nameExpr *object.Object, typ *object.Type, def FuncDef) (*object.Object, error) {
	obj, err := p.Decls.EnterName(nameExpr)
	if err != nil {
		return obj, err
	}
	if obj.Category() != object.DeclaredObject && obj.Category() != object.ForwardObject {
		return obj, fmt.Errorf("'%s' is already initialized", obj.Name())
	}
	obj.Type = typ
	var formals *object.List
	if prop := obj.Property(); prop != nil {
		formals = prop.Params
	}
	p.Decls.PushLevel(fmt.Sprintf("func %s", obj.Name()))
	formals.Each(func(_ int, f *object.Object) bool {
		if f != nil && f.Category().IsParam() {
			p.Decls.EnterParam(f)
		}
		return true
	})
	var result *object.LocObj
	if def.Result != nil {
		res := object.New(object.ResultObject, def.Result.Type).SetVar(true)
		res.SetEntity(p.Decls.Intern("result").Entity())
		p.Decls.EnterLocal(res)
		result = &object.LocObj{Obj: res, Init: def.Result}
	}
	var locals []object.LocObj
	for _, l := range def.Locals {
		lv := object.New(object.LocalVObject, l.Init.Type).SetVar(true)
		lv.SetEntity(p.Decls.Intern(l.Name).Entity())
		p.Decls.EnterLocal(lv)
		locals = append(locals, object.LocObj{Obj: lv, Init: l.Init})
	}
	body, merr := p.Matcher.MatchExpression(def.Body)
	if perr := p.Decls.PopLevel(); perr != nil && merr == nil {
		merr = perr
	}
	if body == nil {
		return obj, merr
	}
	blk := object.NewBlock(formals, result, locals, body)
	obj.Become(object.BlockObject, typ, blk)
	tracer().Debugf("declared function %s", obj.Name())
	return obj, merr
}
