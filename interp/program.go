package interp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/ThomasMertes/seed7-sub008/action"
	"github.com/ThomasMertes/seed7-sub008/decl"
	"github.com/ThomasMertes/seed7-sub008/exec"
	"github.com/ThomasMertes/seed7-sub008/match"
	"github.com/ThomasMertes/seed7-sub008/memory"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// Types are the types every program knows.
type Types struct {
	Type      *object.Type // type of types
	Void      *object.Type
	Proc      *object.Type // func void
	Integer   *object.Type
	Boolean   *object.Type
	String    *object.Type
	Symbol    *object.Type
	Exception *object.Type
	FParam    *object.Type
}

// Program is an interpreter instance.
type Program struct {
	Name    string
	RT      *runtime.Runtime
	Decls   *decl.Root
	Matcher *match.Matcher
	Exec    *exec.Executor
	Actions *action.Table
	Env     *action.Env
	Types   Types
	True    *object.Object
	False   *object.Object
}

// New creates and bootstraps a program.
func New(name string, opts runtime.Options) (*Program, error) {
	rt := runtime.NewRuntimeEnvironment(opts)
	p := &Program{Name: name, RT: rt}
	p.makeTypes()
	p.Decls = decl.NewRoot(rt, p.Types.Symbol)
	p.Matcher = match.New(p.Decls)
	p.Exec = exec.New(rt, p.Matcher)
	p.Decls.ParamEval = p.evalParam
	p.True = object.NewWithValue(object.EnumLiteralObject, p.Types.Boolean, int64(1))
	p.False = object.NewWithValue(object.EnumLiteralObject, p.Types.Boolean, int64(0))
	p.Env = &action.Env{
		Integer: p.Types.Integer,
		Boolean: p.Types.Boolean,
		String:  p.Types.String,
		Type:    p.Types.Type,
		Symbol:  p.Types.Symbol,
		FParam:  p.Types.FParam,
		True:    p.True,
		False:   p.False,
	}
	p.Actions = action.NewTable()
	action.RegisterStd(p.Actions, p.Env)
	rt.Prog = memory.Build(rt, object.ProgObject, nil, &object.Program{
		Name:       name,
		UsageCount: 1,
		Close: func() {
			tracer().Infof("program %s closed", name)
		},
	})
	if err := p.bootstrap(); err != nil {
		return nil, err
	}
	tracer().Infof("program %s bootstrapped with %d primitives", name, p.Actions.Size())
	return p, nil
}

func (p *Program) newType(name string, meta *object.Type) *object.Type {
	t := object.NewType(name, meta)
	t.MatchObj.Type = p.Types.Type
	return t
}

func (p *Program) makeTypes() {
	p.Types.Type = object.NewType("type", nil)
	p.Types.Type.MatchObj.Type = p.Types.Type
	p.Types.Void = p.newType("void", nil)
	p.Types.Proc = p.Types.Void.FuncType()
	p.Types.Proc.MatchObj.Type = p.Types.Type
	p.Types.Integer = p.newType("integer", nil)
	p.Types.Boolean = p.newType("boolean", nil)
	p.Types.String = p.newType("string", nil)
	p.Types.Symbol = p.newType("symbol", nil)
	p.Types.FParam = p.newType("f_param", nil)
	p.Types.Exception = p.RT.ExceptionType
	p.Types.Exception.MatchObj.Type = p.Types.Type
}

// evalParam evaluates a parameter declaration within a name pattern.
func (p *Program) evalParam(e *object.Object) *object.Object {
	resolved, err := p.Matcher.MatchExpression(e)
	if err != nil {
		tracer().Debugf("parameter declaration %v: %v", e, err)
		p.RT.RaiseException("ACTION_ERROR")
		return nil
	}
	return p.Exec.Evaluate(resolved)
}

// bootstrap declares the predefined names.
func (p *Program) bootstrap() error {
	ty := p.Types
	for _, t := range []*object.Type{ty.Type, ty.Void, ty.Integer, ty.Boolean,
		ty.String, ty.Symbol, ty.Exception, ty.FParam} {
		if err := p.declareType(t.Name, t); err != nil {
			return err
		}
	}
	if err := p.declareType("proc", ty.Proc); err != nil {
		return err
	}
	for _, name := range runtime.ExceptionNames {
		exc := p.RT.Exception(name)
		if _, err := p.DeclareConst(p.Sym(name), exc); err != nil {
			return err
		}
	}
	if _, err := p.DeclareConst(p.Sym("TRUE"), p.True); err != nil {
		return err
	}
	if _, err := p.DeclareConst(p.Sym("FALSE"), p.False); err != nil {
		return err
	}
	in := p.In
	integer, str, boolean, proc := ty.Integer, ty.String, ty.Boolean, ty.Proc
	exc, typ, sym := ty.Exception, ty.Type, ty.Symbol
	intFunc, boolFunc := integer.FuncType(), boolean.FuncType()
	prims := []struct {
		typ     *object.Type
		name    string
		pattern []*object.Object
	}{
		{intFunc, "INT_ADD", []*object.Object{in(integer, "a"), p.Sym("+"), in(integer, "b")}},
		{intFunc, "INT_SUB", []*object.Object{in(integer, "a"), p.Sym("-"), in(integer, "b")}},
		{intFunc, "INT_MULT", []*object.Object{in(integer, "a"), p.Sym("*"), in(integer, "b")}},
		{intFunc, "INT_DIV", []*object.Object{in(integer, "a"), p.Sym("div"), in(integer, "b")}},
		{boolFunc, "INT_LT", []*object.Object{in(integer, "a"), p.Sym("<"), in(integer, "b")}},
		{boolFunc, "INT_EQ", []*object.Object{in(integer, "a"), p.Sym("="), in(integer, "b")}},
		{proc, "INT_CPY", []*object.Object{p.Inout(integer, "a"), p.Sym(":="), in(integer, "b")}},
		{str.FuncType(), "INT_STR", []*object.Object{p.Sym("str"), in(integer, "a")}},
		{intFunc, "INT_PARSE", []*object.Object{p.Attr(integer), p.Sym("parse"), in(str, "s")}},
		{str.FuncType(), "STR_CAT", []*object.Object{in(str, "a"), p.Sym("&"), in(str, "b")}},
		{boolFunc, "STR_EQ", []*object.Object{in(str, "a"), p.Sym("="), in(str, "b")}},
		{proc, "STR_CPY", []*object.Object{p.Inout(str, "a"), p.Sym(":="), in(str, "b")}},
		{proc, "PRC_NOOP", []*object.Object{p.Sym("noop")}},
		{proc, "PRC_IF", []*object.Object{p.Sym("if"), in(boolean, "c"), p.Sym("then"),
			in(proc, "s"), p.Sym("end"), p.Sym("if")}},
		{proc, "PRC_IF_ELSE", []*object.Object{p.Sym("if"), in(boolean, "c"), p.Sym("then"),
			in(proc, "s"), p.Sym("else"), in(proc, "e"), p.Sym("end"), p.Sym("if")}},
		{proc, "PRC_WHILE", []*object.Object{p.Sym("while"), in(boolFunc, "c"), p.Sym("do"),
			in(proc, "s"), p.Sym("end"), p.Sym("while")}},
		{proc, "PRC_SEQ", []*object.Object{in(proc, "a"), p.Sym(";"), in(proc, "b")}},
		{proc, "PRC_RAISE", []*object.Object{p.Sym("raise"), in(exc, "e")}},
		{proc, "PRC_BLOCK", []*object.Object{p.Sym("block"), in(proc, "s"), p.Sym("exception"),
			p.Sym("catch"), in(exc, "e"), p.Sym(":"), in(proc, "h"), p.Sym("end"), p.Sym("block")}},
		{proc, "PRC_BLOCK_CATCH_ALL", []*object.Object{p.Sym("block"), in(proc, "s"), p.Sym("exception"),
			p.Sym("otherwise"), p.Sym(":"), in(proc, "h"), p.Sym("end"), p.Sym("block")}},
		{typ.FuncType(), "TYP_FUNC", []*object.Object{p.Sym("func"), in(typ, "t")}},
		{typ.FuncType(), "TYP_VARFUNC", []*object.Object{p.Sym("varfunc"), in(typ, "t")}},
		{ty.FParam.FuncType(), "DCL_IN", []*object.Object{p.Sym("in"), in(typ, "t"), p.Sym(":"), in(sym, "n")}},
		{ty.FParam.FuncType(), "DCL_IN_VAR", []*object.Object{p.Sym("in"), p.Sym("var"), in(typ, "t"),
			p.Sym(":"), in(sym, "n")}},
		{ty.FParam.FuncType(), "DCL_REF", []*object.Object{p.Sym("ref"), in(typ, "t"), p.Sym(":"), in(sym, "n")}},
		{ty.FParam.FuncType(), "DCL_INOUT", []*object.Object{p.Sym("inout"), in(typ, "t"), p.Sym(":"), in(sym, "n")}},
		{ty.FParam.FuncType(), "DCL_ATTR", []*object.Object{p.Sym("attr"), in(typ, "t")}},
	}
	for _, prim := range prims {
		if _, err := p.DeclareAction(p.Expr(prim.pattern...), prim.typ, prim.name); err != nil {
			return fmt.Errorf("bootstrap %s: %w", prim.name, err)
		}
	}
	return nil
}
