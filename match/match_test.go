package match

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ThomasMertes/seed7-sub008"
	"github.com/ThomasMertes/seed7-sub008/decl"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

type fixture struct {
	rt      *runtime.Runtime
	root    *decl.Root
	m       *Matcher
	integer *object.Type
	boolean *object.Type
	void    *object.Type
	symbol  *object.Type
}

func setup() *fixture {
	rt := runtime.NewRuntimeEnvironment(runtime.BaseOptions())
	f := &fixture{
		rt:      rt,
		integer: object.NewType("integer", nil),
		boolean: object.NewType("boolean", nil),
		void:    object.NewType("void", nil),
		symbol:  object.NewType("symbol", nil),
	}
	f.root = decl.NewRoot(rt, f.symbol)
	f.m = New(f.root)
	return f
}

func (f *fixture) sym(name string) *object.Object {
	return f.root.Symbol(name, seed7.NoPos)
}

func (f *fixture) param(cat object.Category, typ *object.Type, name string, isVar bool) *object.Object {
	p := object.New(cat, typ).SetVar(isVar)
	ent, _ := f.root.Idents.ResolveOrDefine(name)
	p.SetEntity(ent)
	fp := object.New(object.FormParamObject, nil)
	fp.SetObj(p)
	return fp
}

func (f *fixture) in(typ *object.Type, name string) *object.Object {
	return f.param(object.ValueParamObject, typ, name, false)
}

func (f *fixture) inout(typ *object.Type, name string) *object.Object {
	return f.param(object.RefParamObject, typ, name, true)
}

func expr(objs ...*object.Object) *object.Object {
	e := object.New(object.ExprObject, nil)
	e.SetList(object.NewList(objs...))
	return e
}

// action declares a primitive with a name pattern.
func (f *fixture) action(t *testing.T, typ *object.Type, name string, pattern ...*object.Object) *object.Object {
	var nameExpr *object.Object
	if len(pattern) == 1 {
		nameExpr = pattern[0]
	} else {
		nameExpr = expr(pattern...)
	}
	obj, err := f.root.EnterName(nameExpr)
	if err != nil {
		t.Fatal(err)
	}
	return obj.Become(object.ActObject, typ, &object.Action{Name: name})
}

func (f *fixture) constant(t *testing.T, name string, value int64, isVar bool) *object.Object {
	obj, err := f.root.EnterName(f.sym(name))
	if err != nil {
		t.Fatal(err)
	}
	return obj.Become(object.IntObject, f.integer, value).SetVar(isVar)
}

func (f *fixture) literal(i int64) *object.Object {
	return object.NewWithValue(object.IntObject, f.integer, i)
}

func TestMatchInfix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.match")
	defer teardown()
	//
	f := setup()
	plus := f.action(t, f.integer.FuncType(), "INT_ADD", f.in(f.integer, "a"), f.sym("+"), f.in(f.integer, "b"))
	x := f.constant(t, "x", 1, false)
	e := expr(f.sym("x"), f.sym("+"), f.literal(2))
	result, err := f.m.MatchExpression(e)
	if err != nil {
		t.Fatal(err)
	}
	if result != e || result.Category() != object.MatchObject {
		t.Fatalf("expected expression re-tagged as MATCHOBJECT, have %v", result)
	}
	l := result.List()
	if l.Obj != plus || l.Nth(1) != x || l.Nth(2).Int() != 2 {
		t.Errorf("unexpected resolution %v", l)
	}
}

func TestSymbolBranchWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.match")
	defer teardown()
	//
	f := setup()
	generic := f.action(t, f.void.FuncType(), "PRC_GENERIC", f.sym("show"), f.in(f.symbol, "s"))
	special := f.action(t, f.void.FuncType(), "PRC_SPECIAL", f.sym("show"), f.sym("all"))
	result, err := f.m.MatchExpression(expr(f.sym("show"), f.sym("all")))
	if err != nil {
		t.Fatal(err)
	}
	if result != special {
		t.Errorf("expected symbol branch to win, have %v", result)
	}
	result, err = f.m.MatchExpression(expr(f.sym("show"), f.sym("other")))
	if err != nil {
		t.Fatal(err)
	}
	if result.List().Obj != generic {
		t.Errorf("expected symbol bound to a symbol parameter, have %v", result)
	}
}

func TestConstantBoundToInout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.match")
	defer teardown()
	//
	f := setup()
	incr := f.action(t, f.void.FuncType(), "INT_INCR", f.inout(f.integer, "a"), f.sym("+:="), f.in(f.integer, "b"))
	f.constant(t, "v", 0, true)
	f.constant(t, "c", 0, false)
	result, err := f.m.MatchExpression(expr(f.sym("v"), f.sym("+:="), f.literal(1)))
	if err != nil {
		t.Fatalf("variable bound to inout parameter: %v", err)
	}
	if result.List().Obj != incr {
		t.Errorf("unexpected resolution %v", result)
	}
	result, err = f.m.MatchExpression(expr(f.sym("c"), f.sym("+:="), f.literal(1)))
	if !runtime.IsKind(err, runtime.WrongAccessRight) {
		t.Errorf("expected wrong access right, have %v", err)
	}
	if result == nil || result.List().Obj != incr {
		t.Errorf("expected resolution despite access right error, have %v", result)
	}
}

func TestNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.match")
	defer teardown()
	//
	f := setup()
	f.action(t, f.integer.FuncType(), "INT_ADD", f.in(f.integer, "a"), f.sym("+"), f.in(f.integer, "b"))
	truth := object.NewWithValue(object.EnumLiteralObject, f.boolean, int64(1))
	_, err := f.m.MatchExpression(expr(f.literal(1), f.sym("+"), truth))
	if !runtime.IsKind(err, runtime.NoMatch) {
		t.Errorf("expected no match, have %v", err)
	}
	_, err = f.m.MatchExpression(f.sym("undeclared"))
	if !runtime.IsKind(err, runtime.NoMatch) {
		t.Errorf("expected no match for undeclared name, have %v", err)
	}
}

func TestFailedBranchIsRolledBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.match")
	defer teardown()
	//
	f := setup()
	f.action(t, f.integer.FuncType(), "INT_ADD", f.in(f.integer, "a"), f.sym("+"), f.in(f.integer, "b"))
	f.action(t, f.void.FuncType(), "PRC_AT", f.in(f.integer, "a"), f.sym("@"), f.in(f.integer, "b"), f.sym("#"))
	f.constant(t, "y", 2, false)
	nested := expr(f.sym("y"), f.sym("+"), f.literal(3))
	_, err := f.m.MatchExpression(expr(f.literal(1), f.sym("@"), nested))
	if !runtime.IsKind(err, runtime.NoMatch) {
		t.Fatalf("expected no match, have %v", err)
	}
	if nested.Category() != object.ExprObject || nested.List().Len() != 3 {
		t.Errorf("nested expression not restored: %v", nested)
	}
}

func TestResultTypeWrapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.match")
	defer teardown()
	//
	f := setup()
	f.action(t, f.integer.FuncType(), "INT_ADD", f.in(f.integer, "a"), f.sym("+"), f.in(f.integer, "b"))
	f.constant(t, "y", 2, false)
	nested := expr(f.sym("y"), f.sym("+"), f.literal(3))
	result, err := f.m.MatchExpression(expr(f.literal(1), f.sym("+"), nested))
	if err != nil {
		t.Fatal(err)
	}
	wrapper := result.List().Nth(2)
	if wrapper.Category() != object.CallObject || wrapper.Type != f.integer {
		t.Fatalf("expected call wrapper yielding integer, have %v", wrapper)
	}
	if wrapper.List().Obj != nested || nested.Category() != object.MatchObject {
		t.Errorf("wrapper does not refer to the resolved sub-expression")
	}
}

func TestAttributeParameter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.match")
	defer teardown()
	//
	f := setup()
	conv := f.action(t, f.integer.FuncType(), "INT_CONV", f.boolean.MatchObj, f.sym("conv"), f.in(f.integer, "i"))
	result, err := f.m.MatchExpression(expr(f.boolean.MatchObj, f.sym("conv"), f.literal(0)))
	if err != nil {
		t.Fatal(err)
	}
	if result.List().Obj != conv || result.List().Nth(1) != f.boolean.MatchObj {
		t.Errorf("unexpected resolution %v", result)
	}
}

func TestInterfaceDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.match")
	defer teardown()
	//
	f := setup()
	shape := object.NewType("shape", nil)
	circle := object.NewType("circle", nil)
	circle.AddInterface(shape)
	proc := f.void.FuncType()
	draw := f.action(t, proc, object.DynamicActionName, f.sym("draw"), f.in(shape, "s"))
	f.action(t, proc, "CIRCLE_DRAW", f.sym("draw"), f.in(circle, "c"))
	f.action(t, proc, "SHAPE_AREA", f.sym("area"), f.in(shape, "s"))
	area := f.action(t, proc, "CIRCLE_AREA", f.sym("area"), f.in(circle, "c"))
	c := object.NewWithValue(object.StructObject, circle, object.NewStruct())
	result, err := f.m.MatchExpression(expr(f.sym("draw"), c))
	if err != nil {
		t.Fatal(err)
	}
	if result.List().Obj != draw {
		t.Errorf("expected dynamic interface function, have %v", result.List().Obj)
	}
	result, err = f.m.MatchExpression(expr(f.sym("area"), c))
	if err != nil {
		t.Fatal(err)
	}
	if result.List().Obj != area {
		t.Errorf("expected non-dynamic interface match to be discarded, have %v", result.List().Obj)
	}
	result, err = f.m.WithoutInterfaces().MatchExpression(expr(f.sym("draw"), c))
	if err != nil {
		t.Fatal(err)
	}
	if result.List().Obj == draw {
		t.Errorf("matcher without interfaces dispatched to interface function")
	}
}
