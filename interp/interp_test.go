package interp

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

func setup(t *testing.T) *Program {
	p, err := New("test", runtime.BaseOptions())
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// dcl builds the parameter declaration 'kind typ : name' as an expression.
func (p *Program) dcl(kind, typ, name string) *object.Object {
	return p.Expr(p.Sym(kind), p.Sym(typ), p.Sym(":"), p.Sym(name))
}

func (p *Program) lookup(name string) *object.Object {
	return p.Decls.LookupName(p.Sym(name))
}

func TestBootstrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.interp")
	defer teardown()
	//
	p := setup(t)
	for _, name := range []string{"integer", "boolean", "proc", "TRUE", "RANGE_ERROR", "noop"} {
		if p.lookup(name) == nil {
			t.Errorf("'%s' not declared", name)
		}
	}
	if c := p.RT.Reporter.(*runtime.Collector); c.Count() != 0 {
		t.Errorf("bootstrap reported %s", c.Summary())
	}
}

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.interp")
	defer teardown()
	//
	p := setup(t)
	result, err := p.Run(p.Expr(p.Int(6), p.Sym("*"), p.Expr(p.Int(3), p.Sym("+"), p.Int(4))))
	if err != nil {
		t.Fatal(err)
	}
	if result.Int() != 42 || !result.IsTemp() {
		t.Errorf("expected TEMP 42, have %v", result)
	}
	p.Release(result)
	result, err = p.Run(p.Expr(p.Sym("integer"), p.Sym("parse"), p.Str("17")))
	if err != nil || result.Int() != 17 {
		t.Errorf("expected 17, have %v, %v", result, err)
	}
	p.Release(result)
	result, err = p.Run(p.Expr(p.Sym("str"), p.Int(5)))
	if err != nil || result.Stri() != "5" {
		t.Errorf("expected \"5\", have %v, %v", result, err)
	}
	p.Release(result)
}

func TestRecursiveFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.interp")
	defer teardown()
	//
	p := setup(t)
	n := p.Sym("n")
	body := p.Expr(p.Sym("if"), p.Expr(n, p.Sym("<"), p.Int(2)), p.Sym("then"),
		p.Expr(p.Sym("result"), p.Sym(":="), p.Int(1)),
		p.Sym("else"),
		p.Expr(p.Sym("result"), p.Sym(":="),
			p.Expr(p.Sym("n"), p.Sym("*"), p.Expr(p.Sym("fact"), p.Expr(p.Sym("n"), p.Sym("-"), p.Int(1))))),
		p.Sym("end"), p.Sym("if"))
	_, err := p.DeclareFunc(p.Expr(p.Sym("fact"), p.dcl("in", "integer", "n")), p.Types.Integer.FuncType(),
		FuncDef{Result: p.Int(0), Body: body})
	if err != nil {
		t.Fatal(err)
	}
	if p.lookup("n") != nil || p.lookup("result") != nil {
		t.Errorf("parameters of a function visible after its declaration")
	}
	result, err := p.Run(p.Expr(p.Sym("fact"), p.Int(5)))
	if err != nil {
		t.Fatal(err)
	}
	if result.Int() != 120 {
		t.Errorf("expected 120, have %v", result)
	}
	p.Release(result)
	if p.RT.Stats.DoubleFrees != 0 {
		t.Errorf("%d double frees", p.RT.Stats.DoubleFrees)
	}
}

func TestWhileLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.interp")
	defer teardown()
	//
	p := setup(t)
	if _, err := p.DeclareVar(p.Sym("i"), p.Int(0)); err != nil {
		t.Fatal(err)
	}
	loop := p.Expr(p.Sym("while"), p.Expr(p.Sym("i"), p.Sym("<"), p.Int(5)), p.Sym("do"),
		p.Expr(p.Sym("i"), p.Sym(":="), p.Expr(p.Sym("i"), p.Sym("+"), p.Int(1))),
		p.Sym("end"), p.Sym("while"))
	if _, err := p.Run(loop); err != nil {
		t.Fatal(err)
	}
	if i := p.lookup("i"); i.Int() != 5 {
		t.Errorf("expected i = 5, have %v", i)
	}
}

func TestUncaughtException(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.interp")
	defer teardown()
	//
	p := setup(t)
	_, err := p.Run(p.Expr(p.Int(1), p.Sym("div"), p.Int(0)))
	if !runtime.IsKind(err, runtime.UncaughtException) {
		t.Errorf("expected uncaught exception, have %v", err)
	}
	if p.RT.Failing() {
		t.Errorf("fail state not cleared after uncaught exception")
	}
}

func TestCatchException(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.interp")
	defer teardown()
	//
	p := setup(t)
	if _, err := p.DeclareVar(p.Sym("caught"), p.Int(0)); err != nil {
		t.Fatal(err)
	}
	stmt := p.Expr(p.Sym("block"), p.Expr(p.Sym("raise"), p.Sym("RANGE_ERROR")),
		p.Sym("exception"), p.Sym("catch"), p.Sym("RANGE_ERROR"), p.Sym(":"),
		p.Expr(p.Sym("caught"), p.Sym(":="), p.Int(1)),
		p.Sym("end"), p.Sym("block"))
	if _, err := p.Run(stmt); err != nil {
		t.Fatal(err)
	}
	if p.lookup("caught").Int() != 1 {
		t.Errorf("handler not executed")
	}
	stmt = p.Expr(p.Sym("block"), p.Expr(p.Sym("raise"), p.Sym("INDEX_ERROR")),
		p.Sym("exception"), p.Sym("catch"), p.Sym("RANGE_ERROR"), p.Sym(":"),
		p.Sym("noop"), p.Sym("end"), p.Sym("block"))
	if _, err := p.Run(stmt); !runtime.IsKind(err, runtime.UncaughtException) {
		t.Errorf("expected INDEX_ERROR to propagate, have %v", err)
	}
}

func TestConstantAssignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.interp")
	defer teardown()
	//
	p := setup(t)
	if _, err := p.DeclareConst(p.Sym("c"), p.Int(3)); err != nil {
		t.Fatal(err)
	}
	_, err := p.Analyze(p.Expr(p.Sym("c"), p.Sym(":="), p.Int(4)))
	if !runtime.IsKind(err, runtime.WrongAccessRight) {
		t.Errorf("expected wrong access right, have %v", err)
	}
}

func TestForwardDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.interp")
	defer teardown()
	//
	p := setup(t)
	intFunc := p.Types.Integer.FuncType()
	fwd, err := p.Forward(p.Expr(p.Sym("twice"), p.dcl("in", "integer", "x")), intFunc)
	if err != nil {
		t.Fatal(err)
	}
	body := p.Expr(p.Sym("x"), p.Sym("+"), p.Sym("x"))
	obj, err := p.DeclareFunc(p.Expr(p.Sym("twice"), p.dcl("in", "integer", "x")), intFunc, FuncDef{Body: body})
	if err != nil {
		t.Fatal(err)
	}
	if obj != fwd || obj.Category() != object.BlockObject {
		t.Errorf("forward declaration not resolved in place")
	}
	result, err := p.Run(p.Expr(p.Sym("twice"), p.Int(4)))
	if err != nil || result.Int() != 8 {
		t.Errorf("expected 8, have %v, %v", result, err)
	}
	p.Release(result)
}

func TestClose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.interp")
	defer teardown()
	//
	p := setup(t)
	if _, err := p.DeclareVar(p.Sym("s"), p.Str("abc")); err != nil {
		t.Fatal(err)
	}
	s := p.lookup("s")
	p.Close()
	if !s.IsFreed() || p.RT.Levels.Depth() != -1 {
		t.Errorf("declarations not destroyed on close")
	}
	if p.RT.Stats.DoubleFrees != 0 {
		t.Errorf("%d double frees on close", p.RT.Stats.DoubleFrees)
	}
}

func TestActualsEvaluatedBeforeBinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.interp")
	defer teardown()
	//
	p := setup(t)
	// f a with b: if a < 1 then b else f (a - 1) with a
	body := p.Expr(p.Sym("if"), p.Expr(p.Sym("a"), p.Sym("<"), p.Int(1)), p.Sym("then"),
		p.Expr(p.Sym("result"), p.Sym(":="), p.Sym("b")),
		p.Sym("else"),
		p.Expr(p.Sym("result"), p.Sym(":="),
			p.Expr(p.Sym("f"), p.Expr(p.Sym("a"), p.Sym("-"), p.Int(1)), p.Sym("with"), p.Sym("a"))),
		p.Sym("end"), p.Sym("if"))
	nameExpr := p.Expr(p.Sym("f"), p.dcl("in", "integer", "a"), p.Sym("with"), p.dcl("in", "integer", "b"))
	if _, err := p.DeclareFunc(nameExpr, p.Types.Integer.FuncType(), FuncDef{Result: p.Int(0), Body: body}); err != nil {
		t.Fatal(err)
	}
	result, err := p.Run(p.Expr(p.Sym("f"), p.Int(2), p.Sym("with"), p.Int(99)))
	if err != nil {
		t.Fatal(err)
	}
	if result.Int() != 1 {
		t.Errorf("expected 1, have %v", result)
	}
	p.Release(result)
	if p.RT.Stats.DoubleFrees != 0 {
		t.Errorf("%d double frees", p.RT.Stats.DoubleFrees)
	}
}
