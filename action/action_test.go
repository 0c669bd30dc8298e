package action

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ThomasMertes/seed7-sub008/exec"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

func setup() (*runtime.Runtime, *exec.Executor, *Table, *Env) {
	rt := runtime.NewRuntimeEnvironment(runtime.BaseOptions())
	boolean := object.NewType("boolean", nil)
	env := &Env{
		Integer: object.NewType("integer", nil),
		Boolean: boolean,
		String:  object.NewType("string", nil),
		Type:    object.NewType("type", nil),
		Symbol:  object.NewType("symbol", nil),
		FParam:  object.NewType("f_param", nil),
		True:    object.NewWithValue(object.EnumLiteralObject, boolean, int64(1)),
		False:   object.NewWithValue(object.EnumLiteralObject, boolean, int64(0)),
	}
	t := NewTable()
	RegisterStd(t, env)
	return rt, exec.New(rt, nil), t, env
}

func call(t *testing.T, table *Table, ev object.Evaluator, name string, args ...*object.Object) *object.Object {
	act, ok := table.Lookup(name)
	if !ok {
		t.Fatalf("primitive %s not registered", name)
	}
	return act.Fn(ev, object.NewList(args...))
}

func integer(env *Env, i int64) *object.Object {
	return object.NewWithValue(object.IntObject, env.Integer, i)
}

// primitive wraps a Go function as a parameterless action object.
func primitive(fn object.ActionFunc) *object.Object {
	return object.NewWithValue(object.ActObject, nil, &object.Action{Name: "TEST", Fn: fn})
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.action")
	defer teardown()
	//
	table := NewTable()
	table.Register("B", nil)
	table.Register("A", nil)
	table.Register("C", nil)
	names := table.Names()
	if len(names) != 3 || names[0] != "A" || names[2] != "C" {
		t.Errorf("expected sorted names, have %v", names)
	}
	if _, ok := table.Lookup("D"); ok {
		t.Errorf("lookup of unregistered name succeeded")
	}
	table.Register("A", nil)
	if table.Size() != 3 {
		t.Errorf("re-registration should replace, size is %d", table.Size())
	}
}

func TestIntegerArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.action")
	defer teardown()
	//
	rt, ex, table, env := setup()
	sum := call(t, table, ex, "INT_ADD", integer(env, 2), integer(env, 3))
	if sum.Int() != 5 || !sum.IsTemp() || sum.Type != env.Integer {
		t.Errorf("expected TEMP integer 5, have %v", sum)
	}
	if !env.IsTrue(call(t, table, ex, "INT_LT", integer(env, 2), integer(env, 3))) {
		t.Errorf("expected 2 < 3")
	}
	call(t, table, ex, "INT_DIV", integer(env, 1), integer(env, 0))
	if !rt.Failing() || rt.FailValue() != rt.Exception("NUMERIC_ERROR") {
		t.Errorf("expected NUMERIC_ERROR, have %v", rt.FailValue())
	}
	rt.ResetFail()
	call(t, table, ex, "INT_ADD", integer(env, math.MaxInt64), integer(env, 1))
	if rt.FailValue() != rt.Exception("OVERFLOW_ERROR") {
		t.Errorf("expected OVERFLOW_ERROR, have %v", rt.FailValue())
	}
	rt.ResetFail()
	call(t, table, ex, "INT_MULT", integer(env, -1), integer(env, math.MinInt64))
	if rt.FailValue() != rt.Exception("OVERFLOW_ERROR") {
		t.Errorf("expected OVERFLOW_ERROR, have %v", rt.FailValue())
	}
}

func TestIntegerParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.action")
	defer teardown()
	//
	rt, ex, table, env := setup()
	s := object.NewWithValue(object.StriObject, env.String, "42")
	if i := call(t, table, ex, "INT_PARSE", env.Integer.MatchObj, s); i == nil || i.Int() != 42 {
		t.Errorf("expected 42, have %v", i)
	}
	s = object.NewWithValue(object.StriObject, env.String, "forty-two")
	call(t, table, ex, "INT_PARSE", env.Integer.MatchObj, s)
	if rt.FailValue() != rt.Exception("RANGE_ERROR") {
		t.Errorf("expected RANGE_ERROR, have %v", rt.FailValue())
	}
}

func TestWhileEvaluatesConditionByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.action")
	defer teardown()
	//
	_, ex, table, env := setup()
	n, runs := 0, 0
	cond := primitive(func(ev object.Evaluator, args *object.List) *object.Object {
		n++
		return env.Bool(n <= 3)
	})
	body := primitive(func(ev object.Evaluator, args *object.List) *object.Object {
		runs++
		return nil
	})
	call(t, table, ex, "PRC_WHILE", cond, body)
	if n != 4 || runs != 3 {
		t.Errorf("expected 4 evaluations of the condition and 3 runs, have %d and %d", n, runs)
	}
}

func TestBlockCatchesMatchingException(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.action")
	defer teardown()
	//
	rt, ex, table, _ := setup()
	raising := func(name string) *object.Object {
		return primitive(func(ev object.Evaluator, args *object.List) *object.Object {
			ev.RaiseException(name)
			return nil
		})
	}
	handled := false
	handler := primitive(func(ev object.Evaluator, args *object.List) *object.Object {
		handled = true
		return nil
	})
	call(t, table, ex, "PRC_BLOCK", raising("RANGE_ERROR"), rt.Exception("RANGE_ERROR"), handler)
	if rt.Failing() || !handled {
		t.Errorf("exception not caught")
	}
	handled = false
	call(t, table, ex, "PRC_BLOCK", raising("INDEX_ERROR"), rt.Exception("RANGE_ERROR"), handler)
	if !rt.Failing() || handled || rt.FailValue() != rt.Exception("INDEX_ERROR") {
		t.Errorf("exception of a different kind must propagate")
	}
	rt.ResetFail()
	call(t, table, ex, "PRC_BLOCK_CATCH_ALL", raising("INDEX_ERROR"), handler)
	if rt.Failing() || !handled {
		t.Errorf("exception not caught by catch-all block")
	}
}

func TestParameterDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.action")
	defer teardown()
	//
	rt, ex, table, env := setup()
	ent := object.NewEntity("x")
	name := object.New(object.SymbolObject, env.Symbol)
	name.SetProperty(&object.Property{Entity: ent})
	fp := call(t, table, ex, "DCL_INOUT", env.Integer.MatchObj, name)
	if fp == nil || fp.Category() != object.FormParamObject || !fp.IsTemp() {
		t.Fatalf("expected TEMP formal parameter, have %v", fp)
	}
	p := fp.Obj()
	if p.Category() != object.RefParamObject || !p.IsVar() || p.Entity() != ent || p.Type != env.Integer {
		t.Errorf("unexpected parameter %v", p)
	}
	call(t, table, ex, "DCL_IN", env.Integer.MatchObj, integer(env, 1))
	if rt.FailValue() != rt.Exception("ACTION_ERROR") {
		t.Errorf("expected ACTION_ERROR for a parameter name which is no symbol")
	}
	rt.ResetFail()
	if f := call(t, table, ex, "TYP_FUNC", env.Integer.MatchObj); f.TypeValue() != env.Integer.FuncType() {
		t.Errorf("expected func integer, have %v", f)
	}
}
