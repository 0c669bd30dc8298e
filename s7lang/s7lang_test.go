package s7lang

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ThomasMertes/seed7-sub008/interp"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

func TestScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.s7lang")
	defer teardown()
	//
	toks, err := Scan("t.sd7", "x := (x + 12); # count\nwriteln(\"a b\")", nil)
	if err != nil {
		t.Fatal(err)
	}
	kinds := []TokKind{Ident, Special, LParen, Ident, Special, Number, RParen, Semicolon,
		Ident, LParen, String, RParen}
	if len(toks) != len(kinds) {
		t.Fatalf("expected %d tokens, have %v", len(kinds), toks)
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected %s, have %v", i, k, toks[i])
		}
	}
	if toks[1].Lexeme != ":=" {
		t.Errorf("expected ':=' as one symbol, have %q", toks[1].Lexeme)
	}
	if w := toks[8]; w.Pos.Line != 2 || w.Pos.Column.From() != 1 {
		t.Errorf("expected 'writeln' at 2:1, have %v", w.Pos)
	}
}

func TestScanError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.s7lang")
	defer teardown()
	//
	var errs int
	toks, err := Scan("", "a { b", func(error) { errs++ })
	if err != nil {
		t.Fatal(err)
	}
	if errs != 1 || len(toks) != 2 {
		t.Errorf("expected 1 error and 2 tokens, have %d and %v", errs, toks)
	}
}

func setup(t *testing.T) *interp.Program {
	p, err := interp.New("test", runtime.BaseOptions())
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParseGrouping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.s7lang")
	defer teardown()
	//
	p := setup(t)
	tree, err := Parse(p, "", "a (b c) ((d))")
	if err != nil {
		t.Fatal(err)
	}
	if tree.Category() != object.ExprObject || tree.List().Len() != 3 {
		t.Fatalf("expected expression of 3 elements, have %v", tree)
	}
	if inner := tree.List().Nth(1); inner.Category() != object.ExprObject || inner.List().Len() != 2 {
		t.Errorf("expected (b c) as nested expression, have %v", inner)
	}
	if d := tree.List().Nth(2); d.Category() != object.SymbolObject {
		t.Errorf("expected ((d)) to unwrap to a symbol, have %v", d)
	}
}

func TestParseSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.s7lang")
	defer teardown()
	//
	p := setup(t)
	tree, err := Parse(p, "", "a; b; c;")
	if err != nil {
		t.Fatal(err)
	}
	l := tree.List()
	if l == nil || l.Len() != 3 || l.Nth(0).Entity().Name != "a" {
		t.Fatalf("expected [a ; [b ; c]], have %v", tree)
	}
	rest := l.Nth(2)
	if rest.Category() != object.ExprObject || rest.List().Nth(2).Entity().Name != "c" {
		t.Errorf("expected sequence nested to the right, have %v", tree)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.s7lang")
	defer teardown()
	//
	p := setup(t)
	for _, src := range []string{"(a b", "a )", "", "a ;; b", "99999999999999999999"} {
		if _, err := Parse(p, "", src); !runtime.IsKind(err, runtime.Syntax) {
			t.Errorf("%q: expected syntax error, have %v", src, err)
		}
	}
}

func TestRunParsedProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.s7lang")
	defer teardown()
	//
	p := setup(t)
	if _, err := p.DeclareVar(p.Sym("i"), p.Int(0)); err != nil {
		t.Fatal(err)
	}
	if _, err := p.DeclareVar(p.Sym("s"), p.Int(0)); err != nil {
		t.Fatal(err)
	}
	src := `
		# sum of 1..4
		while (i < 4) do (
			i := (i + 1);
			s := (s + i)
		) end while`
	tree, err := Parse(p, "sum.sd7", src)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Run(tree); err != nil {
		t.Fatal(err)
	}
	if s := p.Decls.LookupName(p.Sym("s")); s.Int() != 10 {
		t.Errorf("expected s = 10, have %v", s)
	}
}
