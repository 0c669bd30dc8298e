package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ThomasMertes/seed7-sub008/interp"
	"github.com/ThomasMertes/seed7-sub008/runtime"
	"github.com/ThomasMertes/seed7-sub008/s7lang"
)

func newIntp(t *testing.T) (*Intp, *[]string) {
	prog, err := interp.New("repl-test", runtime.BaseOptions())
	if err != nil {
		t.Fatal(err)
	}
	var out []string
	return &Intp{prog: prog, out: func(s string) { out = append(out, s) }}, &out
}

func TestEvalStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.repl")
	defer teardown()
	//
	intp, out := newIntp(t)
	for _, line := range []string{
		"var integer : i is 3",
		"const string : s is (\"a\" & \"b\")",
		"i := (i * 4)",
		"i",
		"s",
		"i < 20",
	} {
		if _, err := intp.Eval(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	expected := []string{"12", `"ab"`, "TRUE"}
	if strings.Join(*out, " ") != strings.Join(expected, " ") {
		t.Errorf("expected output %v, have %v", expected, *out)
	}
}

func TestEvalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.repl")
	defer teardown()
	//
	intp, _ := newIntp(t)
	if _, err := intp.Eval("var integer : x is \"no\""); err == nil {
		t.Errorf("expected type mismatch in declaration")
	}
	if _, err := intp.Eval("var nothing : x is 1"); err == nil {
		t.Errorf("expected unknown type in declaration")
	}
	if _, err := intp.Eval("1 div 0"); !runtime.IsKind(err, runtime.UncaughtException) {
		t.Errorf("expected uncaught exception, have %v", err)
	}
	if _, err := intp.Eval(":frobnicate"); err == nil {
		t.Errorf("expected unknown command")
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}

func TestDeclarationsListed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.repl")
	defer teardown()
	//
	intp, out := newIntp(t)
	if _, err := intp.Eval(":decls"); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, d := range *out {
		if strings.HasPrefix(d, "integer ") {
			found = true
		}
	}
	if !found {
		t.Errorf("type integer not listed in %v", *out)
	}
}

func TestCallTreeLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.repl")
	defer teardown()
	//
	intp, _ := newIntp(t)
	expr, err := s7lang.Parse(intp.prog, "", "1 + (2 * 3)")
	if err != nil {
		t.Fatal(err)
	}
	resolved, err := intp.prog.Analyze(expr)
	if err != nil {
		t.Fatal(err)
	}
	ll := intp.leveledCall(resolved, nil, 0)
	levels := []int{0, 1, 1, 2, 2}
	if len(ll) != len(levels) {
		t.Fatalf("expected %d tree items, have %v", len(levels), ll)
	}
	for i, l := range levels {
		if ll[i].Level != l {
			t.Errorf("item %d: expected level %d, have %d", i, l, ll[i].Level)
		}
	}
	if ll[1].Text != "1" || ll[3].Text != "2" {
		t.Errorf("unexpected leaves %v", ll)
	}
}

func TestConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.repl")
	defer teardown()
	//
	name := filepath.Join(t.TempDir(), "s7repl.yaml")
	yml := "trace: Debug\nno-interface-dispatch: true\ntrace-actions: true\nmax-dynamic-depth: 50\n"
	if err := os.WriteFile(name, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	opts := c.Options(runtime.BaseOptions())
	if c.Trace != "Debug" || opts.InterfaceDispatch || !opts.TraceActions || opts.MaxDynamicDepth != 50 {
		t.Errorf("configuration not applied: %+v, %+v", c, opts)
	}
	if !opts.CheckInterrupt {
		t.Errorf("interrupt checks disabled without being configured")
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing config file")
	}
}
