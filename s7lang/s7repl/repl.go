package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"golang.org/x/exp/slices"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/ThomasMertes/seed7-sub008/interp"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
	"github.com/ThomasMertes/seed7-sub008/s7lang"
)

// main() starts an interactive CLI, where users may enter statements. Each
// statement is analyzed and executed, and its result is printed.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	configf := flag.String("config", "", "Configuration file (YAML)")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to S7REPL")
	//
	config, err := loadConfig(*configf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	if config.Trace != "" && !isFlagSet("trace") {
		*tlevel = config.Trace
	}
	if *initf == "" {
		*initf = config.Init
	}
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevel(traceLevel(*tlevel))
	//
	prog, err := interp.New("s7repl", config.Options(runtime.DefaultOptions()))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	defer prog.Close()
	repl, err := readline.New("s7> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{prog: prog, repl: repl}
	intp.catchInterrupts()
	//
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(*initf)
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"seed7.repl", "seed7.interp", "seed7.exec", "seed7.match",
		"seed7.decl", "seed7.memory", "seed7.runtime", "seed7.action", "seed7.s7lang", "seed7.object"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// Intp is our interpreter object.
type Intp struct {
	prog *interp.Program
	repl *readline.Instance
	out  func(string) // prints results; defaults to pterm.Info
}

// catchInterrupts turns SIGINT into an interrupt request of the runtime. The
// running statement is stopped with an exception the next time a primitive
// is called.
func (intp *Intp) catchInterrupts() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		for range sigs {
			intp.prog.RT.RequestInterrupt()
		}
	}()
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			if _, err := intp.Eval(line); err != nil {
				tracer().Errorf("Error line %d: %v", lineno, err)
			}
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

func (intp *Intp) println(s string) {
	if intp.out != nil {
		intp.out(s)
		return
	}
	pterm.Info.Println(s)
}

// Eval evaluates a line of input, which may be a command or a statement.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		cmd := strings.Fields(line)[0]
		arg := strings.TrimSpace(strings.TrimPrefix(line, cmd))
		switch cmd {
		case ":quit", ":q":
			return true, nil
		case ":decls":
			for _, d := range intp.declarations() {
				intp.println(d)
			}
			return false, nil
		case ":stats":
			intp.println(intp.prog.RT.Stats.String())
			return false, nil
		case ":tree":
			return false, intp.tree(arg)
		}
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	tree, err := s7lang.Parse(intp.prog, "", line)
	if err != nil {
		return false, err
	}
	if kind, typ, name, value, ok := declaration(tree); ok {
		return false, intp.declare(kind, typ, name, value)
	}
	result, err := intp.prog.Run(tree)
	if err != nil {
		return false, err
	}
	if result != nil && result.Type != intp.prog.Types.Void {
		intp.println(intp.display(result))
	}
	intp.prog.Release(result)
	return false, nil
}

// declaration splits 'var T : name is value' and 'const T : name is value'.
func declaration(tree *object.Object) (kind string, typ, name, value *object.Object, ok bool) {
	if tree.Category() != object.ExprObject {
		return
	}
	items := tree.List().Objects()
	if len(items) < 6 || !isSymbol(items[1]) || !isSymbol(items[3]) {
		return
	}
	kind = items[0].Name()
	if (kind != "var" && kind != "const") || items[2].Name() != ":" || items[4].Name() != "is" {
		return
	}
	value = items[5]
	if len(items) > 6 {
		value = object.New(object.ExprObject, nil)
		value.SetList(object.NewList(items[5:]...))
	}
	return kind, items[1], items[3], value, true
}

func isSymbol(obj *object.Object) bool {
	return obj != nil && obj.Category() == object.SymbolObject
}

func (intp *Intp) declare(kind string, typ, name, value *object.Object) error {
	p := intp.prog
	tobj := p.Decls.LookupName(typ)
	if tobj == nil || tobj.TypeValue() == nil {
		return fmt.Errorf("%s is not a type", typ.Name())
	}
	t := tobj.TypeValue()
	v, err := p.Run(value)
	if err != nil {
		return err
	}
	defer p.Release(v)
	if v == nil || v.Type != t {
		return fmt.Errorf("value of %s is not of type %s", name.Name(), t.Name)
	}
	if kind == "const" {
		_, err = p.DeclareConst(name, v)
	} else {
		_, err = p.DeclareVar(name, v)
	}
	return err
}

// declarations lists the visible declarations, sorted by name.
func (intp *Intp) declarations() []string {
	var decls []string
	for _, ent := range intp.prog.Decls.Entities() {
		obj := ent.Object()
		if obj == nil {
			continue
		}
		name := ent.Name
		if ent.FParams != nil {
			name = ent.FParams.String()
		}
		decls = append(decls, fmt.Sprintf("%-30s %s", name, obj))
	}
	slices.Sort(decls)
	return decls
}

func (intp *Intp) tree(src string) error {
	expr, err := s7lang.Parse(intp.prog, "", src)
	if err != nil {
		return err
	}
	resolved, err := intp.prog.Analyze(expr)
	if err != nil {
		return err
	}
	ll := intp.leveledCall(resolved, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	return nil
}

// leveledCall flattens a resolved call tree: a call shows its callee, with
// the arguments one level deeper.
func (intp *Intp) leveledCall(obj *object.Object, ll pterm.LeveledList, level int) pterm.LeveledList {
	if obj == nil {
		return append(ll, pterm.LeveledListItem{Level: level, Text: "nil"})
	}
	switch obj.Category() {
	case object.CallObject, object.MatchObject:
		l := obj.List()
		if l == nil || l.Obj == nil {
			break
		}
		if l.Next == nil && l.Obj.Category().IsCall() { // value wrapper
			return intp.leveledCall(l.Obj, ll, level)
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: intp.display(l.Obj)})
		for args := l.Next; args != nil; args = args.Next {
			ll = intp.leveledCall(args.Obj, ll, level+1)
		}
		return ll
	}
	return append(ll, pterm.LeveledListItem{Level: level, Text: intp.display(obj)})
}

func (intp *Intp) display(obj *object.Object) string {
	if obj == nil {
		return "nil"
	}
	switch obj.Category() {
	case object.IntObject:
		return fmt.Sprintf("%d", obj.Int())
	case object.StriObject:
		return fmt.Sprintf("%q", obj.Stri())
	case object.EnumLiteralObject:
		if obj.Type == intp.prog.Types.Boolean {
			if intp.prog.Env.IsTrue(obj) {
				return "TRUE"
			}
			return "FALSE"
		}
	}
	return obj.String()
}
