package interp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/ThomasMertes/seed7-sub008/memory"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// Analyze resolves an expression against the current declarations.
func (p *Program) Analyze(expr *object.Object) (*object.Object, error) {
	return p.Matcher.MatchExpression(expr)
}

// Execute evaluates a resolved expression. An exception which is not caught
// is reported as an UncaughtException diagnostic and the fail state is
// cleared, so that the program may continue with the next statement.
//
// The result is TEMP if it has been created by the evaluation; clients
// release it with Release.
func (p *Program) Execute(resolved *object.Object) (*object.Object, error) {
	rt := p.RT
	result := p.Exec.Evaluate(resolved)
	if !rt.Failing() {
		return result, nil
	}
	fail := rt.Fail()
	rt.ResetFail()
	if result != nil && result.IsTemp() {
		memory.DumpAnyTemp(rt, result)
	}
	var at []*object.Object
	if fail.Expr != nil {
		at = append(at, fail.Expr)
	}
	return nil, rt.Report(runtime.NewDiagnostic(runtime.UncaughtException,
		fmt.Sprintf("uncaught exception %s", fail.Value.Name()), at...))
}

// Run analyzes and executes an expression.
func (p *Program) Run(expr *object.Object) (*object.Object, error) {
	resolved, err := p.Analyze(expr)
	if err != nil {
		return nil, err
	}
	return p.Execute(resolved)
}

// Release releases a result returned by Execute or Run.
func (p *Program) Release(result *object.Object) {
	p.Exec.Release(result)
}

// Close closes all declaration levels, destroying every declared object,
// and releases the program object.
func (p *Program) Close() {
	p.Decls.CloseAll()
	if p.RT.Prog != nil {
		memory.DumpAnyTemp(p.RT, p.RT.Prog)
		p.RT.Prog = nil
	}
	tracer().Infof("closed: %s", p.RT.Stats)
}
