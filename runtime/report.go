package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/ThomasMertes/seed7-sub008"
	"github.com/ThomasMertes/seed7-sub008/object"
)

// ErrorKind classifies diagnostics.
type ErrorKind int

// Kinds of diagnostics.
const (
	NoMatch           ErrorKind = iota + 1 // no declaration matches an expression
	ExprExpected                           // expression expected, found something else
	ActIllegal                             // calling something which cannot be called
	WrongAccessRight                       // constant actual bound to an inout parameter
	DeclaredTwice                          // name declared twice at the same level
	Memory                                 // heap exhausted
	ParamExpected                          // formal parameter expected in a name
	LevelMismatch                          // push/pop or grow/shrink not paired
	UncaughtException                      // exception propagated to the top
	Syntax                                 // source text not well-formed
)

var kindNames = map[ErrorKind]string{
	NoMatch:           "no match",
	ExprExpected:      "expression expected",
	ActIllegal:        "illegal action",
	WrongAccessRight:  "wrong access right",
	DeclaredTwice:     "declared twice",
	Memory:            "out of memory",
	ParamExpected:     "parameter expected",
	LevelMismatch:     "declaration level mismatch",
	UncaughtException: "uncaught exception",
	Syntax:            "syntax error",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("error(%d)", int(k))
}

// Diagnostic is an error found during declaration, matching or execution.
type Diagnostic struct {
	Kind    ErrorKind
	Msg     string
	Objects []*object.Object // offending objects, e.g. call and argument
	Pos     seed7.Pos
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	if !d.Pos.IsNull() {
		b.WriteString(d.Pos.String())
		b.WriteString(": ")
	}
	b.WriteString(d.Kind.String())
	if d.Msg != "" {
		b.WriteString(": ")
		b.WriteString(d.Msg)
	}
	return b.String()
}

// NewDiagnostic creates a diagnostic. The position is taken from the first
// object carrying one.
func NewDiagnostic(kind ErrorKind, msg string, objs ...*object.Object) *Diagnostic {
	d := &Diagnostic{Kind: kind, Msg: msg, Objects: objs}
	for _, o := range objs {
		if o != nil && !o.Pos().IsNull() {
			d.Pos = o.Pos()
			break
		}
	}
	return d
}

// IsKind checks whether err is a diagnostic of a given kind.
func IsKind(err error, kind ErrorKind) bool {
	var d *Diagnostic
	return errors.As(err, &d) && d.Kind == kind
}

// Reporter is a sink for diagnostics. Reporting does not abort; callers
// decide whether to continue.
type Reporter interface {
	Report(d *Diagnostic)
}

// Report traces a diagnostic and hands it to the reporter.
func (rt *Runtime) Report(d *Diagnostic) *Diagnostic {
	tracer().Errorf("%s", d.Error())
	if rt.Reporter != nil {
		rt.Reporter.Report(d)
	}
	return d
}

// Collector is a reporter collecting diagnostics.
type Collector struct {
	Diagnostics []*Diagnostic
	kinds       *treeset.Set
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{kinds: treeset.NewWith(utils.IntComparator)}
}

// Report is part of interface Reporter.
func (c *Collector) Report(d *Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
	c.kinds.Add(int(d.Kind))
}

// Count returns the number of diagnostics collected.
func (c *Collector) Count() int {
	return len(c.Diagnostics)
}

// Kinds returns the distinct kinds reported, in ascending order.
func (c *Collector) Kinds() []ErrorKind {
	kinds := make([]ErrorKind, 0, c.kinds.Size())
	for _, k := range c.kinds.Values() {
		kinds = append(kinds, ErrorKind(k.(int)))
	}
	return kinds
}

// Last returns the most recent diagnostic, or nil.
func (c *Collector) Last() *Diagnostic {
	if len(c.Diagnostics) == 0 {
		return nil
	}
	return c.Diagnostics[len(c.Diagnostics)-1]
}

// Summary lists the number of diagnostics per kind.
func (c *Collector) Summary() string {
	counts := make(map[ErrorKind]int)
	for _, d := range c.Diagnostics {
		counts[d.Kind]++
	}
	var parts []string
	for _, k := range c.Kinds() {
		parts = append(parts, fmt.Sprintf("%s: %d", k, counts[k]))
	}
	return strings.Join(parts, ", ")
}

// Reset drops all diagnostics.
func (c *Collector) Reset() {
	c.Diagnostics = nil
	c.kinds.Clear()
}
