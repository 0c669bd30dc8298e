/*
Package interp assembles the interpreter core into a program: a runtime
environment, a declaration trie, a matcher, an executor and the table of
primitive actions.

A new program is bootstrapped with the basic types (type, integer, boolean,
string, proc, ...), the predefined exceptions, the boolean literals, and
declarations of the standard primitives, e.g.

    (in integer: a) + (in integer: b)         INT_ADD
    while (in func boolean: c) do (in proc: s) end while    PRC_WHILE
    in (in type: t) : (in symbol: name)       DCL_IN

Clients declare further names with the Declare* methods and run expressions
with Analyze and Execute. Expressions are given as trees of tokens, as
produced by package s7lang or built with the helpers of Program.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seed7.interp'.
func tracer() tracing.Trace {
	return tracing.Select("seed7.interp")
}
