/*
Package s7lang turns source text into unresolved expressions.

The scanner is built with lexmachine. It recognizes identifiers, special
symbols (sequences of operator characters such as ":=" or "<"), integer and
string literals, parentheses and the statement separator ';'. Comments start
with '#' and extend to the end of the line.

The parser does not know any syntax beyond grouping:

    a ( b c ) d          →  [a [b c] d]
    ( x )                →  x
    s1 ; s2 ; s3         →  [s1 ; [s2 ; s3]]

Everything else is left to the matcher, which resolves the token lists
against the declared name patterns. Tokens carry their source positions.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package s7lang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seed7.s7lang'.
func tracer() tracing.Trace {
	return tracing.Select("seed7.s7lang")
}
