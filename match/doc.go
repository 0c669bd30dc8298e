/*
Package match resolves expressions against the declaration trie.

An unresolved expression (EXPROBJECT) is a list of tokens. The matcher walks
the trie one token per level, trying branches in a fixed order: the symbol
branch first, then attribute types, then parameter types ordered by the
variability of the token. The first branch which leads to a declared object
wins; there is no ambiguity detection.

A successful match re-tags the expression in place: it becomes a CALLOBJECT
or, if the callee yields a value, a MATCHOBJECT, with the callee as head and
the actual parameters as tail. Structural non-match inside the recursion is
not an error. Only MatchExpression turns a total failure into a diagnostic.

Matching runs in two passes. The first pass binds constants only to by-value
parameters. If it fails, a second pass also binds constants to inout
parameters; if that succeeds, the access rights of the result are audited,
yielding a WrongAccessRight diagnostic instead of NoMatch.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seed7.match'.
func tracer() tracing.Trace {
	return tracing.Select("seed7.match")
}
