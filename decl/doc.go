/*
Package decl implements the declaration graph: a trie of nodes keyed by
symbols, attribute types and parameter types, with entities holding the owner
stacks of declared names.

A declaration's name is a pattern of symbols and formal parameters. The
pattern
    (in integer: a) + (in integer: b)
walks the trie along the keys

    other(integer) → symbol(+) → other(integer)

and the entity at the final node owns the declared object. Parameters
declared as 'inout' are keyed on the inout branch, attribute parameters
(attr T) on the attr branch.

Declaration levels nest lexically (push/pop) or speculatively (grow/shrink).
Closing a level destroys the objects declared at it and unshadows outer
declarations of the same names.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package decl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seed7.decl'.
func tracer() tracing.Trace {
	return tracing.Select("seed7.decl")
}
