/*
Package action holds the table of primitive actions and a small standard
library of primitives.

Primitives are registered under stable names, e.g. "INT_ADD". A declaration
refers to a primitive by name; the interpreter looks the name up when the
declared object is initialized. Primitives receive their arguments
evaluated, with the exception of parameters of function type, which are
passed by name and evaluated by the primitive through the Evaluator.

The standard library covers what the interpreter core needs to run
non-trivial programs: integer and string operations, conditionals, loops,
statement sequences, exceptions, function types and the declaration of
formal parameters.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package action

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seed7.action'.
func tracer() tracing.Trace {
	return tracing.Select("seed7.action")
}
