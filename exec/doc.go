/*
Package exec walks resolved call trees.

A CALLOBJECT is executed eagerly: its actual parameters are evaluated left to
right, then the callee is invoked. A MATCHOBJECT is passed by name; it is
evaluated only when a primitive asks for it (see Executor.Evaluate), which
is how conditions and bodies of loops are implemented.

Exceptions are a sticky fail state of the runtime. After every
sub-evaluation the executor checks the fail state and stops doing normal
work, while parameter unbinding and the destruction of locals and
temporaries always take place.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seed7.exec'.
func tracer() tracing.Trace {
	return tracing.Select("seed7.exec")
}
