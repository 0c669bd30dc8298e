/*
Package memory builds and destroys objects.

Primitive actions manufacture their results with BuildTemp. A TEMP result is
owned by the evaluation which consumes it: it is either adopted into a
persistent binding or released with ReleaseTemp or DumpAnyTemp. Releasing
dispatches on the category of an object and recursively releases owned
payloads. Shared payloads (blocks, structs seen through interfaces, windows
and programs) carry a usage count and are torn down when the count reaches
zero.

Freeing an object marks its header as freed. The Go garbage collector
reclaims the storage; marking lets the runtime detect double frees and count
live objects.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package memory

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seed7.memory'.
func tracer() tracing.Trace {
	return tracing.Select("seed7.memory")
}
