/*
Package object implements the universal runtime value of the interpreter.

An object carries a category tag, ownership flags, a weak link to its static
type, a descriptor (entity, property record or source position) and a payload.
The payload arm which is valid is determined by the category. Lists of objects
represent parameter lists as well as unresolved and resolved expressions.

Types, blocks (user defined procedures and functions), primitive actions and
entities (the owners of declared names) are part of the data model, too.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package object

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seed7.object'.
func tracer() tracing.Trace {
	return tracing.Select("seed7.object")
}
