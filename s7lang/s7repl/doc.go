/*
Command s7repl is an interactive command line tool for experiments with the
interpreter core. Users enter statements, which are analyzed against the
standard declarations and executed. A few commands starting with ':' inspect
the state of the interpreter:

    :decls         list the declared names
    :tree  stmt    show the resolved call tree of a statement
    :stats         show heap statistics
    :quit

Variables and constants are declared with

    var integer : i is 0
    const string : greeting is "hello"

Options may be given in a YAML file (flag -config).


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seed7.repl'.
func tracer() tracing.Trace {
	return tracing.Select("seed7.repl")
}
