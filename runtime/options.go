package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/schuko/gconf"
)

// Options configure a runtime.
type Options struct {
	InterfaceDispatch bool // probe interfaces of argument types while matching
	TraceActions      bool // trace every primitive call
	TraceExceptions   bool // trace raised exceptions with level Info
	CheckInterrupt    bool // poll the interrupt flag before primitive calls
	MaxDynamicDepth   int  // nesting limit of dynamic dispatch
	HeapLimit         int  // maximum number of live TEMP objects, 0 for no limit
}

// DefaultMaxDynamicDepth is the default nesting limit of dynamic dispatch.
const DefaultMaxDynamicDepth = 1000

// BaseOptions returns options with interface dispatch and interrupt checks
// enabled, independent of global configuration.
func BaseOptions() Options {
	return Options{
		InterfaceDispatch: true,
		CheckInterrupt:    true,
		MaxDynamicDepth:   DefaultMaxDynamicDepth,
	}
}

// DefaultOptions reads options from the global configuration.
//
//    seed7.no-interface-dispatch
//    seed7.trace-actions
//    seed7.trace-exceptions
//    seed7.no-interrupt-check
//
func DefaultOptions() Options {
	opts := BaseOptions()
	opts.InterfaceDispatch = !gconf.GetBool("seed7.no-interface-dispatch")
	opts.TraceActions = gconf.GetBool("seed7.trace-actions")
	opts.TraceExceptions = gconf.GetBool("seed7.trace-exceptions")
	opts.CheckInterrupt = !gconf.GetBool("seed7.no-interrupt-check")
	return opts
}
