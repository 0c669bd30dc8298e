package action

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/ThomasMertes/seed7-sub008/object"
)

// run evaluates a statement passed by name and drops its result.
func run(ev object.Evaluator, stmt *object.Object) {
	ev.Release(ev.Evaluate(stmt))
}

// sameException compares exceptions by value. Declared exception constants
// are copies of the runtime's exception literals.
func sameException(a, b *object.Object) bool {
	return a != nil && b != nil && a.Type == b.Type && a.Int() == b.Int()
}

func registerControl(t *Table, env *Env) {
	t.Register("PRC_NOOP", func(ev object.Evaluator, args *object.List) *object.Object {
		return nil
	})
	// if cond then stmt end if
	t.Register("PRC_IF", func(ev object.Evaluator, args *object.List) *object.Object {
		if env.IsTrue(args.Nth(0)) {
			run(ev, args.Nth(1))
		}
		return nil
	})
	// if cond then stmt else stmt end if
	t.Register("PRC_IF_ELSE", func(ev object.Evaluator, args *object.List) *object.Object {
		if env.IsTrue(args.Nth(0)) {
			run(ev, args.Nth(1))
		} else {
			run(ev, args.Nth(2))
		}
		return nil
	})
	// while cond do stmt end while; cond is passed by name
	t.Register("PRC_WHILE", func(ev object.Evaluator, args *object.List) *object.Object {
		cond, body := args.Nth(0), args.Nth(1)
		for {
			c := ev.Evaluate(cond)
			if ev.Failing() {
				return nil
			}
			ok := env.IsTrue(c)
			ev.Release(c)
			if !ok {
				return nil
			}
			run(ev, body)
			if ev.Failing() {
				return nil
			}
		}
	})
	// stmt ; stmt
	t.Register("PRC_SEQ", func(ev object.Evaluator, args *object.List) *object.Object {
		run(ev, args.Nth(0))
		if !ev.Failing() {
			run(ev, args.Nth(1))
		}
		return nil
	})
	t.Register("PRC_RAISE", func(ev object.Evaluator, args *object.List) *object.Object {
		ev.Raise(args.Nth(0))
		return nil
	})
	// block stmt exception catch exc: handler end block
	t.Register("PRC_BLOCK", func(ev object.Evaluator, args *object.List) *object.Object {
		body, exc, handler := args.Nth(0), args.Nth(1), args.Nth(2)
		run(ev, body)
		if ev.Failing() && sameException(ev.FailValue(), exc) {
			tracer().Debugf("caught %v", exc)
			ev.ResetFail()
			run(ev, handler)
		}
		return nil
	})
	// block stmt exception otherwise: handler end block
	t.Register("PRC_BLOCK_CATCH_ALL", func(ev object.Evaluator, args *object.List) *object.Object {
		body, handler := args.Nth(0), args.Nth(1)
		run(ev, body)
		if ev.Failing() {
			tracer().Debugf("caught %v", ev.FailValue())
			ev.ResetFail()
			run(ev, handler)
		}
		return nil
	})
	// interface functions are re-matched by the executor and never called
	t.Register(object.DynamicActionName, func(ev object.Evaluator, args *object.List) *object.Object {
		ev.RaiseException("ACTION_ERROR")
		return nil
	})
}
