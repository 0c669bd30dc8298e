package action

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"strconv"

	"github.com/ThomasMertes/seed7-sub008/object"
)

// Env holds the types and literals the standard primitives refer to.
type Env struct {
	Integer *object.Type
	Boolean *object.Type
	String  *object.Type
	Type    *object.Type // type of types
	Symbol  *object.Type
	FParam  *object.Type // type of formal parameter declarations
	True    *object.Object
	False   *object.Object
}

// Bool returns the literal for b.
func (env *Env) Bool(b bool) *object.Object {
	if b {
		return env.True
	}
	return env.False
}

// IsTrue is true for the TRUE literal and for copies of it.
func (env *Env) IsTrue(obj *object.Object) bool {
	return obj != nil && obj.Category() == object.EnumLiteralObject &&
		obj.Type == env.Boolean && obj.Int() == env.True.Int()
}

// RegisterStd registers the standard primitives.
func RegisterStd(t *Table, env *Env) {
	registerInt(t, env)
	registerStr(t, env)
	registerControl(t, env)
	registerDecl(t, env)
}

func intArgs(args *object.List) (int64, int64) {
	return args.Nth(0).Int(), args.Nth(1).Int()
}

func registerInt(t *Table, env *Env) {
	t.Register("INT_ADD", func(ev object.Evaluator, args *object.List) *object.Object {
		a, b := intArgs(args)
		sum := a + b
		if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
			ev.RaiseException("OVERFLOW_ERROR")
			return nil
		}
		return ev.BuildTemp(object.IntObject, env.Integer, sum)
	})
	t.Register("INT_SUB", func(ev object.Evaluator, args *object.List) *object.Object {
		a, b := intArgs(args)
		diff := a - b
		if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0) {
			ev.RaiseException("OVERFLOW_ERROR")
			return nil
		}
		return ev.BuildTemp(object.IntObject, env.Integer, diff)
	})
	t.Register("INT_MULT", func(ev object.Evaluator, args *object.List) *object.Object {
		a, b := intArgs(args)
		prod := a * b
		if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || (a != 0 && prod/a != b) {
			ev.RaiseException("OVERFLOW_ERROR")
			return nil
		}
		return ev.BuildTemp(object.IntObject, env.Integer, prod)
	})
	t.Register("INT_DIV", func(ev object.Evaluator, args *object.List) *object.Object {
		a, b := intArgs(args)
		if b == 0 {
			ev.RaiseException("NUMERIC_ERROR")
			return nil
		}
		return ev.BuildTemp(object.IntObject, env.Integer, a/b)
	})
	t.Register("INT_LT", func(ev object.Evaluator, args *object.List) *object.Object {
		a, b := intArgs(args)
		return env.Bool(a < b)
	})
	t.Register("INT_EQ", func(ev object.Evaluator, args *object.List) *object.Object {
		a, b := intArgs(args)
		return env.Bool(a == b)
	})
	t.Register("INT_CPY", func(ev object.Evaluator, args *object.List) *object.Object {
		ev.Assign(args.Nth(0), args.Nth(1))
		return nil
	})
	t.Register("INT_STR", func(ev object.Evaluator, args *object.List) *object.Object {
		return ev.BuildTemp(object.StriObject, env.String, strconv.FormatInt(args.Nth(0).Int(), 10))
	})
	// integer parse s; the attribute is the first argument
	t.Register("INT_PARSE", func(ev object.Evaluator, args *object.List) *object.Object {
		i, err := strconv.ParseInt(args.Nth(1).Stri(), 10, 64)
		if err != nil {
			tracer().Debugf("parse: %v", err)
			ev.RaiseException("RANGE_ERROR")
			return nil
		}
		return ev.BuildTemp(object.IntObject, env.Integer, i)
	})
}

func registerStr(t *Table, env *Env) {
	t.Register("STR_CAT", func(ev object.Evaluator, args *object.List) *object.Object {
		return ev.BuildTemp(object.StriObject, env.String, args.Nth(0).Stri()+args.Nth(1).Stri())
	})
	t.Register("STR_EQ", func(ev object.Evaluator, args *object.List) *object.Object {
		return env.Bool(args.Nth(0).Stri() == args.Nth(1).Stri())
	})
	t.Register("STR_CPY", func(ev object.Evaluator, args *object.List) *object.Object {
		ev.Assign(args.Nth(0), args.Nth(1))
		return nil
	})
}
