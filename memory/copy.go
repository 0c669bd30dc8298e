package memory

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math/big"

	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// CopyObject creates a TEMP deep copy of src. If the type of src has a
// create hook, the hook initializes the copy; a failing hook raises
// CREATE_ERROR. CopyObject returns nil if the copy could not be created.
func CopyObject(rt *runtime.Runtime, src *object.Object) *object.Object {
	if src == nil {
		return nil
	}
	dest := BuildTemp(rt, src.Category(), src.Type, nil)
	if dest == nil {
		return nil
	}
	if src.Type != nil && src.Type.Hooks.Create != nil {
		if err := src.Type.Hooks.Create(dest, src); err != nil {
			tracer().Errorf("create copy of %v: %v", src, err)
			rt.RaiseException("CREATE_ERROR")
			FreeObject(rt, dest)
			return nil
		}
		return dest
	}
	value := copyValue(rt, src)
	if rt.Failing() {
		releaseValue(rt, src.Category(), value)
		FreeObject(rt, dest)
		return nil
	}
	dest.SetValue(value)
	return dest
}

// AssignValue copies the value of src into the variable dest, destroying the
// previous value of dest. If the type of dest has a copy hook, the hook does
// the assignment; a failing hook raises COPY_ERROR. A declared object without
// a value takes on the category of src.
func AssignValue(rt *runtime.Runtime, dest, src *object.Object) {
	if dest == nil || src == nil {
		return
	}
	if dest.Type != nil && dest.Type.Hooks.Copy != nil {
		if err := dest.Type.Hooks.Copy(dest, src); err != nil {
			tracer().Errorf("assign %v := %v: %v", dest, src, err)
			rt.RaiseException("COPY_ERROR")
		}
		return
	}
	if !object.SameArm(dest.Category(), src.Category()) {
		if dest.Category() != object.DeclaredObject {
			tracer().Errorf("cannot assign %v to %v", src, dest)
			rt.RaiseException("ACTION_ERROR")
			return
		}
		typ := dest.Type
		if typ == nil {
			typ = src.Type
		}
		value := copyValue(rt, src)
		if !rt.Failing() {
			dest.Become(src.Category(), typ, value)
		}
		return
	}
	value := copyValue(rt, src)
	if rt.Failing() {
		return
	}
	releasePayload(rt, dest)
	dest.SetValue(value)
}

// copyValue creates a deep copy of the payload of src. Elements of
// aggregates are copied as persistent objects owned by the new aggregate.
func copyValue(rt *runtime.Runtime, src *object.Object) interface{} {
	switch src.Category() {
	case object.ArrayObject:
		arr := src.Array()
		if arr == nil {
			return nil
		}
		return object.NewArray(arr.Min, copyElems(rt, arr.Elems)...)
	case object.StructObject:
		s := src.Struct()
		if s == nil {
			return nil
		}
		return object.NewStruct(copyElems(rt, s.Elems)...)
	case object.HashObject:
		h := src.Hash()
		if h == nil {
			return nil
		}
		return h.Clone(func(o *object.Object) *object.Object {
			return copyElem(rt, o)
		})
	case object.InterfaceObject:
		target := src.Obj()
		if target != nil {
			if s := target.Struct(); s != nil {
				s.UsageCount++
			}
		}
		return target
	case object.BlockObject:
		if b := src.Block(); b != nil {
			b.UsageCount++
			return b
		}
	case object.ProgObject:
		if p := src.Program(); p != nil {
			p.UsageCount++
			return p
		}
	case object.WinObject:
		if w := src.Window(); w != nil {
			w.UsageCount++
			return w
		}
	case object.SetObject:
		if s := src.Set(); s != nil {
			return s.Copy()
		}
	case object.BigIntObject:
		if b := src.BigInt(); b != nil {
			return new(big.Int).Set(b)
		}
	case object.BStriObject, object.PointListObject:
		if b := src.Bytes(); b != nil {
			return append([]byte(nil), b...)
		}
	case object.ListObject, object.RefListObject, object.ExprObject, object.CallObject, object.MatchObject:
		if l := src.List(); l != nil {
			return l.Copy()
		}
	default:
		return src.Value()
	}
	return nil
}

func copyElems(rt *runtime.Runtime, elems []*object.Object) []*object.Object {
	copies := make([]*object.Object, 0, len(elems))
	for _, e := range elems {
		c := copyElem(rt, e)
		if rt.Failing() {
			for _, done := range copies {
				ReleaseTemp(rt, done)
			}
			return nil
		}
		copies = append(copies, c)
	}
	return copies
}

func copyElem(rt *runtime.Runtime, elem *object.Object) *object.Object {
	if elem == nil {
		return nil
	}
	c := CopyObject(rt, elem)
	if c == nil {
		return nil
	}
	c.SetVar(elem.IsVar())
	return c.Adopt()
}

// releaseValue drops a payload which could not be installed.
func releaseValue(rt *runtime.Runtime, cat object.Category, value interface{}) {
	if value == nil {
		return
	}
	tmp := object.NewWithValue(cat, nil, value)
	releasePayload(rt, tmp)
}
