package memory

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// ReleaseTemp releases an object, recursively releasing owned payloads, and
// frees its header. It tolerates nil objects and empty payloads. Releasing an
// object twice is counted as a double free and otherwise ignored.
func ReleaseTemp(rt *runtime.Runtime, obj *object.Object) {
	if obj == nil {
		return
	}
	if obj.IsFreed() {
		rt.Stats.DoubleFrees++
		tracer().Errorf("double free of object #%d", obj.ID())
		return
	}
	DumpTempValue(rt, obj)
	freeHeader(rt, obj)
}

// DumpAnyTemp is ReleaseTemp with the fail state saved and cleared during
// the release, so that cleanup runs to completion even while an exception is
// propagating.
func DumpAnyTemp(rt *runtime.Runtime, obj *object.Object) {
	saved := rt.SaveFail()
	ReleaseTemp(rt, obj)
	rt.RestoreFail(saved)
}

// DumpTempValue destroys the value of an object but keeps its header. The
// destroy hook of the object's type is called first; a failing hook raises
// DESTROY_ERROR, but the payload is released anyway.
func DumpTempValue(rt *runtime.Runtime, obj *object.Object) {
	if obj == nil || obj.IsFreed() {
		return
	}
	if obj.Type != nil && obj.Type.Hooks.Destroy != nil && hasValue(obj) {
		if err := obj.Type.Hooks.Destroy(obj); err != nil {
			tracer().Errorf("destroy %v: %v", obj, err)
			rt.RaiseException("DESTROY_ERROR")
		}
	}
	releasePayload(rt, obj)
}

// FreeObject frees the header of an object without touching its payload.
func FreeObject(rt *runtime.Runtime, obj *object.Object) {
	if obj == nil {
		return
	}
	if obj.IsFreed() {
		rt.Stats.DoubleFrees++
		tracer().Errorf("double free of object #%d", obj.ID())
		return
	}
	freeHeader(rt, obj)
}

func freeHeader(rt *runtime.Runtime, obj *object.Object) {
	rt.Stats.CountFreed(obj.Category())
	if rt.OnRelease != nil {
		rt.OnRelease(obj)
	}
	obj.MarkFreed()
}

// hasValue is false for placeholders without a value.
func hasValue(obj *object.Object) bool {
	switch obj.Category() {
	case object.DeclaredObject, object.ForwardObject, object.SymbolObject:
		return false
	}
	return obj.Value() != nil
}

func releasePayload(rt *runtime.Runtime, obj *object.Object) {
	switch obj.Category() {
	case object.ArrayObject:
		if arr := obj.Array(); arr != nil {
			for _, elem := range arr.Elems {
				ReleaseTemp(rt, elem)
			}
			arr.Elems = nil
		}
	case object.StructObject:
		if s := obj.Struct(); s != nil {
			if s.UsageCount > 1 {
				s.UsageCount--
			} else {
				s.UsageCount = 0
				for _, elem := range s.Elems {
					ReleaseTemp(rt, elem)
				}
				s.Elems = nil
			}
		}
	case object.InterfaceObject:
		if target := obj.Obj(); target != nil && !target.IsFreed() {
			if s := target.Struct(); s != nil && s.UsageCount > 1 {
				s.UsageCount--
			} else {
				ReleaseTemp(rt, target)
			}
		}
	case object.HashObject:
		if h := obj.Hash(); h != nil {
			for _, e := range h.Entries() {
				ReleaseTemp(rt, e.Key)
				ReleaseTemp(rt, e.Value)
			}
			h.Clear()
		}
	case object.BlockObject:
		if b := obj.Block(); b != nil {
			b.UsageCount--
			tracer().Debugf("block usage count now %d", b.UsageCount)
		}
	case object.ProgObject:
		if p := obj.Program(); p != nil {
			p.UsageCount--
			if p.UsageCount == 0 && p.Close != nil {
				tracer().Infof("closing program %s", p.Name)
				p.Close()
			}
		}
	case object.WinObject:
		if w := obj.Window(); w != nil {
			w.UsageCount--
			if w.UsageCount == 0 && w.Close != nil {
				w.Close()
			}
		}
	case object.SetObject:
		if s := obj.Set(); s != nil {
			s.Elems.Clear()
		}
	case object.ListObject, object.RefListObject, object.ExprObject:
		obj.SetList(nil)
	case object.BigIntObject, object.StriObject, object.BStriObject, object.PointListObject:
		obj.SetValue(nil)
	}
	// scalars, references, parameters and enumeration values own nothing
}
