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

// Build creates a persistent object and counts it. If the heap limit is
// exhausted, MEMORY_ERROR is raised and nil is returned.
func Build(rt *runtime.Runtime, cat object.Category, typ *object.Type, value interface{}) *object.Object {
	if rt.Options.HeapLimit > 0 && rt.Stats.Live() >= rt.Options.HeapLimit {
		tracer().Errorf("heap limit of %d objects exhausted", rt.Options.HeapLimit)
		rt.RaiseException("MEMORY_ERROR")
		return nil
	}
	obj := object.NewWithValue(cat, typ, value)
	rt.Stats.CountBuilt(cat)
	return obj
}

// BuildTemp creates a TEMP object. If the heap limit is exhausted,
// MEMORY_ERROR is raised and nil is returned.
func BuildTemp(rt *runtime.Runtime, cat object.Category, typ *object.Type, value interface{}) *object.Object {
	obj := Build(rt, cat, typ, value)
	if obj == nil {
		return nil
	}
	return obj.SetTemp()
}

// BldInt creates a TEMP integer.
func BldInt(rt *runtime.Runtime, typ *object.Type, i int64) *object.Object {
	return BuildTemp(rt, object.IntObject, typ, i)
}

// BldBigInt creates a TEMP big integer. The value is copied.
func BldBigInt(rt *runtime.Runtime, typ *object.Type, b *big.Int) *object.Object {
	return BuildTemp(rt, object.BigIntObject, typ, new(big.Int).Set(b))
}

// BldFloat creates a TEMP float.
func BldFloat(rt *runtime.Runtime, typ *object.Type, f float64) *object.Object {
	return BuildTemp(rt, object.FloatObject, typ, f)
}

// BldChar creates a TEMP character.
func BldChar(rt *runtime.Runtime, typ *object.Type, c rune) *object.Object {
	return BuildTemp(rt, object.CharObject, typ, c)
}

// BldStri creates a TEMP string.
func BldStri(rt *runtime.Runtime, typ *object.Type, s string) *object.Object {
	return BuildTemp(rt, object.StriObject, typ, s)
}

// BldList creates a TEMP list of objects. The list does not own the objects.
func BldList(rt *runtime.Runtime, typ *object.Type, l *object.List) *object.Object {
	obj := BuildTemp(rt, object.ListObject, typ, nil)
	if obj != nil {
		obj.SetList(l)
	}
	return obj
}

// BldRef creates a TEMP reference to an object.
func BldRef(rt *runtime.Runtime, typ *object.Type, target *object.Object) *object.Object {
	obj := BuildTemp(rt, object.RefObject, typ, nil)
	if obj != nil {
		obj.SetObj(target)
	}
	return obj
}

// BldArray creates a TEMP array, owning its elements.
func BldArray(rt *runtime.Runtime, typ *object.Type, arr *object.Array) *object.Object {
	return BuildTemp(rt, object.ArrayObject, typ, arr)
}

// BldStruct creates a TEMP struct, owning its elements.
func BldStruct(rt *runtime.Runtime, typ *object.Type, s *object.Struct) *object.Object {
	return BuildTemp(rt, object.StructObject, typ, s)
}

// BldInterface creates a TEMP interface object for a struct object. The usage
// count of the struct is incremented.
func BldInterface(rt *runtime.Runtime, typ *object.Type, target *object.Object) *object.Object {
	obj := BuildTemp(rt, object.InterfaceObject, typ, nil)
	if obj == nil {
		return nil
	}
	if s := target.Struct(); s != nil {
		s.UsageCount++
	}
	obj.SetObj(target)
	return obj
}

// BldHash creates a TEMP hash, owning keys and values.
func BldHash(rt *runtime.Runtime, typ *object.Type, h *object.Hash) *object.Object {
	return BuildTemp(rt, object.HashObject, typ, h)
}

// BldSet creates a TEMP set.
func BldSet(rt *runtime.Runtime, typ *object.Type, s *object.Set) *object.Object {
	return BuildTemp(rt, object.SetObject, typ, s)
}

// BldBlock creates a persistent block object.
func BldBlock(rt *runtime.Runtime, typ *object.Type, b *object.Block) *object.Object {
	return Build(rt, object.BlockObject, typ, b)
}
