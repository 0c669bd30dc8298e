package object

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRetagKeepsPayload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	a := NewWithValue(IntObject, nil, int64(1))
	expr := NewWithValue(ExprObject, nil, NewList(a))
	expr.Retag(MatchObject)
	if expr.Category() != MatchObject {
		t.Errorf("expected MATCHOBJECT, is %s", expr.Category())
	}
	if expr.List().Nth(0) != a {
		t.Errorf("list payload did not survive re-tagging")
	}
	expr.Retag(ExprObject)
	if expr.List().Len() != 1 {
		t.Errorf("list payload did not survive re-tagging back")
	}
}

func TestRetagAcrossArmsPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected re-tagging of CALLOBJECT to INTOBJECT to panic")
		}
	}()
	NewWithValue(CallObject, nil, NewList()).Retag(IntObject)
}

func TestPayloadMustFitCategory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected string payload for INTOBJECT to panic")
		}
	}()
	NewWithValue(IntObject, nil, "seven")
}

func TestOwnershipTransitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	obj := NewWithValue(StriObject, nil, "x").SetTemp()
	if obj.Ownership() != Owned {
		t.Errorf("expected owned, is %s", obj.Ownership())
	}
	obj.Lend()
	if obj.IsTemp() || !obj.IsTemp2() || obj.Ownership() != LentAsTemp2 {
		t.Errorf("expected TEMP2 after lending, is %s", obj.Ownership())
	}
	obj.Reclaim()
	if !obj.IsTemp() || obj.IsTemp2() {
		t.Errorf("expected TEMP after reclaiming")
	}
	obj.ParkDynamic()
	if obj.IsTemp() || obj.Ownership() != ParkedDynamic {
		t.Errorf("expected parked object, is %s", obj.Ownership())
	}
	obj.UnparkDynamic().Adopt()
	if obj.Ownership() != Borrowed {
		t.Errorf("expected adopted object to be borrowed, is %s", obj.Ownership())
	}
}

func TestBecomePreservesIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	integer := NewType("integer", nil)
	fwd := New(ForwardObject, nil)
	id := fwd.ID()
	fwd.Become(IntObject, integer, int64(42))
	if fwd.ID() != id || fwd.Int() != 42 || fwd.Type != integer {
		t.Errorf("forward object not initialized in place: %v", fwd)
	}
}

func TestDescriptor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	ent := NewEntity("x")
	obj := New(DeclaredObject, nil).SetProperty(&Property{Entity: ent})
	if obj.Entity() != ent || obj.Name() != "x" {
		t.Errorf("entity not reachable through property")
	}
	obj.ClearDescriptor()
	if obj.Entity() != nil || obj.Property() != nil {
		t.Errorf("descriptor not cleared")
	}
}

func TestListOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	a, b, c := New(SymbolObject, nil), New(SymbolObject, nil), New(SymbolObject, nil)
	var l *List
	l = l.Append(a)
	l = l.Append(b, c)
	if l.Len() != 3 || l.Nth(2) != c || l.Last().Obj != c {
		t.Errorf("unexpected list %v", l)
	}
	cp := l.Copy()
	cp.Obj = c
	if l.Obj != a {
		t.Errorf("copy shares cells with original")
	}
	if l.Rest().Obj != b {
		t.Errorf("rest of list wrong")
	}
}

func TestTypeDerivations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	integer := NewType("integer", nil)
	if integer.FuncType() != integer.FuncType() {
		t.Errorf("func type is not memoized")
	}
	if integer.FuncType().ResultType != integer || !integer.FuncType().IsFunc() {
		t.Errorf("func type does not yield integer")
	}
	if !integer.VarfuncType().IsVarfuncType || integer.VarfuncType() == integer.FuncType() {
		t.Errorf("varfunc type wrong")
	}
	if integer.MatchObj.TypeValue() != integer {
		t.Errorf("type object does not refer back to its type")
	}
}

func TestInterfaceWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	shape := NewType("shape", nil)
	drawable := NewType("drawable", nil)
	object := NewType("object", nil)
	shape.AddInterface(object)
	base := NewType("base", nil)
	base.AddInterface(drawable)
	circle := NewType("circle", base)
	circle.AddInterface(shape)
	circle.AddInterface(shape)
	ifaces := circle.InterfaceWalk()
	if len(ifaces) != 3 {
		t.Fatalf("expected 3 interfaces, have %v", ifaces)
	}
	if ifaces[0] != shape || ifaces[1] != drawable || ifaces[2] != object {
		t.Errorf("interfaces not walked breadth first: %v", ifaces)
	}
	if !circle.Implements(object) || base.Implements(shape) {
		t.Errorf("Implements wrong")
	}
}

func TestEntityOwnerStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	ent := NewEntity("x")
	outer, inner := New(DeclaredObject, nil), New(DeclaredObject, nil)
	ent.PushOwner(outer, 1)
	ent.PushOwner(inner, 2)
	if ent.Object() != inner || ent.OwnerCount() != 2 {
		t.Errorf("inner declaration should shadow outer one")
	}
	ent.PopOwner()
	if o, _ := ent.Owner(); o.Obj != outer || o.Level != 1 {
		t.Errorf("outer declaration not visible after pop")
	}
	ent.PopOwner()
	if ent.HasOwner() {
		t.Errorf("entity should have no owners")
	}
}

func TestAggregates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seed7.object")
	defer teardown()
	//
	arr := NewArray(1, New(IntObject, nil), New(IntObject, nil))
	if arr.Max() != 2 || arr.At(0) != nil || arr.At(2) == nil {
		t.Errorf("array indexing wrong")
	}
	set := NewSet(1, 5, 64)
	if !set.Copy().Has(64) || set.Has(2) {
		t.Errorf("set membership wrong")
	}
	h := NewHash()
	eq := func(a, b *Object) bool { return a.Int() == b.Int() }
	k := NewWithValue(IntObject, nil, int64(3))
	h.Put(3, k, NewWithValue(IntObject, nil, int64(9)), eq)
	h.Put(3, NewWithValue(IntObject, nil, int64(3)), NewWithValue(IntObject, nil, int64(10)), eq)
	if v, ok := h.Get(3, k, eq); !ok || v.Int() != 10 || h.Size() != 1 {
		t.Errorf("hash put/get wrong")
	}
}
