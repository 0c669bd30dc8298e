package object

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// TypeHooks are per-type calls registered by primitive libraries. The core
// calls through them when creating, destroying or copying values, but never
// defines their bodies. A nil hook means "use the category default".
type TypeHooks struct {
	Create  func(dest, src *Object) error
	Destroy func(obj *Object) error
	Copy    func(dest, src *Object) error
	Ord     func(obj *Object) (int64, error)
	In      func(elem, set *Object) (bool, error)
}

// Type is the static type of objects.
//
// Meta is the supertype; matching walks the meta chain from most to least
// specific. A type with a ResultType is itself a function signature: objects
// of that type yield a value of the result type when called.
type Type struct {
	Name          string
	MatchObj      *Object // TYPEOBJECT representing this type as a value
	Meta          *Type
	ResultType    *Type
	Interfaces    []*Type
	IsVarfuncType bool
	Hooks         TypeHooks
	Prog          *Program // owning program, if any

	funcType    *Type
	varfuncType *Type
}

// NewType creates a type and its TYPEOBJECT.
func NewType(name string, meta *Type) *Type {
	t := &Type{Name: name, Meta: meta}
	t.MatchObj = NewWithValue(TypeObject, nil, t)
	return t
}

// FuncType returns the type of functions yielding t. The derived type is
// memoized, i.e. repeated calls return the identical *Type.
func (t *Type) FuncType() *Type {
	if t.funcType == nil {
		t.funcType = NewType("func "+t.Name, nil)
		t.funcType.ResultType = t
		t.funcType.Prog = t.Prog
	}
	return t.funcType
}

// VarfuncType returns the type of functions yielding a variable of type t.
// The derived type is memoized.
func (t *Type) VarfuncType() *Type {
	if t.varfuncType == nil {
		t.varfuncType = NewType("varfunc "+t.Name, nil)
		t.varfuncType.ResultType = t
		t.varfuncType.IsVarfuncType = true
		t.varfuncType.Prog = t.Prog
	}
	return t.varfuncType
}

// IsFunc is true for function signature types.
func (t *Type) IsFunc() bool {
	return t != nil && t.ResultType != nil
}

// AddInterface declares that t structurally satisfies interface type iface.
func (t *Type) AddInterface(iface *Type) {
	for _, i := range t.Interfaces {
		if i == iface {
			return
		}
	}
	t.Interfaces = append(t.Interfaces, iface)
}

// InterfaceWalk lists the interfaces of t and of its supertypes, breadth
// first and without duplicates.
func (t *Type) InterfaceWalk() []*Type {
	var result []*Type
	seen := make(map[*Type]bool)
	queue := []*Type{}
	for m := t; m != nil; m = m.Meta {
		queue = append(queue, m.Interfaces...)
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if seen[i] {
			continue
		}
		seen[i] = true
		result = append(result, i)
		queue = append(queue, i.Interfaces...)
	}
	return result
}

// Implements is true if t satisfies interface type iface.
func (t *Type) Implements(iface *Type) bool {
	for _, i := range t.InterfaceWalk() {
		if i == iface {
			return true
		}
	}
	return false
}

func (t *Type) String() string {
	if t == nil {
		return "<no type>"
	}
	return t.Name
}
