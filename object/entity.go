package object

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Owner binds an entity to a declared object at a declaration level.
type Owner struct {
	Obj   *Object
	Level int
}

// Entity is the identity of a declared name. Its owner stack models lexical
// shadowing: the top of stack is the visible declaration.
//
// Entities of simple identifiers are keyed by name only; entities of
// operators and procedures additionally carry the name pattern FParams,
// consisting of symbols and formal parameters.
type Entity struct {
	Name     string
	Syobject *Object // generic symbol object of this entity
	FParams  *List
	owners   *arraystack.Stack
}

// NewEntity creates an entity without owners.
func NewEntity(name string) *Entity {
	return &Entity{
		Name:   name,
		owners: arraystack.New(),
	}
}

// PushOwner shadows the current owner, if any.
func (ent *Entity) PushOwner(obj *Object, level int) {
	ent.owners.Push(Owner{Obj: obj, Level: level})
}

// PopOwner removes the top owner and returns it.
func (ent *Entity) PopOwner() (Owner, bool) {
	o, ok := ent.owners.Pop()
	if !ok {
		return Owner{}, false
	}
	return o.(Owner), true
}

// Owner returns the visible owner.
func (ent *Entity) Owner() (Owner, bool) {
	o, ok := ent.owners.Peek()
	if !ok {
		return Owner{}, false
	}
	return o.(Owner), true
}

// Object returns the visible declared object, or nil.
func (ent *Entity) Object() *Object {
	if ent == nil {
		return nil
	}
	if o, ok := ent.Owner(); ok {
		return o.Obj
	}
	return nil
}

// HasOwner is true as long as any declaration of the entity is visible.
func (ent *Entity) HasOwner() bool {
	return !ent.owners.Empty()
}

// OwnerCount returns the depth of the owner stack.
func (ent *Entity) OwnerCount() int {
	return ent.owners.Size()
}

func (ent *Entity) String() string {
	if ent.FParams != nil {
		return ent.Name + " " + ent.FParams.String()
	}
	return ent.Name
}
