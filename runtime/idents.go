package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/ThomasMertes/seed7-sub008/object"
)

// IdentTable maps identifiers and special symbols to their entities
// (map-like semantics). Every identifier has exactly one entity, whose
// Syobject is the generic symbol object of the identifier.
type IdentTable struct {
	Table        map[string]*object.Entity
	createEntity func(string) *object.Entity
}

// NewIdentTable creates an empty table. createEntity is called for
// identifiers seen for the first time; it may be nil.
func NewIdentTable(createEntity func(string) *object.Entity) *IdentTable {
	if createEntity == nil {
		createEntity = object.NewEntity
	}
	return &IdentTable{
		Table:        make(map[string]*object.Entity),
		createEntity: createEntity,
	}
}

// Resolve checks for an identifier in the table. Returns an entity or nil.
func (t *IdentTable) Resolve(name string) *object.Entity {
	return t.Table[name]
}

// ResolveOrDefine finds an identifier in the table, inserting a new entity
// if not found. Returns the entity and a flag, signalling whether the
// identifier has already been present.
func (t *IdentTable) ResolveOrDefine(name string) (*object.Entity, bool) {
	if len(name) == 0 {
		return nil, false
	}
	if ent := t.Resolve(name); ent != nil {
		return ent, true
	}
	ent := t.createEntity(name)
	t.Table[name] = ent
	return ent, false
}

// Remove deletes an identifier.
func (t *IdentTable) Remove(name string) {
	delete(t.Table, name)
}

// Size counts the identifiers in a table.
func (t *IdentTable) Size() int {
	return len(t.Table)
}

// Each iterates over each identifier in the table.
func (t *IdentTable) Each(mapper func(string, *object.Entity)) {
	for k, v := range t.Table {
		mapper(k, v)
	}
}
