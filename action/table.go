package action

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/ThomasMertes/seed7-sub008/object"
)

// Table maps names to primitive actions.
type Table struct {
	entries *treemap.Map
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: treemap.NewWithStringComparator()}
}

// Register adds a primitive. A primitive registered twice replaces the
// previous one.
func (t *Table) Register(name string, fn object.ActionFunc) *object.Action {
	act := &object.Action{Name: name, Fn: fn}
	if _, found := t.entries.Get(name); found {
		tracer().Infof("primitive %s replaced", name)
	}
	t.entries.Put(name, act)
	return act
}

// Lookup finds a primitive by name.
func (t *Table) Lookup(name string) (*object.Action, bool) {
	v, found := t.entries.Get(name)
	if !found {
		return nil, false
	}
	return v.(*object.Action), true
}

// Names lists the registered names in sorted order.
func (t *Table) Names() []string {
	keys := t.entries.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Size is the number of registered primitives.
func (t *Table) Size() int {
	return t.entries.Size()
}
