package decl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/ThomasMertes/seed7-sub008/memory"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// PushLevel opens a lexical declaration level, e.g. for the locals of a
// function.
func (root *Root) PushLevel(name string) *runtime.DeclLevel {
	return root.rt.Levels.Push(name)
}

// PopLevel closes the current lexical level.
func (root *Root) PopLevel() error {
	lvl, err := root.rt.Levels.Pop()
	if err != nil {
		return root.rt.Report(runtime.NewDiagnostic(runtime.LevelMismatch, err.Error()))
	}
	root.closeLevel(lvl)
	return nil
}

// GrowLevel opens a speculative level.
func (root *Root) GrowLevel(name string) *runtime.DeclLevel {
	return root.rt.Levels.Grow(name)
}

// ShrinkLevel closes the current speculative level.
func (root *Root) ShrinkLevel() error {
	lvl, err := root.rt.Levels.Shrink()
	if err != nil {
		return root.rt.Report(runtime.NewDiagnostic(runtime.LevelMismatch, err.Error()))
	}
	root.closeLevel(lvl)
	return nil
}

// CloseAll closes all levels, including the global one. Speculative levels
// left open are shrunk.
func (root *Root) CloseAll() {
	levels := root.rt.Levels
	for levels.Depth() > 0 {
		var lvl *runtime.DeclLevel
		if levels.Current().Speculative {
			lvl, _ = levels.Shrink()
		} else {
			lvl, _ = levels.Pop()
		}
		root.closeLevel(lvl)
	}
	if lvl, err := levels.PopGlobals(); err == nil {
		root.closeLevel(lvl)
	}
}

// closeLevel tears down a level. Objects are destroyed in reverse order of
// declaration, all other objects before blocks. Then owners are popped,
// unshadowing outer declarations, and finally the headers are freed.
func (root *Root) closeLevel(lvl *runtime.DeclLevel) {
	rt := root.rt
	entries := lvl.Entries()
	tracer().P("level", lvl.Name).Debugf("closing level with %d entries", len(entries))
	saved := rt.SaveFail()
	for i := len(entries) - 1; i >= 0; i-- {
		if e := entries[i]; e.Owned && e.Obj.Category() != object.BlockObject {
			memory.DumpTempValue(rt, e.Obj)
		}
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if e := entries[i]; e.Owned && e.Obj.Category() == object.BlockObject {
			memory.DumpTempValue(rt, e.Obj)
		}
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.Entity == nil {
			continue
		}
		if o, ok := e.Entity.Owner(); ok && o.Obj == e.Obj {
			e.Entity.PopOwner()
		}
		if !e.Entity.HasOwner() {
			root.retire(e.Entity)
		}
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if e := entries[i]; e.Owned {
			e.Obj.ClearDescriptor()
			memory.FreeObject(rt, e.Obj)
		}
	}
	lvl.Clear()
	rt.RestoreFail(saved)
}

// retire handles an entity without owners. Entities of simple names are
// removed from the trie, entities of patterns are parked for reuse.
func (root *Root) retire(ent *object.Entity) {
	node := root.nodes[ent]
	if ent.FParams != nil {
		root.park(ent, node)
		return
	}
	delete(root.nodes, ent)
	if node != nil && node.Entity == ent {
		node.Entity = nil
		node.prune()
	}
}
