package decl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/ThomasMertes/seed7-sub008"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// ParamEvaluator evaluates a parameter declaration of a name pattern, e.g.
// '(in integer: a)', and returns a FORMPARAMOBJECT. It returns nil if the
// expression does not declare a parameter.
type ParamEvaluator func(expr *object.Object) *object.Object

// Root is the root of a declaration trie, together with the identifier
// table of a program.
type Root struct {
	top        *Node
	Idents     *runtime.IdentTable
	SymbolType *object.Type // static type of symbol tokens
	ParamEval  ParamEvaluator
	rt         *runtime.Runtime
	nodes      map[*object.Entity]*Node
	inactive   *arraylist.List           // parked entities without owners
	parked     map[string]*object.Entity // parked entities by shape key
}

// NewRoot creates an empty declaration trie for a runtime.
func NewRoot(rt *runtime.Runtime, symbolType *object.Type) *Root {
	return &Root{
		top:        newNode(nil, Key{}),
		Idents:     runtime.NewIdentTable(nil),
		SymbolType: symbolType,
		rt:         rt,
		nodes:      make(map[*object.Entity]*Node),
		inactive:   arraylist.New(),
		parked:     make(map[string]*object.Entity),
	}
}

// Top returns the root node of the trie.
func (root *Root) Top() *Node {
	return root.top
}

// Runtime returns the runtime the trie belongs to.
func (root *Root) Runtime() *runtime.Runtime {
	return root.rt
}

// Intern returns the generic symbol object of an identifier, creating it if
// necessary.
func (root *Root) Intern(name string) *object.Object {
	ent, _ := root.Idents.ResolveOrDefine(name)
	if ent.Syobject == nil {
		ent.Syobject = object.New(object.SymbolObject, root.SymbolType).SetEntity(ent)
	}
	return ent.Syobject
}

// Symbol creates a fresh symbol token for an identifier, as a scanner would.
func (root *Root) Symbol(name string, pos seed7.Pos) *object.Object {
	generic := root.Intern(name)
	sy := object.New(object.SymbolObject, root.SymbolType)
	sy.SetProperty(&object.Property{Entity: generic.Entity(), Pos: pos})
	return sy
}

// Generic returns the generic symbol object of a symbol token, or nil for
// objects which are no symbols.
func Generic(sy *object.Object) *object.Object {
	if sy == nil || sy.Category() != object.SymbolObject {
		return nil
	}
	if ent := sy.Entity(); ent != nil && ent.Syobject != nil {
		return ent.Syobject
	}
	return nil
}

// LookupName finds the visible object declared for a simple name.
func (root *Root) LookupName(sy *object.Object) *object.Object {
	generic := Generic(sy)
	if generic == nil {
		return nil
	}
	n := root.top.Symbol(generic)
	if n == nil || n.Entity == nil {
		return nil
	}
	return n.Entity.Object()
}

// NodeOf returns the trie node of an entity.
func (root *Root) NodeOf(ent *object.Entity) *Node {
	return root.nodes[ent]
}

// --- Shapes ----------------------------------------------------------------

// ShapeElem is one key of a name pattern. Symbols and types are identified
// by the ID of their generic symbol object and type object, respectively;
// the name is for display only.
type ShapeElem struct {
	Kind  KeyKind
	ID    uint64
	ByRef bool
	Name  string
}

// Shape is the structure of a name pattern, i.e. the path of keys leading to
// its trie node.
type Shape struct {
	Elems []ShapeElem
}

// ShapeOf describes a path of keys.
func ShapeOf(path []Key) Shape {
	s := Shape{Elems: make([]ShapeElem, len(path))}
	for i, k := range path {
		e := ShapeElem{Kind: k.Kind, ByRef: k.ByRef}
		if k.Kind == SymbolKey {
			e.ID, e.Name = k.Sym.ID(), k.Sym.Name()
		} else if k.Type != nil {
			e.ID, e.Name = k.Type.MatchObj.ID(), k.Type.String()
		}
		s.Elems[i] = e
	}
	return s
}

// Key returns a hash key for a shape.
func (s Shape) Key() string {
	h, err := structhash.Hash(s, 1)
	if err != nil {
		tracer().Errorf("cannot hash shape %v: %v", s, err)
		return fmt.Sprintf("%v", s.Elems)
	}
	return h
}

func (s Shape) String() string {
	parts := make([]string, len(s.Elems))
	for i, e := range s.Elems {
		if e.Kind == SymbolKey {
			parts[i] = e.Name
		} else {
			parts[i] = fmt.Sprintf("%s(%s)", e.Kind, e.Name)
		}
	}
	return strings.Join(parts, " ")
}

// FindEntity looks up the entity declared for a name pattern of symbol
// tokens and formal parameters, without evaluating anything. Parked entities
// of patterns are found as well.
func (root *Root) FindEntity(pattern *object.List) *object.Entity {
	var path []Key
	node := root.top
	for l := pattern; l != nil; l = l.Next {
		k, ok := root.keyOf(l.Obj)
		if !ok {
			return nil
		}
		path = append(path, k)
		if node != nil {
			node = node.Child(k)
		}
	}
	if node != nil && node.Entity != nil {
		return node.Entity
	}
	if len(path) == 1 && path[0].Kind == SymbolKey {
		return nil
	}
	return root.parked[ShapeOf(path).Key()]
}

// park detaches an entity of a pattern from the trie and keeps it for reuse
// by a later declaration of the same shape.
func (root *Root) park(ent *object.Entity, node *Node) {
	if node == nil { // parked already
		return
	}
	root.inactive.Add(ent)
	root.parked[ShapeOf(node.Path()).Key()] = ent
	delete(root.nodes, ent)
	if node.Entity == ent {
		node.Entity = nil
		node.prune()
	}
	tracer().Debugf("parking entity %s", ent)
}

// unpark takes a parked entity of a shape out of the inactive list, or
// returns nil.
func (root *Root) unpark(key string) *object.Entity {
	ent := root.parked[key]
	if ent == nil {
		return nil
	}
	delete(root.parked, key)
	if i := root.inactive.IndexOf(ent); i >= 0 {
		root.inactive.Remove(i)
	}
	tracer().Debugf("reusing parked entity %s", ent)
	return ent
}

// Entities lists the entities with visible declarations.
func (root *Root) Entities() []*object.Entity {
	var ents []*object.Entity
	root.top.Each(func(_ []Key, n *Node) {
		if n.Entity != nil && n.Entity.HasOwner() {
			ents = append(ents, n.Entity)
		}
	})
	return ents
}

// Inactive returns the number of parked entities.
func (root *Root) Inactive() int {
	return root.inactive.Size()
}
