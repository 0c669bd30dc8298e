package decl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/ThomasMertes/seed7-sub008/object"
)

// KeyKind selects a branch of a trie node.
type KeyKind int8

// Branches of trie nodes.
const (
	SymbolKey    KeyKind = iota // keyed by generic symbol object
	AttrKey                     // keyed by type, attribute parameter (attr T)
	InoutKey                    // keyed by type, by-reference variable parameter
	OtherKey                    // keyed by type, any other parameter
	ParamAttrKey                // keyed by type and access, parameter of parameter declarations
)

var keyKindNames = [...]string{"symbol", "attr", "inout", "other", "param"}

func (k KeyKind) String() string {
	return keyKindNames[k]
}

// Key is the key of a trie edge.
type Key struct {
	Kind  KeyKind
	Sym   *object.Object // generic symbol object, for SymbolKey
	Type  *object.Type   // for all other kinds
	ByRef bool           // for ParamAttrKey
}

func (k Key) String() string {
	switch k.Kind {
	case SymbolKey:
		return k.Sym.Name()
	case ParamAttrKey:
		if k.ByRef {
			return fmt.Sprintf("param(ref %s)", k.Type)
		}
		return fmt.Sprintf("param(%s)", k.Type)
	}
	return fmt.Sprintf("%s(%s)", k.Kind, k.Type)
}

type paramAttr struct {
	typ   *object.Type
	byRef bool
}

// Node is a node of the declaration trie. A node is reached by walking the
// keys of a name pattern from the root; the entity of the node owns the
// declarations of this pattern.
type Node struct {
	Entity     *object.Entity
	symbol     map[*object.Object]*Node
	attr       map[*object.Type]*Node
	inoutParam map[*object.Type]*Node
	otherParam map[*object.Type]*Node
	paramAttr  map[paramAttr]*Node
	parent     *Node
	key        Key
}

func newNode(parent *Node, key Key) *Node {
	return &Node{parent: parent, key: key}
}

// Child follows an edge. It returns nil if there is no such edge.
func (n *Node) Child(k Key) *Node {
	if n == nil {
		return nil
	}
	switch k.Kind {
	case SymbolKey:
		return n.symbol[k.Sym]
	case AttrKey:
		return n.attr[k.Type]
	case InoutKey:
		return n.inoutParam[k.Type]
	case OtherKey:
		return n.otherParam[k.Type]
	case ParamAttrKey:
		return n.paramAttr[paramAttr{k.Type, k.ByRef}]
	}
	return nil
}

// Symbol follows the symbol branch.
func (n *Node) Symbol(generic *object.Object) *Node {
	return n.Child(Key{Kind: SymbolKey, Sym: generic})
}

func (n *Node) ensure(k Key) *Node {
	if c := n.Child(k); c != nil {
		return c
	}
	c := newNode(n, k)
	switch k.Kind {
	case SymbolKey:
		if n.symbol == nil {
			n.symbol = make(map[*object.Object]*Node)
		}
		n.symbol[k.Sym] = c
	case AttrKey:
		if n.attr == nil {
			n.attr = make(map[*object.Type]*Node)
		}
		n.attr[k.Type] = c
	case InoutKey:
		if n.inoutParam == nil {
			n.inoutParam = make(map[*object.Type]*Node)
		}
		n.inoutParam[k.Type] = c
	case OtherKey:
		if n.otherParam == nil {
			n.otherParam = make(map[*object.Type]*Node)
		}
		n.otherParam[k.Type] = c
	case ParamAttrKey:
		if n.paramAttr == nil {
			n.paramAttr = make(map[paramAttr]*Node)
		}
		n.paramAttr[paramAttr{k.Type, k.ByRef}] = c
	}
	return c
}

func (n *Node) unlink(c *Node) {
	k := c.key
	switch k.Kind {
	case SymbolKey:
		delete(n.symbol, k.Sym)
	case AttrKey:
		delete(n.attr, k.Type)
	case InoutKey:
		delete(n.inoutParam, k.Type)
	case OtherKey:
		delete(n.otherParam, k.Type)
	case ParamAttrKey:
		delete(n.paramAttr, paramAttr{k.Type, k.ByRef})
	}
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return len(n.symbol) == 0 && len(n.attr) == 0 && len(n.inoutParam) == 0 &&
		len(n.otherParam) == 0 && len(n.paramAttr) == 0
}

// Key returns the key of the edge leading to n.
func (n *Node) Key() Key {
	return n.key
}

// Path returns the keys from the root to n.
func (n *Node) Path() []Key {
	var path []Key
	for m := n; m != nil && m.parent != nil; m = m.parent {
		path = append([]Key{m.key}, path...)
	}
	return path
}

// prune removes empty nodes upwards from n.
func (n *Node) prune() {
	for m := n; m.parent != nil && m.Entity == nil && m.IsLeaf(); {
		p := m.parent
		p.unlink(m)
		m.parent = nil
		m = p
	}
}

// Each visits all nodes below n depth first, calling f with the path.
func (n *Node) Each(f func(path []Key, node *Node)) {
	n.each(nil, f)
}

func (n *Node) each(path []Key, f func([]Key, *Node)) {
	f(path, n)
	visit := func(c *Node) {
		p := make([]Key, len(path)+1)
		copy(p, path)
		p[len(path)] = c.key
		c.each(p, f)
	}
	for _, c := range n.symbol {
		visit(c)
	}
	for _, c := range n.attr {
		visit(c)
	}
	for _, c := range n.inoutParam {
		visit(c)
	}
	for _, c := range n.otherParam {
		visit(c)
	}
	for _, c := range n.paramAttr {
		visit(c)
	}
}
