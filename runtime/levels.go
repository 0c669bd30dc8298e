package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/ThomasMertes/seed7-sub008/object"
)

// Entry is an object declared at a level. Owned entries are destroyed when
// the level is closed; parameters entered for name evaluation are not owned.
type Entry struct {
	Obj    *object.Object
	Entity *object.Entity
	Owned  bool
}

// DeclLevel is a declaration level (a scope frame). Levels link up and down,
// forming a stack.
type DeclLevel struct {
	Name        string
	Depth       int
	Speculative bool // created by Grow, to be removed by Shrink
	Upward      *DeclLevel
	Downward    *DeclLevel
	entries     *arraylist.List
}

func newDeclLevel(name string, depth int, speculative bool) *DeclLevel {
	return &DeclLevel{
		Name:        name,
		Depth:       depth,
		Speculative: speculative,
		entries:     arraylist.New(),
	}
}

func (lvl *DeclLevel) String() string {
	return fmt.Sprintf("<level %s/%d>", lvl.Name, lvl.Depth)
}

// Add appends an entry in declaration order.
func (lvl *DeclLevel) Add(e Entry) {
	lvl.entries.Add(e)
}

// Size counts the entries of a level.
func (lvl *DeclLevel) Size() int {
	return lvl.entries.Size()
}

// Entries returns the entries in declaration order.
func (lvl *DeclLevel) Entries() []Entry {
	entries := make([]Entry, 0, lvl.entries.Size())
	it := lvl.entries.Iterator()
	for it.Next() {
		entries = append(entries, it.Value().(Entry))
	}
	return entries
}

// Find searches the entries for an object.
func (lvl *DeclLevel) Find(obj *object.Object) (Entry, bool) {
	_, e := lvl.entries.Find(func(_ int, v interface{}) bool {
		return v.(Entry).Obj == obj
	})
	if e == nil {
		return Entry{}, false
	}
	return e.(Entry), true
}

// Clear drops all entries.
func (lvl *DeclLevel) Clear() {
	lvl.entries.Clear()
}

// ---------------------------------------------------------------------------

// LevelStack is the stack of declaration levels. The bottommost level holds
// the global declarations.
type LevelStack struct {
	base *DeclLevel
	tos  *DeclLevel
}

// NewLevelStack creates an empty stack.
func NewLevelStack() *LevelStack {
	return &LevelStack{}
}

// Current gets the current level of a stack (TOS).
func (ls *LevelStack) Current() *DeclLevel {
	if ls.tos == nil {
		panic("attempt to access declaration level from empty stack")
	}
	return ls.tos
}

// Globals gets the outermost level, containing global declarations.
func (ls *LevelStack) Globals() *DeclLevel {
	if ls.base == nil {
		panic("attempt to access global declaration level from empty stack")
	}
	return ls.base
}

// Depth returns the depth of TOS, with the global level having depth 0.
// An empty stack has depth -1.
func (ls *LevelStack) Depth() int {
	if ls.tos == nil {
		return -1
	}
	return ls.tos.Depth
}

func (ls *LevelStack) push(name string, speculative bool) *DeclLevel {
	lvl := newDeclLevel(name, ls.Depth()+1, speculative)
	lvl.Downward = ls.tos
	if ls.tos == nil {
		ls.base = lvl
	} else {
		ls.tos.Upward = lvl
	}
	ls.tos = lvl
	tracer().P("level", lvl.Name).Debugf("pushing declaration level %d", lvl.Depth)
	return lvl
}

func (ls *LevelStack) pop() *DeclLevel {
	lvl := ls.tos
	tracer().Debugf("popping declaration level [%s]", lvl.Name)
	ls.tos = lvl.Downward
	if ls.tos != nil {
		ls.tos.Upward = nil
	} else {
		ls.base = nil
	}
	lvl.Downward = nil
	return lvl
}

// Push pushes a level for lexical nesting.
func (ls *LevelStack) Push(name string) *DeclLevel {
	return ls.push(name, false)
}

// Pop removes a lexical level and returns it. It is an error to pop a
// speculative level or the global level.
func (ls *LevelStack) Pop() (*DeclLevel, error) {
	if ls.tos == nil || ls.tos == ls.base {
		return nil, fmt.Errorf("attempt to pop global declaration level")
	}
	if ls.tos.Speculative {
		return nil, fmt.Errorf("attempt to pop speculative level %s, use shrink", ls.tos.Name)
	}
	return ls.pop(), nil
}

// Grow pushes a speculative level.
func (ls *LevelStack) Grow(name string) *DeclLevel {
	return ls.push(name, true)
}

// Shrink removes a speculative level and returns it. It is an error to
// shrink a lexical level.
func (ls *LevelStack) Shrink() (*DeclLevel, error) {
	if ls.tos == nil || !ls.tos.Speculative {
		return nil, fmt.Errorf("attempt to shrink a non-speculative declaration level")
	}
	return ls.pop(), nil
}

// PopGlobals removes the global level when the program is closed.
func (ls *LevelStack) PopGlobals() (*DeclLevel, error) {
	if ls.tos == nil || ls.tos != ls.base {
		return nil, fmt.Errorf("global declaration level is not on top of stack")
	}
	return ls.pop(), nil
}

// Each iterates from TOS downwards.
func (ls *LevelStack) Each(f func(*DeclLevel)) {
	for lvl := ls.tos; lvl != nil; lvl = lvl.Downward {
		f(lvl)
	}
}
