package object

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// List is a singly linked list of object references. Expressions, calls and
// parameter lists are lists. A nil *List is the empty list.
type List struct {
	Obj  *Object
	Next *List
}

// NewList creates a list from a sequence of objects.
func NewList(objs ...*Object) *List {
	var head *List
	for i := len(objs) - 1; i >= 0; i-- {
		head = &List{Obj: objs[i], Next: head}
	}
	return head
}

// Len counts the cells of a list.
func (l *List) Len() int {
	n := 0
	for ; l != nil; l = l.Next {
		n++
	}
	return n
}

// Nth returns the n-th element, starting at 0, or nil.
func (l *List) Nth(n int) *Object {
	for ; l != nil; l = l.Next {
		if n == 0 {
			return l.Obj
		}
		n--
	}
	return nil
}

// Last returns the last cell of a list.
func (l *List) Last() *List {
	if l == nil {
		return nil
	}
	for l.Next != nil {
		l = l.Next
	}
	return l
}

// Append appends objects to a list and returns the head of the result.
// Append is nil-safe.
func (l *List) Append(objs ...*Object) *List {
	tail := NewList(objs...)
	if l == nil {
		return tail
	}
	l.Last().Next = tail
	return l
}

// Rest returns the list without its first cell.
func (l *List) Rest() *List {
	if l == nil {
		return nil
	}
	return l.Next
}

// Copy creates fresh cells referring to the same objects.
func (l *List) Copy() *List {
	return NewList(l.Objects()...)
}

// Objects returns the elements as a slice.
func (l *List) Objects() []*Object {
	var objs []*Object
	for ; l != nil; l = l.Next {
		objs = append(objs, l.Obj)
	}
	return objs
}

// Contains is true if obj is an element of the list.
func (l *List) Contains(obj *Object) bool {
	for ; l != nil; l = l.Next {
		if l.Obj == obj {
			return true
		}
	}
	return false
}

// Each calls f for every element, stopping when f returns false.
func (l *List) Each(f func(int, *Object) bool) {
	for i := 0; l != nil; l = l.Next {
		if !f(i, l.Obj) {
			return
		}
		i++
	}
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteString("[")
	for c := l; c != nil; c = c.Next {
		if c != l {
			b.WriteString(" ")
		}
		if c.Obj == nil {
			b.WriteString("<nil>")
			continue
		}
		if c.Obj.category == SymbolObject || c.Obj.category == FormParamObject {
			if name := c.Obj.Name(); name != "" {
				b.WriteString(name)
				continue
			}
		}
		b.WriteString(c.Obj.category.String())
	}
	b.WriteString("]")
	return b.String()
}
