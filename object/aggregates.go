package object

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"golang.org/x/tools/container/intsets"
)

// Array is the payload of ARRAYOBJECTs. Element i has index Min+i.
type Array struct {
	Min   int64
	Elems []*Object
}

// NewArray creates an array payload.
func NewArray(min int64, elems ...*Object) *Array {
	return &Array{Min: min, Elems: elems}
}

// Max returns the highest index.
func (a *Array) Max() int64 {
	return a.Min + int64(len(a.Elems)) - 1
}

// At returns the element at index i, or nil if i is out of range.
func (a *Array) At(i int64) *Object {
	if i < a.Min || i > a.Max() {
		return nil
	}
	return a.Elems[i-a.Min]
}

// Struct is the payload of STRUCTOBJECTs. Structs are shared between
// interface objects and counted.
type Struct struct {
	UsageCount int
	Elems      []*Object
}

// NewStruct creates a struct payload with a usage count of 1.
func NewStruct(elems ...*Object) *Struct {
	return &Struct{UsageCount: 1, Elems: elems}
}

// HashEntry is a key/value pair of a hash.
type HashEntry struct {
	Key   *Object
	Value *Object
}

// Hash is the payload of HASHOBJECTs. Buckets are selected by a hash code
// computed by the primitive library owning the key type.
type Hash struct {
	buckets map[int64][]HashEntry
	size    int
}

// NewHash creates an empty hash payload.
func NewHash() *Hash {
	return &Hash{buckets: make(map[int64][]HashEntry)}
}

// Put adds an entry. Equality of keys is decided by eq.
func (h *Hash) Put(code int64, key, value *Object, eq func(a, b *Object) bool) {
	bucket := h.buckets[code]
	for i, e := range bucket {
		if eq(e.Key, key) {
			bucket[i].Value = value
			return
		}
	}
	h.buckets[code] = append(bucket, HashEntry{Key: key, Value: value})
	h.size++
}

// Get looks up a key.
func (h *Hash) Get(code int64, key *Object, eq func(a, b *Object) bool) (*Object, bool) {
	for _, e := range h.buckets[code] {
		if eq(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Size returns the number of entries.
func (h *Hash) Size() int {
	return h.size
}

// Entries returns all entries in no particular order.
func (h *Hash) Entries() []HashEntry {
	entries := make([]HashEntry, 0, h.size)
	for _, b := range h.buckets {
		entries = append(entries, b...)
	}
	return entries
}

// Clone creates a hash with the same bucket structure, mapping keys and
// values with copy.
func (h *Hash) Clone(copy func(*Object) *Object) *Hash {
	c := NewHash()
	for code, bucket := range h.buckets {
		cb := make([]HashEntry, len(bucket))
		for i, e := range bucket {
			cb[i] = HashEntry{Key: copy(e.Key), Value: copy(e.Value)}
		}
		c.buckets[code] = cb
	}
	c.size = h.size
	return c
}

// Clear drops all entries.
func (h *Hash) Clear() {
	h.buckets = make(map[int64][]HashEntry)
	h.size = 0
}

// Set is the payload of SETOBJECTs: a sparse set of ordinals.
type Set struct {
	Elems intsets.Sparse
}

// NewSet creates a set of ordinals.
func NewSet(ords ...int) *Set {
	s := &Set{}
	for _, o := range ords {
		s.Elems.Insert(o)
	}
	return s
}

// Has checks membership of an ordinal.
func (s *Set) Has(ord int) bool {
	return s.Elems.Has(ord)
}

// Copy creates an independent copy.
func (s *Set) Copy() *Set {
	c := &Set{}
	c.Elems.Copy(&s.Elems)
	return c
}

// File is the payload of FILEOBJECTs. The interpreter core does not perform
// I/O; the handle is owned by primitive libraries.
type File struct {
	Name   string
	Handle interface{}
}

// Window is the payload of WINOBJECTs. Close is called when the last
// reference goes away.
type Window struct {
	Name       string
	UsageCount int
	Close      func()
}

// Program is the payload of PROGOBJECTs. Close is called when the last
// reference goes away.
type Program struct {
	Name       string
	UsageCount int
	Close      func()
}
