package object

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"

	"github.com/ThomasMertes/seed7-sub008"
)

// Flags are independent ownership and descriptor bits of an object.
type Flags uint16

// Object flags.
const (
	Temp        Flags = 1 << iota // ephemeral result, owned by the evaluation producing it
	Temp2                         // TEMP value lent into a by-reference binding
	Var                           // mutable binding
	PosInfo                       // descriptor holds a source position
	HasEntity                     // descriptor holds an entity
	HasProperty                   // descriptor holds a property record
	TempDynamic                   // TEMP value parked during dynamic dispatch
)

const descriptorFlags = PosInfo | HasEntity | HasProperty
const ownershipFlags = Temp | Temp2 | TempDynamic

// Ownership tells who is responsible for releasing an object.
type Ownership uint8

// Ownership states, derived from the TEMP flags.
const (
	Borrowed      Ownership = iota // persistent, owned by a declaration or an aggregate
	Owned                          // TEMP: the consumer has to release it
	LentAsTemp2                    // TEMP2: lent to a by-reference parameter
	ParkedDynamic                  // TEMP-DYNAMIC: lent to a dynamic dispatch
)

func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case LentAsTemp2:
		return "lent"
	case ParkedDynamic:
		return "parked"
	}
	return "borrowed"
}

var serialCounter uint64

// Object is the universal runtime value.
type Object struct {
	category Category
	Type     *Type // static type, never owning
	flags    Flags
	descr    interface{} // *Entity, *Property or seed7.Pos, see flags
	value    interface{} // payload arm, see category
	id       uint64
}

// New creates an object of a category with an empty payload.
func New(cat Category, typ *Type) *Object {
	return &Object{
		category: cat,
		Type:     typ,
		id:       atomic.AddUint64(&serialCounter, 1),
	}
}

// NewWithValue creates an object and installs a payload. The payload must
// fit the category's payload arm.
func NewWithValue(cat Category, typ *Type, value interface{}) *Object {
	obj := New(cat, typ)
	obj.SetValue(value)
	return obj
}

// ID returns the serial number of an object.
func (obj *Object) ID() uint64 {
	return obj.id
}

// Category returns the category tag.
func (obj *Object) Category() Category {
	return obj.category
}

// --- Re-tagging ------------------------------------------------------------

// Retag transitions an object to a new category which shares the payload arm
// of the current one, e.g. EXPROBJECT → MATCHOBJECT. The payload survives the
// transition. Retag panics if the arms differ.
func (obj *Object) Retag(to Category) *Object {
	if obj.category.arm() != to.arm() {
		panic(fmt.Sprintf("illegal re-tagging of %s to %s", obj.category, to))
	}
	obj.category = to
	return obj
}

// Become turns a placeholder (a declared or forward declared object) into an
// object of its final category, type and payload. The identity of the object
// is preserved. Become panics if the object is not a placeholder.
func (obj *Object) Become(cat Category, typ *Type, value interface{}) *Object {
	if obj.category != DeclaredObject && obj.category != ForwardObject {
		panic(fmt.Sprintf("cannot initialize %s as %s", obj.category, cat))
	}
	tracer().Debugf("initialize %s as %s", obj.category, cat)
	obj.category = cat
	obj.Type = typ
	obj.value = nil
	if value != nil {
		obj.SetValue(value)
	}
	return obj
}

// IsFreed is true for objects which have been released.
func (obj *Object) IsFreed() bool {
	return obj.category == freedObject
}

// MarkFreed clears the payload of a released object. Any further use of the
// object is an error which can be detected with IsFreed.
func (obj *Object) MarkFreed() {
	obj.category = freedObject
	obj.value = nil
	obj.flags &^= ownershipFlags
}

// --- Flags and ownership ---------------------------------------------------

// Flags returns the flag bits.
func (obj *Object) Flags() Flags {
	return obj.flags
}

// IsTemp is true for TEMP objects.
func (obj *Object) IsTemp() bool {
	return obj.flags&Temp != 0
}

// SetTemp marks an object as TEMP, i.e. owned by its consumer.
func (obj *Object) SetTemp() *Object {
	obj.flags = obj.flags&^ownershipFlags | Temp
	return obj
}

// ClearTemp removes all TEMP markers.
func (obj *Object) ClearTemp() *Object {
	obj.flags &^= ownershipFlags
	return obj
}

// IsTemp2 is true for TEMP values lent to a by-reference parameter.
func (obj *Object) IsTemp2() bool {
	return obj.flags&Temp2 != 0
}

// Ownership derives the ownership state from the flags.
func (obj *Object) Ownership() Ownership {
	switch {
	case obj.flags&Temp != 0:
		return Owned
	case obj.flags&Temp2 != 0:
		return LentAsTemp2
	case obj.flags&TempDynamic != 0:
		return ParkedDynamic
	}
	return Borrowed
}

// Adopt transfers ownership of a TEMP object to the caller, which binds it
// somewhere persistent. The object is no longer TEMP.
func (obj *Object) Adopt() *Object {
	obj.flags &^= Temp
	return obj
}

// Lend converts TEMP to TEMP2. Lend panics for non-TEMP objects.
func (obj *Object) Lend() *Object {
	if obj.flags&Temp == 0 {
		panic(fmt.Sprintf("cannot lend non-temporary object %v", obj))
	}
	obj.flags = obj.flags&^Temp | Temp2
	return obj
}

// Reclaim converts TEMP2 back to TEMP.
func (obj *Object) Reclaim() *Object {
	if obj.flags&Temp2 != 0 {
		obj.flags = obj.flags&^Temp2 | Temp
	}
	return obj
}

// ParkDynamic converts TEMP to TEMP-DYNAMIC. Parked objects are not released by
// nested argument cleanup.
func (obj *Object) ParkDynamic() *Object {
	if obj.flags&Temp != 0 {
		obj.flags = obj.flags&^Temp | TempDynamic
	}
	return obj
}

// UnparkDynamic converts TEMP-DYNAMIC back to TEMP.
func (obj *Object) UnparkDynamic() *Object {
	if obj.flags&TempDynamic != 0 {
		obj.flags = obj.flags&^TempDynamic | Temp
	}
	return obj
}

// IsVar is true for mutable bindings.
func (obj *Object) IsVar() bool {
	return obj.flags&Var != 0
}

// SetVar sets or clears the VAR flag.
func (obj *Object) SetVar(v bool) *Object {
	if v {
		obj.flags |= Var
	} else {
		obj.flags &^= Var
	}
	return obj
}

// --- Descriptor ------------------------------------------------------------

// Property is the record attached to declared objects.
type Property struct {
	Entity *Entity
	Params *List // formal parameters, aligned with actual parameters of calls
	Pos    seed7.Pos
}

// Entity returns the entity an object is attached to, if any.
func (obj *Object) Entity() *Entity {
	switch {
	case obj.flags&HasEntity != 0:
		return obj.descr.(*Entity)
	case obj.flags&HasProperty != 0:
		return obj.descr.(*Property).Entity
	}
	return nil
}

// SetEntity attaches an entity.
func (obj *Object) SetEntity(ent *Entity) *Object {
	obj.flags = obj.flags&^descriptorFlags | HasEntity
	obj.descr = ent
	return obj
}

// Property returns the property record, if any.
func (obj *Object) Property() *Property {
	if obj.flags&HasProperty != 0 {
		return obj.descr.(*Property)
	}
	return nil
}

// SetProperty attaches a property record.
func (obj *Object) SetProperty(p *Property) *Object {
	obj.flags = obj.flags&^descriptorFlags | HasProperty
	obj.descr = p
	return obj
}

// Pos returns the source position of an object, if known.
func (obj *Object) Pos() seed7.Pos {
	switch {
	case obj.flags&PosInfo != 0:
		return obj.descr.(seed7.Pos)
	case obj.flags&HasProperty != 0:
		return obj.descr.(*Property).Pos
	}
	return seed7.NoPos
}

// SetPos attaches a source position instead of an entity or property.
func (obj *Object) SetPos(pos seed7.Pos) *Object {
	obj.flags = obj.flags&^descriptorFlags | PosInfo
	obj.descr = pos
	return obj
}

// ClearDescriptor drops entity, property or position.
func (obj *Object) ClearDescriptor() {
	obj.flags &^= descriptorFlags
	obj.descr = nil
}

// Name returns the name of the entity an object is attached to.
func (obj *Object) Name() string {
	if ent := obj.Entity(); ent != nil {
		return ent.Name
	}
	return ""
}

// --- Payload ---------------------------------------------------------------

// Value returns the raw payload.
func (obj *Object) Value() interface{} {
	return obj.value
}

// SetValue installs a payload. It panics if the payload does not fit the
// payload arm of the object's category.
func (obj *Object) SetValue(v interface{}) {
	if v == nil {
		obj.value = nil
		return
	}
	if !fitsArm(obj.category.arm(), v) {
		panic(fmt.Sprintf("payload %T does not fit %s", v, obj.category))
	}
	obj.value = v
}

// Accepts is true if v fits the payload arm of the object's category.
func (obj *Object) Accepts(v interface{}) bool {
	return v == nil || fitsArm(obj.category.arm(), v)
}

// SameArm is true if two categories share a payload arm.
func SameArm(a, b Category) bool {
	return a.arm() == b.arm()
}

func fitsArm(a arm, v interface{}) bool {
	switch v.(type) {
	case *List:
		return a == armList
	case *Object:
		return a == armObj
	case int64:
		return a == armInt
	case *big.Int:
		return a == armBigInt
	case rune:
		return a == armChar
	case string:
		return a == armString
	case []byte:
		return a == armBytes
	case float64:
		return a == armFloat
	case *Array:
		return a == armArray
	case *Hash:
		return a == armHash
	case *Struct:
		return a == armStruct
	case *Set:
		return a == armSet
	case *File:
		return a == armFile
	case *Window:
		return a == armWin
	case *Program:
		return a == armProg
	case *Type:
		return a == armType
	case *Block:
		return a == armBlock
	case *Action:
		return a == armAction
	}
	return false
}

// List returns the list payload.
func (obj *Object) List() *List {
	l, _ := obj.value.(*List)
	return l
}

// SetList installs a list payload.
func (obj *Object) SetList(l *List) {
	if l == nil {
		obj.value = nil
		return
	}
	obj.SetValue(l)
}

// Obj returns the object payload (objValue).
func (obj *Object) Obj() *Object {
	o, _ := obj.value.(*Object)
	return o
}

// SetObj installs an object payload, i.e. binds a parameter or reference.
func (obj *Object) SetObj(o *Object) {
	if o == nil {
		obj.value = nil
		return
	}
	obj.SetValue(o)
}

// Int returns the integer payload.
func (obj *Object) Int() int64 {
	i, _ := obj.value.(int64)
	return i
}

// BigInt returns the big integer payload.
func (obj *Object) BigInt() *big.Int {
	b, _ := obj.value.(*big.Int)
	return b
}

// Char returns the character payload.
func (obj *Object) Char() rune {
	c, _ := obj.value.(rune)
	return c
}

// Stri returns the string payload.
func (obj *Object) Stri() string {
	s, _ := obj.value.(string)
	return s
}

// Bytes returns the byte string or point list payload.
func (obj *Object) Bytes() []byte {
	b, _ := obj.value.([]byte)
	return b
}

// Float returns the float payload.
func (obj *Object) Float() float64 {
	f, _ := obj.value.(float64)
	return f
}

// Array returns the array payload.
func (obj *Object) Array() *Array {
	a, _ := obj.value.(*Array)
	return a
}

// Hash returns the hash payload.
func (obj *Object) Hash() *Hash {
	h, _ := obj.value.(*Hash)
	return h
}

// Struct returns the struct payload.
func (obj *Object) Struct() *Struct {
	s, _ := obj.value.(*Struct)
	return s
}

// Set returns the set payload.
func (obj *Object) Set() *Set {
	s, _ := obj.value.(*Set)
	return s
}

// File returns the file payload.
func (obj *Object) File() *File {
	f, _ := obj.value.(*File)
	return f
}

// Window returns the window payload.
func (obj *Object) Window() *Window {
	w, _ := obj.value.(*Window)
	return w
}

// Program returns the program payload.
func (obj *Object) Program() *Program {
	p, _ := obj.value.(*Program)
	return p
}

// TypeValue returns the type payload of a TYPEOBJECT.
func (obj *Object) TypeValue() *Type {
	t, _ := obj.value.(*Type)
	return t
}

// Block returns the block payload.
func (obj *Object) Block() *Block {
	b, _ := obj.value.(*Block)
	return b
}

// Action returns the action payload.
func (obj *Object) Action() *Action {
	a, _ := obj.value.(*Action)
	return a
}

// --- Debugging -------------------------------------------------------------

// String is a debug Stringer for objects.
func (obj *Object) String() string {
	if obj == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(strings.ToLower(strings.TrimSuffix(obj.category.String(), "OBJECT")))
	if name := obj.Name(); name != "" {
		b.WriteString(" '")
		b.WriteString(name)
		b.WriteString("'")
	}
	switch obj.category.arm() {
	case armInt:
		fmt.Fprintf(&b, " %d", obj.Int())
	case armChar:
		fmt.Fprintf(&b, " %q", obj.Char())
	case armString:
		fmt.Fprintf(&b, " %q", obj.Stri())
	case armFloat:
		fmt.Fprintf(&b, " %g", obj.Float())
	case armBigInt:
		if bi := obj.BigInt(); bi != nil {
			fmt.Fprintf(&b, " %s", bi.String())
		}
	case armType:
		if t := obj.TypeValue(); t != nil {
			fmt.Fprintf(&b, " %s", t.Name)
		}
	case armAction:
		if a := obj.Action(); a != nil {
			fmt.Fprintf(&b, " %s", a.Name)
		}
	case armList:
		fmt.Fprintf(&b, " %s", obj.List().String())
	}
	b.WriteString(">")
	return b.String()
}
