package object

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// LocObj is a local variable or the result slot of a block, together with
// its initial value.
type LocObj struct {
	Obj  *Object
	Init *Object
}

// Block is a resolved user defined procedure or function.
//
// Params holds the formal parameter objects only, aligned with the actual
// parameters of a call. Symbols of the name pattern are not part of it.
type Block struct {
	Params     *List
	Result     *LocObj // nil for procedures
	LocalVars  []LocObj
	Body       *Object
	UsageCount int
}

// NewBlock creates a block with a usage count of 1.
func NewBlock(params *List, result *LocObj, locals []LocObj, body *Object) *Block {
	return &Block{
		Params:     params,
		Result:     result,
		LocalVars:  locals,
		Body:       body,
		UsageCount: 1,
	}
}

// --- Primitive actions -----------------------------------------------------

// ActionFunc is the signature of primitive actions. Arguments arrive
// evaluated. Failure is signalled through ev.Raise instead of a Go error, and
// the returned object is then ignored.
type ActionFunc func(ev Evaluator, args *List) *Object

// Action is a primitive registered under a stable name.
type Action struct {
	Name string
	Fn   ActionFunc
}

// DynamicActionName is the name of the primitive designating a call site
// which has to be re-matched at run time.
const DynamicActionName = "PRC_DYNAMIC"

// IsDynamic is true for ACTOBJECTs of the dynamic dispatch primitive.
func IsDynamic(obj *Object) bool {
	if obj == nil || obj.category != ActObject {
		return false
	}
	a := obj.Action()
	return a != nil && a.Name == DynamicActionName
}

// Evaluator is what primitive actions see of the interpreter.
type Evaluator interface {
	// Evaluate evaluates a call-by-name argument.
	Evaluate(obj *Object) *Object
	// Raise sets the fail state, if it is not set already.
	Raise(exception *Object)
	// RaiseException raises a predefined exception by name, e.g. "RANGE_ERROR".
	RaiseException(name string)
	// Failing reports the fail flag.
	Failing() bool
	// FailValue is the exception currently propagating, or nil.
	FailValue() *Object
	// ResetFail clears the fail state.
	ResetFail()
	// BuildTemp creates a TEMP object.
	BuildTemp(cat Category, typ *Type, value interface{}) *Object
	// Release releases a TEMP object.
	Release(obj *Object)
	// Assign copies the value of src into the variable dest.
	Assign(dest, src *Object)
}
