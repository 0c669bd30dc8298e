package object

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Category is the closed set of object kinds. The category of an object
// determines which payload arm is valid.
type Category uint8

// Object categories.
const (
	SymbolObject      Category = iota // identifier or special symbol
	DeclaredObject                    // declared, but not yet initialized
	ForwardObject                     // forward declaration placeholder
	FwdRefObject                      // reference to a forward declared object
	BlockObject                       // user defined procedure or function
	CallObject                        // resolved call, evaluated eagerly
	MatchObject                       // resolved call, passed by name
	TypeObject                        // a type as a value
	FormParamObject                   // formal parameter declaration
	InterfaceObject                   // struct seen through an interface
	ExprObject                        // unresolved expression
	ListObject                        // list of objects
	ActObject                         // primitive action
	ValueParamObject                  // by-value formal parameter
	RefParamObject                    // by-reference formal parameter
	ResultObject                      // result slot of a function
	LocalVObject                      // local variable of a block
	VarEnumObject                     // variable referring to an enum literal
	ConstEnumObject                   // constant referring to an enum literal
	EnumLiteralObject                 // enumeration literal
	IntObject
	BigIntObject
	CharObject
	StriObject
	BStriObject
	ArrayObject
	HashObject
	StructObject
	FileObject
	SetObject
	FloatObject
	WinObject
	PointListObject
	ProgObject
	RefObject
	RefListObject
	freedObject // header of a released object
)

var categoryNames = [...]string{
	"SYMBOLOBJECT", "DECLAREDOBJECT", "FORWARDOBJECT", "FWDREFOBJECT",
	"BLOCKOBJECT", "CALLOBJECT", "MATCHOBJECT", "TYPEOBJECT", "FORMPARAMOBJECT",
	"INTERFACEOBJECT", "EXPROBJECT", "LISTOBJECT", "ACTOBJECT",
	"VALUEPARAMOBJECT", "REFPARAMOBJECT", "RESULTOBJECT", "LOCALVOBJECT",
	"VARENUMOBJECT", "CONSTENUMOBJECT", "ENUMLITERALOBJECT", "INTOBJECT",
	"BIGINTOBJECT", "CHAROBJECT", "STRIOBJECT", "BSTRIOBJECT", "ARRAYOBJECT",
	"HASHOBJECT", "STRUCTOBJECT", "FILEOBJECT", "SETOBJECT", "FLOATOBJECT",
	"WINOBJECT", "POINTLISTOBJECT", "PROGOBJECT", "REFOBJECT", "REFLISTOBJECT",
	"FREEDOBJECT",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("CATEGORY(%d)", c)
}

// --- Payload arms ----------------------------------------------------------

// arm identifies the payload arm of an object.
type arm uint8

const (
	armNone arm = iota
	armList
	armObj
	armInt
	armBigInt
	armChar
	armString
	armBytes
	armFloat
	armArray
	armHash
	armStruct
	armSet
	armFile
	armWin
	armProg
	armType
	armBlock
	armAction
)

var categoryArms = [...]arm{
	SymbolObject:      armNone,
	DeclaredObject:    armNone,
	ForwardObject:     armNone,
	FwdRefObject:      armObj,
	BlockObject:       armBlock,
	CallObject:        armList,
	MatchObject:       armList,
	TypeObject:        armType,
	FormParamObject:   armObj,
	InterfaceObject:   armObj,
	ExprObject:        armList,
	ListObject:        armList,
	ActObject:         armAction,
	ValueParamObject:  armObj,
	RefParamObject:    armObj,
	ResultObject:      armObj,
	LocalVObject:      armObj,
	VarEnumObject:     armObj,
	ConstEnumObject:   armObj,
	EnumLiteralObject: armInt,
	IntObject:         armInt,
	BigIntObject:      armBigInt,
	CharObject:        armChar,
	StriObject:        armString,
	BStriObject:       armBytes,
	ArrayObject:       armArray,
	HashObject:        armHash,
	StructObject:      armStruct,
	FileObject:        armFile,
	SetObject:         armSet,
	FloatObject:       armFloat,
	WinObject:         armWin,
	PointListObject:   armBytes,
	ProgObject:        armProg,
	RefObject:         armObj,
	RefListObject:     armList,
	freedObject:       armNone,
}

func (c Category) arm() arm {
	if int(c) < len(categoryArms) {
		return categoryArms[c]
	}
	return armNone
}

// IsCall is true for resolved call categories.
func (c Category) IsCall() bool {
	return c == CallObject || c == MatchObject
}

// IsParam is true for categories which bind a value through one indirection
// while a block is executing.
func (c Category) IsParam() bool {
	switch c {
	case ValueParamObject, RefParamObject, ResultObject, LocalVObject:
		return true
	}
	return false
}

// IsCode is true for categories which represent executable code rather than data.
func (c Category) IsCode() bool {
	switch c {
	case BlockObject, ActObject, CallObject, MatchObject:
		return true
	}
	return false
}
