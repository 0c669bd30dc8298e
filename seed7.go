package seed7

import "fmt"

// --- Source positions ------------------------------------------------------

// Pos is a source position of a token or an object. Objects which carry a
// position (POSINFO) use it instead of a property record.
//
// An example would be a token for an identifier:
//
//    File   = "hello.sd7"
//    Line   = 12
//    Column = 7…12        // occured from column 7, ending just before 12
//
type Pos struct {
	File   string
	Line   uint32
	Column Span
}

// NoPos is the null position.
var NoPos = Pos{}

// IsNull is true for positions which have not been set.
func (p Pos) IsNull() bool {
	return p.Line == 0 && p.File == "" && p.Column.IsNull()
}

func (p Pos) String() string {
	if p.IsNull() {
		return "<no position>"
	}
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column.From())
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column.From())
}

// --- Spans -----------------------------------------------------------------

// Span is a small type for capturing a run of input columns. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
