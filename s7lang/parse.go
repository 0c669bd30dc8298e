package s7lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"

	"github.com/ThomasMertes/seed7-sub008"
	"github.com/ThomasMertes/seed7-sub008/object"
	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// Factory creates the objects a parse tree is made of. interp.Program is a
// Factory.
type Factory interface {
	SymAt(name string, pos seed7.Pos) *object.Object
	Int(i int64) *object.Object
	Str(s string) *object.Object
	Expr(tokens ...*object.Object) *object.Object
}

// Parse scans and parses a source text. The result is an unresolved
// expression, a symbol or a literal.
func Parse(f Factory, file, src string) (*object.Object, error) {
	var scanErr error
	toks, err := Scan(file, src, func(e error) {
		if scanErr == nil {
			scanErr = &runtime.Diagnostic{Kind: runtime.Syntax, Msg: e.Error(),
				Pos: seed7.Pos{File: file}}
		}
	})
	if err != nil {
		return nil, err
	}
	if scanErr != nil {
		return nil, scanErr
	}
	p := &parser{f: f, toks: toks, file: file}
	tree, err := p.sequence()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Kind != EOF {
		return nil, p.errorf(t, "unexpected '%s'", t.Lexeme)
	}
	return tree, nil
}

type parser struct {
	f    Factory
	toks []Token
	file string
	at   int
}

func (p *parser) peek() Token {
	if p.at < len(p.toks) {
		return p.toks[p.at]
	}
	return Token{Kind: EOF, Pos: p.endPos()}
}

func (p *parser) next() Token {
	t := p.peek()
	if p.at < len(p.toks) {
		p.at++
	}
	return t
}

func (p *parser) endPos() seed7.Pos {
	if len(p.toks) == 0 {
		return seed7.Pos{File: p.file, Line: 1}
	}
	last := p.toks[len(p.toks)-1].Pos
	return seed7.Pos{File: p.file, Line: last.Line, Column: seed7.Span{last.Column.To(), last.Column.To()}}
}

func (p *parser) errorf(t Token, format string, args ...interface{}) error {
	return &runtime.Diagnostic{Kind: runtime.Syntax, Msg: fmt.Sprintf(format, args...), Pos: t.Pos}
}

// sequence parses 'group { ; group }', nesting to the right. A trailing
// separator is allowed.
func (p *parser) sequence() (*object.Object, error) {
	first, err := p.group()
	if err != nil {
		return nil, err
	}
	t := p.peek()
	if t.Kind != Semicolon {
		return first, nil
	}
	p.next()
	if k := p.peek().Kind; k == EOF || k == RParen {
		return first, nil
	}
	rest, err := p.sequence()
	if err != nil {
		return nil, err
	}
	return p.f.Expr(first, p.f.SymAt(";", t.Pos), rest), nil
}

// group parses a run of items. A single item stands for itself.
func (p *parser) group() (*object.Object, error) {
	var items []*object.Object
	for {
		t := p.peek()
		switch t.Kind {
		case EOF, RParen, Semicolon:
			switch len(items) {
			case 0:
				return nil, p.errorf(t, "expression expected")
			case 1:
				return items[0], nil
			}
			return p.f.Expr(items...), nil
		}
		item, err := p.item()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *parser) item() (*object.Object, error) {
	t := p.next()
	switch t.Kind {
	case Ident, Special:
		return p.f.SymAt(t.Lexeme, t.Pos), nil
	case Number:
		n, err := strconv.ParseInt(t.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorf(t, "integer literal too large: %s", t.Lexeme)
		}
		return p.f.Int(n).SetPos(t.Pos), nil
	case String:
		return p.f.Str(t.Lexeme[1 : len(t.Lexeme)-1]).SetPos(t.Pos), nil
	case LParen:
		inner, err := p.sequence()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.Kind != RParen {
			return nil, p.errorf(c, "')' expected, found '%s'", c.Lexeme)
		}
		return inner, nil
	}
	return nil, p.errorf(t, "unexpected '%s'", t.Lexeme)
}
