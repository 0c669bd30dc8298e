package s7lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/ThomasMertes/seed7-sub008"
)

// TokKind is the kind of a scanned token.
type TokKind int

// Token kinds.
const (
	EOF TokKind = iota
	Ident
	Special
	Number
	String
	LParen
	RParen
	Semicolon
)

var kindNames = [...]string{"EOF", "ID", "SPECIAL", "NUM", "STRING", "(", ")", ";"}

func (k TokKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TOK(%d)", k)
}

// Token is a scanned token.
type Token struct {
	Kind   TokKind
	Lexeme string
	Pos    seed7.Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%s '%s' @%s", t.Kind, t.Lexeme, t.Pos)
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time compilation of the DFA

// Lexer returns the compiled lexer, compiling it on first use.
func Lexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`#[^\n]*\n?`), skip)
		lx.Add([]byte(`( |\t|\n|\r)+`), skip)
		lx.Add([]byte(`\"[^"\n]*\"`), makeToken(String))
		lx.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(Ident))
		lx.Add([]byte(`[0-9]+`), makeToken(Number))
		lx.Add([]byte(`\(`), makeToken(LParen))
		lx.Add([]byte(`\)`), makeToken(RParen))
		lx.Add([]byte(`;`), makeToken(Semicolon))
		lx.Add([]byte(`,`), makeToken(Special))
		lx.Add([]byte(`(\+|\-|\*|/|<|>|=|!|&|\||:|@|~|\^|\?|%|\$|\.)+`), makeToken(Special))
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = err
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(kind TokKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

// Scan splits an input into tokens. Unknown characters are reported to
// onError, if given, and skipped.
func Scan(file, input string, onError func(error)) ([]Token, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var toks []Token
	for {
		tok, err, eof := sc.Next()
		for err != nil {
			if onError != nil {
				onError(err)
			} else {
				tracer().Errorf("scanner error: %v", err)
			}
			if ui, is := err.(*machines.UnconsumedInput); is {
				sc.TC = ui.FailTC
			}
			tok, err, eof = sc.Next()
		}
		if eof {
			return toks, nil
		}
		lt := tok.(*lexmachine.Token)
		t := Token{
			Kind:   TokKind(lt.Type),
			Lexeme: string(lt.Lexeme),
			Pos: seed7.Pos{
				File:   file,
				Line:   uint32(lt.StartLine),
				Column: seed7.Span{uint64(lt.StartColumn), uint64(lt.EndColumn + 1)},
			},
		}
		tracer().Debugf("token %v", t)
		toks = append(toks, t)
	}
}
