// Package lexer provides the lexical scanner for rational expressions.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrLexical is wrapped by every error reported by the lexer.
var ErrLexical = errors.New("lexical error")

const whitespaceChars = " \t\n\v\f\r"

type Lexer struct {
	input string

	curToken Token

	atEOF bool

	pos   int // Current position in input.
	width int // Width of the last rune read.
	line  int // Current line in input.

	start     int // Position of the start of the current token.
	startLine int // Line where the current token started.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input:     input,
		line:      1,
		startLine: 1,
	}
	return l
}

// NextToken scans and returns the next token.
// Once the input is exhausted or an error was reported, it returns TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Value: "EOF", pos: l.pos, line: l.line}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		l.width = 0
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	l.width = n
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) backup() {
	// Nothing was consumed by the last next call at the end of input.
	if l.width == 0 {
		return
	}
	l.atEOF = false
	l.pos -= l.width
	if l.input[l.pos] == '\n' {
		l.line--
	}
	l.width = 0
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) && l.width > 0 {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for l.accept(valid) {
		accepted = true
	}
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
		line:  l.startLine,
	}
	l.start = l.pos
	l.startLine = l.line
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
	l.startLine = l.line
}

func (l *Lexer) errorf(format string, args ...any) stateFn {
	l.curToken = Token{
		Type:  TokError,
		Value: fmt.Sprintf(format, args...),
		pos:   l.start,
		line:  l.startLine,
	}
	l.start = 0
	l.pos = 0
	l.width = 0
	l.input = l.input[:0]
	return nil
}

// Scan splits input into its ordered token sequence.
// On failure the tokens scanned before the offending character are
// returned along with an error wrapping ErrLexical.
func Scan(input string) (*Tokens, error) {
	l := New(input)
	tokens := NewTokens()
	for {
		tok := l.NextToken()
		switch tok.Type {
		case TokEOF:
			return tokens, nil
		case TokError:
			return tokens, fmt.Errorf("%w at %d:%d: %s", ErrLexical, tok.line, tok.pos, tok.Value)
		}
		tokens.Push(tok)
	}
}
