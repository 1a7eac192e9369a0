package lexer

import (
	"math/big"
	"strings"
)

const (
	binaryDigits  = "01"
	octalDigits   = "01234567"
	decimalDigits = "0123456789"
	hexDigits     = "0123456789abcdefABCDEF"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'(': TokParenLeft,
	')': TokParenRight,
	'{': TokBraceLeft,
	'}': TokBraceRight,
	',': TokComma,
	'+': TokAdd,
	'-': TokSub,
	'*': TokMul,
	'/': TokDiv,
	'^': TokExp,
}

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	r := l.peek()
	if l.atEOF {
		return l.emit(TokEOF)
	}
	if tok, ok := singles[r]; ok {
		l.next()
		return l.emit(tok)
	}

	switch {
	case strings.ContainsRune(whitespaceChars, r):
		l.acceptRun(whitespaceChars)
		l.ignore()
		return lexText
	case r == '<', r == '>':
		return lexShift
	case r == '"':
		return lexQuoted('"', TokString)
	case r == '`':
		return lexQuoted('`', TokAsm)
	case r >= '0' && r <= '9':
		return lexNumber
	default:
		return l.errorf("unexpected character: %q", r)
	}
}

// lexShift scans the two character shift operators. A lone '<' or '>'
// is not part of the language.
func lexShift(l *Lexer) stateFn {
	r := l.next()
	if l.peek() != r {
		return l.errorf("unexpected character: %q", r)
	}
	l.next()
	if r == '<' {
		return l.emit(TokLShift)
	}
	return l.emit(TokRShift)
}

// lexQuoted scans a literal delimited by kind. There is no escaping: the
// next kind rune always terminates the body.
func lexQuoted(kind rune, tt TokenType) stateFn {
	return func(l *Lexer) stateFn {
		l.next()
		for {
			r := l.next()
			if l.atEOF {
				return l.errorf("unclosed %s literal", strings.ToLower(tt.String()))
			}
			if r == kind {
				break
			}
		}
		tok := l.thisToken(tt)
		tok.Value = tok.Value[1 : len(tok.Value)-1]
		return l.emitToken(tok)
	}
}

// lexNumber scans an integer literal: 0x hex, 0b binary, 0 octal or
// decimal.
func lexNumber(l *Lexer) stateFn {
	digits := decimalDigits
	if l.accept("0") {
		digits = octalDigits
		switch {
		case l.accept("xX"):
			digits = hexDigits
			if !l.acceptRun(digits) {
				return l.errorf("malformed numeric literal %q", l.input[l.start:l.pos])
			}
		case l.accept("bB"):
			digits = binaryDigits
			if !l.acceptRun(digits) {
				return l.errorf("malformed numeric literal %q", l.input[l.start:l.pos])
			}
		}
	}
	l.acceptRun(digits)
	if r := l.peek(); strings.ContainsRune(decimalDigits, r) {
		return l.errorf("malformed numeric literal %q", l.input[l.start:l.pos+1])
	}

	n, ok := new(big.Int).SetString(l.input[l.start:l.pos], 0)
	if !ok {
		return l.errorf("malformed numeric literal %q", l.input[l.start:l.pos])
	}
	tok := l.thisToken(TokNumber)
	tok.Value = ""
	tok.Num = new(big.Rat).SetInt(n)
	return l.emitToken(tok)
}
