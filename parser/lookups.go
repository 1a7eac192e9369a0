package parser

import (
	"go.creack.net/ratcalc/lexer"
)

// weight orders tokens for the shunting yard. Lower binds tighter.
type weight int

const (
	wLiteral        weight = -1 // Strings and asm, lowered by the executor.
	wValue          weight = 0
	wArrayOpen      weight = 1
	wGroupOpen      weight = 2
	wShift          weight = 3
	wMultiplicative weight = 4
	wAdditive       weight = 5
	wBarrier        weight = 30 // Anything above is a closer.
	wGroupClose     weight = 31
	wArrayClose     weight = 32
)

// isCloser reports whether w acts as a pop barrier.
func (w weight) isCloser() bool { return w > wBarrier }

type tokenHandler func(*parser, lexer.Token, weight) error

type lookupTable[T any] map[lexer.TokenType]T

func (p *parser) register(kind lexer.TokenType, w weight, fn tokenHandler) {
	if _, ok := p.handlerLookupTable[kind]; ok {
		panic("duplicate handler")
	}
	p.handlerLookupTable[kind] = fn
	p.weightLookupTable[kind] = w
}

func (p *parser) createTokenLookups() {
	// Values go straight to the output.
	p.register(lexer.TokNumber, wValue, pushValue)
	p.register(lexer.TokArray, wValue, pushValue)
	p.register(lexer.TokString, wLiteral, pushValue)
	p.register(lexer.TokAsm, wLiteral, pushValue)

	// Grouping.
	p.register(lexer.TokBraceLeft, wArrayOpen, parseArrayOpen)
	p.register(lexer.TokParenLeft, wGroupOpen, parseGroupOpen)
	p.register(lexer.TokParenRight, wGroupClose, parseGroupClose)
	p.register(lexer.TokComma, wArrayClose, parseArrayElement)
	p.register(lexer.TokBraceRight, wArrayClose, parseArrayElement)

	// Shift & multiplicative & additive. Exponentiation shares the shift
	// level.
	p.register(lexer.TokLShift, wShift, pushOperator)
	p.register(lexer.TokRShift, wShift, pushOperator)
	p.register(lexer.TokExp, wShift, pushOperator)
	p.register(lexer.TokMul, wMultiplicative, pushOperator)
	p.register(lexer.TokDiv, wMultiplicative, pushOperator)
	p.register(lexer.TokAdd, wAdditive, pushOperator)
	p.register(lexer.TokSub, wAdditive, pushOperator)
}
