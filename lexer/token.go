package lexer

import (
	"fmt"
	"math/big"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Grouping.
	TokParenLeft  // '('.
	TokParenRight // ')'.
	TokBraceLeft  // '{'.
	TokBraceRight // '}'.
	TokComma      // ','.

	// Operators.
	TokAdd    // '+'.
	TokSub    // '-'.
	TokMul    // '*'.
	TokDiv    // '/'.
	TokExp    // '^'.
	TokLShift // '<<'.
	TokRShift // '>>'.

	// Literals.
	TokNumber
	TokString // "...".
	TokAsm    // `...`.

	// Tree only, never emitted by the lexer.
	TokArray

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
	TokBraceLeft:  "BRACE_LEFT",
	TokBraceRight: "BRACE_RIGHT",
	TokComma:      "COMMA",

	TokAdd:    "ADD",
	TokSub:    "SUB",
	TokMul:    "MUL",
	TokDiv:    "DIV",
	TokExp:    "EXP",
	TokLShift: "LSHIFT",
	TokRShift: "RSHIFT",

	TokNumber: "NUMBER",
	TokString: "STRING",
	TokAsm:    "ASM",

	TokArray: "ARRAY",
}

// Symbols for the punctuation and operator tokens, used in messages.
var tokenSymbols = map[TokenType]string{
	TokParenLeft:  "(",
	TokParenRight: ")",
	TokBraceLeft:  "{",
	TokBraceRight: "}",
	TokComma:      ",",
	TokAdd:        "+",
	TokSub:        "-",
	TokMul:        "*",
	TokDiv:        "/",
	TokExp:        "^",
	TokLShift:     "<<",
	TokRShift:     ">>",
}

// Symbol returns the source spelling of an operator or punctuation type,
// or its name for the other types.
func (tt TokenType) Symbol() string {
	if s, ok := tokenSymbols[tt]; ok {
		return s
	}
	return tt.String()
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsOperator reports whether tt is one of the binary arithmetic operators.
func (tt TokenType) IsOperator() bool {
	return tt.IsOneOf(TokAdd, TokSub, TokMul, TokDiv, TokExp, TokLShift, TokRShift)
}

// IsLiteral reports whether tt carries a payload.
func (tt TokenType) IsLiteral() bool {
	return tt.IsOneOf(TokNumber, TokString, TokAsm)
}

// Token represents a lexical token of an expression.
//
// Number tokens carry their value in Num. String and asm tokens carry the
// body between the delimiters in Value. Operators and punctuation keep
// their source text in Value, for messages only.
type Token struct {
	Type  TokenType
	Value string
	Num   *big.Rat

	pos  int
	line int
}

// NewNumber returns a number token holding a copy of r.
func NewNumber(r *big.Rat) Token {
	return Token{Type: TokNumber, Num: new(big.Rat).Set(r)}
}

// Pos returns the byte offset of the token in the input.
func (t Token) Pos() int { return t.pos }

// Line returns the line the token ends on.
func (t Token) Line() int { return t.line }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case t.Type == TokNumber && t.Num != nil:
		return fmt.Sprintf("%s[%d:%d]: %s", t.Type, t.line, t.pos, t.Num.RatString())
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.line, t.pos, t.Value)
	case t.Type.IsLiteral():
		return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.line, t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]", t.Type, t.line, t.pos)
}

func (t Token) errorString() string {
	out := fmt.Sprintf("ERROR [%d:%d]: %s", t.line, t.pos, t.Value)
	return out
}
