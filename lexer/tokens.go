package lexer

import "github.com/edwingeng/deque"

// Tokens is the ordered token sequence produced by Scan. It is consumed
// from the front by the parser.
type Tokens struct {
	q deque.Deque
}

// NewTokens returns an empty token sequence.
func NewTokens(toks ...Token) *Tokens {
	ts := &Tokens{q: deque.NewDeque()}
	for _, t := range toks {
		ts.Push(t)
	}
	return ts
}

// Push appends t to the sequence.
func (ts *Tokens) Push(t Token) { ts.q.PushBack(t) }

// Len returns the number of tokens left in the sequence.
func (ts *Tokens) Len() int { return ts.q.Len() }

// Next removes and returns the first token. ok is false once the sequence
// is exhausted.
func (ts *Tokens) Next() (tok Token, ok bool) {
	if ts.q.Empty() {
		return Token{Type: TokEOF}, false
	}
	return ts.q.PopFront().(Token), true
}

// Slice returns a copy of the remaining tokens without consuming them.
func (ts *Tokens) Slice() []Token {
	n := ts.q.Len()
	out := make([]Token, 0, n)
	for i := 0; i < n; i++ {
		tok := ts.q.PopFront().(Token)
		out = append(out, tok)
		ts.q.PushBack(tok)
	}
	return out
}
