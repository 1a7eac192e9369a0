// Package parser turns the lexer token sequence into an expression tree
// using a shunting yard, and drives the whole evaluation pipeline.
package parser

import (
	"errors"
	"fmt"

	"github.com/edwingeng/deque"

	"go.creack.net/ratcalc/ast"
	"go.creack.net/ratcalc/executor"
	"go.creack.net/ratcalc/lexer"
)

// ErrStructural is wrapped by every error reported by the parser.
var ErrStructural = errors.New("structural error")

// ErrEmpty is returned by Evaluate when the expression has no tokens.
var ErrEmpty = fmt.Errorf("%w: empty expression", ErrStructural)

// stackEntry is an operator stack element. Open parens and braces are
// stored with the weight of their closer so that no operator drains past
// them.
type stackEntry struct {
	tok    lexer.Token
	weight weight

	outer    int // Output floor of the enclosing group, restored on close.
	elements int // Committed array elements, braces only.
}

type parser struct {
	ops    deque.Deque // Operator stack of stackEntry.
	output []*ast.Node

	// Output index below which the current group may not reach.
	floor int

	weightLookupTable  lookupTable[weight]
	handlerLookupTable lookupTable[tokenHandler]
}

func newParser() *parser {
	p := &parser{
		ops:                deque.NewDeque(),
		weightLookupTable:  lookupTable[weight]{},
		handlerLookupTable: lookupTable[tokenHandler]{},
	}
	p.createTokenLookups()
	return p
}

// Parse consumes tokens and returns the root of the expression tree.
// An empty token sequence yields a nil root and no error.
func Parse(tokens *lexer.Tokens) (*ast.Node, error) {
	p := newParser()
	for {
		tok, ok := tokens.Next()
		if !ok {
			break
		}
		handler, exists := p.handlerLookupTable[tok.Type]
		if !exists {
			return nil, fmt.Errorf("%w: no weight for token %s", ast.ErrInternal, tok)
		}
		if err := handler(p, tok, p.weightLookupTable[tok.Type]); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

// Evaluate scans, parses and reduces input to a value: a number or an
// array of values.
func Evaluate(input string, opts executor.Options) (*ast.Node, error) {
	tokens, err := lexer.Scan(input)
	if err != nil {
		return nil, err
	}
	root, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrEmpty
	}
	if err := executor.Reduce(root, opts); err != nil {
		return nil, err
	}
	return root, nil
}

// finish drains the operator stack and checks that exactly one root is
// left.
func (p *parser) finish() (*ast.Node, error) {
	for !p.ops.Empty() {
		top := p.ops.PopBack().(stackEntry)
		if err := p.pushOutput(top); err != nil {
			return nil, err
		}
	}
	switch len(p.output) {
	case 0:
		return nil, nil
	case 1:
		return p.output[0], nil
	}
	return nil, p.errorf(p.output[1].Token, "missing operator before %s", p.output[1])
}

// drain moves operators from the stack to the output while they bind at
// least as tight as w. Closers stop at an entry of their own weight, which
// is their matching opener.
func (p *parser) drain(w weight) error {
	for !p.ops.Empty() {
		top := p.ops.Back().(stackEntry)
		if top.weight > w || (top.weight == w && w.isCloser()) {
			break
		}
		p.ops.PopBack()
		if err := p.pushOutput(top); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) pushOp(e stackEntry) { p.ops.PushBack(e) }

// topOp returns the operator stack top, if any.
func (p *parser) topOp() (stackEntry, bool) {
	if p.ops.Empty() {
		return stackEntry{}, false
	}
	return p.ops.Back().(stackEntry), true
}

func (p *parser) popNode() *ast.Node {
	n := p.output[len(p.output)-1]
	p.output = p.output[:len(p.output)-1]
	return n
}

func (p *parser) errorf(tok lexer.Token, format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrStructural, tok.Line(), tok.Pos(), fmt.Sprintf(format, args...))
}
