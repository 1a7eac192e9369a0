package parser

import (
	"fmt"

	"go.creack.net/ratcalc/ast"
	"go.creack.net/ratcalc/lexer"
)

func pushValue(p *parser, tok lexer.Token, _ weight) error {
	p.output = append(p.output, ast.NewLeaf(tok))
	return nil
}

func pushOperator(p *parser, tok lexer.Token, w weight) error {
	if err := p.drain(w); err != nil {
		return err
	}
	p.pushOp(stackEntry{tok: tok, weight: w})
	return nil
}

func parseGroupOpen(p *parser, tok lexer.Token, w weight) error {
	if err := p.drain(w); err != nil {
		return err
	}
	p.pushOp(stackEntry{tok: tok, weight: wGroupClose, outer: p.floor})
	p.floor = len(p.output)
	return nil
}

// parseArrayOpen pushes the array accumulator to the output; elements are
// attached to it by parseArrayElement.
func parseArrayOpen(p *parser, tok lexer.Token, w weight) error {
	if err := p.drain(w); err != nil {
		return err
	}
	p.pushOp(stackEntry{tok: tok, weight: wArrayClose, outer: p.floor})
	p.output = append(p.output, &ast.Node{Token: lexer.Token{Type: lexer.TokArray}})
	p.floor = len(p.output)
	return nil
}

func parseGroupClose(p *parser, tok lexer.Token, w weight) error {
	if err := p.drain(w); err != nil {
		return err
	}
	top, ok := p.topOp()
	if !ok || top.tok.Type != lexer.TokParenLeft {
		return p.errorf(tok, "unmatched ')'")
	}
	if err := p.checkElement(tok, "parentheses"); err != nil {
		return err
	}
	p.ops.PopBack()
	p.floor = top.outer
	return nil
}

// parseArrayElement handles ',' and '}': the completed element is moved
// from the output into the accumulator below it.
func parseArrayElement(p *parser, tok lexer.Token, w weight) error {
	if err := p.drain(w); err != nil {
		return err
	}
	top, ok := p.topOp()
	if !ok || top.tok.Type != lexer.TokBraceLeft {
		if tok.Type == lexer.TokComma {
			return p.errorf(tok, "',' outside of array")
		}
		return p.errorf(tok, "unmatched '}'")
	}
	p.ops.PopBack()

	// '{}' is the empty array.
	empty := tok.Type == lexer.TokBraceRight && top.elements == 0 && len(p.output) == p.floor
	if !empty {
		if err := p.checkElement(tok, "array element"); err != nil {
			return err
		}
		if err := p.commitElement(); err != nil {
			return err
		}
		top.elements++
	}

	if tok.Type == lexer.TokComma {
		p.pushOp(top)
		return nil
	}
	p.floor = top.outer
	return nil
}

// checkElement verifies that the current group produced exactly one node.
func (p *parser) checkElement(tok lexer.Token, what string) error {
	switch n := len(p.output) - p.floor; {
	case n == 0:
		return p.errorf(tok, "empty %s", what)
	case n > 1:
		return p.errorf(tok, "missing operator before %s", p.output[p.floor+1])
	}
	return nil
}

func (p *parser) commitElement() error {
	if len(p.output) < 2 {
		return fmt.Errorf("%w: no array accumulator", ast.ErrInternal)
	}
	child := p.popNode()
	parent := p.output[len(p.output)-1]
	if parent.Type() != lexer.TokArray {
		return fmt.Errorf("%w: array element attached to %s", ast.ErrInternal, parent.Type())
	}
	parent.Children = append(parent.Children, child)
	return nil
}

// pushOutput attaches the top two output nodes of the current group to an
// operator, right first, and replaces them with it.
func (p *parser) pushOutput(e stackEntry) error {
	switch {
	case e.tok.Type == lexer.TokParenLeft:
		return p.errorf(e.tok, "unclosed '('")
	case e.tok.Type == lexer.TokBraceLeft:
		return p.errorf(e.tok, "unclosed '{'")
	case !e.tok.Type.IsOperator():
		return fmt.Errorf("%w: %s on the operator stack", ast.ErrInternal, e.tok)
	}
	if len(p.output)-p.floor < 2 {
		return p.errorf(e.tok, "missing operand for '%s'", e.tok.Type.Symbol())
	}
	right := p.popNode()
	left := p.popNode()
	p.output = append(p.output, ast.NewBinary(e.tok, left, right))
	return nil
}
