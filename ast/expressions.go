package ast

import (
	"math/big"

	"go.creack.net/ratcalc/lexer"
)

// NewLeaf wraps a literal token.
func NewLeaf(tok lexer.Token) *Node {
	return &Node{Token: tok}
}

// NewNumber returns a number leaf holding a copy of r.
func NewNumber(r *big.Rat) *Node {
	return &Node{Token: lexer.NewNumber(r)}
}

// NewInt returns a number leaf holding x.
func NewInt(x int64) *Node {
	return NewNumber(big.NewRat(x, 1))
}

// NewArray returns an array node with the given elements.
func NewArray(elems ...*Node) *Node {
	return &Node{Token: lexer.Token{Type: lexer.TokArray}, Children: elems}
}

// NewBinary returns an operator node.
func NewBinary(op lexer.Token, left, right *Node) *Node {
	return &Node{Token: op, Children: []*Node{left, right}}
}

// Clone returns a deep copy of n. Number payloads are copied so the clone
// can be rewritten independently.
func (n *Node) Clone() *Node {
	c := &Node{Token: n.Token}
	if n.Token.Num != nil {
		c.Token.Num = new(big.Rat).Set(n.Token.Num)
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}
