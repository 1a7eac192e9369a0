// Package ast defines the expression tree built by the parser and
// rewritten in place by the executor.
package ast

import (
	"errors"
	"fmt"
	"strings"

	"go.creack.net/ratcalc/lexer"
)

// ErrInternal is wrapped by errors reporting a broken invariant between the
// pipeline stages.
var ErrInternal = errors.New("internal error")

// Node is an expression tree node: a token and its ordered children.
//
// Number, string and asm nodes are leaves. Operator nodes have exactly two
// children, left then right. Array nodes have any number of children.
type Node struct {
	Token    lexer.Token
	Children []*Node
}

// Type returns the token type of the node.
func (n *Node) Type() lexer.TokenType { return n.Token.Type }

// IsValue reports whether the node is fully reduced: a number, or an array
// whose transitive leaves are all numbers.
func (n *Node) IsValue() bool {
	switch n.Type() {
	case lexer.TokNumber:
		return n.Token.Num != nil && len(n.Children) == 0
	case lexer.TokArray:
		for _, c := range n.Children {
			if !c.IsValue() {
				return false
			}
		}
		return true
	}
	return false
}

// Walk calls fn for n and then each of its descendants, depth first, left
// to right. It stops descending into a node when fn returns false.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Dump returns an indented, one node per line, representation of the tree.
func (n *Node) Dump() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("\t", depth))
	switch n.Type() {
	case lexer.TokNumber:
		sb.WriteString(n.String())
	case lexer.TokString, lexer.TokAsm:
		fmt.Fprintf(sb, "%s %q", n.Type(), n.Token.Value)
	default:
		sb.WriteString(n.Type().String())
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		c.dump(sb, depth+1)
	}
}

// String formats the node as an expression. Reduced values print as
// `16`, `-17/7` or `{66, 67}`.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Type() {
	case lexer.TokNumber:
		if n.Token.Num == nil {
			return "NUMBER"
		}
		return n.Token.Num.RatString()
	case lexer.TokString:
		return `"` + n.Token.Value + `"`
	case lexer.TokAsm:
		return "`" + n.Token.Value + "`"
	case lexer.TokArray:
		elems := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			elems = append(elems, c.String())
		}
		return "{" + strings.Join(elems, ", ") + "}"
	}
	if n.Type().IsOperator() && len(n.Children) == 2 {
		return fmt.Sprintf("(%s %s %s)", n.Children[0], n.Type().Symbol(), n.Children[1])
	}
	return n.Type().String()
}
