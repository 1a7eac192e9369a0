// Package executor reduces expression trees to values.
package executor

import (
	"errors"
	"fmt"

	"go.creack.net/ratcalc/ast"
	"go.creack.net/ratcalc/lexer"
)

// ErrSemantic is wrapped by every error reported while reducing a
// well-formed tree.
var ErrSemantic = errors.New("semantic error")

// DefaultMaxShift is the largest shift count accepted when Options.MaxShift
// is zero.
const DefaultMaxShift = 1 << 16

// Options tunes the reduction.
type Options struct {
	// PermissiveAsm lowers asm literals to byte arrays, like strings.
	PermissiveAsm bool
	// MaxShift bounds the count of '<<' and '>>'.
	MaxShift uint
}

func (o Options) maxShift() uint {
	if o.MaxShift == 0 {
		return DefaultMaxShift
	}
	return o.MaxShift
}

type reducer struct {
	opts Options
}

// Reduce rewrites the tree rooted at n in place until it only holds
// values: a number, or an array whose leaves are all numbers. On error the
// tree is left partially reduced.
func Reduce(n *ast.Node, opts Options) error {
	if n == nil {
		return fmt.Errorf("%w: reduce nil tree", ast.ErrInternal)
	}
	r := &reducer{opts: opts}
	return r.reduce(n)
}

func (r *reducer) reduce(n *ast.Node) error {
	switch typ := n.Type(); {
	case typ == lexer.TokNumber:
		if n.Token.Num == nil {
			return fmt.Errorf("%w: number without value at %d:%d", ast.ErrInternal, n.Token.Line(), n.Token.Pos())
		}
		return nil
	case typ == lexer.TokString:
		lowerBytes(n)
		return nil
	case typ == lexer.TokAsm:
		if r.opts.PermissiveAsm {
			lowerBytes(n)
			return nil
		}
		return semanticErrorf(n.Token, "asm literals are not supported")
	case typ == lexer.TokArray:
		for _, c := range n.Children {
			if err := r.reduce(c); err != nil {
				return err
			}
		}
		return nil
	case typ.IsOperator():
		return r.reduceBinary(n)
	default:
		return fmt.Errorf("%w: unexpected %s in tree", ast.ErrInternal, n.Token)
	}
}

// reduceBinary reduces both operands, combines them and makes n adopt the
// result.
func (r *reducer) reduceBinary(n *ast.Node) error {
	if len(n.Children) != 2 {
		return fmt.Errorf("%w: operator %s with %d operands", ast.ErrInternal, n.Token, len(n.Children))
	}
	for _, c := range n.Children {
		if err := r.reduce(c); err != nil {
			return err
		}
	}
	res, err := r.apply(n.Token, n.Children[0], n.Children[1])
	if err != nil {
		return err
	}
	*n = *res
	return nil
}

// apply combines two reduced operands. When exactly one side is an array
// the operator is broadcast over its elements.
func (r *reducer) apply(op lexer.Token, left, right *ast.Node) (*ast.Node, error) {
	lt, rt := left.Type(), right.Type()
	switch {
	case lt == lexer.TokArray && rt == lexer.TokArray:
		return nil, semanticErrorf(op, "cannot apply '%s' to two arrays", op.Type.Symbol())
	case lt == lexer.TokArray:
		for i, c := range left.Children {
			res, err := r.apply(op, c, right)
			if err != nil {
				return nil, err
			}
			left.Children[i] = res
		}
		return left, nil
	case rt == lexer.TokArray:
		for i, c := range right.Children {
			res, err := r.apply(op, left, c)
			if err != nil {
				return nil, err
			}
			right.Children[i] = res
		}
		return right, nil
	case lt != lexer.TokNumber || rt != lexer.TokNumber:
		return nil, fmt.Errorf("%w: '%s' applied to %s and %s", ast.ErrInternal, op.Type.Symbol(), lt, rt)
	}

	z, err := arith(op, left.Token.Num, right.Token.Num, r.opts.maxShift())
	if err != nil {
		return nil, err
	}
	// Fresh node: the same right operand may be shared by a broadcast.
	res := ast.NewLeaf(left.Token)
	res.Token.Num = z
	res.Token.Value = ""
	return res, nil
}

// lowerBytes rewrites a string or asm leaf into an array holding the value
// of each byte of its body.
func lowerBytes(n *ast.Node) {
	body := n.Token.Value
	elems := make([]*ast.Node, 0, len(body))
	for i := 0; i < len(body); i++ {
		elems = append(elems, ast.NewInt(int64(body[i])))
	}
	n.Token.Type = lexer.TokArray
	n.Token.Value = ""
	n.Children = elems
}

func semanticErrorf(tok lexer.Token, format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrSemantic, tok.Line(), tok.Pos(), fmt.Sprintf(format, args...))
}
