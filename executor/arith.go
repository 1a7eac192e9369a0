package executor

import (
	"fmt"
	"math/big"

	"go.creack.net/ratcalc/ast"
	"go.creack.net/ratcalc/lexer"
)

// arith computes x op y exactly. x and y are not modified.
func arith(op lexer.Token, x, y *big.Rat, maxShift uint) (*big.Rat, error) {
	z := new(big.Rat)
	switch op.Type {
	case lexer.TokAdd:
		return z.Add(x, y), nil
	case lexer.TokSub:
		return z.Sub(x, y), nil
	case lexer.TokMul:
		return z.Mul(x, y), nil
	case lexer.TokDiv:
		if y.Sign() == 0 {
			return nil, semanticErrorf(op, "division by zero")
		}
		return z.Quo(x, y), nil
	case lexer.TokLShift, lexer.TokRShift:
		count, err := shiftCount(op, y, maxShift)
		if err != nil {
			return nil, err
		}
		// Shift the numerator, keep the denominator.
		num := new(big.Int).Set(x.Num())
		if op.Type == lexer.TokLShift {
			num.Lsh(num, count)
		} else {
			num.Rsh(num, count)
		}
		return z.SetFrac(num, x.Denom()), nil
	case lexer.TokExp:
		return nil, semanticErrorf(op, "operator '%s' is not supported", op.Type.Symbol())
	}
	return nil, fmt.Errorf("%w: %s is not an arithmetic operator", ast.ErrInternal, op)
}

// shiftCount converts y to a shift count, truncating toward zero.
func shiftCount(op lexer.Token, y *big.Rat, maxShift uint) (uint, error) {
	n := new(big.Int).Quo(y.Num(), y.Denom())
	switch {
	case n.Sign() < 0:
		return 0, semanticErrorf(op, "illegal shift count %s", n)
	case !n.IsUint64() || n.Uint64() > uint64(maxShift):
		return 0, semanticErrorf(op, "shift count %s exceeds %d", n, maxShift)
	}
	return uint(n.Uint64()), nil
}
