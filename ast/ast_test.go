package ast

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/ratcalc/lexer"
)

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{name: "int", node: NewInt(16), want: "16"},
		{name: "rat", node: NewNumber(big.NewRat(17, -7)), want: "-17/7"},
		{name: "array", node: NewArray(NewInt(66), NewInt(67)), want: "{66, 67}"},
		{name: "empty array", node: NewArray(), want: "{}"},
		{name: "nested", node: NewArray(NewArray(NewInt(1)), NewInt(2)), want: "{{1}, 2}"},
		{name: "string", node: NewLeaf(lexer.Token{Type: lexer.TokString, Value: "AB"}), want: `"AB"`},
		{
			name: "binary",
			node: NewBinary(lexer.Token{Type: lexer.TokLShift}, NewInt(1), NewInt(4)),
			want: "(1 << 4)",
		},
		{name: "nil", node: nil, want: "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestNodeDump(t *testing.T) {
	tree := NewBinary(lexer.Token{Type: lexer.TokAdd},
		NewArray(NewInt(1), NewLeaf(lexer.Token{Type: lexer.TokString, Value: "x"})),
		NewInt(2),
	)
	assert.Equal(t, "ADD\n\tARRAY\n\t\t1\n\t\tSTRING \"x\"\n\t2\n", tree.Dump())
}

func TestIsValue(t *testing.T) {
	assert.True(t, NewInt(1).IsValue())
	assert.True(t, NewArray(NewArray(), NewInt(1)).IsValue())
	assert.False(t, NewArray(NewLeaf(lexer.Token{Type: lexer.TokString})).IsValue())
	assert.False(t, NewBinary(lexer.Token{Type: lexer.TokAdd}, NewInt(1), NewInt(2)).IsValue())
}

func TestClone(t *testing.T) {
	orig := NewArray(NewInt(1), NewArray(NewInt(2)))
	c := orig.Clone()
	c.Children[0].Token.Num.SetInt64(10)
	c.Children[1].Children = append(c.Children[1].Children, NewInt(3))

	assert.Equal(t, "{1, {2}}", orig.String())
	assert.Equal(t, "{10, {2, 3}}", c.String())
}

func TestWalk(t *testing.T) {
	tree := NewBinary(lexer.Token{Type: lexer.TokMul}, NewArray(NewInt(1), NewInt(2)), NewInt(3))
	var seen []string
	Walk(tree, func(n *Node) bool {
		seen = append(seen, n.Type().String())
		return n.Type() != lexer.TokArray
	})
	require.Equal(t, []string{"MUL", "ARRAY", "NUMBER"}, seen)
}
