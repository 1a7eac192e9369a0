package parser

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/ratcalc/ast"
	"go.creack.net/ratcalc/lexer"
)

func parse(t *testing.T, input string) (*ast.Node, error) {
	t.Helper()
	tokens, err := lexer.Scan(input)
	require.NoError(t, err, "scan %q", input)
	return Parse(tokens)
}

func TestParserShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "number", input: "42", want: "42"},
		{name: "sum", input: "1 + 2", want: "(1 + 2)"},
		{name: "left assoc", input: "99 - 1 - 2", want: "((99 - 1) - 2)"},
		{name: "product binds tighter", input: "1 + 2 * 3", want: "(1 + (2 * 3))"},
		{name: "product first", input: "2 * 3 + 1", want: "((2 * 3) + 1)"},
		{name: "shift binds tightest", input: "1 + 2 << 3 * 4", want: "(1 + ((2 << 3) * 4))"},
		{name: "exp at shift level", input: "2 ^ 3 >> 1", want: "((2 ^ 3) >> 1)"},
		{name: "parens", input: "(1 + 2) * 3", want: "((1 + 2) * 3)"},
		{name: "nested parens", input: "((1))", want: "1"},
		{
			name:  "reference expression",
			input: "(12 + 5)/(99 - 1 - 2 - 3 - 4 * 20)",
			want:  "((12 + 5) / ((((99 - 1) - 2) - 3) - (4 * 20)))",
		},
		{name: "array", input: "{1, 2, 3}", want: "{1, 2, 3}"},
		{name: "empty array", input: "{}", want: "{}"},
		{name: "single element", input: "{7}", want: "{7}"},
		{name: "array elements are expressions", input: "{1 + 2, (3), 4 * 5}", want: "{(1 + 2), 3, (4 * 5)}"},
		{name: "nested arrays", input: "{{1, 2}, {}, 3}", want: "{{1, 2}, {}, 3}"},
		{name: "array operand", input: "{1, 2, 3} * 2", want: "({1, 2, 3} * 2)"},
		{name: "array right operand", input: "1 + {2}", want: "(1 + {2})"},
		{name: "string operand", input: `"AB" + 1`, want: `("AB" + 1)`},
		{name: "asm leaf", input: "`nop`", want: "`nop`"},
		{name: "grouped array", input: "({1} + 1) * 2", want: "(({1} + 1) * 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parse(t, tt.input)
			require.NoError(t, err)
			require.NotNil(t, root)
			assert.Equal(t, tt.want, root.String(), "tree:\n%s", pretty.Sprint(root))
		})
	}
}

func TestParserDump(t *testing.T) {
	root, err := parse(t, `{1, "A"} - 2`)
	require.NoError(t, err)
	assert.Equal(t, "SUB\n\tARRAY\n\t\t1\n\t\tSTRING \"A\"\n\t2\n", root.Dump())
}

func TestParserEmpty(t *testing.T) {
	root, err := parse(t, "  ")
	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{name: "missing right operand", input: "(1 + )", msg: "missing operand for '+'"},
		{name: "missing left operand", input: "* 2", msg: "missing operand for '*'"},
		{name: "trailing operator", input: "1 -", msg: "missing operand for '-'"},
		{name: "unary minus", input: "-1", msg: "missing operand for '-'"},
		{name: "unclosed paren", input: "(1 + 2", msg: "unclosed '('"},
		{name: "unmatched paren", input: "1 + 2)", msg: "unmatched ')'"},
		{name: "paren closes brace", input: "{1)", msg: "unmatched ')'"},
		{name: "brace closes paren", input: "(1}", msg: "unclosed '('"},
		{name: "unclosed brace", input: "{1, 2", msg: "unclosed '{'"},
		{name: "unmatched brace", input: "1}", msg: "unmatched '}'"},
		{name: "comma outside array", input: "1, 2", msg: "',' outside of array"},
		{name: "comma in parens", input: "(1, 2)", msg: "unclosed '('"},
		{name: "empty parens", input: "()", msg: "empty parentheses"},
		{name: "leading comma", input: "{, 1}", msg: "empty array element"},
		{name: "trailing comma", input: "{1,}", msg: "empty array element"},
		{name: "double comma", input: "{1,,2}", msg: "empty array element"},
		{name: "juxtaposed values", input: "1 2", msg: "missing operator before 2"},
		{name: "juxtaposed in array", input: "{1 2}", msg: "missing operator before 2"},
		{name: "juxtaposed arrays", input: "{1}{2}", msg: "missing operator before {2}"},
		{name: "operator does not reach accumulator", input: "{+ 1}", msg: "missing operand for '+'"},
		{name: "operator does not reach outer group", input: "1 + (* 2)", msg: "missing operand for '*'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parse(t, tt.input)
			require.Error(t, err, "got tree %s", root)
			assert.True(t, errors.Is(err, ErrStructural), "%v", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParserErrorPosition(t *testing.T) {
	_, err := parse(t, "1 + (2 * )")
	require.Error(t, err)
	assert.Equal(t, "structural error at 1:7: missing operand for '*'", err.Error())
}

func TestParserUnknownToken(t *testing.T) {
	_, err := Parse(lexer.NewTokens(lexer.Token{Type: lexer.TokEOF}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ast.ErrInternal))
}

// Trees have no grouping tokens, operators have two children and array
// elements are trees themselves.
func TestParserTreeInvariants(t *testing.T) {
	inputs := []string{
		"(12 + 5)/(99 - 1 - 2 - 3 - 4 * 20)",
		`{"AB", {1, (2 + 3) * 4}, {}} << 1 >> (2 - 1)`,
		"((((1)))) + {{{}}}",
		"`x` * {1, `y`}",
	}
	for _, input := range inputs {
		root, err := parse(t, input)
		require.NoError(t, err, input)
		ast.Walk(root, func(n *ast.Node) bool {
			typ := n.Type()
			assert.False(t, typ.IsOneOf(lexer.TokParenLeft, lexer.TokParenRight,
				lexer.TokBraceLeft, lexer.TokBraceRight, lexer.TokComma), "%s in %q", typ, input)
			switch {
			case typ.IsOperator():
				assert.Len(t, n.Children, 2, "%s in %q", typ, input)
			case typ == lexer.TokArray:
				for _, c := range n.Children {
					assert.NotNil(t, c)
				}
			default:
				assert.Empty(t, n.Children, "%s in %q", typ, input)
			}
			return true
		})
	}
}
