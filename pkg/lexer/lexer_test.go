package lexer

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/sqltree/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tok struct {
	Type  token.TokenType
	Value string
}

// significant drops whitespace so expectations stay readable.
func significant(input string) []tok {
	var out []tok
	for _, t := range Tokenize(input) {
		if t.IsWhitespace() {
			continue
		}
		out = append(out, tok{t.Type, t.Value})
	}
	return out
}

func TestTokenize_RoundTrip(t *testing.T) {
	inputs := []string{
		"SELECT a, b FROM t WHERE x = 1",
		"select *\n  from foo -- trailing\n where bar::int >= 2;",
		"/* head */ INSERT INTO t (a) VALUES ('it''s', \"q\"\"x\")",
		"x := $fn$ body $fn$; unterminated 'str",
		"SELECT [weird name], arr[1] FROM #tmp WHERE @v = ?",
		"\r\n\tSELECT 0xFF, 1.5e-3, .5",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var b strings.Builder
			for _, tk := range Tokenize(in) {
				b.WriteString(tk.Value)
			}
			assert.Equal(t, in, b.String())
		})
	}
}

func TestTokenize_Classification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "simple select",
			input: "SELECT a FROM t",
			want: []tok{
				{token.KEYWORD_DML, "SELECT"},
				{token.NAME, "a"},
				{token.KEYWORD, "FROM"},
				{token.NAME, "t"},
			},
		},
		{
			name:  "qualified name with wildcard",
			input: "select t.*",
			want: []tok{
				{token.KEYWORD_DML, "select"},
				{token.NAME, "t"},
				{token.PUNCTUATION, "."},
				{token.WILDCARD, "*"},
			},
		},
		{
			name:  "keyword before dot is a name",
			input: "select.from",
			want: []tok{
				{token.NAME, "select"},
				{token.PUNCTUATION, "."},
				{token.NAME, "from"},
			},
		},
		{
			name:  "function call shadows keyword",
			input: "count(x)",
			want: []tok{
				{token.NAME, "count"},
				{token.PUNCTUATION, "("},
				{token.NAME, "x"},
				{token.PUNCTUATION, ")"},
			},
		},
		{
			name:  "IN stays keyword before paren",
			input: "a IN(1)",
			want: []tok{
				{token.NAME, "a"},
				{token.KEYWORD, "IN"},
				{token.PUNCTUATION, "("},
				{token.INTEGER, "1"},
				{token.PUNCTUATION, ")"},
			},
		},
		{
			name:  "typecast and assignment",
			input: "x := y::int",
			want: []tok{
				{token.NAME, "x"},
				{token.ASSIGNMENT, ":="},
				{token.NAME, "y"},
				{token.PUNCTUATION, "::"},
				{token.NAME_BUILTIN, "int"},
			},
		},
		{
			name:  "comparison and operator runs",
			input: "a <> b || c",
			want: []tok{
				{token.NAME, "a"},
				{token.COMPARISON, "<>"},
				{token.NAME, "b"},
				{token.OPERATOR, "||"},
				{token.NAME, "c"},
			},
		},
		{
			name:  "placeholders",
			input: "? :name $1 %s %(key)s",
			want: []tok{
				{token.PLACEHOLDER, "?"},
				{token.PLACEHOLDER, ":name"},
				{token.PLACEHOLDER, "$1"},
				{token.PLACEHOLDER, "%s"},
				{token.PLACEHOLDER, "%(key)s"},
			},
		},
		{
			name:  "numbers",
			input: "1 2.5 3e10 0x1F",
			want: []tok{
				{token.INTEGER, "1"},
				{token.FLOAT, "2.5"},
				{token.FLOAT, "3e10"},
				{token.HEX, "0x1F"},
			},
		},
		{
			name:  "multi-word keywords",
			input: "END IF end  loop ORDER\nBY LEFT OUTER JOIN create or replace",
			want: []tok{
				{token.KEYWORD, "END IF"},
				{token.KEYWORD, "end  loop"},
				{token.KEYWORD, "ORDER\nBY"},
				{token.KEYWORD, "LEFT OUTER JOIN"},
				{token.KEYWORD_DDL, "create or replace"},
			},
		},
		{
			name:  "order direction",
			input: "a DESC",
			want: []tok{
				{token.NAME, "a"},
				{token.KEYWORD_ORDER, "DESC"},
			},
		},
		{
			name:  "strings and symbols",
			input: `'it''s' "col"`,
			want: []tok{
				{token.STRING, "'it''s'"},
				{token.SYMBOL, `"col"`},
			},
		},
		{
			name:  "subscript is punctuation",
			input: "arr[1]",
			want: []tok{
				{token.NAME, "arr"},
				{token.PUNCTUATION, "["},
				{token.INTEGER, "1"},
				{token.PUNCTUATION, "]"},
			},
		},
		{
			name:  "bracketed name",
			input: "SELECT [my col]",
			want: []tok{
				{token.KEYWORD_DML, "SELECT"},
				{token.NAME, "[my col]"},
			},
		},
		{
			name:  "comments",
			input: "a -- note\n/* block */ # hash\n",
			want: []tok{
				{token.NAME, "a"},
				{token.COMMENT, "-- note\n"},
				{token.COMMENT_MULTILINE, "/* block */"},
				{token.COMMENT, "# hash\n"},
			},
		},
		{
			name:  "dollar quoted literal",
			input: "$$ a; b $$",
			want: []tok{
				{token.LITERAL, "$$ a; b $$"},
			},
		},
		{
			name:  "unknown byte",
			input: "a \\ b",
			want: []tok{
				{token.NAME, "a"},
				{token.ERROR, "\\"},
				{token.NAME, "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, significant(tt.input))
		})
	}
}

func TestTokenize_Whitespace(t *testing.T) {
	toks := Tokenize("a \t\r\nb")
	require.Len(t, toks, 4)
	assert.Equal(t, token.WHITESPACE, toks[1].Type)
	assert.Equal(t, " \t", toks[1].Value)
	assert.Equal(t, token.NEWLINE, toks[2].Type)
	assert.Equal(t, "\r\n", toks[2].Value)
}

func TestTokenize_Positions(t *testing.T) {
	toks := Tokenize("SELECT\n  a")
	require.Len(t, toks, 4)
	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, toks[0].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 9}, toks[3].Pos)
}

func TestTokenize_RegisteredKeyword(t *testing.T) {
	require.True(t, token.RegisterKeyword("LEXTEST_PIVOT", token.KEYWORD))
	toks := significant("lextest_pivot(a)")
	require.NotEmpty(t, toks)
	assert.Equal(t, token.KEYWORD, toks[0].Type)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}
