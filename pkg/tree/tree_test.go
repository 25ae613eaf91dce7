package tree

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/sqltree/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(tt token.TokenType, v string) *token.Token {
	return token.New(tt, v, token.Position{})
}

// stmt builds "a , b" with whitespace around the comma.
func stmt() *Group {
	return NewStatement([]*token.Token{
		leaf(token.NAME, "a"),
		leaf(token.WHITESPACE, " "),
		leaf(token.PUNCTUATION, ","),
		leaf(token.WHITESPACE, " "),
		leaf(token.NAME, "b"),
	})
}

func TestTokenNextPrev(t *testing.T) {
	g := stmt()

	idx, n := g.TokenNext(0)
	assert.Equal(t, 2, idx)
	assert.Equal(t, ",", n.String())

	idx, n = g.TokenNext(4)
	assert.Equal(t, -1, idx)
	assert.Nil(t, n)

	idx, n = g.TokenPrev(4)
	assert.Equal(t, 2, idx)
	assert.Equal(t, ",", n.String())

	idx, n = g.TokenPrev(0)
	assert.Equal(t, -1, idx)
	assert.Nil(t, n)
}

func TestTokenNextBy(t *testing.T) {
	g := stmt()
	idx, n := g.TokenNextBy(-1, func(n Node) bool { return IsType(n, token.NAME) })
	require.NotNil(t, n)
	assert.Equal(t, 0, idx)

	idx, _ = g.TokenNextBy(0, func(n Node) bool { return IsType(n, token.NAME) })
	assert.Equal(t, 4, idx)

	idx, _ = g.TokenNotMatching(0, func(n Node) bool { return !n.IsWhitespace() })
	assert.Equal(t, 1, idx)
}

func TestGroupTokens(t *testing.T) {
	g := stmt()
	want := g.String()

	grp := g.GroupTokens(IdentifierList, 0, 4, false)
	require.Len(t, g.Tokens, 1)
	assert.Same(t, grp, g.Tokens[0])
	assert.Equal(t, 5, grp.Len())
	assert.Equal(t, want, g.String())
}

func TestGroupTokensExtend(t *testing.T) {
	g := stmt()
	first := g.GroupTokens(IdentifierList, 0, 2, false)
	require.Len(t, g.Tokens, 3)

	again := g.GroupTokens(IdentifierList, 0, 2, true)
	assert.Same(t, first, again)
	require.Len(t, g.Tokens, 1)
	assert.Equal(t, 5, first.Len())
	assert.Equal(t, "a , b", g.String())
}

func TestGroupTokensExtendDifferentKindWraps(t *testing.T) {
	g := stmt()
	inner := g.GroupTokens(Identifier, 0, 0, false)
	outer := g.GroupTokens(IdentifierList, 0, 4, true)
	assert.NotSame(t, inner, outer)
	assert.Same(t, inner, outer.Tokens[0])
}

func TestGroupTokensInvalidRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 2},
		{"end before start", 3, 1},
		{"end past bounds", 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := stmt()
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, ErrInvalidRange.Is(err))
			}()
			g.GroupTokens(Identifier, tt.start, tt.end, false)
		})
	}
}

func TestAbsorb(t *testing.T) {
	g := stmt()
	head := g.GroupTokens(Identifier, 0, 0, false)
	got := g.Absorb(0, 2)
	assert.Same(t, head, got)
	assert.Equal(t, "a ,", head.String())
	assert.Len(t, g.Tokens, 3)

	assert.Panics(t, func() { g.Absorb(1, 2) })
}

func TestLastGroupable(t *testing.T) {
	paren := New(Parenthesis,
		leaf(token.PUNCTUATION, "("),
		leaf(token.NAME, "x"),
		leaf(token.PUNCTUATION, ")"),
	)
	assert.Equal(t, 1, paren.LastGroupable())

	block := New(Begin,
		leaf(token.KEYWORD, "BEGIN"),
		leaf(token.WHITESPACE, " "),
		leaf(token.KEYWORD, "END"),
	)
	assert.Equal(t, 1, block.LastGroupable())

	assert.Equal(t, 4, stmt().LastGroupable())
}

func TestPredicates(t *testing.T) {
	name := leaf(token.NAME, "a")
	kw := leaf(token.KEYWORD, "null")
	grp := New(Identifier, name)

	assert.True(t, IsKind(grp, Function, Identifier))
	assert.False(t, IsKind(name, Identifier))
	assert.True(t, IsType(name, token.NAME))
	assert.False(t, IsType(grp, token.NAME))
	assert.True(t, InFamily(kw, token.IsName, token.IsKeyword))
	assert.True(t, Match(kw, token.KEYWORD, "NULL"))
	assert.False(t, Match(grp, token.KEYWORD))
	assert.Same(t, name, AsToken(name))
	assert.Nil(t, AsGroup(name))
	assert.Same(t, grp, AsGroup(grp))
	assert.Equal(t, 0, grp.TokenIndex(name))
	assert.Equal(t, -1, grp.TokenIndex(kw))
}

func TestWalkAndCollect(t *testing.T) {
	g := stmt()
	g.GroupTokens(Identifier, 4, 4, false)
	g.GroupTokens(Identifier, 0, 0, false)
	g.GroupTokens(IdentifierList, 0, 4, false)

	assert.Len(t, Collect(g, Identifier), 2)
	assert.Len(t, Collect(g, IdentifierList), 1)
	assert.Equal(t, 3, Depth(g))

	var visited int
	Walk(g, func(n Node) bool {
		visited++
		return !IsKind(n, IdentifierList)
	})
	assert.Equal(t, 2, visited)
}

func TestSpan(t *testing.T) {
	g := NewStatement([]*token.Token{
		token.New(token.NAME, "ab", token.Position{Line: 1, Column: 1, Offset: 0}),
		token.New(token.WHITESPACE, " ", token.Position{Line: 1, Column: 3, Offset: 2}),
	})
	span := g.Span()
	assert.Equal(t, 0, span.Start.Offset)
	assert.Equal(t, 3, span.End.Offset)

	assert.Equal(t, token.Span{}, New(TokenList).Span())
}

func TestDump(t *testing.T) {
	g := stmt()
	g.GroupTokens(IdentifierList, 0, 4, false)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, g, false))
	assert.Equal(t,
		"Statement \"a , b\"\n"+
			"  IdentifierList \"a , b\"\n"+
			"    Name \"a\"\n"+
			"    Punctuation \",\"\n"+
			"    Name \"b\"\n",
		buf.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "IdentifierList", IdentifierList.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.True(t, Case.IsPaired())
	assert.False(t, Where.IsPaired())
}
