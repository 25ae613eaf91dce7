package tree

import "github.com/leapstack-labs/sqltree/pkg/token"

// Predicate tests a node.
type Predicate func(Node) bool

// TokenNext returns the first non-whitespace child after idx.
// It returns (-1, nil) when there is none.
func (g *Group) TokenNext(idx int) (int, Node) {
	for i := idx + 1; i < len(g.Tokens); i++ {
		if !g.Tokens[i].IsWhitespace() {
			return i, g.Tokens[i]
		}
	}
	return -1, nil
}

// TokenPrev returns the last non-whitespace child before idx.
// It returns (-1, nil) when there is none.
func (g *Group) TokenPrev(idx int) (int, Node) {
	if idx > len(g.Tokens) {
		idx = len(g.Tokens)
	}
	for i := idx - 1; i >= 0; i-- {
		if !g.Tokens[i].IsWhitespace() {
			return i, g.Tokens[i]
		}
	}
	return -1, nil
}

// TokenNextBy returns the first child after idx satisfying pred.
// Pass -1 to search from the beginning.
func (g *Group) TokenNextBy(idx int, pred Predicate) (int, Node) {
	for i := idx + 1; i < len(g.Tokens); i++ {
		if pred(g.Tokens[i]) {
			return i, g.Tokens[i]
		}
	}
	return -1, nil
}

// TokenNotMatching returns the first child at or after idx that does not
// satisfy pred.
func (g *Group) TokenNotMatching(idx int, pred Predicate) (int, Node) {
	for i := idx; i < len(g.Tokens); i++ {
		if !pred(g.Tokens[i]) {
			return i, g.Tokens[i]
		}
	}
	return -1, nil
}

// TokenIndex returns the index of n among the direct children, or -1.
func (g *Group) TokenIndex(n Node) int {
	for i, t := range g.Tokens {
		if t == n {
			return i
		}
	}
	return -1
}

// IsKind reports whether n is a group of one of the given kinds.
func IsKind(n Node, kinds ...Kind) bool {
	grp, ok := n.(*Group)
	if !ok {
		return false
	}
	for _, k := range kinds {
		if grp.Kind == k {
			return true
		}
	}
	return false
}

// IsType reports whether n is a leaf of one of the given exact types.
func IsType(n Node, types ...token.TokenType) bool {
	tok, ok := n.(*token.Token)
	if !ok {
		return false
	}
	for _, tt := range types {
		if tok.Type == tt {
			return true
		}
	}
	return false
}

// InFamily reports whether n is a leaf whose type satisfies one of the
// family checks (token.IsName, token.IsNumber, ...).
func InFamily(n Node, families ...func(token.TokenType) bool) bool {
	tok, ok := n.(*token.Token)
	if !ok {
		return false
	}
	for _, f := range families {
		if f(tok.Type) {
			return true
		}
	}
	return false
}

// Match reports whether n is a leaf matching tt and values, see token.Token.Match.
func Match(n Node, tt token.TokenType, values ...string) bool {
	tok, ok := n.(*token.Token)
	return ok && tok.Match(tt, values...)
}

// AsToken returns n as a leaf token, or nil.
func AsToken(n Node) *token.Token {
	tok, _ := n.(*token.Token)
	return tok
}

// AsGroup returns n as a group, or nil.
func AsGroup(n Node) *Group {
	grp, _ := n.(*Group)
	return grp
}
