// Package tree provides the mutable token tree that grouping passes rewrite.
//
// A tree is a root Group of kind Statement. Every node is either a leaf
// *token.Token or a *Group holding an ordered run of child nodes. Grouping
// only ever collapses contiguous child ranges into new groups, so leaves are
// never dropped or reordered and the concatenated text of the tree always
// equals the original input.
package tree

import (
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/token"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrInvalidRange is raised (as a panic) when a pass asks to collapse a
// range that does not exist. It indicates a bug in a pass, not bad SQL.
var ErrInvalidRange = errors.NewKind("invalid group range [%d, %d] in group of %d nodes")

// Node is a leaf token or a group.
type Node interface {
	IsGroup() bool
	IsWhitespace() bool
	String() string
}

var (
	_ Node = (*token.Token)(nil)
	_ Node = (*Group)(nil)
)

// Group is a typed container of child nodes.
type Group struct {
	Kind   Kind
	Tokens []Node
}

// NewStatement wraps lexer output in a root Statement group.
func NewStatement(tokens []*token.Token) *Group {
	nodes := make([]Node, len(tokens))
	for i, t := range tokens {
		nodes[i] = t
	}
	return &Group{Kind: Statement, Tokens: nodes}
}

// New creates a group of the given kind around nodes.
func New(kind Kind, nodes ...Node) *Group {
	return &Group{Kind: kind, Tokens: nodes}
}

// IsGroup is always true for groups.
func (g *Group) IsGroup() bool {
	return true
}

// IsWhitespace is always false for groups.
func (g *Group) IsWhitespace() bool {
	return false
}

// String returns the concatenated text of all leaves.
func (g *Group) String() string {
	var b strings.Builder
	for _, t := range g.Flatten() {
		b.WriteString(t.Value)
	}
	return b.String()
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	return len(g.Tokens)
}

// At returns the child at idx, or nil when idx is out of range.
func (g *Group) At(idx int) Node {
	if idx < 0 || idx >= len(g.Tokens) {
		return nil
	}
	return g.Tokens[idx]
}

// Flatten returns all leaf tokens in order.
func (g *Group) Flatten() []*token.Token {
	var out []*token.Token
	var walk func(*Group)
	walk = func(grp *Group) {
		for _, n := range grp.Tokens {
			switch v := n.(type) {
			case *token.Token:
				out = append(out, v)
			case *Group:
				walk(v)
			}
		}
	}
	walk(g)
	return out
}

// Sublists returns the direct children that are groups.
func (g *Group) Sublists() []*Group {
	var out []*Group
	for _, n := range g.Tokens {
		if sub, ok := n.(*Group); ok {
			out = append(out, sub)
		}
	}
	return out
}

// Span returns the source range covered by the group's leaves.
func (g *Group) Span() token.Span {
	leaves := g.Flatten()
	if len(leaves) == 0 {
		return token.Span{}
	}
	return token.Span{
		Start: leaves[0].Pos,
		End:   leaves[len(leaves)-1].Span().End,
	}
}

// groupable returns the child index range [lo, hi) that passes may look at.
// Paired groups exclude their open and close markers.
func (g *Group) groupable() (int, int) {
	if g.Kind.IsPaired() && len(g.Tokens) >= 2 {
		return 1, len(g.Tokens) - 1
	}
	return 0, len(g.Tokens)
}

// LastGroupable returns the index of the last child a clause may extend to.
func (g *Group) LastGroupable() int {
	_, hi := g.groupable()
	return hi - 1
}
