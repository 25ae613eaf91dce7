package grouping

import (
	"github.com/leapstack-labs/sqltree/pkg/token"
	"github.com/leapstack-labs/sqltree/pkg/tree"
)

// rangeRule is the generalized form of leftRight: any token accepted by
// match triggers grouping, and post maps the (prev, this, next) indices to
// the range that is finally collapsed.
type rangeRule struct {
	kind   tree.Kind
	match  func(*token.Token) bool
	left   tree.Predicate
	right  tree.Predicate
	post   func(g *tree.Group, pidx, tidx, nidx int) (int, int)
	extend bool
}

// groupRange walks a snapshot of g's children. Every collapse shrinks the
// live child list, so offset maps snapshot positions back to live indices.
// Nodes swallowed by a collapse are still recursed into but never become
// the left neighbour again; the new group takes that role.
func groupRange(g *tree.Group, r rangeRule) {
	snapshot := make([]tree.Node, len(g.Tokens))
	copy(snapshot, g.Tokens)

	offset := 0
	absorbed := -1
	pidx, prev := -1, tree.Node(nil)

	for idx, n := range snapshot {
		tidx := idx - offset
		if n.IsWhitespace() {
			continue
		}

		if sub, ok := n.(*tree.Group); ok && sub.Kind != r.kind {
			groupRange(sub, r)
			if idx > absorbed {
				pidx, prev = tidx, n
			}
			continue
		}
		if idx <= absorbed {
			continue
		}

		tok := tree.AsToken(n)
		if tok == nil || !r.match(tok) {
			pidx, prev = tidx, n
			continue
		}

		nidx, next := g.TokenNext(tidx)
		if prev == nil || next == nil || !r.left(prev) || !r.right(next) {
			pidx, prev = tidx, n
			continue
		}

		from, to := r.post(g, pidx, tidx, nidx)
		grp := g.GroupTokens(r.kind, from, to, r.extend)
		absorbed = to + offset
		offset += to - from
		pidx, prev = from, grp
	}
}

func keepRange(_ *tree.Group, pidx, _, nidx int) (int, int) {
	return pidx, nidx
}

// promoteOperator confirms the middle token as an arithmetic operator,
// which turns an ambiguous '*' into multiplication.
func promoteOperator(g *tree.Group, pidx, tidx, nidx int) (int, int) {
	if tok := tree.AsToken(g.At(tidx)); tok != nil {
		tok.Reclassify(token.OPERATOR)
	}
	return pidx, nidx
}

func isOperand(n tree.Node) bool {
	return tree.IsKind(n, tree.SquareBrackets, tree.Parenthesis, tree.Function, tree.Identifier, tree.Operation) ||
		tree.InFamily(n, token.IsNumber, token.IsString, token.IsName)
}

var operatorRule = rangeRule{
	kind: tree.Operation,
	match: func(t *token.Token) bool {
		return t.Type == token.OPERATOR || t.Type == token.WILDCARD
	},
	left:   isOperand,
	right:  isOperand,
	post:   promoteOperator,
	extend: false,
}

func isListItem(n tree.Node) bool {
	if tree.IsKind(n, tree.Function, tree.Case, tree.Identifier, tree.Comparison, tree.IdentifierList, tree.Operation) {
		return true
	}
	if tree.InFamily(n, token.IsNumber, token.IsString, token.IsName, token.IsComment) {
		return true
	}
	return tree.IsType(n, token.WILDCARD) || tree.Match(n, token.KEYWORD, "NULL", "ROLE")
}

var identifierListRule = rangeRule{
	kind:   tree.IdentifierList,
	match:  matcher(token.PUNCTUATION, ","),
	left:   isListItem,
	right:  isListItem,
	post:   keepRange,
	extend: true,
}

func groupOperator(g *tree.Group)       { groupRange(g, operatorRule) }
func groupIdentifierList(g *tree.Group) { groupRange(g, identifierListRule) }
