package grouping

import (
	"github.com/leapstack-labs/sqltree/pkg/token"
	"github.com/leapstack-labs/sqltree/pkg/tree"
)

// leftRight joins a middle token with its nearest non-whitespace neighbours.
type leftRight struct {
	kind  tree.Kind
	match func(*token.Token) bool
	left  tree.Predicate
	right tree.Predicate

	// semicolon widens the right edge to the last node before the next ';'.
	semicolon bool
}

func anyNode(tree.Node) bool { return true }

// groupLeftRight applies r to g. Groups of a different kind are processed
// first. A same-kind left neighbour absorbs the new range, so chains such
// as a.b.c stay one flat group.
func groupLeftRight(g *tree.Group, r leftRight) {
	for _, sub := range g.Sublists() {
		if sub.Kind != r.kind {
			groupLeftRight(sub, r)
		}
	}

	for i := 0; i < len(g.Tokens); i++ {
		tok := tree.AsToken(g.Tokens[i])
		if tok == nil || !r.match(tok) {
			continue
		}

		pidx, prev := g.TokenPrev(i)
		nidx, next := g.TokenNext(i)
		if prev == nil || next == nil || !r.left(prev) || !r.right(next) {
			continue
		}

		if r.semicolon {
			if sidx, _ := g.TokenNextBy(nidx, isSemicolon); sidx != -1 {
				nidx, _ = g.TokenPrev(sidx)
			}
		}

		g.GroupTokens(r.kind, pidx, nidx, true)
		i = pidx
	}
}

func isSemicolon(n tree.Node) bool {
	return tree.Match(n, token.PUNCTUATION, ";")
}

var periodRule = leftRight{
	kind:  tree.Identifier,
	match: matcher(token.PUNCTUATION, "."),
	left: func(n tree.Node) bool {
		return tree.IsKind(n, tree.SquareBrackets, tree.Identifier) ||
			tree.InFamily(n, token.IsName) ||
			tree.IsType(n, token.SYMBOL)
	},
	right: func(n tree.Node) bool {
		return tree.IsKind(n, tree.SquareBrackets, tree.Function) ||
			tree.InFamily(n, token.IsName) ||
			tree.IsType(n, token.SYMBOL, token.WILDCARD)
	},
}

var typecastRule = leftRight{
	kind:  tree.Identifier,
	match: matcher(token.PUNCTUATION, "::"),
	left:  anyNode,
	right: anyNode,
}

var asRule = leftRight{
	kind:  tree.Identifier,
	match: matcher(token.KEYWORD, "AS"),
	left: func(n tree.Node) bool {
		return !tree.InFamily(n, token.IsKeyword) || isNull(n)
	},
	right: func(n tree.Node) bool {
		return !tree.IsType(n, token.KEYWORD_DML, token.KEYWORD_DDL)
	},
}

var assignmentRule = leftRight{
	kind:      tree.Assignment,
	match:     matcher(token.ASSIGNMENT, ":="),
	left:      anyNode,
	right:     anyNode,
	semicolon: true,
}

var comparisonRule = leftRight{
	kind:  tree.Comparison,
	match: func(t *token.Token) bool { return t.Type == token.COMPARISON },
	left:  isComparand,
	right: isComparand,
}

func isComparand(n tree.Node) bool {
	return tree.IsKind(n, tree.Parenthesis, tree.Function, tree.Identifier, tree.Operation) ||
		tree.InFamily(n, token.IsNumber, token.IsString, token.IsName) ||
		isNull(n)
}

func isNull(n tree.Node) bool {
	tok := tree.AsToken(n)
	return tok != nil && tok.IsKeyword() && tok.Normalized == "NULL"
}

func groupPeriod(g *tree.Group)     { groupLeftRight(g, periodRule) }
func groupTypecasts(g *tree.Group)  { groupLeftRight(g, typecastRule) }
func groupAs(g *tree.Group)         { groupLeftRight(g, asRule) }
func groupAssignment(g *tree.Group) { groupLeftRight(g, assignmentRule) }
func groupComparison(g *tree.Group) { groupLeftRight(g, comparisonRule) }
