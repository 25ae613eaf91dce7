package grouping

import (
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/token"
	"github.com/leapstack-labs/sqltree/pkg/tree"
)

// recurse runs fn over every sublist whose kind is not in skip, depth
// first, and then over g itself.
func recurse(g *tree.Group, fn func(*tree.Group), skip ...tree.Kind) {
	for _, sub := range g.Sublists() {
		if !kindIn(sub.Kind, skip) {
			recurse(sub, fn, skip...)
		}
	}
	fn(g)
}

func kindIn(k tree.Kind, kinds []tree.Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}

func isCommentLeaf(n tree.Node) bool {
	return tree.InFamily(n, token.IsComment)
}

// groupComments collapses each run of comments, with the whitespace between
// them, into one Comment group. Whitespace after the last comment is left
// outside.
func groupComments(g *tree.Group) {
	recurse(g, func(g *tree.Group) {
		tidx, tok := g.TokenNextBy(-1, isCommentLeaf)
		for tok != nil {
			last := tidx
			for j := tidx + 1; j < len(g.Tokens); j++ {
				n := g.Tokens[j]
				if isCommentLeaf(n) {
					last = j
					continue
				}
				if !n.IsWhitespace() {
					break
				}
			}
			g.GroupTokens(tree.Comment, tidx, last, false)
			tidx, tok = g.TokenNextBy(tidx, isCommentLeaf)
		}
	}, tree.Comment)
}

// alignComments attaches a Comment group to the structured node right
// before it. The comment then keeps sinking into the last child group as
// long as that child is itself eligible, so a second run finds nothing
// left to move. Paired-delimiter groups never take a comment because their
// last child must stay the close marker.
func alignComments(g *tree.Group) {
	recurse(g, func(g *tree.Group) {
		isComment := func(n tree.Node) bool { return tree.IsKind(n, tree.Comment) }
		tidx, node := g.TokenNextBy(-1, isComment)
		for node != nil {
			pidx, prev := g.TokenPrev(tidx)
			if takesComment(prev) {
				sinkComment(g.Absorb(pidx, tidx), node)
				tidx = pidx
			}
			tidx, node = g.TokenNextBy(tidx, isComment)
		}
	})
}

func takesComment(n tree.Node) bool {
	grp := tree.AsGroup(n)
	return grp != nil && grp.Kind != tree.Comment && !grp.Kind.IsPaired()
}

// sinkComment moves comment, the last child of host, further down while its
// previous sibling is an eligible group.
func sinkComment(host *tree.Group, comment tree.Node) {
	for {
		cidx := host.TokenIndex(comment)
		pidx, prev := host.TokenPrev(cidx)
		if !takesComment(prev) {
			return
		}
		host = host.Absorb(pidx, cidx)
	}
}

// groupIdentifier wraps each bare name or quoted symbol in an Identifier.
func groupIdentifier(g *tree.Group) {
	isIdent := func(n tree.Node) bool {
		return tree.InFamily(n, token.IsName) || tree.IsType(n, token.SYMBOL)
	}
	recurse(g, func(g *tree.Group) {
		tidx, tok := g.TokenNextBy(-1, isIdent)
		for tok != nil {
			g.GroupTokens(tree.Identifier, tidx, tidx, false)
			tidx, tok = g.TokenNextBy(tidx, isIdent)
		}
	}, tree.Identifier)
}

// groupArrays folds a subscript into the node on its left, chaining
// a[1][2] into one Identifier.
func groupArrays(g *tree.Group) {
	isBrackets := func(n tree.Node) bool { return tree.IsKind(n, tree.SquareBrackets) }
	recurse(g, func(g *tree.Group) {
		tidx, node := g.TokenNextBy(-1, isBrackets)
		for node != nil {
			pidx, prev := g.TokenPrev(tidx)
			if tree.IsKind(prev, tree.SquareBrackets, tree.Identifier, tree.Function) ||
				tree.InFamily(prev, token.IsName) || tree.IsType(prev, token.SYMBOL) {
				g.GroupTokens(tree.Identifier, pidx, tidx, true)
				tidx = pidx
			}
			tidx, node = g.TokenNextBy(tidx, isBrackets)
		}
	}, tree.Identifier)
}

// groupOrder attaches ASC or DESC to the identifier or number before it.
func groupOrder(g *tree.Group) {
	isOrder := func(n tree.Node) bool { return tree.IsType(n, token.KEYWORD_ORDER) }
	recurse(g, func(g *tree.Group) {
		tidx, tok := g.TokenNextBy(-1, isOrder)
		for tok != nil {
			pidx, prev := g.TokenPrev(tidx)
			if tree.IsKind(prev, tree.Identifier) || tree.InFamily(prev, token.IsNumber) {
				g.GroupTokens(tree.Identifier, pidx, tidx, true)
				tidx = pidx
			}
			tidx, tok = g.TokenNextBy(tidx, isOrder)
		}
	}, tree.Identifier)
}

// groupFunctions turns a name followed by a parenthesis into a Function.
//
// A level that holds both a CREATE keyword and TABLE is a table definition
// and is left alone, so its column list is not read as call arguments.
// The check is coarse: CREATE TABLE t AS SELECT f(x) keeps f(x) ungrouped
// too.
func groupFunctions(g *tree.Group) {
	isName := func(n tree.Node) bool { return tree.InFamily(n, token.IsName) }
	recurse(g, func(g *tree.Group) {
		if isTableDefinition(g) {
			return
		}
		tidx, tok := g.TokenNextBy(-1, isName)
		for tok != nil {
			nidx, next := g.TokenNext(tidx)
			if tree.IsKind(next, tree.Parenthesis) {
				g.GroupTokens(tree.Function, tidx, nidx, false)
			}
			tidx, tok = g.TokenNextBy(tidx, isName)
		}
	}, tree.Function)
}

func isTableDefinition(g *tree.Group) bool {
	var hasCreate, hasTable bool
	for _, n := range g.Tokens {
		tok := tree.AsToken(n)
		if tok == nil {
			continue
		}
		if tok.Type == token.KEYWORD_DDL && strings.HasPrefix(tok.Normalized, "CREATE") {
			hasCreate = true
		}
		if tok.Match(token.KEYWORD, "TABLE") {
			hasTable = true
		}
	}
	return hasCreate && hasTable
}

var whereTerminators = []string{
	"ORDER BY", "GROUP BY", "ORDER", "GROUP", "LIMIT", "UNION", "UNION ALL",
	"EXCEPT", "INTERSECT", "HAVING", "RETURNING", "INTO", "WINDOW", "QUALIFY",
}

func isWhereOpen(n tree.Node) bool {
	return tree.Match(n, token.KEYWORD, "WHERE")
}

func isWhereClose(n tree.Node) bool {
	if isSemicolon(n) {
		return true
	}
	tok := tree.AsToken(n)
	if tok == nil || !tok.IsKeyword() {
		return false
	}
	for _, kw := range whereTerminators {
		if tok.Normalized == kw {
			return true
		}
	}
	return false
}

// groupWhere collapses WHERE and everything up to the next clause keyword
// or ';' into a Where group. Without a terminator the clause runs to the
// last groupable child, which inside a Parenthesis stops before ')'.
func groupWhere(g *tree.Group) {
	recurse(g, func(g *tree.Group) {
		tidx, tok := g.TokenNextBy(-1, isWhereOpen)
		for tok != nil {
			end := g.LastGroupable()
			if eidx, _ := g.TokenNextBy(tidx, isWhereClose); eidx != -1 {
				end = eidx - 1
			}
			if end >= tidx {
				g.GroupTokens(tree.Where, tidx, end, false)
			}
			tidx, tok = g.TokenNextBy(tidx, isWhereOpen)
		}
	}, tree.Where)
}

// groupAliased folds every Identifier that directly follows an expression
// into it, covering aliases written without AS. A chain such as "a b c"
// folds completely in one run. Identifier levels are descended into but
// never folded, since the identifiers they hold are aliases already.
func groupAliased(g *tree.Group) {
	isAliasable := func(n tree.Node) bool {
		return tree.IsKind(n, tree.Parenthesis, tree.Function, tree.Case, tree.Identifier, tree.Operation) ||
			tree.InFamily(n, token.IsNumber)
	}
	recurse(g, func(g *tree.Group) {
		if g.Kind == tree.Identifier {
			return
		}
		tidx, node := g.TokenNextBy(-1, isAliasable)
		for node != nil {
			nidx, next := g.TokenNext(tidx)
			if tree.IsKind(next, tree.Identifier) {
				g.GroupTokens(tree.Identifier, tidx, nidx, true)
				continue
			}
			tidx, node = g.TokenNextBy(tidx, isAliasable)
		}
	})
}
