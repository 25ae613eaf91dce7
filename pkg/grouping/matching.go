package grouping

import (
	"github.com/leapstack-labs/sqltree/pkg/token"
	"github.com/leapstack-labs/sqltree/pkg/tree"
)

// pair describes the open and close markers of a paired-delimiter kind.
type pair struct {
	kind  tree.Kind
	open  func(*token.Token) bool
	close func(*token.Token) bool
}

var (
	squareBrackets = pair{
		kind:  tree.SquareBrackets,
		open:  matcher(token.PUNCTUATION, "["),
		close: matcher(token.PUNCTUATION, "]"),
	}
	parenthesis = pair{
		kind:  tree.Parenthesis,
		open:  matcher(token.PUNCTUATION, "("),
		close: matcher(token.PUNCTUATION, ")"),
	}
	caseBlock = pair{
		kind:  tree.Case,
		open:  matcher(token.KEYWORD, "CASE"),
		close: matcher(token.KEYWORD, "END"),
	}
	ifBlock = pair{
		kind:  tree.If,
		open:  matcher(token.KEYWORD, "IF"),
		close: matcher(token.KEYWORD, "END IF"),
	}
	forBlock = pair{
		kind:  tree.For,
		open:  matcher(token.KEYWORD, "FOR", "FOREACH"),
		close: matcher(token.KEYWORD, "END LOOP"),
	}
	beginBlock = pair{
		kind:  tree.Begin,
		open:  matcher(token.KEYWORD, "BEGIN"),
		close: matcher(token.KEYWORD, "END"),
	}
)

func matcher(tt token.TokenType, values ...string) func(*token.Token) bool {
	return func(t *token.Token) bool {
		return t.Match(tt, values...)
	}
}

// groupMatching pairs open and close markers of p into nested groups.
//
// Open markers are kept on a stack of child indices. Collapses only ever
// happen at the top of the stack, so the indices below it stay valid. A
// close marker with nothing open is left as a leaf.
func groupMatching(g *tree.Group, p pair) {
	var opens []int
	for i := 0; i < len(g.Tokens); i++ {
		switch n := g.Tokens[i].(type) {
		case *tree.Group:
			if n.Kind != p.kind {
				groupMatching(n, p)
			}
		case *token.Token:
			switch {
			case p.open(n):
				opens = append(opens, i)
			case p.close(n):
				if len(opens) == 0 {
					continue
				}
				oidx := opens[len(opens)-1]
				opens = opens[:len(opens)-1]
				g.GroupTokens(p.kind, oidx, i, false)
				i = oidx
			}
		}
	}
}

func groupBrackets(g *tree.Group)    { groupMatching(g, squareBrackets) }
func groupParenthesis(g *tree.Group) { groupMatching(g, parenthesis) }
func groupCase(g *tree.Group)        { groupMatching(g, caseBlock) }
func groupIf(g *tree.Group)          { groupMatching(g, ifBlock) }
func groupFor(g *tree.Group)         { groupMatching(g, forBlock) }
func groupBegin(g *tree.Group)       { groupMatching(g, beginBlock) }
