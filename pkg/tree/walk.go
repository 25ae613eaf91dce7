package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/token"
)

// Walk traverses the tree depth-first and calls fn for each node.
// If fn returns false, the children of that node are skipped.
func Walk(node Node, fn func(node Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	if grp, ok := node.(*Group); ok {
		for _, child := range grp.Tokens {
			Walk(child, fn)
		}
	}
}

// Collect returns every group of the given kind, in document order.
func Collect(root Node, kind Kind) []*Group {
	var out []*Group
	Walk(root, func(n Node) bool {
		if grp, ok := n.(*Group); ok && grp.Kind == kind {
			out = append(out, grp)
		}
		return true
	})
	return out
}

// Depth returns the maximum group nesting below and including root.
func Depth(root Node) int {
	grp, ok := root.(*Group)
	if !ok {
		return 0
	}
	deepest := 0
	for _, child := range grp.Tokens {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Dump writes an indented outline of the tree, one node per line.
// Whitespace leaves are omitted unless withWhitespace is set.
func Dump(w io.Writer, root Node, withWhitespace bool) error {
	return dump(w, root, 0, withWhitespace)
}

func dump(w io.Writer, n Node, depth int, withWhitespace bool) error {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *token.Token:
		if v.IsWhitespace() && !withWhitespace {
			return nil
		}
		_, err := fmt.Fprintf(w, "%s%s %q\n", indent, v.Type, v.Value)
		return err
	case *Group:
		if _, err := fmt.Fprintf(w, "%s%s %q\n", indent, v.Kind, Summarize(v.String())); err != nil {
			return err
		}
		for _, child := range v.Tokens {
			if err := dump(w, child, depth+1, withWhitespace); err != nil {
				return err
			}
		}
	}
	return nil
}

// Summarize collapses whitespace and truncates long group text.
func Summarize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	const limit = 40
	if r := []rune(s); len(r) > limit {
		return string(r[:limit-3]) + "..."
	}
	return s
}
