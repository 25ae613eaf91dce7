package output

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/token"
	"github.com/leapstack-labs/sqltree/pkg/tree"
)

// TreeNode is the serialisable form of a tree node.
// Groups carry Kind and Children; leaves carry Type and Value.
type TreeNode struct {
	Kind     string      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Type     string      `json:"type,omitempty" yaml:"type,omitempty"`
	Value    string      `json:"value,omitempty" yaml:"value,omitempty"`
	Line     int         `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int         `json:"column,omitempty" yaml:"column,omitempty"`
	EndLine  int         `json:"end_line,omitempty" yaml:"end_line,omitempty"`
	EndCol   int         `json:"end_column,omitempty" yaml:"end_column,omitempty"`
	Children []*TreeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewTreeNode converts n. Whitespace leaves are dropped unless
// withWhitespace is set. Positions are the half-open source span of the
// node and are left out when unknown.
func NewTreeNode(n tree.Node, withWhitespace bool) *TreeNode {
	switch v := n.(type) {
	case *token.Token:
		out := &TreeNode{Type: v.Type.String(), Value: v.Value}
		out.setSpan(v.Span())
		return out
	case *tree.Group:
		out := &TreeNode{Kind: v.Kind.String(), Value: v.String()}
		out.setSpan(v.Span())
		for _, child := range v.Tokens {
			if child.IsWhitespace() && !withWhitespace {
				continue
			}
			out.Children = append(out.Children, NewTreeNode(child, withWhitespace))
		}
		return out
	}
	return nil
}

func (n *TreeNode) setSpan(span token.Span) {
	if !span.IsValid() {
		return
	}
	n.Line, n.Column = span.Start.Line, span.Start.Column
	n.EndLine, n.EndCol = span.End.Line, span.End.Column
}

// Tree renders a grouped statement.
func (r *Renderer) Tree(root *tree.Group, withWhitespace bool) error {
	if ok, err := r.Structured(NewTreeNode(root, withWhitespace)); ok {
		return err
	}

	if r.EffectiveMode() == ModeMarkdown {
		var b strings.Builder
		if err := tree.Dump(&b, root, withWhitespace); err != nil {
			return err
		}
		r.Printf("```text\n%s```\n", b.String())
		return nil
	}

	r.textTree(root, 0, withWhitespace)
	return nil
}

func (r *Renderer) textTree(n tree.Node, depth int, withWhitespace bool) {
	pad := strings.Repeat(" ", depth*r.indent)
	switch v := n.(type) {
	case *token.Token:
		if v.IsWhitespace() && !withWhitespace {
			return
		}
		r.Printf("%s%s %s\n", pad, r.styles.Muted.Render(v.Type.String()), fmt.Sprintf("%q", v.Value))
	case *tree.Group:
		kind := r.styles.Kind(v.Kind).Render(v.Kind.String())
		r.Printf("%s%s %s\n", pad, kind, r.styles.Muted.Render(fmt.Sprintf("%q", tree.Summarize(v.String()))))
		for _, child := range v.Tokens {
			r.textTree(child, depth+1, withWhitespace)
		}
	}
}
