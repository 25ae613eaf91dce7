package tree

// GroupTokens collapses the children in the inclusive range [start, end]
// into a single group of the given kind and returns that group.
//
// With extend set and the child at start already a group of kind, the rest
// of the range is appended to that group instead of wrapping it again.
// An invalid range is a programming error and panics with ErrInvalidRange.
func (g *Group) GroupTokens(kind Kind, start, end int, extend bool) *Group {
	if start < 0 || end < start || end >= len(g.Tokens) {
		panic(ErrInvalidRange.New(start, end, len(g.Tokens)))
	}

	if extend {
		if head, ok := g.Tokens[start].(*Group); ok && head.Kind == kind {
			return g.absorb(head, start, end)
		}
	}

	children := make([]Node, end-start+1)
	copy(children, g.Tokens[start:end+1])
	grp := &Group{Kind: kind, Tokens: children}
	g.splice(start, end, grp)
	return grp
}

// Absorb appends the children (start, end] to the group at start, whatever
// its kind. It panics with ErrInvalidRange when the range is invalid or the
// child at start is not a group.
func (g *Group) Absorb(start, end int) *Group {
	if start < 0 || end < start || end >= len(g.Tokens) {
		panic(ErrInvalidRange.New(start, end, len(g.Tokens)))
	}
	head, ok := g.Tokens[start].(*Group)
	if !ok {
		panic(ErrInvalidRange.New(start, end, len(g.Tokens)))
	}
	return g.absorb(head, start, end)
}

func (g *Group) absorb(head *Group, start, end int) *Group {
	head.Tokens = append(head.Tokens, g.Tokens[start+1:end+1]...)
	g.splice(start, end, head)
	return head
}

// splice replaces g.Tokens[start:end+1] with n.
func (g *Group) splice(start, end int, n Node) {
	out := make([]Node, 0, len(g.Tokens)-(end-start))
	out = append(out, g.Tokens[:start]...)
	out = append(out, n)
	out = append(out, g.Tokens[end+1:]...)
	g.Tokens = out
}
