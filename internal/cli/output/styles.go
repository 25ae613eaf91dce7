package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/sqltree/pkg/tree"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Group kinds
	Paired lipgloss.Style
	Clause lipgloss.Style
	Name   lipgloss.Style
	Expr   lipgloss.Style
	Remark lipgloss.Style
}

// NewStyles creates styles bound to w. Off a terminal every style renders
// plain text.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lr.NewStyle().Foreground(lipgloss.Color("9")),

		Paired: lr.NewStyle().Foreground(lipgloss.Color("13")),
		Clause: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Name:   lr.NewStyle().Foreground(lipgloss.Color("14")),
		Expr:   lr.NewStyle().Foreground(lipgloss.Color("10")),
		Remark: lr.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
	}
}

// Kind returns the style for a group kind.
func (s *Styles) Kind(k tree.Kind) lipgloss.Style {
	if k.IsPaired() {
		return s.Paired
	}
	switch k {
	case tree.Statement, tree.Where:
		return s.Clause
	case tree.Identifier, tree.IdentifierList, tree.Function:
		return s.Name
	case tree.Comment:
		return s.Remark
	default:
		return s.Expr
	}
}
