package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqltree/pkg/token"
)

// TokenInfo is the serialisable form of a lexed token.
type TokenInfo struct {
	Type   string `json:"type" yaml:"type"`
	Value  string `json:"value" yaml:"value"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// Tokens renders a flat token sequence as a table.
func (r *Renderer) Tokens(tokens []*token.Token) error {
	infos := make([]TokenInfo, len(tokens))
	for i, tok := range tokens {
		infos[i] = TokenInfo{Type: tok.Type.String(), Value: tok.Value, Line: tok.Pos.Line, Column: tok.Pos.Column}
	}
	if ok, err := r.Structured(infos); ok {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(table.Row{"#", "Type", "Value", "Line", "Col"})
	for i, info := range infos {
		t.AppendRow(table.Row{i, info.Type, fmt.Sprintf("%q", info.Value), info.Line, info.Column})
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return nil
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	r.Muted(fmt.Sprintf("(%d tokens)", len(infos)))
	return nil
}
