package filter

import (
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/tree"
)

// Python renders statements as Python string assignments:
//
//	sql = 'SELECT 1'
//
// Multi-line statements become a parenthesized run of quoted lines.
type Python struct {
	counter
}

// NewPython creates a Python filter assigning to varname.
func NewPython(varname string) *Python {
	return &Python{counter: newCounter("", varname)}
}

// Process renders stmt. The tree is not modified.
func (f *Python) Process(stmt *tree.Group) string {
	varname := f.next()
	nl := multiline(stmt)
	p := newPrinter()

	if f.count > 1 {
		p.write("\n")
	}
	p.write(varname, " = ")
	if nl {
		p.write("(")
	}
	p.write("'")

	continuation := strings.Repeat(" ", len(varname)+4)
	body(p, stmt, lineHooks{
		escape: func(s string) string {
			return strings.ReplaceAll(s, "'", `\'`)
		},
		breakLine: func(p *printer) {
			p.write(" '", "\n", continuation, "'")
		},
	})

	p.write("'")
	if nl {
		p.write(")")
	}
	return p.String()
}
