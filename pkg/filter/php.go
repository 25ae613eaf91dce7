package filter

import (
	"strings"

	"github.com/leapstack-labs/sqltree/pkg/tree"
)

// PHP renders statements as PHP string assignments:
//
//	$sql = "SELECT 1";
//
// Each further line of a multi-line statement is appended with .=.
type PHP struct {
	counter
}

// NewPHP creates a PHP filter assigning to $varname.
func NewPHP(varname string) *PHP {
	return &PHP{counter: newCounter("$", varname)}
}

// Process renders stmt. The tree is not modified.
func (f *PHP) Process(stmt *tree.Group) string {
	varname := f.next()
	p := newPrinter()

	if f.count > 1 {
		p.write("\n")
	}
	p.write(varname, " ")
	if multiline(stmt) {
		p.write(" ")
	}
	p.write(`= "`)

	body(p, stmt, lineHooks{
		escape: func(s string) string {
			return strings.ReplaceAll(s, `"`, `\"`)
		},
		breakLine: func(p *printer) {
			p.write(` ";`, "\n", varname, ` .= "`)
		},
	})

	p.write(`";`)
	return p.String()
}
